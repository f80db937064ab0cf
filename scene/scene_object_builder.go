package scene

import "github.com/Carmen-Shannon/oxy-trace/geom"

// SceneObjectBuilderOption configures a SceneObject under construction.
type SceneObjectBuilderOption func(*sceneObjectImpl)

// WithScale sets the object's per-axis scale.
func WithScale(scale geom.Vector3) SceneObjectBuilderOption {
	return func(o *sceneObjectImpl) {
		o.scale = scale
	}
}

// WithRotationDeg sets the object's Euler rotation in degrees.
func WithRotationDeg(rotationDeg geom.Vector3) SceneObjectBuilderOption {
	return func(o *sceneObjectImpl) {
		o.rotationDeg = rotationDeg
	}
}

// WithTranslation sets the object's world-space translation.
func WithTranslation(translation geom.Vector3) SceneObjectBuilderOption {
	return func(o *sceneObjectImpl) {
		o.translation = translation
	}
}
