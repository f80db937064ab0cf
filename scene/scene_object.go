package scene

import "github.com/Carmen-Shannon/oxy-trace/geom"

// sceneObjectImpl is the implementation of the SceneObject interface.
type sceneObjectImpl struct {
	template    Template
	scale       geom.Vector3
	rotationDeg geom.Vector3
	translation geom.Vector3
}

// SceneObject pairs a model-space Template with the world transform a
// SceneBuilder applies to every primitive the template enumerates.
type SceneObject interface {
	// Template returns the model-space primitive source.
	Template() Template

	// Scale returns the object's per-axis scale.
	Scale() geom.Vector3

	// RotationDeg returns the object's Euler rotation in degrees, applied
	// in X, then Y, then Z order.
	RotationDeg() geom.Vector3

	// Translation returns the object's world-space translation.
	Translation() geom.Vector3

	// ModelMatrix returns the composed T*Rx*Ry*Rz*S transform.
	ModelMatrix() geom.Mat4
}

var _ SceneObject = &sceneObjectImpl{}

// NewSceneObject builds a SceneObject referencing template, with identity
// scale/rotation/translation unless overridden by opts. Panics if template
// is nil: an object with nothing to draw is a caller bug, not a valid scene
// state.
func NewSceneObject(template Template, opts ...SceneObjectBuilderOption) SceneObject {
	if template == nil {
		panic("scene: NewSceneObject requires a non-nil template")
	}
	o := &sceneObjectImpl{
		template:    template,
		scale:       geom.Vector3{X: 1, Y: 1, Z: 1},
		rotationDeg: geom.Vector3{},
		translation: geom.Vector3{},
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

func (o *sceneObjectImpl) Template() Template {
	return o.template
}

func (o *sceneObjectImpl) Scale() geom.Vector3 {
	return o.scale
}

func (o *sceneObjectImpl) RotationDeg() geom.Vector3 {
	return o.rotationDeg
}

func (o *sceneObjectImpl) Translation() geom.Vector3 {
	return o.translation
}

func (o *sceneObjectImpl) ModelMatrix() geom.Mat4 {
	return geom.Model(o.translation, o.rotationDeg, o.scale)
}
