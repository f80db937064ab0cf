// Package scene assembles a renderable Scene: light sources, scene objects
// (a model-space template plus a world transform), and the flattening step
// that turns them into the world-space primitive arrays the bvh package
// builds a tree over.
package scene

import (
	"github.com/Carmen-Shannon/oxy-trace/geom"
)

// lightImpl is the implementation of the Light interface.
type lightImpl struct {
	position  geom.Point3
	intensity float32
}

// Light is a point light source: a position and a scalar intensity in
// [0, 1] that scales its contribution to the Phong shading equation.
type Light interface {
	// Position returns the world-space position of the light.
	Position() geom.Point3

	// Intensity returns the light's scalar intensity.
	Intensity() float32

	// SetPosition sets the world-space position of the light.
	SetPosition(p geom.Point3)

	// SetIntensity sets the light's scalar intensity.
	SetIntensity(intensity float32)
}

var _ Light = &lightImpl{}

// NewLight creates a Light at the origin with full intensity, then applies
// any provided options.
func NewLight(opts ...LightBuilderOption) Light {
	l := &lightImpl{
		position:  geom.Point3{},
		intensity: 1.0,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func (l *lightImpl) Position() geom.Point3 {
	return l.position
}

func (l *lightImpl) Intensity() float32 {
	return l.intensity
}

func (l *lightImpl) SetPosition(p geom.Point3) {
	l.position = p
}

func (l *lightImpl) SetIntensity(intensity float32) {
	l.intensity = intensity
}
