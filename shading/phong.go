// Package shading turns a caster.Hit into a color via the Phong reflectance
// model: ambient plus a per-light diffuse and specular term, each light's
// contribution scaled by its own intensity.
package shading

import (
	"github.com/chewxy/math32"

	"github.com/Carmen-Shannon/oxy-trace/caster"
	"github.com/Carmen-Shannon/oxy-trace/geom"
	"github.com/Carmen-Shannon/oxy-trace/scene"
)

const (
	shininess          = 20.0
	diffuseReflection  = 1.0
	specularReflection = 0.1
	ambientReflection  = 0.1
)

// Color is a linear RGB color with components in [0, 1].
type Color struct {
	R, G, B float32
}

// Clamp01 returns v clamped to [0, 1].
func Clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Shade computes the Phong illumination at hit as seen from the ray that
// produced it, against every light in sc. depth is accepted but unused: it
// is a placeholder for a future recursive reflection pass, not yet built.
func Shade(hit caster.Hit, sc scene.Scene, ray geom.Ray3, depth int) Color {
	surfaceToCamera := ray.Direction.Scale(-1).Normalize()
	illumination := float32(ambientReflection)

	for _, light := range sc.Lights() {
		surfaceToLight := light.Position().Sub(hit.Point).Normalize()
		diffuseFactor := surfaceToLight.Dot(hit.Normal)
		if diffuseFactor <= 0 {
			continue
		}

		reflected := hit.Normal.Scale(diffuseFactor * 2).Sub(surfaceToLight)
		specularFactor := reflected.Dot(surfaceToCamera)
		if specularFactor < 0 {
			specularFactor = 0
		}
		specularFactor = math32.Pow(specularFactor, shininess)

		contribution := diffuseFactor*diffuseReflection + specularFactor*specularReflection
		illumination += contribution * light.Intensity()
	}

	v := Clamp01(illumination)
	return Color{R: v, G: v, B: v}
}
