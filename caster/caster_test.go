package caster

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Carmen-Shannon/oxy-trace/geom"
	"github.com/Carmen-Shannon/oxy-trace/primitive"
	"github.com/Carmen-Shannon/oxy-trace/scene"
)

func TestNearestHitsNearerSphere(t *testing.T) {
	tmplNear := scene.SphereTemplate{Sphere: primitive.Sphere{Center: geom.Point3{}, Radius: 1}}
	tmplFar := scene.SphereTemplate{Sphere: primitive.Sphere{Center: geom.Point3{}, Radius: 1}}

	objNear := scene.NewSceneObject(tmplNear, scene.WithTranslation(geom.Vector3{X: 0, Y: 0, Z: 0}))
	objFar := scene.NewSceneObject(tmplFar, scene.WithTranslation(geom.Vector3{X: 0, Y: 0, Z: -10}))

	sc := scene.NewSceneBuilder().AddObject(objNear).AddObject(objFar).Build()

	ray := geom.Ray3{Origin: geom.Point3{X: 0, Y: 0, Z: 5}, Direction: geom.Vector3{X: 0, Y: 0, Z: -1}}
	hit, ok := Nearest(ray, sc)
	assert.True(t, ok)
	assert.InDelta(t, 4, hit.T, 1e-3)
}

func TestNearestMissesEmptyScene(t *testing.T) {
	sc := scene.NewSceneBuilder().Build()
	ray := geom.Ray3{Origin: geom.Point3{X: 0, Y: 0, Z: 5}, Direction: geom.Vector3{X: 0, Y: 0, Z: -1}}
	_, ok := Nearest(ray, sc)
	assert.False(t, ok)
}
