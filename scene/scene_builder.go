package scene

import (
	"sync"

	"github.com/Carmen-Shannon/oxy-trace/bvh"
	"github.com/Carmen-Shannon/oxy-trace/geom"
	"github.com/Carmen-Shannon/oxy-trace/primitive"
)

// sceneBuilderImpl accumulates scene objects and lights, then flattens them
// into world space and builds the acceleration structure on Build.
type sceneBuilderImpl struct {
	objects []SceneObject
	lights  []Light
}

// SceneBuilder assembles a Scene from scene objects and lights.
type SceneBuilder interface {
	// AddObject registers a scene object to be flattened into the built scene.
	AddObject(obj SceneObject) SceneBuilder

	// AddLight registers a light to be included in the built scene.
	AddLight(light Light) SceneBuilder

	// Build flattens every registered object's template primitives into
	// world space, builds the bounding volume hierarchy over them, and
	// returns the resulting immutable Scene. Safe to call on an empty
	// builder: the result is a valid scene with zero primitives.
	Build() Scene
}

var _ SceneBuilder = &sceneBuilderImpl{}

// NewSceneBuilder returns an empty SceneBuilder.
func NewSceneBuilder() SceneBuilder {
	return &sceneBuilderImpl{}
}

func (b *sceneBuilderImpl) AddObject(obj SceneObject) SceneBuilder {
	if obj == nil {
		panic("scene: AddObject requires a non-nil SceneObject")
	}
	b.objects = append(b.objects, obj)
	return b
}

func (b *sceneBuilderImpl) AddLight(light Light) SceneBuilder {
	if light == nil {
		panic("scene: AddLight requires a non-nil Light")
	}
	b.lights = append(b.lights, light)
	return b
}

func (b *sceneBuilderImpl) Build() Scene {
	var flattened []primitive.TraceablePrimitive
	var bounds []primitive.Aabb
	var centroids []geom.Point3

	for _, obj := range b.objects {
		m := obj.ModelMatrix()
		for _, modelSpace := range obj.Template().Primitives() {
			worldSpace := modelSpace.Transform(m)
			flattened = append(flattened, worldSpace)
			bounds = append(bounds, worldSpace.BoundingBox())
			centroids = append(centroids, worldSpace.Centroid())
		}
	}

	tree := bvh.Build(flattened)

	return &sceneImpl{
		mu:         &sync.RWMutex{},
		primitives: flattened,
		bounds:     bounds,
		centroids:  centroids,
		lights:     append([]Light(nil), b.lights...),
		tree:       tree,
	}
}
