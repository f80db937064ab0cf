package scene

import (
	"sync"

	"github.com/Carmen-Shannon/oxy-trace/bvh"
	"github.com/Carmen-Shannon/oxy-trace/geom"
	"github.com/Carmen-Shannon/oxy-trace/primitive"
)

// sceneImpl is the implementation of the Scene interface. Once built, a
// Scene is immutable: every field below is written once by SceneBuilder.Build
// and never again, which is what makes it safe to share by reference across
// every rendering goroutine without synchronization.
type sceneImpl struct {
	mu         *sync.RWMutex
	primitives []primitive.TraceablePrimitive
	bounds     []primitive.Aabb
	centroids  []geom.Point3
	lights     []Light
	tree       bvh.Tree
}

// Scene is a fully flattened, BVH-accelerated collection of world-space
// primitives and lights, ready for ray casting.
type Scene interface {
	// Primitives returns the scene's world-space primitives.
	Primitives() []primitive.TraceablePrimitive

	// Lights returns the scene's lights.
	Lights() []Light

	// Tree returns the scene's bounding volume hierarchy.
	Tree() bvh.Tree

	// PrimitiveCount returns the number of world-space primitives.
	PrimitiveCount() int
}

var _ Scene = &sceneImpl{}

func (s *sceneImpl) Primitives() []primitive.TraceablePrimitive {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.primitives
}

func (s *sceneImpl) Lights() []Light {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lights
}

func (s *sceneImpl) Tree() bvh.Tree {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tree
}

func (s *sceneImpl) PrimitiveCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.primitives)
}
