// Package caster is the thin entry point from a world-space ray into the
// scene's bounding volume hierarchy: it has no state of its own and no
// concept of color, only "what did this ray hit, and how far away".
package caster

import (
	"github.com/Carmen-Shannon/oxy-trace/bvh"
	"github.com/Carmen-Shannon/oxy-trace/geom"
	"github.com/Carmen-Shannon/oxy-trace/primitive"
	"github.com/Carmen-Shannon/oxy-trace/scene"
)

// Hit describes the nearest surface a ray struck.
type Hit struct {
	Primitive primitive.TraceablePrimitive
	Point     geom.Point3
	Normal    geom.Vector3
	T         float32
}

// Nearest casts ray against sc's bounding volume hierarchy and returns the
// nearest intersection, if any.
func Nearest(ray geom.Ray3, sc scene.Scene) (Hit, bool) {
	prims := sc.Primitives()
	bvhHit, ok := bvh.Nearest(sc.Tree(), prims, ray)
	if !ok {
		return Hit{}, false
	}

	p := prims[bvhHit.PrimitiveIndex]
	point := ray.At(bvhHit.T)
	return Hit{
		Primitive: p,
		Point:     point,
		Normal:    p.NormalAt(point),
		T:         bvhHit.T,
	}, true
}
