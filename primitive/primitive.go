// Package primitive implements the ray-traceable surfaces the renderer's
// acceleration structure and ray caster operate on: triangles, spheres, and
// the axis-aligned bounding boxes used to cull them.
package primitive

import (
	"github.com/Carmen-Shannon/oxy-trace/geom"
)

// TraceablePrimitive is the capability every intersectable surface exposes.
// It plays the role a tagged union would in a language with sum types; Go
// expresses it as an interface, the same way this codebase's scene-level
// concepts (lights, cameras) are modeled.
type TraceablePrimitive interface {
	// DistanceTo returns the ray parameter t of the nearest intersection with
	// ray, or false if the ray misses.
	DistanceTo(ray geom.Ray3) (float32, bool)

	// NormalAt returns the surface normal at the given surface point.
	NormalAt(surface geom.Point3) geom.Vector3

	// BoundingBox returns the primitive's axis-aligned bounding box.
	BoundingBox() Aabb

	// Centroid returns the primitive's bounding-box centroid, used by the BVH
	// builder to choose split axes and partitions.
	Centroid() geom.Point3

	// Transform returns a copy of the primitive with m applied to its
	// geometry, used when flattening a scene object's model-space template
	// into world space.
	Transform(m geom.Mat4) TraceablePrimitive
}
