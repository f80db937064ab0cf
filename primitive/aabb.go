package primitive

import (
	"math"

	"github.com/Carmen-Shannon/oxy-trace/geom"
)

// Aabb is an axis-aligned bounding box.
type Aabb struct {
	Min, Max geom.Point3
}

// EmptyAabb returns the identity element for Union: a box with no volume
// that any real box swallows on the first union.
func EmptyAabb() Aabb {
	inf := float32(math.Inf(1))
	return Aabb{
		Min: geom.Point3{X: inf, Y: inf, Z: inf},
		Max: geom.Point3{X: -inf, Y: -inf, Z: -inf},
	}
}

// Union returns the smallest box containing both a and b.
func (a Aabb) Union(b Aabb) Aabb {
	return Aabb{
		Min: geom.Point3{X: min32(a.Min.X, b.Min.X), Y: min32(a.Min.Y, b.Min.Y), Z: min32(a.Min.Z, b.Min.Z)},
		Max: geom.Point3{X: max32(a.Max.X, b.Max.X), Y: max32(a.Max.Y, b.Max.Y), Z: max32(a.Max.Z, b.Max.Z)},
	}
}

// Centroid returns the midpoint of the box.
func (a Aabb) Centroid() geom.Point3 {
	return geom.Point3{
		X: (a.Min.X + a.Max.X) / 2,
		Y: (a.Min.Y + a.Max.Y) / 2,
		Z: (a.Min.Z + a.Max.Z) / 2,
	}
}

// DistanceTo runs the slab test against ray, returning the entry t of the
// box (or the exit t if the ray origin is inside the box).
func (a Aabb) DistanceTo(ray geom.Ray3) (float32, bool) {
	tmin := (a.Min.X - ray.Origin.X) / ray.Direction.X
	tmax := (a.Max.X - ray.Origin.X) / ray.Direction.X
	if tmin > tmax {
		tmin, tmax = tmax, tmin
	}

	tymin := (a.Min.Y - ray.Origin.Y) / ray.Direction.Y
	tymax := (a.Max.Y - ray.Origin.Y) / ray.Direction.Y
	if tymin > tymax {
		tymin, tymax = tymax, tymin
	}

	if tmin > tymax || tymin > tmax {
		return 0, false
	}
	if tymin > tmin {
		tmin = tymin
	}
	if tymax < tmax {
		tmax = tymax
	}

	tzmin := (a.Min.Z - ray.Origin.Z) / ray.Direction.Z
	tzmax := (a.Max.Z - ray.Origin.Z) / ray.Direction.Z
	if tzmin > tzmax {
		tzmin, tzmax = tzmax, tzmin
	}

	if tmin > tzmax || tzmin > tmax {
		return 0, false
	}
	if tzmin > tmin {
		tmin = tzmin
	}
	if tzmax < tmax {
		tmax = tzmax
	}

	if tmin >= 0 {
		return tmin, true
	}
	if tmax >= 0 {
		return tmax, true
	}
	return 0, false
}

func min32(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func max32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
