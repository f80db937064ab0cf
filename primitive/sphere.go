package primitive

import (
	"github.com/chewxy/math32"

	"github.com/Carmen-Shannon/oxy-trace/geom"
)

// Sphere is a sphere defined by a center and radius.
type Sphere struct {
	Center geom.Point3
	Radius float32
}

var _ TraceablePrimitive = Sphere{}

// DistanceTo solves the ray/sphere quadratic and returns the nearest
// non-negative root, if any.
func (s Sphere) DistanceTo(ray geom.Ray3) (float32, bool) {
	l := s.Center.Sub(ray.Origin)
	tca := l.Dot(ray.Direction)
	d2 := l.Dot(l) - tca*tca
	r2 := s.Radius * s.Radius
	if d2 > r2 {
		return 0, false
	}
	thc := math32.Sqrt(r2 - d2)
	t0 := tca - thc
	t1 := tca + thc

	if t0 >= 0 {
		return t0, true
	}
	if t1 >= 0 {
		return t1, true
	}
	return 0, false
}

// NormalAt returns the outward unit normal at a point on the sphere surface.
func (s Sphere) NormalAt(surface geom.Point3) geom.Vector3 {
	return surface.Sub(s.Center).Normalize()
}

// BoundingBox returns the axis-aligned box enclosing the sphere.
func (s Sphere) BoundingBox() Aabb {
	c, r := s.Center, s.Radius
	return Aabb{
		Min: geom.Point3{X: c.X - r, Y: c.Y - r, Z: c.Z - r},
		Max: geom.Point3{X: c.X + r, Y: c.Y + r, Z: c.Z + r},
	}
}

// Centroid returns the sphere's center.
func (s Sphere) Centroid() geom.Point3 {
	return s.Center
}

// Transform applies m to the center. Per the known limitation carried from
// the original design, non-uniform scale does not reshape the sphere into
// an ellipsoid: the radius passes through unchanged.
func (s Sphere) Transform(m geom.Mat4) TraceablePrimitive {
	return Sphere{Center: m.MulPoint3(s.Center), Radius: s.Radius}
}
