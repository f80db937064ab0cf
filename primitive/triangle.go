package primitive

import (
	"github.com/Carmen-Shannon/oxy-trace/geom"
)

// mollerTrumboreEpsilon is the backface/parallel-ray rejection threshold.
// Rays nearly parallel to the triangle plane (det below this) are treated as
// misses; this also makes the test single-sided, culling back faces.
const mollerTrumboreEpsilon = 1e-3

// Triangle is a flat triangular surface with a precomputed unit normal.
type Triangle struct {
	V      [3]geom.Point3
	Normal geom.Vector3
}

// NewTriangle builds a Triangle from three vertices, computing its normal
// via (v1-v0) x (v2-v0). The vertex winding order determines the normal's
// direction; degenerate (collinear) vertices yield an undefined normal.
func NewTriangle(v0, v1, v2 geom.Point3) Triangle {
	edge1 := v1.Sub(v0)
	edge2 := v2.Sub(v0)
	return Triangle{
		V:      [3]geom.Point3{v0, v1, v2},
		Normal: edge1.Cross(edge2).Normalize(),
	}
}

var _ TraceablePrimitive = Triangle{}

// DistanceTo implements the Moller-Trumbore ray/triangle intersection test.
func (tr Triangle) DistanceTo(ray geom.Ray3) (float32, bool) {
	edge1 := tr.V[1].Sub(tr.V[0])
	edge2 := tr.V[2].Sub(tr.V[0])

	pvec := ray.Direction.Cross(edge2)
	det := edge1.Dot(pvec)
	if det < mollerTrumboreEpsilon {
		return 0, false
	}

	invDet := 1 / det
	tvec := ray.Origin.Sub(tr.V[0])
	u := tvec.Dot(pvec) * invDet
	if u < 0 || u > 1 {
		return 0, false
	}

	qvec := tvec.Cross(edge1)
	v := ray.Direction.Dot(qvec) * invDet
	if v < 0 || u+v > 1 {
		return 0, false
	}

	t := edge2.Dot(qvec) * invDet
	if t <= 0 {
		return 0, false
	}
	return t, true
}

// NormalAt returns the triangle's precomputed face normal; the surface
// argument is ignored since triangles are flat.
func (tr Triangle) NormalAt(geom.Point3) geom.Vector3 {
	return tr.Normal
}

// BoundingBox returns the box enclosing all three vertices.
func (tr Triangle) BoundingBox() Aabb {
	box := EmptyAabb()
	for _, v := range tr.V {
		box = box.Union(Aabb{Min: v, Max: v})
	}
	return box
}

// Centroid returns the bounding box centroid (not the vertex average).
func (tr Triangle) Centroid() geom.Point3 {
	return tr.BoundingBox().Centroid()
}

// Transform applies m to every vertex and recomputes the normal, since
// non-uniform scale and rotation both change a triangle's face normal.
func (tr Triangle) Transform(m geom.Mat4) TraceablePrimitive {
	v0 := m.MulPoint3(tr.V[0])
	v1 := m.MulPoint3(tr.V[1])
	v2 := m.MulPoint3(tr.V[2])
	return NewTriangle(v0, v1, v2)
}
