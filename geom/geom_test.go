package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const standardTol = float32(1.0e-4)

func tolAssertEqualVec(t *testing.T, tol float32, want, got Vector3) {
	assert.InDelta(t, want.X, got.X, float64(tol))
	assert.InDelta(t, want.Y, got.Y, float64(tol))
	assert.InDelta(t, want.Z, got.Z, float64(tol))
}

func TestVectorBasics(t *testing.T) {
	vx := Vector3{1, 0, 0}
	vy := Vector3{0, 1, 0}
	vz := Vector3{0, 0, 1}

	assert.Equal(t, float32(0), vx.Dot(vy))
	assert.Equal(t, vz, vx.Cross(vy))
	assert.Equal(t, float32(1), vx.Length())

	sum := vx.Add(vy)
	assert.Equal(t, Vector3{1, 1, 0}, sum)
	tolAssertEqualVec(t, standardTol, Vector3{0.7071068, 0.7071068, 0}, sum.Normalize())
}

func TestPointVectorDistinct(t *testing.T) {
	p := Point3{1, 2, 3}
	q := Point3{0, 0, 0}
	v := p.Sub(q)
	assert.Equal(t, Vector3{1, 2, 3}, v)
	assert.Equal(t, Point3{1, 2, 3}, q.Add(v))
}

func TestIdentity(t *testing.T) {
	id := Identity()
	p := Point3{3, -2, 7}
	assert.Equal(t, p, id.MulPoint3(p))
}

func TestTranslate(t *testing.T) {
	m := Translate(1, 2, 3)
	p := Point3{0, 0, 0}
	assert.Equal(t, Point3{1, 2, 3}, m.MulPoint3(p))

	v := Vector3{1, 1, 1}
	tolAssertEqualVec(t, standardTol, v, m.MulVector3(v))
}

func TestScaleNonUniform(t *testing.T) {
	m := Scale(2, 3, 4)
	p := Point3{1, 1, 1}
	assert.Equal(t, Point3{2, 3, 4}, m.MulPoint3(p))
}

func TestRotateZ90(t *testing.T) {
	m := RotateZ(90)
	got := m.MulPoint3(Point3{1, 0, 0})
	tolAssertEqualVec(t, standardTol, Vector3{0, 1, 0}, Vector3{got.X, got.Y, got.Z})
}

func TestRotateX90(t *testing.T) {
	m := RotateX(90)
	got := m.MulPoint3(Point3{0, 1, 0})
	tolAssertEqualVec(t, standardTol, Vector3{0, 0, 1}, Vector3{got.X, got.Y, got.Z})
}

func TestModelComposesTRxRyRzS(t *testing.T) {
	m := Model(Vector3{1, 0, 0}, Vector3{0, 0, 90}, Vector3{2, 2, 2})
	got := m.MulPoint3(Point3{1, 0, 0})
	// scale doubles (1,0,0) -> (2,0,0); Rz(90) rotates to (0,2,0); translate adds (1,0,0) -> (1,2,0)
	tolAssertEqualVec(t, standardTol, Vector3{1, 2, 0}, Vector3{got.X, got.Y, got.Z})
}

func TestRayAt(t *testing.T) {
	r := Ray3{Origin: Point3{0, 0, 0}, Direction: Vector3{1, 0, 0}}
	assert.Equal(t, Point3{3, 0, 0}, r.At(3))
}
