package geom

import "github.com/chewxy/math32"

// Mat4 is a row-major 4x4 matrix. Element [i][j] is stored at m[i*4+j].
type Mat4 struct {
	m [16]float32
}

// Identity returns the 4x4 identity matrix.
func Identity() Mat4 {
	return Mat4{m: [16]float32{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}}
}

// FromRows builds a Mat4 from sixteen row-major elements.
func FromRows(r0, r1, r2, r3, r4, r5, r6, r7, r8, r9, r10, r11, r12, r13, r14, r15 float32) Mat4 {
	return Mat4{m: [16]float32{r0, r1, r2, r3, r4, r5, r6, r7, r8, r9, r10, r11, r12, r13, r14, r15}}
}

// At returns the element at row i, column j.
func (a Mat4) At(i, j int) float32 {
	return a.m[i*4+j]
}

// Translate returns a matrix that translates by (tx, ty, tz).
func Translate(tx, ty, tz float32) Mat4 {
	m := Identity()
	m.m[3] = tx
	m.m[7] = ty
	m.m[11] = tz
	return m
}

// Scale returns a matrix that scales non-uniformly by (sx, sy, sz).
func Scale(sx, sy, sz float32) Mat4 {
	return Mat4{m: [16]float32{
		sx, 0, 0, 0,
		0, sy, 0, 0,
		0, 0, sz, 0,
		0, 0, 0, 1,
	}}
}

// RotateX returns a matrix that rotates about the X axis by angleDeg degrees.
func RotateX(angleDeg float32) Mat4 {
	r := DegToRad(angleDeg)
	s, c := math32.Sin(r), math32.Cos(r)
	return Mat4{m: [16]float32{
		1, 0, 0, 0,
		0, c, -s, 0,
		0, s, c, 0,
		0, 0, 0, 1,
	}}
}

// RotateY returns a matrix that rotates about the Y axis by angleDeg degrees.
func RotateY(angleDeg float32) Mat4 {
	r := DegToRad(angleDeg)
	s, c := math32.Sin(r), math32.Cos(r)
	return Mat4{m: [16]float32{
		c, 0, s, 0,
		0, 1, 0, 0,
		-s, 0, c, 0,
		0, 0, 0, 1,
	}}
}

// RotateZ returns a matrix that rotates about the Z axis by angleDeg degrees.
func RotateZ(angleDeg float32) Mat4 {
	r := DegToRad(angleDeg)
	s, c := math32.Sin(r), math32.Cos(r)
	return Mat4{m: [16]float32{
		c, -s, 0, 0,
		s, c, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}}
}

// DegToRad converts degrees to radians.
func DegToRad(deg float32) float32 {
	return deg * (math32.Pi / 180)
}

// Mul returns a * b.
func (a Mat4) Mul(b Mat4) Mat4 {
	var out Mat4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += a.At(i, k) * b.At(k, j)
			}
			out.m[i*4+j] = sum
		}
	}
	return out
}

// MulPoint4 transforms a homogeneous point by a.
func (a Mat4) MulPoint4(p Point4) Point4 {
	return Point4{
		X: a.At(0, 0)*p.X + a.At(0, 1)*p.Y + a.At(0, 2)*p.Z + a.At(0, 3)*p.W,
		Y: a.At(1, 0)*p.X + a.At(1, 1)*p.Y + a.At(1, 2)*p.Z + a.At(1, 3)*p.W,
		Z: a.At(2, 0)*p.X + a.At(2, 1)*p.Y + a.At(2, 2)*p.Z + a.At(2, 3)*p.W,
		W: a.At(3, 0)*p.X + a.At(3, 1)*p.Y + a.At(3, 2)*p.Z + a.At(3, 3)*p.W,
	}
}

// MulPoint3 transforms a point (W=1) and projects back to 3-space.
func (a Mat4) MulPoint3(p Point3) Point3 {
	return a.MulPoint4(p.ToPoint4()).ToPoint3()
}

// MulVector3 transforms a direction (W=0); translation has no effect.
func (a Mat4) MulVector3(v Vector3) Vector3 {
	p := a.MulPoint4(v.ToPoint4())
	return Vector3{p.X, p.Y, p.Z}
}

// Model builds the model-to-world matrix T*Rx*Ry*Rz*S for a scene object's
// translation, Euler rotation (degrees, applied X then Y then Z), and scale.
func Model(translation, rotationDeg, scale Vector3) Mat4 {
	t := Translate(translation.X, translation.Y, translation.Z)
	rx := RotateX(rotationDeg.X)
	ry := RotateY(rotationDeg.Y)
	rz := RotateZ(rotationDeg.Z)
	s := Scale(scale.X, scale.Y, scale.Z)
	return t.Mul(rx).Mul(ry).Mul(rz).Mul(s)
}
