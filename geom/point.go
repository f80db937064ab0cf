// Package geom implements the affine geometry types the rest of the renderer
// builds on: points, vectors, homogeneous points, 4x4 matrices, and rays.
//
// Points and vectors are kept as distinct types even though both are three
// floats under the hood. A point is a location; a vector is a displacement.
// Mixing them up is the single most common bug in hand-rolled 3D math, so the
// type system is asked to catch it instead of a runtime check.
package geom

import "github.com/chewxy/math32"

// Point3 is a location in 3-space.
type Point3 struct {
	X, Y, Z float32
}

// Vector3 is a displacement in 3-space.
type Vector3 struct {
	X, Y, Z float32
}

// Sub returns the vector from q to p (p - q).
func (p Point3) Sub(q Point3) Vector3 {
	return Vector3{p.X - q.X, p.Y - q.Y, p.Z - q.Z}
}

// Add translates p by v.
func (p Point3) Add(v Vector3) Point3 {
	return Point3{p.X + v.X, p.Y + v.Y, p.Z + v.Z}
}

// ToPoint4 lifts p into homogeneous coordinates with W=1.
func (p Point3) ToPoint4() Point4 {
	return Point4{p.X, p.Y, p.Z, 1}
}

// Add returns the sum of two vectors.
func (v Vector3) Add(u Vector3) Vector3 {
	return Vector3{v.X + u.X, v.Y + u.Y, v.Z + u.Z}
}

// Sub returns v - u.
func (v Vector3) Sub(u Vector3) Vector3 {
	return Vector3{v.X - u.X, v.Y - u.Y, v.Z - u.Z}
}

// Scale returns v scaled by s.
func (v Vector3) Scale(s float32) Vector3 {
	return Vector3{v.X * s, v.Y * s, v.Z * s}
}

// Dot returns the dot product of v and u.
func (v Vector3) Dot(u Vector3) float32 {
	return v.X*u.X + v.Y*u.Y + v.Z*u.Z
}

// Cross returns the cross product v x u.
func (v Vector3) Cross(u Vector3) Vector3 {
	return Vector3{
		v.Y*u.Z - v.Z*u.Y,
		v.Z*u.X - v.X*u.Z,
		v.X*u.Y - v.Y*u.X,
	}
}

// Length returns the Euclidean length of v.
func (v Vector3) Length() float32 {
	return math32.Sqrt(v.Dot(v))
}

// Normalize returns v scaled to unit length. Undefined for the zero vector;
// callers are expected to guarantee a nonzero input.
func (v Vector3) Normalize() Vector3 {
	return v.Scale(1 / v.Length())
}

// ToPoint4 lifts v into homogeneous coordinates with W=0, marking it as a
// direction rather than a location under affine transforms.
func (v Vector3) ToPoint4() Point4 {
	return Point4{v.X, v.Y, v.Z, 0}
}

// Point4 is a homogeneous point: W=1 for locations, W=0 for directions.
type Point4 struct {
	X, Y, Z, W float32
}

// ToPoint3 projects a homogeneous point back to 3-space by dividing through
// by W. Callers never call this on a direction (W=0).
func (p Point4) ToPoint3() Point3 {
	invW := 1 / p.W
	return Point3{p.X * invW, p.Y * invW, p.Z * invW}
}
