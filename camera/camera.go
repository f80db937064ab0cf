// Package camera turns a pixel coordinate and a frame size into a
// world-space ray, per the fixed convention this renderer uses throughout:
// the camera sits at the world origin looking down -Z, right-handed, with
// row 0 of the output image its top row.
package camera

import (
	"github.com/chewxy/math32"

	"github.com/Carmen-Shannon/oxy-trace/geom"
)

// cameraImpl is the implementation of the Camera interface.
type cameraImpl struct {
	fovVertDeg float32
	aspect     float32
}

// Camera generates per-pixel world-space rays for a frame of a given size.
type Camera interface {
	// FovVertDeg returns the vertical field of view in degrees.
	FovVertDeg() float32

	// Aspect returns the width/height aspect ratio.
	Aspect() float32

	// Ray returns the world-space ray through pixel (x, y) of a frame
	// frameWidth x frameHeight pixels, with (0, 0) at the bottom-left.
	Ray(x, y, frameWidth, frameHeight int) geom.Ray3
}

var _ Camera = &cameraImpl{}

// NewCamera builds a Camera with the given vertical field of view (degrees)
// and aspect ratio (width / height).
func NewCamera(fovVertDeg, aspect float32, opts ...CameraBuilderOption) Camera {
	c := &cameraImpl{fovVertDeg: fovVertDeg, aspect: aspect}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *cameraImpl) FovVertDeg() float32 {
	return c.fovVertDeg
}

func (c *cameraImpl) Aspect() float32 {
	return c.aspect
}

func (c *cameraImpl) Ray(x, y, frameWidth, frameHeight int) geom.Ray3 {
	s := math32.Tan(geom.DegToRad(c.fovVertDeg) / 2)
	a := c.aspect

	ndcX := (2*float32(x)/float32(frameWidth) - 1) * s * a
	ndcY := (2*float32(y)/float32(frameHeight) - 1) * s

	direction := geom.Vector3{X: ndcX, Y: ndcY, Z: -1}.Normalize()
	return geom.Ray3{Origin: geom.Point3{}, Direction: direction}
}
