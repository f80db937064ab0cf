// Package render drives the actual image production: mapping each pixel to
// a camera ray, casting it against the scene, shading the result (or
// falling back to the background color on a miss), and assembling the
// completed pixels into a frame buffer. Two dispatch strategies are
// provided: a fork-join map over every pixel, and a worker/collector
// pipeline over tiles.
package render

import (
	"github.com/Carmen-Shannon/oxy-trace/camera"
	"github.com/Carmen-Shannon/oxy-trace/caster"
	"github.com/Carmen-Shannon/oxy-trace/scene"
	"github.com/Carmen-Shannon/oxy-trace/shading"
)

// Background is the color returned for a pixel whose ray hits nothing.
var Background = shading.Color{R: 30.0 / 255, G: 30.0 / 255, B: 30.0 / 255}

// RecursionDepth is the reflection recursion depth passed to the shader.
// Reserved for a future recursive reflection pass; the current shader
// ignores it beyond this single, non-recursive call.
const RecursionDepth = 0

// pixel computes the color of pixel (x, y) of a frameWidth x frameHeight
// frame, with (0, 0) at the bottom-left per the camera package's convention.
func pixel(cam camera.Camera, sc scene.Scene, x, y, frameWidth, frameHeight int) shading.Color {
	ray := cam.Ray(x, y, frameWidth, frameHeight)
	hit, ok := caster.Nearest(ray, sc)
	if !ok {
		return Background
	}
	return shading.Shade(hit, sc, ray, RecursionDepth)
}
