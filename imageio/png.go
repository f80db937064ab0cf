// Package imageio turns a rendered frame buffer into an 8-bit RGB PNG file:
// flip the buffer vertically (row 0 of the render buffer is the bottom of
// the image; PNG wants row 0 at the top), then encode.
package imageio

import (
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/anthonynsimon/bild/transform"

	"github.com/Carmen-Shannon/oxy-trace/shading"
)

// ToImage converts a render buffer (row 0 = bottom, per the camera/render
// packages' convention) of frameWidth x frameHeight shading.Colors into a
// standard library RGBA image with row 0 flipped to the top, ready for
// encoding.
func ToImage(buf []shading.Color, frameWidth, frameHeight int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, frameWidth, frameHeight))
	for y := 0; y < frameHeight; y++ {
		for x := 0; x < frameWidth; x++ {
			c := buf[y*frameWidth+x]
			img.Set(x, y, color.RGBA{
				R: toByte(c.R),
				G: toByte(c.G),
				B: toByte(c.B),
				A: 255,
			})
		}
	}
	return transform.FlipV(img)
}

// Encode writes img to w as a PNG with no alpha channel beyond the fully
// opaque A=255 every pixel is given by ToImage, and no metadata.
func Encode(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}

func toByte(v float32) uint8 {
	c := shading.Clamp01(v)
	return uint8(c*255 + 0.5)
}
