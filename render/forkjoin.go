package render

import (
	"sync"

	"github.com/Carmen-Shannon/oxy-trace/camera"
	"github.com/Carmen-Shannon/oxy-trace/scene"
	"github.com/Carmen-Shannon/oxy-trace/shading"
)

// ForkJoin renders every pixel of a frameWidth x frameHeight frame with a
// bounded pool of numWorkers goroutines that each pull whole rows from a
// shared channel, joined with a WaitGroup. Row 0 of the returned buffer is the frame's bottom row, per
// camera.Ray's (0,0)-at-bottom-left convention; callers that need row 0 at
// the top (as PNG output does) flip it before encoding.
func ForkJoin(cam camera.Camera, sc scene.Scene, frameWidth, frameHeight, numWorkers int) []shading.Color {
	if numWorkers < 1 {
		numWorkers = 1
	}

	buf := make([]shading.Color, frameWidth*frameHeight)

	rows := make(chan int, frameHeight)
	for y := 0; y < frameHeight; y++ {
		rows <- y
	}
	close(rows)

	var wg sync.WaitGroup
	for w := 0; w < numWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for y := range rows {
				rowOffset := y * frameWidth
				for x := 0; x < frameWidth; x++ {
					buf[rowOffset+x] = pixel(cam, sc, x, y, frameWidth, frameHeight)
				}
			}
		}()
	}
	wg.Wait()

	return buf
}
