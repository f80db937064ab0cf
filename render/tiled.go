package render

import (
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"

	"github.com/Carmen-Shannon/oxy-trace/camera"
	"github.com/Carmen-Shannon/oxy-trace/scene"
	"github.com/Carmen-Shannon/oxy-trace/shading"
	"github.com/Carmen-Shannon/oxy-trace/tile"
)

// tiledWorkerQueueSize bounds how many tile tasks may sit in the pool's
// internal queue ahead of being picked up by an idle worker.
const tiledWorkerQueueSize = 256

// tiledWorkerIdleTimeout is how long an idle worker goroutine waits for a
// new task before exiting. It has no effect on correctness here: Tiled
// submits every task up front and waits on its own WaitGroup until every
// tile has been merged, rather than on the pool's idle-exit, so the timeout
// only governs how long idle worker goroutines linger afterwards.
const tiledWorkerIdleTimeout = 5 * time.Second

// Tiled renders a frameWidth x frameHeight frame by partitioning it into
// tileWidth x tileHeight tiles (the last row/column possibly narrower),
// dispatching one task per tile to a bounded worker pool, and merging
// completed tiles into the frame buffer as they finish. Row 0 of the
// returned buffer is the frame's bottom row, matching ForkJoin.
func Tiled(cam camera.Camera, sc scene.Scene, frameWidth, frameHeight, tileWidth, tileHeight, numWorkers int) []shading.Color {
	if numWorkers < 1 {
		numWorkers = 1
	}

	frame := tile.NewTiledFrame(frameWidth, frameHeight, tileWidth, tileHeight)
	buf := make([]shading.Color, frameWidth*frameHeight)

	pool := worker.NewDynamicWorkerPool(numWorkers, tiledWorkerQueueSize, tiledWorkerIdleTimeout)

	var mergeMu sync.Mutex
	var wg sync.WaitGroup

	for id, coord := range frame.Tiles() {
		col, row := coord[0], coord[1]
		wg.Add(1)
		pool.SubmitTask(worker.Task{
			ID: id,
			Do: func() (any, error) {
				defer wg.Done()
				t := renderTile(cam, sc, frame, col, row, frameWidth, frameHeight)
				mergeMu.Lock()
				frame.Merge(buf, t)
				mergeMu.Unlock()
				return nil, nil
			},
		})
	}

	wg.Wait()
	return buf
}

func renderTile(cam camera.Camera, sc scene.Scene, frame tile.TiledFrame, col, row, frameWidth, frameHeight int) tile.Tile {
	t := frame.Detach(col, row)
	for localY := 0; localY < t.Height; localY++ {
		y := t.OriginY + localY
		for localX := 0; localX < t.Width; localX++ {
			x := t.OriginX + localX
			t.Set(localX, localY, pixel(cam, sc, x, y, frameWidth, frameHeight))
		}
	}
	return t
}
