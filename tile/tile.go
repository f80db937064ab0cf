// Package tile partitions a rectangular frame into a grid of fixed-size
// tiles, with the last row and column narrowed ("fringe" tiles) if the
// frame dimensions don't divide evenly. Tiles are rendered independently
// and merged back into the frame by the render package.
package tile

import "github.com/Carmen-Shannon/oxy-trace/shading"

// Tile is one rectangular region of a frame, with its own pixel buffer and
// its origin within the frame.
type Tile struct {
	OriginX, OriginY int
	Width, Height    int
	Pixels           []shading.Color
}

// At returns the pixel at local coordinates (x, y) within the tile.
func (t *Tile) At(x, y int) shading.Color {
	return t.Pixels[y*t.Width+x]
}

// Set writes the pixel at local coordinates (x, y) within the tile.
func (t *Tile) Set(x, y int, c shading.Color) {
	t.Pixels[y*t.Width+x] = c
}

// TiledFrame describes how a frame of size Width x Height is partitioned
// into tiles of DefaultTileWidth x DefaultTileHeight, with the rightmost
// column and bottom row possibly narrower.
type TiledFrame struct {
	Width, Height                     int
	DefaultTileWidth, DefaultTileHeight int
	numTilesInRow, numTilesInCol       int
	fringeTileWidth, fringeTileHeight int
}

// NewTiledFrame computes the tile grid for a frameWidth x frameHeight frame
// partitioned into tileWidth x tileHeight tiles.
func NewTiledFrame(frameWidth, frameHeight, tileWidth, tileHeight int) TiledFrame {
	numCols := ceilDiv(frameWidth, tileWidth)
	numRows := ceilDiv(frameHeight, tileHeight)

	fringeW := frameWidth - (numCols-1)*tileWidth
	fringeH := frameHeight - (numRows-1)*tileHeight

	return TiledFrame{
		Width:               frameWidth,
		Height:              frameHeight,
		DefaultTileWidth:    tileWidth,
		DefaultTileHeight:   tileHeight,
		numTilesInRow:       numCols,
		numTilesInCol:       numRows,
		fringeTileWidth:     fringeW,
		fringeTileHeight:    fringeH,
	}
}

// NumTiles returns the total number of tiles in the grid.
func (f TiledFrame) NumTiles() int {
	return f.numTilesInRow * f.numTilesInCol
}

// Detach returns an empty Tile (pixels zeroed) for grid cell (col, row),
// with its width/height narrowed if it's a fringe tile on the last column
// or row.
func (f TiledFrame) Detach(col, row int) Tile {
	w := f.DefaultTileWidth
	if col == f.numTilesInRow-1 {
		w = f.fringeTileWidth
	}
	h := f.DefaultTileHeight
	if row == f.numTilesInCol-1 {
		h = f.fringeTileHeight
	}

	return Tile{
		OriginX: col * f.DefaultTileWidth,
		OriginY: row * f.DefaultTileHeight,
		Width:   w,
		Height:  h,
		Pixels:  make([]shading.Color, w*h),
	}
}

// Tiles returns every grid cell coordinate (col, row) in row-major order,
// for callers that want to enumerate the whole grid up front (e.g. to feed
// a worker pool).
func (f TiledFrame) Tiles() [][2]int {
	coords := make([][2]int, 0, f.NumTiles())
	for row := 0; row < f.numTilesInCol; row++ {
		for col := 0; col < f.numTilesInRow; col++ {
			coords = append(coords, [2]int{col, row})
		}
	}
	return coords
}

// Merge copies t's pixels into the corresponding region of dst, a flat
// Width*Height pixel buffer for the whole frame.
func (f TiledFrame) Merge(dst []shading.Color, t Tile) {
	for y := 0; y < t.Height; y++ {
		dstRow := (t.OriginY + y) * f.Width
		srcRow := y * t.Width
		copy(dst[dstRow+t.OriginX:dstRow+t.OriginX+t.Width], t.Pixels[srcRow:srcRow+t.Width])
	}
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
