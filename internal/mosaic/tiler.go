package mosaic

import (
	"fmt"
	"image"
)

// Tile is one square sub-region of the source image, destined to become a
// single output glyph.
type Tile struct {
	X    int // Left edge, in pixels
	Y    int // Top edge, in pixels
	Size int // Nominal side length, in pixels
}

// Bounds returns the tile's nominal rectangle. Tiles in the last row or
// column may extend past the image edge when the size does not divide the
// dimensions evenly; the decoder clamps such reads to the pixels that exist.
func (t Tile) Bounds() image.Rectangle {
	return image.Rect(t.X, t.Y, t.X+t.Size, t.Y+t.Size)
}

// Tiles enumerates the square tiles covering a width x height image,
// row-major: all tiles of the first row left to right, then the next row,
// and so on. Tile origins are aligned to the grid at (0,0), so the count is
// ceil(height/size) * ceil(width/size).
//
// Returns ErrInvalidConfig when size is not positive.
func Tiles(width, height, size int) ([]Tile, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: tile size must be positive, got %d", ErrInvalidConfig, size)
	}

	rows := (height + size - 1) / size
	cols := (width + size - 1) / size

	tiles := make([]Tile, 0, rows*cols)
	for y := 0; y < height; y += size {
		for x := 0; x < width; x += size {
			tiles = append(tiles, Tile{X: x, Y: y, Size: size})
		}
	}
	return tiles, nil
}
