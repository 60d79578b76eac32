package mosaic

import (
	"fmt"
	"io"
	"log/slog"
	"math/rand"

	"github.com/kripi-png/glyphmosaic/internal/imaging"
)

// GlyphMode selects which channel of a cell carries the tile's appearance.
type GlyphMode int

const (
	// GlyphRandom emits an arbitrary glyph from the configured pool and
	// encodes the tile in the cell's color.
	GlyphRandom GlyphMode = iota

	// GlyphDarkness encodes the tile's luminance in the glyph shape via
	// the darkness ramp; every cell shares one fixed foreground color.
	GlyphDarkness
)

// Options configures a conversion. The zero value is not usable on its own;
// start from DefaultOptions.
type Options struct {
	// TileSize is the side length of each square tile in pixels.
	// 0 picks a size automatically so that it divides both image
	// dimensions evenly. An explicit size that does not divide evenly is
	// accepted with a logged warning; the grid may look skewed.
	TileSize int

	// Strategy selects the per-tile color summarization.
	Strategy Strategy

	// Monochrome treats the source as single-channel. The caller is
	// expected to have decoded the image in luminance mode to match.
	Monochrome bool

	// GlyphMode selects color cells (GlyphRandom) or ASCII-art cells
	// (GlyphDarkness).
	GlyphMode GlyphMode

	// Charset is the glyph pool for GlyphRandom mode. Must be non-empty
	// in that mode; ignored in GlyphDarkness mode.
	Charset string

	// Foreground is the fixed cell color for GlyphDarkness mode, as a
	// 6-digit hex string. Ignored in GlyphRandom mode.
	Foreground string

	// Rand is the glyph selection source for GlyphRandom mode. nil seeds
	// from the clock; tests inject a fixed seed.
	Rand *rand.Rand

	// Logger receives advisory and debug output. nil discards.
	Logger *slog.Logger
}

// DefaultOptions returns the options used when nothing is configured:
// automatic tile size, average color strategy, color cells drawn from a
// single-glyph pool.
func DefaultOptions() Options {
	return Options{
		TileSize:   0,
		Strategy:   StrategyAverage,
		GlyphMode:  GlyphRandom,
		Charset:    "X",
		Foreground: "#ffffff",
	}
}

// Cell is one grid position of the conversion result.
type Cell struct {
	Glyph rune   // The character shown in this cell
	Color string // Cell color as lowercase "#rrggbb"
}

// Result is the ordered cell sequence handed to the renderer, one cell per
// tile in row-major order.
type Result struct {
	Cells    []Cell
	Columns  int // Grid columns: image width / tile size, floored
	TileSize int // The tile size actually used
}

// Convert runs the full pipeline over a decoded source: tile enumeration,
// per-tile color or luminance summarization, and glyph assignment.
//
// Tiles are processed sequentially in row-major order because the result
// order defines the grid layout. The whole conversion either completes or
// fails with no partial result; configuration problems fail before any
// pixel is read.
func Convert(src *imaging.Source, opts Options) (*Result, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	width, height := src.Width(), src.Height()
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: image dimensions must be positive, got %dx%d", ErrInvalidConfig, width, height)
	}

	size := opts.TileSize
	switch {
	case size < 0:
		return nil, fmt.Errorf("%w: tile size must be positive, got %d", ErrInvalidConfig, size)
	case size == 0:
		var err error
		size, err = AutoTileSize(width, height)
		if err != nil {
			return nil, err
		}
		logger.Debug("tile size chosen automatically", "size", size, "width", width, "height", height)
	case !Divides(width, height, size):
		lower, upper := NearestDivisors(width, height, size)
		logger.Warn("tile size does not divide the image evenly; output may look skewed",
			"size", size, "width", width, "height", height,
			"nearest_smaller", lower, "nearest_larger", upper)
	}

	var picker *CharPicker
	var foreground string
	if opts.GlyphMode == GlyphRandom {
		var err error
		picker, err = NewCharPicker(opts.Charset, opts.Rand)
		if err != nil {
			return nil, err
		}
	} else {
		fg, err := imaging.ParseHex(opts.Foreground)
		if err != nil {
			return nil, fmt.Errorf("%w: foreground color: %v", ErrInvalidConfig, err)
		}
		foreground = fg.Hex()
	}

	tiles, err := Tiles(width, height, size)
	if err != nil {
		return nil, err
	}

	cells := make([]Cell, 0, len(tiles))
	for _, tile := range tiles {
		cell, err := convertTile(src, tile, opts, picker, foreground)
		if err != nil {
			return nil, fmt.Errorf("tile at (%d,%d): %w", tile.X, tile.Y, err)
		}
		cells = append(cells, cell)
	}

	return &Result{
		Cells:    cells,
		Columns:  width / size,
		TileSize: size,
	}, nil
}

// convertTile summarizes one tile and assigns its glyph.
func convertTile(src *imaging.Source, tile Tile, opts Options, picker *CharPicker, foreground string) (Cell, error) {
	if opts.GlyphMode == GlyphDarkness {
		hist := src.Histogram(tile.Bounds())
		if hist.Total() == 0 {
			return Cell{}, ErrEmptyHistogram
		}
		lum := meanLuminance(hist)
		return Cell{
			Glyph: GlyphForLuminance(float64(lum) / 255.0),
			Color: foreground,
		}, nil
	}

	var summarized imaging.RGBColor
	var err error
	if opts.Strategy == StrategyDominant {
		summarized, err = SummarizeDominant(src.Region(tile.Bounds()))
	} else {
		summarized, err = Summarize(src.Histogram(tile.Bounds()), opts.Strategy, opts.Monochrome)
	}
	if err != nil {
		return Cell{}, err
	}

	return Cell{Glyph: picker.Pick(), Color: summarized.Hex()}, nil
}
