package mosaic

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"log/slog"
	"math/rand"
	"strings"
	"testing"

	"github.com/kripi-png/glyphmosaic/internal/imaging"
)

// solidSource builds a source filled with one color.
func solidSource(width, height int, c color.Color, mode imaging.Mode) *imaging.Source {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}
	return imaging.FromImage(img, mode)
}

func TestConvertSolidRed(t *testing.T) {
	src := solidSource(20, 20, color.RGBA{255, 0, 0, 255}, imaging.ModeRGB)

	opts := DefaultOptions()
	opts.TileSize = 10

	result, err := Convert(src, opts)
	if err != nil {
		t.Fatalf("Convert failed: %v", err)
	}

	if result.Columns != 2 {
		t.Errorf("Columns: got %d, want 2", result.Columns)
	}
	if len(result.Cells) != 4 {
		t.Fatalf("cells: got %d, want 4", len(result.Cells))
	}
	for i, cell := range result.Cells {
		if cell.Color != "#ff0000" {
			t.Errorf("cell %d color: got %s, want #ff0000", i, cell.Color)
		}
		if cell.Glyph != 'X' {
			t.Errorf("cell %d glyph: got %q, want 'X'", i, cell.Glyph)
		}
	}
}

func TestConvertAutoTileSize(t *testing.T) {
	src := solidSource(100, 50, color.RGBA{0, 0, 255, 255}, imaging.ModeRGB)

	opts := DefaultOptions() // TileSize 0 = automatic

	result, err := Convert(src, opts)
	if err != nil {
		t.Fatalf("Convert failed: %v", err)
	}

	if result.TileSize != 2 {
		t.Errorf("TileSize: got %d, want 2", result.TileSize)
	}
	if result.Columns != 50 {
		t.Errorf("Columns: got %d, want 50", result.Columns)
	}
	if want := 50 * 25; len(result.Cells) != want {
		t.Errorf("cells: got %d, want %d", len(result.Cells), want)
	}
}

func TestConvertNonDividingSizeProceeds(t *testing.T) {
	src := solidSource(10, 10, color.RGBA{0, 255, 0, 255}, imaging.ModeRGB)

	var buf bytes.Buffer
	opts := DefaultOptions()
	opts.TileSize = 3
	opts.Logger = slog.New(slog.NewTextHandler(&buf, nil))

	result, err := Convert(src, opts)
	if err != nil {
		t.Fatalf("Convert failed: %v", err)
	}

	// ceil(10/3) = 4 tiles per axis, but only floor(10/3) = 3 columns
	// reported; both behaviors are part of the contract.
	if len(result.Cells) != 16 {
		t.Errorf("cells: got %d, want 16", len(result.Cells))
	}
	if result.Columns != 3 {
		t.Errorf("Columns: got %d, want 3", result.Columns)
	}

	logged := buf.String()
	if !strings.Contains(logged, "level=WARN") {
		t.Errorf("expected a warning for non-dividing size, log was: %q", logged)
	}
	if !strings.Contains(logged, "nearest_smaller=2") || !strings.Contains(logged, "nearest_larger=5") {
		t.Errorf("warning should name the nearest divisors, log was: %q", logged)
	}
}

func TestConvertInvalidConfiguration(t *testing.T) {
	src := solidSource(10, 10, color.RGBA{0, 0, 0, 255}, imaging.ModeRGB)

	tests := []struct {
		name   string
		modify func(*Options)
	}{
		{"negative tile size", func(o *Options) { o.TileSize = -1 }},
		{"empty charset", func(o *Options) { o.Charset = "" }},
		{"bad foreground", func(o *Options) {
			o.GlyphMode = GlyphDarkness
			o.Foreground = "not-a-color"
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := DefaultOptions()
			opts.TileSize = 5
			tt.modify(&opts)

			if _, err := Convert(src, opts); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("got %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestConvertDarknessMode(t *testing.T) {
	// Top half black, bottom half white.
	img := image.NewRGBA(image.Rect(0, 0, 20, 20))
	for y := 0; y < 20; y++ {
		c := color.RGBA{0, 0, 0, 255}
		if y >= 10 {
			c = color.RGBA{255, 255, 255, 255}
		}
		for x := 0; x < 20; x++ {
			img.Set(x, y, c)
		}
	}
	src := imaging.FromImage(img, imaging.ModeLuminance)

	opts := DefaultOptions()
	opts.TileSize = 10
	opts.GlyphMode = GlyphDarkness
	opts.Monochrome = true
	opts.Foreground = "#00FF00"

	result, err := Convert(src, opts)
	if err != nil {
		t.Fatalf("Convert failed: %v", err)
	}
	if len(result.Cells) != 4 {
		t.Fatalf("cells: got %d, want 4", len(result.Cells))
	}

	darkest := rampGlyphs[0]
	lightest := rampGlyphs[len(rampGlyphs)-1]
	for i, cell := range result.Cells[:2] {
		if cell.Glyph != darkest {
			t.Errorf("top cell %d: got %q, want %q", i, cell.Glyph, darkest)
		}
	}
	for i, cell := range result.Cells[2:] {
		if cell.Glyph != lightest {
			t.Errorf("bottom cell %d: got %q, want %q", i, cell.Glyph, lightest)
		}
	}
	for i, cell := range result.Cells {
		// Foreground is fixed and normalized to lowercase hex.
		if cell.Color != "#00ff00" {
			t.Errorf("cell %d color: got %s, want #00ff00", i, cell.Color)
		}
	}
}

func TestConvertMonochromeAverage(t *testing.T) {
	// Alternating gray levels 100 and 50 average to 75 arithmetically;
	// the quadratic mean would give 79.
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{100, 100, 100, 255})
	img.Set(1, 0, color.RGBA{50, 50, 50, 255})
	img.Set(0, 1, color.RGBA{50, 50, 50, 255})
	img.Set(1, 1, color.RGBA{100, 100, 100, 255})
	src := imaging.FromImage(img, imaging.ModeLuminance)

	opts := DefaultOptions()
	opts.TileSize = 2
	opts.Monochrome = true

	result, err := Convert(src, opts)
	if err != nil {
		t.Fatalf("Convert failed: %v", err)
	}
	if len(result.Cells) != 1 {
		t.Fatalf("cells: got %d, want 1", len(result.Cells))
	}
	if want := imaging.Gray(75).Hex(); result.Cells[0].Color != want {
		t.Errorf("color: got %s, want %s", result.Cells[0].Color, want)
	}
}

func TestConvertMostCommonStrategy(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{255, 0, 0, 255})
	img.Set(1, 0, color.RGBA{255, 0, 0, 255})
	img.Set(0, 1, color.RGBA{255, 0, 0, 255})
	img.Set(1, 1, color.RGBA{0, 0, 255, 255})
	src := imaging.FromImage(img, imaging.ModeRGB)

	opts := DefaultOptions()
	opts.TileSize = 2
	opts.Strategy = StrategyMostCommon

	result, err := Convert(src, opts)
	if err != nil {
		t.Fatalf("Convert failed: %v", err)
	}
	if result.Cells[0].Color != "#ff0000" {
		t.Errorf("color: got %s, want #ff0000", result.Cells[0].Color)
	}
}

func TestConvertDominantStrategy(t *testing.T) {
	src := solidSource(20, 20, color.RGBA{255, 0, 0, 255}, imaging.ModeRGB)

	opts := DefaultOptions()
	opts.TileSize = 10
	opts.Strategy = StrategyDominant

	result, err := Convert(src, opts)
	if err != nil {
		t.Fatalf("Convert failed: %v", err)
	}
	for i, cell := range result.Cells {
		if cell.Color != "#ff0000" {
			t.Errorf("cell %d color: got %s, want #ff0000", i, cell.Color)
		}
	}
}

func TestConvertReproducibleGlyphs(t *testing.T) {
	run := func() []rune {
		src := solidSource(20, 20, color.RGBA{128, 128, 128, 255}, imaging.ModeRGB)
		opts := DefaultOptions()
		opts.TileSize = 5
		opts.Charset = "ABCD"
		opts.Rand = rand.New(rand.NewSource(99))

		result, err := Convert(src, opts)
		if err != nil {
			t.Fatalf("Convert failed: %v", err)
		}
		glyphs := make([]rune, len(result.Cells))
		for i, cell := range result.Cells {
			glyphs[i] = cell.Glyph
		}
		return glyphs
	}

	first, second := run(), run()
	if string(first) != string(second) {
		t.Errorf("same seed produced different glyph sequences:\n%q\n%q", first, second)
	}
}
