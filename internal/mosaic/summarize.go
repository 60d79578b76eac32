package mosaic

import (
	"fmt"
	"image"
	"math"
	"sort"

	"github.com/cenkalti/dominantcolor"

	"github.com/kripi-png/glyphmosaic/internal/imaging"
)

// Strategy selects how a tile's pixels collapse to one representative color.
type Strategy int

const (
	// StrategyAverage blends every pixel via the per-channel quadratic
	// mean. This is the default.
	StrategyAverage Strategy = iota

	// StrategyMostCommon picks the color covering the most pixels.
	StrategyMostCommon

	// StrategyDominant picks the perceptually dominant color of the tile
	// by k-means clustering. Unlike the other strategies it works on the
	// tile's pixels directly rather than on its histogram.
	StrategyDominant
)

// String returns the strategy name as used on the command line.
func (s Strategy) String() string {
	switch s {
	case StrategyAverage:
		return "average"
	case StrategyMostCommon:
		return "most-common"
	case StrategyDominant:
		return "dominant"
	default:
		return fmt.Sprintf("strategy(%d)", int(s))
	}
}

// Summarize reduces one tile histogram to a representative color.
//
// In RGB space the average strategy is the quadratic mean per channel:
// sqrt(sum(count*c²)/total), truncated to an integer. Squaring before the
// mean matches perceived brightness when saturated colors mix; a plain
// arithmetic mean over-darkens. In monochrome space (every color gray) the
// average collapses to the arithmetic mean luminance instead, truncated
// toward zero.
//
// The most-common strategy sorts entries ascending by count with a stable
// sort and takes the last one, so equal counts resolve to the color the
// scan encountered last among them.
//
// StrategyDominant is not histogram-based; use SummarizeDominant. Passing it
// here is a programming error and fails with ErrInvalidConfig.
//
// An empty histogram fails with ErrEmptyHistogram. The tiler never produces
// a zero-pixel tile, so that error is unreachable in the normal pipeline.
func Summarize(h *imaging.ColorHistogram, strategy Strategy, monochrome bool) (imaging.RGBColor, error) {
	if h.Total() == 0 {
		return imaging.RGBColor{}, ErrEmptyHistogram
	}

	switch strategy {
	case StrategyAverage:
		if monochrome {
			return imaging.Gray(meanLuminance(h)), nil
		}
		return quadraticMean(h), nil
	case StrategyMostCommon:
		return mostCommon(h), nil
	default:
		return imaging.RGBColor{}, fmt.Errorf("%w: strategy %v is not histogram-based", ErrInvalidConfig, strategy)
	}
}

// SummarizeDominant finds the dominant color of a tile's pixels.
//
// Returns ErrEmptyHistogram when the tile holds no pixels, mirroring the
// histogram-based strategies.
func SummarizeDominant(tile image.Image) (imaging.RGBColor, error) {
	b := tile.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return imaging.RGBColor{}, ErrEmptyHistogram
	}
	c := dominantcolor.Find(tile)
	return imaging.RGBColor{R: c.R, G: c.G, B: c.B}, nil
}

// quadraticMean computes sqrt(sum(count*c²)/total) per channel, truncated.
func quadraticMean(h *imaging.ColorHistogram) imaging.RGBColor {
	var r, g, b float64
	for _, e := range h.Entries() {
		n := float64(e.Count)
		r += n * float64(e.Color.R) * float64(e.Color.R)
		g += n * float64(e.Color.G) * float64(e.Color.G)
		b += n * float64(e.Color.B) * float64(e.Color.B)
	}

	total := float64(h.Total())
	return imaging.RGBColor{
		R: uint8(math.Sqrt(r / total)),
		G: uint8(math.Sqrt(g / total)),
		B: uint8(math.Sqrt(b / total)),
	}
}

// mostCommon returns the entry with the highest count; ties go to the entry
// added last among the tied ones.
func mostCommon(h *imaging.ColorHistogram) imaging.RGBColor {
	entries := append([]imaging.HistogramEntry(nil), h.Entries()...)
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count < entries[j].Count
	})
	return entries[len(entries)-1].Color
}

// meanLuminance computes the arithmetic mean luminance, truncated toward
// zero. Intended for monochrome histograms, where luminance is the gray
// channel value itself.
func meanLuminance(h *imaging.ColorHistogram) uint8 {
	sum := 0
	for _, e := range h.Entries() {
		sum += e.Count * int(e.Color.Luminance())
	}
	return uint8(sum / h.Total())
}
