package mosaic

import (
	"fmt"
	"math/rand"
	"sort"
	"time"
)

// rampGlyphs orders glyphs from darkest to lightest. rampDarkness holds the
// normalized luminance each glyph represents, ascending from 0 (black) to 1
// (white); the two tables are parallel and never mutated.
var (
	rampGlyphs = []rune("@%#*+=-:. ")

	rampDarkness = func() []float64 {
		steps := make([]float64, len(rampGlyphs))
		for i := range steps {
			steps[i] = float64(i) / float64(len(rampGlyphs)-1)
		}
		return steps
	}()
)

// GlyphForLuminance maps a normalized luminance in [0,1] to the glyph whose
// darkness value is nearest. 0 maps to the darkest glyph, 1 to the lightest;
// values outside the range clamp to the nearest end. An exact midpoint
// between two entries resolves to the darker glyph.
//
// The lookup is deterministic: equal inputs always yield the same glyph.
func GlyphForLuminance(v float64) rune {
	i := sort.SearchFloat64s(rampDarkness, v)
	if i == 0 {
		return rampGlyphs[0]
	}
	if i == len(rampDarkness) {
		return rampGlyphs[len(rampGlyphs)-1]
	}
	if rampDarkness[i] == v {
		return rampGlyphs[i]
	}
	if v-rampDarkness[i-1] <= rampDarkness[i]-v {
		return rampGlyphs[i-1]
	}
	return rampGlyphs[i]
}

// CharPicker draws glyphs from a configured pool for color-mode cells, where
// the glyph shape carries no information and only the color matters.
type CharPicker struct {
	chars []rune
	rnd   *rand.Rand
}

// NewCharPicker validates the pool and builds a picker. rnd may be nil, in
// which case a time-seeded source is used; tests pass a fixed-seed source
// for reproducible output.
//
// Returns ErrInvalidConfig when chars is empty.
func NewCharPicker(chars string, rnd *rand.Rand) (*CharPicker, error) {
	if chars == "" {
		return nil, fmt.Errorf("%w: character pool must not be empty", ErrInvalidConfig)
	}
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &CharPicker{chars: []rune(chars), rnd: rnd}, nil
}

// Pick returns an arbitrary glyph from the pool.
func (p *CharPicker) Pick() rune {
	if len(p.chars) == 1 {
		return p.chars[0]
	}
	return p.chars[p.rnd.Intn(len(p.chars))]
}
