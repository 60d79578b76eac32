package imaging

import (
	"fmt"
	"strconv"

	"github.com/lucasb-eyer/go-colorful"
)

// RGBColor represents an RGB color with 8-bit components.
//
// Each component ranges from 0 to 255, where:
//   - 0 represents no intensity (black for all components)
//   - 255 represents full intensity (white for all components)
type RGBColor struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
}

// Hex returns the color in lowercase "#rrggbb" form, the representation
// emitted into rendered documents.
func (c RGBColor) Hex() string {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}.Hex()
}

// Luminance returns the perceived brightness of the color (0-255) using
// ITU-R BT.601 weights (0.299*R + 0.587*G + 0.114*B).
//
// For a gray color (R == G == B) this is the channel value itself.
func (c RGBColor) Luminance() uint8 {
	l := 0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)
	return uint8(l + 0.5)
}

// Gray creates the gray RGBColor with all three channels set to v.
func Gray(v uint8) RGBColor {
	return RGBColor{R: v, G: v, B: v}
}

// ParseHex parses a hex color string like "#ff0000" or "FF0000" into an
// RGBColor. Only the 6-digit form is accepted; the leading '#' is optional.
func ParseHex(hex string) (RGBColor, error) {
	if len(hex) == 0 {
		return RGBColor{}, fmt.Errorf("empty color string")
	}
	if hex[0] == '#' {
		hex = hex[1:]
	}
	if len(hex) != 6 {
		return RGBColor{}, fmt.Errorf("invalid hex color length: %q", hex)
	}

	val, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return RGBColor{}, fmt.Errorf("invalid hex color %q: %w", hex, err)
	}

	return RGBColor{
		R: uint8(val >> 16),
		G: uint8(val >> 8),
		B: uint8(val),
	}, nil
}
