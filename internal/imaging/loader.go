package imaging

import (
	"fmt"
	"image"

	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder

	_ "golang.org/x/image/bmp"  // Register BMP format decoder
	_ "golang.org/x/image/tiff" // Register TIFF format decoder
	_ "golang.org/x/image/webp" // Register WebP format decoder

	"github.com/anthonynsimon/bild/effect"
	"github.com/disintegration/imaging"
)

// Mode selects the color space an image is decoded into.
type Mode int

const (
	// ModeRGB keeps all three color channels.
	ModeRGB Mode = iota

	// ModeLuminance collapses the image to a single gray channel at decode
	// time. All pixels read back with R == G == B.
	ModeLuminance
)

// String returns the mode name for logging.
func (m Mode) String() string {
	switch m {
	case ModeRGB:
		return "rgb"
	case ModeLuminance:
		return "luminance"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// Source is a decoded image prepared for tiling.
//
// A Source is immutable after construction and owned by a single conversion;
// it exposes dimensions, rectangular sub-region access, and per-region color
// histograms. Bounds are normalized so the top-left pixel is (0,0).
type Source struct {
	img    image.Image
	mode   Mode
	width  int
	height int
}

// Load decodes the image at path into the requested color mode.
//
// Supported formats are PNG, JPEG, GIF, BMP, TIFF, and WebP. JPEG images
// carrying an EXIF orientation tag are rotated upright during decoding.
//
// Returns an error if the file cannot be opened or decoded. No partial
// Source is ever returned.
func Load(path string, mode Mode) (*Source, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return FromImage(img, mode), nil
}

// FromImage wraps an already-decoded image as a Source in the given mode.
// The pixel data is copied, so later changes to img are not observed.
func FromImage(img image.Image, mode Mode) *Source {
	normalized := imaging.Clone(img)
	if mode == ModeLuminance {
		return &Source{
			img:    effect.Grayscale(normalized),
			mode:   mode,
			width:  normalized.Bounds().Dx(),
			height: normalized.Bounds().Dy(),
		}
	}
	return &Source{
		img:    normalized,
		mode:   mode,
		width:  normalized.Bounds().Dx(),
		height: normalized.Bounds().Dy(),
	}
}

// Width returns the image width in pixels.
func (s *Source) Width() int { return s.width }

// Height returns the image height in pixels.
func (s *Source) Height() int { return s.height }

// Mode returns the color mode the image was decoded into.
func (s *Source) Mode() Mode { return s.mode }

// Region returns a copy of the pixels inside r. The rectangle is clamped to
// the image bounds first, so a region hanging over the right or bottom edge
// yields only the pixels that actually exist.
func (s *Source) Region(r image.Rectangle) *image.NRGBA {
	return imaging.Crop(s.img, r.Intersect(image.Rect(0, 0, s.width, s.height)))
}

// Histogram counts the distinct colors inside r, clamped to the image
// bounds. Entries are recorded in scan order (left to right, top to bottom),
// which downstream stable sorts rely on for tie-breaking.
func (s *Source) Histogram(r image.Rectangle) *ColorHistogram {
	clamped := r.Intersect(image.Rect(0, 0, s.width, s.height))

	h := NewColorHistogram()
	for y := clamped.Min.Y; y < clamped.Max.Y; y++ {
		for x := clamped.Min.X; x < clamped.Max.X; x++ {
			cr, cg, cb, _ := s.img.At(x, y).RGBA()
			// Convert from 16-bit to 8-bit
			h.Add(RGBColor{R: uint8(cr >> 8), G: uint8(cg >> 8), B: uint8(cb >> 8)})
		}
	}
	return h
}
