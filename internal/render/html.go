package render

import (
	"fmt"
	"html"
	"math"
	"os"
	"strings"

	"github.com/kripi-png/glyphmosaic/internal/mosaic"
)

// Style holds the presentation knobs for the generated document.
type Style struct {
	// Background is the page background, as a hex color or CSS color name.
	Background string

	// FontSize is the glyph font size in px. Grid cells are square with a
	// side of ceil(FontSize * 0.75) px, so adjacent glyphs touch instead
	// of floating apart.
	FontSize int
}

// DefaultStyle returns the document style used when nothing is configured.
func DefaultStyle() Style {
	return Style{Background: "#262626", FontSize: 24}
}

// Document renders the conversion result as a standalone HTML page.
//
// Cells become <span> elements inside a CSS grid of res.Columns columns, in
// the same order as res.Cells, so the browser reproduces the row-major tile
// layout. Glyphs are entity-escaped before insertion; a literal '<' in the
// character pool cannot break the markup.
func Document(res *mosaic.Result, style Style) string {
	cellSize := int(math.Ceil(float64(style.FontSize) * 0.75))

	var b strings.Builder
	b.Grow(len(res.Cells)*40 + 512)

	b.WriteString("<html><head><style>")
	fmt.Fprintf(&b, "body { line-height: %dpx; background: %s; display: grid; grid-template-columns: repeat(%d, %dpx); align-content: start; }",
		cellSize, style.Background, res.Columns, cellSize)
	fmt.Fprintf(&b, "\nspan { font-size: %dpx; }", cellSize)
	b.WriteString("</style></head><body>")

	for _, cell := range res.Cells {
		fmt.Fprintf(&b, "<span style='color: %s;'>%s</span>",
			cell.Color, html.EscapeString(string(cell.Glyph)))
	}

	b.WriteString("</body></html>")
	return b.String()
}

// WriteFile renders the result and writes it to path, replacing any existing
// file. Nothing is written when rendering input is invalid upstream; by the
// time this runs the conversion has already fully succeeded.
func WriteFile(path string, res *mosaic.Result, style Style) error {
	if err := os.WriteFile(path, []byte(Document(res, style)), 0o644); err != nil {
		return fmt.Errorf("failed to write document: %w", err)
	}
	return nil
}
