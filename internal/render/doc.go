// Package render turns a conversion result into a styled HTML document.
//
// The renderer only guarantees layout: one glyph per grid cell, result.Columns
// cells per row, cells in the same order as the input sequence. Styling
// (background, font size) is configurable but incidental.
package render
