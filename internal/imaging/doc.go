// Package imaging provides image decoding and per-region color analysis for
// the mosaic pipeline.
//
// This package is the pipeline's decoder collaborator: it loads an image in a
// requested color mode (full RGB or single-channel luminance) and exposes the
// primitives the conversion core consumes — dimensions, rectangular
// sub-region access, and per-region color histograms.
//
// # Coordinate System
//
// All pixel coordinates are 0-based with the origin at the top-left corner:
//   - X: horizontal position (0 = leftmost pixel)
//   - Y: vertical position (0 = topmost pixel)
//   - For regions, the minimum corner is inclusive and the maximum corner
//     is exclusive
//
// Decoded sources are normalized so their bounds always start at (0,0),
// regardless of the bounds of the original image.
//
// # Boundary Behavior
//
// Region and histogram requests are clamped to the image bounds. A rectangle
// hanging over the right or bottom edge yields only the pixels that exist;
// a rectangle fully outside the image yields an empty result. Callers that
// require at least one pixel must check for the empty case themselves.
//
// # Color Representation
//
// Colors are 8-bit RGB throughout. Images decoded in luminance mode read
// back with R == G == B, so the red channel doubles as the gray value.
// Hex output is lowercase "#rrggbb".
//
// # Error Handling
//
// Load returns a wrapped error when the file cannot be opened or decoded.
// All other operations are total: they cannot fail, only return empty
// results for degenerate inputs.
package imaging
