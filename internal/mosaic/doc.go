// Package mosaic implements the image-to-character-grid conversion core.
//
// A conversion partitions a decoded image into square tiles, reduces each
// tile to a representative color or luminance, and assigns each tile a glyph,
// producing an ordered cell sequence the renderer lays out as a grid.
//
// # Pipeline
//
// Convert drives the stages in order:
//
//  1. Tile size resolution — an explicit size is validated (and warned about
//     when it does not divide the image evenly); otherwise AutoTileSize
//     searches the common divisors of the dimensions for a size near 2% of
//     the width, which keeps every row at the same column count.
//  2. Tiling — Tiles enumerates square regions row-major, aligned to the
//     grid origin. Edge tiles may be nominally larger than the remaining
//     pixels; the decoder clamps reads.
//  3. Summarization — each tile's histogram collapses to one color under
//     the configured Strategy, or to a mean luminance in monochrome space.
//  4. Glyph assignment — color mode draws an arbitrary glyph from the
//     configured pool and carries the signal in the cell color; darkness
//     mode maps the tile luminance onto a fixed darkest-to-lightest glyph
//     ramp and uses one foreground color for every cell.
//
// # Ordering
//
// Cells are emitted strictly in row-major tile order because the grid layout
// is positional. Tile summarizations are independent of each other, but the
// pipeline runs them sequentially; a single conversion is synchronous,
// one-shot, and shares no state with other conversions.
//
// # Error Handling
//
// Configuration problems (non-positive tile size, empty character pool, bad
// foreground color, degenerate dimensions) fail with ErrInvalidConfig before
// any pixel is read. A zero-pixel tile histogram fails with
// ErrEmptyHistogram; the tiler cannot produce one, so that path guards
// against caller bugs. There are no retries and no partial results.
package mosaic
