package mosaic

import "errors"

var (
	// ErrInvalidConfig reports a configuration that can never produce
	// output: a non-positive tile size, an empty character pool, or
	// degenerate image dimensions. Conversion aborts before any image
	// work is done.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrEmptyHistogram reports a zero-pixel tile histogram. The tiler
	// never produces such a tile, so hitting this indicates a bug in the
	// caller rather than bad input.
	ErrEmptyHistogram = errors.New("empty tile histogram")
)
