package mosaic

import (
	"fmt"
	"sort"
)

// autoSizeTargetPercent is the percentage of the image width the automatic
// tile size aims for. 2% of the width gives roughly 50 columns on typical
// images.
const autoSizeTargetPercent = 2

// CommonDivisors returns every integer that divides both width and height
// evenly, in ascending order. The result always contains at least 1.
//
// Returns ErrInvalidConfig when either dimension is not positive.
func CommonDivisors(width, height int) ([]int, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: image dimensions must be positive, got %dx%d", ErrInvalidConfig, width, height)
	}

	limit := width
	if height < limit {
		limit = height
	}

	var divisors []int
	for d := 1; d <= limit; d++ {
		if width%d == 0 && height%d == 0 {
			divisors = append(divisors, d)
		}
	}
	return divisors, nil
}

// AutoTileSize picks a tile size for a width x height image when none was
// given. The chosen size divides both dimensions evenly, so every row of
// tiles wraps to the same column count and no partial tiles appear at the
// edges — uneven wrapping is what makes the output look slanted.
//
// The search targets floor(width * 0.02) and settles on the common divisor
// closest to it, preferring the smaller one on a tie (smaller tiles, more
// columns).
func AutoTileSize(width, height int) (int, error) {
	divisors, err := CommonDivisors(width, height)
	if err != nil {
		return 0, err
	}

	target := width * autoSizeTargetPercent / 100

	i := sort.SearchInts(divisors, target)
	if i < len(divisors) && divisors[i] == target {
		return target, nil
	}
	if i == 0 {
		return divisors[0], nil
	}
	if i == len(divisors) {
		return divisors[len(divisors)-1], nil
	}

	prev, next := divisors[i-1], divisors[i]
	if target-prev <= next-target {
		return prev, nil
	}
	return next, nil
}

// Divides reports whether size evenly divides both dimensions.
func Divides(width, height, size int) bool {
	return size > 0 && width%size == 0 && height%size == 0
}

// NearestDivisors returns the common divisors of width and height closest to
// size on either side, for suggesting alternatives when an explicit size
// does not divide the image evenly. A zero value means no divisor exists on
// that side; when size itself is a common divisor both neighbors skip it.
func NearestDivisors(width, height, size int) (lower, upper int) {
	divisors, err := CommonDivisors(width, height)
	if err != nil {
		return 0, 0
	}

	i := sort.SearchInts(divisors, size)
	if i > 0 {
		lower = divisors[i-1]
	}
	if i < len(divisors) && divisors[i] == size {
		i++
	}
	if i < len(divisors) {
		upper = divisors[i]
	}
	return lower, upper
}
