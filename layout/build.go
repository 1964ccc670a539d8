package layout

import (
	"fmt"

	"github.com/arloliu/fbst/errs"
)

// Build returns a new flat buffer holding the elements of sorted arranged so
// that the in-order walk of the implicit tree reproduces sorted.
//
// sorted is expected to be non-decreasing; Build does not check it. An empty
// input yields an empty buffer.
func Build[T any](sorted []T) []T {
	dst := make([]T, len(sorted))
	fill(dst, sorted, 0, 0)

	return dst
}

// BuildInto writes the flat layout of sorted into dst.
//
// Returns errs.ErrOutOfRange if dst and sorted differ in length.
func BuildInto[T any](dst, sorted []T) error {
	if len(dst) != len(sorted) {
		return fmt.Errorf("%w: dst has %d elements, sorted has %d", errs.ErrOutOfRange, len(dst), len(sorted))
	}

	fill(dst, sorted, 0, 0)

	return nil
}

// fill assigns sorted[next:] to the subtree rooted at pos in in-order and
// returns the index of the next unconsumed element.
func fill[T any](dst, sorted []T, pos, next int) int {
	if pos >= len(dst) {
		return next
	}

	next = fill(dst, sorted, Left(pos), next)
	dst[pos] = sorted[next]
	next++

	return fill(dst, sorted, Right(pos), next)
}
