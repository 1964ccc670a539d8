package search

import (
	"cmp"
	"math/bits"

	"github.com/arloliu/fbst/errs"
)

// Index returns the position of the last node visited by the descent for val
// over the first size elements of data.
//
// size must satisfy 1 <= size <= len(data).
//
// Example:
//
//	buf := layout.Build([]uint32{1, 2, 3, 4, 5, 6, 7}) // [4 2 6 1 3 5 7]
//	pos := search.Index(buf, len(buf), 0)              // 6
func Index[T cmp.Ordered](data []T, size int, val T) int {
	data = data[:size]

	pos, last := 0, 0
	for {
		last = pos
		if data[pos] <= val {
			pos = pos*2 + 1
		} else {
			pos = pos*2 + 2
		}
		if pos >= size {
			return last
		}
	}
}

// IndexFunc is Index for query types that differ from the element type.
//
// le(elem, val) must report whether elem <= val. The predicate is called
// exactly once per visited node.
func IndexFunc[E, Q any](data []E, size int, val Q, le func(E, Q) bool) int {
	data = data[:size]

	pos, last := 0, 0
	for {
		last = pos
		if le(data[pos], val) {
			pos = pos*2 + 1
		} else {
			pos = pos*2 + 2
		}
		if pos >= size {
			return last
		}
	}
}

// Checked is Index with an explicit precondition check.
//
// Returns:
//   - int: the descent position
//   - error: errs.ErrEmptyInput if size is zero, errs.ErrOutOfRange if size
//     is negative or larger than len(data)
func Checked[T cmp.Ordered](data []T, size int, val T) (int, error) {
	if size == 0 {
		return 0, errs.ErrEmptyInput
	}
	if size < 0 || size > len(data) {
		return 0, errs.ErrOutOfRange
	}

	return Index(data, size, val), nil
}

// MaxSteps returns the maximum number of loop iterations the descent can take
// over a buffer of the given size, which is ceil(log2(size+1)).
func MaxSteps(size int) int {
	if size <= 0 {
		return 0
	}

	return bits.Len(uint(size))
}

// Path appends every position visited by the descent for val to dst and
// returns the extended slice. The last appended position equals the result of
// Index for the same arguments.
func Path[T cmp.Ordered](dst []int, data []T, size int, val T) []int {
	data = data[:size]

	pos := 0
	for pos < size {
		dst = append(dst, pos)
		if data[pos] <= val {
			pos = pos*2 + 1
		} else {
			pos = pos*2 + 2
		}
	}

	return dst
}
