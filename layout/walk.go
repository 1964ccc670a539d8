package layout

import "iter"

// Walk calls fn for every position of an implicit tree with n nodes in
// in-order. It stops early when fn returns false.
func Walk(n int, fn func(pos int) bool) {
	// An implicit tree over an int-indexed slice is never deeper than 64.
	var stack [64]int
	top := 0
	pos := 0

	for pos < n || top > 0 {
		for pos < n {
			stack[top] = pos
			top++
			pos = Left(pos)
		}

		top--
		pos = stack[top]
		if !fn(pos) {
			return
		}
		pos = Right(pos)
	}
}

// Positions returns an iterator over the positions of an implicit tree with n
// nodes in in-order.
func Positions(n int) iter.Seq[int] {
	return func(yield func(int) bool) {
		Walk(n, yield)
	}
}

// InOrder returns the elements of buf in in-order of its implicit tree. For a
// valid layout the result is sorted.
func InOrder[T any](buf []T) []T {
	out := make([]T, 0, len(buf))
	Walk(len(buf), func(pos int) bool {
		out = append(out, buf[pos])
		return true
	})

	return out
}
