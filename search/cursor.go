package search

import "cmp"

// Sequence is a random-access view over a contiguous run of elements.
type Sequence[T any] interface {
	Len() int
	At(i int) T
}

// Slice adapts a Go slice to Sequence.
type Slice[T any] []T

var _ Sequence[int] = Slice[int](nil)

// Len returns the number of elements.
func (s Slice[T]) Len() int { return len(s) }

// At returns the element at position i.
func (s Slice[T]) At(i int) T { return s[i] }

// Cursor marks a position inside a Sequence.
//
// Cursors are values: Add returns a new Cursor and never modifies the
// receiver. Two cursors are only comparable when they refer to the same
// Sequence.
type Cursor[T any] struct {
	seq Sequence[T]
	off int
}

// Begin returns a Cursor at the first element of seq.
func Begin[T any](seq Sequence[T]) Cursor[T] {
	return Cursor[T]{seq: seq}
}

// End returns a Cursor one past the last element of seq.
func End[T any](seq Sequence[T]) Cursor[T] {
	return Cursor[T]{seq: seq, off: seq.Len()}
}

// Add returns a Cursor moved n elements forward (or backward for negative n).
func (c Cursor[T]) Add(n int) Cursor[T] {
	return Cursor[T]{seq: c.seq, off: c.off + n}
}

// Offset returns the position of the cursor within its Sequence.
func (c Cursor[T]) Offset() int {
	return c.off
}

// Value returns the element under the cursor.
// It panics if the cursor is at or past the end.
func (c Cursor[T]) Value() T {
	return c.seq.At(c.off)
}

// Equal reports whether c and other mark the same position.
func (c Cursor[T]) Equal(other Cursor[T]) bool {
	return c.off == other.off
}

// Distance returns the number of elements between from and to.
func Distance[T any](from, to Cursor[T]) int {
	return to.off - from.off
}

// Range runs the descent over the elements in [start, end) and returns a
// Cursor at start plus the resulting relative position.
//
// The range must contain at least one element. The element type of the
// cursors and the query type are the same type parameter, so a mismatch is
// rejected at compile time.
func Range[T cmp.Ordered](start, end Cursor[T], val T) Cursor[T] {
	size := Distance(start, end)
	seq, base := start.seq, start.off

	pos, last := 0, 0
	for {
		last = pos
		if seq.At(base+pos) <= val {
			pos = pos*2 + 1
		} else {
			pos = pos*2 + 2
		}
		if pos >= size {
			return start.Add(last)
		}
	}
}
