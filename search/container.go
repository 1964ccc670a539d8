package search

import "cmp"

// Value searches the whole of data and returns the element at the resulting
// position. data must not be empty.
//
// A fixed-size array is searched by slicing it: Value(arr[:], val).
func Value[T cmp.Ordered](data []T, val T) T {
	return data[Index(data, len(data), val)]
}

// Ref searches the whole of data and returns a pointer to the element at the
// resulting position, so the caller can update it in place. data must not be
// empty.
//
// Writing through the pointer can break the layout invariant; it is the
// caller's job to keep the buffer ordered.
func Ref[T cmp.Ordered](data []T, val T) *T {
	return &data[Index(data, len(data), val)]
}
