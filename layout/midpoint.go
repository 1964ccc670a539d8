package layout

import (
	"cmp"
	"slices"
)

type pathEntry[T any] struct {
	path  int
	value T
}

// BuildMidpoint builds a flat buffer the way the reference benchmark harness
// does: a balanced tree is formed by picking the element at len/2 of each
// range as the subtree root, each node is tagged with its implicit tree
// position, the nodes are sorted by that position and the gaps are dropped.
//
// The result equals Build(sorted) when len(sorted) is 2^k-1. For any other
// length positions are compacted and the buffer is generally not a valid
// layout; Validate will report it.
func BuildMidpoint[T any](sorted []T) []T {
	if len(sorted) == 0 {
		return []T{}
	}

	entries := make([]pathEntry[T], 0, len(sorted))
	entries = collectMidpoint(entries, sorted, 0)

	slices.SortStableFunc(entries, func(a, b pathEntry[T]) int {
		return cmp.Compare(a.path, b.path)
	})

	dst := make([]T, len(entries))
	for i, e := range entries {
		dst[i] = e.value
	}

	return dst
}

// collectMidpoint appends the nodes of the balanced tree over values in
// pre-order, tagging each with its implicit tree position.
func collectMidpoint[T any](entries []pathEntry[T], values []T, path int) []pathEntry[T] {
	if len(values) == 0 {
		return entries
	}

	mid := len(values) / 2
	entries = append(entries, pathEntry[T]{path: path, value: values[mid]})
	if mid == 0 {
		return entries
	}

	entries = collectMidpoint(entries, values[:mid], Left(path))

	return collectMidpoint(entries, values[mid+1:], Right(path))
}
