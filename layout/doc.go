// Package layout builds and inspects flattened binary search tree buffers.
//
// A flat buffer stores an implicit binary tree in breadth-first order: the
// root at position 0 and the children of position i at 2i+1 and 2i+2. A
// buffer is valid when an in-order walk of that implicit tree yields a
// non-decreasing sequence.
//
// Two builders are provided:
//
//   - Build fills the implicit tree directly in in-order, which yields a valid
//     buffer for every length.
//   - BuildMidpoint reproduces the recursive midpoint construction used by the
//     reference benchmark harness. Its output equals Build for lengths of the
//     form 2^k-1. For other lengths the compaction step shifts nodes out of
//     their tree positions and the result does not satisfy the invariant.
//
// Example:
//
//	buf := layout.Build([]int{1, 2, 3, 4, 5, 6, 7})
//	// buf == [4 2 6 1 3 5 7]
//	err := layout.Validate(buf) // nil
package layout
