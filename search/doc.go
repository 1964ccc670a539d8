// Package search resolves queries against a flattened binary search tree.
//
// A flattened tree is a plain slice holding an implicit binary tree: the root
// lives at position 0 and the children of position i live at 2i+1 and 2i+2,
// provided those positions are inside the buffer. The buffer must satisfy the
// layout invariant, which is that an in-order walk of the implicit tree yields
// a non-decreasing sequence. The layout package builds such buffers.
//
// # Descent
//
// Every entry point in this package runs the same loop:
//
//	pos, last := 0, 0
//	for {
//	    last = pos
//	    if data[pos] <= val {
//	        pos = 2*pos + 1
//	    } else {
//	        pos = 2*pos + 2
//	    }
//	    if pos >= size {
//	        return last
//	    }
//	}
//
// The result is the position of the last node visited before the next child
// position falls outside the buffer. It is a tree position, not a rank in the
// sorted order, and it is not a lower bound: a node holding a value <= val
// sends the descent to position 2i+1. Callers comparing this descent against
// classic binary search depend on that exact stopping rule, so it is kept
// as-is.
//
// The loop runs at most MaxSteps(size) iterations, performs no allocation and
// reads one element per iteration.
//
// # Entry points
//
//   - Index: slice plus explicit length, returns a position.
//   - IndexFunc: same descent with a caller supplied <= predicate, for query
//     types that differ from the element type.
//   - Range: a pair of Cursors over any Sequence, returns a Cursor.
//   - Value and Ref: container forms returning the element or a pointer to it.
//   - Checked: Index with explicit errors for an empty or oversized length.
//   - Path: the visited positions, for diagnostics.
//
// # Preconditions
//
// All unchecked entry points require 1 <= size <= len(data); anything else
// panics with an index out of range. Use Checked when the length is not known
// to be valid.
//
// # Thread Safety
//
// Search functions never write to the buffer. Any number of goroutines may
// search the same buffer concurrently as long as nothing mutates it.
package search
