package layout

import (
	"math/bits"

	"github.com/hideo55/go-popcount"
)

// Left returns the position of the left child of pos.
func Left(pos int) int { return 2*pos + 1 }

// Right returns the position of the right child of pos.
func Right(pos int) int { return 2*pos + 2 }

// Parent returns the position of the parent of pos, or -1 for the root.
func Parent(pos int) int {
	if pos <= 0 {
		return -1
	}

	return (pos - 1) / 2
}

// Depth returns the number of levels of an implicit tree holding n nodes.
func Depth(n int) int {
	if n <= 0 {
		return 0
	}

	return bits.Len(uint(n))
}

// IsPerfect reports whether an implicit tree of n nodes has every level full,
// which is the case exactly when n+1 is a power of two.
func IsPerfect(n int) bool {
	if n <= 0 {
		return false
	}

	return popcount.Count(uint64(n)+1) == 1
}
