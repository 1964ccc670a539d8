package bench

import (
	"slices"

	"github.com/google/btree"
	"golang.org/x/exp/constraints"

	"github.com/arloliu/fbst/search"
)

// Strategy names as they appear in reports.
const (
	StrategyNoop     = "Noop"
	StrategyLinear   = "Linear"
	StrategyBinary   = "Binary"
	StrategyBTree    = "BTree"
	StrategyFBSTIter = "FBST (iter)"
	StrategyFBSTRef  = "FBST (ref)"
)

// btreeDegree is the google/btree node degree.
const btreeDegree = 32

// Strategy is one timed search method.
type Strategy[T constraints.Unsigned] struct {
	// Name identifies the strategy in reports.
	Name string
	// Run resolves every query and returns a sink folded from the results.
	Run func(queries []T) uint64
}

// Strategies returns every strategy prepared over ds, Noop first.
// Preparation (building the B-tree, creating cursors) happens here and is not
// part of the timed passes.
func Strategies[T constraints.Unsigned](ds *Dataset[T]) []Strategy[T] {
	return []Strategy[T]{
		{Name: StrategyNoop, Run: noop[T]},
		{Name: StrategyLinear, Run: linear(ds.Values)},
		{Name: StrategyBinary, Run: binary(ds.Values)},
		{Name: StrategyBTree, Run: ordered(ds.Values)},
		{Name: StrategyFBSTIter, Run: fbstIter(ds)},
		{Name: StrategyFBSTRef, Run: fbstRef(ds.Table.Layout())},
	}
}

func noop[T constraints.Unsigned](queries []T) uint64 {
	var sink uint64
	for _, q := range queries {
		sink += uint64(q)
	}

	return sink
}

func linear[T constraints.Unsigned](values []T) func([]T) uint64 {
	return func(queries []T) uint64 {
		var sink uint64
		for _, q := range queries {
			found := len(values)
			for i, v := range values {
				if q <= v {
					found = i
					break
				}
			}
			sink += uint64(found)
		}

		return sink
	}
}

func binary[T constraints.Unsigned](values []T) func([]T) uint64 {
	return func(queries []T) uint64 {
		var sink uint64
		for _, q := range queries {
			found, _ := slices.BinarySearch(values, q)
			sink += uint64(found)
		}

		return sink
	}
}

func ordered[T constraints.Unsigned](values []T) func([]T) uint64 {
	tree := btree.NewG(btreeDegree, func(a, b T) bool { return a < b })
	for _, v := range values {
		tree.ReplaceOrInsert(v)
	}

	return func(queries []T) uint64 {
		var sink uint64
		for _, q := range queries {
			tree.AscendGreaterOrEqual(q, func(item T) bool {
				sink += uint64(item)
				return false
			})
		}

		return sink
	}
}

func fbstIter[T constraints.Unsigned](ds *Dataset[T]) func([]T) uint64 {
	begin, end := ds.Table.Begin(), ds.Table.End()

	return func(queries []T) uint64 {
		var sink uint64
		for _, q := range queries {
			sink += uint64(search.Range(begin, end, q).Offset())
		}

		return sink
	}
}

func fbstRef[T constraints.Unsigned](buf []T) func([]T) uint64 {
	return func(queries []T) uint64 {
		var sink uint64
		for _, q := range queries {
			sink += uint64(search.Value(buf, q))
		}

		return sink
	}
}
