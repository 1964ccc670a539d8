// Package bench measures the flattened tree descent against classic search
// strategies.
//
// A run generates a random sorted dataset and a random query set for one
// unsigned entry width, builds the flat layout with the table package, and
// times every Strategy over the same queries. Latencies are reported per
// query and normalized to the Noop strategy, which only touches each query.
//
// # Width dispatch
//
// The entry width is a runtime choice. RunWidth switches on it exactly once
// and calls the generic pipeline (Generate, Verify, Run) for the matching
// unsigned type, so the timed loops never branch on the width.
//
// # Strategies
//
//   - Noop: reads each query.
//   - Linear: first sorted value v with q <= v.
//   - Binary: slices.BinarySearch over the sorted values.
//   - BTree: first item >= q in a google/btree ordered tree.
//   - FBST (iter): search.Range over table cursors.
//   - FBST (ref): search.Value over the flat buffer.
//
// Every strategy folds its results into a sink that ends up in the Report, so
// the compiler cannot drop the timed work.
package bench
