// Package fbst provides flattened binary search trees: sorted values stored as
// an implicit binary tree in one contiguous slice, searched by index
// arithmetic alone.
//
// The root lives at position 0 and the children of position i at 2i+1 and
// 2i+2. A search descends from the root, going to 2i+1 when the node value is
// <= the query and to 2i+2 otherwise, and returns the last position visited
// before the next child falls outside the slice.
//
// # Core Features
//
//   - Allocation-free descent over any cmp.Ordered element type
//   - Slice, cursor-range and container entry points (package search)
//   - In-order and midpoint layout builders with validation (package layout)
//   - Immutable integer tables with a checksummed binary encoding and
//     optional compression (None, Zstd, S2, LZ4) (package table)
//   - A benchmark harness comparing the descent with linear scan, binary
//     search and a B-tree (package bench, command fbstbench)
//
// # Basic Usage
//
//	buf := fbst.Build([]uint32{1, 2, 3, 4, 5, 6, 7}) // [4 2 6 1 3 5 7]
//	pos := fbst.Search(buf, 0)                       // 6
//
// Tables add validation and persistence:
//
//	tbl, _ := fbst.NewTable(sorted)
//	blob, _ := fbst.EncodeTable(tbl)
//	decoded, _ := fbst.DecodeTable[uint64](blob)
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the layout,
// search and table packages for the most common use cases. For fine-grained
// control, use those packages directly.
package fbst

import (
	"cmp"

	"golang.org/x/exp/constraints"

	"github.com/arloliu/fbst/format"
	"github.com/arloliu/fbst/layout"
	"github.com/arloliu/fbst/search"
	"github.com/arloliu/fbst/table"
)

var defaultEncodeOptions = []table.EncodeOption{
	table.WithLittleEndian(),
	table.WithCompression(format.CompressionNone),
}

// Build returns the in-order flat layout of a non-decreasing sequence.
// The input is not modified.
func Build[T cmp.Ordered](sorted []T) []T {
	return layout.Build(sorted)
}

// Search returns the descent position for q over the whole of buf.
// buf must not be empty.
func Search[T cmp.Ordered](buf []T, q T) int {
	return search.Index(buf, len(buf), q)
}

// Lookup returns the value at the descent position for q over the whole of
// buf. buf must not be empty.
func Lookup[T cmp.Ordered](buf []T, q T) T {
	return search.Value(buf, q)
}

// NewTable builds a table from a non-decreasing sequence.
//
// Returns errs.ErrEmptyInput, errs.ErrUnsorted, or an option error.
func NewTable[T constraints.Integer](sorted []T, opts ...table.Option) (*table.Table[T], error) {
	return table.New(sorted, opts...)
}

// EncodeTable serializes t with the default settings: little-endian and
// uncompressed. opts are applied after the defaults and override them.
//
// Example:
//
//	blob, err := fbst.EncodeTable(tbl, table.WithCompression(format.CompressionZstd))
func EncodeTable[T constraints.Integer](t *table.Table[T], opts ...table.EncodeOption) ([]byte, error) {
	allOpts := make([]table.EncodeOption, 0, len(defaultEncodeOptions)+len(opts))
	allOpts = append(allOpts, defaultEncodeOptions...)
	allOpts = append(allOpts, opts...)

	return t.Encode(allOpts...)
}

// DecodeTable parses a blob produced by EncodeTable for the same element type.
func DecodeTable[T constraints.Integer](data []byte) (*table.Table[T], error) {
	return table.Decode[T](data)
}
