// Package table wraps a flat search tree buffer in an immutable value with a
// query API and a compact binary encoding.
//
// # Building
//
//	tbl, err := table.New([]uint32{1, 2, 3, 4, 5, 6, 7})
//	if err != nil {
//	    return err
//	}
//	pos := tbl.Index(0)   // 6
//	v := tbl.Lookup(0)    // 7
//
// New copies and checks its input. The layout defaults to the in-order fill;
// WithLayout(format.LayoutMidpoint) selects the compacted midpoint layout used
// by the reference benchmark harness.
//
// # Encoding
//
// Encode produces a 32-byte section.Header followed by the values in flat
// order, each stored with the width of T:
//
//	blob, err := tbl.Encode(table.WithCompression(format.CompressionZstd))
//	decoded, err := table.Decode[uint32](blob)
//
// The header records width and signedness, so Decode rejects a blob written
// for a different element type with errs.ErrWidthMismatch. The payload is
// protected by an xxHash64 checksum taken before compression.
//
// # Thread Safety
//
// A Table never changes after construction and is safe for concurrent use.
package table
