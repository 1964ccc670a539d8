// Package section defines the low-level binary structures and constants for
// encoded fbst tables.
//
// An encoded table is a fixed-size header followed by a single payload:
//
//	┌─────────────────────────────────────────────────────────┐
//	│ Header (32 bytes, fixed)                                │
//	│  - Flag (4 bytes): magic, options, shape, compression   │
//	│  - Count (8 bytes)                                      │
//	│  - PayloadSize, RawSize (8 bytes)                       │
//	│  - Checksum (8 bytes): xxHash64 of the raw payload      │
//	│  - Reserved (4 bytes)                                   │
//	├─────────────────────────────────────────────────────────┤
//	│ Payload (variable)                                      │
//	│  - Count fixed-width values in flat layout order        │
//	│  - Optionally compressed                                │
//	└─────────────────────────────────────────────────────────┘
//
// # Header Format
//
//	Bytes  | Field           | Type   | Description
//	-------|-----------------|--------|-----------------------------------------
//	0-1    | Options         | uint16 | Magic (bits 4-15), endianness, signedness
//	2      | Shape           | uint8  | Layout (bits 0-3), width in bytes (4-7)
//	3      | CompressionType | uint8  | Payload compression
//	4-11   | Count           | uint64 | Number of values
//	12-15  | PayloadSize     | uint32 | Stored payload size in bytes
//	16-19  | RawSize         | uint32 | Uncompressed payload size in bytes
//	20-27  | Checksum        | uint64 | xxHash64 of the uncompressed payload
//	28-31  | Reserved        | uint32 | Must be zero
//
// The Options field is always little-endian. Every other multi-byte field,
// including the payload values, uses the byte order selected by the
// endianness bit.
package section
