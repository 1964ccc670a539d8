package format

import "strings"

type (
	Width           uint8
	LayoutType      uint8
	CompressionType uint8
)

const (
	Width8  Width = 1 // Width8 selects uint8 entries.
	Width16 Width = 2 // Width16 selects uint16 entries.
	Width32 Width = 4 // Width32 selects uint32 entries.
	Width64 Width = 8 // Width64 selects uint64 entries.

	LayoutInOrder  LayoutType = 0x1 // LayoutInOrder fills the implicit tree by in-order traversal.
	LayoutMidpoint LayoutType = 0x2 // LayoutMidpoint reproduces the midpoint tree, compacted by path index.

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

// ParseWidth maps an entry byte-width selector to a Width.
// Any value other than 1, 2 or 4 selects Width64.
func ParseWidth(size uint64) Width {
	switch size {
	case 1:
		return Width8
	case 2:
		return Width16
	case 4:
		return Width32
	default:
		return Width64
	}
}

// Bytes returns the number of bytes used by one entry.
func (w Width) Bytes() int {
	return int(w)
}

// Bits returns the number of bits used by one entry.
func (w Width) Bits() int {
	return int(w) * 8
}

// IsValid reports whether w is one of the supported widths.
func (w Width) IsValid() bool {
	switch w {
	case Width8, Width16, Width32, Width64:
		return true
	default:
		return false
	}
}

func (w Width) String() string {
	switch w {
	case Width8:
		return "uint8"
	case Width16:
		return "uint16"
	case Width32:
		return "uint32"
	case Width64:
		return "uint64"
	default:
		return "Unknown"
	}
}

func (l LayoutType) String() string {
	switch l {
	case LayoutInOrder:
		return "InOrder"
	case LayoutMidpoint:
		return "Midpoint"
	default:
		return "Unknown"
	}
}

// ParseLayout parses a layout name, case-insensitively.
// It returns false for unknown names.
func ParseLayout(name string) (LayoutType, bool) {
	switch strings.ToLower(name) {
	case "inorder", "in-order", "":
		return LayoutInOrder, true
	case "midpoint":
		return LayoutMidpoint, true
	default:
		return 0, false
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// ParseCompression parses a compression name, case-insensitively.
// It returns false for unknown names.
func ParseCompression(name string) (CompressionType, bool) {
	switch strings.ToLower(name) {
	case "none", "":
		return CompressionNone, true
	case "zstd":
		return CompressionZstd, true
	case "s2":
		return CompressionS2, true
	case "lz4":
		return CompressionLZ4, true
	default:
		return 0, false
	}
}
