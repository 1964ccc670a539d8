package section

import (
	"math"

	"github.com/arloliu/fbst/format"
)

const (
	// Bit masks of the packed Options field
	SignedMask       = 0x0001 // Mask for signedness bit (bit 0)
	EndiannessMask   = 0x0002 // Mask for endianness bit (bit 1)
	ReservedBitsMask = 0x000C // Mask for reserved bits (bits 2-3)
	MagicNumberMask  = 0xFFF0 // Mask for magic number (bits 4-15)

	// Magic numbers (bits 4-15)
	MagicTableV1Opt = 0xFB10 // MagicTableV1Opt is the version 1 magic number for flat table blobs.

	// Layout types (bits 0-3 of the Shape byte)
	LayoutInOrder  = uint8(format.LayoutInOrder)
	LayoutMidpoint = uint8(format.LayoutMidpoint)

	// Value widths in bytes (bits 4-7 of the Shape byte)
	Width8  = uint8(format.Width8) << 4
	Width16 = uint8(format.Width16) << 4
	Width32 = uint8(format.Width32) << 4
	Width64 = uint8(format.Width64) << 4

	// Payload compression
	CompressionNone = uint8(format.CompressionNone)
	CompressionZstd = uint8(format.CompressionZstd)
	CompressionS2   = uint8(format.CompressionS2)
	CompressionLZ4  = uint8(format.CompressionLZ4)
)

// offset and section sizes in the blob
const (
	HeaderSize     = 32             // fixed header size in bytes
	PayloadOffset  = HeaderSize     // byte offset where the payload starts
	MaxPayloadSize = math.MaxUint32 // maximum payload size in bytes, compressed or not
)
