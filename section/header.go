package section

import (
	"encoding/binary"

	"github.com/arloliu/fbst/errs"
)

// Header represents the fixed-size header at the start of an encoded table.
//
// The two Options bytes are always stored little-endian so the endianness bit
// can be read before the rest of the header is decoded.
type Header struct {
	// Count is the number of values in the table.
	Count uint64 // byte offset 4-11
	// PayloadSize is the size in bytes of the payload as stored, after compression.
	PayloadSize uint32 // byte offset 12-15
	// RawSize is the size in bytes of the uncompressed payload, Count times the width.
	RawSize uint32 // byte offset 16-19
	// Checksum is the xxHash64 digest of the uncompressed payload.
	Checksum uint64 // byte offset 20-27
	// Reserved must be zero.
	Reserved uint32 // byte offset 28-31

	// Flag is a packed field for options, shape, compression and magic number.
	Flag Flag // byte offset 0-3
}

// NewHeader creates a new Header with default flags.
// Count, sizes and checksum are filled in by the table encoder.
func NewHeader() *Header {
	return &Header{
		Flag: NewFlag(),
	}
}

// Parse parses the header from a byte slice.
//
// Parameters:
//   - data: Byte slice containing header (must be exactly 32 bytes)
//
// Returns:
//   - error: ErrInvalidHeaderSize if data is not 32 bytes, ErrInvalidPayloadSize if
//     Count does not fit MaxPayloadSize or disagrees with RawSize, or flag validation errors
func (h *Header) Parse(data []byte) error {
	if len(data) != HeaderSize {
		return errs.ErrInvalidHeaderSize
	}

	h.Flag.Options = binary.LittleEndian.Uint16(data[0:2])
	h.Flag.Shape = data[2]
	h.Flag.CompressionType = data[3]

	engine := h.Flag.GetEndianEngine()

	h.Count = engine.Uint64(data[4:12])
	h.PayloadSize = engine.Uint32(data[12:16])
	h.RawSize = engine.Uint32(data[16:20])
	h.Checksum = engine.Uint64(data[20:28])
	h.Reserved = engine.Uint32(data[28:32])

	if err := h.Flag.Validate(); err != nil {
		return err
	}

	if h.Reserved != 0 {
		return errs.ErrInvalidHeaderFlags
	}

	width := uint64(h.Flag.Width().Bytes())
	if h.Count > MaxPayloadSize/width {
		return errs.ErrInvalidPayloadSize
	}

	if uint64(h.RawSize) != h.Count*width {
		return errs.ErrInvalidPayloadSize
	}

	return nil
}

// Bytes serializes the Header into a byte slice.
func (h *Header) Bytes() []byte {
	b := make([]byte, HeaderSize)

	engine := h.Flag.GetEndianEngine()

	binary.LittleEndian.PutUint16(b[0:2], h.Flag.Options)
	b[2] = h.Flag.Shape
	b[3] = h.Flag.CompressionType
	engine.PutUint64(b[4:12], h.Count)
	engine.PutUint32(b[12:16], h.PayloadSize)
	engine.PutUint32(b[16:20], h.RawSize)
	engine.PutUint64(b[20:28], h.Checksum)
	engine.PutUint32(b[28:32], h.Reserved)

	return b
}

// ParseHeader parses a Header from the start of a byte slice.
//
// Parameters:
//   - data: Byte slice containing header (must be at least 32 bytes)
//
// Returns:
//   - Header: Parsed header struct
//   - error: ErrInvalidHeaderSize, ErrInvalidPayloadSize or flag validation errors
func ParseHeader(data []byte) (Header, error) {
	if len(data) < HeaderSize {
		return Header{}, errs.ErrInvalidHeaderSize
	}

	h := Header{}
	if err := h.Parse(data[:HeaderSize]); err != nil {
		return Header{}, err
	}

	return h, nil
}
