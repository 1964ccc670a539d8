package section

import (
	"github.com/arloliu/fbst/endian"
	"github.com/arloliu/fbst/errs"
	"github.com/arloliu/fbst/format"
)

// Flag represents the packed flag bytes at the start of a table header.
type Flag struct {
	// Options is a packed field for various options.
	// Bit 0 is the signedness flag, 0 means unsigned values, 1 means signed values.
	// Bit 1 is the endianness flag, 0 means little-endian, 1 means big-endian.
	// Bit 2-3 are reserved for future use, must be set to 0.
	// Bit 4-15 are the magic number identifying the blob format:
	//   - 0xFB10 (0b1111_1011_0001_0000): flat table format v1
	Options uint16

	// Shape packs the layout type in bits 0-3 and the value width in bytes
	// in bits 4-7.
	Shape uint8
	// CompressionType is the compression applied to the value payload.
	CompressionType uint8
}

var (
	validLayouts = map[uint8]struct{}{
		LayoutInOrder:  {},
		LayoutMidpoint: {},
	}

	validCompressions = map[uint8]struct{}{
		CompressionNone: {},
		CompressionZstd: {},
		CompressionS2:   {},
		CompressionLZ4:  {},
	}
)

// NewFlag creates a new Flag for an unsigned 64-bit in-order table stored
// little-endian without compression.
func NewFlag() Flag {
	flag := Flag{
		Options:         MagicTableV1Opt,
		Shape:           LayoutInOrder | Width64,
		CompressionType: CompressionNone,
	}
	flag.WithLittleEndian()

	return flag
}

// IsSigned returns whether the values are signed integers.
func (f Flag) IsSigned() bool {
	return (f.Options & SignedMask) != 0
}

// SetSigned marks the values as signed or unsigned integers.
func (f *Flag) SetSigned(signed bool) {
	if signed {
		f.Options |= SignedMask
	} else {
		f.Options &^= SignedMask
	}
}

// IsLittleEndian returns whether the data is little-endian.
func (f Flag) IsLittleEndian() bool {
	return (f.Options & EndiannessMask) == 0
}

// IsBigEndian returns whether the data is big-endian.
func (f Flag) IsBigEndian() bool {
	return (f.Options & EndiannessMask) != 0
}

// WithLittleEndian sets little-endian byte order.
func (f *Flag) WithLittleEndian() {
	f.Options &= ^uint16(EndiannessMask)
}

// WithBigEndian sets big-endian byte order.
func (f *Flag) WithBigEndian() {
	f.Options |= EndiannessMask
}

// GetMagicNumber returns the magic number from the Options field.
func (f Flag) GetMagicNumber() uint16 {
	return f.Options & MagicNumberMask
}

// Layout returns the layout type from bits 0-3 of Shape.
func (f Flag) Layout() format.LayoutType {
	return format.LayoutType(f.Shape & 0x0F)
}

// SetLayout sets the layout type in bits 0-3 of Shape.
func (f *Flag) SetLayout(layout format.LayoutType) {
	f.Shape &^= 0x0F
	f.Shape |= uint8(layout) & 0x0F
}

// Width returns the value width from bits 4-7 of Shape.
func (f Flag) Width() format.Width {
	return format.Width((f.Shape >> 4) & 0x0F)
}

// SetWidth sets the value width in bits 4-7 of Shape.
func (f *Flag) SetWidth(width format.Width) {
	f.Shape &^= 0xF0
	f.Shape |= (uint8(width) & 0x0F) << 4
}

// Compression returns the payload compression type.
func (f Flag) Compression() format.CompressionType {
	return format.CompressionType(f.CompressionType)
}

// SetCompression sets the payload compression type.
func (f *Flag) SetCompression(compression format.CompressionType) {
	f.CompressionType = uint8(compression)
}

// IsValidMagicNumber checks if the magic number is valid.
func (f Flag) IsValidMagicNumber() bool {
	return f.GetMagicNumber() == MagicTableV1Opt
}

// IsValidShape checks if the layout type and width are valid.
func (f Flag) IsValidShape() bool {
	_, validLayout := validLayouts[f.Shape&0x0F]

	return validLayout && f.Width().IsValid()
}

// IsValidCompression checks if the compression type is valid.
func (f Flag) IsValidCompression() bool {
	_, ok := validCompressions[f.CompressionType]

	return ok
}

// Validate checks if the flag contains valid values.
func (f Flag) Validate() error {
	if !f.IsValidMagicNumber() {
		return errs.ErrInvalidHeaderFlags
	}

	if f.Options&ReservedBitsMask != 0 {
		return errs.ErrInvalidHeaderFlags
	}

	if !f.IsValidShape() {
		return errs.ErrInvalidHeaderFlags
	}

	if !f.IsValidCompression() {
		return errs.ErrInvalidHeaderFlags
	}

	return nil
}

// GetEndianEngine returns the appropriate endian engine based on the flag.
func (f Flag) GetEndianEngine() endian.EndianEngine {
	if f.IsLittleEndian() {
		return endian.GetLittleEndianEngine()
	}

	return endian.GetBigEndianEngine()
}
