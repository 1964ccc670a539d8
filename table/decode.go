package table

import (
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/arloliu/fbst/compress"
	"github.com/arloliu/fbst/endian"
	"github.com/arloliu/fbst/errs"
	"github.com/arloliu/fbst/format"
	"github.com/arloliu/fbst/internal/hash"
	"github.com/arloliu/fbst/layout"
	"github.com/arloliu/fbst/section"
)

// sizedDecompressor is implemented by codecs that benefit from knowing the
// decoded size up front.
type sizedDecompressor interface {
	DecompressSize(data []byte, sizeHint int) ([]byte, error)
}

// Decode parses a blob produced by Encode for the same element type.
//
// Returns:
//   - *Table[T]: the decoded table
//   - error: errs.ErrInvalidHeaderSize, errs.ErrInvalidHeaderFlags,
//     errs.ErrWidthMismatch, errs.ErrInvalidPayloadSize, errs.ErrChecksumMismatch,
//     errs.ErrEmptyInput, a codec error, or a wrapped errs.ErrLayoutViolation
func Decode[T constraints.Integer](data []byte) (*Table[T], error) {
	header, err := section.ParseHeader(data)
	if err != nil {
		return nil, err
	}

	width := widthOf[T]()
	if header.Flag.Width() != width || header.Flag.IsSigned() != isSigned[T]() {
		return nil, fmt.Errorf("%w: blob holds %d-byte values (signed=%t), want %d-byte (signed=%t)",
			errs.ErrWidthMismatch, header.Flag.Width().Bytes(), header.Flag.IsSigned(), width.Bytes(), isSigned[T]())
	}

	if header.Count == 0 {
		return nil, errs.ErrEmptyInput
	}

	payload := data[section.HeaderSize:]
	if uint64(len(payload)) != uint64(header.PayloadSize) {
		return nil, fmt.Errorf("%w: header says %d bytes, got %d",
			errs.ErrInvalidPayloadSize, header.PayloadSize, len(payload))
	}

	raw, err := decompress(header, payload)
	if err != nil {
		return nil, err
	}

	if uint64(len(raw)) != uint64(header.RawSize) {
		return nil, fmt.Errorf("%w: decoded %d bytes, want %d",
			errs.ErrInvalidPayloadSize, len(raw), header.RawSize)
	}

	if !hash.Verify(raw, header.Checksum) {
		return nil, errs.ErrChecksumMismatch
	}

	buf := readValues[T](raw, int(header.Count), width, header.Flag.GetEndianEngine())

	layoutType := header.Flag.Layout()
	if layoutType == format.LayoutInOrder {
		if err := layout.Validate(buf); err != nil {
			return nil, err
		}
	}

	return &Table[T]{buf: buf, layout: layoutType}, nil
}

func decompress(header section.Header, payload []byte) ([]byte, error) {
	codec, err := compress.GetCodec(header.Flag.Compression())
	if err != nil {
		return nil, err
	}

	var raw []byte
	if sized, ok := codec.(sizedDecompressor); ok {
		raw, err = sized.DecompressSize(payload, int(header.RawSize))
	} else {
		raw, err = codec.Decompress(payload)
	}
	if err != nil {
		return nil, fmt.Errorf("decompress payload: %w", err)
	}

	return raw, nil
}

func readValues[T constraints.Integer](raw []byte, count int, width format.Width, engine endian.EndianEngine) []T {
	values := make([]T, count)

	step := width.Bytes()
	for i := range values {
		values[i] = T(endian.Uint(engine, raw[i*step:], step))
	}

	return values
}
