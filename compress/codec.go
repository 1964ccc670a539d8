package compress

import (
	"fmt"
	"time"

	"github.com/arloliu/fbst/errs"
	"github.com/arloliu/fbst/format"
)

// Compressor compresses a table payload.
type Compressor interface {
	// Compress compresses the input data and returns the compressed result.
	//
	// Memory management:
	//   - Returned slice is owned by the caller (the no-op codec returns data itself)
	//   - Input slice is not modified
	Compress(data []byte) ([]byte, error)
}

// Decompressor reverses a Compressor of the same algorithm.
//
// Decompress returns an error if the data is corrupted or was produced by a
// different algorithm. Implementations must be safe for concurrent use.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both compression and decompression capabilities.
type Codec interface {
	Compressor
	Decompressor
}

// CompressionStats describes a single compression of a payload.
type CompressionStats struct {
	// Algorithm identifies the compression algorithm used
	Algorithm format.CompressionType

	// OriginalSize is the size of input data before compression
	OriginalSize int64

	// CompressedSize is the size of data after compression
	CompressedSize int64

	// CompressionTimeNs is the time taken to compress the data
	CompressionTimeNs int64
}

// CompressionRatio returns the compression ratio (compressed size / original size).
//
// Values less than 1.0 indicate successful compression.
//
// Returns:
//   - float64: Compression ratio (0.0 if original size is zero)
func (s CompressionStats) CompressionRatio() float64 {
	if s.OriginalSize == 0 {
		return 0.0
	}

	return float64(s.CompressedSize) / float64(s.OriginalSize)
}

// SpaceSavings returns the space savings as a percentage.
func (s CompressionStats) SpaceSavings() float64 {
	return (1.0 - s.CompressionRatio()) * 100.0
}

// Measure compresses data with the built-in codec for compressionType and
// reports the sizes and the time it took.
//
// Returns:
//   - []byte: the compressed payload
//   - CompressionStats: sizes and timing
//   - error: errs.ErrInvalidCompression for unknown types, or the codec error
func Measure(compressionType format.CompressionType, data []byte) ([]byte, CompressionStats, error) {
	codec, err := GetCodec(compressionType)
	if err != nil {
		return nil, CompressionStats{}, err
	}

	start := time.Now()
	compressed, err := codec.Compress(data)
	if err != nil {
		return nil, CompressionStats{}, err
	}

	stats := CompressionStats{
		Algorithm:         compressionType,
		OriginalSize:      int64(len(data)),
		CompressedSize:    int64(len(compressed)),
		CompressionTimeNs: time.Since(start).Nanoseconds(),
	}

	return compressed, stats, nil
}

// CreateCodec is a factory function that creates a Codec based on the specified compression type.
//
// Returns:
//   - Codec: codec instance for the specified type
//   - error: errs.ErrInvalidCompression for unknown types
func CreateCodec(compressionType format.CompressionType) (Codec, error) {
	switch compressionType {
	case format.CompressionNone:
		return NewNoOpCompressor(), nil
	case format.CompressionZstd:
		return NewZstdCompressor(), nil
	case format.CompressionS2:
		return NewS2Compressor(), nil
	case format.CompressionLZ4:
		return NewLZ4Compressor(), nil
	default:
		return nil, fmt.Errorf("%w: %s", errs.ErrInvalidCompression, compressionType)
	}
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec retrieves a built-in Codec for the specified compression type.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("%w: %s", errs.ErrInvalidCompression, compressionType)
}
