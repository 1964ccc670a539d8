// Package compress provides the payload codecs used when encoding tables.
//
// A table payload is a run of fixed-width integers in flat layout order. The
// payload is compressed as a single block after the checksum has been taken
// over the raw bytes, so a codec only has to round-trip opaque byte slices.
//
// # Codecs
//
//   - NoOpCompressor: stores the payload as-is.
//   - ZstdCompressor: Zstandard. Pure Go (klauspost/compress) by default;
//     building with cgo and the gozstd tag switches to valyala/gozstd.
//   - S2Compressor: S2 block format from klauspost/compress.
//   - LZ4Compressor: LZ4 block format from pierrec/lz4.
//
// Use GetCodec for the shared stateless instances or CreateCodec when the
// caller wants its own value.
//
// Example:
//
//	codec, err := compress.GetCodec(format.CompressionZstd)
//	if err != nil {
//	    return err
//	}
//	packed, err := codec.Compress(payload)
//
// # Sorted payloads
//
// The in-order flat layout stores neighbouring tree levels next to each
// other, so payloads drawn from narrow value ranges (small widths, dense keys)
// compress well with any codec. Payloads of full-range random uint64 values
// are close to incompressible; the no-op codec is the right choice there.
//
// # Thread Safety
//
// Every codec in this package is safe for concurrent use. The zstd and LZ4
// codecs keep their encoder state in sync.Pool instances.
package compress
