package compress

import (
	"errors"
	"sync"

	"github.com/pierrec/lz4/v4"
)

// lz4MaxDecodedSize bounds the buffer Decompress is willing to allocate.
const lz4MaxDecodedSize = 128 * 1024 * 1024

var lz4CompressorPool = sync.Pool{
	New: func() any {
		return &lz4.Compressor{}
	},
}

// LZ4Compressor compresses payloads with the LZ4 block format.
type LZ4Compressor struct{}

var _ Codec = (*LZ4Compressor)(nil)

// NewLZ4Compressor creates a new LZ4 compressor.
func NewLZ4Compressor() LZ4Compressor {
	return LZ4Compressor{}
}

// Compress compresses the input data using a pooled lz4.Compressor.
//
// Returns:
//   - []byte: Compressed data (nil if input is empty)
//   - error: Compression error if any
func (c LZ4Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	dst := make([]byte, lz4.CompressBlockBound(len(data)))

	lc, _ := lz4CompressorPool.Get().(*lz4.Compressor)
	defer lz4CompressorPool.Put(lc)

	n, err := lc.CompressBlock(data, dst)
	if err != nil {
		return nil, err
	}

	return dst[:n], nil
}

// Decompress decompresses an LZ4 block.
//
// LZ4 blocks do not record their decoded size, so the buffer starts at four
// times the compressed size and doubles on ErrInvalidSourceShortBuffer until
// it reaches 128MiB.
func (c LZ4Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return c.DecompressSize(data, len(data)*4)
}

// DecompressSize decompresses an LZ4 block into a buffer of sizeHint bytes,
// growing it if the hint is too small. Table decoders pass the raw payload
// size from the header so the first attempt succeeds.
func (c LZ4Compressor) DecompressSize(data []byte, sizeHint int) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	bufSize := max(sizeHint, 1)
	for bufSize <= lz4MaxDecodedSize {
		buf := make([]byte, bufSize)
		n, err := lz4.UncompressBlock(data, buf)
		if err != nil {
			if errors.Is(err, lz4.ErrInvalidSourceShortBuffer) && bufSize < lz4MaxDecodedSize {
				bufSize = min(bufSize*2, lz4MaxDecodedSize)
				continue
			}

			return nil, err
		}

		return buf[:n], nil
	}

	return nil, lz4.ErrInvalidSourceShortBuffer
}
