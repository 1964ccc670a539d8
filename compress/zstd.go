package compress

// ZstdCompressor provides Zstandard compression of table payloads.
//
// The pure Go implementation is used unless the module is built with cgo
// enabled and the gozstd build tag set.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
