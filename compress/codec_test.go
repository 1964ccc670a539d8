package compress

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"testing"

	"github.com/sourcegraph/conc/pool"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/fbst/errs"
	"github.com/arloliu/fbst/format"
	"github.com/arloliu/fbst/layout"
)

func getAllCodecs() map[string]Codec {
	return map[string]Codec{
		"NoOp": NewNoOpCompressor(),
		"LZ4":  NewLZ4Compressor(),
		"S2":   NewS2Compressor(),
		"Zstd": NewZstdCompressor(),
	}
}

// flatPayload returns the little-endian bytes of a flat layout over 0..n-1.
func flatPayload(n int) []byte {
	sorted := make([]uint32, n)
	for i := range sorted {
		sorted[i] = uint32(i)
	}

	buf := make([]byte, 0, n*4)
	for _, v := range layout.Build(sorted) {
		buf = binary.LittleEndian.AppendUint32(buf, v)
	}

	return buf
}

func TestCreateCodec(t *testing.T) {
	for _, ct := range []format.CompressionType{
		format.CompressionNone, format.CompressionZstd, format.CompressionS2, format.CompressionLZ4,
	} {
		t.Run(ct.String(), func(t *testing.T) {
			codec, err := CreateCodec(ct)
			require.NoError(t, err)
			require.NotNil(t, codec)

			shared, err := GetCodec(ct)
			require.NoError(t, err)
			require.IsType(t, codec, shared)
		})
	}

	_, err := CreateCodec(format.CompressionType(0x7))
	require.ErrorIs(t, err, errs.ErrInvalidCompression)

	_, err = GetCodec(format.CompressionType(0))
	require.ErrorIs(t, err, errs.ErrInvalidCompression)
}

func TestAllCodecs_EmptyData(t *testing.T) {
	for name, codec := range getAllCodecs() {
		t.Run(name, func(t *testing.T) {
			compressed, err := codec.Compress(nil)
			require.NoError(t, err)
			require.Nil(t, compressed)

			decompressed, err := codec.Decompress(nil)
			require.NoError(t, err)
			require.Nil(t, decompressed)

			compressed, err = codec.Compress([]byte{})
			require.NoError(t, err)

			decompressed, err = codec.Decompress(compressed)
			require.NoError(t, err)
			require.Empty(t, decompressed)
		})
	}
}

func TestAllCodecs_RoundTrip(t *testing.T) {
	testCases := []struct {
		name string
		data []byte
	}{
		{"single_byte", []byte{0x42}},
		{"binary_data", []byte{0x00, 0x01, 0x02, 0x03, 0xFF, 0xFE, 0xFD, 0xFC}},
		{"repeated_pattern", bytes.Repeat([]byte("ABCD"), 100)},
		{"flat_layout_7", flatPayload(7)},
		{"flat_layout_4095", flatPayload(4095)},
		{"flat_layout_100000", flatPayload(100000)},
		{"zeros", make([]byte, 1024*1024)},
	}

	for codecName, codec := range getAllCodecs() {
		t.Run(codecName, func(t *testing.T) {
			for _, tc := range testCases {
				t.Run(tc.name, func(t *testing.T) {
					compressed, err := codec.Compress(tc.data)
					require.NoError(t, err)
					require.NotNil(t, compressed)

					t.Logf("Original: %d bytes, Compressed: %d bytes", len(tc.data), len(compressed))

					decompressed, err := codec.Decompress(compressed)
					require.NoError(t, err)
					require.Equal(t, tc.data, decompressed)
				})
			}
		})
	}
}

func TestLZ4Compressor_DecompressSize(t *testing.T) {
	codec := NewLZ4Compressor()
	data := make([]byte, 1<<20)

	compressed, err := codec.Compress(data)
	require.NoError(t, err)

	t.Run("exact hint", func(t *testing.T) {
		out, err := codec.DecompressSize(compressed, len(data))
		require.NoError(t, err)
		require.Equal(t, data, out)
	})

	t.Run("small hint grows", func(t *testing.T) {
		out, err := codec.DecompressSize(compressed, 16)
		require.NoError(t, err)
		require.Equal(t, data, out)
	})
}

func TestAllCodecs_InvalidData(t *testing.T) {
	invalidInputs := []struct {
		name string
		data []byte
	}{
		{"random_bytes", []byte{0xFF, 0xFF, 0xFF, 0xFF}},
		{"text_as_compressed", []byte("this is not compressed data")},
		{"corrupted_header", []byte{0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07}},
	}

	for codecName, codec := range getAllCodecs() {
		t.Run(codecName, func(t *testing.T) {
			if codecName == "NoOp" {
				t.Skip("NoOp codec doesn't validate data")
			}

			for _, input := range invalidInputs {
				t.Run(input.name, func(t *testing.T) {
					_, err := codec.Decompress(input.data)
					require.Error(t, err)
				})
			}
		})
	}
}

func TestAllCodecs_ConcurrentUsage(t *testing.T) {
	const numGoroutines = 20
	payload := flatPayload(1023)

	for codecName, codec := range getAllCodecs() {
		t.Run(codecName, func(t *testing.T) {
			compressed, err := codec.Compress(payload)
			require.NoError(t, err)

			p := pool.New().WithErrors().WithMaxGoroutines(8)
			for range numGoroutines {
				p.Go(func() error {
					if _, err := codec.Compress(payload); err != nil {
						return err
					}

					decompressed, err := codec.Decompress(compressed)
					if err != nil {
						return err
					}
					if !bytes.Equal(payload, decompressed) {
						return fmt.Errorf("%s: decompressed data mismatch", codecName)
					}

					return nil
				})
			}
			require.NoError(t, p.Wait())
		})
	}
}

func TestMeasure(t *testing.T) {
	payload := flatPayload(4096)

	compressed, stats, err := Measure(format.CompressionZstd, payload)
	require.NoError(t, err)
	require.Equal(t, format.CompressionZstd, stats.Algorithm)
	require.Equal(t, int64(len(payload)), stats.OriginalSize)
	require.Equal(t, int64(len(compressed)), stats.CompressedSize)
	require.Less(t, stats.CompressionRatio(), 1.0)
	require.Greater(t, stats.SpaceSavings(), 0.0)
	require.GreaterOrEqual(t, stats.CompressionTimeNs, int64(0))

	_, stats, err = Measure(format.CompressionNone, payload)
	require.NoError(t, err)
	require.InDelta(t, 1.0, stats.CompressionRatio(), 1e-9)

	_, _, err = Measure(format.CompressionType(0x9), payload)
	require.ErrorIs(t, err, errs.ErrInvalidCompression)

	require.InDelta(t, 0.0, CompressionStats{}.CompressionRatio(), 1e-9)
}

func BenchmarkCodecs_FlatLayout(b *testing.B) {
	payload := flatPayload(1 << 16)

	for name, codec := range getAllCodecs() {
		compressed, err := codec.Compress(payload)
		require.NoError(b, err)

		b.Run(name+"/compress", func(b *testing.B) {
			b.SetBytes(int64(len(payload)))
			for b.Loop() {
				_, _ = codec.Compress(payload)
			}
		})

		b.Run(name+"/decompress", func(b *testing.B) {
			b.SetBytes(int64(len(payload)))
			for b.Loop() {
				_, _ = codec.Decompress(compressed)
			}
		})
	}
}
