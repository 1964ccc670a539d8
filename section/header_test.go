package section

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/fbst/errs"
	"github.com/arloliu/fbst/format"
)

func TestNewHeader(t *testing.T) {
	header := NewHeader()

	require.NotNil(t, header)
	require.Equal(t, uint64(0), header.Count)
	require.True(t, header.Flag.IsValidMagicNumber())
	require.True(t, header.Flag.IsLittleEndian())
	require.False(t, header.Flag.IsSigned())
	require.Equal(t, format.LayoutInOrder, header.Flag.Layout())
	require.Equal(t, format.Width64, header.Flag.Width())
	require.Equal(t, format.CompressionNone, header.Flag.Compression())
	require.NoError(t, header.Flag.Validate())
}

func newTestHeader() *Header {
	h := NewHeader()
	h.Flag.SetWidth(format.Width32)
	h.Flag.SetCompression(format.CompressionZstd)
	h.Count = 10
	h.RawSize = 40
	h.PayloadSize = 27
	h.Checksum = 0x0123456789ABCDEF

	return h
}

func TestHeader_Parse(t *testing.T) {
	t.Run("Valid little-endian header", func(t *testing.T) {
		original := newTestHeader()

		parsed := &Header{}
		require.NoError(t, parsed.Parse(original.Bytes()))
		require.Equal(t, *original, *parsed)
	})

	t.Run("Valid big-endian header", func(t *testing.T) {
		original := newTestHeader()
		original.Flag.WithBigEndian()
		original.Flag.SetSigned(true)
		original.Flag.SetLayout(format.LayoutMidpoint)

		parsed := &Header{}
		require.NoError(t, parsed.Parse(original.Bytes()))
		require.Equal(t, *original, *parsed)
		require.True(t, parsed.Flag.IsBigEndian())
		require.True(t, parsed.Flag.IsSigned())
		require.Equal(t, format.LayoutMidpoint, parsed.Flag.Layout())
	})

	t.Run("Invalid size", func(t *testing.T) {
		header := &Header{}
		err := header.Parse([]byte{1, 2, 3})

		require.ErrorIs(t, err, errs.ErrInvalidHeaderSize)
	})

	t.Run("Invalid magic number", func(t *testing.T) {
		data := newTestHeader().Bytes()
		data[0] = 0x00
		data[1] = 0x00

		err := (&Header{}).Parse(data)
		require.ErrorIs(t, err, errs.ErrInvalidHeaderFlags)
	})

	t.Run("Reserved bits set", func(t *testing.T) {
		data := newTestHeader().Bytes()
		data[0] |= 0x04

		err := (&Header{}).Parse(data)
		require.ErrorIs(t, err, errs.ErrInvalidHeaderFlags)
	})

	t.Run("Invalid width", func(t *testing.T) {
		data := newTestHeader().Bytes()
		data[2] = LayoutInOrder | 0x30

		err := (&Header{}).Parse(data)
		require.ErrorIs(t, err, errs.ErrInvalidHeaderFlags)
	})

	t.Run("Invalid compression", func(t *testing.T) {
		data := newTestHeader().Bytes()
		data[3] = 0x0F

		err := (&Header{}).Parse(data)
		require.ErrorIs(t, err, errs.ErrInvalidHeaderFlags)
	})

	t.Run("Raw size does not match count", func(t *testing.T) {
		h := newTestHeader()
		h.RawSize = 41

		err := (&Header{}).Parse(h.Bytes())
		require.ErrorIs(t, err, errs.ErrInvalidPayloadSize)
	})

	t.Run("Count overflows raw size", func(t *testing.T) {
		h := newTestHeader()
		h.Flag.SetWidth(format.Width64)
		h.Count = 1 << 61
		h.RawSize = 0
		h.PayloadSize = 0

		err := (&Header{}).Parse(h.Bytes())
		require.ErrorIs(t, err, errs.ErrInvalidPayloadSize)
	})

	t.Run("Count beyond max payload", func(t *testing.T) {
		h := newTestHeader()
		h.Flag.SetWidth(format.Width8)
		h.Count = MaxPayloadSize + 1
		h.RawSize = 0

		err := (&Header{}).Parse(h.Bytes())
		require.ErrorIs(t, err, errs.ErrInvalidPayloadSize)
	})
}

func TestHeader_Bytes(t *testing.T) {
	header := newTestHeader()
	data := header.Bytes()

	require.Len(t, data, HeaderSize)
	// Options are little-endian regardless of the payload byte order.
	require.Equal(t, byte(MagicTableV1Opt&0xFF), data[0])
	require.Equal(t, byte(MagicTableV1Opt>>8), data[1])
	require.Equal(t, LayoutInOrder|Width32, data[2])
	require.Equal(t, CompressionZstd, data[3])
	require.Equal(t, byte(10), data[4])

	header.Flag.WithBigEndian()
	data = header.Bytes()
	require.Equal(t, byte(MagicTableV1Opt&0xFF)|EndiannessMask, data[0])
	require.Equal(t, byte(10), data[11])
}

func TestParseHeader(t *testing.T) {
	original := newTestHeader()
	data := append(original.Bytes(), 1, 2, 3)

	parsed, err := ParseHeader(data)
	require.NoError(t, err)
	require.Equal(t, *original, parsed)

	_, err = ParseHeader(data[:HeaderSize-1])
	require.ErrorIs(t, err, errs.ErrInvalidHeaderSize)
}

func TestFlag_Setters(t *testing.T) {
	flag := NewFlag()

	for _, w := range []format.Width{format.Width8, format.Width16, format.Width32, format.Width64} {
		flag.SetWidth(w)
		require.Equal(t, w, flag.Width())
		require.Equal(t, format.LayoutInOrder, flag.Layout())
	}

	flag.SetLayout(format.LayoutMidpoint)
	require.Equal(t, format.LayoutMidpoint, flag.Layout())
	require.Equal(t, format.Width64, flag.Width())

	flag.SetSigned(true)
	require.True(t, flag.IsSigned())
	flag.SetSigned(false)
	require.False(t, flag.IsSigned())

	flag.WithBigEndian()
	require.True(t, flag.IsBigEndian())
	require.Equal(t, uint16(MagicTableV1Opt), flag.GetMagicNumber())
	flag.WithLittleEndian()
	require.True(t, flag.IsLittleEndian())

	require.Equal(t, "LittleEndian", flag.GetEndianEngine().String())
}
