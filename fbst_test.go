package fbst

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/fbst/errs"
	"github.com/arloliu/fbst/format"
	"github.com/arloliu/fbst/table"
)

func TestBuildAndSearch(t *testing.T) {
	buf := Build([]uint32{1, 2, 3, 4, 5, 6, 7})
	require.Equal(t, []uint32{4, 2, 6, 1, 3, 5, 7}, buf)

	require.Equal(t, 6, Search(buf, 0))
	require.Equal(t, 3, Search(buf, 4))
	require.Equal(t, 0, Search([]int{1}, 5))

	require.Equal(t, uint32(7), Lookup(buf, 0))
	require.Equal(t, uint32(1), Lookup(buf, 4))
}

func TestNewTable(t *testing.T) {
	tbl, err := NewTable([]int64{-5, 0, 5})
	require.NoError(t, err)
	require.Equal(t, []int64{0, -5, 5}, tbl.Layout())

	_, err = NewTable([]int64{})
	require.ErrorIs(t, err, errs.ErrEmptyInput)

	_, err = NewTable([]int64{2, 1})
	require.ErrorIs(t, err, errs.ErrUnsorted)
}

func TestEncodeDecodeTable(t *testing.T) {
	sorted := make([]uint64, 1000)
	for i := range sorted {
		sorted[i] = uint64(i * 3)
	}

	tbl, err := NewTable(sorted)
	require.NoError(t, err)

	t.Run("defaults", func(t *testing.T) {
		blob, err := EncodeTable(tbl)
		require.NoError(t, err)

		decoded, err := DecodeTable[uint64](blob)
		require.NoError(t, err)
		require.Equal(t, tbl.Layout(), decoded.Layout())
	})

	t.Run("overrides", func(t *testing.T) {
		plain, err := EncodeTable(tbl)
		require.NoError(t, err)

		blob, err := EncodeTable(tbl, table.WithCompression(format.CompressionZstd), table.WithBigEndian())
		require.NoError(t, err)
		require.Less(t, len(blob), len(plain))

		decoded, err := DecodeTable[uint64](blob)
		require.NoError(t, err)
		require.Equal(t, tbl.Layout(), decoded.Layout())
	})

	t.Run("width mismatch", func(t *testing.T) {
		blob, err := EncodeTable(tbl)
		require.NoError(t, err)

		_, err = DecodeTable[uint32](blob)
		require.ErrorIs(t, err, errs.ErrWidthMismatch)
	})
}
