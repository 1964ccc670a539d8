package endian

import (
	"encoding/binary"
	"fmt"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

func TestNative(t *testing.T) {
	var testValue uint16 = 0x0102
	testBytes := (*[2]byte)(unsafe.Pointer(&testValue))

	switch testBytes[0] {
	case 0x01:
		require.Equal(t, binary.BigEndian, Native())
		require.True(t, IsNative(GetBigEndianEngine()))
		require.False(t, IsNative(GetLittleEndianEngine()))
	case 0x02:
		require.Equal(t, binary.LittleEndian, Native())
		require.True(t, IsNative(GetLittleEndianEngine()))
		require.False(t, IsNative(GetBigEndianEngine()))
	default:
		require.Failf(t, "Unexpected byte value", "got: %v", testBytes[0])
	}
}

func TestGetEngines(t *testing.T) {
	little := GetLittleEndianEngine()
	big := GetBigEndianEngine()

	require.Implements(t, (*EndianEngine)(nil), little)
	require.Equal(t, binary.LittleEndian, little)
	require.Equal(t, binary.BigEndian, big)

	buf := make([]byte, 2)
	little.PutUint16(buf, 0x0102)
	require.Equal(t, []byte{0x02, 0x01}, buf)

	big.PutUint16(buf, 0x0102)
	require.Equal(t, []byte{0x01, 0x02}, buf)
}

func TestAppendUint(t *testing.T) {
	tests := []struct {
		width  int
		value  uint64
		little []byte
		big    []byte
	}{
		{1, 0xAB, []byte{0xAB}, []byte{0xAB}},
		{2, 0x0102, []byte{0x02, 0x01}, []byte{0x01, 0x02}},
		{4, 0x01020304, []byte{0x04, 0x03, 0x02, 0x01}, []byte{0x01, 0x02, 0x03, 0x04}},
		{8, 0x0102030405060708, []byte{8, 7, 6, 5, 4, 3, 2, 1}, []byte{1, 2, 3, 4, 5, 6, 7, 8}},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("width %d", tt.width), func(t *testing.T) {
			little := AppendUint(GetLittleEndianEngine(), nil, tt.value, tt.width)
			require.Equal(t, tt.little, little)
			require.Equal(t, tt.value, Uint(GetLittleEndianEngine(), little, tt.width))

			big := AppendUint(GetBigEndianEngine(), nil, tt.value, tt.width)
			require.Equal(t, tt.big, big)
			require.Equal(t, tt.value, Uint(GetBigEndianEngine(), big, tt.width))
		})
	}
}

func TestAppendUint_Truncates(t *testing.T) {
	engine := GetLittleEndianEngine()

	require.Equal(t, []byte{0xFF}, AppendUint(engine, nil, 0x12FF, 1))
	require.Equal(t, []byte{0x34, 0x12}, AppendUint(engine, nil, 0xAB001234, 2))
}

func TestAppendUint_AppendsToExisting(t *testing.T) {
	engine := GetBigEndianEngine()

	buf := []byte{0xEE}
	buf = AppendUint(engine, buf, 0x0102, 2)
	buf = AppendUint(engine, buf, 0x03, 1)
	require.Equal(t, []byte{0xEE, 0x01, 0x02, 0x03}, buf)
}
