// Package endian provides the byte order engines used by the table encoding.
//
// An EndianEngine combines binary.ByteOrder and binary.AppendByteOrder, so the
// same value can read header fields in place and append payload values to a
// growing buffer:
//
//	engine := endian.GetLittleEndianEngine()
//	buf = endian.AppendUint(engine, buf, uint64(v), 4)
//	v = uint32(endian.Uint(engine, buf, 4))
//
// Encoded tables default to little-endian. Big-endian is available for
// interoperability with readers on big-endian hosts.
//
// # Thread Safety
//
// The returned engines are the stateless binary.LittleEndian and
// binary.BigEndian values and are safe for concurrent use.
package endian

import (
	"encoding/binary"
	"unsafe"
)

// EndianEngine combines ByteOrder and AppendByteOrder interfaces from encoding/binary
// into a single interface for convenient byte order operations.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// Native returns the engine matching the byte order of the host.
func Native() EndianEngine {
	// 0x0100 stores 0x01 first on big-endian hosts.
	var i uint16 = 0x0100
	if (*[2]byte)(unsafe.Pointer(&i))[0] == 0x01 {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

// IsNative reports whether engine matches the byte order of the host.
func IsNative(engine EndianEngine) bool {
	return engine == Native()
}

// AppendUint appends the low width bytes of v to dst in the engine's byte
// order. width must be 1, 2, 4 or 8; any other value appends 8 bytes.
func AppendUint(engine EndianEngine, dst []byte, v uint64, width int) []byte {
	switch width {
	case 1:
		return append(dst, byte(v))
	case 2:
		return engine.AppendUint16(dst, uint16(v))
	case 4:
		return engine.AppendUint32(dst, uint32(v))
	default:
		return engine.AppendUint64(dst, v)
	}
}

// Uint reads a width-byte unsigned integer from the start of b. width follows
// the same rules as AppendUint.
func Uint(engine EndianEngine, b []byte, width int) uint64 {
	switch width {
	case 1:
		return uint64(b[0])
	case 2:
		return uint64(engine.Uint16(b))
	case 4:
		return uint64(engine.Uint32(b))
	default:
		return engine.Uint64(b)
	}
}
