package endian

import (
	"encoding/binary"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

func TestCheckEndianness(t *testing.T) {
	require := require.New(t)

	result := CheckEndianness()

	// Verify the result matches the actual system endianness
	var testValue uint16 = 0x0102
	testBytes := (*[2]byte)(unsafe.Pointer(&testValue))

	switch testBytes[0] {
	case 0x01:
		// Big-endian system
		require.Equal(binary.BigEndian, result, "CheckEndianness() should return BigEndian")
	case 0x02:
		// Little-endian system
		require.Equal(binary.LittleEndian, result, "CheckEndianness() should return LittleEndian")
	default:
		require.Failf("Unexpected byte value", "got: %v", testBytes[0])
	}
}

func TestIsNativeEndiannessInverse(t *testing.T) {
	// IsNativeLittleEndian and IsNativeBigEndian should be inverses
	littleEndian := IsNativeLittleEndian()
	bigEndian := IsNativeBigEndian()

	require.NotEqual(t, littleEndian, bigEndian, "IsNativeLittleEndian and IsNativeBigEndian should return opposite values")
	require.True(t, littleEndian || bigEndian, "At least one endianness check should be true")
}

func TestCompareNativeEndian(t *testing.T) {
	if IsNativeLittleEndian() {
		require.True(t, CompareNativeEndian(GetLittleEndianEngine()))
		require.False(t, CompareNativeEndian(GetBigEndianEngine()))
	} else {
		require.False(t, CompareNativeEndian(GetLittleEndianEngine()))
		require.True(t, CompareNativeEndian(GetBigEndianEngine()))
	}
}

func TestGetLittleEndianEngine(t *testing.T) {
	engine := GetLittleEndianEngine()

	// Should implement EndianEngine interface
	require.Implements(t, (*EndianEngine)(nil), engine)

	// Should be binary.LittleEndian
	require.Equal(t, binary.LittleEndian, engine)

	// A float16 word on the wire: 0x7E00 (quiet NaN) must serialize LSB first.
	var word uint16 = 0x7E00
	bytes := make([]byte, 2)
	engine.PutUint16(bytes, word)
	require.Equal(t, byte(0x00), bytes[0], "Little endian should put LSB first")
	require.Equal(t, byte(0x7E), bytes[1], "Little endian should put MSB second")

	// Test reading back
	readValue := engine.Uint16(bytes)
	require.Equal(t, word, readValue)
}

func TestGetBigEndianEngine(t *testing.T) {
	engine := GetBigEndianEngine()

	// Should implement EndianEngine interface
	require.Implements(t, (*EndianEngine)(nil), engine)

	// Should be binary.BigEndian
	require.Equal(t, binary.BigEndian, engine)

	var word uint16 = 0x7E00
	bytes := make([]byte, 2)
	engine.PutUint16(bytes, word)
	require.Equal(t, byte(0x7E), bytes[0], "Big endian should put MSB first")
	require.Equal(t, byte(0x00), bytes[1], "Big endian should put LSB second")

	// Test reading back
	readValue := engine.Uint16(bytes)
	require.Equal(t, word, readValue)
}

func TestEndianEngines_AppendUint16(t *testing.T) {
	littleEngine := GetLittleEndianEngine()
	bigEngine := GetBigEndianEngine()

	words := []uint16{0x0000, 0x8000, 0x7C00, 0xFC00, 0x7E55, 0x03FF}

	var littleBuf, bigBuf []byte
	for _, w := range words {
		littleBuf = littleEngine.AppendUint16(littleBuf, w)
		bigBuf = bigEngine.AppendUint16(bigBuf, w)
	}

	require.Len(t, littleBuf, 2*len(words))
	require.Len(t, bigBuf, 2*len(words))
	require.NotEqual(t, littleBuf, bigBuf, "Little and big endian byte representations should differ")

	for i, w := range words {
		require.Equal(t, w, littleEngine.Uint16(littleBuf[i*2:]))
		require.Equal(t, w, bigEngine.Uint16(bigBuf[i*2:]))
	}
}

func TestEndianEngines_Uint32(t *testing.T) {
	// The length header stored by the nan/subnormal methods is a uint32.
	littleEngine := GetLittleEndianEngine()

	var length uint32 = 0x01020304
	buf := littleEngine.AppendUint32(nil, length)
	require.Equal(t, []byte{0x04, 0x03, 0x02, 0x01}, buf)
	require.Equal(t, length, littleEngine.Uint32(buf))
}
