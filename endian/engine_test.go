package endian

import (
	"encoding/binary"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

func TestCheckEndianness(t *testing.T) {
	var probe uint16 = 0x0102
	first := (*[2]byte)(unsafe.Pointer(&probe))[0]

	want := binary.ByteOrder(binary.LittleEndian)
	if first == 0x01 {
		want = binary.BigEndian
	}
	require.Equal(t, want, CheckEndianness())

	require.NotEqual(t, IsNativeLittleEndian(), IsNativeBigEndian())
	require.Equal(t, IsNativeLittleEndian(), CompareNativeEndian(GetLittleEndianEngine()))
	require.Equal(t, IsNativeBigEndian(), CompareNativeEndian(GetBigEndianEngine()))
}

func TestEngines(t *testing.T) {
	tests := []struct {
		name   string
		engine EndianEngine
		want16 []byte
		want32 []byte
	}{
		{"little", GetLittleEndianEngine(), []byte{0x02, 0x01}, []byte{0x04, 0x03, 0x02, 0x01}},
		{"big", GetBigEndianEngine(), []byte{0x01, 0x02}, []byte{0x01, 0x02, 0x03, 0x04}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require := require.New(t)

			require.Implements((*EndianEngine)(nil), tt.engine)

			buf := tt.engine.AppendUint16(nil, 0x0102)
			require.Equal(tt.want16, buf)
			require.Equal(uint16(0x0102), tt.engine.Uint16(buf))

			buf = tt.engine.AppendUint32(nil, 0x01020304)
			require.Equal(tt.want32, buf)
			require.Equal(uint32(0x01020304), tt.engine.Uint32(buf))

			buf = tt.engine.AppendUint64(nil, 0x0102030405060708)
			require.Equal(uint64(0x0102030405060708), tt.engine.Uint64(buf))
		})
	}
}
