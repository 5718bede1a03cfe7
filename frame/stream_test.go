package frame

import (
	"bytes"
	"encoding/binary"
	"io"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/hufftree/errs"
	"github.com/arloliu/hufftree/format"
)

var streamMessages = [][]byte{
	[]byte("abracadabra"),
	{},
	[]byte("the quick brown fox jumps over the lazy dog"),
	bytes.Repeat([]byte{0x00, 0xFF}, 300),
}

func TestEncodeTo_Read(t *testing.T) {
	enc, err := NewEncoder(WithCompression(format.CompressionLZ4))
	require.NoError(t, err)

	var stream bytes.Buffer
	for _, msg := range streamMessages {
		n, err := enc.EncodeTo(&stream, msg)
		require.NoError(t, err)

		single, err := enc.Encode(msg)
		require.NoError(t, err)
		require.Equal(t, int64(len(single)), n)
	}

	for _, want := range streamMessages {
		got, err := Read(&stream)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}

	_, err = Read(&stream)
	require.ErrorIs(t, err, io.EOF)
}

func TestRead_Truncated(t *testing.T) {
	enc, err := NewEncoder()
	require.NoError(t, err)
	data, err := enc.Encode([]byte("abracadabra"))
	require.NoError(t, err)

	_, err = Read(bytes.NewReader(data[:len(data)-2]))
	require.ErrorIs(t, err, io.ErrUnexpectedEOF)

	_, err = Read(bytes.NewReader(data[:10]))
	require.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestRead_OversizedPayloadClaim(t *testing.T) {
	enc, err := NewEncoder()
	require.NoError(t, err)
	data, err := enc.Encode([]byte("abracadabra"))
	require.NoError(t, err)

	// header still validates, but the body never arrives
	binary.LittleEndian.PutUint32(data[12:16], 0xFFFFFF00)

	var before, after runtime.MemStats
	runtime.ReadMemStats(&before)
	_, err = Read(bytes.NewReader(data))
	runtime.ReadMemStats(&after)

	require.ErrorIs(t, err, io.ErrUnexpectedEOF)
	require.Less(t, after.TotalAlloc-before.TotalAlloc, uint64(16<<20))
}

func TestMessages(t *testing.T) {
	enc, err := NewEncoder(WithBigEndian())
	require.NoError(t, err)

	var data []byte
	for _, msg := range streamMessages {
		data, err = enc.Append(data, msg)
		require.NoError(t, err)
	}

	var got [][]byte
	for msg, err := range Messages(data) {
		require.NoError(t, err)
		got = append(got, msg)
	}
	require.Equal(t, streamMessages, got)
}

func TestMessages_StopsOnError(t *testing.T) {
	enc, err := NewEncoder()
	require.NoError(t, err)

	data, err := enc.Encode([]byte("first"))
	require.NoError(t, err)
	data = append(data, 0x01, 0x02, 0x03)

	var (
		count   int
		lastErr error
	)
	for msg, err := range Messages(data) {
		if err != nil {
			lastErr = err
			require.Nil(t, msg)
			continue
		}
		count++
	}
	require.Equal(t, 1, count)
	require.ErrorIs(t, lastErr, errs.ErrInvalidHeaderSize)
}

func TestMessages_EarlyBreak(t *testing.T) {
	enc, err := NewEncoder()
	require.NoError(t, err)

	var data []byte
	for _, msg := range streamMessages {
		data, err = enc.Append(data, msg)
		require.NoError(t, err)
	}

	count := 0
	for range Messages(data) {
		count++
		break
	}
	require.Equal(t, 1, count)
}

func TestSplit(t *testing.T) {
	enc, err := NewEncoder()
	require.NoError(t, err)

	first, err := enc.Encode([]byte("one"))
	require.NoError(t, err)
	second, err := enc.Encode([]byte("two"))
	require.NoError(t, err)

	f, rest, err := Split(append(bytes.Clone(first), second...))
	require.NoError(t, err)
	require.Equal(t, first, f)
	require.Equal(t, second, rest)

	_, _, err = Split(first[:len(first)-1])
	require.ErrorIs(t, err, errs.ErrInvalidPayloadLength)
}
