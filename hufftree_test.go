package hufftree

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/hufftree/encoding"
	"github.com/arloliu/hufftree/errs"
	"github.com/arloliu/hufftree/format"
	"github.com/arloliu/hufftree/frame"
	"github.com/arloliu/hufftree/tree"
)

func TestBuild(t *testing.T) {
	root, err := Build([]byte("abracadabra"))
	require.NoError(t, err)
	require.Equal(t, uint64(11), root.Weight())

	_, err = Build(nil)
	require.ErrorIs(t, err, errs.ErrEmptyInput)
}

func TestCompressDecompress(t *testing.T) {
	messages := [][]byte{
		nil,
		[]byte("a"),
		[]byte("abracadabra"),
		bytes.Repeat([]byte("mississippi "), 100),
	}

	for _, ct := range format.CompressionTypes {
		for _, msg := range messages {
			data, err := Compress(msg, frame.WithCompression(ct))
			require.NoError(t, err)

			got, err := Decompress(data)
			require.NoError(t, err)
			require.True(t, bytes.Equal(msg, got), "compression %s, message %q", ct, msg)
		}
	}
}

func TestCompress_InvalidOption(t *testing.T) {
	_, err := Compress([]byte("x"), frame.WithCompression(format.CompressionType(9)))
	require.ErrorIs(t, err, errs.ErrUnsupportedCompression)
}

func TestNewEncoderDecoder(t *testing.T) {
	enc, err := NewEncoder(frame.WithBigEndian(), frame.WithChecksum(false))
	require.NoError(t, err)

	data, err := enc.Encode([]byte("hello, world"))
	require.NoError(t, err)

	dec, err := NewDecoder(data)
	require.NoError(t, err)
	require.True(t, dec.Header().Flag.IsBigEndian())
	require.False(t, dec.Header().Flag.HasChecksum())
	require.Zero(t, dec.Header().Checksum)

	got, err := dec.Decode()
	require.NoError(t, err)
	require.Equal(t, []byte("hello, world"), got)
}

func TestAnalyze_Abracadabra(t *testing.T) {
	data := []byte("abracadabra")

	report, err := Analyze(data)
	require.NoError(t, err)

	require.Equal(t, 11, report.MessageLength)
	require.Equal(t, 5, report.DistinctSymbols)
	require.Equal(t, 23, report.CodeBits)
	require.Equal(t, 3, report.CodeBytes)
	require.Equal(t, 4, report.PackedLength)
	require.Equal(t, 4, report.MaxCodeLength)
	require.InDelta(t, tree.Entropy(data), report.Entropy, 1e-12)
	require.InDelta(t, 3.0/11.0, report.Ratio(), 1e-12)
	require.Equal(t, "in 3b vs 11b", report.String())
}

func TestAnalyze_MatchesPack(t *testing.T) {
	data := bytes.Repeat([]byte("the rain in spain stays mainly in the plain"), 7)

	report, err := Analyze(data)
	require.NoError(t, err)

	root, err := Build(data)
	require.NoError(t, err)
	packed, err := encoding.Pack(root, data)
	require.NoError(t, err)

	bits, err := encoding.BitLen(packed)
	require.NoError(t, err)
	require.Equal(t, report.CodeBits, bits-encoding.HeaderBits)
	require.Len(t, packed, report.PackedLength)
}

func TestAnalyze_Empty(t *testing.T) {
	_, err := Analyze(nil)
	require.ErrorIs(t, err, errs.ErrEmptyInput)
	require.Zero(t, Report{}.Ratio())
}
