package section

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/hufftree/endian"
	"github.com/arloliu/hufftree/errs"
)

func TestFrequencyEntry_WriteToSlice(t *testing.T) {
	e := FrequencyEntry{Symbol: 'a', Count: 0x01020304}
	b := make([]byte, FrequencyEntrySize)

	require.Equal(t, FrequencyEntrySize, e.WriteToSlice(b, 0, endian.GetLittleEndianEngine()))
	require.Equal(t, []byte{'a', 0x04, 0x03, 0x02, 0x01}, b)

	e.WriteToSlice(b, 0, endian.GetBigEndianEngine())
	require.Equal(t, []byte{'a', 0x01, 0x02, 0x03, 0x04}, b)
}

func TestFrequencyEntry_RoundTrip(t *testing.T) {
	engine := endian.GetBigEndianEngine()
	e := FrequencyEntry{Symbol: 0xFF, Count: 7}

	buf := make([]byte, 2*FrequencyEntrySize)
	next := e.WriteToSlice(buf, FrequencyEntrySize, engine)
	require.Equal(t, 2*FrequencyEntrySize, next)

	parsed, err := ParseFrequencyEntry(buf[FrequencyEntrySize:], engine)
	require.NoError(t, err)
	require.Equal(t, e, parsed)
}

func TestParseFrequencyEntry_Errors(t *testing.T) {
	engine := endian.GetLittleEndianEngine()

	_, err := ParseFrequencyEntry([]byte{'a', 1, 0}, engine)
	require.ErrorIs(t, err, errs.ErrInvalidFrequencyEntry)

	_, err = ParseFrequencyEntry([]byte{'a', 0, 0, 0, 0}, engine)
	require.ErrorIs(t, err, errs.ErrInvalidFrequencyEntry)
}

func frequencySection(entries ...FrequencyEntry) []byte {
	engine := endian.GetLittleEndianEngine()
	buf := make([]byte, len(entries)*FrequencyEntrySize)
	off := 0
	for _, e := range entries {
		off = e.WriteToSlice(buf, off, engine)
	}

	return buf
}

func TestParseFrequencies(t *testing.T) {
	h := &FrameHeader{Flag: NewFrameFlag(), MessageLength: 11, LeafCount: 5, PayloadLength: 4}
	want := []FrequencyEntry{{'a', 5}, {'b', 2}, {'c', 1}, {'d', 1}, {'r', 2}}

	got, err := ParseFrequencies(frequencySection(want...), h)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestParseFrequencies_Errors(t *testing.T) {
	h := &FrameHeader{Flag: NewFrameFlag(), MessageLength: 3, LeafCount: 2, PayloadLength: 1}

	tests := []struct {
		name string
		data []byte
	}{
		{"truncated", frequencySection(FrequencyEntry{'a', 2})},
		{"unsorted", frequencySection(FrequencyEntry{'b', 2}, FrequencyEntry{'a', 1})},
		{"duplicate", frequencySection(FrequencyEntry{'a', 2}, FrequencyEntry{'a', 1})},
		{"sum mismatch", frequencySection(FrequencyEntry{'a', 2}, FrequencyEntry{'b', 2})},
		{"zero count", frequencySection(FrequencyEntry{'a', 3}, FrequencyEntry{'b', 0})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseFrequencies(tt.data, h)
			require.ErrorIs(t, err, errs.ErrInvalidFrequencyEntry)
		})
	}
}
