package format

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCompressionType_String(t *testing.T) {
	tests := []struct {
		ct   CompressionType
		want string
	}{
		{CompressionNone, "None"},
		{CompressionZstd, "Zstd"},
		{CompressionS2, "S2"},
		{CompressionLZ4, "LZ4"},
		{CompressionType(0), "Unknown"},
		{CompressionType(0xFF), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			require.Equal(t, tt.want, tt.ct.String())
		})
	}
}

func TestCompressionTypes_Distinct(t *testing.T) {
	seen := make(map[CompressionType]bool)
	for _, ct := range CompressionTypes {
		require.False(t, seen[ct], "duplicate compression type %s", ct)
		require.NotEqual(t, "Unknown", ct.String())
		seen[ct] = true
	}
	require.Len(t, seen, 4)
}
