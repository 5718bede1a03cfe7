package hash

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChecksum(t *testing.T) {
	tests := []struct {
		name string
		data string
		sum  uint64
	}{
		{"empty", "", 0xef46db3751d8e999},
		{"short", "test", 0x4fdcca5ddb678139},
		{"long", "this is a longer test string to hash", 0x69275f7f7ee59dbd},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.sum, Checksum([]byte(tt.data)))
			assert.True(t, Verify([]byte(tt.data), tt.sum))
			assert.False(t, Verify([]byte(tt.data), tt.sum^1))
		})
	}
}

func BenchmarkChecksum(b *testing.B) {
	rng := rand.New(rand.NewPCG(1, 2))
	data := make([]byte, 4096)
	for i := range data {
		data[i] = byte(rng.IntN(256))
	}

	b.SetBytes(int64(len(data)))
	for b.Loop() {
		Checksum(data)
	}
}
