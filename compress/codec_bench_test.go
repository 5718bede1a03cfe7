package compress

import (
	"testing"

	"github.com/arloliu/hufftree/format"
)

func BenchmarkCodecs_Compress(b *testing.B) {
	data := packedLike(16*1024, 7)

	for _, ct := range format.CompressionTypes {
		codec, _ := GetCodec(ct)
		b.Run(ct.String(), func(b *testing.B) {
			b.SetBytes(int64(len(data)))
			b.ReportAllocs()
			for b.Loop() {
				_, _ = codec.Compress(data)
			}
		})
	}
}

func BenchmarkCodecs_Decompress(b *testing.B) {
	data := packedLike(16*1024, 7)

	for _, ct := range format.CompressionTypes {
		codec, _ := GetCodec(ct)
		compressed, err := codec.Compress(data)
		if err != nil {
			b.Fatal(err)
		}

		b.Run(ct.String(), func(b *testing.B) {
			b.SetBytes(int64(len(data)))
			b.ReportAllocs()
			for b.Loop() {
				_, _ = codec.Decompress(compressed)
			}
		})
	}
}

func BenchmarkCodecs_Parallel(b *testing.B) {
	data := packedLike(4096, 11)

	for _, ct := range format.CompressionTypes {
		codec, _ := GetCodec(ct)
		b.Run(ct.String(), func(b *testing.B) {
			b.RunParallel(func(pb *testing.PB) {
				for pb.Next() {
					compressed, _ := codec.Compress(data)
					_, _ = codec.Decompress(compressed)
				}
			})
		})
	}
}
