package compress

import "github.com/arloliu/hufftree/format"

// ZstdCompressor provides Zstandard compression of packed payloads.
//
// The default build uses the pure Go klauspost/compress/zstd implementation.
// Building with the gozstd tag and cgo enabled switches to valyala/gozstd,
// which wraps the reference C library. Both produce standard zstd frames, so
// payloads written by one build are readable by the other.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
//
// Example:
//
//	compressor := NewZstdCompressor()
//	compressed, err := compressor.Compress(packed)
//	if err != nil {
//		return err
//	}
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}

func (c ZstdCompressor) Type() format.CompressionType {
	return format.CompressionZstd
}
