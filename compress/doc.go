// Package compress provides optional second-stage compression for packed
// code payloads stored in frames.
//
// A frame's payload is the bit stream produced by encoding.Pack. The frame
// encoder can pass it through one of the codecs below before storing it; the
// chosen codec is recorded in the header so the decoder can reverse it.
//
// # Available Codecs
//
//   - None: payload stored as-is (default)
//   - Zstd: klauspost/compress/zstd, or valyala/gozstd with -tags gozstd and cgo
//   - S2: klauspost/compress/s2, a faster Snappy extension
//   - LZ4: pierrec/lz4/v4 block format
//
// # Usage
//
//	codec, err := compress.GetCodec(format.CompressionS2)
//	if err != nil {
//		return err
//	}
//	payload, err := codec.Compress(packed)
//
// GetCodec returns shared stateless instances; CreateCodec returns a fresh
// one. All codecs are safe for concurrent use. Empty input compresses to an
// empty result for every codec.
package compress
