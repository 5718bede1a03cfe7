package compress

import (
	"fmt"

	"github.com/arloliu/hufftree/errs"
	"github.com/arloliu/hufftree/format"
)

// Compressor compresses a packed code payload.
//
// Packed payloads are dense bit streams, so the general-purpose codecs here
// gain most on messages with long runs or skewed pair statistics that a
// per-symbol prefix code cannot exploit.
type Compressor interface {
	// Compress compresses data and returns the result.
	//
	// Memory management:
	//   - Returned slice is owned by the caller unless documented otherwise
	//   - Input slice is not modified
	Compress(data []byte) ([]byte, error)
}

// Decompressor reverses a Compressor of the same type.
//
// Example:
//
//	codec, err := compress.GetCodec(header.Compression())
//	if err != nil {
//	    return err
//	}
//	packed, err := codec.Decompress(payload)
//	if err != nil {
//	    return fmt.Errorf("decompress payload: %w", err)
//	}
//
// Implementations are safe for concurrent use.
type Decompressor interface {
	// Decompress decompresses data and returns the original bytes.
	//
	// Error conditions:
	//   - Returns error if data is corrupted
	//   - Returns error if data was compressed with another algorithm
	Decompress(data []byte) ([]byte, error)
}

// BoundedDecompressor is implemented by codecs whose format does not record
// the decompressed size. maxSize caps the output buffer.
type BoundedDecompressor interface {
	DecompressBound(data []byte, maxSize int) ([]byte, error)
}

// Codec combines both compression and decompression and reports its type.
type Codec interface {
	Compressor
	Decompressor

	// Type returns the compression type recorded in frame headers.
	Type() format.CompressionType
}

// CompressionStats describes one payload compression.
type CompressionStats struct {
	// Algorithm identifies the compression algorithm used
	Algorithm format.CompressionType

	// OriginalSize is the packed payload size before compression
	OriginalSize int64

	// CompressedSize is the stored payload size
	CompressedSize int64

	// CompressionTimeNs is the time taken to compress the payload
	CompressionTimeNs int64

	// DecompressionTimeNs is the time taken to decompress the payload (if measured)
	DecompressionTimeNs int64
}

// CompressionRatio returns the compression ratio (compressed size / original size).
//
// Values less than 1.0 indicate the codec shrank the payload. Packed payloads
// are already entropy coded, so values above 1.0 are common for small inputs.
//
// Returns:
//   - float64: Compression ratio (0.0 if original size is zero)
func (s CompressionStats) CompressionRatio() float64 {
	if s.OriginalSize == 0 {
		return 0.0
	}

	return float64(s.CompressedSize) / float64(s.OriginalSize)
}

// SpaceSavings returns the space savings as a percentage, negative on expansion.
func (s CompressionStats) SpaceSavings() float64 {
	return (1.0 - s.CompressionRatio()) * 100.0
}

// CreateCodec creates a new Codec for the specified compression type.
//
// Parameters:
//   - compressionType: Type of compression (None, Zstd, S2, or LZ4)
//   - target: Description of target usage (for error messages)
//
// Returns:
//   - Codec: Codec instance for the specified type
//   - error: ErrUnsupportedCompression for unknown types
func CreateCodec(compressionType format.CompressionType, target string) (Codec, error) {
	switch compressionType {
	case format.CompressionNone:
		return NewNoOpCompressor(), nil
	case format.CompressionZstd:
		return NewZstdCompressor(), nil
	case format.CompressionS2:
		return NewS2Compressor(), nil
	case format.CompressionLZ4:
		return NewLZ4Compressor(), nil
	default:
		return nil, fmt.Errorf("%w: %s compression %s", errs.ErrUnsupportedCompression, target, compressionType)
	}
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec retrieves a shared built-in Codec for the specified compression type.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("%w: %s", errs.ErrUnsupportedCompression, compressionType)
}
