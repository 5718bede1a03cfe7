// Package format names the payload compression types a frame can carry.
package format

type CompressionType uint8

const (
	CompressionNone CompressionType = 0x1 // CompressionNone stores packed codes as-is.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

// CompressionTypes lists every supported compression type in wire order.
var CompressionTypes = []CompressionType{
	CompressionNone,
	CompressionZstd,
	CompressionS2,
	CompressionLZ4,
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}
