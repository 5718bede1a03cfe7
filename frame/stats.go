package frame

import "github.com/arloliu/hufftree/compress"

// Stats describes one encoded frame.
type Stats struct {
	MessageLength int // symbols in the message
	LeafCount     int // distinct symbols, one frequency entry each
	CodeBits      int // total length of all codes, excluding the 3-bit packer header
	PackedLength  int // packed payload size before compression
	FrameLength   int // total frame size

	// Compression describes the payload codec pass.
	Compression compress.CompressionStats
}

// Ratio returns FrameLength / MessageLength, or 0 for an empty message.
func (s Stats) Ratio() float64 {
	if s.MessageLength == 0 {
		return 0
	}

	return float64(s.FrameLength) / float64(s.MessageLength)
}

// Overhead returns the bytes spent on the header and frequency entries.
func (s Stats) Overhead() int {
	return s.FrameLength - int(s.Compression.CompressedSize)
}
