package section

import (
	"encoding/binary"
	"fmt"

	"github.com/arloliu/hufftree/errs"
	"github.com/arloliu/hufftree/format"
)

// FrameHeader is the fixed-size header at the start of every frame.
//
// The struct is 24 bytes on the wire:
//
//	Offset | Size | Field
//	-------|------|-----------------------------
//	0      | 2    | Flag.Options (always little-endian)
//	2      | 1    | Flag.CompressionType
//	3      | 1    | reserved
//	4      | 4    | MessageLength
//	8      | 2    | LeafCount
//	10     | 2    | reserved
//	12     | 4    | PayloadLength
//	16     | 8    | Checksum
type FrameHeader struct {
	Flag          FrameFlag
	MessageLength uint32 // number of symbols in the original message
	LeafCount     uint16 // number of frequency entries following the header
	PayloadLength uint32 // stored payload size, after compression
	Checksum      uint64 // xxHash64 of the message, zero when disabled
}

// NewFrameHeader creates a header with default flags for a message of the given length.
//
// Parameters:
//   - messageLength: number of bytes in the message to frame
//
// Returns:
//   - *FrameHeader: header ready to receive leaf count, payload length and checksum
//   - error: ErrMessageTooLarge when the length does not fit the uint32 field
func NewFrameHeader(messageLength int) (*FrameHeader, error) {
	if messageLength < 0 || uint64(messageLength) > MaxMessageLength {
		return nil, fmt.Errorf("%w: %d bytes", errs.ErrMessageTooLarge, messageLength)
	}

	return &FrameHeader{
		Flag:          NewFrameFlag(),
		MessageLength: uint32(messageLength), //nolint: gosec
	}, nil
}

// Compression returns the payload compression type.
func (h *FrameHeader) Compression() format.CompressionType {
	return h.Flag.Compression()
}

// FrequencySize returns the byte size of the frequency section.
func (h *FrameHeader) FrequencySize() int {
	return int(h.LeafCount) * FrequencyEntrySize
}

// PayloadOffset returns the byte offset where the payload starts.
func (h *FrameHeader) PayloadOffset() int {
	return HeaderSize + h.FrequencySize()
}

// FrameSize returns the total byte size of the frame described by the header.
func (h *FrameHeader) FrameSize() int {
	return h.PayloadOffset() + int(h.PayloadLength)
}

// Validate checks the flag and the consistency between message length and leaf count.
func (h *FrameHeader) Validate() error {
	if err := h.Flag.Validate(); err != nil {
		return err
	}

	if h.LeafCount > MaxLeafCount {
		return fmt.Errorf("%w: %d", errs.ErrInvalidLeafCount, h.LeafCount)
	}

	if (h.LeafCount == 0) != (h.MessageLength == 0) {
		return fmt.Errorf("%w: %d leaves for %d symbols", errs.ErrInvalidLeafCount, h.LeafCount, h.MessageLength)
	}

	if uint32(h.LeafCount) > h.MessageLength {
		return fmt.Errorf("%w: %d leaves for %d symbols", errs.ErrInvalidLeafCount, h.LeafCount, h.MessageLength)
	}

	if h.MessageLength == 0 && h.PayloadLength != 0 {
		return fmt.Errorf("%w: %d bytes for an empty message", errs.ErrInvalidPayloadLength, h.PayloadLength)
	}

	if h.MessageLength != 0 && h.PayloadLength == 0 {
		return fmt.Errorf("%w: empty payload for %d symbols", errs.ErrInvalidPayloadLength, h.MessageLength)
	}

	if !h.Flag.HasChecksum() && h.Checksum != 0 {
		return fmt.Errorf("%w: checksum set while disabled", errs.ErrInvalidHeaderFlags)
	}

	return nil
}

// Bytes serializes the header into a new 24-byte slice.
func (h *FrameHeader) Bytes() []byte {
	b := make([]byte, HeaderSize)
	h.WriteToSlice(b, 0)

	return b
}

// WriteToSlice writes the header into data at offset and returns the next offset.
//
// data must have at least HeaderSize bytes available after offset.
func (h *FrameHeader) WriteToSlice(data []byte, offset int) int {
	b := data[offset : offset+HeaderSize]
	engine := h.Flag.GetEndianEngine()

	// Options is always little-endian so the endianness bit can be read first
	binary.LittleEndian.PutUint16(b[0:2], h.Flag.Options)
	b[2] = h.Flag.CompressionType
	b[3] = 0
	engine.PutUint32(b[4:8], h.MessageLength)
	engine.PutUint16(b[8:10], h.LeafCount)
	b[10], b[11] = 0, 0
	engine.PutUint32(b[12:16], h.PayloadLength)
	engine.PutUint64(b[16:24], h.Checksum)

	return offset + HeaderSize
}

// Parse parses the header from a byte slice.
//
// Parameters:
//   - data: exactly HeaderSize bytes
//
// Returns:
//   - error: ErrInvalidHeaderSize, ErrInvalidMagicNumber, ErrInvalidHeaderFlags,
//     ErrInvalidLeafCount or ErrInvalidPayloadLength
func (h *FrameHeader) Parse(data []byte) error {
	if len(data) != HeaderSize {
		return fmt.Errorf("%w: got %d bytes, want %d", errs.ErrInvalidHeaderSize, len(data), HeaderSize)
	}

	h.Flag.Options = binary.LittleEndian.Uint16(data[0:2])
	h.Flag.CompressionType = data[2]

	if err := h.Flag.Validate(); err != nil {
		return err
	}

	if data[3] != 0 || data[10] != 0 || data[11] != 0 {
		return fmt.Errorf("%w: reserved bytes must be zero", errs.ErrInvalidHeaderFlags)
	}

	engine := h.Flag.GetEndianEngine()
	h.MessageLength = engine.Uint32(data[4:8])
	h.LeafCount = engine.Uint16(data[8:10])
	h.PayloadLength = engine.Uint32(data[12:16])
	h.Checksum = engine.Uint64(data[16:24])

	return h.Validate()
}

// ParseFrameHeader parses the header at the start of a frame.
//
// Only the first HeaderSize bytes of data are examined.
func ParseFrameHeader(data []byte) (FrameHeader, error) {
	var h FrameHeader
	if len(data) < HeaderSize {
		return h, fmt.Errorf("%w: got %d bytes, want %d", errs.ErrInvalidHeaderSize, len(data), HeaderSize)
	}

	if err := h.Parse(data[:HeaderSize]); err != nil {
		return h, err
	}

	return h, nil
}
