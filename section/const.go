package section

import "math"

const (
	// Bit masks of the Options word
	ChecksumMask     = 0x0001 // Mask for checksum-present bit (bit 0)
	EndiannessMask   = 0x0002 // Mask for endianness bit (bit 1)
	ReservedBitsMask = 0x000C // Mask for reserved bits (bits 2-3)
	MagicNumberMask  = 0xFFF0 // Mask for magic number (bits 4-15)

	// MagicFrameV1Opt is the version 1 magic number of the frame format ("HP", low nibble clear).
	MagicFrameV1Opt = 0x4850
)

// offsets and section sizes in the frame
const (
	HeaderSize         = 24             // fixed header size in bytes
	FrequencyEntrySize = 5              // symbol byte + uint32 count
	FrequencyOffset    = HeaderSize     // byte offset where the frequency section starts
	MaxLeafCount       = 256            // one entry per byte value at most
	MaxMessageLength   = math.MaxUint32 // message length must fit the uint32 header field
	MaxPayloadLength   = math.MaxUint32 // payload length must fit the uint32 header field
)
