package section

import (
	"github.com/arloliu/hufftree/endian"
	"github.com/arloliu/hufftree/errs"
	"github.com/arloliu/hufftree/format"
)

// FrameFlag is the packed option word and compression byte of a frame header.
type FrameFlag struct {
	// Options packs the checksum bit, the endianness bit and the magic number.
	Options uint16

	// CompressionType is the format.CompressionType applied to the payload.
	CompressionType uint8
}

var validCompressions = map[uint8]struct{}{
	uint8(format.CompressionNone): {},
	uint8(format.CompressionZstd): {},
	uint8(format.CompressionS2):   {},
	uint8(format.CompressionLZ4):  {},
}

// NewFrameFlag creates a flag with the version 1 magic, little-endian byte
// order, checksum enabled and no compression.
func NewFrameFlag() FrameFlag {
	flag := FrameFlag{
		Options:         MagicFrameV1Opt,
		CompressionType: uint8(format.CompressionNone),
	}
	flag.WithLittleEndian()
	flag.SetChecksum(true)

	return flag
}

// HasChecksum returns whether the header carries a message checksum.
func (f FrameFlag) HasChecksum() bool {
	return (f.Options & ChecksumMask) != 0
}

// SetChecksum enables or disables the checksum bit.
func (f *FrameFlag) SetChecksum(enabled bool) {
	if enabled {
		f.Options |= ChecksumMask
	} else {
		f.Options &^= ChecksumMask
	}
}

// IsLittleEndian returns whether the frame is little-endian.
func (f FrameFlag) IsLittleEndian() bool {
	return (f.Options & EndiannessMask) == 0
}

// IsBigEndian returns whether the frame is big-endian.
func (f FrameFlag) IsBigEndian() bool {
	return (f.Options & EndiannessMask) != 0
}

// WithLittleEndian sets little-endian byte order.
func (f *FrameFlag) WithLittleEndian() {
	f.Options &^= EndiannessMask
}

// WithBigEndian sets big-endian byte order.
func (f *FrameFlag) WithBigEndian() {
	f.Options |= EndiannessMask
}

// GetMagicNumber returns the magic number bits of the Options field.
func (f FrameFlag) GetMagicNumber() uint16 {
	return f.Options & MagicNumberMask
}

// Compression returns the payload compression type.
func (f FrameFlag) Compression() format.CompressionType {
	return format.CompressionType(f.CompressionType)
}

// SetCompression sets the payload compression type.
func (f *FrameFlag) SetCompression(compression format.CompressionType) {
	f.CompressionType = uint8(compression)
}

// IsValidMagicNumber checks if the magic number is valid.
func (f FrameFlag) IsValidMagicNumber() bool {
	return f.GetMagicNumber() == MagicFrameV1Opt
}

// IsValidCompression checks if the compression type is known.
func (f FrameFlag) IsValidCompression() bool {
	_, ok := validCompressions[f.CompressionType]
	return ok
}

// Validate checks the magic number, the reserved bits and the compression type.
func (f FrameFlag) Validate() error {
	if !f.IsValidMagicNumber() {
		return errs.ErrInvalidMagicNumber
	}

	if f.Options&ReservedBitsMask != 0 {
		return errs.ErrInvalidHeaderFlags
	}

	if !f.IsValidCompression() {
		return errs.ErrInvalidHeaderFlags
	}

	return nil
}

// GetEndianEngine returns the endian engine selected by the flag.
func (f FrameFlag) GetEndianEngine() endian.EndianEngine {
	if f.IsLittleEndian() {
		return endian.GetLittleEndianEngine()
	}

	return endian.GetBigEndianEngine()
}
