package frame

import (
	"fmt"

	"github.com/arloliu/hufftree/compress"
	"github.com/arloliu/hufftree/format"
	"github.com/arloliu/hufftree/internal/options"
	"github.com/arloliu/hufftree/section"
)

// EncoderConfig holds the frame settings chosen through options.
type EncoderConfig struct {
	flag  section.FrameFlag
	codec compress.Codec
}

// NewEncoderConfig returns the default configuration: no compression,
// little-endian fields and a message checksum.
func NewEncoderConfig() *EncoderConfig {
	return &EncoderConfig{
		flag:  section.NewFrameFlag(),
		codec: compress.NewNoOpCompressor(),
	}
}

// Flag returns the flag word written into every frame header.
func (c *EncoderConfig) Flag() section.FrameFlag {
	return c.flag
}

// Codec returns the payload codec.
func (c *EncoderConfig) Codec() compress.Codec {
	return c.codec
}

func (c *EncoderConfig) setCompression(ct format.CompressionType) error {
	codec, err := compress.CreateCodec(ct, "payload")
	if err != nil {
		return fmt.Errorf("invalid payload compression: %w", err)
	}

	c.codec = codec
	c.flag.SetCompression(ct)

	return nil
}

// EncoderOption configures an EncoderConfig.
type EncoderOption = options.Option[*EncoderConfig]

// WithCompression sets the codec applied to the packed payload.
// The default is format.CompressionNone.
func WithCompression(ct format.CompressionType) EncoderOption {
	return options.New(func(c *EncoderConfig) error {
		return c.setCompression(ct)
	})
}

// WithLittleEndian writes multi-byte header and frequency fields least
// significant byte first. It is the default option.
func WithLittleEndian() EncoderOption {
	return options.NoError(func(c *EncoderConfig) {
		c.flag.WithLittleEndian()
	})
}

// WithBigEndian writes multi-byte header and frequency fields most
// significant byte first.
func WithBigEndian() EncoderOption {
	return options.NoError(func(c *EncoderConfig) {
		c.flag.WithBigEndian()
	})
}

// WithChecksum enables or disables the xxHash64 message checksum. It is
// enabled by default.
func WithChecksum(enabled bool) EncoderOption {
	return options.NoError(func(c *EncoderConfig) {
		c.flag.SetChecksum(enabled)
	})
}
