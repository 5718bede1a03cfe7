package frame

import (
	"fmt"
	"time"

	"github.com/arloliu/hufftree/encoding"
	"github.com/arloliu/hufftree/errs"
	"github.com/arloliu/hufftree/internal/hash"
	"github.com/arloliu/hufftree/internal/options"
	"github.com/arloliu/hufftree/section"
	"github.com/arloliu/hufftree/tree"
)

// Encoder turns messages into frames.
//
// An Encoder holds only its configuration, so it is reusable and safe for
// concurrent use.
type Encoder struct {
	*EncoderConfig
}

// NewEncoder creates a new Encoder with the given options.
//
// Parameters:
//   - opts: WithCompression, WithLittleEndian, WithBigEndian, WithChecksum
//
// Returns:
//   - *Encoder: encoder ready to frame messages
//   - error: errs.ErrUnsupportedCompression for an unknown compression type
func NewEncoder(opts ...EncoderOption) (*Encoder, error) {
	config := NewEncoderConfig()
	if err := options.Apply(config, opts...); err != nil {
		return nil, err
	}

	return &Encoder{EncoderConfig: config}, nil
}

// Encode frames message into a new byte slice.
func (e *Encoder) Encode(message []byte) ([]byte, error) {
	out, _, err := e.encode(nil, message)
	return out, err
}

// EncodeWithStats is like Encode but also reports frame statistics.
func (e *Encoder) EncodeWithStats(message []byte) ([]byte, Stats, error) {
	return e.encode(nil, message)
}

// Append frames message and appends the frame to dst.
func (e *Encoder) Append(dst []byte, message []byte) ([]byte, error) {
	out, _, err := e.encode(dst, message)
	return out, err
}

// encoded is a frame before it is laid out in memory.
type encoded struct {
	header  *section.FrameHeader
	hist    tree.Histogram
	payload []byte
	stats   Stats
}

func (e *Encoder) encode(dst []byte, message []byte) ([]byte, Stats, error) {
	enc, err := e.prepare(message)
	if err != nil {
		return dst, Stats{}, err
	}

	size := enc.header.FrameSize()
	start := len(dst)
	dst = append(dst, make([]byte, size)...)
	enc.writeTo(dst[start:])

	return dst, enc.stats, nil
}

// prepare builds the tree, packs and compresses the payload and fills in the header.
func (e *Encoder) prepare(message []byte) (*encoded, error) {
	header, err := section.NewFrameHeader(len(message))
	if err != nil {
		return nil, err
	}
	header.Flag = e.flag

	enc := &encoded{
		header: header,
		hist:   tree.Count(message),
	}
	enc.stats.MessageLength = len(message)
	enc.stats.Compression.Algorithm = e.Codec().Type()

	if header.Flag.HasChecksum() {
		header.Checksum = hash.Checksum(message)
	}

	if len(message) == 0 {
		enc.stats.FrameLength = header.FrameSize()
		return enc, nil
	}

	root, err := tree.Build(enc.hist.Entries())
	if err != nil {
		return nil, err
	}

	packed, err := encoding.Pack(root, message)
	if err != nil {
		return nil, fmt.Errorf("pack message: %w", err)
	}

	started := time.Now()
	payload, err := e.Codec().Compress(packed)
	if err != nil {
		return nil, fmt.Errorf("compress payload: %w", err)
	}
	elapsed := time.Since(started)

	if uint64(len(payload)) > section.MaxPayloadLength {
		return nil, fmt.Errorf("payload of %d bytes: %w", len(payload), errs.ErrMessageTooLarge)
	}

	header.LeafCount = uint16(enc.hist.Distinct()) //nolint: gosec
	header.PayloadLength = uint32(len(payload))    //nolint: gosec
	enc.payload = payload

	codeBits, err := encoding.BitLen(packed)
	if err != nil {
		return nil, err
	}

	enc.stats.LeafCount = int(header.LeafCount)
	enc.stats.CodeBits = codeBits - encoding.HeaderBits
	enc.stats.PackedLength = len(packed)
	enc.stats.FrameLength = header.FrameSize()
	enc.stats.Compression.OriginalSize = int64(len(packed))
	enc.stats.Compression.CompressedSize = int64(len(payload))
	enc.stats.Compression.CompressionTimeNs = elapsed.Nanoseconds()

	return enc, nil
}

// writeTo lays the frame out into b, which must be exactly FrameSize bytes.
func (enc *encoded) writeTo(b []byte) {
	offset := enc.header.WriteToSlice(b, 0)

	engine := enc.header.Flag.GetEndianEngine()
	for sym, count := range enc.hist {
		if count == 0 {
			continue
		}
		entry := section.FrequencyEntry{Symbol: byte(sym), Count: uint32(count)} //nolint: gosec
		offset = entry.WriteToSlice(b, offset, engine)
	}

	copy(b[offset:], enc.payload)
}
