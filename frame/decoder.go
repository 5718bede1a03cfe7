package frame

import (
	"fmt"
	"math"

	"github.com/arloliu/hufftree/compress"
	"github.com/arloliu/hufftree/encoding"
	"github.com/arloliu/hufftree/errs"
	"github.com/arloliu/hufftree/internal/hash"
	"github.com/arloliu/hufftree/section"
	"github.com/arloliu/hufftree/tree"
)

// Decoder reads one frame.
//
// NewDecoder parses and validates the header only; the frequency section and
// payload are examined on demand. Bytes after the frame are ignored, see Size.
//
// Note: The Decoder is NOT thread-safe.
type Decoder struct {
	data   []byte
	header section.FrameHeader
	root   *tree.Entry
}

// NewDecoder creates a Decoder for the frame at the start of data.
//
// Returns:
//   - *Decoder: decoder with a validated header
//   - error: header errors from section.ParseFrameHeader, or
//     errs.ErrInvalidPayloadLength if data is shorter than the frame
func NewDecoder(data []byte) (*Decoder, error) {
	header, err := section.ParseFrameHeader(data)
	if err != nil {
		return nil, err
	}

	if len(data) < header.FrameSize() {
		return nil, fmt.Errorf("%w: frame needs %d bytes, got %d", errs.ErrInvalidPayloadLength, header.FrameSize(), len(data))
	}

	return &Decoder{
		data:   data[:header.FrameSize()],
		header: header,
	}, nil
}

// Header returns the parsed frame header.
func (d *Decoder) Header() section.FrameHeader {
	return d.header
}

// Size returns the byte length of the frame.
func (d *Decoder) Size() int {
	return len(d.data)
}

// Frequencies parses the frequency section.
func (d *Decoder) Frequencies() ([]section.FrequencyEntry, error) {
	return section.ParseFrequencies(d.data[section.FrequencyOffset:d.header.PayloadOffset()], &d.header)
}

// Histogram rebuilds the message histogram from the frequency section.
func (d *Decoder) Histogram() (tree.Histogram, error) {
	var hist tree.Histogram

	entries, err := d.Frequencies()
	if err != nil {
		return hist, err
	}
	for _, e := range entries {
		hist[e.Symbol] = uint64(e.Count)
	}

	return hist, nil
}

// Tree rebuilds the coding tree used by the encoder.
//
// Returns:
//   - *tree.Entry: root of the tree, identical in shape to the encoder's
//   - error: frequency section errors, or errs.ErrEmptyInput for an empty message
func (d *Decoder) Tree() (*tree.Entry, error) {
	if d.root != nil {
		return d.root, nil
	}

	hist, err := d.Histogram()
	if err != nil {
		return nil, err
	}

	root, err := tree.Build(hist.Entries())
	if err != nil {
		return nil, err
	}
	d.root = root

	return root, nil
}

// Payload returns the stored payload, still compressed.
func (d *Decoder) Payload() []byte {
	return d.data[d.header.PayloadOffset():]
}

// Packed returns the decompressed packed code stream.
func (d *Decoder) Packed() ([]byte, error) {
	codec, err := compress.GetCodec(d.header.Compression())
	if err != nil {
		return nil, err
	}

	var packed []byte
	if bounded, ok := codec.(compress.BoundedDecompressor); ok {
		packed, err = bounded.DecompressBound(d.Payload(), maxPackedSize(d.header.MessageLength))
	} else {
		packed, err = codec.Decompress(d.Payload())
	}
	if err != nil {
		return nil, fmt.Errorf("decompress payload: %w", err)
	}

	return packed, nil
}

// Decode restores the framed message.
//
// Returns:
//   - []byte: the original message, owned by the caller
//   - error: frequency, decompression and errs.ErrMalformedPath errors,
//     errs.ErrMessageLengthMismatch, or errs.ErrChecksumMismatch
func (d *Decoder) Decode() ([]byte, error) {
	if d.header.MessageLength == 0 {
		return d.verify([]byte{})
	}

	root, err := d.Tree()
	if err != nil {
		return nil, err
	}

	packed, err := d.Packed()
	if err != nil {
		return nil, err
	}

	message, err := encoding.Unpack(root, packed)
	if err != nil {
		return nil, err
	}

	return d.verify(message)
}

func (d *Decoder) verify(message []byte) ([]byte, error) {
	if uint64(len(message)) != uint64(d.header.MessageLength) {
		return nil, fmt.Errorf("%w: decoded %d symbols, header says %d", errs.ErrMessageLengthMismatch, len(message), d.header.MessageLength)
	}

	if d.header.Flag.HasChecksum() && !hash.Verify(message, d.header.Checksum) {
		return nil, errs.ErrChecksumMismatch
	}

	return message, nil
}

// Decode restores the message framed at the start of data.
func Decode(data []byte) ([]byte, error) {
	d, err := NewDecoder(data)
	if err != nil {
		return nil, err
	}

	return d.Decode()
}

// maxPackedSize bounds the packed stream of a message: 3 header bits plus at
// most tree.MaxCodeLength bits per symbol.
func maxPackedSize(messageLength uint32) int {
	bits := uint64(encoding.HeaderBits) + uint64(messageLength)*tree.MaxCodeLength
	size := (bits + 7) / 8
	if size > math.MaxInt {
		return math.MaxInt
	}

	return int(size)
}
