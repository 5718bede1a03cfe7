// Package hufftree provides prefix-code compression of byte messages using a
// frequency-ordered binary coding tree.
//
// Each distinct byte of a message becomes a leaf weighted by its occurrence
// count. Leaves are merged bottom-up into a tree whose root-to-leaf paths are
// the codes: a 0 bit steps left, a 1 bit steps right. Frequent bytes sit
// closer to the root and receive shorter codes. Codes are packed least
// significant bit first into a byte stream whose first three bits record how
// much of the last byte is meaningful.
//
// # Core Features
//
//   - Deterministic tree construction from a byte histogram
//   - Encode and Decode between bytes and codes of up to 64 bits
//   - Bit packing that lets codes span any number of byte boundaries
//   - Self-describing frames that persist the histogram, with optional
//     payload compression (None, Zstd, S2, LZ4) and an xxHash64 checksum
//   - Diagnostics: Graphviz dot output, indented tree dump, entropy
//
// # Basic Usage
//
// Framing a message:
//
//	data, err := hufftree.Compress(message)
//	if err != nil {
//		return err
//	}
//	restored, err := hufftree.Decompress(data)
//
// Working with the tree directly:
//
//	root, _ := hufftree.Build(message)
//	code, _ := tree.Encode(root, 'a')
//	packed, _ := encoding.Pack(root, message)
//	unpacked, _ := encoding.Unpack(root, packed)
//
// # Package Structure
//
// This package provides convenient top-level wrappers. The tree package holds
// the frequency table, builder and code table; encoding holds the bit packer;
// frame holds the container encoder and decoder.
package hufftree

import (
	"fmt"

	"github.com/arloliu/hufftree/encoding"
	"github.com/arloliu/hufftree/frame"
	"github.com/arloliu/hufftree/tree"
)

// Build counts the bytes of data and builds its coding tree.
//
// Returns:
//   - *tree.Entry: root of the coding tree
//   - error: errs.ErrEmptyInput if data is empty
func Build(data []byte) (*tree.Entry, error) {
	return tree.Build(tree.FrequencyTable(data))
}

// NewEncoder creates a frame encoder.
//
// Defaults: no payload compression, little-endian fields, checksum enabled.
//
// Example:
//
//	enc, err := hufftree.NewEncoder(frame.WithCompression(format.CompressionS2))
//	if err != nil {
//		return err
//	}
//	data, err := enc.Encode(message)
func NewEncoder(opts ...frame.EncoderOption) (*frame.Encoder, error) {
	return frame.NewEncoder(opts...)
}

// NewDecoder creates a frame decoder for data.
func NewDecoder(data []byte) (*frame.Decoder, error) {
	return frame.NewDecoder(data)
}

// Compress frames data with the given options.
//
// An empty message produces a header-only frame.
func Compress(data []byte, opts ...frame.EncoderOption) ([]byte, error) {
	enc, err := frame.NewEncoder(opts...)
	if err != nil {
		return nil, err
	}

	return enc.Encode(data)
}

// Decompress restores a message produced by Compress.
func Decompress(data []byte) ([]byte, error) {
	return frame.Decode(data)
}

// Report summarizes how well the coding tree of a message compresses it.
type Report struct {
	MessageLength   int     // bytes in the message
	DistinctSymbols int     // distinct byte values
	Entropy         float64 // Shannon entropy per symbol, base 256
	CodeBits        int     // sum of all code lengths
	CodeBytes       int     // whole bytes needed for the codes alone
	PackedLength    int     // packed stream length, 3-bit header included
	MaxCodeLength   int     // longest code assigned to a symbol present
}

// Ratio returns CodeBytes / MessageLength.
func (r Report) Ratio() float64 {
	if r.MessageLength == 0 {
		return 0
	}

	return float64(r.CodeBytes) / float64(r.MessageLength)
}

// String formats the size comparison as "in <CodeBytes>b vs <MessageLength>b".
func (r Report) String() string {
	return fmt.Sprintf("in %db vs %db", r.CodeBytes, r.MessageLength)
}

// Analyze builds the coding tree of data and reports its code sizes.
//
// Returns:
//   - Report: size and entropy figures
//   - error: errs.ErrEmptyInput if data is empty
func Analyze(data []byte) (Report, error) {
	hist := tree.Count(data)
	root, err := tree.Build(hist.Entries())
	if err != nil {
		return Report{}, err
	}

	table, err := tree.NewCodeTable(root)
	if err != nil {
		return Report{}, err
	}

	report := Report{
		MessageLength:   len(data),
		DistinctSymbols: hist.Distinct(),
		Entropy:         hist.Entropy(),
	}

	for sym, count := range hist {
		if count == 0 {
			continue
		}
		code, err := table.Lookup(byte(sym))
		if err != nil {
			return Report{}, err
		}
		report.CodeBits += int(count) * int(code.Length)
		report.MaxCodeLength = max(report.MaxCodeLength, int(code.Length))
	}

	report.CodeBytes = 1 + (report.CodeBits-1)/8
	report.PackedLength = (encoding.HeaderBits + report.CodeBits + 7) / 8

	return report, nil
}
