// Package errs defines the sentinel errors returned by hufftree packages.
//
// Callers should compare with errors.Is, since most call sites wrap the
// sentinel with extra context such as the offending symbol or bit offset.
package errs

import "errors"

// Coding errors.
var (
	// ErrEmptyInput is returned when a tree is requested for a message with no symbols.
	ErrEmptyInput = errors.New("no symbols to build a tree from")
	// ErrSymbolNotFound is returned when a byte value is not a leaf of the tree.
	ErrSymbolNotFound = errors.New("symbol not found in tree")
	// ErrMalformedPath is returned when a bit path runs into a missing child.
	ErrMalformedPath = errors.New("bit path leads to a missing node")
	// ErrOversizedCode is returned when a leaf lies deeper than a Code can represent.
	ErrOversizedCode = errors.New("code exceeds maximum bit length")
	// ErrNilTree is returned when an operation is given a nil root.
	ErrNilTree = errors.New("tree is nil")
)

// Container errors.
var (
	ErrInvalidHeaderSize      = errors.New("invalid header size")
	ErrInvalidHeaderFlags     = errors.New("invalid header flags")
	ErrInvalidMagicNumber     = errors.New("invalid magic number")
	ErrInvalidLeafCount       = errors.New("invalid leaf count")
	ErrInvalidFrequencyEntry  = errors.New("invalid frequency entry")
	ErrInvalidPayloadLength   = errors.New("invalid payload length")
	ErrMessageLengthMismatch  = errors.New("decoded message length does not match header")
	ErrChecksumMismatch       = errors.New("message checksum mismatch")
	ErrMessageTooLarge        = errors.New("message too large for frame")
	ErrUnsupportedCompression = errors.New("unsupported compression type")
)

// ErrZeroLengthCode is returned when a zero-length code is packed. Only a
// single-leaf tree produces one, and it cannot be recovered from a bit stream.
var ErrZeroLengthCode = errors.New("zero-length code cannot be packed")
