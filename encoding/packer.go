package encoding

import (
	"fmt"
	"iter"

	"github.com/chronos-tachyon/assert"

	"github.com/arloliu/hufftree/errs"
	"github.com/arloliu/hufftree/internal/pool"
	"github.com/arloliu/hufftree/tree"
)

const (
	// HeaderBits is the number of bits at the start of byte 0 that hold the
	// trailing bit count.
	HeaderBits = 3
	headerMask = 1<<HeaderBits - 1
)

// Pack encodes every symbol with root and packs the codes into a byte buffer.
//
// Layout: the low three bits of byte 0 hold the number of meaningful bits in
// the last byte modulo 8 (0 meaning a full last byte). The codes follow from
// bit 3 of byte 0, each least significant bit first, concatenated in input
// order across byte boundaries. A code may span any number of bytes.
//
// Parameters:
//   - root: Tree built from a message containing every symbol
//   - symbols: Raw bytes to encode
//
// Returns:
//   - []byte: Packed buffer owned by the caller, at least one byte long
//   - error: errs.ErrSymbolNotFound for a symbol absent from the tree,
//     errs.ErrZeroLengthCode if root is a lone leaf
func Pack(root *tree.Entry, symbols []byte) ([]byte, error) {
	table, err := tree.NewCodeTable(root)
	if err != nil {
		return nil, err
	}

	p := NewPacker()
	defer p.Release()

	for i, b := range symbols {
		code, err := table.Lookup(b)
		if err != nil {
			return nil, fmt.Errorf("symbol %d: %w", i, err)
		}
		if err := p.WriteCode(code); err != nil {
			return nil, fmt.Errorf("symbol %d: %w", i, err)
		}
	}

	return p.Bytes(), nil
}

// PackCodes packs an already encoded code sequence; see Pack for the layout.
func PackCodes(codes []tree.Code) ([]byte, error) {
	p := NewPacker()
	defer p.Release()

	for i, code := range codes {
		if err := p.WriteCode(code); err != nil {
			return nil, fmt.Errorf("code %d: %w", i, err)
		}
	}

	return p.Bytes(), nil
}

// Packer accumulates codes into a packed buffer.
//
// A Packer is not safe for concurrent use. Call Release when done to return
// its buffer to the pool.
type Packer struct {
	w *bitWriter
}

// NewPacker creates a Packer with the header bits reserved.
func NewPacker() *Packer {
	w := newBitWriter(pool.GetPackBuffer())
	w.writeBits(0, HeaderBits)

	return &Packer{w: w}
}

// WriteCode appends the bits of code.
//
// Returns:
//   - error: errs.ErrZeroLengthCode for an empty code, which could not be
//     told apart from the end of the stream when unpacking
func (p *Packer) WriteCode(code tree.Code) error {
	assert.Assertf(p.w != nil, "packer already released")
	if code.Length == 0 {
		return errs.ErrZeroLengthCode
	}
	if code.Length > tree.MaxCodeLength {
		return fmt.Errorf("%w: %d bits", errs.ErrOversizedCode, code.Length)
	}

	p.w.writeBits(code.Path, int(code.Length))

	return nil
}

// BitLen returns the number of bits written so far, header included.
func (p *Packer) BitLen() int {
	return p.w.total
}

// Bytes finishes the stream and returns a copy of the packed buffer.
// The Packer may not be written to afterwards.
func (p *Packer) Bytes() []byte {
	assert.Assertf(p.w != nil, "packer already released")

	total := p.w.total
	p.w.flush()
	out := p.w.buf.Clone()
	out[0] |= byte(total % 8)

	return out
}

// Release returns the internal buffer to the pool.
func (p *Packer) Release() {
	if p.w == nil {
		return
	}
	pool.PutPackBuffer(p.w.buf)
	p.w = nil
}

// BitLen returns the number of meaningful bits in a packed buffer, header
// included.
//
// Returns:
//   - int: (len(packed)-1)*8 + r, where r is the header value and 0 counts as 8
//   - error: errs.ErrMalformedPath if the buffer is empty or shorter than its header
func BitLen(packed []byte) (int, error) {
	if len(packed) == 0 {
		return 0, fmt.Errorf("%w: missing header byte", errs.ErrMalformedPath)
	}

	r := int(packed[0] & headerMask)
	if r == 0 {
		r = 8
	}
	total := (len(packed)-1)*8 + r
	if total < HeaderBits {
		return 0, fmt.Errorf("%w: %d meaningful bits cannot hold the header", errs.ErrMalformedPath, total)
	}

	return total, nil
}

// All walks a packed buffer bit by bit from root and yields each decoded
// symbol. Iteration stops at the first error, which is yielded with a zero
// byte.
//
// Walking starts at bit 3 of byte 0. Each 0 bit steps left and each 1 bit
// steps right; reaching a leaf yields its value and restarts at root.
func All(root *tree.Entry, packed []byte) iter.Seq2[byte, error] {
	return func(yield func(byte, error) bool) {
		if root == nil {
			yield(0, errs.ErrNilTree)
			return
		}

		total, err := BitLen(packed)
		if err != nil {
			yield(0, err)
			return
		}

		br := newBitReader(packed, total)
		br.skip(HeaderBits)

		node := root
		for {
			bit, ok := br.readBit()
			if !ok {
				break
			}

			if bit == 0 {
				node = node.Left()
			} else {
				node = node.Right()
			}
			if node == nil {
				yield(0, fmt.Errorf("%w: no child at bit offset %d", errs.ErrMalformedPath, br.pos-1))
				return
			}

			if sym, ok := node.Symbol(); ok {
				if !yield(sym, nil) {
					return
				}
				node = root
			}
		}

		if node != root {
			yield(0, fmt.Errorf("%w: stream ends inside a code", errs.ErrMalformedPath))
		}
	}
}

// Unpack reverses Pack and returns the original symbols.
//
// Returns:
//   - []byte: Decoded symbols, empty (non-nil) for a header-only buffer
//   - error: errs.ErrMalformedPath if the buffer and tree do not match
func Unpack(root *tree.Entry, packed []byte) ([]byte, error) {
	out := make([]byte, 0, len(packed)*2)
	for sym, err := range All(root, packed) {
		if err != nil {
			return nil, err
		}
		out = append(out, sym)
	}

	return out, nil
}
