package tree

import (
	"fmt"
	"slices"

	"github.com/arloliu/hufftree/errs"
)

// Encode returns the Code of symbol by depth-first search from root.
//
// The left subtree is searched before the right one. Only true leaves match,
// so the placeholder or an internal node labelled with the same number is
// never mistaken for the symbol.
//
// Returns:
//   - Code: Route from root to the symbol's leaf
//   - error: errs.ErrSymbolNotFound if no leaf holds symbol,
//     errs.ErrOversizedCode if the leaf is deeper than MaxCodeLength
func Encode(root *Entry, symbol byte) (Code, error) {
	if root == nil {
		return Code{}, errs.ErrNilTree
	}

	path, depth, ok := findPath(root, symbol, 0, 0)
	if !ok {
		return Code{}, fmt.Errorf("%w: 0x%02x", errs.ErrSymbolNotFound, symbol)
	}
	if depth > MaxCodeLength {
		return Code{}, fmt.Errorf("%w: symbol 0x%02x at depth %d", errs.ErrOversizedCode, symbol, depth)
	}

	return Code{Path: path, Length: uint8(depth)}, nil //nolint: gosec
}

func findPath(e *Entry, symbol byte, path uint64, depth int) (uint64, int, bool) {
	if e.IsLeaf() && e.value == symbol {
		return path, depth, true
	}

	if e.left != nil {
		if p, d, ok := findPath(e.left, symbol, path, depth+1); ok {
			return p, d, true
		}
	}

	if e.right != nil {
		if depth < MaxCodeLength {
			path |= uint64(1) << uint(depth)
		}

		return findPath(e.right, symbol, path, depth+1)
	}

	return 0, 0, false
}

// Decode follows code from root and returns the byte value of the leaf reached.
//
// Bits are consumed least significant first, 0 stepping left and 1 right. A
// zero-length code resolves to root itself, which only succeeds for a
// single-leaf tree.
//
// Returns:
//   - byte: The decoded symbol
//   - error: errs.ErrMalformedPath if the path hits a missing child or ends
//     on a node that is not a leaf
func Decode(root *Entry, code Code) (byte, error) {
	if root == nil {
		return 0, errs.ErrNilTree
	}

	node := root
	path := code.Path
	for i := range int(code.Length) {
		if path&1 == 0 {
			node = node.left
		} else {
			node = node.right
		}
		if node == nil {
			return 0, fmt.Errorf("%w: code %s has no child at depth %d", errs.ErrMalformedPath, code, i)
		}
		path >>= 1
	}

	sym, ok := node.Symbol()
	if !ok {
		return 0, fmt.Errorf("%w: code %s ends on an internal node", errs.ErrMalformedPath, code)
	}

	return sym, nil
}

// EncodeAll encodes every byte of data.
func EncodeAll(root *Entry, data []byte) ([]Code, error) {
	codes := make([]Code, 0, len(data))
	for _, b := range data {
		c, err := Encode(root, b)
		if err != nil {
			return nil, err
		}
		codes = append(codes, c)
	}

	return codes, nil
}

// DecodeAll decodes a sequence of codes back into bytes.
func DecodeAll(root *Entry, codes []Code) ([]byte, error) {
	out := make([]byte, 0, len(codes))
	for _, c := range codes {
		b, err := Decode(root, c)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}

	return out, nil
}

// LeafCode pairs a symbol with its code.
type LeafCode struct {
	Leaf *Entry
	Code Code
}

// Symbol returns the byte value of the leaf.
func (lc LeafCode) Symbol() byte {
	return lc.Leaf.value
}

// Leaves returns the true leaves of the tree in left-to-right order.
func Leaves(root *Entry) []*Entry {
	var leaves []*Entry
	walk(root, 0, 0, func(e *Entry, _ uint64, _ int) {
		if e.IsLeaf() {
			leaves = append(leaves, e)
		}
	})

	return leaves
}

// Codes returns the code of every leaf, ordered by ascending symbol.
//
// Returns:
//   - []LeafCode: One entry per leaf
//   - error: errs.ErrOversizedCode if any leaf is deeper than MaxCodeLength
func Codes(root *Entry) ([]LeafCode, error) {
	var (
		codes []LeafCode
		err   error
	)
	walk(root, 0, 0, func(e *Entry, path uint64, depth int) {
		if !e.IsLeaf() || err != nil {
			return
		}
		if depth > MaxCodeLength {
			err = fmt.Errorf("%w: symbol 0x%02x at depth %d", errs.ErrOversizedCode, e.value, depth)
			return
		}
		codes = append(codes, LeafCode{Leaf: e, Code: Code{Path: path, Length: uint8(depth)}}) //nolint: gosec
	})
	if err != nil {
		return nil, err
	}

	slices.SortStableFunc(codes, func(a, b LeafCode) int {
		return int(a.Leaf.value) - int(b.Leaf.value)
	})

	return codes, nil
}

// CodeTable maps every leaf symbol of one tree to its code.
//
// A table is meant to live for a single pass over a message; it is not kept
// in the tree.
type CodeTable struct {
	codes   [256]Code
	present [256]bool
}

// NewCodeTable computes the code of every leaf of root.
func NewCodeTable(root *Entry) (*CodeTable, error) {
	if root == nil {
		return nil, errs.ErrNilTree
	}

	codes, err := Codes(root)
	if err != nil {
		return nil, err
	}

	t := &CodeTable{}
	for _, lc := range codes {
		sym := lc.Symbol()
		if t.present[sym] {
			// Encode returns the leftmost leaf, keep the same answer here.
			continue
		}
		t.codes[sym] = lc.Code
		t.present[sym] = true
	}

	return t, nil
}

// Lookup returns the code of symbol.
func (t *CodeTable) Lookup(symbol byte) (Code, error) {
	if !t.present[symbol] {
		return Code{}, fmt.Errorf("%w: 0x%02x", errs.ErrSymbolNotFound, symbol)
	}

	return t.codes[symbol], nil
}

// walk visits every node in pre-order, left before right, passing the path
// and depth at which the node sits.
func walk(e *Entry, path uint64, depth int, visit func(e *Entry, path uint64, depth int)) {
	if e == nil {
		return
	}

	visit(e, path, depth)
	walk(e.left, path, depth+1, visit)

	if depth < MaxCodeLength {
		path |= uint64(1) << uint(depth)
	}
	walk(e.right, path, depth+1, visit)
}
