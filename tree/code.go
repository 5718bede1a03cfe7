package tree

import "strings"

// MaxCodeLength is the longest bit path a Code can hold.
const MaxCodeLength = 64

// Code is the root-to-leaf route of a symbol.
type Code struct {
	// Path holds the turns, least significant bit first: bit i is the
	// direction taken at depth i, 0 for left and 1 for right.
	// Bits at or above Length are ignored.
	Path uint64

	// Length is the number of meaningful bits in Path, the depth of the leaf.
	Length uint8
}

// MakeCode constructs a Code, clearing any bits of path above length.
func MakeCode(path uint64, length uint8) Code {
	return Code{Path: lowOrderBits(path, length), Length: length}
}

// Bit returns the direction taken at depth i.
func (c Code) Bit(i int) uint8 {
	return uint8((c.Path >> uint(i)) & 1)
}

// HasPrefix reports whether p is a bit prefix of c.
func (c Code) HasPrefix(p Code) bool {
	if p.Length > c.Length {
		return false
	}

	return lowOrderBits(c.Path, p.Length) == lowOrderBits(p.Path, p.Length)
}

// String renders the bits least significant first as '0' and '1'.
func (c Code) String() string {
	var sb strings.Builder
	sb.Grow(int(c.Length))
	for i := range int(c.Length) {
		sb.WriteByte('0' + c.Bit(i))
	}

	return sb.String()
}

// lowOrderBits returns the n low-order bits of u.
func lowOrderBits(u uint64, n uint8) uint64 {
	if n >= 64 {
		return u
	}

	return u & ((uint64(1) << n) - 1)
}
