package tree

import (
	"fmt"
	"strconv"
)

// Entry is a node of the coding tree.
//
// A true leaf holds a real byte value. Internal nodes (merges) and the
// placeholder seeded by the frequency table have the internal flag set; their
// value is only a diagnostic label.
type Entry struct {
	left     *Entry
	right    *Entry
	weight   uint64
	value    byte
	internal bool
}

// NewLeaf creates a leaf entry for a real byte value occurring weight times.
func NewLeaf(value byte, weight uint64) *Entry {
	return &Entry{value: value, weight: weight}
}

// NewPlaceholder creates the synthetic entry that carries the total symbol count.
// It is internal even though it has no children.
func NewPlaceholder(weight uint64) *Entry {
	return &Entry{weight: weight, internal: true}
}

// newInternal creates a merge node. The label is cosmetic and only shows up in
// diagnostics.
func newInternal(label byte, weight uint64, left, right *Entry) *Entry {
	return &Entry{
		left:     left,
		right:    right,
		weight:   weight,
		value:    label,
		internal: true,
	}
}

// Weight returns the cumulative occurrence count of the subtree rooted here.
func (e *Entry) Weight() uint64 {
	return e.weight
}

// Value returns the raw value field: the byte of a leaf, or the diagnostic
// label of an internal node. Use Symbol to tell the two apart.
func (e *Entry) Value() byte {
	return e.value
}

// Symbol returns the byte value of a true leaf.
//
// Returns:
//   - byte: The leaf's byte value, 0 for internal nodes
//   - bool: false if the entry is an internal node or the placeholder
func (e *Entry) Symbol() (byte, bool) {
	if e.internal {
		return 0, false
	}

	return e.value, true
}

// IsInternal reports whether the entry is a merge node or the placeholder.
func (e *Entry) IsInternal() bool {
	return e.internal
}

// IsLeaf reports whether the entry holds a real byte value.
func (e *Entry) IsLeaf() bool {
	return !e.internal
}

// Left returns the left (0) child, or nil.
func (e *Entry) Left() *Entry {
	return e.left
}

// Right returns the right (1) child, or nil.
func (e *Entry) Right() *Entry {
	return e.right
}

// String renders a leaf as its character, byte value and count, and any other
// node as an anonymous node tagged with its aggregate count.
func (e *Entry) String() string {
	if e.internal {
		return "Ø(" + strconv.FormatUint(e.weight, 10) + ")"
	}

	return fmt.Sprintf("'%c' -> %d (%d)", rune(e.value), e.value, e.weight)
}

// name is the node identifier used in graph dumps.
func (e *Entry) name() string {
	if e.internal {
		return strconv.Itoa(int(e.value)) + "_" + strconv.FormatUint(e.weight, 10)
	}

	return strconv.Itoa(int(e.value)) + "_" + string(rune(e.value))
}

var _ fmt.Stringer = (*Entry)(nil)
