// Package tree builds the prefix-code tree of a message and maps byte values
// to and from their bit paths.
//
// The pipeline is:
//
//	hist := tree.Count(message)   // per-byte occurrence counts
//	entries := hist.Entries()     // placeholder + leaves, descending weight
//	root, err := tree.Build(entries)
//	code, err := tree.Encode(root, 'a')
//	sym, err := tree.Decode(root, code)
//
// # Frequency table
//
// Entries are kept in descending weight order. A synthetic placeholder whose
// weight is the message length is always at index 0; it anchors the final
// merge so that construction order is fully deterministic. Entries of equal
// weight keep their arrival order, and the histogram is scanned from byte 0
// to byte 255.
//
// # Tree construction
//
// While more than three entries remain, the two lightest (the last two of the
// list) are merged into an internal node, heavier on the left, and the node is
// reinserted in weight order. The last one or two survivors after the
// placeholder become the children of a new root carrying the placeholder's
// weight.
//
// # Codes
//
// A Code stores the root-to-leaf route least significant bit first: bit i is
// the turn taken at depth i, 0 for left and 1 for right.
//
// Trees are immutable once built and may be shared by concurrent readers.
package tree
