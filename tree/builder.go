package tree

import (
	"slices"

	"github.com/arloliu/hufftree/errs"
)

// Build merges a frequency table into a single tree and returns its root.
//
// The entries must be in descending weight order, as produced by
// Histogram.Entries. While more than three entries remain, the last two are
// merged into an internal node (the heavier one on the left) and the node is
// reinserted after all entries of greater or equal weight. The final level is
// built differently: the remaining one or two entries after the first become
// the left and right children of a new root whose weight is copied from the
// first entry rather than summed. With exactly two entries only the right
// child is present; a single entry is returned as the root itself.
//
// The entries slice is not modified.
//
// Parameters:
//   - entries: Frequency table, placeholder first, descending weight
//
// Returns:
//   - *Entry: Root of the coding tree
//   - error: errs.ErrEmptyInput if entries is empty or holds no real leaf
func Build(entries []*Entry) (*Entry, error) {
	if len(entries) == 0 || !slices.ContainsFunc(entries, hasLeaf) {
		return nil, errs.ErrEmptyInput
	}

	work := slices.Clone(entries)
	for len(work) > 3 {
		n := len(work)
		left, right := work[n-2], work[n-1]
		work = work[:n-2]
		work = insertSorted(work, newInternal(byte(n), left.weight+right.weight, left, right))
	}

	survivor := work[0]
	switch len(work) {
	case 1:
		return survivor, nil
	case 2:
		return newInternal(0, survivor.weight, nil, work[1]), nil
	default:
		return newInternal(0, survivor.weight, work[1], work[2]), nil
	}
}

func hasLeaf(e *Entry) bool {
	if e == nil {
		return false
	}
	if e.IsLeaf() {
		return true
	}

	return hasLeaf(e.left) || hasLeaf(e.right)
}
