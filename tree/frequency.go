package tree

// Histogram holds the occurrence count of every byte value in a message.
type Histogram [256]uint64

// Count scans data and returns its byte histogram.
func Count(data []byte) Histogram {
	var h Histogram
	for _, b := range data {
		h[b]++
	}

	return h
}

// Total returns the number of symbols counted.
func (h *Histogram) Total() uint64 {
	var total uint64
	for _, c := range h {
		total += c
	}

	return total
}

// Distinct returns the number of byte values with a non-zero count.
func (h *Histogram) Distinct() int {
	n := 0
	for _, c := range h {
		if c > 0 {
			n++
		}
	}

	return n
}

// Entries returns the frequency table for the histogram: one leaf per byte
// value present plus the placeholder, sorted by descending weight.
//
// The placeholder carries the total count and is always at index 0. Leaves
// with equal weight keep ascending byte order, since the histogram is scanned
// from 0 to 255 and insertion is stable.
//
// An empty histogram yields a table holding only the placeholder.
//
// Returns:
//   - []*Entry: placeholder followed by leaves in descending weight order
func (h *Histogram) Entries() []*Entry {
	entries := make([]*Entry, 0, h.Distinct()+1)
	var total uint64
	for i, c := range h {
		if c == 0 {
			continue
		}
		total += c
		entries = insertSorted(entries, NewLeaf(byte(i), c))
	}

	entries = append(entries, nil)
	copy(entries[1:], entries)
	entries[0] = NewPlaceholder(total)

	return entries
}

// FrequencyTable is shorthand for Count(data).Entries().
func FrequencyTable(data []byte) []*Entry {
	h := Count(data)
	return h.Entries()
}

// insertSorted inserts e into a descending-weight list after every entry whose
// weight is greater than or equal to e's.
func insertSorted(entries []*Entry, e *Entry) []*Entry {
	i := 0
	for i < len(entries) && entries[i].weight >= e.weight {
		i++
	}

	entries = append(entries, nil)
	copy(entries[i+1:], entries[i:])
	entries[i] = e

	return entries
}
