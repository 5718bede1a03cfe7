package tree

import "math"

// Entropy returns the Shannon entropy of data in base-256 units, i.e. the
// average number of bytes of information per symbol. Empty input has zero
// entropy.
func Entropy(data []byte) float64 {
	h := Count(data)
	return h.Entropy()
}

// Entropy returns the Shannon entropy of the histogram in base-256 units.
func (h *Histogram) Entropy() float64 {
	total := float64(h.Total())
	if total == 0 {
		return 0
	}

	e := 0.0
	for _, c := range h {
		if c == 0 {
			continue
		}
		p := float64(c) / total
		e -= p * math.Log(p) / math.Log(256)
	}

	return e
}
