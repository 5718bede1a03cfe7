package section

import (
	"fmt"

	"github.com/arloliu/hufftree/endian"
	"github.com/arloliu/hufftree/errs"
)

// FrequencyEntry records how many times one byte value occurs in the message.
//
// Entries are written in ascending symbol order, one per distinct byte.
// A decoder rebuilds the exact coding tree from them.
type FrequencyEntry struct {
	Symbol byte
	Count  uint32
}

// WriteToSlice writes the entry into data at offset and returns the next offset.
func (e FrequencyEntry) WriteToSlice(data []byte, offset int, engine endian.EndianEngine) int {
	data[offset] = e.Symbol
	engine.PutUint32(data[offset+1:offset+FrequencyEntrySize], e.Count)

	return offset + FrequencyEntrySize
}

// ParseFrequencyEntry parses one entry from the first FrequencyEntrySize bytes of data.
func ParseFrequencyEntry(data []byte, engine endian.EndianEngine) (FrequencyEntry, error) {
	if len(data) < FrequencyEntrySize {
		return FrequencyEntry{}, fmt.Errorf("%w: got %d bytes, want %d", errs.ErrInvalidFrequencyEntry, len(data), FrequencyEntrySize)
	}

	entry := FrequencyEntry{
		Symbol: data[0],
		Count:  engine.Uint32(data[1:FrequencyEntrySize]),
	}
	if entry.Count == 0 {
		return FrequencyEntry{}, fmt.Errorf("%w: symbol %d has zero count", errs.ErrInvalidFrequencyEntry, entry.Symbol)
	}

	return entry, nil
}

// ParseFrequencies parses the whole frequency section described by header.
//
// Parameters:
//   - data: frame bytes starting at FrequencyOffset
//   - header: parsed frame header
//
// Returns:
//   - []FrequencyEntry: entries in wire order
//   - error: ErrInvalidFrequencyEntry on truncation, zero counts, unsorted or
//     duplicate symbols, or counts that do not sum to MessageLength
func ParseFrequencies(data []byte, header *FrameHeader) ([]FrequencyEntry, error) {
	size := header.FrequencySize()
	if len(data) < size {
		return nil, fmt.Errorf("%w: section needs %d bytes, got %d", errs.ErrInvalidFrequencyEntry, size, len(data))
	}

	engine := header.Flag.GetEndianEngine()
	entries := make([]FrequencyEntry, 0, header.LeafCount)

	var total uint64
	for off := 0; off < size; off += FrequencyEntrySize {
		entry, err := ParseFrequencyEntry(data[off:], engine)
		if err != nil {
			return nil, err
		}

		if n := len(entries); n > 0 && entries[n-1].Symbol >= entry.Symbol {
			return nil, fmt.Errorf("%w: symbol %d out of order", errs.ErrInvalidFrequencyEntry, entry.Symbol)
		}

		total += uint64(entry.Count)
		entries = append(entries, entry)
	}

	if total != uint64(header.MessageLength) {
		return nil, fmt.Errorf("%w: counts sum to %d, header says %d", errs.ErrInvalidFrequencyEntry, total, header.MessageLength)
	}

	return entries, nil
}
