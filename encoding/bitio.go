package encoding

import (
	"encoding/binary"

	"github.com/chronos-tachyon/assert"

	"github.com/arloliu/hufftree/internal/pool"
)

// bitWriter appends bits least significant first into a pooled buffer.
//
// Bits accumulate in a 64-bit word; full words are flushed as eight
// little-endian bytes, so bit i of the stream lands in byte i/8 at bit i%8.
type bitWriter struct {
	bitBuf   uint64 // pending bits, stream order starts at bit 0
	bitCount int    // number of valid bits in bitBuf, always < 64 between calls
	total    int    // bits written since reset
	buf      *pool.ByteBuffer
}

func newBitWriter(buf *pool.ByteBuffer) *bitWriter {
	return &bitWriter{buf: buf}
}

// writeBits appends the numBits low-order bits of value (0-64 bits).
//
// A value that does not fit in the remaining room of the word is split: the
// low bits complete the current word, which is flushed, and the high bits
// start the next one.
func (w *bitWriter) writeBits(value uint64, numBits int) {
	assert.Assertf(numBits >= 0 && numBits <= 64, "writeBits: numBits %d out of range", numBits)
	if numBits == 0 {
		return
	}
	if numBits < 64 {
		value &= (uint64(1) << numBits) - 1
	}
	w.total += numBits

	available := 64 - w.bitCount
	if numBits < available {
		w.bitBuf |= value << w.bitCount
		w.bitCount += numBits

		return
	}

	// Fill the word, flush it and carry the rest.
	w.bitBuf |= value << w.bitCount
	w.flushWord()

	rest := numBits - available
	if rest > 0 {
		w.bitBuf = value >> available
	}
	w.bitCount = rest
}

func (w *bitWriter) flushWord() {
	binary.LittleEndian.PutUint64(w.buf.Extend(8), w.bitBuf)
	w.bitBuf = 0
	w.bitCount = 0
}

// flush writes the pending bits, zero-padding the last byte on the high side.
func (w *bitWriter) flush() {
	numBytes := (w.bitCount + 7) / 8
	tail := w.buf.Extend(numBytes)
	for i := range tail {
		tail[i] = byte(w.bitBuf >> (8 * i))
	}
	w.bitBuf = 0
	w.bitCount = 0
}

// bitReader reads a byte slice least significant bit first, up to a fixed
// number of meaningful bits.
type bitReader struct {
	data     []byte
	bytePos  int    // next byte to load into bitBuf
	bitBuf   uint64 // loaded bits, next bit at position 0
	bitCount int    // valid bits in bitBuf
	pos      int    // bits consumed so far
	limit    int    // total meaningful bits in data
}

func newBitReader(data []byte, limit int) *bitReader {
	return &bitReader{data: data, limit: limit}
}

// readBit returns the next bit, or false when the limit is reached.
func (br *bitReader) readBit() (uint64, bool) {
	if br.pos >= br.limit {
		return 0, false
	}
	if br.bitCount == 0 && !br.fillBuffer() {
		return 0, false
	}

	bit := br.bitBuf & 1
	br.bitBuf >>= 1
	br.bitCount--
	br.pos++

	return bit, true
}

// skip discards n bits.
func (br *bitReader) skip(n int) {
	for range n {
		if _, ok := br.readBit(); !ok {
			return
		}
	}
}

// fillBuffer loads up to eight bytes into the bit buffer.
func (br *bitReader) fillBuffer() bool {
	remaining := len(br.data) - br.bytePos
	if remaining <= 0 {
		return false
	}

	if remaining >= 8 {
		br.bitBuf = binary.LittleEndian.Uint64(br.data[br.bytePos:])
		br.bytePos += 8
		br.bitCount = 64

		return true
	}

	br.bitBuf = 0
	for i := range remaining {
		br.bitBuf |= uint64(br.data[br.bytePos+i]) << (8 * i)
	}
	br.bytePos += remaining
	br.bitCount = remaining * 8

	return true
}
