// Package pool keeps reusable byte buffers for the packer and frame encoder.
package pool

import (
	"sync"
)

// Buffer sizes for the default pools.
const (
	PackBufferDefaultSize   = 1024 * 4    // 4KiB
	PackBufferMaxThreshold  = 1024 * 256  // 256KiB
	FrameBufferDefaultSize  = 1024 * 16   // 16KiB
	FrameBufferMaxThreshold = 1024 * 1024 // 1MiB
)

// ByteBuffer is a growable byte slice that can be recycled through a ByteBufferPool.
type ByteBuffer struct {
	// B is the underlying byte slice.
	B []byte
}

// NewByteBuffer creates an empty ByteBuffer with the given capacity.
func NewByteBuffer(defaultSize int) *ByteBuffer {
	return &ByteBuffer{B: make([]byte, 0, defaultSize)}
}

// Bytes returns the underlying byte slice.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Len returns the number of bytes written.
func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

// Reset empties the buffer but keeps its memory.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

// WriteByte appends a single byte.
func (bb *ByteBuffer) WriteByte(c byte) error {
	bb.B = append(bb.B, c)
	return nil
}

// Write appends data to the buffer.
func (bb *ByteBuffer) Write(data []byte) (int, error) {
	bb.B = append(bb.B, data...)
	return len(data), nil
}

// Extend grows the length of the buffer by n bytes and returns the new tail.
//
// The tail is not zeroed when spare capacity is reused.
//
// Growth strategy:
//   - small buffers grow by PackBufferDefaultSize to avoid repeated reallocations
//   - buffers above 4x that size grow by 25% of their capacity
func (bb *ByteBuffer) Extend(n int) []byte {
	start := len(bb.B)
	if cap(bb.B)-start < n {
		growBy := PackBufferDefaultSize
		if cap(bb.B) > 4*PackBufferDefaultSize {
			growBy = cap(bb.B) / 4
		}
		if growBy < n {
			growBy = n
		}

		newBuf := make([]byte, start, start+growBy)
		copy(newBuf, bb.B)
		bb.B = newBuf
	}
	bb.B = bb.B[:start+n]

	return bb.B[start : start+n]
}

// Clone returns a copy of the buffer contents owned by the caller.
func (bb *ByteBuffer) Clone() []byte {
	out := make([]byte, len(bb.B))
	copy(out, bb.B)

	return out
}

// ByteBufferPool recycles ByteBuffers through a sync.Pool.
//
// Buffers whose capacity exceeds maxThreshold are dropped on Put so that one
// large message does not pin memory for the life of the process.
type ByteBufferPool struct {
	pool         sync.Pool
	maxThreshold int
}

// NewByteBufferPool creates a pool of buffers with the given initial capacity.
// A maxThreshold of 0 keeps every buffer.
func NewByteBufferPool(defaultSize int, maxThreshold int) *ByteBufferPool {
	return &ByteBufferPool{
		pool: sync.Pool{
			New: func() any {
				return NewByteBuffer(defaultSize)
			},
		},
		maxThreshold: maxThreshold,
	}
}

// Get retrieves an empty ByteBuffer from the pool.
func (p *ByteBufferPool) Get() *ByteBuffer {
	bb, _ := p.pool.Get().(*ByteBuffer)
	return bb
}

// Put returns a ByteBuffer to the pool. Nil buffers are ignored.
func (p *ByteBufferPool) Put(bb *ByteBuffer) {
	if bb == nil {
		return
	}
	if p.maxThreshold > 0 && cap(bb.B) > p.maxThreshold {
		return
	}

	bb.Reset()
	p.pool.Put(bb)
}

var (
	packPool  = NewByteBufferPool(PackBufferDefaultSize, PackBufferMaxThreshold)
	framePool = NewByteBufferPool(FrameBufferDefaultSize, FrameBufferMaxThreshold)
)

// GetPackBuffer retrieves a buffer for packed bit streams.
func GetPackBuffer() *ByteBuffer {
	return packPool.Get()
}

// PutPackBuffer returns a buffer obtained from GetPackBuffer.
func PutPackBuffer(bb *ByteBuffer) {
	packPool.Put(bb)
}

// GetFrameBuffer retrieves a buffer for serialized frames.
func GetFrameBuffer() *ByteBuffer {
	return framePool.Get()
}

// PutFrameBuffer returns a buffer obtained from GetFrameBuffer.
func PutFrameBuffer(bb *ByteBuffer) {
	framePool.Put(bb)
}
