package frame

import (
	"fmt"
	"io"
	"iter"

	"github.com/arloliu/hufftree/errs"
	"github.com/arloliu/hufftree/internal/pool"
	"github.com/arloliu/hufftree/section"
)

// EncodeTo frames message and writes the frame to w.
//
// The frame is staged in a pooled buffer, so repeated calls do not allocate
// a fresh frame each time.
//
// Returns:
//   - int64: number of bytes written
//   - error: encoding errors or the first write error
func (e *Encoder) EncodeTo(w io.Writer, message []byte) (int64, error) {
	enc, err := e.prepare(message)
	if err != nil {
		return 0, err
	}

	buf := pool.GetFrameBuffer()
	defer pool.PutFrameBuffer(buf)

	enc.writeTo(buf.Extend(enc.header.FrameSize()))
	n, err := w.Write(buf.Bytes())

	return int64(n), err
}

// Read reads exactly one frame from r and returns the decoded message.
//
// io.EOF is returned only when r is exhausted before the first header byte;
// a frame cut short yields io.ErrUnexpectedEOF. Memory is committed as the
// body arrives, so a header announcing a huge payload allocates nothing
// beyond the bytes r delivers.
func Read(r io.Reader) ([]byte, error) {
	buf := pool.GetFrameBuffer()
	defer pool.PutFrameBuffer(buf)

	head := buf.Extend(section.HeaderSize)
	if _, err := io.ReadFull(r, head); err != nil {
		return nil, err
	}

	header, err := section.ParseFrameHeader(head)
	if err != nil {
		return nil, err
	}

	rest := int64(header.FrameSize() - section.HeaderSize)
	if _, err := io.CopyN(buf, r, rest); err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}

		return nil, fmt.Errorf("read frame body: %w", err)
	}

	// the decoded message never aliases buf, which is recycled on return
	return Decode(buf.Bytes())
}

// Messages iterates the concatenated frames in data and yields each decoded
// message. Iteration stops after the first error, which is yielded with a
// nil message.
func Messages(data []byte) iter.Seq2[[]byte, error] {
	return func(yield func([]byte, error) bool) {
		offset := 0
		for offset < len(data) {
			d, err := NewDecoder(data[offset:])
			if err != nil {
				yield(nil, fmt.Errorf("frame at offset %d: %w", offset, err))
				return
			}

			message, err := d.Decode()
			if err != nil {
				yield(nil, fmt.Errorf("frame at offset %d: %w", offset, err))
				return
			}

			if !yield(message, nil) {
				return
			}
			offset += d.Size()
		}
	}
}

// Split returns the first frame of data and the bytes that follow it,
// without decoding the payload.
func Split(data []byte) (frame []byte, rest []byte, err error) {
	header, err := section.ParseFrameHeader(data)
	if err != nil {
		return nil, data, err
	}

	size := header.FrameSize()
	if len(data) < size {
		return nil, data, fmt.Errorf("%w: frame needs %d bytes, got %d", errs.ErrInvalidPayloadLength, size, len(data))
	}

	return data[:size], data[size:], nil
}
