package stream

import (
	"errors"
	"io"
)

// Reader wraps an io.Reader with position tracking, a capture window, and
// one byte of lookahead.
type Reader struct {
	r       io.Reader
	pending byte
	hasPeek bool
	pos     uint64
	window  window
	buf     [1]byte
}

// NewReader creates a new Reader wrapping the given io.Reader.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: r}
}

// Position returns the number of bytes consumed so far.
func (r *Reader) Position() uint64 {
	return r.pos
}

// Captured returns a snapshot of the most recently consumed bytes,
// oldest first. Peeked but unconsumed bytes are not included.
func (r *Reader) Captured() []byte {
	return r.window.snapshot()
}

// ReadByte reads a single byte, advancing the position and the capture
// window. End of stream is reported as io.EOF; any other failure of the
// underlying reader is returned unchanged.
func (r *Reader) ReadByte() (byte, error) {
	if r.hasPeek {
		r.hasPeek = false
		r.advance(r.pending)
		return r.pending, nil
	}
	b, err := r.fill()
	if err != nil {
		return 0, err
	}
	r.advance(b)
	return b, nil
}

// Peek returns the next byte without consuming it. The position counter and
// capture window advance only when the byte is later read.
func (r *Reader) Peek() (byte, error) {
	if r.hasPeek {
		return r.pending, nil
	}
	b, err := r.fill()
	if err != nil {
		return 0, err
	}
	r.pending = b
	r.hasPeek = true
	return b, nil
}

func (r *Reader) fill() (byte, error) {
	if _, err := io.ReadFull(r.r, r.buf[:]); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return 0, io.EOF
		}
		return 0, err
	}
	return r.buf[0], nil
}

func (r *Reader) advance(b byte) {
	r.pos++
	r.window.push(b)
}
