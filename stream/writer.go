package stream

import "io"

// Writer wraps an io.Writer with position tracking and a capture window.
// Bytes pass straight through to the underlying writer; any buffering or
// flushing is the caller's concern.
type Writer struct {
	w      io.Writer
	pos    uint64
	window window
	buf    [1]byte
}

// NewWriter creates a new Writer wrapping the given io.Writer.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Position returns the number of bytes emitted so far.
func (w *Writer) Position() uint64 {
	return w.pos
}

// Captured returns a snapshot of the most recently emitted bytes, oldest first.
func (w *Writer) Captured() []byte {
	return w.window.snapshot()
}

// WriteByte emits a single byte, advancing the position and the capture
// window. Failures of the underlying writer are returned unchanged.
func (w *Writer) WriteByte(b byte) error {
	w.buf[0] = b
	if _, err := w.w.Write(w.buf[:]); err != nil {
		return err
	}
	w.pos++
	w.window.push(b)
	return nil
}

// WriteBytes emits a byte slice. The position counter reflects exactly the
// bytes accepted by the underlying writer, so a partial write leaves it
// frozen at the failure point.
func (w *Writer) WriteBytes(p []byte) error {
	n, err := w.w.Write(p)
	for _, b := range p[:n] {
		w.pos++
		w.window.push(b)
	}
	return err
}
