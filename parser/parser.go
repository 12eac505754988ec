package parser

import (
	"io"

	"github.com/benjson/benjson/errors"
	"github.com/benjson/benjson/stream"
)

// Value transcodes one bencode value of any kind. It classifies the value
// by its leading byte and runs the matching decoder; lists and dictionaries
// recurse back through it for their members.
func Value(r *stream.Reader, w *stream.Writer) error {
	return value(r, w, 0)
}

// Document transcodes one bencode value and then requires the input to be
// exhausted; a byte after the value fails with KindTrailingData. The
// per-kind decoders and Value leave any remaining input untouched.
func Document(r *stream.Reader, w *stream.Writer) error {
	if err := Value(r, w); err != nil {
		return err
	}

	b, err := r.ReadByte()
	if err == nil {
		rc, wc := snapshot(r, w, &b)
		return errors.TrailingData(rc, wc)
	}
	if err != io.EOF {
		rc, wc := snapshot(r, w, nil)
		return errors.IO(errors.TokenValue, err, rc, wc)
	}
	return nil
}

func value(r *stream.Reader, w *stream.Writer, depth int) error {
	if depth >= MaxDepth {
		rc, wc := snapshot(r, w, nil)
		return errors.MaxDepthExceeded(rc, wc)
	}

	b, err := peekByte(r, w, errors.TokenValue)
	if err != nil {
		return err
	}

	switch {
	case b == markInteger:
		return Integer(r, w)
	case isDigit(b):
		return ByteString(r, w)
	case b == markList:
		return list(r, w, depth)
	case b == markDictionary:
		return dictionary(r, w, depth)
	default:
		// Consume the byte so the error reports it at its real position.
		b, err := readByte(r, w, errors.TokenValue)
		if err != nil {
			return err
		}
		rc, wc := snapshot(r, w, &b)
		return errors.UnexpectedByte(errors.TokenValue, rc, wc)
	}
}

// snapshot captures both stream states for an error value. b is the
// offending input byte, nil when the input ended or the failure is not
// byte-specific. It is the single shared helper behind every failure site.
func snapshot(r *stream.Reader, w *stream.Writer, b *byte) (errors.ReadContext, errors.WriteContext) {
	rc := errors.ReadContext{Byte: b, Pos: r.Position(), Latest: r.Captured()}
	wc := errors.WriteContext{Byte: b, Pos: w.Position(), Latest: w.Captured()}
	return rc, wc
}

// readByte consumes the next input byte, mapping end-of-stream to the
// token's unexpected-EOF error and any other reader failure to KindIO.
func readByte(r *stream.Reader, w *stream.Writer, token errors.Token) (byte, error) {
	b, err := r.ReadByte()
	if err != nil {
		rc, wc := snapshot(r, w, nil)
		if err == io.EOF {
			return 0, errors.UnexpectedEOF(token, rc, wc)
		}
		return 0, errors.IO(token, err, rc, wc)
	}
	return b, nil
}

// peekByte is readByte without consuming the byte.
func peekByte(r *stream.Reader, w *stream.Writer, token errors.Token) (byte, error) {
	b, err := r.Peek()
	if err != nil {
		rc, wc := snapshot(r, w, nil)
		if err == io.EOF {
			return 0, errors.UnexpectedEOF(token, rc, wc)
		}
		return 0, errors.IO(token, err, rc, wc)
	}
	return b, nil
}

// writeByte emits one output byte, mapping writer failures to KindIO.
func writeByte(r *stream.Reader, w *stream.Writer, token errors.Token, b byte) error {
	if err := w.WriteByte(b); err != nil {
		rc, wc := snapshot(r, w, nil)
		return errors.IO(token, err, rc, wc)
	}
	return nil
}

// writeBytes emits an output byte sequence, mapping writer failures to KindIO.
func writeBytes(r *stream.Reader, w *stream.Writer, token errors.Token, p []byte) error {
	if err := w.WriteBytes(p); err != nil {
		rc, wc := snapshot(r, w, nil)
		return errors.IO(token, err, rc, wc)
	}
	return nil
}
