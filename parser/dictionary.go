package parser

import (
	"github.com/benjson/benjson/errors"
	"github.com/benjson/benjson/stream"
)

// Dictionary transcodes one bencoded dictionary (d(<key><value>)*e) to a
// JSON object. The opening marker byte is consumed as the decoder's first
// action. Keys must be byte strings; values are dispatched back through the
// value dispatcher.
//
// Canonical bencode orders keys in strictly increasing byte-lexicographic
// order. This decoder passes keys through unchecked: validating the order
// would mean retaining each full previous key, and keys are unbounded.
func Dictionary(r *stream.Reader, w *stream.Writer) error {
	return dictionary(r, w, 0)
}

func dictionary(r *stream.Reader, w *stream.Writer, depth int) error {
	// Discard the 'd' marker.
	if _, err := readByte(r, w, errors.TokenDictionary); err != nil {
		return err
	}
	if err := writeByte(r, w, errors.TokenDictionary, '{'); err != nil {
		return err
	}

	first := true
	for {
		b, err := peekByte(r, w, errors.TokenDictionary)
		if err != nil {
			return err
		}
		if b == markEnd {
			if _, err := readByte(r, w, errors.TokenDictionary); err != nil {
				return err
			}
			return writeByte(r, w, errors.TokenDictionary, '}')
		}

		if !isDigit(b) {
			// Consume the byte so the error reports it at its real position.
			b, err := readByte(r, w, errors.TokenDictionary)
			if err != nil {
				return err
			}
			rc, wc := snapshot(r, w, &b)
			return errors.KeyNotString(rc, wc)
		}

		if !first {
			if err := writeByte(r, w, errors.TokenDictionary, ','); err != nil {
				return err
			}
		}
		first = false

		if err := ByteString(r, w); err != nil {
			return err
		}
		if err := writeByte(r, w, errors.TokenDictionary, ':'); err != nil {
			return err
		}
		if err := value(r, w, depth+1); err != nil {
			return err
		}
	}
}
