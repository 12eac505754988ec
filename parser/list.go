package parser

import (
	"github.com/benjson/benjson/errors"
	"github.com/benjson/benjson/stream"
)

// List transcodes one bencoded list (l<values>e) to a JSON array. The
// opening marker byte is consumed as the decoder's first action; each member
// is dispatched back through the value dispatcher.
func List(r *stream.Reader, w *stream.Writer) error {
	return list(r, w, 0)
}

func list(r *stream.Reader, w *stream.Writer, depth int) error {
	// Discard the 'l' marker.
	if _, err := readByte(r, w, errors.TokenList); err != nil {
		return err
	}
	if err := writeByte(r, w, errors.TokenList, '['); err != nil {
		return err
	}

	first := true
	for {
		b, err := peekByte(r, w, errors.TokenList)
		if err != nil {
			return err
		}
		if b == markEnd {
			if _, err := readByte(r, w, errors.TokenList); err != nil {
				return err
			}
			return writeByte(r, w, errors.TokenList, ']')
		}

		if !first {
			if err := writeByte(r, w, errors.TokenList, ','); err != nil {
				return err
			}
		}
		first = false

		if err := value(r, w, depth+1); err != nil {
			return err
		}
	}
}
