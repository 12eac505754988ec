package parser

import (
	"github.com/benjson/benjson/errors"
	"github.com/benjson/benjson/stream"
)

// integerState is the set of legal next byte classes while parsing an integer.
type integerState int

const (
	intStart         integerState = iota // opening 'i' marker
	intDigitOrSign                       // first byte of the number
	intDigitAfterSign                    // digit required after '-'
	intDigitOrEnd                        // further digits or the 'e' terminator
)

// Integer transcodes one bencoded integer (i<digits>e) to a JSON number.
// The opening marker byte is consumed as the decoder's first action.
//
// Bencode integers and JSON numbers share the same sign/digit grammar once
// leading zeros are forbidden, so accepted bytes are emitted verbatim. Only
// zero itself may start with '0'; any further digit after a leading zero
// fails with KindLeadingZeros before it is emitted. A lone "-0" is accepted
// as the JSON number -0: the sign transition does not raise the zero flag.
func Integer(r *stream.Reader, w *stream.Writer) error {
	state := intStart
	firstDigitIsZero := false

	for {
		b, err := readByte(r, w, errors.TokenInteger)
		if err != nil {
			return err
		}

		switch state {
		case intStart:
			// Discard the 'i' marker.
			state = intDigitOrSign

		case intDigitOrSign:
			switch {
			case b == '-':
				if err := writeByte(r, w, errors.TokenInteger, b); err != nil {
					return err
				}
				state = intDigitAfterSign
			case isDigit(b):
				if err := writeByte(r, w, errors.TokenInteger, b); err != nil {
					return err
				}
				if b == '0' {
					firstDigitIsZero = true
				}
				state = intDigitOrEnd
			default:
				rc, wc := snapshot(r, w, &b)
				return errors.UnexpectedByte(errors.TokenInteger, rc, wc)
			}

		case intDigitAfterSign:
			if !isDigit(b) {
				rc, wc := snapshot(r, w, &b)
				return errors.UnexpectedByte(errors.TokenInteger, rc, wc)
			}
			if err := writeByte(r, w, errors.TokenInteger, b); err != nil {
				return err
			}
			if b == '0' {
				firstDigitIsZero = true
			}
			state = intDigitOrEnd

		case intDigitOrEnd:
			switch {
			case isDigit(b):
				if firstDigitIsZero {
					rc, wc := snapshot(r, w, &b)
					return errors.LeadingZeros(rc, wc)
				}
				if err := writeByte(r, w, errors.TokenInteger, b); err != nil {
					return err
				}
			case b == markEnd:
				return nil
			default:
				rc, wc := snapshot(r, w, &b)
				return errors.UnexpectedByte(errors.TokenInteger, rc, wc)
			}
		}
	}
}
