package parser

import (
	"io"
	"math"
	"unicode/utf8"

	"github.com/benjson/benjson/errors"
	"github.com/benjson/benjson/stream"
)

// ByteString transcodes one bencoded byte string (<length>:<bytes>) to a
// JSON string.
//
// The body must be valid UTF-8; an invalid byte fails the decode with
// KindInvalidUTF8 at that byte. Valid bytes pass through verbatim except
// for the JSON string escapes: quote, backslash, and control bytes below
// 0x20. Multi-byte sequences are validated through a pending buffer of at
// most utf8.UTFMax bytes; the body is never buffered as a whole.
func ByteString(r *stream.Reader, w *stream.Writer) error {
	length, err := stringLength(r, w)
	if err != nil {
		return err
	}
	return stringBody(r, w, length)
}

// stringLength consumes the decimal length prefix and its ':' separator.
func stringLength(r *stream.Reader, w *stream.Writer) (uint64, error) {
	var length uint64
	digits := 0

	for {
		b, err := readByte(r, w, errors.TokenString)
		if err != nil {
			return 0, err
		}

		switch {
		case isDigit(b):
			if length > (math.MaxUint64-9)/10 {
				rc, wc := snapshot(r, w, &b)
				return 0, errors.MalformedLength(rc, wc)
			}
			length = length*10 + uint64(b-'0')
			digits++
		case b == lengthSep:
			if digits == 0 {
				rc, wc := snapshot(r, w, &b)
				return 0, errors.MalformedLength(rc, wc)
			}
			return length, nil
		default:
			rc, wc := snapshot(r, w, &b)
			return 0, errors.MalformedLength(rc, wc)
		}
	}
}

// stringBody copies exactly length raw bytes, emitting them as a JSON string.
func stringBody(r *stream.Reader, w *stream.Writer, length uint64) error {
	if err := writeByte(r, w, errors.TokenString, '"'); err != nil {
		return err
	}

	var pending [utf8.UTFMax]byte
	pendLen := 0
	need := 0 // continuation bytes still expected

	for i := uint64(0); i < length; i++ {
		b, err := r.ReadByte()
		if err != nil {
			rc, wc := snapshot(r, w, nil)
			if err == io.EOF {
				return errors.TruncatedString(rc, wc)
			}
			return errors.IO(errors.TokenString, err, rc, wc)
		}

		if need > 0 {
			if b&0xC0 != 0x80 {
				rc, wc := snapshot(r, w, &b)
				return errors.InvalidUTF8(rc, wc)
			}
			pending[pendLen] = b
			pendLen++
			need--
			if need == 0 {
				// Catches overlong encodings, surrogates, and
				// code points past U+10FFFF.
				if !utf8.Valid(pending[:pendLen]) {
					rc, wc := snapshot(r, w, &b)
					return errors.InvalidUTF8(rc, wc)
				}
				if err := writeBytes(r, w, errors.TokenString, pending[:pendLen]); err != nil {
					return err
				}
				pendLen = 0
			}
			continue
		}

		switch {
		case b < 0x80:
			if err := writeEscaped(r, w, b); err != nil {
				return err
			}
		case b >= 0xC2 && b <= 0xDF:
			pending[0], pendLen, need = b, 1, 1
		case b >= 0xE0 && b <= 0xEF:
			pending[0], pendLen, need = b, 1, 2
		case b >= 0xF0 && b <= 0xF4:
			pending[0], pendLen, need = b, 1, 3
		default:
			rc, wc := snapshot(r, w, &b)
			return errors.InvalidUTF8(rc, wc)
		}
	}

	if need > 0 {
		// The declared length cut a multi-byte sequence short.
		rc, wc := snapshot(r, w, nil)
		return errors.InvalidUTF8(rc, wc)
	}

	return writeByte(r, w, errors.TokenString, '"')
}

const hexDigits = "0123456789abcdef"

// writeEscaped emits one ASCII body byte with JSON string escaping.
func writeEscaped(r *stream.Reader, w *stream.Writer, b byte) error {
	switch b {
	case '"':
		return writeBytes(r, w, errors.TokenString, []byte(`\"`))
	case '\\':
		return writeBytes(r, w, errors.TokenString, []byte(`\\`))
	case '\b':
		return writeBytes(r, w, errors.TokenString, []byte(`\b`))
	case '\f':
		return writeBytes(r, w, errors.TokenString, []byte(`\f`))
	case '\n':
		return writeBytes(r, w, errors.TokenString, []byte(`\n`))
	case '\r':
		return writeBytes(r, w, errors.TokenString, []byte(`\r`))
	case '\t':
		return writeBytes(r, w, errors.TokenString, []byte(`\t`))
	default:
		if b < 0x20 {
			esc := [6]byte{'\\', 'u', '0', '0', hexDigits[b>>4], hexDigits[b&0x0f]}
			return writeBytes(r, w, errors.TokenString, esc[:])
		}
		return writeByte(r, w, errors.TokenString, b)
	}
}
