package errors

import (
	"fmt"
	"strings"
)

// Token indicates which grammar production was being parsed when the error occurred
type Token string

const (
	TokenInteger    Token = "integer"    // i<digits>e
	TokenString     Token = "string"     // <length>:<bytes>
	TokenList       Token = "list"       // l<values>e
	TokenDictionary Token = "dictionary" // d(<key><value>)*e
	TokenValue      Token = "value"      // dispatch point, kind not yet known
)

// Kind categorizes the error
type Kind string

const (
	KindUnexpectedEOF    Kind = "unexpected_end_of_input"
	KindUnexpectedByte   Kind = "unexpected_byte"
	KindLeadingZeros     Kind = "leading_zeros"
	KindMalformedLength  Kind = "malformed_length"
	KindTruncatedString  Kind = "truncated_string_body"
	KindInvalidUTF8      Kind = "invalid_utf8"
	KindKeyNotString     Kind = "key_not_string"
	KindMaxDepthExceeded Kind = "max_depth_exceeded"
	KindTrailingData     Kind = "trailing_data"
	KindIO               Kind = "io"
)

// ReadContext is a snapshot of the input stream at the failure point.
// Byte is nil when the stream ended before a byte could be read.
type ReadContext struct {
	Byte   *byte
	Pos    uint64
	Latest []byte
}

// WriteContext is a snapshot of the output stream at the failure point.
type WriteContext struct {
	Byte   *byte
	Pos    uint64
	Latest []byte
}

// Error is the structured error type used throughout the transcoder.
// Every error carries a snapshot of both streams: the read/write divergence
// is itself diagnostic.
type Error struct {
	Cause error
	Token Token
	Kind  Kind
	Read  ReadContext
	Write WriteContext
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Token))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Read.Byte != nil {
		fmt.Fprintf(&b, ": byte 0x%02x (%q)", *e.Read.Byte, string(rune(*e.Read.Byte)))
	}

	fmt.Fprintf(&b, " at input position %d", e.Read.Pos)
	if len(e.Read.Latest) > 0 {
		fmt.Fprintf(&b, " (input tail %q)", e.Read.Latest)
	}

	fmt.Fprintf(&b, ", output position %d", e.Write.Pos)
	if len(e.Write.Latest) > 0 {
		fmt.Fprintf(&b, " (output tail %q)", e.Write.Latest)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Token == t.Token && e.Kind == t.Kind
	}
	return false
}

// Match returns a template error for use with errors.Is. Only Token and
// Kind participate in matching; the stream contexts are ignored.
func Match(token Token, kind Kind) *Error {
	return &Error{Token: token, Kind: kind}
}

// Convenience constructors for the failure patterns shared by all decoders

// UnexpectedEOF reports that the input ended mid-value.
func UnexpectedEOF(token Token, read ReadContext, write WriteContext) *Error {
	return &Error{Token: token, Kind: KindUnexpectedEOF, Read: read, Write: write}
}

// UnexpectedByte reports a byte that is illegal for the current automaton state.
func UnexpectedByte(token Token, read ReadContext, write WriteContext) *Error {
	return &Error{Token: token, Kind: KindUnexpectedByte, Read: read, Write: write}
}

// LeadingZeros reports an integer with a redundant leading zero.
func LeadingZeros(read ReadContext, write WriteContext) *Error {
	return &Error{Token: TokenInteger, Kind: KindLeadingZeros, Read: read, Write: write}
}

// MalformedLength reports an invalid byte-string length prefix.
func MalformedLength(read ReadContext, write WriteContext) *Error {
	return &Error{Token: TokenString, Kind: KindMalformedLength, Read: read, Write: write}
}

// TruncatedString reports that the input ended inside a byte-string body.
func TruncatedString(read ReadContext, write WriteContext) *Error {
	return &Error{Token: TokenString, Kind: KindTruncatedString, Read: read, Write: write}
}

// InvalidUTF8 reports a byte-string body that is not valid UTF-8.
func InvalidUTF8(read ReadContext, write WriteContext) *Error {
	return &Error{Token: TokenString, Kind: KindInvalidUTF8, Read: read, Write: write}
}

// KeyNotString reports a dictionary key that does not start a byte string.
func KeyNotString(read ReadContext, write WriteContext) *Error {
	return &Error{Token: TokenDictionary, Kind: KindKeyNotString, Read: read, Write: write}
}

// MaxDepthExceeded reports container nesting past the recursion guard.
func MaxDepthExceeded(read ReadContext, write WriteContext) *Error {
	return &Error{Token: TokenValue, Kind: KindMaxDepthExceeded, Read: read, Write: write}
}

// TrailingData reports bytes remaining after a complete top-level value.
func TrailingData(read ReadContext, write WriteContext) *Error {
	return &Error{Token: TokenValue, Kind: KindTrailingData, Read: read, Write: write}
}

// IO wraps a non-grammar I/O failure. It is never retried internally.
func IO(token Token, cause error, read ReadContext, write WriteContext) *Error {
	return &Error{Token: token, Kind: KindIO, Cause: cause, Read: read, Write: write}
}
