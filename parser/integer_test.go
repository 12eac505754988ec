package parser_test

import (
	"bytes"
	stderrors "errors"
	"strings"
	"testing"

	"github.com/benjson/benjson/errors"
	"github.com/benjson/benjson/parser"
	"github.com/benjson/benjson/stream"
)

func TestInteger(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"i0e", "0"},
		{"i1e", "1"},
		{"i42e", "42"},
		{"i-1e", "-1"},
		{"i100e", "100"},
		{"i1000000000000000000000e", "1000000000000000000000"}, // digits pass through, no word-size limit
		{"i-0e", "-0"}, // the sign transition does not raise the zero flag
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := mustTranscode(t, tt.input); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIntegerLeadingZeros(t *testing.T) {
	tests := []string{"i00e", "i-00e", "i01e", "i-012e"}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			wantError(t, input, errors.TokenInteger, errors.KindLeadingZeros)
		})
	}
}

func TestIntegerLeadingZeroRaisedBeforeEmission(t *testing.T) {
	r := stream.NewReader(strings.NewReader("i01e"))
	var out bytes.Buffer
	w := stream.NewWriter(&out)

	if err := parser.Integer(r, w); err == nil {
		t.Fatal("expected leading-zeros error")
	}
	// The leading zero was emitted, the digit that violated the rule was not.
	if out.String() != "0" {
		t.Errorf("output: got %q, want \"0\"", out.String())
	}
}

func TestIntegerUnexpectedByte(t *testing.T) {
	tests := []struct {
		input string
		pos   uint64
	}{
		{"iae", 2},   // while expecting a digit or sign
		{"i-ae", 3},  // while expecting a digit after the sign
		{"i-1ae", 4}, // while expecting a digit or the terminator
		{"i--1e", 3}, // a second sign is not a digit
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			e := wantError(t, tt.input, errors.TokenInteger, errors.KindUnexpectedByte)
			if e.Read.Pos != tt.pos {
				t.Errorf("read position: got %d, want %d", e.Read.Pos, tt.pos)
			}
		})
	}
}

func TestIntegerUnexpectedEndOfInput(t *testing.T) {
	tests := []string{"i", "i-", "i42"}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			e := wantError(t, input, errors.TokenInteger, errors.KindUnexpectedEOF)
			if e.Read.Pos != uint64(len(input)) {
				t.Errorf("read position: got %d, want %d", e.Read.Pos, len(input))
			}
			if e.Read.Byte != nil {
				t.Errorf("EOF error must carry no offending byte, got %v", *e.Read.Byte)
			}
		})
	}
}

func TestIntegerNonEOFReadError(t *testing.T) {
	cause := stderrors.New("permission denied")
	r := stream.NewReader(faultyReader{err: cause})
	w := stream.NewWriter(&bytes.Buffer{})

	err := parser.Integer(r, w)
	if !stderrors.Is(err, errors.Match(errors.TokenInteger, errors.KindIO)) {
		t.Fatalf("got %v, want [integer] io", err)
	}
	if !stderrors.Is(err, cause) {
		t.Errorf("the underlying cause is not wrapped: %v", err)
	}
}

func TestIntegerErrorCarriesBothContexts(t *testing.T) {
	e := wantError(t, "i4ae", errors.TokenInteger, errors.KindUnexpectedByte)

	if e.Read.Byte == nil || *e.Read.Byte != 'a' {
		t.Fatalf("offending byte not reported: %+v", e.Read)
	}
	if string(e.Read.Latest) != "i4a" {
		t.Errorf("read window: got %q, want \"i4a\"", e.Read.Latest)
	}
	if e.Write.Pos != 1 {
		t.Errorf("write position: got %d, want 1", e.Write.Pos)
	}
	if string(e.Write.Latest) != "4" {
		t.Errorf("write window: got %q, want \"4\"", e.Write.Latest)
	}
}
