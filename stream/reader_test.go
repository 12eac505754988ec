package stream_test

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/benjson/benjson/stream"
)

func TestReaderReadByte(t *testing.T) {
	r := stream.NewReader(strings.NewReader("abc"))

	for i, want := range []byte("abc") {
		b, err := r.ReadByte()
		if err != nil {
			t.Fatalf("read %d: %v", i, err)
		}
		if b != want {
			t.Errorf("read %d: got %q, want %q", i, b, want)
		}
		if got := r.Position(); got != uint64(i+1) {
			t.Errorf("position after read %d: got %d, want %d", i, got, i+1)
		}
	}

	if _, err := r.ReadByte(); err != io.EOF {
		t.Errorf("read past end: got %v, want io.EOF", err)
	}
	if got := r.Position(); got != 3 {
		t.Errorf("position frozen at end: got %d, want 3", got)
	}
}

func TestReaderPeek(t *testing.T) {
	r := stream.NewReader(strings.NewReader("xy"))

	b, err := r.Peek()
	if err != nil {
		t.Fatalf("peek: %v", err)
	}
	if b != 'x' {
		t.Errorf("peek: got %q, want 'x'", b)
	}
	if got := r.Position(); got != 0 {
		t.Errorf("peek must not advance position: got %d", got)
	}
	if got := r.Captured(); len(got) != 0 {
		t.Errorf("peek must not touch the capture window: got %q", got)
	}

	// Peek is idempotent.
	if b, _ := r.Peek(); b != 'x' {
		t.Errorf("second peek: got %q, want 'x'", b)
	}

	// The peeked byte is consumed by the next read.
	b, err = r.ReadByte()
	if err != nil {
		t.Fatalf("read after peek: %v", err)
	}
	if b != 'x' {
		t.Errorf("read after peek: got %q, want 'x'", b)
	}
	if got := r.Position(); got != 1 {
		t.Errorf("position after consuming peeked byte: got %d, want 1", got)
	}
	if got := r.Captured(); !bytes.Equal(got, []byte("x")) {
		t.Errorf("capture window after consuming peeked byte: got %q, want \"x\"", got)
	}

	if b, _ := r.ReadByte(); b != 'y' {
		t.Errorf("next read: got %q, want 'y'", b)
	}
	if _, err := r.Peek(); err != io.EOF {
		t.Errorf("peek at end: got %v, want io.EOF", err)
	}
}

func TestReaderCaptureWindow(t *testing.T) {
	input := strings.Repeat("0123456789", 8) // longer than the window
	r := stream.NewReader(strings.NewReader(input))

	for i := 0; i < len(input); i++ {
		if _, err := r.ReadByte(); err != nil {
			t.Fatalf("read %d: %v", i, err)
		}
	}

	got := r.Captured()
	if len(got) != stream.WindowSize {
		t.Fatalf("window length: got %d, want %d", len(got), stream.WindowSize)
	}
	want := input[len(input)-stream.WindowSize:]
	if string(got) != want {
		t.Errorf("window contents: got %q, want %q", got, want)
	}
}

func TestReaderShortInputWindow(t *testing.T) {
	r := stream.NewReader(strings.NewReader("ab"))
	r.ReadByte()
	r.ReadByte()

	if got := r.Captured(); string(got) != "ab" {
		t.Errorf("window: got %q, want \"ab\"", got)
	}
}

type faultyReader struct{ err error }

func (f faultyReader) Read([]byte) (int, error) { return 0, f.err }

func TestReaderPropagatesIOErrors(t *testing.T) {
	cause := errors.New("permission denied")
	r := stream.NewReader(faultyReader{err: cause})

	if _, err := r.ReadByte(); !errors.Is(err, cause) {
		t.Errorf("read: got %v, want the underlying error", err)
	}
	if got := r.Position(); got != 0 {
		t.Errorf("position after failed read: got %d, want 0", got)
	}
}

func TestReaderNormalizesUnexpectedEOF(t *testing.T) {
	r := stream.NewReader(faultyReader{err: io.ErrUnexpectedEOF})

	if _, err := r.ReadByte(); err != io.EOF {
		t.Errorf("read: got %v, want io.EOF", err)
	}
}
