package benjson

import (
	"bytes"
	"io"

	"go.uber.org/zap"

	"github.com/benjson/benjson/parser"
	"github.com/benjson/benjson/stream"
)

// Transcode reads exactly one bencode value from r and writes its JSON
// equivalent to w. Bytes after the value fail with KindTrailingData; any
// grammar violation or I/O failure aborts immediately with a structured
// *errors.Error.
//
// The transcode owns r and w for the duration of the call. Output is
// written incrementally, so w may have received a partial document when an
// error is returned.
func Transcode(r io.Reader, w io.Writer) error {
	src := stream.NewReader(r)
	sink := stream.NewWriter(w)

	if err := parser.Document(src, sink); err != nil {
		return err
	}

	Logger().Debug("transcode complete",
		zap.Uint64("bytes_in", src.Position()),
		zap.Uint64("bytes_out", sink.Position()),
	)
	return nil
}

// TranscodeBytes converts a bencode-encoded buffer to a JSON buffer.
func TranscodeBytes(in []byte) ([]byte, error) {
	var out bytes.Buffer
	if err := Transcode(bytes.NewReader(in), &out); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}
