package parser

// Bencode marker bytes.
const (
	markInteger    = 'i'
	markList       = 'l'
	markDictionary = 'd'
	markEnd        = 'e'
	lengthSep      = ':'
)

// MaxDepth is the container nesting limit. Exceeding it fails the decode
// with KindMaxDepthExceeded instead of exhausting the host call stack.
const MaxDepth = 1024

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
