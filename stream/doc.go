// Package stream provides the byte source and byte sink the transcoder
// parses from and emits to.
//
// Reader and Writer wrap plain io.Reader/io.Writer values with the two
// pieces of bookkeeping every decoder relies on: a position counter that
// advances exactly once per byte, and a bounded capture window holding the
// most recently processed bytes. Both are reported verbatim inside error
// values; the window is diagnostic-only and never affects parsing.
//
// Reader additionally offers a single byte of lookahead via Peek, which the
// value dispatcher uses to classify the next value without consuming it.
package stream
