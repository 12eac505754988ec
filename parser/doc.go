// Package parser implements the streaming bencode to JSON decoders.
//
// Each bencode value kind has its own decoder: Integer, ByteString, List
// and Dictionary. Every decoder is a byte-level automaton that consumes
// exactly the bytes of its value from a stream.Reader and emits the JSON
// equivalent to a stream.Writer as soon as each byte is known. Nothing is
// buffered beyond a single decoder's own small state, and no parse tree is
// ever built.
//
// Value is the dispatcher: it classifies the next value by its leading byte
// (one byte of lookahead, never consumed speculatively) and runs the
// matching decoder. Lists and dictionaries recurse through the dispatcher
// for their members, guarded by an explicit depth counter capped at
// MaxDepth.
//
// All decoders share one error contract: a failure aborts immediately and
// carries a snapshot of both streams (offending byte, position, trailing
// capture window) in an errors.Error. See the errors package.
//
// Decoder state is constructed fresh per call; decoders hold no global
// state and a decode call owns its Reader and Writer exclusively for the
// call's duration.
package parser
