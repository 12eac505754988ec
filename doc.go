// Package benjson converts bencode-encoded byte streams to JSON byte
// streams in a single forward pass.
//
// No intermediate parse tree is built: every decoder consumes exactly the
// bytes of its value and emits the JSON equivalent as soon as each byte is
// known. Malformed input fails at the earliest offending byte with a
// structured error carrying the byte offset and a window of recent bytes on
// both the input and output side.
//
// # Architecture Overview
//
// The library is organized into small packages with distinct responsibilities:
//
//	benjson/        Root package with the Transcode entry points
//	├── stream/     Position-tracked byte source and sink with capture windows
//	├── parser/     One streaming decoder per bencode value kind + dispatcher
//	├── errors/     Structured dual-context error taxonomy
//	└── cmd/benjson CLI front end with an interactive inspector
//
// # Quick Start
//
// Transcode a stream:
//
//	err := benjson.Transcode(os.Stdin, os.Stdout)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Or a buffer:
//
//	out, err := benjson.TranscodeBytes([]byte("d3:cow3:mooe"))
//	fmt.Println(string(out)) // {"cow":"moo"}
//
// # Grammar
//
// Bencode has four value kinds, each mapped to its JSON counterpart:
//
//	i<digits>e          integer     -> JSON number (digits verbatim)
//	<length>:<bytes>    byte string -> JSON string (strict UTF-8, escaped)
//	l<values>e          list        -> JSON array
//	d(<key><value>)*e   dictionary  -> JSON object
//
// Integers reject redundant leading zeros; byte strings must be valid
// UTF-8; container nesting is bounded by parser.MaxDepth. See the parser
// package for the exact automata and the errors package for the failure
// taxonomy.
//
// # Error Handling
//
// All failures are *errors.Error values categorized by Token (the grammar
// production being parsed) and Kind (the failure class), matchable with
// errors.Is:
//
//	err := benjson.Transcode(r, w)
//	if errors.Is(err, benjsonerrors.Match(benjsonerrors.TokenInteger, benjsonerrors.KindLeadingZeros)) {
//	    ...
//	}
//
// The library never logs or renders errors itself; rendering is the
// caller's decision.
package benjson
