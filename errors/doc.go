// Package errors provides structured error types for the benjson transcoder.
//
// Errors are categorized by Token (which grammar production was being
// parsed) and Kind (error category). Every Error carries a snapshot of both
// the input and the output stream at the failure point: the offending byte
// (if any), the byte position, and a bounded window of the most recently
// processed bytes on each side.
//
// Use the convenience constructors:
//
//	err := errors.UnexpectedByte(errors.TokenInteger, read, write)
//	err := errors.LeadingZeros(read, write)
//
// All errors implement the standard error interface and support
// errors.Is/As. Matching compares Token and Kind only:
//
//	if errors.Is(err, errors.Match(errors.TokenInteger, errors.KindUnexpectedEOF)) {
//	    ...
//	}
package errors
