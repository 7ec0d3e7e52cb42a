// Package errs defines the sentinel error values returned by nanbox.
//
// Call sites wrap these sentinels with fmt.Errorf("%w: ...") to attach
// context, so callers can classify failures with errors.Is.
package errs

import "errors"

var (
	// ErrInputTooLarge is returned when the input exceeds the codec's safety
	// ceiling. It is raised before any encoding work begins.
	ErrInputTooLarge = errors.New("input too large")

	// ErrDecode is returned when an encoded buffer cannot be decoded: a word
	// falls outside the method's structural template, the buffer is not a
	// whole number of float16 words, or the length header is corrupted.
	// Decoding is all-or-nothing; no partial output is produced.
	ErrDecode = errors.New("decode failed")

	// ErrUnderflow is returned when a bit-stream read runs past the available
	// bits. It indicates a malformed encoded buffer and is wrapped into
	// ErrDecode at the codec boundary.
	ErrUnderflow = errors.New("bit stream underflow")

	// ErrAmbiguousEncoding is returned by auto detection when no method's
	// template is satisfied by every word in the buffer, or, in strict
	// detection mode, when more than one is.
	ErrAmbiguousEncoding = errors.New("cannot detect encoding method")

	// ErrInvalidMethod is returned when an operation receives a method value
	// it does not support.
	ErrInvalidMethod = errors.New("invalid method")
)
