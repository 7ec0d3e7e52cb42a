// Package nanbox losslessly stores arbitrary bytes inside arrays of IEEE 754
// half-precision (binary16) floating-point values, using the corners of the
// format that ordinary numbers never occupy.
//
// Four storage methods are available, each defined by which bits of the
// float16 pattern carry payload:
//
//   - zero: 1 bit per float, hidden in the sign of a signed zero
//   - inf: 1 bit per float, hidden in the sign of an infinity
//   - nan: 9 bits per float, hidden in a quiet NaN's mantissa payload
//   - subnormal: 10 bits per float, hidden in a subnormal mantissa
//
// # Basic Usage
//
//	import "github.com/nanbox/nanbox"
//
//	encoded, err := nanbox.Encode(data, format.MethodNaN)
//	if err != nil {
//	    return err
//	}
//
//	// The method can be recovered from the encoded words themselves.
//	decoded, err := nanbox.Decode(encoded, format.MethodAuto)
//
// Per-method pairs (ToNaN/FromNaN and friends) are available as shorthands.
//
// # Wire Format
//
// An encoded buffer is a flat array of 16-bit words in little-endian byte
// order; its length is always twice the float count. The nan and subnormal
// methods embed a 4-byte length header in the bit stream because their
// payload widths do not divide evenly into bytes; zero and inf produce
// exactly eight floats per input byte and carry no header.
//
// # Caveats
//
// The produced values are a storage encoding only. Running them through
// floating-point arithmetic destroys them: signed zeros collapse, NaN
// payloads are not preserved by operations, and subnormals flush to zero on
// much hardware. Treat the encoded buffer as opaque bytes.
//
// The zero and inf methods expand data 16x. With the default 100 MB input
// ceiling a single encoded buffer can reach ~1.6 GB; size limits are the
// caller's defense, via codec.WithMaxInputSize.
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the codec
// package, which holds the actual conversion machinery. For custom limits or
// strict method detection, construct a codec.Codec directly.
package nanbox

import (
	"github.com/nanbox/nanbox/codec"
	"github.com/nanbox/nanbox/format"
)

var defaultCodec = codec.Default()

// Encode converts data into an encoded float16 buffer using the given method.
//
// It fails with errs.ErrInputTooLarge when data exceeds the default 100 MB
// ceiling, and with errs.ErrInvalidMethod when method is not one of the four
// storage methods.
func Encode(data []byte, method format.Method) ([]byte, error) {
	return defaultCodec.Encode(data, method)
}

// Decode converts an encoded float16 buffer back into the original bytes.
//
// Pass format.MethodAuto to detect the method from the buffer contents.
// Decoding fails with errs.ErrDecode when any word falls outside the method's
// structural template, and with errs.ErrAmbiguousEncoding when auto detection
// cannot classify the buffer.
func Decode(data []byte, method format.Method) ([]byte, error) {
	return defaultCodec.Decode(data, method)
}

// ToZero stores each bit of data in the sign of a signed zero (+0.0 or -0.0).
func ToZero(data []byte) ([]byte, error) {
	return defaultCodec.Encode(data, format.MethodZero)
}

// FromZero recovers bytes hidden in the signs of zeros.
func FromZero(data []byte) ([]byte, error) {
	return defaultCodec.Decode(data, format.MethodZero)
}

// ToInf stores each bit of data in the sign of an infinity (+Inf or -Inf).
func ToInf(data []byte) ([]byte, error) {
	return defaultCodec.Encode(data, format.MethodInf)
}

// FromInf recovers bytes hidden in the signs of infinities.
func FromInf(data []byte) ([]byte, error) {
	return defaultCodec.Decode(data, format.MethodInf)
}

// ToNaN stores data nine bits at a time in quiet NaN mantissa payloads.
func ToNaN(data []byte) ([]byte, error) {
	return defaultCodec.Encode(data, format.MethodNaN)
}

// FromNaN recovers bytes hidden in quiet NaN payloads.
func FromNaN(data []byte) ([]byte, error) {
	return defaultCodec.Decode(data, format.MethodNaN)
}

// ToSubnormal stores data ten bits at a time in subnormal mantissas.
// Mantissa value 0 yields a positive zero and values 1-1023 yield true
// subnormals; both are valid outputs of this method.
func ToSubnormal(data []byte) ([]byte, error) {
	return defaultCodec.Encode(data, format.MethodSubnormal)
}

// FromSubnormal recovers bytes hidden in subnormal mantissas.
func FromSubnormal(data []byte) ([]byte, error) {
	return defaultCodec.Decode(data, format.MethodSubnormal)
}
