// Package float16 manipulates IEEE 754 half-precision (binary16) bit patterns.
//
// A binary16 value splits into sign (1 bit), exponent (5 bits) and mantissa
// (10 bits):
//
//	S | EEEEE | MMMMMMMMMM
//
// Each storage method fixes some of those fields as structural bits and uses
// the rest as payload:
//
//   - zero: exponent=0, mantissa=0, payload in the sign (+0.0 or -0.0)
//   - inf: exponent=all-ones, mantissa=0, payload in the sign (+Inf or -Inf)
//   - nan: sign=0, exponent=all-ones, quiet bit forced to 1, payload in the
//     low 9 mantissa bits (always a quiet NaN)
//   - subnormal: sign=0, exponent=0, payload in all 10 mantissa bits
//     (mantissa 0 is positive zero, 1-1023 are true subnormals)
//
// All construction and extraction is pure integer bit manipulation; no
// floating-point arithmetic is involved, so the produced patterns are exact
// and platform independent. The values exist purely as a storage encoding and
// must never be used in floating-point math: subnormal payloads in particular
// do not survive arithmetic on hardware with flush-to-zero enabled.
package float16

import (
	"fmt"

	"github.com/nanbox/nanbox/errs"
	"github.com/nanbox/nanbox/format"
)

// Pattern is a raw binary16 bit pattern.
type Pattern uint16

const (
	SignMask     Pattern = 0x8000 // SignMask selects the sign bit.
	ExponentMask Pattern = 0x7C00 // ExponentMask selects the 5 exponent bits.
	MantissaMask Pattern = 0x03FF // MantissaMask selects the 10 mantissa bits.

	InfBits  Pattern = 0x7C00 // InfBits is positive infinity.
	QuietNaN Pattern = 0x7E00 // QuietNaN is the canonical quiet NaN (quiet bit set, payload 0).

	// PayloadMask selects the 9 mantissa bits below the quiet bit that carry
	// payload under the nan method.
	PayloadMask Pattern = 0x01FF
)

// Sign returns the sign bit (0 or 1).
func (p Pattern) Sign() uint16 {
	return uint16(p >> 15)
}

// Exponent returns the 5-bit exponent field (0-31).
func (p Pattern) Exponent() uint16 {
	return uint16(p&ExponentMask) >> 10
}

// Mantissa returns the 10-bit mantissa field (0-1023).
func (p Pattern) Mantissa() uint16 {
	return uint16(p & MantissaMask)
}

// Build constructs the pattern that carries field under the given method.
//
// Bits of field beyond the method's payload width are ignored. Build panics on
// a method without a payload width; validation of method values happens at the
// codec boundary.
func Build(m format.Method, field uint16) Pattern {
	switch m {
	case format.MethodZero:
		return Pattern(field&0x1) << 15
	case format.MethodInf:
		return Pattern(field&0x1)<<15 | InfBits
	case format.MethodNaN:
		return QuietNaN | (Pattern(field) & PayloadMask)
	case format.MethodSubnormal:
		return Pattern(field) & MantissaMask
	default:
		panic(fmt.Sprintf("float16: no builder for method %s", m))
	}
}

// Extract returns the payload field carried by p under the given method.
//
// It fails with errs.ErrDecode if p does not satisfy the method's structural
// template, e.g. a non-zero mantissa under the inf method or a signaling NaN
// under the nan method. Malformed patterns are never silently accepted since
// that would corrupt the reassembled bytes without warning.
func Extract(m format.Method, p Pattern) (uint16, error) {
	switch m {
	case format.MethodZero:
		if p&^SignMask != 0 {
			return 0, fmt.Errorf("%w: 0x%04x is not a signed zero", errs.ErrDecode, uint16(p))
		}

		return p.Sign(), nil

	case format.MethodInf:
		if p&^SignMask != InfBits {
			return 0, fmt.Errorf("%w: 0x%04x is not a signed infinity", errs.ErrDecode, uint16(p))
		}

		return p.Sign(), nil

	case format.MethodNaN:
		if p&^PayloadMask != QuietNaN {
			return 0, fmt.Errorf("%w: 0x%04x is not a quiet NaN with a clear sign", errs.ErrDecode, uint16(p))
		}

		return uint16(p & PayloadMask), nil

	case format.MethodSubnormal:
		if p&^MantissaMask != 0 {
			return 0, fmt.Errorf("%w: 0x%04x is not a positive subnormal or zero", errs.ErrDecode, uint16(p))
		}

		return p.Mantissa(), nil

	default:
		return 0, fmt.Errorf("%w: %s", errs.ErrInvalidMethod, m)
	}
}

// Matches reports whether p satisfies the structural template of the method.
// It is the predicate behind Extract's validation and the method detector.
func Matches(m format.Method, p Pattern) bool {
	switch m {
	case format.MethodZero:
		return p&^SignMask == 0
	case format.MethodInf:
		return p&^SignMask == InfBits
	case format.MethodNaN:
		return p&^PayloadMask == QuietNaN
	case format.MethodSubnormal:
		return p&^MantissaMask == 0
	default:
		return false
	}
}
