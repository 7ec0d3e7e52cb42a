package format

import "fmt"

// Method identifies one of the float16 storage methods.
type Method uint8

const (
	MethodZero      Method = 0x1 // MethodZero stores one payload bit in the sign of a signed zero.
	MethodInf       Method = 0x2 // MethodInf stores one payload bit in the sign of an infinity.
	MethodNaN       Method = 0x3 // MethodNaN stores nine payload bits in a quiet NaN mantissa.
	MethodSubnormal Method = 0x4 // MethodSubnormal stores ten payload bits in a subnormal mantissa.

	// MethodAuto asks the decoder to detect the method from the encoded words.
	// It is only valid for decoding.
	MethodAuto Method = 0xF
)

func (m Method) String() string {
	switch m {
	case MethodZero:
		return "zero"
	case MethodInf:
		return "inf"
	case MethodNaN:
		return "nan"
	case MethodSubnormal:
		return "subnormal"
	case MethodAuto:
		return "auto"
	default:
		return "Unknown"
	}
}

// PayloadBits returns the number of payload bits one encoded float16 word
// carries under the method. It returns 0 for MethodAuto and unknown values.
func (m Method) PayloadBits() int {
	switch m {
	case MethodZero, MethodInf:
		return 1
	case MethodNaN:
		return 9
	case MethodSubnormal:
		return 10
	default:
		return 0
	}
}

// Valid reports whether the method is one of the four concrete storage methods.
func (m Method) Valid() bool {
	switch m {
	case MethodZero, MethodInf, MethodNaN, MethodSubnormal:
		return true
	default:
		return false
	}
}

// HasLengthHeader reports whether the method persists the original byte length
// as a 4-byte little-endian prefix inside the bit stream.
//
// The zero and inf methods map one input byte to exactly eight floats, so the
// original length is implied by the word count and no header is stored.
func (m Method) HasLengthHeader() bool {
	return m == MethodNaN || m == MethodSubnormal
}

// ParseMethod converts a method name to its Method value.
// Valid names are "zero", "inf", "nan", "subnormal" and "auto".
func ParseMethod(name string) (Method, error) {
	switch name {
	case "zero":
		return MethodZero, nil
	case "inf":
		return MethodInf, nil
	case "nan":
		return MethodNaN, nil
	case "subnormal":
		return MethodSubnormal, nil
	case "auto":
		return MethodAuto, nil
	default:
		return 0, fmt.Errorf("unknown method: %q", name)
	}
}
