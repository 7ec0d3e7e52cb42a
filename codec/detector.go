package codec

import (
	"fmt"

	"github.com/nanbox/nanbox/errs"
	"github.com/nanbox/nanbox/float16"
	"github.com/nanbox/nanbox/format"
)

// detectionOrder lists the candidate methods most-constrained template first:
// zero and inf fix 15 of 16 bits, nan fixes 7, subnormal fixes 6. Checking
// the tighter templates first resolves the one genuine overlap - an all-zero
// word satisfies both the zero and subnormal templates - in favor of zero,
// whose side condition (word count divisible by 8) a subnormal buffer cannot
// meet without also being all-zero, which only happens for an empty payload
// whose word count is 4.
var detectionOrder = [...]format.Method{
	format.MethodZero,
	format.MethodInf,
	format.MethodNaN,
	format.MethodSubnormal,
}

// Detect classifies which method produced an encoded buffer.
//
// A method is a candidate when every word in the buffer satisfies its
// structural template and the buffer shape is plausible for it: zero and inf
// need a word count divisible by 8, nan and subnormal need at least enough
// words to carry the 32-bit length header. The most constrained candidate
// wins; with strict detection enabled, more than one surviving candidate
// fails instead.
//
// Returns errs.ErrAmbiguousEncoding when no candidate (or, in strict mode,
// more than one) survives.
func (c *Codec) Detect(data []byte) (format.Method, error) {
	if len(data)%2 != 0 {
		return 0, fmt.Errorf("%w: odd number of bytes (%d) in float16 array", errs.ErrDecode, len(data))
	}

	count := len(data) / 2

	satisfied := map[format.Method]bool{
		format.MethodZero:      true,
		format.MethodInf:       true,
		format.MethodNaN:       true,
		format.MethodSubnormal: true,
	}

	remaining := len(satisfied)
	for i := 0; i < count && remaining > 0; i++ {
		p := float16.Pattern(c.engine.Uint16(data[i*2 : i*2+2]))

		for _, m := range detectionOrder {
			if satisfied[m] && !float16.Matches(m, p) {
				satisfied[m] = false
				remaining--
			}
		}
	}

	var candidates []format.Method
	for _, m := range detectionOrder {
		if satisfied[m] && c.plausibleShape(m, count) {
			candidates = append(candidates, m)
		}
	}

	switch {
	case len(candidates) == 0:
		return 0, fmt.Errorf("%w: no method's template matches all %d floats", errs.ErrAmbiguousEncoding, count)
	case len(candidates) > 1 && c.strictDetect:
		return 0, fmt.Errorf("%w: %d methods match in strict mode", errs.ErrAmbiguousEncoding, len(candidates))
	default:
		return candidates[0], nil
	}
}

// plausibleShape checks the method's structural constraint on the word count.
func (c *Codec) plausibleShape(m format.Method, count int) bool {
	if m.HasLengthHeader() {
		// Enough words to carry the 32-bit length header.
		width := m.PayloadBits()
		return count >= (32+width-1)/width
	}

	return count%8 == 0
}
