// Package codec converts byte payloads to and from arrays of float16 bit
// patterns.
//
// Encoding slices the input into fixed-width bit groups (1, 9 or 10 bits
// depending on the method) and builds one float16 word per group; decoding
// validates every word against the method's structural template, extracts the
// payload fields and reassembles the original bytes. The encoded buffer is a
// flat array of little-endian uint16 words with no framing of its own.
//
// The nan and subnormal methods prepend a 4-byte little-endian length header
// to the payload before bit packing, since their group widths do not divide
// evenly into bytes. The zero and inf methods produce exactly eight words per
// input byte and need no header.
package codec

import (
	"fmt"
	"math"

	"github.com/nanbox/nanbox/endian"
	"github.com/nanbox/nanbox/errs"
	"github.com/nanbox/nanbox/float16"
	"github.com/nanbox/nanbox/format"
	ienc "github.com/nanbox/nanbox/internal/encoding"
	"github.com/nanbox/nanbox/internal/options"
)

const (
	// DefaultMaxInputSize is the default safety ceiling for Encode, in bytes.
	// The zero and inf methods expand input 16x, so even at this ceiling the
	// encoded buffer can reach ~1.6 GB.
	DefaultMaxInputSize = 100_000_000

	// lengthHeaderSize is the size of the little-endian length prefix carried
	// inside the bit stream by the nan and subnormal methods.
	lengthHeaderSize = 4
)

// Codec encodes byte payloads into float16 word arrays and back.
//
// A Codec is immutable after construction and safe for concurrent use; every
// Encode/Decode call is a self-contained transformation with no shared state.
type Codec struct {
	engine       endian.EndianEngine
	maxInputSize int
	strictDetect bool
}

// Option configures a Codec during construction.
type Option = options.Option[*Codec]

// WithMaxInputSize overrides the Encode safety ceiling.
//
// The size must be positive and must not exceed math.MaxUint32, since the nan
// and subnormal methods persist the payload length as a uint32 header.
func WithMaxInputSize(size int) Option {
	return options.New(func(c *Codec) error {
		if size <= 0 {
			return fmt.Errorf("max input size must be positive, got %d", size)
		}
		if size > math.MaxUint32 {
			return fmt.Errorf("max input size %d exceeds the %d-byte length header range", size, uint64(math.MaxUint32))
		}
		c.maxInputSize = size

		return nil
	})
}

// WithStrictDetection makes Detect fail when more than one method's template
// is satisfied by every word in the buffer, instead of resolving the overlap
// by template specificity. Note that an all-zero-word buffer legitimately
// satisfies both the zero and subnormal templates, so strict detection
// rejects inputs the default mode decodes fine.
func WithStrictDetection(strict bool) Option {
	return options.NoError(func(c *Codec) {
		c.strictDetect = strict
	})
}

// New creates a Codec with the given options applied over the defaults:
// little-endian wire words, DefaultMaxInputSize ceiling, lenient detection.
func New(opts ...Option) (*Codec, error) {
	c := &Codec{
		engine:       endian.GetLittleEndianEngine(),
		maxInputSize: DefaultMaxInputSize,
	}

	if err := options.Apply(c, opts...); err != nil {
		return nil, err
	}

	return c, nil
}

// Default returns a Codec with default configuration.
func Default() *Codec {
	c, _ := New()
	return c
}

// Encode converts data into an array of float16 words under the given method.
//
// The result is a flat little-endian uint16 array of length
// 2*ceil(bits/width) bytes, where bits counts the payload (plus the 4-byte
// length header for the nan and subnormal methods). A short final bit group
// is zero-padded in its low bits.
//
// Returns errs.ErrInputTooLarge if data exceeds the configured ceiling and
// errs.ErrInvalidMethod for methods that cannot encode (including MethodAuto).
func (c *Codec) Encode(data []byte, method format.Method) ([]byte, error) {
	if !method.Valid() {
		return nil, fmt.Errorf("%w: cannot encode with method %s", errs.ErrInvalidMethod, method)
	}

	if len(data) > c.maxInputSize {
		return nil, fmt.Errorf("%w: %d bytes (max %d)", errs.ErrInputTooLarge, len(data), c.maxInputSize)
	}

	payload := data
	if method.HasLengthHeader() {
		buf := make([]byte, 0, lengthHeaderSize+len(data))
		buf = c.engine.AppendUint32(buf, uint32(len(data))) //nolint:gosec // G115: bounded by maxInputSize <= MaxUint32
		payload = append(buf, data...)
	}

	width := method.PayloadBits()
	numFloats := (len(payload)*8 + width - 1) / width

	out := make([]byte, 0, numFloats*2)
	reader := ienc.NewBitReader(payload)

	for i := 0; i < numFloats; i++ {
		n := width
		if rem := reader.Remaining(); rem < n {
			n = rem
		}

		group, _ := reader.ReadBits(n)
		// Zero-pad a short final group into its high bits so the stream
		// stays MSB-first aligned.
		group <<= uint(width - n) //nolint:gosec // G115: n <= width by construction

		word := float16.Build(method, uint16(group)) //nolint:gosec // G115: group is masked to width <= 10 bits
		out = c.engine.AppendUint16(out, uint16(word))
	}

	return out, nil
}

// Decode converts an encoded float16 word array back into the original bytes.
//
// With format.MethodAuto the method is detected first; see Detect. Decoding
// is all-or-nothing: any word outside the method's template fails the whole
// call with errs.ErrDecode and no partial output.
func (c *Codec) Decode(data []byte, method format.Method) ([]byte, error) {
	if method == format.MethodAuto {
		detected, err := c.Detect(data)
		if err != nil {
			return nil, err
		}
		method = detected
	}

	if !method.Valid() {
		return nil, fmt.Errorf("%w: cannot decode with method %s", errs.ErrInvalidMethod, method)
	}

	return c.decode(data, method)
}

func (c *Codec) decode(data []byte, method format.Method) ([]byte, error) {
	if len(data)%2 != 0 {
		return nil, fmt.Errorf("%w: odd number of bytes (%d) in float16 array", errs.ErrDecode, len(data))
	}

	count := len(data) / 2
	width := method.PayloadBits()

	// Without a length header the word count must map back to whole bytes.
	if !method.HasLengthHeader() && count%8 != 0 {
		return nil, fmt.Errorf("%w: %d floats do not form whole bytes under the %s method", errs.ErrDecode, count, method)
	}

	writer := ienc.NewBitWriter()
	defer writer.Finish()

	for i := 0; i < count; i++ {
		word := c.engine.Uint16(data[i*2 : i*2+2])

		field, err := float16.Extract(method, float16.Pattern(word))
		if err != nil {
			return nil, fmt.Errorf("float %d: %w", i, err)
		}

		writer.WriteBits(uint64(field), width)
	}

	// raw references the writer's pooled buffer; copy before Finish runs.
	raw := writer.Bytes()

	if !method.HasLengthHeader() {
		out := make([]byte, count/8)
		copy(out, raw)

		return out, nil
	}

	if len(raw) < lengthHeaderSize {
		return nil, fmt.Errorf("%w: %w reading length header", errs.ErrDecode, errs.ErrUnderflow)
	}

	length := int(c.engine.Uint32(raw[:lengthHeaderSize]))
	if lengthHeaderSize+length > len(raw) {
		return nil, fmt.Errorf("%w: length header claims %d bytes, only %d available",
			errs.ErrDecode, length, len(raw)-lengthHeaderSize)
	}

	out := make([]byte, length)
	copy(out, raw[lengthHeaderSize:lengthHeaderSize+length])

	return out, nil
}
