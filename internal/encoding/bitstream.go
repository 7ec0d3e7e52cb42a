// Package encoding implements the MSB-first bit stream used to slice byte
// payloads into fixed-width bit groups and reassemble them.
//
// The float16 storage methods carry 1, 9 or 10 payload bits per encoded word,
// so the codec needs bit-level access at group widths that do not align with
// byte boundaries. BitWriter and BitReader accumulate bits in a 64-bit buffer
// and spill to (or fill from) whole bytes, most significant bit first.
package encoding

import (
	"encoding/binary"

	"github.com/nanbox/nanbox/internal/pool"
)

// BitWriter appends bit groups of arbitrary width (1-64) to a growing byte
// buffer, MSB-first.
//
// Bits are accumulated in a 64-bit buffer and flushed to the pooled byte
// buffer when it fills up. Bytes() flushes any pending partial byte,
// zero-padding its low bits, so no further writes may follow a Bytes() call
// unless the bit count is a multiple of 8.
type BitWriter struct {
	bitBuf   uint64 // Bit buffer for accumulating bits before writing to byte buffer
	bitCount int    // Number of valid bits in bitBuf
	bitLen   int    // Total number of bits written
	buf      *pool.ByteBuffer
}

// NewBitWriter creates a new bit writer backed by a pooled byte buffer.
//
// The writer is single-use: call Finish() to return the buffer to the pool,
// after which the writer must not be reused.
func NewBitWriter() *BitWriter {
	return &BitWriter{
		buf: pool.GetStreamBuffer(),
	}
}

// WriteBits appends the numBits least significant bits of value, most
// significant first.
//
// Parameters:
//   - value: the bits to write (only the least significant numBits are used)
//   - numBits: number of bits to write (1-64)
func (w *BitWriter) WriteBits(value uint64, numBits int) {
	if w.buf == nil {
		panic("bit writer already finished - cannot write after Finish()")
	}

	if numBits == 0 {
		return
	}

	// Mask value to only include the specified number of bits
	if numBits < 64 {
		value &= (1 << numBits) - 1
	}

	w.bitLen += numBits

	// Calculate how many bits fit in current buffer
	available := 64 - w.bitCount

	if numBits <= available {
		// All bits fit in current buffer
		w.bitBuf = (w.bitBuf << numBits) | value
		w.bitCount += numBits

		if w.bitCount == 64 {
			w.flushBits()
		}
	} else {
		// Split across buffer boundary
		// Write high bits that fit in current buffer
		highBits := numBits - available
		w.bitBuf = (w.bitBuf << available) | (value >> highBits)
		w.bitCount = 64
		w.flushBits()

		// Write remaining low bits to new buffer
		w.bitBuf = value & ((1 << highBits) - 1)
		w.bitCount = highBits
	}
}

// BitLen returns the total number of bits written so far.
func (w *BitWriter) BitLen() int {
	return w.bitLen
}

// Bytes returns the accumulated bytes, flushing any pending bits first.
// A final partial byte is zero-padded in its low bits.
//
// The returned slice references the internal pooled buffer and is only valid
// until Finish() is called. Callers that need to retain the data must copy it.
func (w *BitWriter) Bytes() []byte {
	if w.buf == nil {
		panic("bit writer already finished - cannot access bytes after Finish()")
	}

	if w.bitCount > 0 {
		w.flushBits()
	}

	return w.buf.Bytes()
}

// Finish returns the byte buffer to the pool and makes the writer unusable.
// Retrieve the data with Bytes() before calling Finish().
func (w *BitWriter) Finish() {
	if w.buf == nil {
		return // Already finished
	}

	pool.PutStreamBuffer(w.buf)
	w.buf = nil
}

// flushBits writes the current bit buffer to the byte buffer.
//
// The bit buffer is left-aligned so that the most significant bits come out
// first, matching the MSB-first stream order.
func (w *BitWriter) flushBits() {
	if w.bitCount == 0 {
		return
	}

	numBytes := (w.bitCount + 7) / 8

	// Shift bits to align to byte boundary (left-align)
	alignedBits := w.bitBuf << (64 - w.bitCount)

	startLen := w.buf.Len()
	w.buf.ExtendOrGrow(numBytes)

	bs := w.buf.Slice(startLen, startLen+numBytes)

	// Fast path: use binary.BigEndian for 8-byte writes
	if numBytes == 8 {
		binary.BigEndian.PutUint64(bs, alignedBits)
	} else {
		// Slow path: write partial bytes
		for i := 0; i < numBytes; i++ {
			shift := 56 - (i * 8)
			bs[i] = byte(alignedBits >> shift)
		}
	}

	w.bitBuf = 0
	w.bitCount = 0
}

// BitReader provides bit-level reading from a byte slice, MSB-first.
//
// It maintains a 64-bit buffer refilled from the underlying data and consumes
// bits from the most significant end.
type BitReader struct {
	data     []byte // Source data
	bytePos  int    // Current byte position
	bitBuf   uint64 // Buffer holding current bits
	bitCount int    // Number of valid bits in buffer
}

// NewBitReader creates a new bit reader over data. The reader does not copy
// or modify the slice.
func NewBitReader(data []byte) *BitReader {
	return &BitReader{
		data: data,
	}
}

// Remaining returns the number of unread bits.
func (br *BitReader) Remaining() int {
	return (len(br.data)-br.bytePos)*8 + br.bitCount
}

// ReadBits consumes the next numBits bits and returns them right-aligned.
//
// Returns:
//   - The bits as a uint64 and true if successful
//   - Zero and false if fewer than numBits bits remain (underflow)
func (br *BitReader) ReadBits(numBits int) (uint64, bool) {
	if numBits == 0 {
		return 0, true
	}

	if numBits <= br.bitCount {
		shift := 64 - numBits
		result := br.bitBuf >> shift
		br.bitBuf <<= numBits
		br.bitCount -= numBits

		return result, true
	}

	var result uint64
	firstRead := true

	for numBits > 0 {
		if br.bitCount == 0 {
			if !br.fillBuffer() {
				return 0, false
			}
		}

		// Determine how many bits we can read from current buffer
		bitsToRead := numBits
		if bitsToRead > br.bitCount {
			bitsToRead = br.bitCount
		}

		// Extract bits from most significant position
		shift := 64 - bitsToRead
		shiftedBits := br.bitBuf >> shift

		// Accumulate result
		if firstRead {
			result = shiftedBits
			firstRead = false
		} else {
			result = (result << bitsToRead) | shiftedBits
		}

		// Update buffer
		br.bitBuf <<= bitsToRead
		br.bitCount -= bitsToRead
		numBits -= bitsToRead
	}

	return result, true
}

// fillBuffer refills the bit buffer from the byte stream.
//
// Reads up to 8 bytes and left-aligns them in the 64-bit buffer so bits are
// consumed from the MSB. Returns false if no more data is available.
func (br *BitReader) fillBuffer() bool {
	if br.bytePos >= len(br.data) {
		return false
	}

	bytesAvailable := len(br.data) - br.bytePos
	bytesToRead := 8
	if bytesToRead > bytesAvailable {
		bytesToRead = bytesAvailable
	}

	// Fast path: read full 8 bytes using binary.BigEndian
	if bytesToRead == 8 {
		br.bitBuf = binary.BigEndian.Uint64(br.data[br.bytePos : br.bytePos+8])
		br.bytePos += 8
		br.bitCount = 64

		return true
	}

	// Slow path: read partial bytes
	br.bitBuf = 0
	for i := 0; i < bytesToRead; i++ {
		br.bitBuf = (br.bitBuf << 8) | uint64(br.data[br.bytePos])
		br.bytePos++
	}

	// Left-align the bits so extraction always starts at the MSB
	br.bitBuf <<= (8 - bytesToRead) * 8
	br.bitCount = bytesToRead * 8

	return true
}
