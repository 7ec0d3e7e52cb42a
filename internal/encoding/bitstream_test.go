package encoding

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBitWriter_MSBFirstLayout(t *testing.T) {
	w := NewBitWriter()
	defer w.Finish()

	// 1,0,1,0 0101 written bit by bit must produce 0xA5.
	for _, bit := range []uint64{1, 0, 1, 0, 0, 1, 0, 1} {
		w.WriteBits(bit, 1)
	}

	require.Equal(t, 8, w.BitLen())
	require.Equal(t, []byte{0xA5}, w.Bytes())
}

func TestBitWriter_FinalByteZeroPadded(t *testing.T) {
	w := NewBitWriter()
	defer w.Finish()

	// Three 1-bits land in the top of the final byte; the low five bits pad.
	w.WriteBits(0x7, 3)

	require.Equal(t, 3, w.BitLen())
	require.Equal(t, []byte{0xE0}, w.Bytes())
}

func TestBitWriter_WideGroups(t *testing.T) {
	w := NewBitWriter()
	defer w.Finish()

	// 9-bit group 0x1FF followed by 10-bit group 0x001:
	// 111111111 0000000001 -> 0xFF 0x80 0x20 with 5 pad bits.
	w.WriteBits(0x1FF, 9)
	w.WriteBits(0x001, 10)

	require.Equal(t, 19, w.BitLen())
	require.Equal(t, []byte{0xFF, 0x80, 0x20}, w.Bytes())
}

func TestBitWriter_MasksExcessBits(t *testing.T) {
	w := NewBitWriter()
	defer w.Finish()

	// Only the low 4 bits of the value may be used.
	w.WriteBits(0xFF, 4)
	w.WriteBits(0x0, 4)

	require.Equal(t, []byte{0xF0}, w.Bytes())
}

func TestBitWriter_CrossesAccumulatorBoundary(t *testing.T) {
	w := NewBitWriter()
	defer w.Finish()

	// 7 groups of 10 bits = 70 bits straddle the 64-bit accumulator.
	for i := 0; i < 7; i++ {
		w.WriteBits(uint64(i+1), 10)
	}

	require.Equal(t, 70, w.BitLen())

	data := w.Bytes()
	require.Len(t, data, 9)

	r := NewBitReader(data)
	for i := 0; i < 7; i++ {
		v, ok := r.ReadBits(10)
		require.True(t, ok)
		require.Equal(t, uint64(i+1), v)
	}
}

func TestBitWriter_EmptyBytes(t *testing.T) {
	w := NewBitWriter()
	defer w.Finish()

	require.Equal(t, 0, w.BitLen())
	require.Empty(t, w.Bytes())
}

func TestBitReader_Underflow(t *testing.T) {
	r := NewBitReader([]byte{0xAB})

	require.Equal(t, 8, r.Remaining())

	_, ok := r.ReadBits(9)
	require.False(t, ok, "reading past the end must report underflow")
}

func TestBitReader_Remaining(t *testing.T) {
	r := NewBitReader([]byte{0x00, 0x00, 0x00})

	require.Equal(t, 24, r.Remaining())

	_, ok := r.ReadBits(10)
	require.True(t, ok)
	require.Equal(t, 14, r.Remaining())

	_, ok = r.ReadBits(14)
	require.True(t, ok)
	require.Equal(t, 0, r.Remaining())
}

func TestBitReader_ZeroWidthRead(t *testing.T) {
	r := NewBitReader(nil)

	v, ok := r.ReadBits(0)
	require.True(t, ok)
	require.Equal(t, uint64(0), v)

	_, ok = r.ReadBits(1)
	require.False(t, ok)
}

func TestBitStream_RoundTrip(t *testing.T) {
	widths := []int{1, 9, 10}

	for _, width := range widths {
		w := NewBitWriter()

		values := make([]uint64, 0, 100)
		mask := uint64(1<<width) - 1
		for i := 0; i < 100; i++ {
			v := (uint64(i)*2654435761 + 12345) & mask
			values = append(values, v)
			w.WriteBits(v, width)
		}

		data := make([]byte, len(w.Bytes()))
		copy(data, w.Bytes())
		w.Finish()

		r := NewBitReader(data)
		for i, want := range values {
			got, ok := r.ReadBits(width)
			require.True(t, ok, "width %d value %d", width, i)
			require.Equal(t, want, got, "width %d value %d", width, i)
		}
	}
}

func TestBitWriter_ReuseAfterFinishPanics(t *testing.T) {
	w := NewBitWriter()
	w.WriteBits(1, 1)
	_ = w.Bytes()
	w.Finish()

	require.Panics(t, func() { w.WriteBits(1, 1) })
	require.Panics(t, func() { _ = w.Bytes() })
}
