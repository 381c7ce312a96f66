// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/lzo (adapted)

package zxpac4

// bitWriter is a backpatching tag-byte packer. Whenever bits() is called
// and no tag-byte slot is currently open, the next output byte is reserved
// for tag bits and the write cursor advances past it; byte() calls write
// directly at the cursor without disturbing the open tag slot. The tag
// byte is patched in place as bits accumulate, and finalized by flush()
// or by the next bits() call that overflows it.
//
// This mirrors the consumption pattern of a small byte-oriented decoder:
// it reads one tag byte, then shifts out control bits from it as it walks
// the stream, never needing more than one pending bit register.
type bitWriter struct {
	buf      []byte
	pos      int // next free byte position
	tagPos   int // position of the open tag byte, or -1 if none open
	accum    uint32
	freeBits int // bits remaining in the open tag byte
}

func newBitWriter(buf []byte) *bitWriter {
	return &bitWriter{buf: buf, tagPos: -1, freeBits: 8}
}

// bits emits the low n bits of value, packing them into the open tag byte
// (opening one first if needed) and spilling into successive tag bytes as
// needed for n > 8.
func (w *bitWriter) bits(value uint32, n int) {
	if w.tagPos < 0 {
		w.tagPos = w.pos
		w.pos++
	}

	if n > 8 {
		high := n - 8
		w.bits(value>>8, high)
		n = 8
		value &= 0xff
	}

	w.accum = (w.accum << uint(n)) | (value & ((1 << uint(n)) - 1))

	if n > w.freeBits {
		spill := n - w.freeBits
		w.buf[w.tagPos] = byte(w.accum >> uint(spill))
		w.tagPos = w.pos
		w.pos++
		w.freeBits = 8
		n = spill
	}

	w.freeBits -= n
}

// byte writes v directly at the current cursor, bypassing the bit
// accumulator; it does not close an open tag-byte slot. Returns the
// position the byte was written at, for the encoder's ASCII-piggyback
// back-pointer.
func (w *bitWriter) byte(v byte) int {
	p := w.pos
	w.buf[w.pos] = v
	w.pos++
	return p
}

// flush finalizes any in-flight tag byte, left-justifying the remaining
// accumulated bits, and returns the output length up to and including that
// byte. A speculative slot for a following tag byte is opened (matching
// the reference packer), but its position is not included in the returned
// length since nothing is ever written there once flush is final.
func (w *bitWriter) flush() int {
	oldPos := w.pos
	if w.freeBits < 8 {
		w.buf[w.tagPos] = byte(w.accum << uint(w.freeBits))
		w.tagPos = w.pos
		w.pos++
		w.freeBits = 8
	}
	return oldPos
}

// size returns the number of bytes written so far, including any reserved
// but not-yet-finalized tag byte.
func (w *bitWriter) size() int {
	return w.pos
}
