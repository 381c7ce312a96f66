package zxpac4

import "testing"

func TestBitWriterBitsThenByteDoesNotDisturbOpenTag(t *testing.T) {
	buf := make([]byte, 8)
	w := newBitWriter(buf)

	w.bits(1, 1)   // opens tag byte at pos 0, pos -> 1
	p := w.byte(0xAB) // writes at pos 1, does not touch tag byte
	if p != 1 {
		t.Fatalf("byte() returned %d, want 1", p)
	}
	w.bits(0, 1) // continues packing into the still-open tag byte

	size := w.flush()
	if size != 2 {
		t.Fatalf("flush() = %d, want 2", size)
	}
	if buf[1] != 0xAB {
		t.Errorf("byte payload clobbered: got %#x", buf[1])
	}
	// Tag byte holds "10" in its top two bits.
	if buf[0]&0xc0 != 0x80 {
		t.Errorf("tag byte top bits = %08b, want 10......", buf[0])
	}
}

func TestBitWriterSpillsAcrossTagBytes(t *testing.T) {
	buf := make([]byte, 16)
	w := newBitWriter(buf)
	for i := 0; i < 20; i++ {
		w.bits(1, 1)
	}
	size := w.flush()
	if size != 3 {
		t.Fatalf("flush() = %d, want 3 tag bytes for 20 bits", size)
	}
	if buf[0] != 0xff || buf[1] != 0xff {
		t.Errorf("first two tag bytes should be all-ones, got %08b %08b", buf[0], buf[1])
	}
}

func TestBitWriterWideFieldRoundTrips(t *testing.T) {
	buf := make([]byte, 8)
	w := newBitWriter(buf)
	w.bits(0x2ABC, 14)
	size := w.flush()

	r := newBitReader(buf[:size])
	got, ok := r.bits(14)
	if !ok {
		t.Fatal("bits(14) failed to read back")
	}
	if got != 0x2ABC&((1<<14)-1) {
		t.Errorf("round trip got %x, want %x", got, 0x2ABC&((1<<14)-1))
	}
}

func TestBitWriterFlushExcludesSpeculativeSlot(t *testing.T) {
	buf := make([]byte, 8)
	w := newBitWriter(buf)
	w.bits(1, 1)
	size := w.flush()
	if size != 1 {
		t.Fatalf("flush() = %d, want 1 (speculative next slot excluded)", size)
	}
}
