// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/lzo (adapted)

package zxpac4

// Wire format constants and the bit-cost/tag functions for offsets and
// match/literal-run lengths. Two offset ladders exist because the mature
// pipeline this package is modeled on ships exactly two window classes:
// a 15-bit (32K) ladder and a 17-bit (128K) ladder. Both terminate their
// prefix differently in the top bin; there is no general formula that
// covers windows beyond 2^17, so WindowSize above that is rejected by
// Config.Validate.

const (
	headerSize = 4

	window32K  = 1 << 15
	window128K = 1 << 17

	asciiFlagBit = 0x80
)

// offsetTag carries the encoded form of an offset: the high byte written
// verbatim via the bit writer's byte() op, plus a variable-length suffix
// (extraBits bits of extraVal) appended through bits().
type offsetTag struct {
	byteTag   byte
	extraVal  uint32
	extraBits int
}

// offsetBits returns the total number of bits (byte + suffix) an offset
// costs to encode; always 8 + extraBits, since the high byte is written in
// full regardless of class. offset == 0 denotes a PMR edge, which carries
// no offset bits at all.
func offsetBits(offset, windowSize int) int {
	if offset == 0 {
		return 0
	}
	return 8 + getOffsetTag(offset, windowSize).extraBits
}

// getOffsetTag classifies offset into its prefix-code bin. offset must be
// in [1, windowSize). windowSize selects between the 32K and 128K ladders;
// the ladders agree on every bin below 8192 and diverge above it.
func getOffsetTag(offset, windowSize int) offsetTag {
	switch {
	case offset < 128:
		return offsetTag{byteTag: byte(offset), extraBits: 0}
	case offset < 256:
		return offsetTag{byteTag: byte(offset), extraBits: 2, extraVal: 0}
	case offset < 512:
		return offsetTag{byteTag: byte(offset >> 1), extraBits: 3, extraVal: (0x1 << 1) | uint32(offset&0x01)}
	case offset < 1024:
		return offsetTag{byteTag: byte(offset >> 2), extraBits: 5, extraVal: (0x4 << 2) | uint32(offset&0x03)}
	case offset < 2048:
		return offsetTag{byteTag: byte(offset >> 3), extraBits: 6, extraVal: (0x5 << 3) | uint32(offset&0x07)}
	case offset < 4096:
		return offsetTag{byteTag: byte(offset >> 4), extraBits: 8, extraVal: (0xc << 4) | uint32(offset&0x0f)}
	case offset < 8192:
		return offsetTag{byteTag: byte(offset >> 5), extraBits: 9, extraVal: (0xd << 5) | uint32(offset&0x1f)}
	}

	if windowSize <= window32K {
		switch {
		case offset < 16384:
			return offsetTag{byteTag: byte(offset >> 6), extraBits: 10, extraVal: (0xe << 6) | uint32(offset&0x3f)}
		default:
			return offsetTag{byteTag: byte(offset >> 7), extraBits: 11, extraVal: (0xf << 7) | uint32(offset&0x7f)}
		}
	}

	switch {
	case offset < 16384:
		return offsetTag{byteTag: byte(offset >> 6), extraBits: 11, extraVal: (0x1c << 6) | uint32(offset&0x3f)}
	case offset < 32768:
		return offsetTag{byteTag: byte(offset >> 7), extraBits: 12, extraVal: (0x1d << 7) | uint32(offset&0x7f)}
	case offset < 65536:
		return offsetTag{byteTag: byte(offset >> 8), extraBits: 13, extraVal: (0x1e << 8) | uint32(offset&0xff)}
	default:
		return offsetTag{byteTag: byte(offset >> 9), extraBits: 14, extraVal: (0x1f << 9) | uint32(offset&0x1ff)}
	}
}

// lengthTag encodes length (1..255, or 1..max_match-1 for the "encode
// length - 1" case) as a gamma-like unary-pair code: bits is the total
// number of bits, value the right-justified bit pattern. The terminating
// zero pair is dropped for the top bin (128..255) since the decoder knows
// the maximum length and doesn't need a terminator there.
func lengthTag(length int) (bits int, value uint32) {
	maskBit := 0
	mask := 1
	for mask < length {
		maskBit++
		mask = mask*2 + 1
	}

	if maskBit == 0 {
		return 1, 0
	}

	bits = 1
	var tag uint32
	for m := 1 << (maskBit - 1); m > 0; m >>= 1 {
		tag = (tag | 0x1) << 2
		if length&m != 0 {
			tag |= 0x2
		}
		bits += 2
	}

	if maskBit == 7 {
		tag >>= 1
		bits--
	}

	return bits, tag
}

// lengthBits returns the bit cost of lengthTag(length) without building the
// pattern; kept separate because the parser's inner relaxation loop calls
// it far more often than the encoder calls lengthTag.
func lengthBits(length int) int {
	switch {
	case length == 1:
		return 1
	case length < 4:
		return 3
	case length < 8:
		return 5
	case length < 16:
		return 7
	case length < 32:
		return 9
	case length < 64:
		return 11
	case length < 128:
		return 13
	default:
		return 14
	}
}
