// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/lzo (adapted)

package zxpac4

// Bit encoder: walks the parser's recovered forward chain and serializes
// each edge into the wire format (§4.2), tracking the ASCII piggyback
// back-pointer and the maximum security distance as it goes.
//
// The very first output byte is always a raw, untagged literal (buf[0]):
// position 0 can never have a real match candidate (the matcher has
// nothing in its chain yet, and the PMR probe requires pos >= pmrOffset),
// so the parser's own edge out of node 0 is always the length-1 literal
// edge, and skipping straight to it costs nothing.
func encode(cfg *Config, buf []byte, nodes []costNode) (out []byte, securityDistance int, err error) {
	n := len(buf)
	// +1 slack: the bit writer may speculatively reserve one more tag
	// byte than actually gets used once flush() finalizes the stream.
	out = make([]byte, n+headerSize+1)
	w := newBitWriter(out)

	headerByte := byte(cfg.InitialPMROffset)
	if cfg.IsASCII {
		headerByte |= asciiFlagBit
	}
	w.byte(headerByte)
	w.byte(byte(n >> 16))
	w.byte(byte(n >> 8))
	w.byte(byte(n))

	var lastLiteralPos int
	lastLiteralOpen := false

	if cfg.IsASCII {
		lastLiteralPos = w.byte(buf[0] << 1)
		lastLiteralOpen = true
	} else {
		w.byte(buf[0])
	}

	pos := nodes[0].next

	for {
		next := nodes[pos].next
		if next == 0 {
			break
		}
		pos = next

		length := nodes[pos].length
		offset := nodes[pos].offset
		literal := buf[pos-1]

		switch {
		case offset == 0 && length == 1:
			// Raw literal.
			if cfg.IsASCII && lastLiteralOpen {
				out[lastLiteralPos] &^= 0x01
			} else {
				w.bits(0, 1)
			}
			if cfg.IsASCII {
				lastLiteralPos = w.byte(literal << 1)
				lastLiteralOpen = true
			} else {
				w.byte(literal)
				lastLiteralOpen = false
			}

		case (offset == 0 && length > 1) || (offset > 0 && length == 1):
			// PMR match or PMR literal: tag "11" + length code only.
			if cfg.IsASCII && lastLiteralOpen {
				out[lastLiteralPos] |= 0x01
			} else {
				w.bits(1, 1)
			}
			w.bits(1, 1)
			bits, val := lengthTag(length)
			w.bits(val, bits)
			lastLiteralOpen = false

		default:
			// Regular match: tag "10" + offset byte/suffix + length-1 code.
			if cfg.IsASCII && lastLiteralOpen {
				out[lastLiteralPos] |= 0x01
			} else {
				w.bits(1, 1)
			}
			w.bits(0, 1)
			tag := getOffsetTag(offset, cfg.WindowSize)
			w.byte(tag.byteTag)
			if tag.extraBits > 0 {
				w.bits(tag.extraVal, tag.extraBits)
			}
			bits, val := lengthTag(length - 1)
			w.bits(val, bits)
			lastLiteralOpen = false
		}

		written := w.size()
		if written >= n {
			return nil, 0, ErrIncompressible
		}
		if dist := written - pos; dist > securityDistance {
			securityDistance = dist
		}
	}

	finalSize := w.flush()
	if finalSize >= n {
		return nil, 0, ErrIncompressible
	}

	return out[:finalSize], securityDistance, nil
}
