// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/lzo (adapted)

package zxpac4

// Cost-model relaxation: the bit cost of one literal or one (offset,
// length) match edge, expressed as direct relaxation of the forward DAG
// kept in nodes. Plain functions over a Config value, per the "replace
// CRTP with functions + a concrete Config" guidance this format's design
// notes call for — no cost "class", no virtual dispatch.

// literalCost relaxes the literal edge pos -> pos+1. When the byte at pos
// equals the byte the current PMR points at, the edge is treated as a
// length-1 PMR (cheaper: only the 2-bit PMR prefix, no literal byte).
func literalCost(cfg *Config, nodes []costNode, buf []byte, pos int) {
	p := &nodes[pos]
	newCost := p.arrivalCost
	numLiterals := p.numLiterals
	offset := 0

	if pos >= p.pmrOffset && buf[pos-p.pmrOffset] == buf[pos] {
		offset = p.pmrOffset
		numLiterals = 1
	} else {
		if numLiterals > 0 {
			newCost -= uint32(lengthBits(numLiterals))
		}
		numLiterals++
		newCost += 8
		offset = 0
	}

	if !cfg.IsASCII || !p.lastLiteral {
		newCost++
	}
	newCost += uint32(lengthBits(numLiterals))

	succ := &nodes[pos+1]
	if succ.arrivalCost >= newCost {
		succ.arrivalCost = newCost
		succ.length = 1
		succ.offset = offset
		succ.pmrOffset = p.pmrOffset

		if offset == 0 {
			succ.lastLiteral = true
			succ.numLiterals = numLiterals
		} else {
			succ.lastLiteral = false
			succ.numLiterals = 0
		}
	}
}

// relaxMatchEdge relaxes a single candidate edge pos -> pos+length using
// offset, distinguishing the PMR case (offset equals the PMR in effect at
// pos) from a regular match (which updates the PMR going forward and
// encodes length-1, a wire-format quirk decoders compensate for).
func relaxMatchEdge(cfg *Config, nodes []costNode, pos, offset, length int) {
	p := &nodes[pos]

	tagCost := 1
	if cfg.IsASCII && p.lastLiteral {
		tagCost = 0
	}

	pmrOffset := p.pmrOffset
	newCost := p.arrivalCost + uint32(tagCost)

	var encodeOffset, encodeLength int
	if offset == pmrOffset {
		encodeOffset = 0
		encodeLength = length
	} else {
		encodeOffset = offset
		pmrOffset = offset
		encodeLength = length - 1
	}

	newCost += uint32(offsetBits(encodeOffset, cfg.WindowSize))
	newCost += uint32(lengthBits(encodeLength))

	succ := &nodes[pos+length]
	if succ.arrivalCost >= newCost {
		succ.offset = encodeOffset
		succ.pmrOffset = pmrOffset
		succ.arrivalCost = newCost
		succ.length = length
		succ.lastLiteral = false
		succ.numLiterals = 0
	}
}

// matchCost relaxes every length the parser decided to try for one
// candidate (offset, maxLength), then independently probes the PMR offset
// against buf starting at pos — this may reach further than any hash-chain
// candidate and is always worth trying. Returns a short-circuit hint: once
// a relaxed length reaches goodMatch the parser may stop trying further,
// shorter candidates at this position.
func matchCost(cfg *Config, nodes []costNode, buf []byte, pos int, offset, maxLength int) int {
	steps := cfg.BackwardSteps
	minLen := maxLength - steps
	if minLen < cfg.MinMatch {
		minLen = cfg.MinMatch
	}

	for l := maxLength; l >= minLen; l-- {
		relaxMatchEdge(cfg, nodes, pos, offset, l)
	}

	p := &nodes[pos]
	pmrOffset := p.pmrOffset

	if offset != pmrOffset && pos >= pmrOffset {
		maxMatch := cfg.MaxMatch
		remaining := len(buf) - pos
		if remaining < maxMatch {
			maxMatch = remaining
		}

		length := commonPrefixLen(buf, pos, pos-pmrOffset, maxMatch)

		if length >= cfg.MinMatch {
			relaxMatchEdge(cfg, nodes, pos, pmrOffset, length)
		}
	}

	if maxLength >= cfg.GoodMatch {
		return cfg.GoodMatch
	}
	return 1
}

func commonPrefixLen(buf []byte, a, b, maxLen int) int {
	length := 0
	for length < maxLen && buf[a+length] == buf[b+length] {
		length++
	}
	return length
}
