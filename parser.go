// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/lzo (adapted)

package zxpac4

// Optimal parser: a forward dynamic program computing the minimum arrival
// cost at every position, followed by a backward walk that recovers the
// winning edges as a forward linked list and tallies statistics.

// parseResult holds the relaxed cost nodes (nodes[0..len(buf)]) and the
// entry point of the recovered forward chain (nodes[0].next).
type parseResult struct {
	nodes []costNode
	stats Stats
}

// runParser finds candidate matches at every position and relaxes the
// literal/match/PMR edges leaving it, then recovers the winning parse.
func runParser(cfg *Config, buf []byte) parseResult {
	n := len(buf)
	nodes := acquireNodes(n + 1)
	initCost(nodes, n, cfg.InitialPMROffset)

	m := newMatcher(buf, cfg)
	defer m.release()

	for pos := 0; pos < n; pos++ {
		literalCost(cfg, nodes, buf, pos)

		limit := n - pos
		if limit < cfg.MinMatch {
			continue
		}

		for _, cand := range m.findMatches(pos, limit) {
			matchCost(cfg, nodes, buf, pos, cand.offset, cand.length)
		}
	}

	stats := recoverParse(nodes, n)
	return parseResult{nodes: nodes, stats: stats}
}

func initCost(nodes []costNode, n, pmr int) {
	nodes[0].arrivalCost = 0
	nodes[0].pmrOffset = pmr
	nodes[0].lastLiteral = false
	nodes[0].numLiterals = 0

	for i := 1; i <= n; i++ {
		nodes[i].arrivalCost = maxCost
		nodes[i].numLiterals = 0
	}
}

// recoverParse walks the relaxed nodes backward from n to 0, setting each
// predecessor's forward link and tallying literal/match/PMR statistics
// along the winning path.
func recoverParse(nodes []costNode, n int) Stats {
	var stats Stats

	nodes[n].next = 0
	pos := n
	numLiterals := 1

	for pos > 0 {
		length := nodes[pos].length
		offset := nodes[pos].offset
		nodes[pos].numLiterals = 0

		if length == 1 && offset == 0 {
			nodes[pos].numLiterals = numLiterals
			numLiterals++
		} else {
			numLiterals = 1
		}

		switch {
		case offset == 0 && length > 1:
			stats.PMRMatches++
			stats.Matches++
			stats.MatchedBytes += length
		case offset > 0 && length == 1:
			stats.PMRLiterals++
			stats.Literals++
		case offset == 0 && length == 1:
			stats.Literals++
		default:
			stats.Matches++
			stats.MatchedBytes += length
		}

		nodes[pos-length].next = pos
		pos -= length
	}

	return stats
}
