// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/lzo (adapted)

package zxpac4

// maxCost is the initial arrival cost for every node but the first,
// standing in for "unreached" in the shortest-path relaxation.
const maxCost = 1<<31 - 1

// costNode is one position in the forward DAG the parser relaxes over.
// index 0 is the start of the file; index N (file length) is the end.
type costNode struct {
	arrivalCost uint32 // minimum bit-cost of a parse covering B[0..pos)
	length      int    // length of the edge that reached this node
	offset      int    // offset of that edge; 0 means literal or PMR match
	pmrOffset   int    // PMR value in effect on arrival at this node
	lastLiteral bool   // true if the edge into this node was a literal

	numLiterals int // relaxation: literal run ending here; post-pass: literals from here to the run's end (0 if not a literal)
	next        int // post-pass: forward link, 0 means "no successor yet"
}

// match is a single (offset, length) candidate returned by the matcher.
type match struct {
	offset int
	length int
}
