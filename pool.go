// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/lzo (adapted)

package zxpac4

import "sync"

// The matcher's hash head table, its chain table, and the parser's cost
// node array are the only allocations whose size scales with input/window
// size; Compress reuses them across calls via sync.Pool instead of
// allocating fresh on every call.

var headPool = sync.Pool{
	New: func() any {
		h := make([]int32, hashSize)
		return &h
	},
}

func acquireHead() []int32 {
	h := *headPool.Get().(*[]int32)
	for i := range h {
		h[i] = -1
	}
	return h
}

func releaseHead(h []int32) {
	headPool.Put(&h)
}

var chainPool = sync.Pool{
	New: func() any {
		s := make([]int32, 0)
		return &s
	},
}

func acquireChain(n int) []int32 {
	s := *chainPool.Get().(*[]int32)
	if cap(s) < n {
		s = make([]int32, n)
	} else {
		s = s[:n]
	}
	return s
}

func releaseChain(s []int32) {
	s = s[:0]
	chainPool.Put(&s)
}

var nodesPool = sync.Pool{
	New: func() any {
		s := make([]costNode, 0)
		return &s
	},
}

func acquireNodes(n int) []costNode {
	s := *nodesPool.Get().(*[]costNode)
	if cap(s) < n {
		s = make([]costNode, n)
	} else {
		s = s[:n]
		for i := range s {
			s[i] = costNode{}
		}
	}
	return s
}

func releaseNodes(s []costNode) {
	s = s[:0]
	nodesPool.Put(&s)
}
