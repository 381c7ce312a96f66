package zxpac4

import (
	"bytes"
	"testing"
)

func TestMatcherFindsExactRepeat(t *testing.T) {
	buf := []byte("abcdefgh" + "abcdefgh")
	cfg := DefaultConfig()
	m := newMatcher(buf, cfg)
	defer m.release()

	var found []match
	for pos := 0; pos < len(buf); pos++ {
		cands := m.findMatches(pos, len(buf)-pos)
		found = append(found, cands...)
	}

	var best match
	for _, c := range found {
		if c.length > best.length {
			best = c
		}
	}
	if best.length < 8 {
		t.Fatalf("expected to find an 8-byte match, best was %+v", best)
	}
	if best.offset != 8 {
		t.Errorf("expected offset 8, got %d", best.offset)
	}
}

func TestMatcherNoCandidatesOnAllUniqueBytes(t *testing.T) {
	buf := []byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	cfg := DefaultConfig()
	m := newMatcher(buf, cfg)
	defer m.release()

	for pos := 0; pos < len(buf); pos++ {
		for _, c := range m.findMatches(pos, len(buf)-pos) {
			t.Errorf("unexpected candidate %+v at pos %d in all-unique input", c, pos)
		}
	}
}

func TestMatcherRespectsWindowSize(t *testing.T) {
	cfg := DefaultConfig()
	cfg.WindowSize = 256
	cfg.MinMatch = 2

	buf := append(bytes.Repeat([]byte{0xAA}, 5), bytes.Repeat([]byte{0}, 300)...)
	buf = append(buf, 0xAA, 0xAA, 0xAA)

	m := newMatcher(buf, cfg)
	defer m.release()

	for pos := 0; pos < len(buf); pos++ {
		for _, c := range m.findMatches(pos, len(buf)-pos) {
			if c.offset > cfg.WindowSize {
				t.Errorf("pos %d: candidate offset %d exceeds window %d", pos, c.offset, cfg.WindowSize)
			}
		}
	}
}

func TestMatcherCommonPrefixLenStopsAtMaxLen(t *testing.T) {
	buf := bytes.Repeat([]byte{'x'}, 50)
	cfg := DefaultConfig()
	m := newMatcher(buf, cfg)
	defer m.release()

	if got := m.commonPrefixLen(30, 10, 5); got != 5 {
		t.Errorf("commonPrefixLen capped at maxLen: got %d, want 5", got)
	}
}
