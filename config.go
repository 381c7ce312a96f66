// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/lzo (adapted)

package zxpac4

// Config configures one Compress call: window and match-length bounds,
// matcher search depth, the initial PMR value, and the two independent
// output-shaping flags (ASCII piggyback, reversal for backward decoding).
type Config struct {
	// WindowSize bounds how far back a match may reference; must be a
	// power of two. Values up to 1<<15 use the 15-bit offset ladder,
	// values up to 1<<17 use the 17-bit ladder (the two ladders the
	// mature pipeline this format is modeled on actually ships).
	WindowSize int
	// MinMatch is the shortest match the matcher will record. Must be >= 2.
	MinMatch int
	// MaxMatch is the longest match length, capped at 255 by the wire format.
	MaxMatch int
	// GoodMatch is the matcher's short-circuit threshold: once a
	// candidate reaches this length, the chain walk stops early.
	GoodMatch int
	// MaxChain bounds how many hash-chain positions are walked per search.
	MaxChain int
	// BackwardSteps is how many lengths shorter than a candidate's
	// natural length the parser additionally relaxes, to explore cheaper
	// shorter encodings of the same offset.
	BackwardSteps int
	// InitialPMROffset seeds the previous-match-reference state; must be
	// in [1, 127] (it is packed into the 7 low bits of the header byte).
	InitialPMROffset int
	// IsASCII enables the 7-bit literal piggyback mode. The input must be
	// 7-bit clean or Compress reports ErrAsciiViolation.
	IsASCII bool
	// ReverseEncoded reverses the whole output byte-wise, for decompressors
	// that walk the stream backward.
	ReverseEncoded bool
	// OnlyBetterMatches restricts the matcher to recording strictly
	// increasing lengths as it walks the chain.
	OnlyBetterMatches bool
}

// DefaultConfig returns the mature pipeline's usual parameters: a 32K
// window, match lengths 2..255, a 16-entry chain walk, and PMR seeded at 5.
func DefaultConfig() *Config {
	return &Config{
		WindowSize:        window32K,
		MinMatch:          2,
		MaxMatch:          255,
		GoodMatch:         128,
		MaxChain:          16,
		BackwardSteps:     0,
		InitialPMROffset:  5,
		IsASCII:           false,
		ReverseEncoded:    false,
		OnlyBetterMatches: false,
	}
}

// Validate checks Config against the bounds §6 of the format requires,
// returning ErrInvalidConfig on the first violation.
func (c *Config) Validate() error {
	if c.WindowSize < 256 || c.WindowSize > window128K {
		return ErrInvalidConfig
	}
	if c.WindowSize&(c.WindowSize-1) != 0 {
		return ErrInvalidConfig
	}
	if c.MinMatch < 2 {
		return ErrInvalidConfig
	}
	if c.MaxMatch < c.MinMatch || c.MaxMatch > 255 {
		return ErrInvalidConfig
	}
	if c.GoodMatch < c.MinMatch || c.GoodMatch > c.MaxMatch {
		return ErrInvalidConfig
	}
	if c.MaxChain < 1 || c.MaxChain > 10000 {
		return ErrInvalidConfig
	}
	if c.BackwardSteps < 0 || c.BackwardSteps > 254 {
		return ErrInvalidConfig
	}
	if c.InitialPMROffset < 1 || c.InitialPMROffset > 127 {
		return ErrInvalidConfig
	}
	return nil
}
