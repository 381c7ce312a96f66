// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/lzo (adapted)

package zxpac4

const maxInputSize = 1 << 24 // 16 MiB

// Stats reports counts gathered while recovering the optimal parse, plus
// the maximum security distance observed while encoding it. These are
// informational only; nothing in Compress depends on them.
type Stats struct {
	Literals            int
	PMRLiterals         int
	Matches             int
	PMRMatches          int
	MatchedBytes        int
	MaxSecurityDistance int
}

// Result is what Compress returns on success.
type Result struct {
	Output []byte
	Stats  Stats
}

// Compress runs the three-stage pipeline (matcher, optimal parser, bit
// encoder) over input once and returns the framed compressed stream. cfg
// may be nil (DefaultConfig is used).
func Compress(input []byte, cfg *Config) (Result, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}

	if len(input) > maxInputSize || len(input) > cfg.WindowSize<<8 {
		return Result{}, ErrInputTooLarge
	}
	if len(input) < 2 {
		return Result{}, ErrInputTooShort
	}
	if cfg.IsASCII {
		for _, b := range input {
			if b >= 128 {
				return Result{}, ErrAsciiViolation
			}
		}
	}

	parsed := runParser(cfg, input)
	defer releaseNodes(parsed.nodes)

	out, securityDistance, err := encode(cfg, input, parsed.nodes)
	if err != nil {
		return Result{}, err
	}

	if cfg.ReverseEncoded {
		reverseBytes(out)
	}

	stats := parsed.stats
	stats.MaxSecurityDistance = securityDistance

	return Result{Output: out, Stats: stats}, nil
}

func reverseBytes(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}
