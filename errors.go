// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/lzo (adapted)

package zxpac4

import "errors"

// Sentinel errors for Compress, grouped per the three error kinds: config
// errors (checked before any work), input-domain errors (size/content
// bounds), and the compression-outcome signal. A fourth group, internal
// decoder errors, exists only in the unexported reference decoder used by
// tests to verify round-trips.
var (
	// ErrInvalidConfig is returned when Config fails validation (bad
	// window size, out-of-range PMR, etc).
	ErrInvalidConfig = errors.New("invalid config")
	// ErrInputTooShort is returned when the input is smaller than the
	// minimum the matcher can hash (2 bytes).
	ErrInputTooShort = errors.New("input too short")
	// ErrInputTooLarge is returned when the input exceeds the 16 MiB
	// limit this format's mature variants support, or exceeds
	// Config.WindowSize<<8 bytes.
	ErrInputTooLarge = errors.New("input too large")
	// ErrAsciiViolation is returned when Config.IsASCII is set but some
	// input byte has its high bit set.
	ErrAsciiViolation = errors.New("ascii violation: input byte >= 128")
	// ErrIncompressible is returned when the parsed encoding would not be
	// smaller than the input; the caller may store it uncompressed.
	ErrIncompressible = errors.New("incompressible: no size reduction")

	// ErrCompressInternal identifies an internal invariant violation in
	// the compressor. No code path in Compress returns it.
	ErrCompressInternal = errors.New("internal compressor error")

	// ErrLookBehindUnderrun is returned by the reference decoder when a
	// back-reference points before the start of the output.
	ErrLookBehindUnderrun = errors.New("lookbehind underrun")
	// ErrOutputOverrun is returned by the reference decoder when a token
	// would write past the declared output length.
	ErrOutputOverrun = errors.New("output overrun")
	// ErrUnexpectedEOF is returned by the reference decoder when the
	// stream ends before the declared length is reached.
	ErrUnexpectedEOF = errors.New("unexpected end of input")
)
