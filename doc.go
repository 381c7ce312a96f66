// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/lzo (adapted)

/*
Package zxpac4 implements a size-optimizing LZ77-family compressor for
small hand-rolled decompressors on constrained targets (8/16-bit retro
platforms, raw binary or ASCII blobs).

Compression is single-shot and in-memory: a chained-hash matcher finds
candidate back-references at every position, an optimal parser picks a
globally cost-minimal sequence of literals and matches over those
candidates (shortest path on the forward DAG of possible edges), and a
bit-packing encoder serializes the chosen parse into a fixed wire format,
including a single-slot "previous match reference" (PMR) that lets a
repeated offset be re-encoded for only a couple of bits.

# Compress

Config may be nil (DefaultConfig is used). A custom Config must pass
Config.Validate, so it is easiest to start from DefaultConfig:

	result, err := zxpac4.Compress(data, nil)

	cfg := zxpac4.DefaultConfig()
	cfg.IsASCII = true
	result, err := zxpac4.Compress(data, cfg)

Compress returns ErrIncompressible when the parsed encoding would not be
smaller than the input; the caller may then store it uncompressed.

# Wire format

	+---------+---------+---------+---------+=====================================+
	| PMR|ASC |   N_hi  |   N_mid |   N_lo  |     body (tag bytes interleaved)    |
	+---------+---------+---------+---------+=====================================+

Byte 0 holds the initial PMR offset in bits 6..0 and the ASCII-mode flag in
bit 7; bytes 1..3 are the original length, 24-bit big-endian. The body has
no end marker — a decoder uses the length prefix to know when to stop.
*/
package zxpac4
