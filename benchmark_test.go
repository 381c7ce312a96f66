// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/lzo (adapted)

package zxpac4

import (
	"bytes"
	"fmt"
	"math/rand"
	"testing"
)

func benchmarkInputSets() map[string][]byte {
	rng := rand.New(rand.NewSource(42))
	words := [][]byte{
		[]byte("the"), []byte("quick"), []byte("brown"), []byte("fox"),
		[]byte("jumps"), []byte("over"), []byte("lazy"), []byte("dog"),
	}
	var text bytes.Buffer
	for text.Len() < 64*1024 {
		text.Write(words[rng.Intn(len(words))])
		text.WriteByte(' ')
	}
	return map[string][]byte{
		"small-text-4k":   bytes.Repeat([]byte("zxpac4 benchmark text payload "), 160),
		"pattern-128k":    bytes.Repeat([]byte("ABCDEF0123456789"), 8192),
		"byte-cycle-256k": bytes.Repeat([]byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, 26214),
		"word-soup-64k":   text.Bytes()[:64*1024],
	}
}

func BenchmarkCompress(b *testing.B) {
	configs := map[string]func() *Config{
		"default": DefaultConfig,
		"ascii": func() *Config {
			c := DefaultConfig()
			c.IsASCII = true
			return c
		},
		"shallow-chain": func() *Config {
			c := DefaultConfig()
			c.MaxChain = 1
			return c
		},
		"128k-window": func() *Config {
			c := DefaultConfig()
			c.WindowSize = window128K
			return c
		},
	}

	for inputName, inputData := range benchmarkInputSets() {
		for cfgName, makeCfg := range configs {
			name := fmt.Sprintf("%s/%s", inputName, cfgName)
			b.Run(name, func(b *testing.B) {
				cfg := makeCfg()
				b.ReportAllocs()
				b.SetBytes(int64(len(inputData)))
				b.ResetTimer()

				for i := 0; i < b.N; i++ {
					if _, err := Compress(inputData, cfg); err != nil {
						b.Fatalf("Compress failed: %v", err)
					}
				}
			})
		}
	}
}

func BenchmarkMatcherFindMatches(b *testing.B) {
	for inputName, inputData := range benchmarkInputSets() {
		b.Run(inputName, func(b *testing.B) {
			cfg := DefaultConfig()
			b.ReportAllocs()
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				m := newMatcher(inputData, cfg)
				for pos := 0; pos < len(inputData); pos++ {
					m.findMatches(pos, len(inputData)-pos)
				}
				m.release()
			}
		})
	}
}

func BenchmarkRoundTrip(b *testing.B) {
	inputData := bytes.Repeat([]byte("RoundTripData"), 16384)
	cfg := DefaultConfig()
	b.ReportAllocs()
	b.SetBytes(int64(len(inputData)))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		res, err := Compress(inputData, cfg)
		if err != nil {
			b.Fatalf("Compress failed: %v", err)
		}
		if _, err := decodeForTest(res.Output, cfg); err != nil {
			b.Fatalf("decodeForTest failed: %v", err)
		}
	}
}
