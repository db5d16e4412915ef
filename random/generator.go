package random

import "strings"

const hexDigits = "0123456789abcdef"

// Alphanumeric is the default charset for String.
const Alphanumeric = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Generator layers typed helpers over a Source. The zero value is not
// usable; construct with New.
type Generator struct {
	source Source
}

// New returns a generator over the given source. A nil source selects a
// fresh CryptoSource.
func New(source Source) *Generator {
	if source == nil {
		source = NewCryptoSource()
	}
	return &Generator{source: source}
}

var defaultGenerator = New(NewCryptoSource())

// IntN returns a uniform value in [0, n). It panics when n <= 0.
func (g *Generator) IntN(n int) int {
	if n <= 0 {
		panic("random: IntN called with non-positive n")
	}

	// Rejection sampling keeps the distribution uniform for bounds that do
	// not divide 2^64.
	limit := ^uint64(0) - ^uint64(0)%uint64(n)
	for {
		v := g.source.Uint64()
		if v < limit {
			return int(v % uint64(n))
		}
	}
}

// IntRange returns a uniform value in [min, max]. It panics when min > max.
func (g *Generator) IntRange(min, max int) int {
	if min > max {
		panic("random: IntRange called with min > max")
	}
	return min + g.IntN(max-min+1)
}

// Float64 returns a uniform value in [0, 1).
func (g *Generator) Float64() float64 {
	return float64(g.source.Uint64()>>11) / (1 << 53)
}

// Bool returns true with probability 1/2.
func (g *Generator) Bool() bool {
	return g.source.Uint64()&1 == 1
}

// String returns a string of length n drawn from charset. An empty charset
// falls back to Alphanumeric.
func (g *Generator) String(n int, charset string) string {
	if n <= 0 {
		return ""
	}
	if charset == "" {
		charset = Alphanumeric
	}

	var b strings.Builder
	b.Grow(n)
	for i := 0; i < n; i++ {
		b.WriteByte(charset[g.IntN(len(charset))])
	}
	return b.String()
}

// Hex returns n lowercase hexadecimal digits.
func (g *Generator) Hex(n int) string {
	return g.String(n, hexDigits)
}

// Pick returns a uniformly chosen element of items. It panics on an empty
// slice.
func Pick[T any](g *Generator, items []T) T {
	if len(items) == 0 {
		panic("random: Pick called with empty slice")
	}
	return items[g.IntN(len(items))]
}

// Shuffle permutes items in place via Fisher-Yates.
func Shuffle[T any](g *Generator, items []T) {
	for i := len(items) - 1; i > 0; i-- {
		j := g.IntN(i + 1)
		items[i], items[j] = items[j], items[i]
	}
}

// Package-level helpers over a shared crypto-backed generator.

func IntN(n int) int { return defaultGenerator.IntN(n) }

func IntRange(min, max int) int { return defaultGenerator.IntRange(min, max) }

func Float64() float64 { return defaultGenerator.Float64() }

func Bool() bool { return defaultGenerator.Bool() }

func Hex(n int) string { return defaultGenerator.Hex(n) }

func String(n int, charset string) string { return defaultGenerator.String(n, charset) }
