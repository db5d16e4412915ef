// Package random is a small pluggable random-number toolkit. A Source
// produces raw 64-bit values; a Generator layers typed helpers (bounded
// integers, floats, choices, shuffles, random strings) on top of any Source.
//
// Two sources ship with the package:
//
//   - CryptoSource draws from crypto/rand and falls back to a time-seeded
//     PRNG only when the crypto source fails (e.g. restricted sandboxes).
//   - SeededSource is a deterministic splitmix64 generator for tests and
//     reproducible runs.
//
// The package-level helpers use a shared crypto-backed generator:
//
//	n := random.IntRange(10, 20)
//	id := random.Hex(8)
//	item := random.Pick(gen, []string{"a", "b", "c"})
//
// Sources provided by the package are safe for concurrent use; a Generator
// is as safe as the Source it wraps.
package random
