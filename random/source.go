package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"sync"
	"time"
)

// Source produces raw random 64-bit values. Implementations decide their
// own quality and determinism guarantees.
type Source interface {
	Uint64() uint64
}

// CryptoSource reads from crypto/rand. When the crypto source fails it
// degrades to a time-seeded splitmix64 state rather than returning an
// error; random values keep flowing in restricted environments.
type CryptoSource struct {
	mu       sync.Mutex
	fallback *SeededSource
}

// NewCryptoSource returns a cryptographically backed source.
func NewCryptoSource() *CryptoSource {
	return &CryptoSource{}
}

func (s *CryptoSource) Uint64() uint64 {
	var buf [8]byte
	if _, err := crand.Read(buf[:]); err == nil {
		return binary.LittleEndian.Uint64(buf[:])
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fallback == nil {
		s.fallback = NewSeededSource(uint64(time.Now().UnixNano()))
	}
	return s.fallback.Uint64()
}

// SeededSource is a deterministic splitmix64 generator. The same seed
// always yields the same sequence, which makes it the right source for
// tests and reproducible simulations.
type SeededSource struct {
	mu    sync.Mutex
	state uint64
}

// NewSeededSource returns a deterministic source for the given seed.
func NewSeededSource(seed uint64) *SeededSource {
	return &SeededSource{state: seed}
}

func (s *SeededSource) Uint64() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state += 0x9e3779b97f4a7c15
	z := s.state
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}
