package guuid

import (
	cryptorand "crypto/rand"
	"encoding/binary"
	mathrand "math/rand/v2"
	"sync"
)

// RandomSource supplies independent, uniformly distributed 32-bit words.
// Any *math/rand/v2.Rand satisfies it. Generators borrow the source and never
// synchronise access to it themselves unless documented otherwise.
type RandomSource interface {
	Uint32() uint32
}

// lockedSource makes a ChaCha8 stream safe for concurrent use.
type lockedSource struct {
	mu  sync.Mutex
	rng *mathrand.ChaCha8
}

func (s *lockedSource) Uint32() uint32 {
	s.mu.Lock()
	v := s.rng.Uint64()
	s.mu.Unlock()
	return uint32(v >> 32)
}

var (
	defaultRandomOnce sync.Once
	defaultRandom     *lockedSource
)

// DefaultRandom returns the process-wide random source. It is created on first
// use from a ChaCha8 stream seeded by crypto/rand and is safe for concurrent use.
func DefaultRandom() RandomSource {
	defaultRandomOnce.Do(func() {
		var seed [32]byte
		// crypto/rand.Read never returns an error; it crashes the program instead
		_, _ = cryptorand.Read(seed[:])
		defaultRandom = &lockedSource{rng: mathrand.NewChaCha8(seed)}
	})
	return defaultRandom
}

// NewSeededRandom returns a deterministic source for tests and reproducible
// runs. The returned source is safe for concurrent use.
func NewSeededRandom(seed [32]byte) RandomSource {
	return &lockedSource{rng: mathrand.NewChaCha8(seed)}
}

// fillRandom lays four words from src into u, least significant byte first.
func fillRandom(u *UUID, src RandomSource) {
	for i := 0; i < 16; i += 4 {
		binary.LittleEndian.PutUint32(u[i:], src.Uint32())
	}
}
