package pwgen

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
)

// Rand is the randomness source used by Generate.
// IntN returns a uniform int in [0, n) and is only called with n > 0.
// *rand.Rand satisfies it; it is not safe for concurrent use.
type Rand interface {
	IntN(n int) int
}

// cryptoSource is a rand.Source reading from crypto/rand.
type cryptoSource struct{}

func (cryptoSource) Uint64() uint64 {
	var b [8]byte
	// crypto/rand.Read never returns an error on supported platforms.
	_, _ = crand.Read(b[:])
	return binary.LittleEndian.Uint64(b[:])
}

// NewCryptoRand returns a source seeded by the operating system.
func NewCryptoRand() *rand.Rand {
	return rand.New(cryptoSource{})
}

// NewSeededRand returns a reproducible source: the same seed always yields
// the same sequence of draws.
func NewSeededRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
