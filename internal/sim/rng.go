package sim

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand/v2"
)

// streamMix decorrelates the second PCG word between neighbouring indexes.
const streamMix = uint64(0x9e3779b97f4a7c15)

// Source is the randomness the day step draws from. *rand.Rand satisfies it.
type Source interface {
	IntN(n int) int
	Float64() float64
}

// NewStream returns an independent deterministic stream for one player or run.
// The same (seed, index) pair always yields the same sequence.
func NewStream(seed uint64, index int) *rand.Rand {
	return rand.New(rand.NewPCG(seed, (uint64(index)+1)*streamMix))
}

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (uint64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return binary.LittleEndian.Uint64(b[:]), nil
}

// between draws uniformly from [lo, hi], both inclusive
func between(src Source, lo, hi int) int {
	return lo + src.IntN(hi-lo+1)
}
