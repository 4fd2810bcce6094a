package generator

import (
	"math/rand"
	"time"
)

// Source is the stream of uniform samples in [0,1) that drives generation.
// *rand.Rand satisfies it. A Source must not be shared between concurrent
// Generate calls.
type Source interface {
	Float64() float64
}

// NewSeededSource returns a deterministic Source for the given seed.
// A seed of 0 picks a time-based seed.
func NewSeededSource(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
