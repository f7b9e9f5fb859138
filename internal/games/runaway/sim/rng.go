package sim

import (
	"math/rand"

	"github.com/vovakirdan/runaway/internal/config"
)

// RNG is the uniform random source used by world generation.
// *rand.Rand satisfies it; tests may inject scripted sources.
type RNG interface {
	Float64() float64
}

// NewRNG returns a seeded, deterministic RNG.
func NewRNG(seed int64) RNG {
	return rand.New(rand.NewSource(seed))
}

// between returns a uniform value in [lo, hi].
func between(r RNG, lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + r.Float64()*(hi-lo)
}

// intBetween returns a uniform integer in [lo, hi].
func intBetween(r RNG, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	n := lo + int(r.Float64()*float64(hi-lo+1))
	return min(n, hi)
}

// jittered returns intervalMs scaled by a uniform factor in [1-jitter, 1+jitter].
func jittered(r RNG, t config.SpawnTimer, intervalMs float64) float64 {
	return intervalMs * between(r, 1-t.Jitter, 1+t.Jitter)
}
