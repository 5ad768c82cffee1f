package puzzle

import (
	"github.com/nmoreira/puzzleday/internal/errors"
)

// LCG parameters. These must never change: every puzzle ever served was
// derived from this exact recurrence, and all users must keep receiving
// identical daily puzzles across processes and releases.
const (
	lcgMultiplier = 9301
	lcgIncrement  = 49297
	lcgModulus    = 233280
)

// Rand is a deterministic pseudo-random sequence generator. The same initial
// seed produces the exact same infinite sequence.
type Rand struct {
	seed int64
}

// NewRand creates a generator from a non-negative integer seed.
func NewRand(seed int) (*Rand, error) {
	if seed < 0 {
		return nil, errors.NewInvalidSeedError(seed)
	}
	return &Rand{seed: int64(seed)}, nil
}

// Next advances the internal state and returns a float in [0, 1).
func (r *Rand) Next() float64 {
	r.seed = (r.seed*lcgMultiplier + lcgIncrement) % lcgModulus
	return float64(r.seed) / lcgModulus
}

// NextInt returns an integer in [min, max] inclusive.
func (r *Rand) NextInt(min, max int) int {
	return int(r.Next()*float64(max-min+1)) + min
}

// Choice returns a deterministically chosen element of items.
func Choice[T any](r *Rand, items []T) (T, error) {
	if len(items) == 0 {
		var zero T
		return zero, errors.NewEmptyInputError("choice")
	}
	return items[r.NextInt(0, len(items)-1)], nil
}

// Shuffle returns a new slice holding a deterministic Fisher-Yates
// permutation of items. The input is not mutated.
func Shuffle[T any](r *Rand, items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	for i := len(out) - 1; i > 0; i-- {
		j := r.NextInt(0, i)
		out[i], out[j] = out[j], out[i]
	}
	return out
}
