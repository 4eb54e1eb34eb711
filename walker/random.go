package walker

import (
	"fmt"
	"math/rand"
	"time"
)

// Source yields uniform integers in [0, n). *rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
}

type Random struct {
	src Source
}

func NewRandom(src Source) *Random {
	return &Random{src: src}
}

// NewSeeded returns a Random over math/rand. Seed 0 picks a time based seed.
func NewSeeded(seed int64) *Random {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return NewRandom(rand.New(rand.NewSource(seed)))
}

// UniformInt returns an integer in [low, high], both inclusive.
func (r *Random) UniformInt(low, high int) int {
	if high < low {
		panic(fmt.Sprintf("empty range [%d,%d]", low, high))
	}
	return low + r.src.Intn(high-low+1)
}

// Choose picks one element uniformly. Callers guarantee a non-empty slice.
func Choose[T any](r *Random, candidates []T) T {
	if len(candidates) == 0 {
		panic("choose from empty candidate set")
	}
	return candidates[r.src.Intn(len(candidates))]
}
