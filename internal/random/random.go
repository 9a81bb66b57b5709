// Package random supplies the injectable randomness used by the engines.
package random

import (
	"math/rand"
	"time"
)

// Source is the randomness an engine needs.
type Source interface {
	// Float64 returns a value in [0, 1).
	Float64() float64
	// Intn returns a value in [0, n).
	Intn(n int) int
}

// New returns a Source seeded with seed.
func New(seed int64) Source {
	return rand.New(rand.NewSource(seed))
}

// NewTime returns a Source seeded with the current time.
func NewTime() Source {
	return New(time.Now().UnixNano())
}

// Fixed cycles through a fixed list of floats. Intn is derived from Float64.
type Fixed struct {
	values []float64
	next   int
}

// NewFixed returns a Fixed source over values. An empty list always yields 0.
func NewFixed(values ...float64) *Fixed {
	return &Fixed{values: values}
}

// Float64 returns the next value in the cycle.
func (f *Fixed) Float64() float64 {
	if len(f.values) == 0 {
		return 0
	}
	v := f.values[f.next%len(f.values)]
	f.next++
	return v
}

// Intn scales the next value into [0, n).
func (f *Fixed) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	v := int(f.Float64() * float64(n))
	if v >= n {
		v = n - 1
	}
	if v < 0 {
		v = 0
	}
	return v
}

// Between returns an integer in [min, max], both inclusive.
func Between(src Source, min, max int) int {
	if max < min {
		min, max = max, min
	}
	return min + int(src.Float64()*float64(max-min+1))
}

// Shuffle permutes n items in place using swap.
func Shuffle(src Source, n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		j := src.Intn(i + 1)
		swap(i, j)
	}
}

// Pick returns a random element of items.
func Pick[T any](src Source, items []T) T {
	var zero T
	if len(items) == 0 {
		return zero
	}
	return items[src.Intn(len(items))]
}
