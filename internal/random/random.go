// Package random provides the seedable random source used by every game
// engine, together with the shuffle they share.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"
)

// Source draws uniformly distributed integers.
type Source interface {
	// Intn returns a uniform integer in [0, n). It panics if n <= 0.
	Intn(n int) int
}

// New returns a Source backed by math/rand seeded with seed.
// Two sources created with the same seed produce the same sequence.
func New(seed int64) Source {
	return rand.New(rand.NewSource(seed))
}

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

// SourceFunc adapts a function to the Source interface.
type SourceFunc func(n int) int

func (f SourceFunc) Intn(n int) int {
	return f(n)
}

// Between returns a uniform integer in [lo, hi].
func Between(src Source, lo, hi int) int {
	return lo + src.Intn(hi-lo+1)
}

// Shuffle performs a Fisher–Yates shuffle of n elements: i walks from the
// last index down to 1 and is swapped with a uniform index in [0, i].
func Shuffle(src Source, n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		j := src.Intn(i + 1)
		swap(i, j)
	}
}
