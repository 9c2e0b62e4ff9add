package random

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Deterministic(t *testing.T) {
	a := New(42)
	b := New(42)
	for i := 0; i < 50; i++ {
		assert.Equal(t, a.Intn(1000), b.Intn(1000))
	}
}

func TestNewSeed(t *testing.T) {
	_, err := NewSeed()
	require.NoError(t, err)
}

func TestBetween_Bounds(t *testing.T) {
	src := New(7)
	for i := 0; i < 500; i++ {
		v := Between(src, 1, 20)
		require.GreaterOrEqual(t, v, 1)
		require.LessOrEqual(t, v, 20)
	}
}

func TestShuffle_IsPermutation(t *testing.T) {
	src := New(3)
	values := []int{1, 2, 3, 4, 5, 6, 7, 8, 9}
	Shuffle(src, len(values), func(i, j int) {
		values[i], values[j] = values[j], values[i]
	})

	sorted := append([]int(nil), values...)
	sort.Ints(sorted)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9}, sorted)
}

func TestShuffle_WalksFromLastIndex(t *testing.T) {
	var bounds []int
	src := SourceFunc(func(n int) int {
		bounds = append(bounds, n)
		return 0
	})
	Shuffle(src, 4, func(i, j int) {})
	assert.Equal(t, []int{4, 3, 2}, bounds)
}

func TestShuffle_ZeroSwapIsIdentity(t *testing.T) {
	src := SourceFunc(func(n int) int { return n - 1 })
	values := []string{"A", "B", "C"}
	Shuffle(src, len(values), func(i, j int) {
		values[i], values[j] = values[j], values[i]
	})
	assert.Equal(t, []string{"A", "B", "C"}, values)
}
