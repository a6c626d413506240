package knapsack_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/dynprog/knapsack"
	"github.com/katalvlaran/dynprog/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// bruteForce enumerates every subset of items.
func bruteForce(capacity int, items []knapsack.Item) int {
	best := 0
	for mask := 0; mask < 1<<len(items); mask++ {
		w, v := 0, 0
		for i, it := range items {
			if mask&(1<<i) != 0 {
				w += it.Weight
				v += it.Value
			}
		}
		if w <= capacity && v > best {
			best = v
		}
	}

	return best
}

// TestMaxValue_Known checks textbook instances.
func TestMaxValue_Known(t *testing.T) {
	items := []knapsack.Item{{6, 30}, {3, 14}, {4, 16}, {2, 9}}
	v, err := knapsack.MaxValue(10, items)
	require.NoError(t, err)
	assert.Equal(t, 46, v)

	bars := []knapsack.Item{{1, 1}, {4, 4}, {8, 8}}
	v, err = knapsack.MaxValue(10, bars)
	require.NoError(t, err)
	assert.Equal(t, 9, v)

	v, err = knapsack.MaxValue(0, items)
	require.NoError(t, err)
	assert.Zero(t, v)

	v, err = knapsack.MaxValue(5, nil)
	require.NoError(t, err)
	assert.Zero(t, v)

	// Zero-weight items are always worth taking.
	v, err = knapsack.MaxValue(0, []knapsack.Item{{0, 5}, {1, 100}})
	require.NoError(t, err)
	assert.Equal(t, 5, v)
}

// TestMaxValue_Preconditions ensures invalid input errors before allocation.
func TestMaxValue_Preconditions(t *testing.T) {
	_, err := knapsack.MaxValue(-1, nil)
	assert.ErrorIs(t, err, knapsack.ErrNegativeCapacity)

	_, err = knapsack.MaxValue(10, []knapsack.Item{{1, 1}, {-1, 3}})
	assert.ErrorIs(t, err, knapsack.ErrBadItem)
	assert.Contains(t, err.Error(), "items[1]")

	_, err = knapsack.MaxValue(10, []knapsack.Item{{1, -3}})
	assert.ErrorIs(t, err, knapsack.ErrBadItem)

	_, err = knapsack.MaxValue(table.MaxCells, []knapsack.Item{{1, 1}})
	assert.ErrorIs(t, err, table.ErrTooLarge)

	_, err = knapsack.Select(math.MaxInt, []knapsack.Item{{1, 1}})
	assert.ErrorIs(t, err, table.ErrTooLarge)
}

// TestMaxValue_BruteForce compares against exhaustive subset search for ≤ 12 items, capacity ≤ 50.
func TestMaxValue_BruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(2024))
	for trial := 0; trial < 400; trial++ {
		n := rng.Intn(13)
		capacity := rng.Intn(51)
		items := make([]knapsack.Item, n)
		for i := range items {
			items[i] = knapsack.Item{Weight: rng.Intn(20), Value: rng.Intn(50)}
		}

		want := bruteForce(capacity, items)
		got, err := knapsack.MaxValue(capacity, items)
		require.NoError(t, err)
		require.Equal(t, want, got, "capacity=%d items=%v", capacity, items)

		sel, err := knapsack.Select(capacity, items)
		require.NoError(t, err)
		assert.Equal(t, want, sel.Value)
		assert.LessOrEqual(t, sel.Weight, capacity)

		w, v := 0, 0
		for i, idx := range sel.Indexes {
			if i > 0 {
				assert.Less(t, sel.Indexes[i-1], idx, "indexes must be ascending and unique")
			}
			w += items[idx].Weight
			v += items[idx].Value
		}
		assert.Equal(t, sel.Weight, w)
		assert.Equal(t, sel.Value, v)
	}
}

// TestSelect_Known reconstructs the textbook choice.
func TestSelect_Known(t *testing.T) {
	items := []knapsack.Item{{6, 30}, {3, 14}, {4, 16}, {2, 9}}
	sel, err := knapsack.Select(10, items)
	require.NoError(t, err)
	assert.Equal(t, knapsack.Selection{Indexes: []int{0, 2}, Weight: 10, Value: 46}, sel)

	_, err = knapsack.Select(-5, items)
	assert.ErrorIs(t, err, knapsack.ErrNegativeCapacity)
}
