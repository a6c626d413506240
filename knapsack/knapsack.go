// Package knapsack maximizes the total value of items chosen under a weight
// capacity, each item used at most once (0/1 knapsack).
//
// Table M has shape (capacity+1)×(n+1), indexed [capacity w][first i items]:
//
//	M[w][0] = 0
//	M[w][i] = M[w][i-1]                                         if weight_i > w
//	M[w][i] = max(M[w][i-1], value_i + M[w-weight_i][i-1])      otherwise
//
// The answer is M[capacity][n]. Complexity: O(capacity·n) time and memory.
package knapsack

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/dynprog/table"
)

var (
	// ErrNegativeCapacity indicates a capacity below zero.
	ErrNegativeCapacity = errors.New("knapsack: capacity must be >= 0")

	// ErrBadItem indicates an item with negative weight or value.
	ErrBadItem = errors.New("knapsack: item weight and value must be >= 0")
)

// Item is a candidate with a weight and a value.
type Item struct {
	Weight int
	Value  int
}

// Selection is an optimal choice of items.
type Selection struct {
	// Indexes of the chosen items in the input, ascending.
	Indexes []int
	// Weight is the total weight of the chosen items (≤ capacity).
	Weight int
	// Value is the total value of the chosen items.
	Value int
}

// MaxValue returns the largest total value reachable without exceeding capacity.
//
// Errors:
//   - ErrNegativeCapacity if capacity < 0.
//   - ErrBadItem (wrapped with the item index) for a negative weight or value.
//   - table.ErrTooLarge for oversized tables.
func MaxValue(capacity int, items []Item) (int, error) {
	m, err := build(capacity, items)
	if err != nil {
		return 0, err
	}

	return m.At(capacity, len(items)), nil
}

// Select returns one optimal selection. Walking i from n down to 1, item i-1
// is taken exactly when M[w][i] differs from M[w][i-1].
func Select(capacity int, items []Item) (Selection, error) {
	m, err := build(capacity, items)
	if err != nil {
		return Selection{}, err
	}

	sel := Selection{Value: m.At(capacity, len(items))}
	w := capacity
	for i := len(items); i > 0; i-- {
		if m.At(w, i) == m.At(w, i-1) {
			continue
		}
		sel.Indexes = append(sel.Indexes, i-1)
		sel.Weight += items[i-1].Weight
		w -= items[i-1].Weight
	}
	for l, r := 0, len(sel.Indexes)-1; l < r; l, r = l+1, r-1 {
		sel.Indexes[l], sel.Indexes[r] = sel.Indexes[r], sel.Indexes[l]
	}

	return sel, nil
}

// build validates input and fills M.
func build(capacity int, items []Item) (*table.Grid[int], error) {
	if capacity < 0 {
		return nil, ErrNegativeCapacity
	}
	for i, it := range items {
		if it.Weight < 0 || it.Value < 0 {
			return nil, fmt.Errorf("items[%d]=%+v: %w", i, it, ErrBadItem)
		}
	}

	n := len(items)
	rows, err := table.Span(capacity)
	if err != nil {
		return nil, err
	}
	m, err := table.NewGrid[int](rows, n+1)
	if err != nil {
		return nil, err
	}
	for w := 0; w <= capacity; w++ {
		row := m.Row(w)
		for i := 1; i <= n; i++ {
			it := items[i-1]
			row[i] = row[i-1]
			if it.Weight <= w {
				row[i] = max(row[i], it.Value+m.At(w-it.Weight, i-1))
			}
		}
	}

	return m, nil
}
