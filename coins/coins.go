// Package coins solves the minimum coin exchange problem: the fewest coins,
// drawn with unlimited supply from a set of denominations, that sum exactly
// to a target value.
//
// Algorithm:
//
//	T[0] = 0
//	T[i] = 1 + min(T[i-c]) over denominations c ≤ i with T[i-c] reachable
//	T[i] = unreachable if no such c exists
//
// An unreachable slot is kept distinct from "zero coins", so MinCoins reports
// ErrUnreachable instead of returning 0 for values that cannot be composed.
//
// Complexity: O(V·|coins|) time, O(V) memory.
package coins

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/dynprog/table"
)

var (
	// ErrNegativeValue indicates a negative target value.
	ErrNegativeValue = errors.New("coins: value must be >= 0")

	// ErrNoCoins indicates an empty denomination set.
	ErrNoCoins = errors.New("coins: at least one denomination is required")

	// ErrBadDenomination indicates a zero or negative denomination.
	ErrBadDenomination = errors.New("coins: denominations must be > 0")

	// ErrUnreachable indicates the value cannot be composed from the denominations.
	ErrUnreachable = errors.New("coins: value cannot be composed from denominations")
)

// unreachable marks a slot no combination of denominations sums to.
const unreachable = -1

// MinCoins returns the minimum number of coins summing exactly to value.
//
// Errors:
//   - ErrNegativeValue, ErrNoCoins, ErrBadDenomination on invalid input.
//   - ErrUnreachable if value > 0 and no combination sums to it.
//   - table.ErrTooLarge if value >= table.MaxCells.
func MinCoins(value int, coins []int) (int, error) {
	slots, _, err := fill(value, coins)
	if err != nil {
		return 0, err
	}
	if slots[value] == unreachable {
		return 0, ErrUnreachable
	}

	return slots[value], nil
}

// Exchange returns one optimal multiset of coins summing to value, largest
// denomination first. len(result) equals MinCoins(value, coins).
// Exchange(0, coins) returns an empty, non-nil slice.
func Exchange(value int, coins []int) ([]int, error) {
	slots, last, err := fill(value, coins)
	if err != nil {
		return nil, err
	}
	if slots[value] == unreachable {
		return nil, ErrUnreachable
	}

	used := make([]int, 0, slots[value])
	for v := value; v > 0; v -= last[v] {
		used = append(used, last[v])
	}
	sort.Sort(sort.Reverse(sort.IntSlice(used)))

	return used, nil
}

// fill validates input and builds the slot table together with the last
// denomination chosen for every reachable slot.
func fill(value int, coins []int) (slots, last []int, err error) {
	if value < 0 {
		return nil, nil, ErrNegativeValue
	}
	if len(coins) == 0 {
		return nil, nil, ErrNoCoins
	}
	for i, c := range coins {
		if c <= 0 {
			return nil, nil, fmt.Errorf("coins[%d]=%d: %w", i, c, ErrBadDenomination)
		}
	}

	size, err := table.Span(value)
	if err != nil {
		return nil, nil, err
	}
	if slots, err = table.NewVector[int](size); err != nil {
		return nil, nil, err
	}
	if last, err = table.NewVector[int](size); err != nil {
		return nil, nil, err
	}

	for i := 1; i <= value; i++ {
		best := unreachable
		for _, c := range coins {
			if c > i || slots[i-c] == unreachable {
				continue
			}
			if cand := slots[i-c] + 1; best == unreachable || cand < best {
				best = cand
				last[i] = c
			}
		}
		slots[i] = best
	}

	return slots, last, nil
}
