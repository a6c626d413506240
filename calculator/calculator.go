// Package calculator finds the shortest chain of operations that turns 1 into
// a target integer.
//
// Primitive uses the fixed operation set {+1, ×2, ×3} and a forward DP with a
// predecessor table. Reach accepts any set of increasing operations and runs a
// breadth-first search instead, since an arbitrary operation has no inverse to
// drive a DP recurrence.
package calculator

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/dynprog/table"
)

var (
	// ErrBadTarget indicates a target below 1.
	ErrBadTarget = errors.New("calculator: target must be >= 1")

	// ErrNoOps indicates Reach was called without operations.
	ErrNoOps = errors.New("calculator: at least one operation is required")

	// ErrUnreachable indicates the operations cannot reach the target from 1.
	ErrUnreachable = errors.New("calculator: target unreachable from 1")
)

// Primitive returns the shortest sequence 1 = p[0], …, p[k] = value where each
// element is the previous one plus 1, times 2 or times 3.
//
// Fill (i = 2..value), candidates in order ×3, ×2, +1:
//
//	if i%3 == 0: steps[i] = steps[i/3] + 1, pred[i] = i/3
//	if i%2 == 0 && steps[i/2]+1 < steps[i]: steps[i] = steps[i/2]+1, pred[i] = i/2
//	if steps[i-1]+1 < steps[i]: steps[i] = steps[i-1]+1, pred[i] = i-1
//
// Only strictly smaller candidates replace the current one, so on a tie the
// earlier candidate stays: Primitive(5) is [1 2 4 5], not [1 3 4 5].
// pred[1] stays 0, the sentinel that ends reconstruction.
//
// Complexity: O(value) time and memory.
func Primitive(value int) ([]int, error) {
	if value < 1 {
		return nil, ErrBadTarget
	}
	size, err := table.Span(value)
	if err != nil {
		return nil, err
	}
	steps, err := table.NewVector[int](size)
	if err != nil {
		return nil, err
	}
	pred, err := table.NewVector[int](size)
	if err != nil {
		return nil, err
	}

	for i := 2; i <= value; i++ {
		steps[i] = value
		for _, d := range [...]int{3, 2} {
			if i%d == 0 && steps[i/d]+1 < steps[i] {
				steps[i], pred[i] = steps[i/d]+1, i/d
			}
		}
		if steps[i-1]+1 < steps[i] {
			steps[i], pred[i] = steps[i-1]+1, i-1
		}
	}

	return walkBack(pred, value, steps[value]+1), nil
}

// Steps returns the minimum number of operations from 1 to value.
func Steps(value int) (int, error) {
	path, err := Primitive(value)
	if err != nil {
		return 0, err
	}

	return len(path) - 1, nil
}

// walkBack follows pred from node until the zero sentinel and returns the
// visited nodes in forward order.
func walkBack(pred []int, node, size int) []int {
	path := make([]int, 0, size)
	for ; node != 0; node = pred[node] {
		path = append(path, node)
	}
	for l, r := 0, len(path)-1; l < r; l, r = l+1, r-1 {
		path[l], path[r] = path[r], path[l]
	}

	return path
}

// Op is a single calculator operation.
type Op func(int) int

// Built-in operations of the primitive calculator.
var (
	AddOne Op = func(v int) int { return v + 1 }
	Double Op = func(v int) int { return v * 2 }
	Triple Op = func(v int) int { return v * 3 }
)

// Reach returns a shortest path from 1 to value using ops.
//
// Breadth-first search from 1: each dequeued node applies every op in the
// order given; results that overshoot value, fail to increase, or were
// already discovered are dropped. The first discovery of a node fixes its
// predecessor, so earlier ops win ties.
//
// Errors:
//   - ErrBadTarget if value < 1.
//   - ErrNoOps if ops is empty.
//   - ErrUnreachable if the search exhausts without hitting value.
//
// Complexity: O(value·len(ops)) time, O(value) memory.
func Reach(value int, ops ...Op) ([]int, error) {
	if value < 1 {
		return nil, ErrBadTarget
	}
	if len(ops) == 0 {
		return nil, ErrNoOps
	}
	size, err := table.Span(value)
	if err != nil {
		return nil, err
	}
	pred, err := table.NewVector[int](size)
	if err != nil {
		return nil, err
	}

	queue := []int{1}
	for head := 0; head < len(queue) && pred[value] == 0 && value != 1; head++ {
		cur := queue[head]
		for _, op := range ops {
			next := op(cur)
			if next <= cur || next > value || pred[next] != 0 {
				continue
			}
			pred[next] = cur
			queue = append(queue, next)
		}
	}
	if value != 1 && pred[value] == 0 {
		return nil, fmt.Errorf("value %d: %w", value, ErrUnreachable)
	}

	return walkBack(pred, value, 0), nil
}
