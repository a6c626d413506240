// Package lcs computes longest common subsequences of two and three
// sequences, plus the longest contiguous run shared by any number of
// sequences after common-item filtering.
//
// Pairwise table (n+1)×(m+1), row 0 and column 0 are the empty prefixes:
//
//	D[i][j] = D[i-1][j-1] + 1            if a[i-1] == b[j-1]
//	D[i][j] = max(D[i-1][j], D[i][j-1])  otherwise
//
// The triple table adds a third dimension; a match needs all three elements
// equal and a mismatch drops the current element of one sequence.
//
// CommonRun answers a different question (a contiguous run, not a
// subsequence) and is not a faster Length2/Length3.
package lcs

import (
	"errors"
	"slices"

	"github.com/katalvlaran/dynprog/table"
)

// ErrNoSequences indicates CommonRun was called without sequences.
var ErrNoSequences = errors.New("lcs: at least one sequence is required")

// Length2 returns the length of the longest common subsequence of a and b.
//
// Complexity: O(n·m) time and memory.
func Length2[T comparable](a, b []T) (int, error) {
	d, err := build2(a, b)
	if err != nil {
		return 0, err
	}

	return d.At(len(a), len(b)), nil
}

// Subsequence2 returns one longest common subsequence of a and b.
// On equal neighbours the backtrack drops from a first.
func Subsequence2[T comparable](a, b []T) ([]T, error) {
	d, err := build2(a, b)
	if err != nil {
		return nil, err
	}

	i, j := len(a), len(b)
	out := make([]T, d.At(i, j))
	for k := len(out) - 1; k >= 0; {
		switch {
		case a[i-1] == b[j-1]:
			out[k] = a[i-1]
			k--
			i, j = i-1, j-1
		case d.At(i-1, j) >= d.At(i, j-1):
			i--
		default:
			j--
		}
	}

	return out, nil
}

// build2 fills the pairwise table.
func build2[T comparable](a, b []T) (*table.Grid[int], error) {
	n, m := len(a), len(b)
	d, err := table.NewGrid[int](n+1, m+1)
	if err != nil {
		return nil, err
	}
	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			if a[i-1] == b[j-1] {
				d.Set(i, j, d.At(i-1, j-1)+1)
			} else {
				d.Set(i, j, max(d.At(i-1, j), d.At(i, j-1)))
			}
		}
	}

	return d, nil
}

// Length3 returns the length of the longest subsequence common to a, b and c.
// It returns 0 without allocating when any input is empty.
//
// Complexity: O(n·m·o) time and memory.
func Length3[T comparable](a, b, c []T) (int, error) {
	n, m, o := len(a), len(b), len(c)
	if n == 0 || m == 0 || o == 0 {
		return 0, nil
	}
	d, err := table.NewCube[int](n+1, m+1, o+1)
	if err != nil {
		return 0, err
	}

	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			for k := 1; k <= o; k++ {
				if a[i-1] == b[j-1] && b[j-1] == c[k-1] {
					d.Set(i, j, k, d.At(i-1, j-1, k-1)+1)
					continue
				}
				d.Set(i, j, k, max(d.At(i-1, j, k), d.At(i, j-1, k), d.At(i, j, k-1)))
			}
		}
	}

	return d.At(n, m, o), nil
}

// CommonRun returns the length of the longest contiguous run shared by all
// seqs after each sequence is filtered down to the items present in every
// sequence (order preserved).
//
// Implementation:
//   - Stage 1: intersect the item sets of all sequences.
//   - Stage 2: filter every sequence to common items.
//   - Stage 3: for k from the shortest filtered length down to 1, look for a
//     length-k window of the shortest sequence that occurs in every other one;
//     the first k that succeeds is the answer.
//
// Filtering can make items adjacent that were not adjacent in the input, so
// the run is measured over the filtered sequences only.
//
// Errors:
//   - ErrNoSequences if seqs is empty.
//
// Complexity: O(L·Σ|s|·L) window comparisons in the worst case, where L is
// the shortest filtered length.
func CommonRun[T comparable](seqs ...[]T) (int, error) {
	if len(seqs) == 0 {
		return 0, ErrNoSequences
	}
	for _, s := range seqs {
		if len(s) == 0 {
			return 0, nil
		}
	}

	common := commonItems(seqs)
	filtered := make([][]T, len(seqs))
	shortest := 0
	for i, s := range seqs {
		filtered[i] = filter(s, common)
		if len(filtered[i]) < len(filtered[shortest]) {
			shortest = i
		}
	}

	ref := filtered[shortest]
	for k := len(ref); k > 0; k-- {
		for start := 0; start+k <= len(ref); start++ {
			window := ref[start : start+k]
			if inAll(window, filtered) {
				return k, nil
			}
		}
	}

	return 0, nil
}

// commonItems returns the set of items present in every sequence.
func commonItems[T comparable](seqs [][]T) map[T]struct{} {
	common := make(map[T]struct{}, len(seqs[0]))
	for _, v := range seqs[0] {
		common[v] = struct{}{}
	}
	for _, s := range seqs[1:] {
		seen := make(map[T]struct{}, len(s))
		for _, v := range s {
			if _, ok := common[v]; ok {
				seen[v] = struct{}{}
			}
		}
		common = seen
	}

	return common
}

// filter returns the items of s that belong to keep, in order.
func filter[T comparable](s []T, keep map[T]struct{}) []T {
	out := make([]T, 0, len(s))
	for _, v := range s {
		if _, ok := keep[v]; ok {
			out = append(out, v)
		}
	}

	return out
}

// inAll reports whether window occurs contiguously in every sequence.
func inAll[T comparable](window []T, seqs [][]T) bool {
	for _, s := range seqs {
		if !containsRun(s, window) {
			return false
		}
	}

	return true
}

// containsRun reports whether w occurs as a contiguous run of s.
func containsRun[T comparable](s, w []T) bool {
	for i := 0; i+len(w) <= len(s); i++ {
		if slices.Equal(s[i:i+len(w)], w) {
			return true
		}
	}

	return false
}
