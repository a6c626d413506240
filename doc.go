// Package dynprog is a collection of dynamic-programming solvers for classic
// optimization problems over sequences and weighted item sets.
//
// What is inside:
//
//	coins/      — minimum coin exchange, with the coins used
//	calculator/ — shortest +1/×2/×3 chain from 1 to n, or BFS over custom ops
//	editdist/   — Levenshtein distance and edit scripts
//	lcs/        — longest common subsequence of 2 and 3 sequences,
//	              and the filtered longest common contiguous run
//	knapsack/   — 0/1 knapsack value and selection
//	dtw/        — Dynamic Time Warping over numeric series
//	table/      — flat row-major DP tables shared by all of the above
//
// Every solver is a pure function: tables are allocated per call, no state is
// shared, and all calls are safe for concurrent use. Inputs are validated
// before a table is allocated; a precondition violation is always an error,
// never a zero result.
//
// Quick example:
//
//	d, _ := editdist.Strings("editing", "distance") // 5
//	n, _ := lcs.Length2([]int{2, 7, 8, 3}, []int{5, 2, 8, 7}) // 2
//
// The cmd/dynprog command exposes every solver on the command line.
package dynprog
