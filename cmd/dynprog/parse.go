package main

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/katalvlaran/dynprog/knapsack"
)

// parseInts parses a comma-separated list of integers. ok is false when any
// element is not an integer.
func parseInts(s string) (vals []int, ok bool) {
	if s == "" {
		return []int{}, true
	}
	parts := strings.Split(s, ",")
	vals = make([]int, len(parts))
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, false
		}
		vals[i] = v
	}

	return vals, true
}

// intSeqs parses every arg as an integer list. It reports false unless at
// least one arg contains a comma and all of them parse, so "123" alone is
// the character sequence 1 2 3 rather than the single integer 123.
func intSeqs(args []string) ([][]int, bool) {
	if !slices.ContainsFunc(args, func(a string) bool { return strings.Contains(a, ",") }) {
		return nil, false
	}
	seqs := make([][]int, len(args))
	for i, a := range args {
		v, ok := parseInts(a)
		if !ok {
			return nil, false
		}
		seqs[i] = v
	}

	return seqs, true
}

// runeSeqs turns every arg into its runes.
func runeSeqs(args []string) [][]rune {
	seqs := make([][]rune, len(args))
	for i, a := range args {
		seqs[i] = []rune(a)
	}

	return seqs
}

// parseItem parses "weight:value".
func parseItem(s string) (knapsack.Item, error) {
	w, v, found := strings.Cut(s, ":")
	if !found {
		return knapsack.Item{}, fmt.Errorf("item %q: want weight:value", s)
	}
	weight, err := strconv.Atoi(strings.TrimSpace(w))
	if err != nil {
		return knapsack.Item{}, fmt.Errorf("item %q weight: %w", s, err)
	}
	value, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return knapsack.Item{}, fmt.Errorf("item %q value: %w", s, err)
	}

	return knapsack.Item{Weight: weight, Value: value}, nil
}
