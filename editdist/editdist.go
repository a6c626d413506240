// Package editdist computes the Levenshtein edit distance between two
// sequences and recovers an optimal edit script.
//
// Algorithm (Wagner–Fischer, full table):
//  1. Let n = len(a), m = len(b). Allocate (n+1)×(m+1) table D.
//  2. Boundaries: D[i][0] = i, D[0][j] = j.
//  3. For i = 1..n, j = 1..m:
//     D[i][j] = D[i-1][j-1]                                   if a[i-1] == b[j-1]
//     D[i][j] = 1 + min(D[i-1][j], D[i][j-1], D[i-1][j-1])    otherwise
//  4. distance = D[n][m].
//
// Complexity: O(n·m) time and memory; no early termination.
package editdist

import "github.com/katalvlaran/dynprog/table"

// Kind is the type of a single edit.
type Kind int

const (
	// Keep leaves a[I] in place as b[J].
	Keep Kind = iota
	// Substitute replaces a[I] with b[J].
	Substitute
	// Insert inserts b[J] before a[I].
	Insert
	// Delete removes a[I].
	Delete
)

// String returns a one-letter mnemonic for k.
func (k Kind) String() string {
	switch k {
	case Keep:
		return "="
	case Substitute:
		return "~"
	case Insert:
		return "+"
	case Delete:
		return "-"
	default:
		return "?"
	}
}

// Edit is one step of an edit script. I indexes a and J indexes b; for an
// Insert, I is the position in a the element goes before, for a Delete, J is
// the position in b the removal happens before.
type Edit struct {
	Kind Kind
	I, J int
}

// Distance returns the minimum number of single-element insertions,
// deletions and substitutions turning a into b.
// The only error is table.ErrTooLarge for oversized inputs.
func Distance[T comparable](a, b []T) (int, error) {
	d, err := build(a, b)
	if err != nil {
		return 0, err
	}

	return d.At(len(a), len(b)), nil
}

// Strings is Distance over the runes of a and b.
func Strings(a, b string) (int, error) {
	return Distance([]rune(a), []rune(b))
}

// Script returns an optimal edit script from a to b. The number of non-Keep
// edits equals Distance(a, b). When several predecessors are optimal the
// backtrack prefers the diagonal, then Delete, then Insert.
func Script[T comparable](a, b []T) ([]Edit, error) {
	d, err := build(a, b)
	if err != nil {
		return nil, err
	}

	var script []Edit
	i, j := len(a), len(b)
	for i > 0 || j > 0 {
		switch {
		case i > 0 && j > 0 && a[i-1] == b[j-1] && d.At(i, j) == d.At(i-1, j-1):
			script = append(script, Edit{Kind: Keep, I: i - 1, J: j - 1})
			i, j = i-1, j-1
		case i > 0 && j > 0 && d.At(i, j) == d.At(i-1, j-1)+1:
			script = append(script, Edit{Kind: Substitute, I: i - 1, J: j - 1})
			i, j = i-1, j-1
		case i > 0 && d.At(i, j) == d.At(i-1, j)+1:
			script = append(script, Edit{Kind: Delete, I: i - 1, J: j})
			i--
		default:
			script = append(script, Edit{Kind: Insert, I: i, J: j - 1})
			j--
		}
	}
	for l, r := 0, len(script)-1; l < r; l, r = l+1, r-1 {
		script[l], script[r] = script[r], script[l]
	}

	return script, nil
}

// build allocates and fills the full distance table.
func build[T comparable](a, b []T) (*table.Grid[int], error) {
	n, m := len(a), len(b)
	d, err := table.NewGrid[int](n+1, m+1)
	if err != nil {
		return nil, err
	}
	for i := 0; i <= n; i++ {
		d.Set(i, 0, i)
	}
	for j := 0; j <= m; j++ {
		d.Set(0, j, j)
	}

	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			if a[i-1] == b[j-1] {
				d.Set(i, j, d.At(i-1, j-1))
				continue
			}
			d.Set(i, j, 1+min(d.At(i-1, j), d.At(i, j-1), d.At(i-1, j-1)))
		}
	}

	return d, nil
}
