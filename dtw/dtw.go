package dtw

import (
	"fmt"
	"math"

	"github.com/katalvlaran/dynprog/table"
)

// DTW — Dynamic Time Warping
//
// Algorithm Outline (FullMatrix):
//  1. Let n = len(a), m = len(b). Allocate (n+1)×(m+1) table D.
//  2. Initialize D[0][0] = 0, every other boundary cell = +∞.
//  3. For i = 1..n, j = 1..m (and |i-j| ≤ Window when constrained):
//     cost  = |a[i-1] - b[j-1]|
//     D[i][j] = cost + min(D[i-1][j] + p, D[i][j-1] + p, D[i-1][j-1])
//     Cells outside the window stay +∞.
//  4. distance = D[n][m].
//  5. With ReturnPath, backtrack from (n,m) to (1,1) choosing the cheapest
//     predecessor, diagonal first on ties.
//
// TwoRows and NoMemory run the same recurrence over two rows or a single row.
//
// DTW returns (distance, path, error). A nil opts means DefaultOptions().
// When the window makes (n,m) unreachable the distance is +Inf and no path is
// returned.
//
// Errors:
//   - ErrEmptyInput      — a or b is empty.
//   - ErrBadInput        — invalid options.
//   - ErrPathNeedsMatrix — ReturnPath without FullMatrix.
//   - table.ErrTooLarge  — the FullMatrix table exceeds table.MaxCells.
func DTW(a, b []float64, opts *Options) (float64, []Coord, error) {
	n, m := len(a), len(b)
	if n == 0 || m == 0 {
		return 0, nil, ErrEmptyInput
	}
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if err := validate(o); err != nil {
		return 0, nil, err
	}

	switch o.MemoryMode {
	case TwoRows:
		dist, err := twoRows(a, b, o)

		return dist, nil, err
	case NoMemory:
		dist, err := oneRow(a, b, o)

		return dist, nil, err
	}

	d, err := fullMatrix(a, b, o)
	if err != nil {
		return 0, nil, err
	}
	dist := d.At(n, m)
	if !o.ReturnPath || math.IsInf(dist, 1) {
		return dist, nil, nil
	}

	return dist, backtrack(d, o.SlopePenalty), nil
}

// validate checks option ranges and combinations.
func validate(o Options) error {
	switch {
	case o.Window < -1:
		return fmt.Errorf("window %d: %w", o.Window, ErrBadInput)
	case o.SlopePenalty < 0 || math.IsNaN(o.SlopePenalty):
		return fmt.Errorf("slope penalty %v: %w", o.SlopePenalty, ErrBadInput)
	case o.MemoryMode < FullMatrix || o.MemoryMode > NoMemory:
		return fmt.Errorf("memory mode %d: %w", o.MemoryMode, ErrBadInput)
	case o.ReturnPath && o.MemoryMode != FullMatrix:
		return ErrPathNeedsMatrix
	}

	return nil
}

// outside reports whether cell (i,j) falls outside the Sakoe–Chiba band.
func outside(i, j, window int) bool {
	return window >= 0 && abs(i-j) > window
}

// fullMatrix fills and returns the complete table.
func fullMatrix(a, b []float64, o Options) (*table.Grid[float64], error) {
	n, m := len(a), len(b)
	d, err := table.NewGrid[float64](n+1, m+1)
	if err != nil {
		return nil, err
	}
	d.Fill(math.Inf(1))
	d.Set(0, 0, 0)

	p := o.SlopePenalty
	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			if outside(i, j, o.Window) {
				continue
			}
			cost := math.Abs(a[i-1] - b[j-1])
			d.Set(i, j, cost+min(d.At(i-1, j)+p, d.At(i, j-1)+p, d.At(i-1, j-1)))
		}
	}

	return d, nil
}

// twoRows runs the recurrence over alternating rows i%2.
func twoRows(a, b []float64, o Options) (float64, error) {
	n, m := len(a), len(b)
	d, err := table.NewGrid[float64](2, m+1)
	if err != nil {
		return 0, err
	}
	inf := math.Inf(1)
	d.Fill(inf)
	d.Set(0, 0, 0)

	p := o.SlopePenalty
	for i := 1; i <= n; i++ {
		prev, curr := d.Row((i-1)%2), d.Row(i%2)
		curr[0] = inf
		for j := 1; j <= m; j++ {
			if outside(i, j, o.Window) {
				curr[j] = inf
				continue
			}
			cost := math.Abs(a[i-1] - b[j-1])
			curr[j] = cost + min(prev[j]+p, curr[j-1]+p, prev[j-1])
		}
	}

	return d.At(n%2, m), nil
}

// oneRow updates a single row in place, carrying the previous row's
// diagonal cell in diag.
func oneRow(a, b []float64, o Options) (float64, error) {
	n, m := len(a), len(b)
	row, err := table.NewVector[float64](m + 1)
	if err != nil {
		return 0, err
	}
	inf := math.Inf(1)
	for j := 1; j <= m; j++ {
		row[j] = inf
	}

	p := o.SlopePenalty
	for i := 1; i <= n; i++ {
		diag := row[0]
		row[0] = inf
		for j := 1; j <= m; j++ {
			up := row[j]
			if outside(i, j, o.Window) {
				row[j] = inf
			} else {
				row[j] = math.Abs(a[i-1]-b[j-1]) + min(up+p, row[j-1]+p, diag)
			}
			diag = up
		}
	}

	return row[m], nil
}

// backtrack walks from (n,m) to (1,1) and returns the path in forward order.
func backtrack(d *table.Grid[float64], p float64) []Coord {
	i, j := d.Rows()-1, d.Cols()-1
	path := make([]Coord, 0, i+j)
	for {
		path = append(path, Coord{I: i - 1, J: j - 1})
		if i == 1 && j == 1 {
			break
		}
		diag, up, left := d.At(i-1, j-1), d.At(i-1, j)+p, d.At(i, j-1)+p
		switch {
		case diag <= up && diag <= left:
			i, j = i-1, j-1
		case up <= left:
			i--
		default:
			j--
		}
	}
	for l, r := 0, len(path)-1; l < r; l, r = l+1, r-1 {
		path[l], path[r] = path[r], path[l]
	}

	return path
}

// abs returns the absolute value of an int.
func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
