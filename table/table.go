// SPDX-License-Identifier: MIT

package table

import "fmt"

// Number is the set of cell types a DP table may hold.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// cells returns the product of dims after checking every dimension is
// non-negative and the product stays within MaxCells.
//
// Implementation:
//   - Stage 1: reject any negative dimension with ErrBadShape.
//   - Stage 2: multiply progressively, rejecting as soon as the running product
//     would exceed MaxCells (this also rules out int overflow).
//
// A zero dimension yields zero cells and is legal.
func cells(dims ...int) (int, error) {
	for _, d := range dims {
		if d < 0 {
			return 0, fmt.Errorf("shape %v: %w", dims, ErrBadShape)
		}
	}
	total := 1
	for _, d := range dims {
		if d == 0 {
			return 0, nil
		}
		if total > MaxCells/d {
			return 0, fmt.Errorf("shape %v: %w", dims, ErrTooLarge)
		}
		total *= d
	}

	return total, nil
}

// Span returns n+1, the length of a table indexed 0..n. It rejects n >= MaxCells
// with ErrTooLarge so that n+1 cannot wrap around for n near math.MaxInt.
func Span(n int) (int, error) {
	if n < 0 {
		return 0, fmt.Errorf("extent %d: %w", n, ErrBadShape)
	}
	if n >= MaxCells {
		return 0, fmt.Errorf("extent %d: %w", n, ErrTooLarge)
	}

	return n + 1, nil
}

// NewVector allocates a zeroed one-dimensional table of length n.
func NewVector[T Number](n int) ([]T, error) {
	size, err := cells(n)
	if err != nil {
		return nil, err
	}

	return make([]T, size), nil
}

// Grid is a row-major two-dimensional table.
//   - rows, cols hold the shape.
//   - data has length rows*cols; cell (i,j) lives at i*cols + j.
type Grid[T Number] struct {
	rows, cols int
	data       []T
}

// NewGrid allocates a zeroed rows×cols table.
//
// Errors:
//   - ErrBadShape if rows or cols is negative.
//   - ErrTooLarge if rows*cols exceeds MaxCells.
//
// Complexity: Time O(rows*cols), Space O(rows*cols).
func NewGrid[T Number](rows, cols int) (*Grid[T], error) {
	size, err := cells(rows, cols)
	if err != nil {
		return nil, err
	}

	return &Grid[T]{rows: rows, cols: cols, data: make([]T, size)}, nil
}

// Rows returns the number of rows.
func (g *Grid[T]) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid[T]) Cols() int { return g.cols }

// At returns cell (i,j).
func (g *Grid[T]) At(i, j int) T { return g.data[i*g.cols+j] }

// Set stores v at cell (i,j).
func (g *Grid[T]) Set(i, j int, v T) { g.data[i*g.cols+j] = v }

// Row returns row i as a slice aliasing the table; writes are visible in g.
func (g *Grid[T]) Row(i int) []T {
	off := i * g.cols

	return g.data[off : off+g.cols : off+g.cols]
}

// Fill sets every cell to v.
func (g *Grid[T]) Fill(v T) {
	for i := range g.data {
		g.data[i] = v
	}
}

// Cube is a row-major three-dimensional table; cell (i,j,k) lives at
// (i*d1 + j)*d2 + k.
type Cube[T Number] struct {
	d0, d1, d2 int
	data       []T
}

// NewCube allocates a zeroed d0×d1×d2 table with the same guards as NewGrid.
func NewCube[T Number](d0, d1, d2 int) (*Cube[T], error) {
	size, err := cells(d0, d1, d2)
	if err != nil {
		return nil, err
	}

	return &Cube[T]{d0: d0, d1: d1, d2: d2, data: make([]T, size)}, nil
}

// Dims returns the three dimensions.
func (c *Cube[T]) Dims() (int, int, int) { return c.d0, c.d1, c.d2 }

// At returns cell (i,j,k).
func (c *Cube[T]) At(i, j, k int) T { return c.data[(i*c.d1+j)*c.d2+k] }

// Set stores v at cell (i,j,k).
func (c *Cube[T]) Set(i, j, k int, v T) { c.data[(i*c.d1+j)*c.d2+k] = v }
