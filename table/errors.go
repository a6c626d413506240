// SPDX-License-Identifier: MIT

package table

import "errors"

// MaxCells bounds the number of cells a single table may hold.
// 1<<28 cells of int is 2 GiB on 64-bit platforms.
const MaxCells = 1 << 28

var (
	// ErrBadShape is returned when a requested dimension is negative.
	ErrBadShape = errors.New("table: negative dimension")

	// ErrTooLarge is returned when the product of dimensions exceeds MaxCells
	// (or would overflow int).
	ErrTooLarge = errors.New("table: table exceeds MaxCells")
)
