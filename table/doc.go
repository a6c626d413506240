// SPDX-License-Identifier: MIT

// Package table provides the dense storage shared by every dynamic-programming
// routine in dynprog.
//
// Purpose:
//   - One contiguous row-major buffer per table instead of a slice of slices,
//     so a DP fill allocates once and walks memory linearly.
//   - Explicit index formulas: Grid offset = i*cols + j, Cube offset = (i*d1 + j)*d2 + k.
//   - Shape guards at construction: negative dimensions return ErrBadShape and
//     tables whose cell count exceeds MaxCells return ErrTooLarge, both before
//     anything is allocated.
//
// Hot-path contract:
//   - At/Set do not return errors. Only algorithms in this module index tables,
//     and they stay inside the shape they asked for; an out-of-shape index is a
//     programmer error and panics through the runtime slice check.
//
// Complexity quicksheet:
//   - NewVector/NewGrid/NewCube: O(cells) zero-init; At/Set: O(1); Fill: O(cells).
package table
