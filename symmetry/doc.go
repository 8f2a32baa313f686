// SPDX-License-Identifier: MIT

// Package symmetry provides exact symmetry predicates over any rectangular
// grid.Grid: a whole puzzle grid or a subgrid extracted for one object.
//
// Predicates:
//
//   - Vertical:     every row reads the same left-to-right and right-to-left.
//   - Horizontal:   every column reads the same top-to-bottom and bottom-to-top.
//   - Diagonal:     g[i][j] == g[j][i] (main-diagonal mirror); square grids only.
//   - Rotational90: g[r][c] == g[c][n-1-r]; invariance under a quarter turn,
//     square grids only.
//
// Shape policy:
//
//   - The empty grid satisfies all four predicates (vacuous truth).
//   - A non-square, non-empty grid is never Diagonal or Rotational90.
//   - Predicates never fail and never panic on valid grids.
//
// Each predicate is invariant under its own transform: a grid and its
// left-right mirror agree on Vertical, a grid and its quarter turn agree on
// Rotational90.
//
// Complexity: every predicate is O(R×C) time, O(1) memory, and short-circuits
// on the first mismatch in row-major order.
package symmetry
