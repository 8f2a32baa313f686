// SPDX-License-Identifier: MIT

// Package grid defines the colored-grid data model shared by every gridscope
// package, together with the grid-level statistics.
//
// What:
//
//   - Color is a small label in [0..MaxColor]; Background (0) is reserved.
//   - Grid is a rectangular [][]Color; the empty grid (zero rows) is valid.
//   - Point and BoundingBox describe cell coordinates and inclusive extents.
//   - Rows, Columns, Dimensions, UniqueColorCount, ColorFrequency and
//     MajorityColor answer pure questions about a grid.
//
// Ingestion:
//
//   - New validates raw [][]int input once, at the boundary: rows of
//     differing length yield ErrNonRectangular, values outside the color
//     range yield ErrColorRange. Every other function assumes a valid Grid.
//
// Background semantics:
//
//   - 0 is counted like any other value by UniqueColorCount and
//     ColorFrequency; it never seeds or joins an object (see gridgraph).
//
// Determinism:
//
//   - MajorityColor breaks ties by the lowest color value.
//   - UniqueColors is returned in ascending order.
//
// Complexity:
//
//   - All statistics: O(R×C) time; ColorFrequency uses O(K) memory where K is
//     the number of distinct colors.
package grid
