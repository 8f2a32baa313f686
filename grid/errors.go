// SPDX-License-Identifier: MIT

package grid

import "errors"

// Sentinel errors for grid ingestion and statistics.
// Callers match them with errors.Is; context is added with %w at call sites.
var (
	// ErrNonRectangular indicates rows of differing lengths (a malformed grid).
	ErrNonRectangular = errors.New("grid: all rows must have the same length")

	// ErrColorRange indicates a cell value outside [0..MaxColor].
	ErrColorRange = errors.New("grid: cell value out of color range")

	// ErrEmptyGrid indicates a query that is undefined on a grid with no cells,
	// such as MajorityColor.
	ErrEmptyGrid = errors.New("grid: grid has no cells")
)
