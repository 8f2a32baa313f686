// SPDX-License-Identifier: MIT

package grid

import "fmt"

// New validates raw integer rows and converts them into a Grid.
// It deep-copies the input, so later changes to values do not leak in.
// Returns ErrNonRectangular if any row length differs from the first row,
// ErrColorRange if any value lies outside [0..MaxColor].
// A nil or zero-row input yields an empty Grid and no error.
// Complexity: O(R×C) time and memory.
func New(values [][]int) (Grid, error) {
	if len(values) == 0 {
		return Grid{}, nil
	}
	w := len(values[0])
	g := make(Grid, len(values))
	for r, row := range values {
		if len(row) != w {
			return nil, fmt.Errorf("row %d has %d cells, want %d: %w", r, len(row), w, ErrNonRectangular)
		}
		g[r] = make([]Color, w)
		for c, v := range row {
			if v < int(Background) || v > int(MaxColor) {
				return nil, fmt.Errorf("cell (%d,%d)=%d: %w", r, c, v, ErrColorRange)
			}
			g[r][c] = Color(v)
		}
	}

	return g, nil
}

// MustNew is like New but panics on invalid input.
// Intended for literals in tests and examples.
func MustNew(values [][]int) Grid {
	g, err := New(values)
	if err != nil {
		panic(err)
	}
	return g
}

// Validate checks that an already-typed Grid is rectangular and in range.
// Use it when a Grid was assembled by hand rather than through New.
func (g Grid) Validate() error {
	if len(g) == 0 {
		return nil
	}
	w := len(g[0])
	for r, row := range g {
		if len(row) != w {
			return fmt.Errorf("row %d has %d cells, want %d: %w", r, len(row), w, ErrNonRectangular)
		}
		for c, v := range row {
			if v > MaxColor {
				return fmt.Errorf("cell (%d,%d)=%d: %w", r, c, v, ErrColorRange)
			}
		}
	}
	return nil
}

// Zeros returns a rows×cols grid filled with Background.
func Zeros(rows, cols int) Grid {
	g := make(Grid, rows)
	for r := range g {
		g[r] = make([]Color, cols)
	}
	return g
}

// Clone returns a deep copy of g.
func (g Grid) Clone() Grid {
	out := make(Grid, len(g))
	for r, row := range g {
		out[r] = make([]Color, len(row))
		copy(out[r], row)
	}
	return out
}

// InBounds reports whether p lies within the grid.
func (g Grid) InBounds(p Point) bool {
	return p.Row >= 0 && p.Row < g.Rows() && p.Col >= 0 && p.Col < g.Columns()
}

// At returns the color at p. p must be in bounds.
func (g Grid) At(p Point) Color {
	return g[p.Row][p.Col]
}
