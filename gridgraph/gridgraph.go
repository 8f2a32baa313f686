package gridgraph

import "github.com/katalvlaran/gridscope/grid"

var (
	offsets4 = [][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}
	offsets8 = [][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
)

// NewGridGraph constructs a GridGraph over g after validating it.
// The grid is not copied: callers must not mutate it while the GridGraph is in use.
// An empty grid is valid and has no components.
// Returns grid.ErrNonRectangular or grid.ErrColorRange for malformed input.
// Complexity: O(R×C) for validation.
func NewGridGraph(g grid.Grid, opts GridOptions) (*GridGraph, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	offsets := offsets4
	if opts.Conn == Conn8 {
		offsets = offsets8
	}
	h, w := g.Dimensions()
	gg := &GridGraph{
		Width:           w,
		Height:          h,
		Cells:           g,
		Conn:            opts.Conn,
		neighborOffsets: offsets,
	}

	return gg, nil
}

// From2D validates raw integer rows and builds a GridGraph with the given connectivity.
func From2D(values [][]int, conn Connectivity) (*GridGraph, error) {
	g, err := grid.New(values)
	if err != nil {
		return nil, err
	}
	return NewGridGraph(g, GridOptions{Conn: conn})
}

// InBounds reports whether (row,col) lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(row, col int) bool {
	return row >= 0 && row < gg.Height && col >= 0 && col < gg.Width
}

// NeighborOffsets returns the precomputed (dRow, dCol) offsets.
// Complexity: O(1).
func (gg *GridGraph) NeighborOffsets() [][2]int {
	return gg.neighborOffsets
}

// index maps (row,col) to a row‑major index: row*Width + col.
// Complexity: O(1).
func (gg *GridGraph) index(row, col int) int {
	return row*gg.Width + col
}

// Coordinate converts a row‑major index back to a grid.Point.
// Complexity: O(1).
func (gg *GridGraph) Coordinate(idx int) grid.Point {
	return grid.Point{Row: idx / gg.Width, Col: idx % gg.Width}
}
