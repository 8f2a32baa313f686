// Package gridgraph defines core types and options for component labeling.
package gridgraph

import "github.com/katalvlaran/gridscope/grid"

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// Mode selects which neighbors join a component during a fill.
type Mode int

const (
	// AnyColor joins every non-background neighbor regardless of color.
	AnyColor Mode = iota
	// SameColor joins only neighbors whose color equals the seed's color.
	SameColor
)

// Component is one connected region found by a labeling pass.
type Component struct {
	// Color is the seed cell's color. Under SameColor every pixel has it;
	// under AnyColor the component may hold other colors too.
	Color grid.Color
	// Pixels lists member cells in discovery order; never empty.
	Pixels []grid.Point
	// Bounds is the inclusive bounding box, tracked during the fill.
	Bounds grid.BoundingBox
}

// Size returns the number of pixels in the component.
func (c Component) Size() int { return len(c.Pixels) }

// GridOptions contains tunable parameters for grid labeling.
type GridOptions struct {
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
}

// DefaultGridOptions returns a GridOptions with default settings: Conn=Conn8.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		Conn: Conn8,
	}
}

// GridGraph treats a colored grid as a graph. It is immutable once built.
// Width and Height define dimensions; Cells[row][col] holds the colors.
// neighborOffsets is precomputed as (dRow, dCol) pairs for the chosen Conn.
type GridGraph struct {
	Width, Height   int
	Cells           grid.Grid
	Conn            Connectivity
	neighborOffsets [][2]int
}
