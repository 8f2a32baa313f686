package objects

import (
	"github.com/katalvlaran/gridscope/grid"
	"github.com/katalvlaran/gridscope/symmetry"
)

// Object describes one single-colored connected component.
// It is built once by Describe and must be treated as read-only.
type Object struct {
	// Position holds every member cell in grid coordinates, sorted by row then column.
	Position []grid.Point
	// Bounds is the inclusive bounding box in grid coordinates.
	Bounds grid.BoundingBox

	Height int
	Width  int
	Size   int

	Color grid.Color
	// IsSingleColored is always true: objects are built in SameColor mode.
	IsSingleColored bool
	IsSolid         bool
	IsHollow        bool

	// Symmetry holds the predicates evaluated on the object's subgrid.
	Symmetry symmetry.Flags
}
