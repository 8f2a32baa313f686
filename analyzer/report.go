package analyzer

import (
	"github.com/katalvlaran/gridscope/grid"
	"github.com/katalvlaran/gridscope/objects"
	"github.com/katalvlaran/gridscope/symmetry"
)

// Report is the aggregate analysis of one grid. It is created fresh by each
// Analyze call and owned by the caller.
type Report struct {
	Rows       int
	Columns    int
	Dimensions [2]int

	UniqueColors   int
	ColorFrequency map[grid.Color]int
	// MajorityColor is meaningful only when HasMajority is true; it is false
	// for the empty grid. Ties resolve to the lowest color.
	MajorityColor grid.Color
	HasMajority   bool

	// Symmetry holds the four predicates evaluated on the whole grid.
	Symmetry symmetry.Flags

	// ObjectCount is the number of 8-connected components when color is
	// ignored. It may be smaller than len(Objects).
	ObjectCount int
	// Objects are the single-colored objects in row-major discovery order.
	Objects []objects.Object
}

// BackgroundCells returns the number of Background cells.
func (r Report) BackgroundCells() int {
	return r.ColorFrequency[grid.Background]
}
