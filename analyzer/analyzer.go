package analyzer

import (
	"fmt"

	"github.com/katalvlaran/gridscope/grid"
	"github.com/katalvlaran/gridscope/gridgraph"
	"github.com/katalvlaran/gridscope/objects"
	"github.com/katalvlaran/gridscope/symmetry"
)

// AnalyzeValues validates raw integer rows and analyzes them.
// Returns an error wrapping grid.ErrNonRectangular or grid.ErrColorRange for
// malformed input; no partial Report is produced.
func AnalyzeValues(values [][]int, opts ...Option) (Report, error) {
	g, err := grid.New(values)
	if err != nil {
		return Report{}, fmt.Errorf("analyzer: %w", err)
	}
	return Analyze(g, opts...)
}

// Analyze builds the Report for g. g is read, never modified.
// Returns an error wrapping grid.ErrNonRectangular or grid.ErrColorRange for
// malformed input.
// Complexity: O(R×C×8) time, O(R×C) memory.
func Analyze(g grid.Grid, opts ...Option) (Report, error) {
	o := gatherOptions(opts...)

	gg, err := gridgraph.NewGridGraph(g, gridgraph.DefaultGridOptions())
	if err != nil {
		return Report{}, fmt.Errorf("analyzer: %w", err)
	}

	rows, cols := g.Dimensions()
	r := Report{
		Rows:           rows,
		Columns:        cols,
		Dimensions:     [2]int{rows, cols},
		UniqueColors:   g.UniqueColorCount(),
		ColorFrequency: g.ColorFrequency(),
		Symmetry:       symmetry.Test(g),
		ObjectCount:    gg.CountComponents(),
		Objects:        []objects.Object{},
	}
	if m, err := g.MajorityColor(); err == nil {
		r.MajorityColor, r.HasMajority = m, true
	}
	if o.describeObjects {
		if r.Objects, err = objects.Describe(gg); err != nil {
			return Report{}, fmt.Errorf("analyzer: %w", err)
		}
	}

	o.logf("analyzer: %dx%d grid, %d colors, %d components, %d objects",
		rows, cols, r.UniqueColors, r.ObjectCount, len(r.Objects))

	return r, nil
}
