package objects

import (
	"github.com/katalvlaran/gridscope/grid"
	"github.com/katalvlaran/gridscope/gridgraph"
	"github.com/katalvlaran/gridscope/symmetry"
)

// axisOffsets are the N, S, W, E neighbors used by the hollowness test.
var axisOffsets = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// DescribeGrid validates g and describes its objects under 8-connectivity.
// Returns grid.ErrNonRectangular or grid.ErrColorRange for malformed input.
func DescribeGrid(g grid.Grid) ([]Object, error) {
	gg, err := gridgraph.NewGridGraph(g, gridgraph.DefaultGridOptions())
	if err != nil {
		return nil, err
	}
	return Describe(gg)
}

// Describe builds one Object per same-color component of gg, in discovery
// order. An empty grid yields an empty, non-nil slice.
// Returns ErrConnectivity when gg is nil or not built with Conn8.
// Complexity: O(R×C×8) for labeling plus O(k log k) per object of k pixels.
func Describe(gg *gridgraph.GridGraph) ([]Object, error) {
	if gg == nil || gg.Conn != gridgraph.Conn8 {
		return nil, ErrConnectivity
	}
	comps := gg.SameColorComponents()
	out := make([]Object, 0, len(comps))
	for _, c := range comps {
		out = append(out, describe(gg.Cells, c))
	}
	return out, nil
}

func describe(g grid.Grid, c gridgraph.Component) Object {
	pixels := grid.NewPixelSet(c.Pixels)
	sub := Subgrid(g, c.Pixels, c.Bounds)

	return Object{
		Position:        pixels.Sorted(),
		Bounds:          c.Bounds,
		Height:          c.Bounds.Height(),
		Width:           c.Bounds.Width(),
		Size:            pixels.Len(),
		Color:           c.Color,
		IsSingleColored: true,
		IsSolid:         IsSolid(pixels, c.Bounds),
		IsHollow:        IsHollow(pixels, c.Bounds),
		Symmetry:        symmetry.Test(sub),
	}
}

// Subgrid extracts the Height×Width grid for bounds in which pixels keep
// their original color and every other cell is Background. Pixels outside
// bounds are skipped.
func Subgrid(g grid.Grid, pixels []grid.Point, bounds grid.BoundingBox) grid.Grid {
	sub := grid.Zeros(bounds.Height(), bounds.Width())
	for _, p := range pixels {
		if !bounds.Contains(p) {
			continue
		}
		l := bounds.Local(p)
		sub[l.Row][l.Col] = g.At(p)
	}
	return sub
}

// IsSolid reports whether pixels fill bounds completely.
func IsSolid(pixels grid.PixelSet, bounds grid.BoundingBox) bool {
	return pixels.Len() == bounds.Area()
}

// IsHollow reports whether some cell strictly inside bounds is missing from
// pixels while all four of its axis neighbors are present.
func IsHollow(pixels grid.PixelSet, bounds grid.BoundingBox) bool {
	for r := bounds.MinRow + 1; r < bounds.MaxRow; r++ {
		for c := bounds.MinCol + 1; c < bounds.MaxCol; c++ {
			p := grid.Point{Row: r, Col: c}
			if pixels.Has(p) {
				continue
			}
			enclosed := true
			for _, d := range axisOffsets {
				if !pixels.Has(grid.Point{Row: r + d[0], Col: c + d[1]}) {
					enclosed = false
					break
				}
			}
			if enclosed {
				return true
			}
		}
	}
	return false
}
