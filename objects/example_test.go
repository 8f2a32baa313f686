package objects_test

import (
	"fmt"

	"github.com/katalvlaran/gridscope/grid"
	"github.com/katalvlaran/gridscope/objects"
)

// ExampleDescribeGrid describes a hollow ring and a single dot.
func ExampleDescribeGrid() {
	g := grid.MustNew([][]int{
		{1, 1, 1, 0, 0},
		{1, 0, 1, 0, 0},
		{1, 1, 1, 0, 4},
	})
	objs, _ := objects.DescribeGrid(g)
	for _, o := range objs {
		fmt.Printf("color=%d size=%d %dx%d solid=%t hollow=%t vsym=%t\n",
			o.Color, o.Size, o.Height, o.Width, o.IsSolid, o.IsHollow, o.Symmetry.Vertical)
	}

	// Output:
	// color=1 size=8 3x3 solid=false hollow=true vsym=true
	// color=4 size=1 1x1 solid=true hollow=false vsym=true
}
