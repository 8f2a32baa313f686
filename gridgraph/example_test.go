// File: gridgraph/example_test.go
package gridgraph_test

import (
	"fmt"

	"github.com/katalvlaran/gridscope/gridgraph"
)

////////////////////////////////////////////////////////////////////////////////
// Example: SameColorComponents
////////////////////////////////////////////////////////////////////////////////

// ExampleGridGraph_SameColorComponents demonstrates splitting a grid into
// single-colored 8-connected objects.
// Scenario:
//
//   - Grid values: 0 = background, 1 and 2 are object colors.
//   - The 1-cells touch diagonally and form one object.
//   - The 2-cells touch the 1-cells but have a different color, so they form
//     a separate object.
func ExampleGridGraph_SameColorComponents() {
	gg, _ := gridgraph.From2D([][]int{
		{1, 0, 2},
		{0, 1, 2},
		{0, 0, 0},
	}, gridgraph.Conn8)

	for i, c := range gg.SameColorComponents() {
		fmt.Printf("object %d color=%d size=%d box=%dx%d:", i, c.Color, c.Size(), c.Bounds.Height(), c.Bounds.Width())
		for _, p := range c.Pixels {
			fmt.Printf(" (%d,%d)", p.Row, p.Col)
		}
		fmt.Println()
	}
	fmt.Println("any-color components:", gg.CountComponents())

	// Output:
	// object 0 color=1 size=2 box=2x2: (0,0) (1,1)
	// object 1 color=2 size=2 box=2x1: (0,2) (1,2)
	// any-color components: 1
}
