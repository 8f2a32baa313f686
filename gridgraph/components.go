package gridgraph

import "github.com/katalvlaran/gridscope/grid"

// labelState is the scratch space of one labeling pass. It is created by the
// pass, handed to every fill by pointer, and dropped when the pass returns.
type labelState struct {
	seen   []bool
	queue  []int
	pixels []grid.Point
	bounds grid.BoundingBox
}

func newLabelState(total int) *labelState {
	return &labelState{seen: make([]bool, total)}
}

// ConnectedComponents labels components in AnyColor mode.
func (gg *GridGraph) ConnectedComponents() []Component {
	return gg.Components(AnyColor)
}

// SameColorComponents labels single-colored components (objects).
func (gg *GridGraph) SameColorComponents() []Component {
	return gg.Components(SameColor)
}

// CountComponents returns the number of AnyColor components without
// materializing their pixel lists.
func (gg *GridGraph) CountComponents() int {
	st := newLabelState(gg.Width * gg.Height)
	n := 0
	for row := 0; row < gg.Height; row++ {
		for col := 0; col < gg.Width; col++ {
			i0 := gg.index(row, col)
			if st.seen[i0] || gg.Cells[row][col].IsBackground() {
				continue
			}
			gg.fill(st, i0, AnyColor, false)
			n++
		}
	}
	return n
}

// Components finds all components under mode. Components are returned in
// discovery order: the row-major position of each component's seed, which is
// its first cell in row-major order.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (gg *GridGraph) Components(mode Mode) []Component {
	st := newLabelState(gg.Width * gg.Height)
	var comps []Component

	for row := 0; row < gg.Height; row++ {
		for col := 0; col < gg.Width; col++ {
			i0 := gg.index(row, col)
			if st.seen[i0] || gg.Cells[row][col].IsBackground() {
				continue
			}
			comps = append(comps, gg.fill(st, i0, mode, true))
		}
	}
	return comps
}

// fill floods from seed using st's visited buffer and work-list. When collect
// is false only the visited flags are updated and the returned Component is zero.
func (gg *GridGraph) fill(st *labelState, seed int, mode Mode, collect bool) Component {
	p0 := gg.Coordinate(seed)
	target := gg.Cells[p0.Row][p0.Col]

	st.queue = append(st.queue[:0], seed)
	st.seen[seed] = true
	st.pixels = nil
	st.bounds = grid.NewBoundingBox(p0)

	for qi := 0; qi < len(st.queue); qi++ {
		u := gg.Coordinate(st.queue[qi])
		if collect {
			st.pixels = append(st.pixels, u)
			st.bounds.Extend(u)
		}
		for _, d := range gg.neighborOffsets {
			vr, vc := u.Row+d[0], u.Col+d[1]
			if !gg.InBounds(vr, vc) || !joins(gg.Cells[vr][vc], target, mode) {
				continue
			}
			vi := gg.index(vr, vc)
			if !st.seen[vi] {
				st.seen[vi] = true
				st.queue = append(st.queue, vi)
			}
		}
	}
	if !collect {
		return Component{}
	}

	return Component{Color: target, Pixels: st.pixels, Bounds: st.bounds}
}

// joins reports whether a neighbor colored c may join a fill seeded with target.
func joins(c, target grid.Color, mode Mode) bool {
	if c.IsBackground() {
		return false
	}
	return mode == AnyColor || c == target
}
