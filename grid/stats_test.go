// SPDX-License-Identifier: MIT
package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridscope/grid"
)

func TestStats_Empty(t *testing.T) {
	g := grid.MustNew(nil)

	r, c := g.Dimensions()
	assert.Equal(t, 0, r)
	assert.Equal(t, 0, c)
	assert.Equal(t, 0, g.UniqueColorCount())
	assert.Empty(t, g.ColorFrequency())
	assert.Empty(t, g.UniqueColors())

	_, err := g.MajorityColor()
	assert.ErrorIs(t, err, grid.ErrEmptyGrid)
}

func TestStats_SingleCell(t *testing.T) {
	g := grid.MustNew([][]int{{5}})

	assert.Equal(t, 1, g.Rows())
	assert.Equal(t, 1, g.Columns())
	assert.Equal(t, 1, g.UniqueColorCount())

	m, err := g.MajorityColor()
	require.NoError(t, err)
	assert.Equal(t, grid.Color(5), m)
}

// TestStats_BackgroundCounted verifies 0 is an ordinary value for statistics.
func TestStats_BackgroundCounted(t *testing.T) {
	g := grid.MustNew([][]int{
		{0, 0, 3},
		{0, 8, 3},
	})

	assert.Equal(t, 3, g.UniqueColorCount())
	assert.Equal(t, []grid.Color{0, 3, 8}, g.UniqueColors())
	assert.Equal(t, map[grid.Color]int{0: 3, 3: 2, 8: 1}, g.ColorFrequency())

	m, err := g.MajorityColor()
	require.NoError(t, err)
	assert.Equal(t, grid.Background, m)
}

// TestMajorityColor_TieBreak checks the lowest color wins a tie.
func TestMajorityColor_TieBreak(t *testing.T) {
	tests := []struct {
		name   string
		values [][]int
		want   grid.Color
	}{
		{"two-way", [][]int{{7, 2}, {2, 7}}, 2},
		{"three-way", [][]int{{9, 4, 6}}, 4},
		{"background tie", [][]int{{0, 1}}, 0},
		{"strict winner", [][]int{{1, 3, 3}}, 3},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			for i := 0; i < 20; i++ { // map order must not matter
				m, err := grid.MustNew(tc.values).MajorityColor()
				require.NoError(t, err)
				require.Equal(t, tc.want, m)
			}
		})
	}
}

// TestColorFrequency_SumsToCells checks the histogram covers every cell once.
func TestColorFrequency_SumsToCells(t *testing.T) {
	grids := [][][]int{
		{},
		{{1}},
		{{1, 2, 3}, {4, 5, 6}},
		{{0, 0, 0, 0}, {0, 9, 9, 0}, {0, 9, 9, 0}},
	}
	for _, values := range grids {
		g := grid.MustNew(values)
		sum := 0
		for _, n := range g.ColorFrequency() {
			sum += n
		}
		assert.Equal(t, g.Cells(), sum)
	}
}
