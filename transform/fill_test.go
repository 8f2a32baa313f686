package transform_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridscope/analyzer"
	"github.com/katalvlaran/gridscope/grid"
	"github.com/katalvlaran/gridscope/transform"
)

func TestFill(t *testing.T) {
	tests := []struct {
		name   string
		values [][]int
		color  grid.Color
		want   [][]int
	}{
		{"empty", [][]int{}, 4, [][]int{}},
		{"too small", [][]int{{1, 1}, {1, 1}}, 4, [][]int{{1, 1}, {1, 1}}},
		{"3x3 block", [][]int{
			{2, 2, 2},
			{2, 2, 2},
			{2, 2, 2},
		}, 5, [][]int{
			{2, 2, 2},
			{2, 5, 2},
			{2, 2, 2},
		}},
		{"5x5 block keeps border", [][]int{
			{0, 0, 0, 0, 0},
			{0, 3, 3, 3, 0},
			{0, 3, 3, 3, 0},
			{0, 3, 3, 3, 0},
			{0, 0, 0, 0, 0},
		}, 7, [][]int{
			{0, 0, 0, 0, 0},
			{0, 3, 3, 3, 0},
			{0, 3, 7, 3, 0},
			{0, 3, 3, 3, 0},
			{0, 0, 0, 0, 0},
		}},
		{"background interior untouched", [][]int{
			{0, 0, 0},
			{0, 0, 0},
			{0, 0, 0},
		}, 1, [][]int{
			{0, 0, 0},
			{0, 0, 0},
			{0, 0, 0},
		}},
		{"mixed neighbor", [][]int{
			{1, 1, 1},
			{1, 1, 1},
			{1, 1, 2},
		}, 9, [][]int{
			{1, 1, 1},
			{1, 1, 1},
			{1, 1, 2},
		}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := grid.MustNew(tc.values)
			before := g.Clone()
			got := transform.Fill(g, tc.color)
			assert.Equal(t, grid.MustNew(tc.want), got)
			assert.Equal(t, before, g, "input must not change")
		})
	}
}

// TestFill_MakesHollow: filling a solid block's interior with background
// turns it into a hollow object.
func TestFill_MakesHollow(t *testing.T) {
	g := grid.MustNew([][]int{
		{6, 6, 6},
		{6, 6, 6},
		{6, 6, 6},
	})
	before, err := analyzer.Analyze(g)
	require.NoError(t, err)
	require.Len(t, before.Objects, 1)
	assert.True(t, before.Objects[0].IsSolid)

	after, err := analyzer.Analyze(transform.Fill(g, grid.Background))
	require.NoError(t, err)
	require.Len(t, after.Objects, 1)
	assert.False(t, after.Objects[0].IsSolid)
	assert.True(t, after.Objects[0].IsHollow)
}
