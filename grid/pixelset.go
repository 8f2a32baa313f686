// SPDX-License-Identifier: MIT

package grid

import "slices"

// PixelSet is a set of unique cell coordinates.
type PixelSet map[Point]struct{}

// NewPixelSet builds a set from points; duplicates collapse.
func NewPixelSet(points []Point) PixelSet {
	s := make(PixelSet, len(points))
	for _, p := range points {
		s[p] = struct{}{}
	}
	return s
}

// Has reports membership.
func (s PixelSet) Has(p Point) bool {
	_, ok := s[p]
	return ok
}

// Len returns the number of points.
func (s PixelSet) Len() int { return len(s) }

// Sorted returns the points ordered by row, then column.
func (s PixelSet) Sorted() []Point {
	out := make([]Point, 0, len(s))
	for p := range s {
		out = append(out, p)
	}
	slices.SortFunc(out, Point.Compare)
	return out
}
