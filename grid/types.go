// SPDX-License-Identifier: MIT

package grid

import "cmp"

// Color is a cell label. Values are limited to [0..MaxColor].
type Color uint8

const (
	// Background is the reserved color that never belongs to an object.
	Background Color = 0

	// MaxColor is the largest color accepted at ingestion.
	MaxColor Color = 9
)

// IsBackground reports whether c is the reserved background color.
func (c Color) IsBackground() bool { return c == Background }

// Grid is a rectangular, row-major matrix of colors: g[row][col].
// All rows have equal length; a Grid with zero rows is valid and empty.
type Grid [][]Color

// Point is a cell coordinate.
type Point struct {
	Row, Col int
}

// Compare orders points row first, then column. It returns -1, 0 or +1 and
// fits slices.SortFunc.
func (p Point) Compare(q Point) int {
	if c := cmp.Compare(p.Row, q.Row); c != 0 {
		return c
	}
	return cmp.Compare(p.Col, q.Col)
}

// BoundingBox is an inclusive rectangle of cells.
type BoundingBox struct {
	MinRow, MaxRow int
	MinCol, MaxCol int
}

// NewBoundingBox returns the 1×1 box covering p.
func NewBoundingBox(p Point) BoundingBox {
	return BoundingBox{MinRow: p.Row, MaxRow: p.Row, MinCol: p.Col, MaxCol: p.Col}
}

// Extend grows b so that it contains p.
func (b *BoundingBox) Extend(p Point) {
	if p.Row < b.MinRow {
		b.MinRow = p.Row
	}
	if p.Row > b.MaxRow {
		b.MaxRow = p.Row
	}
	if p.Col < b.MinCol {
		b.MinCol = p.Col
	}
	if p.Col > b.MaxCol {
		b.MaxCol = p.Col
	}
}

// Height is the number of rows covered by b.
func (b BoundingBox) Height() int { return b.MaxRow - b.MinRow + 1 }

// Width is the number of columns covered by b.
func (b BoundingBox) Width() int { return b.MaxCol - b.MinCol + 1 }

// Area is Height×Width.
func (b BoundingBox) Area() int { return b.Height() * b.Width() }

// Contains reports whether p lies inside b (borders included).
func (b BoundingBox) Contains(p Point) bool {
	return p.Row >= b.MinRow && p.Row <= b.MaxRow && p.Col >= b.MinCol && p.Col <= b.MaxCol
}

// Local translates p into b's coordinate frame, where (MinRow, MinCol) is (0,0).
func (b BoundingBox) Local(p Point) Point {
	return Point{Row: p.Row - b.MinRow, Col: p.Col - b.MinCol}
}
