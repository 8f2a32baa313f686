// Package render draws a grid as a color-coded heat map image using
// gonum/plot. It consumes raw grids only and is not part of the analysis core.
package render

import (
	"errors"
	"fmt"
	"image/color"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/gridscope/grid"
)

// ErrEmptyGrid is returned when there is nothing to draw.
var ErrEmptyGrid = errors.New("render: grid has no cells")

// DefaultSize is the side length of images written by WritePNG when size is 0.
const DefaultSize = 4 * vg.Inch

// Palette maps every color 0..9 to its display color.
type Palette [int(grid.MaxColor) + 1]color.Color

// Colors implements palette.Palette.
func (p Palette) Colors() []color.Color { return p[:] }

// DefaultPalette uses the conventional puzzle colors.
var DefaultPalette = Palette{
	color.RGBA{0x00, 0x00, 0x00, 0xff}, // Black
	color.RGBA{0x00, 0x00, 0xff, 0xff}, // Blue
	color.RGBA{0xff, 0x00, 0x00, 0xff}, // Red
	color.RGBA{0x00, 0xff, 0x00, 0xff}, // Green
	color.RGBA{0xff, 0xff, 0x00, 0xff}, // Yellow
	color.RGBA{0x80, 0x80, 0x80, 0xff}, // Grey
	color.RGBA{0xff, 0xc0, 0xcb, 0xff}, // Pink
	color.RGBA{0xff, 0xa5, 0x00, 0xff}, // Orange
	color.RGBA{0xf0, 0xff, 0xff, 0xff}, // Azure
	color.RGBA{0xa5, 0x2a, 0x2a, 0xff}, // Brown
}

// cells adapts a grid to plotter.GridXYZ. Row 0 is drawn at the top.
type cells struct {
	g grid.Grid
}

func (c cells) Dims() (cols, rows int) { return c.g.Columns(), c.g.Rows() }
func (c cells) Z(col, row int) float64 { return float64(c.g[c.g.Rows()-1-row][col]) }
func (c cells) X(col int) float64      { return float64(col) }
func (c cells) Y(row int) float64      { return float64(row) }

// Plot builds a heat map of g. Color k is drawn with DefaultPalette[k]
// regardless of which colors occur in g.
func Plot(g grid.Grid, title string) (*plot.Plot, error) {
	if g.Cells() == 0 {
		return nil, ErrEmptyGrid
	}
	if err := g.Validate(); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}

	h := plotter.NewHeatMap(cells{g: g}, DefaultPalette)
	h.Min, h.Max = 0, float64(grid.MaxColor)

	p := plot.New()
	p.Title.Text = title
	p.HideAxes()
	p.Add(h)
	return p, nil
}

// WritePNG renders g as a size×size PNG image to w.
func WritePNG(w io.Writer, g grid.Grid, title string, size vg.Length) error {
	p, err := Plot(g, title)
	if err != nil {
		return err
	}
	if size <= 0 {
		size = DefaultSize
	}
	wt, err := p.WriterTo(size, size, "png")
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("render: write png: %w", err)
	}
	return nil
}
