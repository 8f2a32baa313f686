package format

import (
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/katalvlaran/gridscope/analyzer"
	"github.com/katalvlaran/gridscope/grid"
	"github.com/katalvlaran/gridscope/objects"
)

// errWriter remembers the first write error so callers check once.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...interface{}) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}

// String returns the formatted report.
func String(r analyzer.Report, opts ...Option) string {
	var sb strings.Builder
	_ = Write(&sb, r, opts...)
	return sb.String()
}

// Write formats r to w and returns the first write error.
// Color distribution lines are ordered by color value.
func Write(w io.Writer, r analyzer.Report, opts ...Option) error {
	o := gatherOptions(opts...)
	ew := &errWriter{w: w}

	ew.printf("\n=== Grid Analysis ===\n")
	ew.printf("Rows: %d\n", r.Rows)
	ew.printf("Columns: %d\n", r.Columns)
	ew.printf("Dimensions: (%d, %d)\n", r.Dimensions[0], r.Dimensions[1])
	ew.printf("Unique Colors: %d\n", r.UniqueColors)
	ew.printf("Objects (any color): %d\n", r.ObjectCount)

	ew.printf("\n=== Color Distribution ===\n")
	colors := make([]grid.Color, 0, len(r.ColorFrequency))
	for c := range r.ColorFrequency {
		colors = append(colors, c)
	}
	slices.Sort(colors)
	for _, c := range colors {
		ew.printf("%s: %d\n", o.colorLabel(c), r.ColorFrequency[c])
	}
	if r.HasMajority {
		ew.printf("\nMajority Color: %s\n", o.colorLabel(r.MajorityColor))
	} else {
		ew.printf("\nMajority Color: none\n")
	}

	ew.printf("\n=== Grid Symmetry Analysis ===\n")
	ew.printf("Vertical: %s\n", boolText(r.Symmetry.Vertical))
	ew.printf("Horizontal: %s\n", boolText(r.Symmetry.Horizontal))
	ew.printf("Diagonal: %s\n", boolText(r.Symmetry.Diagonal))
	ew.printf("90° Rotation: %s\n", boolText(r.Symmetry.Rotational90))

	ew.printf("\n=== Objects Analysis ===\n")
	for i, obj := range r.Objects {
		ew.printf("\n%s\n", Box(objectLines(i+1, obj, o)))
	}

	return ew.err
}

// ObjectName returns the display name of the i-th object, counting from 1.
func ObjectName(i int) string {
	return fmt.Sprintf("Object_%03d", i)
}

func objectLines(i int, obj objects.Object, o Options) []string {
	return []string{
		ObjectName(i),
		fmt.Sprintf("Height: %d", obj.Height),
		fmt.Sprintf("Width: %d", obj.Width),
		fmt.Sprintf("Size: %d", obj.Size),
		fmt.Sprintf("Single Colored: %s", boolText(obj.IsSingleColored)),
		fmt.Sprintf("Solid: %s", boolText(obj.IsSolid)),
		fmt.Sprintf("Hollow: %s", boolText(obj.IsHollow)),
		"Symmetry Properties:",
		fmt.Sprintf("  Vertical: %s", boolText(obj.Symmetry.Vertical)),
		fmt.Sprintf("  Horizontal: %s", boolText(obj.Symmetry.Horizontal)),
		fmt.Sprintf("  Diagonal: %s", boolText(obj.Symmetry.Diagonal)),
		fmt.Sprintf("  90° Rotation: %s", boolText(obj.Symmetry.Rotational90)),
		fmt.Sprintf("Colors: [%s]", o.colorLabel(obj.Color)),
	}
}

// Box frames lines in a double-line box sized to the widest line.
// Width is measured in runes.
func Box(lines []string) string {
	width := 0
	for _, l := range lines {
		if n := utf8.RuneCountInString(l); n > width {
			width = n
		}
	}
	var sb strings.Builder
	sb.WriteString("╔" + strings.Repeat("═", width+2) + "╗\n")
	for _, l := range lines {
		pad := width - utf8.RuneCountInString(l)
		sb.WriteString("║ " + l + strings.Repeat(" ", pad) + " ║\n")
	}
	sb.WriteString("╚" + strings.Repeat("═", width+2) + "╝")
	return sb.String()
}

func boolText(b bool) string {
	if b {
		return "True"
	}
	return "False"
}

func fmtColor(c grid.Color, name string) string {
	n := strconv.Itoa(int(c))
	if name == "" {
		name = n
	}
	return n + " (" + name + ")"
}
