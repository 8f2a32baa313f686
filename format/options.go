package format

import "github.com/katalvlaran/gridscope/grid"

// ColorNames is the default color-name lookup.
var ColorNames = map[grid.Color]string{
	0: "Black",
	1: "Blue",
	2: "Red",
	3: "Green",
	4: "Yellow",
	5: "Grey",
	6: "Pink",
	7: "Orange",
	8: "Azure",
	9: "Brown",
}

// Option mutates internal options.
type Option func(*Options)

// Options stores the effective formatter configuration.
type Options struct {
	names map[grid.Color]string
}

// WithColorNames replaces the color-name lookup. A nil map prints bare numbers.
func WithColorNames(names map[grid.Color]string) Option {
	return func(o *Options) { o.names = names }
}

func gatherOptions(opts ...Option) Options {
	o := Options{names: ColorNames}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// colorLabel formats c as "N (Name)".
func (o Options) colorLabel(c grid.Color) string {
	name, ok := o.names[c]
	if !ok {
		return fmtColor(c, "")
	}
	return fmtColor(c, name)
}
