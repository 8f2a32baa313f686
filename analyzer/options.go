package analyzer

// Defaults for Analyze. They MUST match defaultOptions.
const (
	// DefaultDescribeObjects enables per-object description.
	DefaultDescribeObjects = true
)

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	describeObjects bool
	logf            func(format string, args ...interface{})
}

// WithoutObjects skips per-object description; Report.Objects stays empty
// while Report.ObjectCount is still computed.
func WithoutObjects() Option {
	return func(o *Options) { o.describeObjects = false }
}

// WithLogger routes analysis diagnostics to logf. nil restores the default,
// which drops them.
func WithLogger(logf func(format string, args ...interface{})) Option {
	return func(o *Options) { o.logf = logf }
}

func defaultOptions() Options {
	return Options{
		describeObjects: DefaultDescribeObjects,
		logf:            nil,
	}
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.logf == nil {
		o.logf = func(string, ...interface{}) {}
	}
	return o
}
