// Package profile starts optional runtime profiling with
// [github.com/pkg/profile].
//
// Profiling is compiled in only with the "pprof" build tag:
//
//	go build -tags pprof .
//
// Without the tag, [Modes] is empty and [Start] always returns a no-op.
package profile

// Tag is the build tag that enables profiling. It also names the default
// output directory.
const Tag = "pprof"

// Stopper stops a running profiler and flushes its output.
type Stopper interface{ Stop() }

type settings struct {
	mode  string
	path  string
	quiet bool
}

// Option configures [Start].
type Option func(settings) settings

// WithMode selects the profile kind, one of [Modes].
func WithMode(mode string) Option {
	return func(s settings) settings {
		s.mode = mode

		return s
	}
}

// WithPath sets the directory the profile is written to.
func WithPath(path string) Option {
	return func(s settings) settings {
		s.path = path

		return s
	}
}

// WithQuiet suppresses the profiler's own log output.
func WithQuiet(quiet bool) Option {
	return func(s settings) settings {
		s.quiet = quiet

		return s
	}
}

// Start begins profiling. It returns a no-op Stopper when no mode is
// selected, the mode is unknown, or profiling is not compiled in.
func Start(opts ...Option) Stopper {
	var s settings
	for _, opt := range opts {
		s = opt(s)
	}

	if s.mode == "" {
		return nop{}
	}

	return start(s)
}

type nop struct{}

func (nop) Stop() {}
