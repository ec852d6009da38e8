package profile

// Tag is the build tag required to enable profiling.
const Tag = `pprof`

// Config holds the profiler settings.
type Config struct {
	Mode  string
	Path  string
	Quiet bool
}

// Option modifies a [Config].
type Option func(Config) Config

// WithMode sets the profiling mode. See [Modes].
func WithMode(mode string) Option {
	return func(c Config) Config {
		c.Mode = mode

		return c
	}
}

// WithPath sets the directory profiles are written to.
func WithPath(path string) Option {
	return func(c Config) Config {
		c.Path = path

		return c
	}
}

// WithQuiet suppresses the profiler's own log output.
func WithQuiet(quiet bool) Option {
	return func(c Config) Config {
		c.Quiet = quiet

		return c
	}
}

// Stopper stops a running profiler and flushes its output.
type Stopper interface{ Stop() }

// Start starts a profiler configured by opts.
//
// The returned Stopper is a no-op when the mode is empty or unsupported,
// or when the binary was built without the pprof build tag.
func Start(opts ...Option) Stopper {
	var c Config

	for _, opt := range opts {
		c = opt(c)
	}

	if c.Mode == "" || !Supported(c.Mode) {
		return ignore{}
	}

	return start(c)
}

// Supported reports whether mode is one of [Modes].
func Supported(mode string) bool {
	for _, m := range Modes() {
		if m == mode {
			return true
		}
	}

	return false
}

type ignore struct{}

func (ignore) Stop() {}
