//go:build !pprof

package profile

// Enabled reports whether profiling support is compiled in.
const Enabled = false

// Modes returns nil when built without the pprof build tag.
func Modes() []string { return nil }

func start(Config) Stopper { return ignore{} }
