//go:build !pprof

package profile

// Modes returns nil since profiling is not compiled in.
func Modes() []string { return nil }

func start(settings) Stopper { return nop{} }
