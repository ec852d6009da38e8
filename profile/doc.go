// Package profile provides optional runtime profiling for lmcl.
//
// Profiling wraps [github.com/pkg/profile] and is compiled in only with the
// pprof build tag:
//
//	go build -tags pprof .
//
// Without the tag, [Start] returns a no-op [Stopper] and [Modes] is empty.
//
//	p := profile.Start(
//		profile.WithMode("cpu"),
//		profile.WithPath("/tmp/lmcl"),
//	)
//	defer p.Stop()
//
// The supported modes are allocs, block, clock, cpu, goroutine, heap, mem,
// mutex, thread and trace. Each writes <mode>.pprof (or trace.out) to the
// configured directory for analysis with go tool pprof:
//
//	go tool pprof -http=: /tmp/lmcl/cpu.pprof
package profile
