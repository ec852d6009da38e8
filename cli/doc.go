// Package cli contains the command line interface for lmcl.
//
// # Usage
//
// The default command translates a source file named by its base name:
//
//	lmcl index            # reads index.lmcl, writes index.html
//	lmcl build -o out.html index
//	lmcl dump --format yaml --where 'Kind == "let"' index
//	lmcl watch index
//	lmcl repl --load index
//
// A source file that is not found as given is looked up in each directory
// named with -I/--path and then in the LMCL_PATH environment variable.
//
// # Configuration
//
// Flag defaults are read from config.yaml (and config.json) in the user
// configuration directory, for example ~/.config/lmcl/config.yaml. Nested
// YAML keys are joined with hyphens to form flag names:
//
//	log:
//	  level: info
//	path:
//	  - ~/lmcl/shared
//
// "lmcl init" writes a config file holding the current flag values.
//
// # Logging Options
//
//   - --log-level: Set minimum log level (trace, debug, info, warn, error)
//   - --log-format: Set log output format (text, json)
//   - --log-time-layout: Set timestamp format (RFC3339, Kitchen, none, ...)
//   - --log-caller: Include caller information in log output
//   - --log-pretty: Colorize text output and indent JSON output
//
// # Profiling Options
//
// Profiling is only available when built with the pprof build tag:
//
//	go build -tags pprof -o lmcl .
//
//   - --pprof-mode: Enable profiling (allocs, block, clock, cpu, goroutine,
//     heap, mutex, thread, trace)
//   - --pprof-dir: Set profile output directory (default ~/.cache/lmcl/pprof)
package cli
