// Package log provides a concurrency-safe simplified logging interface
// based on [log/slog].
//
// A [Logger] is configured once with functional options and then shared:
//
//	logger := log.Make(os.Stderr,
//		log.WithLevel(log.LevelDebug),
//		log.WithFormat(log.FormatJSON),
//		log.WithTimeLayout("Kitchen"))
//
//	logger.Info("built", slog.String("output", "index.html"))
//
// # Levels
//
// In addition to the slog levels, [LevelTrace] sits below [LevelDebug] and
// is printed as TRACE.
//
// # Formats
//
// [FormatText] writes key=value pairs and [FormatJSON] writes one object
// per line. With [WithPretty] enabled, text output is colored and JSON
// output is indented. Color is omitted when the writer is not a terminal.
//
// # Package Logger
//
// The package-level functions ([Info], [Warn], [ErrorContext]) write through
// a default logger that [Config] reconfigures.
package log
