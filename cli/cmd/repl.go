package cmd

import (
	"context"
	"log/slog"
	"os"

	"github.com/ardnew/lmcl/cli/cmd/repl"
	"github.com/ardnew/lmcl/log"
)

// Repl starts an interactive translation session.
type Repl struct {
	Load    string `help:"Source file base name translated before the prompt opens" short:"l"`
	History bool   `help:"Persist input history in the cache directory"               default:"true" negatable:""`
}

// Run executes the repl command.
func (r *Repl) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	if info, err := os.Stdin.Stat(); err != nil || info.Mode()&os.ModeCharDevice == 0 {
		return repl.ErrNoTerminal
	}

	opts := repl.Options{Logger: log.Default()}

	if r.History {
		opts.CacheDir, _ = varFrom(ctx, CacheIdentifier)
	}

	if r.Load != "" {
		src, err := locate(r.Load, searchPathFrom(ctx))
		if err != nil {
			return err
		}

		file, err := os.Open(src)
		if err != nil {
			return ErrReadSource.With(slog.String("file", src)).Wrap(err)
		}
		defer file.Close()

		opts.Preload = file
	}

	return repl.Run(ctx, opts)
}
