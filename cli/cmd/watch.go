package cmd

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/ardnew/lmcl/log"
)

// Watch rebuilds a source file each time it changes.
type Watch struct {
	Name   string        `arg:"" help:"Source file base name (the .lmcl extension is optional)" name:"name"`
	Output string        `       help:"Output file (default: <name>.html)"                                  short:"o" type:"path"`
	Delay  time.Duration `       help:"Quiet period before rebuilding"                                      default:"100ms"`

	built func(output string, err error) // observes each build
}

// Run executes the watch command until ctx is canceled.
func (w *Watch) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	src, err := locate(w.Name, searchPathFrom(ctx))
	if err != nil {
		return err
	}

	src, err = filepath.Abs(src)
	if err != nil {
		return ErrWatch.With(slog.String("file", src)).Wrap(err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return ErrWatch.Wrap(err)
	}
	defer watcher.Close()

	// Editors often replace the file, so watch its directory.
	if err := watcher.Add(filepath.Dir(src)); err != nil {
		return ErrWatch.With(slog.String("dir", filepath.Dir(src))).Wrap(err)
	}

	output := outputPath(w.Name, w.Output)

	w.rebuild(ctx, src, output)

	rebuild := make(chan struct{}, 1)

	var timer *time.Timer
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			if filepath.Clean(event.Name) != src ||
				!event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}

			log.TraceContext(ctx, "watch event", slog.String("op", event.Op.String()))

			if timer != nil {
				timer.Stop()
			}

			timer = time.AfterFunc(w.Delay, func() {
				select {
				case rebuild <- struct{}{}:
				default:
				}
			})

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}

			log.WarnContext(ctx, "watch error", slog.Any("error", err))

		case <-rebuild:
			w.rebuild(ctx, src, output)
		}
	}
}

func (w *Watch) rebuild(ctx context.Context, src, output string) {
	doc, err := translateFile(ctx, src)
	if err == nil {
		err = writeDocument(output, doc)
	}

	if err != nil {
		log.ErrorContext(ctx, "build failed", slog.Any("error", err))
	} else {
		log.InfoContext(ctx, "built",
			slog.String("source", src),
			slog.String("output", output),
		)
	}

	if w.built != nil {
		w.built(output, err)
	}
}
