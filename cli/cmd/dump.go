package cmd

import (
	"context"
	"log/slog"

	"github.com/ardnew/lmcl/lang"
	"github.com/ardnew/lmcl/log"
)

// Dump lists the statements of a source file without resolving them.
type Dump struct {
	Name   string `arg:"" help:"Source file base name (the .lmcl extension is optional)" name:"name"`
	Format string `       help:"Output format (${enum})"                                            short:"f" default:"text" enum:"text,json,yaml"`
	Where  string `       help:"Boolean expression selecting statements (e.g. 'Kind == \"store\"')" short:"w"`
	Indent int    `       help:"Indent width for json and yaml"                                               default:"2"`
}

// Run executes the dump command.
func (d *Dump) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	src, err := locate(d.Name, searchPathFrom(ctx))
	if err != nil {
		return err
	}

	lines, err := filterFile(ctx, src)
	if err != nil {
		return err
	}

	stmts, err := lang.ParseStatements(lines)
	if err != nil {
		return ErrTranslate.With(slog.String("file", src)).Wrap(err)
	}

	if d.Where != "" {
		query, err := lang.CompileQuery(d.Where)
		if err != nil {
			return err
		}

		selected, err := query.Select(stmts)
		if err != nil {
			return err
		}

		log.DebugContext(ctx, "dump selected",
			slog.String("where", query.String()),
			slog.Int("matched", len(selected)),
			slog.Int("total", len(stmts)),
		)

		stmts = selected
	}

	w := stdoutFrom(ctx)

	switch d.Format {
	case "text":
		err = stmts.Format(w)
	case "json":
		err = stmts.FormatJSON(w, d.Indent)
	case "yaml":
		err = stmts.FormatYAML(ctx, w, d.Indent)
	default:
		return ErrInvalidFormat.With(slog.String("format", d.Format))
	}

	if err != nil {
		return ErrWriteOutput.With(slog.String("format", d.Format)).Wrap(err)
	}

	return nil
}
