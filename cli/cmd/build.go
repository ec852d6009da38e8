package cmd

import (
	"context"
	"io"
	"log/slog"

	"github.com/ardnew/lmcl/log"
)

// Build translates a source file into an HTML document.
type Build struct {
	Name   string `arg:"" help:"Source file base name (the .lmcl extension is optional)" name:"name"`
	Output string `       help:"Output file (default: <name>.html)"                                  short:"o" type:"path"`
	Stdout bool   `       help:"Write the document to standard output"`
}

// Run executes the build command.
func (b *Build) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	var out io.Writer
	if b.Stdout {
		out = stdoutFrom(ctx)
	}

	_, err = build(ctx, b.Name, b.Output, out)

	return err
}

// build translates the source for name. The document is written to out when
// it is non-nil, otherwise to the output file, whose path is returned.
func build(ctx context.Context, name, output string, out io.Writer) (string, error) {
	src, err := locate(name, searchPathFrom(ctx))
	if err != nil {
		return "", err
	}

	doc, err := translateFile(ctx, src)
	if err != nil {
		return "", err
	}

	if out != nil {
		if _, err := io.WriteString(out, doc+"\n"); err != nil {
			return "", ErrWriteOutput.With(slog.String("file", "stdout")).Wrap(err)
		}

		return "", nil
	}

	dst := outputPath(name, output)

	if err := writeDocument(dst, doc); err != nil {
		return "", err
	}

	log.InfoContext(ctx, "built",
		slog.String("source", src),
		slog.String("output", dst),
	)

	return dst, nil
}
