package cmd

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/ardnew/lmcl/lang"
	"github.com/ardnew/lmcl/log"
	"github.com/ardnew/lmcl/pkg"
)

// baseName strips an optional source extension from name.
func baseName(name string) string {
	return strings.TrimSuffix(name, pkg.SourceExt)
}

// locate returns the path of the source file for name. The name is tried as
// given and then, unless it is absolute, under each of dirs in order.
func locate(name string, dirs []string) (string, error) {
	file := baseName(name) + pkg.SourceExt

	candidates := []string{file}
	if !filepath.IsAbs(file) {
		for _, dir := range dirs {
			candidates = append(candidates, filepath.Join(dir, file))
		}
	}

	for _, path := range candidates {
		info, err := os.Stat(path)
		if err == nil && info.Mode().IsRegular() {
			return path, nil
		}

		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return "", ErrReadSource.With(slog.String("file", path)).Wrap(err)
		}
	}

	return "", ErrNoSource.With(
		slog.String("name", file),
		slog.Any("path", dirs),
	)
}

// outputPath returns override, or the source base name with the output
// extension.
func outputPath(name, override string) string {
	if override != "" {
		return override
	}

	return baseName(name) + pkg.OutputExt
}

// translateFile translates the source file at path into a document.
func translateFile(ctx context.Context, path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", ErrReadSource.With(slog.String("file", path)).Wrap(err)
	}
	defer file.Close()

	doc, err := lang.TranslateReader(ctx, file, lang.WithLogger(log.Default()))
	if err != nil {
		return "", ErrTranslate.With(slog.String("file", path)).Wrap(err)
	}

	return doc, nil
}

// writeDocument creates or truncates path and writes doc to it.
func writeDocument(path, doc string) error {
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		return ErrWriteOutput.With(slog.String("file", path)).Wrap(err)
	}

	return nil
}

// filterFile returns the statement lines of the source file at path.
func filterFile(ctx context.Context, path string) ([]lang.Line, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, ErrReadSource.With(slog.String("file", path)).Wrap(err)
	}
	defer file.Close()

	lines, err := lang.FilterReader(ctx, file, lang.WithLogger(log.Default()))
	if err != nil {
		return nil, ErrTranslate.With(slog.String("file", path)).Wrap(err)
	}

	return lines, nil
}
