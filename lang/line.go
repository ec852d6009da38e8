package lang

import (
	"context"
	"io"
	"log/slog"
	"strings"
)

// Line is one admissible statement line of source.
type Line struct {
	Text    string  // Trimmed line content
	Number  int     // 1-based line number in the source text
	Keyword Keyword // Leading keyword
}

// ParseLine classifies a single raw source line with the given 1-based number.
//
// Blank lines and comments yield ok == false and a nil error. A line that
// begins with a statement keyword and ends with [Terminator] is returned
// trimmed. Anything else is an [ErrSyntax] error.
func ParseLine(number int, raw string) (line Line, ok bool, err error) {
	text := strings.TrimSpace(raw)
	if text == "" || strings.HasPrefix(text, CommentPrefix) {
		return Line{}, false, nil
	}

	line = Line{Text: text, Number: number, Keyword: keywordOf(text)}

	if line.Keyword == KeywordNone || !strings.HasSuffix(text, Terminator) {
		return Line{}, false, newLineError(ErrSyntax, line)
	}

	return line, true, nil
}

// Filter returns the admissible statement lines of source in order.
// It stops at the first line that fails [ParseLine].
func Filter(source string) ([]Line, error) {
	var lines []Line

	for i, raw := range strings.Split(source, "\n") {
		line, ok, err := ParseLine(i+1, raw)
		if err != nil {
			return nil, err
		}

		if ok {
			lines = append(lines, line)
		}
	}

	return lines, nil
}

// FilterReader reads all of r and returns its admissible statement lines.
func FilterReader(ctx context.Context, r io.Reader, opts ...Option) ([]Line, error) {
	var s Session

	applyOptions(&s, opts...)

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, ErrReadInput.Wrap(err).
			With(slog.String("source", "reader"))
	}

	lines, err := Filter(string(data))

	s.logger.TraceContext(
		ctx,
		"filter",
		slog.Int("source_bytes", len(data)),
		slog.Int("line_count", len(lines)),
		slog.Bool("ok", err == nil),
	)

	return lines, err
}
