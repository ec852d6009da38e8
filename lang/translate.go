package lang

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/ardnew/lmcl/log"
)

// Document header and footer surrounding the emitted fragments.
const (
	DocumentHeader = "<!DOCTYPE html>\n<html>\n<head><meta charset=\"UTF-8\"></head>\n<body>"
	DocumentFooter = "</body>\n</html>"
)

// Option configures a [Session].
type Option func(*Session)

// WithLogger sets the structured logger for trace-level debugging.
// If not provided, the logger is zero-valued and all logging is a no-op.
func WithLogger(logger log.Logger) Option {
	return func(s *Session) {
		s.logger = logger
	}
}

// applyOptions applies functional options to a Session.
func applyOptions(s *Session, opts ...Option) {
	for _, opt := range opts {
		opt(s)
	}
}

// Session holds the state of one translation run: the symbol table and the
// fragments emitted so far. It is not safe for concurrent use.
//
// The zero value is an empty session ready to use.
type Session struct {
	logger    log.Logger
	symbols   Symbols
	fragments []string
}

// NewSession returns an empty session configured with opts.
func NewSession(opts ...Option) *Session {
	var s Session

	applyOptions(&s, opts...)

	return &s
}

// Exec translates one line against the session's symbol table.
//
// It returns the emitted fragment and whether one was emitted. On error the
// session is left exactly as it was before the call.
func (s *Session) Exec(ctx context.Context, line Line) (string, bool, error) {
	st, err := ParseStatement(line)
	if err != nil {
		return "", false, err
	}

	value, err := s.resolve(st)
	if err != nil {
		return "", false, err
	}

	if st.Kind.Stores() && s.symbols.Has(st.Name) {
		return "", false, newLineError(ErrDuplicateName, line)
	}

	var fragment string

	if st.Kind.Emits() {
		tag, err := st.Spec.resolve(line)
		if err != nil {
			return "", false, err
		}

		fragment = element(tag, st.Spec, st.Name, value)
		s.fragments = append(s.fragments, fragment)
	}

	if st.Kind.Stores() {
		s.symbols.Define(st.Name, value)
	}

	s.logger.TraceContext(
		ctx,
		"statement",
		slog.Int("line", line.Number),
		slog.String("kind", st.Kind.String()),
		slog.Bool("emitted", st.Kind.Emits()),
		slog.Bool("stored", st.Kind.Stores()),
	)

	return fragment, st.Kind.Emits(), nil
}

// resolve returns the text a statement's value stands for.
func (s *Session) resolve(st Statement) (string, error) {
	if st.Value.Literal {
		return st.Value.Text, nil
	}

	value, ok := s.symbols.Lookup(st.Value.Text)
	if !ok {
		return "", newLineError(ErrUnresolved, st.Line)
	}

	return value, nil
}

// Symbols returns the session's symbol table. Callers must not modify it.
func (s *Session) Symbols() *Symbols { return &s.symbols }

// Fragments returns a copy of the fragments emitted so far.
func (s *Session) Fragments() []string {
	out := make([]string, len(s.fragments))
	copy(out, s.fragments)

	return out
}

// Document assembles the fragments emitted so far into an HTML document.
func (s *Session) Document() string {
	return Document(s.fragments)
}

// Reset discards all symbols and fragments.
func (s *Session) Reset() {
	s.symbols = Symbols{}
	s.fragments = nil
}

// Document joins the fixed header, fragments and fixed footer with newlines.
func Document(fragments []string) string {
	var sb strings.Builder

	sb.WriteString(DocumentHeader)

	for _, f := range fragments {
		sb.WriteByte('\n')
		sb.WriteString(f)
	}

	sb.WriteByte('\n')
	sb.WriteString(DocumentFooter)

	return sb.String()
}

// element renders one fragment. An id is written only when name is set.
func element(tag Tag, spec TagSpec, name, value string) string {
	el := tag.Atom().String()

	var sb strings.Builder

	sb.WriteByte('<')
	sb.WriteString(el)

	if spec.HasClass {
		sb.WriteString(` class="`)
		sb.WriteString(spec.Class)
		sb.WriteByte('"')
	}

	if name != "" {
		sb.WriteString(` id="`)
		sb.WriteString(name)
		sb.WriteByte('"')
	}

	sb.WriteByte('>')
	sb.WriteString(value)
	sb.WriteString("</")
	sb.WriteString(el)
	sb.WriteByte('>')

	return sb.String()
}

// Translate runs lines through a fresh session and returns the document.
// The context is checked between statements.
func Translate(ctx context.Context, lines []Line, opts ...Option) (string, error) {
	s := NewSession(opts...)

	s.logger.TraceContext(
		ctx,
		"translate start",
		slog.Int("line_count", len(lines)),
	)

	for _, line := range lines {
		if err := ctx.Err(); err != nil {
			return "", context.Cause(ctx)
		}

		if _, _, err := s.Exec(ctx, line); err != nil {
			return "", err
		}
	}

	s.logger.TraceContext(
		ctx,
		"translate done",
		slog.Int("fragment_count", len(s.fragments)),
		slog.Int("symbol_count", s.symbols.Len()),
	)

	return s.Document(), nil
}

// TranslateString filters and translates source.
func TranslateString(ctx context.Context, source string, opts ...Option) (string, error) {
	lines, err := Filter(source)
	if err != nil {
		return "", err
	}

	return Translate(ctx, lines, opts...)
}

// TranslateReader reads all of r, then filters and translates it.
func TranslateReader(ctx context.Context, r io.Reader, opts ...Option) (string, error) {
	lines, err := FilterReader(ctx, r, opts...)
	if err != nil {
		return "", err
	}

	return Translate(ctx, lines, opts...)
}
