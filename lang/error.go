package lang

import (
	"errors"
	"log/slog"
	"strconv"
	"strings"
)

// Predefined errors (sentinel values).
//
// Every error returned while filtering or translating source is a
// [*LineError] wrapping exactly one of these, so callers can test the kind
// with [errors.Is] and recover the offending line with [errors.As].
var (
	ErrSyntax        = NewError("syntax error")
	ErrSplit         = NewError("missing '=' separator")
	ErrMissingTokens = NewError("missing tokens")
	ErrExtraTokens   = NewError("too many tokens")
	ErrUnresolved    = NewError("unresolved reference")
	ErrDuplicateName = NewError("duplicate name")
	ErrUnknownTag    = NewError("unknown tag")
	ErrMalformedTag  = NewError("malformed tag-spec, expected 'tag.class'")
	ErrReadInput     = NewError("failed to read input")
	ErrQueryCompile  = NewError("query compilation failed")
	ErrQueryEvaluate = NewError("query evaluation failed")
)

// Error represents an error with optional structured logging attributes.
// It implements both error and slog.LogValuer interfaces.
type Error struct {
	msg   string
	err   error       // Wrapped error (for errors.Unwrap)
	attrs []slog.Attr // Attributes for structured logging
}

// NewError creates a new Error with a message.
func NewError(msg string) *Error {
	return &Error{msg: msg}
}

// WrapError wraps a standard error into an Error.
func WrapError(err error) *Error {
	ee := &Error{}
	if errors.As(err, &ee) {
		return ee
	}

	return &Error{err: err}
}

// Error implements the error interface.
func (e *Error) Error() string {
	// Build error message using the first available format,
	// depending on which fields are set:
	//
	//   1. "<msg>: <err>" // base and wrapped error both set
	//   2. "<msg>"        // wrapped error is nil
	//   3. "<err>"        // base error message is empty
	//   4. ""             // no fields are set
	part := make([]string, 0, 2)

	if e.msg != "" {
		part = append(part, e.msg)
	}

	if e.err != nil {
		part = append(part, e.err.Error())
	}

	return strings.Join(part, ": ")
}

// Unwrap implements error unwrapping for errors.Is/As.
func (e *Error) Unwrap() error { return e.err }

// Is reports whether target is a sentinel with the same message. Errors
// derived from a sentinel with [Error.Wrap] or [Error.With] still match it.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || t.err != nil || t.msg == "" {
		return false
	}

	return e.msg == t.msg
}

// LogValue implements slog.LogValuer for rich structured logging.
func (e *Error) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, len(e.attrs)+2)

	if e.msg != "" {
		attrs = append(attrs, slog.String("error", e.msg))
	}

	if e.err != nil {
		attrs = append(attrs, slog.String("cause", e.err.Error()))
	}

	return slog.GroupValue(append(attrs, e.attrs...)...)
}

// Wrap creates a new Error wrapping another error.
func (e *Error) Wrap(err error) *Error {
	return &Error{
		msg:   e.msg,
		err:   err,
		attrs: e.attrs, // Share attrs
	}
}

// With adds attributes to the error for structured logging.
// This creates a new Error instance to maintain immutability.
func (e *Error) With(attrs ...slog.Attr) *Error {
	newAttrs := make([]slog.Attr, len(e.attrs)+len(attrs))
	copy(newAttrs, e.attrs)
	copy(newAttrs[len(e.attrs):], attrs)

	return &Error{
		msg:   e.msg,
		err:   e.err,
		attrs: newAttrs,
	}
}

// LineError reports a fatal problem with one line of source.
type LineError struct {
	Err  error  // One of the sentinel errors declared in this package
	Text string // The trimmed source line
	Line int    // 1-based source line number
}

func newLineError(err error, line Line) *LineError {
	return &LineError{Err: err, Line: line.Number, Text: line.Text}
}

// Error implements the error interface.
func (e *LineError) Error() string {
	var sb strings.Builder

	if e.Err != nil {
		sb.WriteString(e.Err.Error())
	} else {
		sb.WriteString("error")
	}

	sb.WriteString(" on line ")
	sb.WriteString(strconv.Itoa(e.Line))
	sb.WriteString(": ")
	sb.WriteString(e.Text)

	return sb.String()
}

// Unwrap implements error unwrapping for errors.Is/As.
func (e *LineError) Unwrap() error { return e.Err }

// LogValue implements slog.LogValuer.
func (e *LineError) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.Int("line", e.Line),
		slog.String("source", e.Text),
	}

	if e.Err != nil {
		attrs = append([]slog.Attr{slog.String("error", e.Err.Error())}, attrs...)
	}

	return slog.GroupValue(attrs...)
}
