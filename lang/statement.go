package lang

import (
	"strings"
)

// quote marks a literal value.
const quote = `"`

// Value is the right-hand side of a statement.
type Value struct {
	// Text is the literal with its quote markers stripped, or the name of
	// the referenced symbol.
	Text string `json:"value"   yaml:"value"`
	// Literal is set when the source text contained a quote anywhere.
	Literal bool `json:"literal" yaml:"literal"`
}

// ParseValue classifies the right-hand side of a statement.
//
// The trailing terminator(s) and surrounding whitespace are removed first.
// Any text containing a quote character is a literal and has every leading
// and trailing quote removed; everything else is a symbol reference.
func ParseValue(rhs string) Value {
	rhs = strings.TrimSpace(strings.TrimRight(rhs, Terminator))

	if strings.Contains(rhs, quote) {
		return Value{Text: strings.Trim(rhs, quote), Literal: true}
	}

	return Value{Text: rhs}
}

// String returns the value as it would be written in source.
func (v Value) String() string {
	if v.Literal {
		return quote + v.Text + quote
	}

	return v.Text
}

// Statement is a tokenized source line. Nothing in it is validated against
// a symbol table or the tag set.
type Statement struct {
	Spec  TagSpec // Zero for store
	Name  string  // Empty for place
	Value Value
	Line  Line
	Kind  Keyword
}

// ParseStatement splits a line on its first '=' and checks the number of
// tokens on the left side for the line's keyword.
func ParseStatement(line Line) (Statement, error) {
	lhs, rhs, ok := strings.Cut(line.Text, "=")
	if !ok {
		return Statement{}, newLineError(ErrSplit, line)
	}

	tokens := strings.Fields(lhs)

	switch want := line.Keyword.tokens(); {
	case len(tokens) < want:
		return Statement{}, newLineError(ErrMissingTokens, line)
	case len(tokens) > want:
		return Statement{}, newLineError(ErrExtraTokens, line)
	}

	st := Statement{
		Line:  line,
		Kind:  line.Keyword,
		Value: ParseValue(rhs),
	}

	switch st.Kind {
	case KeywordLet:
		st.Spec = ParseTagSpec(tokens[1])
		st.Name = tokens[2]

	case KeywordStore:
		st.Name = tokens[1]

	case KeywordPlace:
		st.Spec = ParseTagSpec(tokens[1])

	default:
		return Statement{}, newLineError(ErrSyntax, line)
	}

	return st, nil
}

// String returns the statement in canonical source form.
func (s Statement) String() string {
	var sb strings.Builder

	sb.WriteString(s.Kind.String())

	if s.Kind.Emits() {
		sb.WriteByte(' ')
		sb.WriteString(s.Spec.String())
	}

	if s.Kind.Stores() {
		sb.WriteByte(' ')
		sb.WriteString(s.Name)
	}

	sb.WriteString(" = ")
	sb.WriteString(s.Value.String())
	sb.WriteString(Terminator)

	return sb.String()
}
