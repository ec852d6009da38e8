package lang

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-yaml"
)

// Statements is an ordered list of tokenized statements.
type Statements []Statement

// ParseStatements tokenizes every line, stopping at the first error.
func ParseStatements(lines []Line) (Statements, error) {
	stmts := make(Statements, 0, len(lines))

	for _, line := range lines {
		st, err := ParseStatement(line)
		if err != nil {
			return nil, err
		}

		stmts = append(stmts, st)
	}

	return stmts, nil
}

// record is the serialized form of a statement.
type record struct {
	Kind    string `json:"kind"            yaml:"kind"`
	Tag     string `json:"tag,omitempty"   yaml:"tag,omitempty"`
	Class   string `json:"class,omitempty" yaml:"class,omitempty"`
	Name    string `json:"name,omitempty"  yaml:"name,omitempty"`
	Value   string `json:"value"           yaml:"value"`
	Line    int    `json:"line"            yaml:"line"`
	Literal bool   `json:"literal"         yaml:"literal"`
}

func (s Statements) records() []record {
	out := make([]record, len(s))

	for i, st := range s {
		out[i] = record{
			Kind:    st.Kind.String(),
			Tag:     st.Spec.Name,
			Class:   st.Spec.Class,
			Name:    st.Name,
			Value:   st.Value.Text,
			Line:    st.Line.Number,
			Literal: st.Value.Literal,
		}
	}

	return out
}

// Format writes each statement in canonical source form, prefixed by its
// line number right-aligned to width.
func (s Statements) Format(w io.Writer) error {
	width := 1
	if n := len(s); n > 0 {
		width = len(fmt.Sprint(s[n-1].Line.Number))
	}

	for _, st := range s {
		_, err := fmt.Fprintf(w, "%*d  %s\n", width, st.Line.Number, st)
		if err != nil {
			return err
		}
	}

	return nil
}

// FormatJSON writes the statements as a JSON array.
func (s Statements) FormatJSON(w io.Writer, indent int) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", strings.Repeat(" ", indent))

	return enc.Encode(s.records())
}

// FormatYAML writes the statements as a YAML sequence.
func (s Statements) FormatYAML(ctx context.Context, w io.Writer, indent int) error {
	enc := yaml.NewEncoder(w, yaml.Indent(indent), yaml.IndentSequence(true))

	return enc.EncodeContext(ctx, s.records())
}
