package lang

import (
	"log/slog"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// QueryEnv is the environment a [Query] predicate is evaluated in.
// Each field describes one statement.
type QueryEnv struct {
	Kind    string `expr:"Kind"`
	Tag     string `expr:"Tag"`
	Class   string `expr:"Class"`
	Name    string `expr:"Name"`
	Value   string `expr:"Value"`
	Line    int    `expr:"Line"`
	Literal bool   `expr:"Literal"`
	HasTag  bool   `expr:"HasTag"`
}

// NewQueryEnv describes st for query evaluation.
func NewQueryEnv(st Statement) QueryEnv {
	return QueryEnv{
		Kind:    st.Kind.String(),
		Tag:     st.Spec.Name,
		Class:   st.Spec.Class,
		Name:    st.Name,
		Value:   st.Value.Text,
		Line:    st.Line.Number,
		Literal: st.Value.Literal,
		HasTag:  st.Kind.Emits(),
	}
}

// Query is a compiled expr-lang predicate over statements, for example:
//
//	Kind == "let" && Tag in ["title", "h1"]
type Query struct {
	program *vm.Program
	source  string
}

// CompileQuery compiles source into a boolean predicate over [QueryEnv].
func CompileQuery(source string) (*Query, error) {
	program, err := expr.Compile(source, expr.Env(QueryEnv{}), expr.AsBool())
	if err != nil {
		return nil, ErrQueryCompile.Wrap(err).
			With(slog.String("query", source))
	}

	return &Query{program: program, source: source}, nil
}

// String returns the query source.
func (q *Query) String() string { return q.source }

// Match reports whether st satisfies the query. A nil query matches every
// statement.
func (q *Query) Match(st Statement) (bool, error) {
	if q == nil {
		return true, nil
	}

	out, err := expr.Run(q.program, NewQueryEnv(st))
	if err != nil {
		return false, ErrQueryEvaluate.Wrap(err).
			With(
				slog.String("query", q.source),
				slog.Int("line", st.Line.Number),
			)
	}

	ok, _ := out.(bool)

	return ok, nil
}

// Select returns the statements that satisfy the query, in order.
func (q *Query) Select(stmts []Statement) ([]Statement, error) {
	var out []Statement

	for _, st := range stmts {
		ok, err := q.Match(st)
		if err != nil {
			return nil, err
		}

		if ok {
			out = append(out, st)
		}
	}

	return out, nil
}
