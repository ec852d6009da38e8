package lang

import (
	"context"
	"errors"
	"strings"
	"testing"
	"unicode/utf8"
)

// FuzzParseLine checks that any accepted line is a trimmed, terminated
// statement with a keyword.
func FuzzParseLine(f *testing.F) {
	f.Add("let p a = \"x\";")
	f.Add("  store a = b;  ")
	f.Add("place div.c = \"\";")
	f.Add("// comment")
	f.Add("letter x = y;")
	f.Add(";")
	f.Add("")

	f.Fuzz(func(t *testing.T, input string) {
		if !utf8.ValidString(input) {
			t.Skip("invalid UTF-8")
		}

		line, ok, err := ParseLine(7, input)

		switch {
		case err != nil:
			var le *LineError
			if !errors.As(err, &le) || le.Line != 7 || !errors.Is(err, ErrSyntax) {
				t.Errorf("ParseLine(%q) error = %v", input, err)
			}

		case ok:
			if line.Text != strings.TrimSpace(line.Text) ||
				!strings.HasSuffix(line.Text, Terminator) ||
				line.Keyword == KeywordNone {
				t.Errorf("ParseLine(%q) accepted %+v", input, line)
			}
		}
	})
}

// FuzzTranslate checks that translation never panics, is deterministic, and
// either wraps the document or reports a line inside the source.
func FuzzTranslate(f *testing.F) {
	f.Add("store a = \"x\";\nplace p = a;\n")
	f.Add("let title top = \"Hi\";\nplace p.note = top;")
	f.Add("store a = \"x\";\nstore a = \"y\";")
	f.Add("place box = \"x\";")
	f.Add("place . = \"x\";")
	f.Add("let p = \"x\";")
	f.Add("\n\n// only comments\n")

	f.Fuzz(func(t *testing.T, input string) {
		if !utf8.ValidString(input) {
			t.Skip("invalid UTF-8")
		}

		ctx := context.Background()

		doc, err := TranslateString(ctx, input)
		again, againErr := TranslateString(ctx, input)

		if doc != again || (err == nil) != (againErr == nil) {
			t.Fatalf("translation of %q is not deterministic", input)
		}

		if err != nil {
			var le *LineError
			if !errors.As(err, &le) {
				t.Fatalf("error %v is not a *LineError", err)
			}

			if n := strings.Count(input, "\n") + 1; le.Line < 1 || le.Line > n {
				t.Errorf("error line %d outside 1..%d", le.Line, n)
			}

			return
		}

		if !strings.HasPrefix(doc, DocumentHeader) || !strings.HasSuffix(doc, DocumentFooter) {
			t.Errorf("document for %q is not wrapped:\n%s", input, doc)
		}
	})
}
