package lang

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/google/go-cmp/cmp"
)

func TestStatements_Format(t *testing.T) {
	source := strings.Repeat("\n", 9) + "store a = \"1\";\nplace p.x = a;"

	var buf bytes.Buffer
	if err := parseAll(t, source).Format(&buf); err != nil {
		t.Fatal(err)
	}

	want := "10  store a = \"1\";\n11  place p.x = a;\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("Format() mismatch (-want +got):\n%s", diff)
	}
}

func TestStatements_FormatJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := parseAll(t, querySource).FormatJSON(&buf, 2); err != nil {
		t.Fatal(err)
	}

	var got []map[string]any
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, buf.String())
	}

	if len(got) != 4 {
		t.Fatalf("got %d records, want 4", len(got))
	}

	if got[2]["kind"] != "place" || got[2]["class"] != "note" || got[2]["literal"] != false {
		t.Errorf("unexpected record: %v", got[2])
	}

	if _, ok := got[1]["tag"]; ok {
		t.Errorf("storage record should omit tag: %v", got[1])
	}
}

func TestStatements_FormatYAML(t *testing.T) {
	var buf bytes.Buffer
	if err := parseAll(t, querySource).FormatYAML(context.Background(), &buf, 2); err != nil {
		t.Fatal(err)
	}

	var got []map[string]any
	if err := yaml.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid YAML: %v\n%s", err, buf.String())
	}

	if len(got) != 4 {
		t.Fatalf("got %d records, want 4", len(got))
	}

	if got[0]["name"] != "top" || got[0]["value"] != "Hello" {
		t.Errorf("unexpected record: %v", got[0])
	}
}

func TestParseStatements_StopsAtFirstError(t *testing.T) {
	lines, err := Filter("store a = \"1\";\nlet p = \"x\";\nlet p b c d = \"y\";")
	if err != nil {
		t.Fatal(err)
	}

	_, err = ParseStatements(lines)

	var le *LineError
	if !errors.As(err, &le) || le.Line != 2 || !errors.Is(err, ErrMissingTokens) {
		t.Errorf("unexpected error: %v", err)
	}
}
