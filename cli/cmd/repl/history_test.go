package repl

import (
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func TestHistory_Persist(t *testing.T) {
	path := filepath.Join(t.TempDir(), baseHistory)

	h := NewHistory(path)
	if err := h.Load(); err != nil {
		t.Fatalf("Load() on missing file: %v", err)
	}

	for _, e := range []HistoryEntry{
		{`store a = "1";`, modeStmt},
		{"list", modeCtrl},
		{`store a = "1";`, modeStmt},
		{"list", modeCtrl},
		{"html", modeCtrl},
	} {
		if err := h.Add(e.Line, e.Mode); err != nil {
			t.Fatal(err)
		}
	}

	want := []HistoryEntry{
		{`store a = "1";`, modeStmt},
		{"list", modeCtrl},
		{"html", modeCtrl},
	}

	if got := h.Entries(); !slices.Equal(got, want) {
		t.Errorf("Entries() = %v, want %v", got, want)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	if string(data) != "S:store a = \"1\";\nC:list\nC:html\n" {
		t.Errorf("unexpected file content %q", data)
	}

	reloaded := NewHistory(path)
	if err := reloaded.Load(); err != nil {
		t.Fatal(err)
	}

	if got := reloaded.Entries(); !slices.Equal(got, want) {
		t.Errorf("reloaded = %v, want %v", got, want)
	}
}

func TestHistory_Entry(t *testing.T) {
	h := NewHistory("")

	if err := h.Add("  ", modeStmt); err != nil || h.Len() != 0 {
		t.Fatalf("blank entry recorded: %v %d", err, h.Len())
	}

	_ = h.Add("quit", modeCtrl)

	if e, err := h.Entry(0); err != nil || e.Line != "quit" || e.Mode != modeCtrl {
		t.Errorf("Entry(0) = %v, %v", e, err)
	}

	if _, err := h.Entry(1); err != ErrOutOfBounds {
		t.Errorf("Entry(1) error = %v, want ErrOutOfBounds", err)
	}
}

func TestParseHistoryEntry(t *testing.T) {
	tests := []struct {
		in   string
		want HistoryEntry
		ok   bool
	}{
		{"S:let p a = b;", HistoryEntry{"let p a = b;", modeStmt}, true},
		{"C:reset", HistoryEntry{"reset", modeCtrl}, true},
		{"store x = y;", HistoryEntry{"store x = y;", modeStmt}, true},
		{"C:", HistoryEntry{}, false},
		{"", HistoryEntry{}, false},
	}

	for _, tt := range tests {
		got, ok := parseHistoryEntry(tt.in)
		if ok != tt.ok || (ok && got != tt.want) {
			t.Errorf("parseHistoryEntry(%q) = %v, %v", tt.in, got, ok)
		}
	}
}
