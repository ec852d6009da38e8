package repl

import (
	"context"
	"slices"
	"testing"

	"github.com/ardnew/lmcl/lang"
	"github.com/ardnew/lmcl/log"
)

func TestWordBounds(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		cursor    int
		wantWord  string
		wantStart int
		wantEnd   int
	}{
		{"keyword", "le", 2, "le", 0, 2},
		{"tag", "let ti", 6, "ti", 4, 6},
		{"class", "let p.no", 8, "no", 6, 8},
		{"name", "let p.note to", 13, "to", 11, 13},
		{"value", "place p = na", 12, "na", 10, 12},
		{"value no space", "place p =na", 11, "na", 9, 11},
		{"mid word", "store abc", 7, "abc", 6, 9},
		{"on boundary", "let ", 4, "", 4, 4},
		{"after terminator", "store a = b;", 12, "", 12, 12},
		{"cursor past end", "let", 99, "let", 0, 3},
		{"quoted", `store a = "he`, 13, "he", 11, 13},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			word, start, end := wordBounds(tt.input, tt.cursor)
			if word != tt.wantWord || start != tt.wantStart || end != tt.wantEnd {
				t.Errorf("wordBounds(%q, %d) = (%q, %d, %d), want (%q, %d, %d)",
					tt.input, tt.cursor, word, start, end,
					tt.wantWord, tt.wantStart, tt.wantEnd)
			}
		})
	}
}

func TestStatementSlot(t *testing.T) {
	tests := []struct {
		input string
		want  slot
	}{
		{"", slotKeyword},
		{"  ", slotKeyword},
		{"let ", slotTag},
		{"place ", slotTag},
		{"store ", slotNone},
		{"let p.", slotNone},
		{"let p ", slotNone},
		{"let p top = ", slotValue},
		{"store a =", slotValue},
		{"store a = b ", slotNone},
		{`store a = "`, slotNone},
		{"store a = b;", slotNone},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := statementSlot(tt.input, len(tt.input)); got != tt.want {
				t.Errorf("statementSlot(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestComputeMatches(t *testing.T) {
	session := lang.NewSession()

	for i, src := range []string{`store greeting = "hi";`, `store group = "g";`} {
		line, _, err := lang.ParseLine(i+1, src)
		if err != nil {
			t.Fatal(err)
		}

		if _, _, err := session.Exec(context.Background(), line); err != nil {
			t.Fatal(err)
		}
	}

	m := newModel(context.Background(), session, NewHistory(""), log.Logger{})

	tests := []struct {
		mode  inputMode
		input string
		want  []string
	}{
		{modeStmt, "pl", []string{"place"}},
		{modeStmt, "let sub", []string{"subtitle"}},
		{modeStmt, "let h", []string{"h1", "h2", "h3", "h4", "h5", "h6", "paragraph"}},
		{modeStmt, "place p = ", []string{"greeting", "group"}},
		{modeStmt, "place p = gre", []string{"greeting"}},
		{modeStmt, "store gr", nil},
		{modeStmt, "let p.cl", nil},
		{modeCtrl, "ht", []string{"html"}},
		{modeCtrl, "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			m.mode = tt.mode
			m.input.SetValue(tt.input)
			m.input.SetCursor(len(tt.input))

			matches, _, _, _ := m.computeMatches()

			var got []string
			for _, match := range matches {
				got = append(got, match.Str)
			}

			slices.Sort(got)

			if !slices.Equal(got, tt.want) {
				t.Errorf("matches for %q = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestRenderCandidateBar_Ellipsis(t *testing.T) {
	m := newModel(context.Background(), lang.NewSession(), NewHistory(""), log.Logger{})
	m.input.SetValue("let h")
	m.input.SetCursor(5)

	matches, _, _, _ := m.computeMatches()

	full := renderCandidateBar(matches, -1, false, 200)
	if full == "" {
		t.Fatal("empty candidate bar")
	}

	short := renderCandidateBar(matches, -1, false, 10)
	if len(short) >= len(full) {
		t.Errorf("bar not truncated: %q", short)
	}

	if renderCandidateBar(nil, 0, false, 80) != "" {
		t.Error("expected empty bar without matches")
	}
}
