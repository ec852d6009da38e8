package repl

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ardnew/lmcl/lang"
	"github.com/ardnew/lmcl/log"
)

func testModel(t *testing.T) model {
	t.Helper()

	return newModel(context.Background(), lang.NewSession(), NewHistory(""), log.Logger{})
}

func TestModel_ExecuteStatement(t *testing.T) {
	m := testModel(t)

	steps := []struct {
		input string
		want  string
		err   error
	}{
		{"// comment", "", nil},
		{`store name = "World";`, `name = "World"`, nil},
		{"let title top = name;", `<h1 id="top">World</h1>`, nil},
		{"place p.note = missing;", "", lang.ErrUnresolved},
		{`store name = "again";`, "", lang.ErrDuplicateName},
		{`place p = "x"`, "", lang.ErrSyntax},
	}

	for i, step := range steps {
		out, err := m.executeStatement(step.input)

		if !errors.Is(err, step.err) {
			t.Fatalf("step %d: error = %v, want %v", i, err, step.err)
		}

		if !strings.Contains(out, step.want) {
			t.Errorf("step %d: output %q does not contain %q", i, out, step.want)
		}
	}

	var le *lang.LineError

	_, err := m.executeStatement("place nav = name;")
	if !errors.As(err, &le) || le.Line != len(steps)+1 {
		t.Errorf("expected error on entry %d, got %v", len(steps)+1, err)
	}

	if got := m.session.Fragments(); len(got) != 1 {
		t.Errorf("fragments = %v", got)
	}
}

func TestModel_Commands(t *testing.T) {
	m := testModel(t)

	if _, err := m.executeStatement(`let p a = "x";`); err != nil {
		t.Fatal(err)
	}

	if got := m.listSymbols(); !strings.Contains(got, "a") || !strings.Contains(got, `"x"`) {
		t.Errorf("listSymbols() = %q", got)
	}

	m, _ = m.executeCommand("reset")
	if m.session.Symbols().Len() != 0 || m.line != 0 {
		t.Error("reset did not clear the session")
	}

	m, cmd := m.executeCommand("quit")
	if !m.quitting || cmd == nil {
		t.Error("quit did not stop the program")
	}
}

func TestModel_EnterRecordsHistory(t *testing.T) {
	m := testModel(t)

	m.input.SetValue(`store a = "1";`)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(model)

	if m.history.Len() != 1 || m.input.Value() != "" {
		t.Fatalf("history=%d input=%q", m.history.Len(), m.input.Value())
	}

	if v, ok := m.session.Symbols().Lookup("a"); !ok || v != "1" {
		t.Errorf("symbol a = %q, %v", v, ok)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = next.(model)

	if m.input.Value() != `store a = "1";` {
		t.Errorf("history recall = %q", m.input.Value())
	}
}

func TestModel_ToggleMode(t *testing.T) {
	m := testModel(t)
	m.input.SetValue("let p")

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(model)

	if m.mode != modeCtrl || m.input.Value() != "" {
		t.Fatalf("mode=%d input=%q", m.mode, m.input.Value())
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(model)

	if m.mode != modeStmt || m.input.Value() != "let p" {
		t.Errorf("pending statement lost: %q", m.input.Value())
	}
}

func TestModel_TabCycle(t *testing.T) {
	m := testModel(t)
	m.input.SetValue("let h")
	m.input.SetCursor(5)
	refreshMatches(&m, false)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(model)

	first := m.input.Value()
	if !strings.HasPrefix(first, "let h") || !m.tabActive {
		t.Fatalf("tab did not select a candidate: %q", first)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(model)

	if m.input.Value() == first {
		t.Error("second tab did not advance")
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(model)

	if m.input.Value() != "let h" || m.tabActive {
		t.Errorf("escape did not restore input: %q", m.input.Value())
	}
}
