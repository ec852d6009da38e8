package log

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func TestPretty_Text(t *testing.T) {
	var buf bytes.Buffer

	l := Make(&buf, WithTimeLayout("none"), WithLevel(LevelTrace))
	l.Trace("filter", slog.Int("lines", 2), slog.Bool("ok", true), slog.String("text", "let p a = x;"))

	want := `level=TRACE msg=filter lines=2 ok=true text="let p a = x;"` + "\n"
	if got := buf.String(); got != want {
		t.Errorf("got  %q\nwant %q", got, want)
	}
}

func TestPretty_Block(t *testing.T) {
	var buf bytes.Buffer

	l := Make(&buf, WithTimeLayout("none"), WithFormat(FormatJSON))
	l.Error("failed", slog.Any("error", errors.New("unknown tag")))

	want := "{\n" +
		`  "level": "ERROR",` + "\n" +
		`  "msg": "failed",` + "\n" +
		`  "error": "unknown tag"` + "\n" +
		"}\n"
	if got := buf.String(); got != want {
		t.Errorf("got  %q\nwant %q", got, want)
	}
}

func TestPretty_GroupsAndAttrs(t *testing.T) {
	var buf bytes.Buffer

	l := Make(&buf, WithTimeLayout("none"))

	h := l.Handler().WithAttrs([]slog.Attr{slog.String("cmd", "build")}).WithGroup("src")
	slog.New(h).Warn("read", slog.String("name", "index"), slog.Group("pos", slog.Int("line", 4)))

	out := buf.String()
	for _, s := range []string{"cmd=build", "src.name=index", "src.pos.line=4"} {
		if !strings.Contains(out, s) {
			t.Errorf("missing %q in %q", s, out)
		}
	}
}

type lineValue struct{}

func (lineValue) LogValue() slog.Value {
	return slog.GroupValue(slog.Int("line", 7), slog.String("text", "store"))
}

func TestPretty_LogValuer(t *testing.T) {
	var buf bytes.Buffer

	l := Make(&buf, WithTimeLayout("none"))
	l.Warn("bad", slog.Any("at", lineValue{}))

	if !strings.Contains(buf.String(), "at.line=7 at.text=store") {
		t.Errorf("LogValuer not expanded: %q", buf.String())
	}
}
