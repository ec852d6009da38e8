package log

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// palette holds the styles used by the pretty handlers.
// Styles render as plain text when the output does not support color.
type palette struct {
	key, str, num, yes, no, time, source lipgloss.Style
	levels                               map[Level]lipgloss.Style
}

func newPalette(w io.Writer) *palette {
	r := lipgloss.NewRenderer(w)
	color := func(c string) lipgloss.Style {
		return r.NewStyle().Foreground(lipgloss.Color(c))
	}

	return &palette{
		key:    color("8"),
		str:    color("6"),
		num:    color("3"),
		yes:    color("2"),
		no:     color("1"),
		time:   color("4"),
		source: color("8").Italic(true),
		levels: map[Level]lipgloss.Style{
			LevelTrace: color("5"),
			LevelDebug: color("4"),
			LevelInfo:  color("2"),
			LevelWarn:  color("3").Bold(true),
			LevelError: color("1").Bold(true),
		},
	}
}

func (p *palette) level(l slog.Level) lipgloss.Style {
	var s lipgloss.Style

	for _, lv := range levels {
		if l >= slog.Level(lv) {
			s = p.levels[lv]
		}
	}

	return s
}

// field is a flattened, already-rendered key/value pair.
type field struct {
	key, value string
}

// prettyHandler writes records either as a single line of key=value pairs
// or as an indented JSON-like block.
type prettyHandler struct {
	opts       *slog.HandlerOptions
	mu         *sync.Mutex
	w          io.Writer
	style      *palette
	formatTime FormatTime
	prefix     string
	fields     []field
	block      bool
}

func newPrettyHandler(
	w io.Writer,
	opts *slog.HandlerOptions,
	formatTime FormatTime,
	block bool,
) *prettyHandler {
	return &prettyHandler{
		opts:       opts,
		mu:         &sync.Mutex{},
		w:          w,
		style:      newPalette(w),
		formatTime: formatTime,
		block:      block,
	}
}

func (h *prettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.opts.Level.Level()
}

func (h *prettyHandler) Handle(_ context.Context, r slog.Record) error {
	fields := make([]field, 0, 4+len(h.fields)+r.NumAttrs())

	if !r.Time.IsZero() {
		if s := h.formatTime(r.Time); s != "" {
			fields = append(fields, field{slog.TimeKey, h.style.time.Render(h.quote(s))})
		}
	}

	name := strings.ToUpper(Level(r.Level).String())
	fields = append(fields, field{slog.LevelKey, h.style.level(r.Level).Render(h.quote(name))})

	if h.opts.AddSource {
		if src := r.Source(); src != nil && src.File != "" {
			loc := fmt.Sprintf("%s:%d", src.File, src.Line)
			fields = append(fields, field{slog.SourceKey, h.style.source.Render(h.quote(loc))})
		}
	}

	fields = append(fields, field{slog.MessageKey, h.string(r.Message)})
	fields = append(fields, h.fields...)

	r.Attrs(func(a slog.Attr) bool {
		fields = h.appendAttr(fields, h.prefix, a)

		return true
	})

	var buf bytes.Buffer

	h.write(&buf, fields)

	h.mu.Lock()
	defer h.mu.Unlock()

	_, err := h.w.Write(buf.Bytes())

	return err
}

func (h *prettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}

	c := *h
	c.fields = h.fields[:len(h.fields):len(h.fields)]

	for _, a := range attrs {
		c.fields = h.appendAttr(c.fields, h.prefix, a)
	}

	return &c
}

func (h *prettyHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}

	c := *h
	c.prefix = h.prefix + name + "."

	return &c
}

func (h *prettyHandler) write(buf *bytes.Buffer, fields []field) {
	if !h.block {
		for i, f := range fields {
			if i > 0 {
				buf.WriteByte(' ')
			}

			buf.WriteString(h.style.key.Render(f.key))
			buf.WriteByte('=')
			buf.WriteString(f.value)
		}

		buf.WriteByte('\n')

		return
	}

	buf.WriteString("{\n")

	for i, f := range fields {
		buf.WriteString("  ")
		buf.WriteString(h.style.key.Render(strconv.Quote(f.key)))
		buf.WriteString(": ")
		buf.WriteString(f.value)

		if i < len(fields)-1 {
			buf.WriteByte(',')
		}

		buf.WriteByte('\n')
	}

	buf.WriteString("}\n")
}

func (h *prettyHandler) appendAttr(fields []field, prefix string, a slog.Attr) []field {
	if h.opts.ReplaceAttr != nil && a.Value.Kind() != slog.KindGroup {
		var groups []string
		if prefix != "" {
			groups = strings.Split(strings.TrimSuffix(prefix, "."), ".")
		}

		a = h.opts.ReplaceAttr(groups, a)
	}

	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return fields
	}

	if a.Value.Kind() == slog.KindGroup {
		sub := prefix
		if a.Key != "" {
			sub += a.Key + "."
		}

		for _, g := range a.Value.Group() {
			fields = h.appendAttr(fields, sub, g)
		}

		return fields
	}

	return append(fields, field{prefix + a.Key, h.value(a.Value)})
}

func (h *prettyHandler) value(v slog.Value) string {
	switch v.Kind() {
	case slog.KindString:
		return h.string(v.String())

	case slog.KindInt64:
		return h.style.num.Render(strconv.FormatInt(v.Int64(), 10))

	case slog.KindUint64:
		return h.style.num.Render(strconv.FormatUint(v.Uint64(), 10))

	case slog.KindFloat64:
		return h.style.num.Render(strconv.FormatFloat(v.Float64(), 'g', -1, 64))

	case slog.KindBool:
		if v.Bool() {
			return h.style.yes.Render("true")
		}

		return h.style.no.Render("false")

	case slog.KindDuration:
		return h.style.num.Render(h.quote(v.Duration().String()))

	case slog.KindTime:
		return h.style.time.Render(h.quote(v.Time().Format(time.RFC3339Nano)))

	default:
		if err, ok := v.Any().(error); ok {
			return h.style.no.Render(h.quote(err.Error()))
		}

		return h.string(v.String())
	}
}

func (h *prettyHandler) string(s string) string {
	return h.style.str.Render(h.quote(s))
}

// quote quotes s in block mode always, and in line mode only when s would
// otherwise be ambiguous.
func (h *prettyHandler) quote(s string) string {
	if h.block || s == "" || strings.ContainsAny(s, " =\"\t\n") {
		return strconv.Quote(s)
	}

	return s
}
