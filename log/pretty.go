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
	"unicode"

	"github.com/charmbracelet/lipgloss"
)

// palette holds the styles of the pretty text handler. Styles created from
// a renderer bound to the output emit no escape sequences unless the output
// is a color-capable terminal.
type palette struct {
	key, str, num, dur, source lipgloss.Style
	yes, no                    lipgloss.Style
	trace, debug, info         lipgloss.Style
	warn, err                  lipgloss.Style
}

func newPalette(w io.Writer) palette {
	r := lipgloss.NewRenderer(w)
	fg := func(c string) lipgloss.Style {
		return r.NewStyle().Foreground(lipgloss.Color(c))
	}

	return palette{
		key:    fg("8"),
		str:    fg("6"),
		num:    fg("3"),
		dur:    fg("5"),
		source: fg("8").Italic(true),
		yes:    fg("2"),
		no:     fg("1"),
		trace:  fg("8"),
		debug:  fg("4"),
		info:   fg("2"),
		warn:   fg("3").Bold(true),
		err:    fg("1").Bold(true),
	}
}

func (p palette) level(l slog.Level) lipgloss.Style {
	switch {
	case l >= slog.LevelError:
		return p.err
	case l >= slog.LevelWarn:
		return p.warn
	case l >= slog.LevelInfo:
		return p.info
	case l >= slog.LevelDebug:
		return p.debug
	default:
		return p.trace
	}
}

// prettyHandler writes one line per record:
//
//	<time> <LEVEL> <message> key=value ...
type prettyHandler struct {
	opts   slog.HandlerOptions
	style  palette
	mu     *sync.Mutex
	w      io.Writer
	prefix string // dotted group path for attrs added later
	attrs  []byte // preformatted attrs from WithAttrs
}

func newPrettyHandler(w io.Writer, opts *slog.HandlerOptions) *prettyHandler {
	return &prettyHandler{
		opts:  *opts,
		style: newPalette(w),
		mu:    &sync.Mutex{},
		w:     w,
	}
}

func (h *prettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	floor := slog.LevelInfo
	if h.opts.Level != nil {
		floor = h.opts.Level.Level()
	}

	return level >= floor
}

func (h *prettyHandler) Handle(_ context.Context, r slog.Record) error {
	buf := new(bytes.Buffer)

	if !r.Time.IsZero() {
		if a := h.replace(slog.Time(slog.TimeKey, r.Time)); a.Key != "" {
			buf.WriteString(h.style.key.Render(a.Value.String()))
		}
	}

	lvl := h.replace(slog.Any(slog.LevelKey, r.Level))
	h.space(buf)
	buf.WriteString(h.style.level(r.Level).Render(lvl.Value.String()))

	if h.opts.AddSource && r.PC != 0 {
		if src := r.Source(); src != nil {
			h.space(buf)
			buf.WriteString(h.style.source.Render(fmt.Sprintf("%s:%d", src.File, src.Line)))
		}
	}

	h.space(buf)
	buf.WriteString(strings.ReplaceAll(r.Message, "\n", `\n`))

	buf.Write(h.attrs)

	r.Attrs(func(a slog.Attr) bool {
		h.writeAttr(buf, h.prefix, a)

		return true
	})

	buf.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()

	_, err := h.w.Write(buf.Bytes())

	return err
}

func (h *prettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}

	buf := bytes.NewBuffer(bytes.Clone(h.attrs))
	for _, a := range attrs {
		h.writeAttr(buf, h.prefix, a)
	}

	c := *h
	c.attrs = buf.Bytes()

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

func (h *prettyHandler) replace(a slog.Attr) slog.Attr {
	if h.opts.ReplaceAttr == nil {
		return a
	}

	return h.opts.ReplaceAttr(nil, a)
}

func (*prettyHandler) space(buf *bytes.Buffer) {
	if buf.Len() > 0 {
		buf.WriteByte(' ')
	}
}

func (h *prettyHandler) writeAttr(buf *bytes.Buffer, prefix string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}

	if a.Value.Kind() == slog.KindGroup {
		if a.Key != "" {
			prefix += a.Key + "."
		}

		for _, ga := range a.Value.Group() {
			h.writeAttr(buf, prefix, ga)
		}

		return
	}

	buf.WriteByte(' ')
	buf.WriteString(h.style.key.Render(prefix + a.Key + "="))
	h.writeValue(buf, a.Value)
}

func (h *prettyHandler) writeValue(buf *bytes.Buffer, v slog.Value) {
	switch v.Kind() {
	case slog.KindInt64:
		buf.WriteString(h.style.num.Render(strconv.FormatInt(v.Int64(), 10)))
	case slog.KindUint64:
		buf.WriteString(h.style.num.Render(strconv.FormatUint(v.Uint64(), 10)))
	case slog.KindFloat64:
		buf.WriteString(h.style.num.Render(strconv.FormatFloat(v.Float64(), 'g', -1, 64)))
	case slog.KindBool:
		if v.Bool() {
			buf.WriteString(h.style.yes.Render("true"))
		} else {
			buf.WriteString(h.style.no.Render("false"))
		}
	case slog.KindDuration:
		buf.WriteString(h.style.dur.Render(v.Duration().String()))
	default:
		buf.WriteString(h.style.str.Render(quote(v.String())))
	}
}

// quote returns s unchanged unless it is empty or contains spaces, quotes,
// '=' or non-printable characters.
func quote(s string) string {
	if s == "" {
		return `""`
	}

	for _, r := range s {
		if r == '=' || r == '"' || unicode.IsSpace(r) || !unicode.IsPrint(r) {
			return strconv.Quote(s)
		}
	}

	return s
}
