package slogadapter

import (
	"context"
	"log/slog"
	"strings"

	"github.com/trickstertwo/xtee"
)

// Handler forwards slog records into an xtee.Logger, so libraries that log
// through log/slog reach the same sinks and callback.
//
// Attributes are appended to the message as " key=value", groups as
// dotted prefixes, since the sinks render plain text lines.
type Handler struct {
	l      *xtee.Logger
	prefix string // group path, "a.b." form
	attrs  string // pre-rendered WithAttrs output
}

func NewHandler(l *xtee.Logger) *Handler {
	return &Handler{l: l}
}

// Enabled defers to the Logger's threshold.
func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return h.l.Enabled(fromSlog(level))
}

func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	var b strings.Builder
	b.WriteString(r.Message)
	b.WriteString(h.attrs)
	r.Attrs(func(a slog.Attr) bool {
		appendAttr(&b, h.prefix, a)
		return true
	})
	h.l.Log(fromSlog(r.Level), b.String())
	return nil
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	var b strings.Builder
	b.WriteString(h.attrs)
	for _, a := range attrs {
		appendAttr(&b, h.prefix, a)
	}
	child := *h
	child.attrs = b.String()
	return &child
}

func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	child := *h
	child.prefix = h.prefix + name + "."
	return &child
}

func appendAttr(b *strings.Builder, prefix string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}
	if a.Value.Kind() == slog.KindGroup {
		group := a.Value.Group()
		if a.Key != "" {
			prefix += a.Key + "."
		}
		for _, ga := range group {
			appendAttr(b, prefix, ga)
		}
		return
	}
	b.WriteByte(' ')
	b.WriteString(prefix)
	b.WriteString(a.Key)
	b.WriteByte('=')
	v := a.Value.String()
	if v == "" || strings.ContainsAny(v, " \t\"=") {
		b.WriteString(quote(v))
		return
	}
	b.WriteString(v)
}

func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `\"`) + `"`
}

// fromSlog maps slog's numeric levels onto xtee's; xtee uses the same
// numbering and extends it with Trace (-8) and Critical (12).
func fromSlog(l slog.Level) xtee.Level {
	switch {
	case l < slog.LevelDebug:
		return xtee.LevelTrace
	case l < slog.LevelInfo:
		return xtee.LevelDebug
	case l < slog.LevelWarn:
		return xtee.LevelInfo
	case l < slog.LevelError:
		return xtee.LevelWarn
	case l < slog.Level(xtee.LevelCritical):
		return xtee.LevelError
	default:
		return xtee.LevelCritical
	}
}
