package clip

import (
	"context"
	"log/slog"
	"slices"
	"strings"
)

var _ slog.Handler = (*LogHandler)(nil)

// LogHandler is a [slog.Handler] that routes records through a [Stdio], so
// application logging lands on the same streams, with the same coloring
// rules, as the rest of a tool's output. Records at [slog.LevelWarn] render
// in the warning color, records at [slog.LevelError] render in the error
// color on the error stream, and everything below renders plain on the
// output stream.
//
// Attributes render as space-separated key=value pairs after the message,
// with group names joined into dotted key prefixes.
type LogHandler struct {
	stdio *Stdio
	level slog.Leveler
	group string
	attrs []slog.Attr
}

// NewLogHandler returns a [LogHandler] writing through stdio.
// Records below level are discarded; a nil level means [slog.LevelInfo].
//
// Passing a nil stdio panics.
func NewLogHandler(stdio *Stdio, level slog.Leveler) slog.Handler {
	if stdio == nil {
		panic("nil stdio")
	}
	return &LogHandler{stdio: stdio, level: level}
}

func (h *LogHandler) prefix() string {
	if len(h.group) == 0 {
		return ""
	}
	return h.group + "."
}

func (h *LogHandler) dupe() *LogHandler {
	return &LogHandler{
		stdio: h.stdio,
		level: h.level,
		group: h.group,
		attrs: slices.Clone(h.attrs),
	}
}

func (h *LogHandler) Enabled(_ context.Context, level slog.Level) bool {
	minLevel := slog.LevelInfo
	if h.level != nil {
		minLevel = h.level.Level()
	}
	return level >= minLevel
}

func (h *LogHandler) Handle(_ context.Context, record slog.Record) error {
	var buf strings.Builder
	buf.WriteString(record.Message)
	for _, attr := range h.attrs {
		writeAttr(&buf, "", attr)
	}
	prefix := h.prefix()
	record.Attrs(func(attr slog.Attr) bool {
		writeAttr(&buf, prefix, attr)
		return true
	})
	text := buf.String()
	switch {
	case record.Level >= slog.LevelError:
		h.stdio.Error(text)
	case record.Level >= slog.LevelWarn:
		h.stdio.Warning(text)
	default:
		h.stdio.Writeln(text)
	}
	return nil
}

func (h *LogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	cp := h.dupe()
	prefix := cp.prefix()
	for _, attr := range attrs {
		attr.Key = prefix + attr.Key
		cp.attrs = append(cp.attrs, attr)
	}
	return cp
}

func (h *LogHandler) WithGroup(name string) slog.Handler {
	if len(name) == 0 {
		return h
	}
	cp := h.dupe()
	cp.group = cp.prefix() + name
	return cp
}

func writeAttr(buf *strings.Builder, prefix string, attr slog.Attr) {
	buf.WriteString(" ")
	buf.WriteString(prefix)
	buf.WriteString(attr.Key)
	buf.WriteString("=")
	buf.WriteString(attr.Value.Resolve().String())
}
