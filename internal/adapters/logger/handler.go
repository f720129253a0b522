package logger

import (
	"context"
	"io"
	"log/slog"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.trai.ch/explorer/internal/ui/output"
	"go.trai.ch/explorer/internal/ui/style"
)

// PrettyHandler is a slog.Handler writing one coloured line per record:
// a level glyph, the message, then key=value pairs in a muted colour.
type PrettyHandler struct {
	out    *termenv.Output
	level  slog.Leveler
	attrs  []string
	groups []string
}

// NewPrettyHandler creates a PrettyHandler writing to w.
func NewPrettyHandler(w io.Writer, opts *slog.HandlerOptions) *PrettyHandler {
	var level slog.Leveler = slog.LevelInfo
	if opts != nil && opts.Level != nil {
		level = opts.Level
	}
	return &PrettyHandler{
		out:   output.New(w),
		level: level,
	}
}

// Enabled reports whether the handler handles records at the given level.
func (h *PrettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle formats and outputs the log record.
//
//nolint:gocritic // slog.Handler interface requires slog.Record by value
func (h *PrettyHandler) Handle(_ context.Context, r slog.Record) error {
	glyph, color := levelStyle(r.Level)

	var b strings.Builder
	if glyph != "" {
		b.WriteString(glyph + " ")
	}
	b.WriteString(r.Message)
	line := h.out.String(b.String()).Foreground(h.out.Color(string(color))).String()

	pairs := slices.Clone(h.attrs)
	r.Attrs(func(attr slog.Attr) bool {
		pairs = appendAttr(pairs, h.groups, attr)
		return true
	})
	if len(pairs) > 0 {
		line += " " + h.out.String(strings.Join(pairs, " ")).Foreground(h.out.Color(string(style.Slate))).String()
	}

	_, err := h.out.WriteString(line + "\n")
	return err
}

// WithAttrs returns a new Handler with the given attributes appended.
func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	next := *h
	next.attrs = slices.Clone(h.attrs)
	for _, attr := range attrs {
		next.attrs = appendAttr(next.attrs, h.groups, attr)
	}
	return &next
}

// WithGroup returns a new Handler qualifying later attributes with name.
func (h *PrettyHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	next := *h
	next.groups = append(slices.Clone(h.groups), name)
	return &next
}

func levelStyle(level slog.Level) (string, lipgloss.Color) {
	switch {
	case level >= slog.LevelError:
		return style.Cross, style.Red
	case level >= slog.LevelWarn:
		return style.Warning, style.Yellow
	case level >= slog.LevelInfo:
		return "", style.Slate
	default:
		return style.Dot, style.Slate
	}
}

// appendAttr flattens attr into key=value pairs. Group attributes extend the key path.
func appendAttr(pairs, groups []string, attr slog.Attr) []string {
	attr.Value = attr.Value.Resolve()
	if attr.Equal(slog.Attr{}) {
		return pairs
	}
	if attr.Value.Kind() == slog.KindGroup {
		path := groups
		if attr.Key != "" {
			path = append(slices.Clone(groups), attr.Key)
		}
		for _, member := range attr.Value.Group() {
			pairs = appendAttr(pairs, path, member)
		}
		return pairs
	}
	key := strings.Join(append(slices.Clone(groups), attr.Key), ".")
	return append(pairs, key+"="+quote(attr.Value.String()))
}

func quote(s string) string {
	if s == "" || strings.ContainsAny(s, " =\"\t\n") {
		return strconv.Quote(s)
	}
	return s
}
