package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.trai.ch/retro/internal/ui/output"
	"go.trai.ch/retro/internal/ui/style"
)

const detailIndent = "  "

type levelTheme struct {
	icon  string
	color lipgloss.Color
}

var themes = map[slog.Level]levelTheme{
	slog.LevelWarn:  {icon: style.Warning, color: style.Yellow},
	slog.LevelError: {icon: style.Cross, color: style.Red},
}

// ConsoleHandler is a slog.Handler for terminals. Each record renders as a
// headline followed by indented "key: value" detail lines, the layout used for
// error metadata. Handlers derived through WithAttrs and WithGroup share one
// write lock so concurrent records never interleave.
type ConsoleHandler struct {
	mu     *sync.Mutex
	out    *termenv.Output
	level  slog.Leveler
	attrs  []slog.Attr
	prefix string
}

// NewConsoleHandler creates a ConsoleHandler writing to w. A nil writer selects os.Stderr.
func NewConsoleHandler(w io.Writer, opts *slog.HandlerOptions) *ConsoleHandler {
	if w == nil {
		w = os.Stderr
	}

	var level slog.Leveler = slog.LevelInfo
	if opts != nil && opts.Level != nil {
		level = opts.Level
	}

	return &ConsoleHandler{
		mu:    &sync.Mutex{},
		out:   output.New(w),
		level: level,
	}
}

// Enabled reports whether the handler handles records at the given level.
func (h *ConsoleHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle renders the record and writes it with a single call.
//
//nolint:gocritic // slog.Handler interface requires slog.Record by value
func (h *ConsoleHandler) Handle(_ context.Context, r slog.Record) error {
	theme, ok := themes[r.Level]
	if !ok {
		theme = levelTheme{color: style.Slate}
	}

	headline := r.Message
	if theme.icon != "" {
		headline = theme.icon + " " + headline
	}

	lines := []string{headline}
	for _, attr := range h.attrs {
		lines = appendDetail(lines, "", attr)
	}
	r.Attrs(func(attr slog.Attr) bool {
		lines = appendDetail(lines, h.prefix, attr)
		return true
	})

	text := h.out.String(strings.Join(lines, "\n")).Foreground(termenv.RGBColor(string(theme.color)))

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := h.out.WriteString(text.String() + "\n")
	return err
}

// WithAttrs returns a handler that renders attrs on every record. Keys are
// qualified with the groups opened so far.
func (h *ConsoleHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}

	qualified := make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	qualified = append(qualified, h.attrs...)
	for _, attr := range attrs {
		attr.Key = h.prefix + attr.Key
		qualified = append(qualified, attr)
	}

	clone := *h
	clone.attrs = qualified
	return &clone
}

// WithGroup returns a handler that qualifies later attrs with name.
func (h *ConsoleHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}

	clone := *h
	clone.prefix = h.prefix + name + "."
	return &clone
}

func appendDetail(lines []string, prefix string, attr slog.Attr) []string {
	attr.Value = attr.Value.Resolve()
	if attr.Equal(slog.Attr{}) {
		return lines
	}

	if attr.Value.Kind() == slog.KindGroup {
		if attr.Key != "" {
			prefix += attr.Key + "."
		}
		for _, member := range attr.Value.Group() {
			lines = appendDetail(lines, prefix, member)
		}
		return lines
	}

	key := prefix + attr.Key
	if err, ok := attr.Value.Any().(error); ok {
		return appendErrorDetail(lines, key, err)
	}

	return append(lines, fmt.Sprintf("%s%s: %s", detailIndent, key, attr.Value.String()))
}

// appendErrorDetail renders each link of the chain on its own line, with the
// metadata of that link nested below it.
func appendErrorDetail(lines []string, key string, err error) []string {
	entries := collectErrorEntries(err)
	if len(entries) == 0 {
		return append(lines, detailIndent+key+": "+err.Error())
	}

	lines = append(lines, detailIndent+key+": "+entries[0].Message)
	for i, entry := range entries {
		indent := detailIndent + detailIndent
		if i > 0 {
			lines = append(lines, indent+style.Arrow+" "+entry.Message)
			indent += detailIndent
		}

		keys := make([]string, 0, len(entry.Metadata))
		for k := range entry.Metadata {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		for _, k := range keys {
			lines = append(lines, fmt.Sprintf("%s%s: %v", indent, k, entry.Metadata[k]))
		}
	}

	return lines
}

var _ slog.Handler = (*ConsoleHandler)(nil)
