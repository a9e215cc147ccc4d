package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"sync"

	"github.com/muesli/termenv"
)

// PrettyHandler is a custom slog.Handler producing human-readable, colored
// output via termenv.
type PrettyHandler struct {
	mu    sync.Mutex
	out   *termenv.Output
	level slog.Leveler
}

var _ slog.Handler = (*PrettyHandler)(nil)

// NewPrettyHandler creates a PrettyHandler writing to the provided writer.
func NewPrettyHandler(w io.Writer, opts *slog.HandlerOptions) *PrettyHandler {
	if w == nil {
		w = os.Stderr
	}

	level := slog.Leveler(slog.LevelInfo)
	if opts != nil && opts.Level != nil {
		level = opts.Level
	}

	return &PrettyHandler{
		out:   termenv.NewOutput(w),
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
	styled := h.out.String(r.Message)
	switch r.Level {
	case slog.LevelWarn:
		styled = styled.Foreground(h.out.Color("3"))
	case slog.LevelError:
		styled = styled.Foreground(h.out.Color("1"))
	}

	line := styled.String()
	r.Attrs(func(attr slog.Attr) bool {
		line += " " + h.out.String(attr.String()).Faint().String()
		return true
	})

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.out, line+"\n")
	return err
}

// WithAttrs returns the handler itself; attrs are rendered per record.
func (h *PrettyHandler) WithAttrs([]slog.Attr) slog.Handler {
	return h
}

// WithGroup returns the handler itself; groups are not rendered.
func (h *PrettyHandler) WithGroup(string) slog.Handler {
	return h
}
