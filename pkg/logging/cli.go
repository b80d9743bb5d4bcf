package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

const (
	colorYellow = "\033[33m"
	colorRed    = "\033[31m"
	colorReset  = "\033[0m"
)

// Handler is a slog.Handler for terminal output: one colored line per
// record, attributes appended as key=value pairs. Groups become a bracketed
// message prefix.
type Handler struct {
	writer io.Writer
	level  slog.Level
	prefix string
}

func NewHandler(w io.Writer, level slog.Level) *Handler {
	return &Handler{writer: w, level: level}
}

func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	var sb strings.Builder
	if h.prefix != "" {
		sb.WriteString("[" + h.prefix + "] ")
	}
	sb.WriteString(r.Message)

	r.Attrs(func(a slog.Attr) bool {
		sb.WriteString(fmt.Sprintf(" %s=%v", a.Key, a.Value))
		return true
	})

	line := sb.String()
	switch {
	case r.Level >= slog.LevelError:
		line = colorRed + line + colorReset
	case r.Level >= slog.LevelWarn:
		line = colorYellow + line + colorReset
	}

	_, err := fmt.Fprintln(h.writer, line)
	return err
}

func (h *Handler) WithAttrs(_ []slog.Attr) slog.Handler {
	return h
}

func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	return &Handler{writer: h.writer, level: h.level, prefix: name}
}

// SetDefault installs the CLI handler as the default slog logger.
func SetDefault(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(NewHandler(os.Stderr, level)))
}
