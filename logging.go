package main

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync"

	"golang.org/x/exp/slog"
)

// Writes one line per record: time, level, message and the key=value pairs.
type LogHandler struct {
	h      slog.Handler
	attrs  []slog.Attr
	groups []string
	mu     *sync.Mutex
	out    io.Writer
}

func NewLogHandler(o io.Writer, opts *slog.HandlerOptions) *LogHandler {
	if opts == nil {
		opts = &slog.HandlerOptions{}
	}
	level := opts.Level
	if level == nil {
		level = slog.LevelInfo
	}
	return &LogHandler{
		out: o,
		h: slog.NewTextHandler(o, &slog.HandlerOptions{
			Level:     level,
			AddSource: opts.AddSource,
		}),
		mu: &sync.Mutex{},
	}
}

func (h *LogHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.h.Enabled(ctx, level)
}

func (h *LogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	n := h._Clone()
	n.h = h.h.WithAttrs(attrs)
	for _, a := range attrs {
		n.attrs = append(n.attrs, h._Qualify(a))
	}
	return n
}

func (h *LogHandler) WithGroup(name string) slog.Handler {
	n := h._Clone()
	n.h = h.h.WithGroup(name)
	n.groups = append(n.groups, name)
	return n
}

func (h *LogHandler) Handle(ctx context.Context, r slog.Record) error {
	formattedTime := r.Time.Format("2006/01/02 15:04:05")

	strs := []string{formattedTime, r.Level.String(), r.Message}
	for _, a := range h.attrs {
		strs = append(strs, a.Key+"="+a.Value.String())
	}
	r.Attrs(func(a slog.Attr) bool {
		a = h._Qualify(a)
		strs = append(strs, a.Key+"="+a.Value.String())
		return true
	})

	b := []byte(strings.Join(strs, " ") + "\n")

	h.mu.Lock()
	defer h.mu.Unlock()

	_, err := h.out.Write(b)
	return err
}

func (h *LogHandler) _Clone() *LogHandler {
	return &LogHandler{
		h:      h.h,
		attrs:  append([]slog.Attr{}, h.attrs...),
		groups: append([]string{}, h.groups...),
		mu:     h.mu,
		out:    h.out,
	}
}

func (h *LogHandler) _Qualify(a slog.Attr) slog.Attr {
	if len(h.groups) == 0 {
		return a
	}
	return slog.Attr{Key: strings.Join(h.groups, ".") + "." + a.Key, Value: a.Value}
}

func ParseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, errors.New("unknown log level: " + s)
	}
}

// Installs a LogHandler writing to out as the default logger.
func SetupLogging(opts LoggingOptions, out io.Writer) error {
	level, err := ParseLogLevel(opts.Level)
	if err != nil {
		return err
	}
	logger := slog.New(NewLogHandler(out, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return nil
}
