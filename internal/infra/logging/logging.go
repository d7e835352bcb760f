package logging

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// ErrMalformedLabel is returned by ParseLabels for a pair without "=" or key.
var ErrMalformedLabel = errors.New("malformed label")

const (
	severityKey = "severity"
	messageKey  = "message"
)

// New builds the process logger: records below ERROR go to stdout, ERROR to stderr.
// labels are attached to every record. The logger is installed as the slog default.
func New(logFormat, logLevel string, labels map[string]string) *slog.Logger {
	logger := NewWithWriters(os.Stdout, os.Stderr, logFormat, logLevel, labels)

	slog.SetDefault(logger)

	return logger
}

// NewWithWriters is New with explicit output streams.
func NewWithWriters(stdout, stderr io.Writer, logFormat, logLevel string, labels map[string]string) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level:       ParseLevel(logLevel),
		ReplaceAttr: replaceAttr,
	}

	var handler slog.Handler

	switch logFormat {
	case "text":
		handler = &severityHandler{
			out: slog.NewTextHandler(stdout, opts),
			err: slog.NewTextHandler(stderr, opts),
		}
	case "json":
		fallthrough
	default:
		handler = &severityHandler{
			out: slog.NewJSONHandler(stdout, opts),
			err: slog.NewJSONHandler(stderr, opts),
		}
	}

	if len(labels) > 0 {
		attrs := make([]slog.Attr, 0, len(labels))
		for k, v := range labels {
			attrs = append(attrs, slog.String(k, v))
		}

		handler = handler.WithAttrs(attrs)
	}

	return slog.New(handler)
}

// ParseLevel maps a level name to slog.Level, defaulting to info.
func ParseLevel(logLevel string) slog.Level {
	switch strings.ToLower(logLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ParseLabels parses "k=v,k=v" into a map. Empty input yields nil.
func ParseLabels(s string) (map[string]string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	labels := make(map[string]string)

	for pair := range strings.SplitSeq(s, ",") {
		k, v, ok := strings.Cut(pair, "=")
		k = strings.TrimSpace(k)

		if !ok || k == "" {
			return nil, fmt.Errorf("%w: %q", ErrMalformedLabel, pair)
		}

		labels[k] = strings.TrimSpace(v)
	}

	return labels, nil
}

func replaceAttr(groups []string, a slog.Attr) slog.Attr {
	if len(groups) > 0 {
		return a
	}

	switch a.Key {
	case slog.LevelKey:
		a.Key = severityKey

		if level, ok := a.Value.Any().(slog.Level); ok {
			a.Value = slog.StringValue(severity(level))
		}
	case slog.MessageKey:
		a.Key = messageKey
	}

	return a
}

func severity(level slog.Level) string {
	switch {
	case level >= slog.LevelError:
		return "ERROR"
	case level >= slog.LevelWarn:
		return "WARNING"
	case level >= slog.LevelInfo:
		return "INFO"
	default:
		return "DEBUG"
	}
}

// severityHandler routes ERROR records to err and everything else to out.
type severityHandler struct {
	out slog.Handler
	err slog.Handler
}

func (h *severityHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.out.Enabled(ctx, level)
}

func (h *severityHandler) Handle(ctx context.Context, r slog.Record) error {
	if r.Level >= slog.LevelError {
		return h.err.Handle(ctx, r)
	}

	return h.out.Handle(ctx, r)
}

func (h *severityHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &severityHandler{
		out: h.out.WithAttrs(attrs),
		err: h.err.WithAttrs(attrs),
	}
}

func (h *severityHandler) WithGroup(name string) slog.Handler {
	return &severityHandler{
		out: h.out.WithGroup(name),
		err: h.err.WithGroup(name),
	}
}
