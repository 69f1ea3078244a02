package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"

	"github.com/capsloque-org/ResumeBuilder/internal/config"
)

const serviceName = "resume-builder"

// New builds a slog.Logger configured according to the provided logging config.
func New(cfg config.LoggingConfig) *slog.Logger {
	return NewWithWriter(cfg, os.Stdout)
}

func NewWithWriter(cfg config.LoggingConfig, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level:     parseLevel(cfg.Level),
		AddSource: cfg.IncludeCaller,
	}

	var handler slog.Handler
	if strings.EqualFold(cfg.Format, "json") {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler).With("service", serviceName)
}

// ForUser scopes log to one editing session. Every line a session writes
// carries the user id, which is how save failures are traced back.
func ForUser(log *slog.Logger, user uuid.UUID) *slog.Logger {
	if log == nil {
		log = slog.Default()
	}
	return log.With("user", user.String())
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
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
