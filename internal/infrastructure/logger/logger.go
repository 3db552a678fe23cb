package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/LavaJover/petpooja-sync-service/internal/config"
)

// Setup builds the process logger from log_config and installs it as the
// slog default.
func Setup(cfg config.LogConfig, env string) *slog.Logger {
	logger := New(os.Stdout, cfg).With("env", env)
	slog.SetDefault(logger)
	return logger
}

func New(w io.Writer, cfg config.LogConfig) *slog.Logger {
	opts := &slog.HandlerOptions{Level: ParseLevel(cfg.LogLevel)}
	if strings.EqualFold(cfg.LogFormat, "text") {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}
