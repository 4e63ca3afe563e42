// internal/logging/logger.go
// Logger slog: tint berwarna untuk dev, JSON untuk prod.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"

	"weather-advisor/internal/config"
)

func New(cfg *config.Config, version string) *slog.Logger {
	return NewWithWriter(os.Stderr, cfg, version)
}

func NewWithWriter(w io.Writer, cfg *config.Config, version string) *slog.Logger {
	level := ParseLevel(cfg.LogLevel)

	if cfg.AppEnv != "prod" {
		h := tint.NewHandler(w, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
		})
		return slog.New(h).With("app", cfg.AppName)
	}

	h := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(h).With(
		"app", cfg.AppName,
		"version", version,
		"env", cfg.AppEnv,
	)
}

// ParseLevel: nilai tidak dikenal jatuh ke info
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
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
