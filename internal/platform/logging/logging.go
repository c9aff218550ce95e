package logging

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/SscSPs/business_management_app/internal/platform/config"
	"github.com/lmittmann/tint"
)

// New builds the base application logger. Production and LOG_FORMAT=json use
// the JSON handler on stdout, development gets colored text on stderr.
func New(cfg *config.Config) *slog.Logger {
	if cfg.IsProduction || cfg.LogFormat == "json" {
		return NewJSON(os.Stdout, cfg.LogLevel)
	}
	return slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      cfg.LogLevel,
		TimeFormat: time.Kitchen,
		AddSource:  true,
	}))
}

// NewJSON returns a JSON logger writing to w.
func NewJSON(w io.Writer, level slog.Leveler) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}
