package app

import (
	"io"
	"log/slog"

	charmlog "github.com/charmbracelet/log"
)

// newLogger creates and configures a new slog.Logger instance. It does not
// set the global logger, allowing for isolated logger instances.
func newLogger(levelStr, formatStr string, outW io.Writer) *slog.Logger {
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	if formatStr == "json" {
		return slog.New(slog.NewJSONHandler(outW, &slog.HandlerOptions{Level: level}))
	}

	// charmbracelet/log levels share slog's numeric values.
	handler := charmlog.NewWithOptions(outW, charmlog.Options{
		Level:           charmlog.Level(level),
		ReportTimestamp: true,
		Prefix:          "paramgrid",
	})
	return slog.New(handler)
}
