// Package logging wires slog for the pipeline: a console handler, an
// optional session log file, and an optional OpenTelemetry bridge, all
// fanned out through a single multi-handler.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/bridges/otelslog"
	sdklog "go.opentelemetry.io/otel/sdk/log"
)

// LogFilePath builds a session log file path using OS-appropriate path
// separators.
func LogFilePath(logsDir string, sessionStart time.Time) string {
	return filepath.Join(
		logsDir,
		fmt.Sprintf("geodrop.%s.log", sessionStart.Format("20060102_150405")),
	)
}

// ParseLevel converts a string log level to slog.Level, defaulting to
// info for unknown values.
func ParseLevel(level string) slog.Level {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Manager owns the configured logger and the OTel provider used for
// flushing on shutdown.
type Manager struct {
	logger      *slog.Logger
	logProvider *sdklog.LoggerProvider
}

// NewManager creates an unconfigured logging manager. Setup must be
// called before Logger returns anything other than the default logger.
func NewManager() *Manager {
	return &Manager{}
}

// Setup initializes logging with console output, an optional file
// writer, and an optional OTel log provider.
func (m *Manager) Setup(file io.Writer, level string, provider *sdklog.LoggerProvider) {
	lvl := ParseLevel(level)
	m.logProvider = provider

	handlerOpts := &slog.HandlerOptions{
		Level: lvl,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				if t, ok := a.Value.Any().(time.Time); ok {
					a.Value = slog.StringValue(t.UTC().Format(time.RFC3339))
				}
			}
			return a
		},
	}

	handlers := []slog.Handler{slog.NewTextHandler(os.Stderr, handlerOpts)}
	if file != nil {
		handlers = append(handlers, slog.NewTextHandler(file, handlerOpts))
	}
	if provider != nil {
		handlers = append(handlers, otelslog.NewHandler("geodrop",
			otelslog.WithLoggerProvider(provider)))
	}

	m.logger = slog.New(newMultiHandler(handlers...))
	m.logger.Debug("Logging initialized", "level", level)
}

// Logger returns the configured logger, or slog.Default before Setup.
func (m *Manager) Logger() *slog.Logger {
	if m.logger == nil {
		return slog.Default()
	}
	return m.logger
}

// Flush forces a flush of OTel logs if a provider is attached.
func (m *Manager) Flush(ctx context.Context) error {
	if m.logProvider != nil {
		return m.logProvider.ForceFlush(ctx)
	}
	return nil
}
