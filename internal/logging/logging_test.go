package logging

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"Warn", slog.LevelWarn},
		{"ERROR", slog.LevelError},
		{"nonsense", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseLevel(tt.input), "input %q", tt.input)
	}
}

func TestLogFilePath(t *testing.T) {
	start := time.Date(2025, 3, 14, 15, 9, 26, 0, time.UTC)
	path := LogFilePath("logs", start)
	assert.Contains(t, path, "geodrop.20250314_150926.log")
}

func TestManagerWritesToFileHandler(t *testing.T) {
	var buf bytes.Buffer
	m := NewManager()
	m.Setup(&buf, "info", nil)

	m.Logger().Info("parsed layer", "format", "geojson")

	out := buf.String()
	assert.Contains(t, out, "parsed layer")
	assert.Contains(t, out, "format=geojson")
}

func TestManagerLevelFiltersFileOutput(t *testing.T) {
	var buf bytes.Buffer
	m := NewManager()
	m.Setup(&buf, "error", nil)

	m.Logger().Info("quiet")
	m.Logger().Error("loud")

	out := buf.String()
	assert.NotContains(t, out, "quiet")
	assert.Contains(t, out, "loud")
}

func TestManagerBeforeSetupReturnsDefault(t *testing.T) {
	m := NewManager()
	require.NotNil(t, m.Logger())
	assert.NoError(t, m.Flush(context.Background()))
}

type failingHandler struct {
	err error
}

func (f failingHandler) Enabled(context.Context, slog.Level) bool  { return true }
func (f failingHandler) Handle(context.Context, slog.Record) error { return f.err }
func (f failingHandler) WithAttrs([]slog.Attr) slog.Handler        { return f }
func (f failingHandler) WithGroup(string) slog.Handler             { return f }

func TestMultiHandlerFansOut(t *testing.T) {
	var a, b bytes.Buffer
	h := newMultiHandler(
		slog.NewTextHandler(&a, nil),
		nil,
		slog.NewTextHandler(&b, nil),
	)
	logger := slog.New(h)

	logger.Info("both sides")

	assert.True(t, strings.Contains(a.String(), "both sides"))
	assert.True(t, strings.Contains(b.String(), "both sides"))
}

func TestMultiHandlerJoinsHandlerErrors(t *testing.T) {
	var buf bytes.Buffer
	boom := errors.New("sink unavailable")
	h := newMultiHandler(
		failingHandler{err: boom},
		slog.NewTextHandler(&buf, nil),
	)

	rec := slog.NewRecord(time.Now(), slog.LevelInfo, "partial delivery", 0)
	err := h.Handle(context.Background(), rec)

	// the failure is reported, but the healthy handler still got the record
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, buf.String(), "partial delivery")
}
