// Command geodrop reads geospatial text in any supported format
// (GeoJSON, WKT, encoded polyline, lat/lng list) from a file or stdin,
// normalizes it to GeoJSON with [longitude, latitude] ordering, and
// prints the result. A clip.progress setting below 100 truncates line
// features to that fraction of their arc length before output.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/geodrop/geodrop/internal/config"
	"github.com/geodrop/geodrop/internal/logging"
	"github.com/geodrop/geodrop/internal/parser"
)

func main() {
	if err := config.Load("."); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logManager := logging.NewManager()
	logFile := openLogFile(config.GetString("logsDir"))
	if logFile != nil {
		defer logFile.Close()
	}
	logManager.Setup(logFile, config.GetString("logLevel"), nil)
	logger := logManager.Logger()

	p, err := parser.New(logger, config.ParseOptions())
	if err != nil {
		logger.Error("Failed to initialize parser", "error", err)
		os.Exit(1)
	}

	if err := run(p, logger, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// openLogFile creates the session log file, returning nil (console-only
// logging) when the logs directory is unavailable.
func openLogFile(logsDir string) *os.File {
	if logsDir == "" {
		return nil
	}
	if err := os.MkdirAll(logsDir, 0o755); err != nil {
		return nil
	}
	path := logging.LogFilePath(logsDir, time.Now())
	f, err := os.OpenFile(filepath.Clean(path), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil
	}
	return f
}
