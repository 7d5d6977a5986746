package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/geodrop/geodrop/internal/clip"
	"github.com/geodrop/geodrop/internal/config"
	"github.com/geodrop/geodrop/internal/parser"
	"github.com/geodrop/geodrop/pkg/core"
)

// run parses the input named by args (a file path, or stdin when absent
// or "-") and writes normalized GeoJSON to stdout.
func run(p *parser.Parser, logger *slog.Logger, args []string) error {
	input, err := readInput(args)
	if err != nil {
		return err
	}

	result, err := p.ParseAs(config.Format(), input)
	if err != nil {
		var perr *core.ParseError
		if errors.As(err, &perr) && perr.Details != "" {
			return fmt.Errorf("%s\n  hint: %s", perr.Message, perr.Details)
		}
		return err
	}
	logger.Info("Parsed input",
		"format", result.Format,
		"geometryCount", result.GeometryCount)

	progress := config.GetFloat64("clip.progress")
	if progress < 100 {
		clipped, err := clip.ByProgress(result.AsCollection(), progress)
		if err != nil {
			return err
		}
		logger.Info("Clipped line features", "progress", progress)
		return emit(clipped)
	}

	// preserve the parsed shape: a single Feature stays a Feature
	if result.Collection != nil {
		return emit(result.Collection)
	}
	return emit(result.Feature)
}

func readInput(args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", args[0], err)
	}
	return string(data), nil
}

func emit(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
