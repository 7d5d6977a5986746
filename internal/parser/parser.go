// Package parser turns raw pasted or dropped text into normalized
// GeoJSON. Four format parsers (GeoJSON, WKT, encoded polyline, lat/lng
// coordinate list) share one result contract, and an ordered multi-format
// dispatch tries them in priority order until one succeeds.
package parser

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/geodrop/geodrop/internal/geo"
	"github.com/geodrop/geodrop/pkg/core"
)

// Parser provides pure text -> ParseResult conversion. It has zero
// external dependencies beyond a logger and per-call options.
type Parser struct {
	logger *slog.Logger
	opts   core.ParseOptions

	// OTEL metrics
	attempts metric.Int64Counter
	failures metric.Int64Counter
	duration metric.Float64Histogram
}

// New creates a parser with the given logger and options.
// Uses the global OTel meter for metrics (no-op if not configured).
func New(logger *slog.Logger, opts core.ParseOptions) (*Parser, error) {
	p := &Parser{
		logger: logger,
		opts:   opts,
	}

	m := meter()

	var err error

	p.attempts, err = m.Int64Counter(
		"parser.attempts",
		metric.WithDescription("Total parse attempts per format"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating attempts counter: %w", err)
	}

	p.failures, err = m.Int64Counter(
		"parser.failures",
		metric.WithDescription("Total failed parse attempts per format"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating failures counter: %w", err)
	}

	p.duration, err = m.Float64Histogram(
		"parser.duration",
		metric.WithDescription("Parse duration in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating duration histogram: %w", err)
	}

	return p, nil
}

// Parse auto-detects the input format by trying each parser in priority
// order (GeoJSON, WKT, polyline, lat/lng list) and returns the first
// success unmodified. Order matters: the later formats are deliberately
// permissive and would claim input belonging to the stricter ones.
//
// When every format fails, the returned error carries
// AUTO_DETECTION_ERROR with every format's individual failure message in
// its details, for human troubleshooting.
func (p *Parser) Parse(input string) (*core.ParseResult, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return nil, core.NewParseError(core.ErrAutoDetection, "Empty input")
	}

	var details strings.Builder
	for _, format := range core.Formats {
		result, err := p.ParseAs(format, trimmed)
		if err == nil {
			return result, nil
		}
		if details.Len() > 0 {
			details.WriteString("; ")
		}
		details.WriteString(string(format))
		details.WriteString(": ")
		details.WriteString(asParseError(err).Message)
	}

	p.logger.Debug("Auto-detection exhausted all formats", "reasons", details.String())
	return nil, &core.ParseError{
		Code:    core.ErrAutoDetection,
		Message: "Could not detect a supported geospatial format",
		Details: details.String(),
	}
}

// ParseAs runs a single named format parser, bypassing auto-detection.
func (p *Parser) ParseAs(format core.Format, input string) (result *core.ParseResult, err error) {
	if format == core.FormatAuto {
		return p.Parse(input)
	}
	if !format.Valid() {
		return nil, core.NewParseError(core.ErrParsing, "Unknown format %q", format)
	}

	start := time.Now()
	p.count(p.attempts, format)

	// Parsers are total: any internal panic is converted to a
	// PARSING_ERROR at this boundary.
	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = core.NewParseError(core.ErrParsing, "Internal parse error: %v", r)
		}
		if err != nil {
			p.count(p.failures, format)
		}
		p.duration.Record(context.Background(), float64(time.Since(start).Microseconds())/1000,
			metric.WithAttributes(attribute.String("format", string(format))))
	}()

	switch format {
	case core.FormatGeoJSON:
		result, err = p.ParseGeoJSON(input)
	case core.FormatWKT:
		result, err = p.ParseWKT(input)
	case core.FormatPolyline:
		result, err = p.ParsePolyline(input)
	case core.FormatCoordinates:
		result, err = p.ParseLatLngList(input)
	}
	if err != nil {
		return nil, err
	}

	p.reproject(result)
	p.logger.Debug("Parsed input",
		"format", result.Format,
		"type", result.Type,
		"geometryCount", result.GeometryCount)
	return result, nil
}

// reproject converts the result's coordinates to WGS84 when the options
// declare a web mercator source.
func (p *Parser) reproject(result *core.ParseResult) {
	if p.opts.SourceEPSG == 0 || p.opts.SourceEPSG == 4326 {
		return
	}
	if result.Collection != nil {
		geo.ReprojectCollection(result.Collection, p.opts.SourceEPSG)
	}
	if result.Feature != nil {
		geo.ReprojectFeature(result.Feature, p.opts.SourceEPSG)
	}
}

func (p *Parser) count(c metric.Int64Counter, format core.Format) {
	c.Add(context.Background(), 1, metric.WithAttributes(attribute.String("format", string(format))))
}

// asParseError recovers the typed parse error, wrapping untyped errors
// as PARSING_ERROR so callers always see the contract type.
func asParseError(err error) *core.ParseError {
	var pe *core.ParseError
	if errors.As(err, &pe) {
		return pe
	}
	return &core.ParseError{Code: core.ErrParsing, Message: err.Error()}
}
