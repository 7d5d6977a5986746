package parser

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	polyline "github.com/twpayne/go-polyline"

	"github.com/geodrop/geodrop/internal/geo"
	"github.com/geodrop/geodrop/pkg/core"
)

// coordListPattern matches input made only of digits, commas, periods,
// hyphens and whitespace. Such input is almost certainly a coordinate
// list, not an encoded polyline, even though the polyline codec would
// happily decode it to garbage. This is a secondary guard; the primary
// disambiguator is the dispatcher's priority order.
var coordListPattern = regexp.MustCompile(`^[0-9.,\s-]+$`)

// ParsePolyline decodes a Google encoded polyline (signed-varint deltas
// at precision 1e5) into a single LineString Feature. Coordinates are
// decoded as [lat, lng] pairs and normalized to GeoJSON [lng, lat].
func (p *Parser) ParsePolyline(input string) (*core.ParseResult, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return nil, core.NewParseError(core.ErrPolyline, "Empty polyline string")
	}

	if coordListPattern.MatchString(trimmed) {
		return nil, core.NewParseError(core.ErrPolyline,
			"Input looks like a coordinate list, not an encoded polyline").
			WithDetails("Encoded polylines contain letters and punctuation beyond digits, commas, periods and hyphens")
	}

	encoded := trimmed
	if p.opts.Unescape() {
		// pasted polylines are often double-escaped by an intermediate
		// JSON/URL encoding layer
		if unescaped, err := url.PathUnescape(trimmed); err == nil {
			encoded = unescaped
		}
	}

	coords, _, err := polyline.DecodeCoords([]byte(encoded))
	if err != nil {
		return nil, core.NewParseError(core.ErrPolyline, "Failed to decode polyline: %v", err).
			WithDetails("The input may be truncated or not a valid encoded polyline")
	}
	if len(coords) == 0 {
		return nil, core.NewParseError(core.ErrPolyline, "Polyline decoded to no coordinates")
	}

	ls := make(orb.LineString, len(coords))
	for i, c := range coords {
		lat, lng := c[0], c[1]
		if err := geo.CheckLatLng(lat, lng); err != nil {
			return nil, core.NewParseError(core.ErrPolyline,
				"Decoded coordinate %d is out of range: %v", i, err).
				WithDetails("Out-of-range values usually mean the input is not an encoded polyline")
		}
		ls[i] = orb.Point{lng, lat}
	}

	f := geojson.NewFeature(ls)
	f.Properties = geojson.Properties{}

	return &core.ParseResult{
		Format:        core.FormatPolyline,
		Type:          core.TypeFeature,
		Feature:       f,
		GeometryCount: 1,
	}, nil
}
