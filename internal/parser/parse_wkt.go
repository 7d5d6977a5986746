package parser

import (
	"strings"

	"github.com/paulmach/orb/geojson"
	geom "github.com/peterstace/simplefeatures/geom"

	"github.com/geodrop/geodrop/internal/geo"
	"github.com/geodrop/geodrop/pkg/core"
)

// ParseWKT parses a Well-Known Text geometry. Keyword matching is
// case-insensitive. The result is always exactly one Feature with empty
// properties; WKT carries no styling.
func (p *Parser) ParseWKT(input string) (*core.ParseResult, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return nil, core.NewParseError(core.ErrWKT, "Empty WKT string")
	}

	g, err := geom.UnmarshalWKT(trimmed, geom.NoValidate{})
	if err != nil {
		return nil, core.NewParseError(core.ErrWKT, "Failed to parse WKT: %v", err).
			WithDetails("Supported keywords: POINT, LINESTRING, POLYGON, MULTIPOINT, MULTILINESTRING, MULTIPOLYGON")
	}
	if g.IsEmpty() {
		return nil, core.NewParseError(core.ErrWKT, "WKT parsed to an empty geometry")
	}
	if err := g.Validate(); err != nil {
		return nil, core.NewParseError(core.ErrWKT,
			"WKT parsed successfully but resulted in invalid geometry").
			WithDetails("%v", err)
	}

	og, err := geo.OrbFromGeom(g)
	if err != nil {
		return nil, core.NewParseError(core.ErrWKT, "Failed to convert WKT geometry: %v", err)
	}

	f := geojson.NewFeature(og)
	f.Properties = geojson.Properties{}

	return &core.ParseResult{
		Format:        core.FormatWKT,
		Type:          core.TypeFeature,
		Feature:       f,
		GeometryCount: 1,
	}, nil
}
