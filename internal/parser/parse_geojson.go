package parser

import (
	"encoding/json"
	"strings"

	"github.com/paulmach/orb/geojson"

	"github.com/geodrop/geodrop/internal/geo"
	"github.com/geodrop/geodrop/internal/style"
	"github.com/geodrop/geodrop/pkg/core"
)

// geometryTypes are the GeoJSON geometry type names.
var geometryTypes = map[string]bool{
	"Point":              true,
	"LineString":         true,
	"Polygon":            true,
	"MultiPoint":         true,
	"MultiLineString":    true,
	"MultiPolygon":       true,
	"GeometryCollection": true,
}

// ParseGeoJSON parses a JSON-encoded GeoJSON document: a
// FeatureCollection, a single Feature, or a bare geometry object. Bare
// geometries are wrapped in a synthetic Feature and flagged as partial,
// since no properties or styling could have been present.
func (p *Parser) ParseGeoJSON(input string) (*core.ParseResult, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return nil, core.NewParseError(core.ErrInvalidJSON, "Empty input is not valid JSON")
	}

	var raw map[string]any
	if err := json.Unmarshal([]byte(trimmed), &raw); err != nil {
		return nil, core.NewParseError(core.ErrInvalidJSON, "Invalid JSON").
			WithDetails("%v", err)
	}

	typ, _ := raw["type"].(string)
	switch {
	case typ == "FeatureCollection":
		if _, ok := raw["features"].([]any); !ok {
			return nil, core.NewParseError(core.ErrInvalidGeoJSONSchema,
				"FeatureCollection is missing its features array")
		}
		return p.parseFeatureCollection(trimmed)
	case typ == "Feature":
		g, ok := raw["geometry"].(map[string]any)
		gtyp, _ := g["type"].(string)
		if !ok || !geometryTypes[gtyp] {
			return nil, core.NewParseError(core.ErrInvalidGeoJSONSchema,
				"Feature is missing a valid geometry object")
		}
		return p.parseFeature(trimmed)
	case geometryTypes[typ]:
		return p.parseBareGeometry(trimmed, raw, typ)
	default:
		return nil, p.geoJSONFallback(trimmed, typ)
	}
}

func (p *Parser) parseFeatureCollection(input string) (*core.ParseResult, error) {
	fc, err := geojson.UnmarshalFeatureCollection([]byte(input))
	if err != nil {
		return nil, core.NewParseError(core.ErrInvalidGeoJSONSchema,
			"Malformed FeatureCollection").WithDetails("%v", err)
	}
	if len(fc.Features) == 0 {
		return nil, core.NewParseError(core.ErrInvalidGeoJSONSchema,
			"FeatureCollection contains no features")
	}

	styles := make([]core.StyleProperties, 0, len(fc.Features))
	for i, f := range fc.Features {
		if err := validateFeatureGeometry(f); err != nil {
			gtyp := ""
			if f.Geometry != nil {
				gtyp = f.Geometry.GeoJSONType()
			}
			return nil, core.NewParseError(core.ErrFeatureGeometry,
				"Feature %d has invalid geometry: %v", i, err).
				WithDetails("%s", geometrySuggestion(gtyp))
		}
		styles = append(styles, style.Extract(f.Properties))
	}

	return &core.ParseResult{
		Format:        core.FormatGeoJSON,
		Type:          core.TypeFeatureCollection,
		Collection:    fc,
		GeometryCount: len(fc.Features),
		Styles:        styles,
	}, nil
}

func (p *Parser) parseFeature(input string) (*core.ParseResult, error) {
	f, err := geojson.UnmarshalFeature([]byte(input))
	if err != nil {
		return nil, core.NewParseError(core.ErrInvalidGeoJSONSchema,
			"Malformed Feature").WithDetails("%v", err)
	}
	if err := validateFeatureGeometry(f); err != nil {
		gtyp := ""
		if f.Geometry != nil {
			gtyp = f.Geometry.GeoJSONType()
		}
		return nil, core.NewParseError(core.ErrFeatureGeometry,
			"Feature has invalid geometry: %v", err).
			WithDetails("%s", geometrySuggestion(gtyp))
	}

	return &core.ParseResult{
		Format:        core.FormatGeoJSON,
		Type:          core.TypeFeature,
		Feature:       f,
		GeometryCount: 1,
		Styles:        []core.StyleProperties{style.Extract(f.Properties)},
	}, nil
}

// parseBareGeometry handles partial GeoJSON: a geometry object with no
// Feature or FeatureCollection wrapper. The geometry is validated,
// wrapped in a synthetic Feature with empty properties, and flagged.
func (p *Parser) parseBareGeometry(input string, raw map[string]any, typ string) (*core.ParseResult, error) {
	if typ == "GeometryCollection" {
		if _, ok := raw["geometries"].([]any); !ok {
			return nil, core.NewParseError(core.ErrInvalidGeoJSONSchema,
				"GeometryCollection is missing its geometries array")
		}
	} else if _, ok := raw["coordinates"]; !ok {
		return nil, core.NewParseError(core.ErrInvalidGeoJSONSchema,
			"%s geometry is missing its coordinates", typ).
			WithDetails("%s", geometrySuggestion(typ))
	}

	if err := geo.ValidateGeometryJSON([]byte(input)); err != nil {
		return nil, core.NewParseError(core.ErrInvalidGeometry,
			"Invalid %s geometry: %v", typ, err).
			WithDetails("%s", geometrySuggestion(typ))
	}

	g, err := geojson.UnmarshalGeometry([]byte(input))
	if err != nil {
		return nil, core.NewParseError(core.ErrInvalidGeometry,
			"Invalid %s geometry: %v", typ, err).
			WithDetails("%s", geometrySuggestion(typ))
	}

	count := 1
	if typ == "GeometryCollection" {
		count = len(raw["geometries"].([]any))
		if count == 0 {
			return nil, core.NewParseError(core.ErrInvalidGeoJSONSchema,
				"GeometryCollection contains no geometries")
		}
	}

	f := geojson.NewFeature(g.Geometry())
	f.Properties = geojson.Properties{}

	return &core.ParseResult{
		Format:         core.FormatGeoJSON,
		Type:           core.TypeGeometry,
		Feature:        f,
		GeometryCount:  count,
		PartialGeoJSON: true,
		Styles:         []core.StyleProperties{{}},
	}, nil
}

// geoJSONFallback produces the best available error for a JSON object
// that passed decoding but matches no GeoJSON shape. The strict
// validator is consulted for a better message before giving up.
func (p *Parser) geoJSONFallback(input, typ string) *core.ParseError {
	if typ != "" {
		return core.NewParseError(core.ErrUnsupportedType,
			"Unsupported GeoJSON type %q", typ).
			WithDetails("Supported types: Point, LineString, Polygon, MultiPoint, MultiLineString, MultiPolygon, GeometryCollection, Feature, FeatureCollection")
	}
	perr := core.NewParseError(core.ErrInvalidGeoJSONSchema,
		"JSON object is not GeoJSON: missing a type field")
	if err := geo.ValidateGeometryJSON([]byte(input)); err != nil {
		return perr.WithDetails("%v", err)
	}
	return perr
}

// validateFeatureGeometry checks that a feature has a geometry and that
// its coordinates survive strict validation.
func validateFeatureGeometry(f *geojson.Feature) error {
	if f.Geometry == nil {
		return errNoGeometry
	}
	b, err := geojson.NewGeometry(f.Geometry).MarshalJSON()
	if err != nil {
		return err
	}
	return geo.ValidateGeometryJSON(b)
}

var errNoGeometry = &core.ParseError{Code: core.ErrFeatureGeometry, Message: "feature has no geometry"}

// geometrySuggestion returns a human-actionable hint about the expected
// coordinate shape for a geometry type.
func geometrySuggestion(typ string) string {
	switch typ {
	case "Point":
		return "Point coordinates should look like [longitude, latitude]"
	case "LineString":
		return "LineString coordinates should be [[lng, lat], [lng, lat], ...] with at least 2 positions"
	case "Polygon":
		return "Polygon coordinates should be [[[lng, lat], ...]] with closed rings (first position equal to last, at least 4 positions)"
	case "MultiPoint":
		return "MultiPoint coordinates should be [[lng, lat], ...]"
	case "MultiLineString":
		return "MultiLineString coordinates should be [[[lng, lat], ...], ...] with at least 2 positions per line"
	case "MultiPolygon":
		return "MultiPolygon coordinates should be [[[[lng, lat], ...]], ...] with closed rings"
	case "GeometryCollection":
		return "GeometryCollection requires a geometries array of geometry objects"
	default:
		return "Geometry coordinates must be finite numbers in [longitude, latitude] order"
	}
}
