package parser

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/geodrop/geodrop/internal/geo"
	"github.com/geodrop/geodrop/pkg/core"
)

// numberPattern extracts signed decimal or scientific-notation numbers
// from raw text, making the parser agnostic to whatever separators
// surround them (commas, spaces, semicolons, newlines, or any mixture).
var numberPattern = regexp.MustCompile(`[-+]?(?:\d+\.?\d*|\.\d+)(?:[eE][-+]?\d+)?`)

// ParseLatLngList parses free-form coordinate text into a
// FeatureCollection of Points. Numbers are consumed in consecutive
// (lat, lng) pairs and normalized to GeoJSON [lng, lat]; the first
// out-of-range value aborts the whole parse. Each point carries a
// 1-based "index" property reflecting input order.
func (p *Parser) ParseLatLngList(input string) (*core.ParseResult, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return nil, core.NewParseError(core.ErrLatLngList, "Empty coordinate input")
	}

	nums := numberPattern.FindAllString(trimmed, -1)
	if len(nums) == 0 {
		return nil, core.NewParseError(core.ErrLatLngList, "No valid numbers found in input").
			WithDetails("Expected coordinates like 40.7484,-73.9857")
	}
	if len(nums)%2 != 0 {
		return nil, core.NewParseError(core.ErrLatLngList,
			"Odd number of coordinates (%d)", len(nums)).
			WithDetails("Coordinates must come in complete lat,lng pairs")
	}

	fc := geojson.NewFeatureCollection()
	for i := 0; i < len(nums); i += 2 {
		pair := i/2 + 1
		lat, err := strconv.ParseFloat(nums[i], 64)
		if err != nil {
			return nil, core.NewParseError(core.ErrLatLngList,
				"Pair %d has an unparseable latitude %q", pair, nums[i])
		}
		lng, err := strconv.ParseFloat(nums[i+1], 64)
		if err != nil {
			return nil, core.NewParseError(core.ErrLatLngList,
				"Pair %d has an unparseable longitude %q", pair, nums[i+1])
		}
		if err := geo.CheckLatLng(lat, lng); err != nil {
			return nil, core.NewParseError(core.ErrLatLngList,
				"Pair %d is invalid: %v", pair, err).
				WithDetails("Coordinates are read as lat,lng pairs: latitude in [-90, 90], longitude in [-180, 180]")
		}

		f := geojson.NewFeature(orb.Point{lng, lat})
		f.Properties = geojson.Properties{"index": pair}
		fc.Append(f)
	}

	return &core.ParseResult{
		Format:        core.FormatCoordinates,
		Type:          core.TypeFeatureCollection,
		Collection:    fc,
		GeometryCount: len(fc.Features),
	}, nil
}
