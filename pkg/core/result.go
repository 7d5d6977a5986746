// pkg/core/result.go
package core

import "github.com/paulmach/orb/geojson"

// ParseResult is the success half of every parser's contract. Coordinates
// in the payload are always [longitude, latitude], regardless of the
// input's ordering convention.
//
// Exactly one of Feature and Collection is set, discriminated by Type:
// TypeFeatureCollection means Collection, anything else means Feature.
// A bare input geometry is wrapped in a synthetic Feature and reported
// with Type == TypeGeometry and PartialGeoJSON == true.
type ParseResult struct {
	Format     Format                     `json:"format"`
	Type       DataType                   `json:"type"`
	Feature    *geojson.Feature           `json:"feature,omitempty"`
	Collection *geojson.FeatureCollection `json:"collection,omitempty"`

	// GeometryCount is the number of discrete geometries found: feature
	// count for collections, geometry member count for geometry
	// collections, 1 otherwise. Always >= 1 on success.
	GeometryCount int `json:"geometryCount"`

	// PartialGeoJSON is true only when the input was a bare geometry
	// object with no Feature/FeatureCollection wrapper, meaning no
	// properties or styling could have been present.
	PartialGeoJSON bool `json:"isPartialGeoJSON,omitempty"`

	// Styles holds one extracted style record per feature, in feature
	// order. Empty for formats that carry no styling (WKT, polyline,
	// coordinate lists).
	Styles []StyleProperties `json:"styleProperties,omitempty"`
}

// AsCollection returns the payload as a FeatureCollection, wrapping a
// single Feature on the fly. The returned collection shares the result's
// features; callers must not mutate them.
func (r *ParseResult) AsCollection() *geojson.FeatureCollection {
	if r.Collection != nil {
		return r.Collection
	}
	fc := geojson.NewFeatureCollection()
	if r.Feature != nil {
		fc.Append(r.Feature)
	}
	return fc
}
