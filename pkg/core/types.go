// pkg/core/types.go
package core

// Format identifies the source format that produced a parse result.
type Format string

const (
	FormatAuto        Format = "auto"
	FormatGeoJSON     Format = "geojson"
	FormatWKT         Format = "wkt"
	FormatPolyline    Format = "polyline"
	FormatCoordinates Format = "coordinates"
)

// Formats lists the concrete input formats in dispatcher priority order.
// GeoJSON and WKT are strict grammars and must run before the permissive
// polyline and coordinate-list parsers, otherwise numeric-looking input
// is misclassified.
var Formats = []Format{FormatGeoJSON, FormatWKT, FormatPolyline, FormatCoordinates}

// Valid reports whether f names a concrete parseable format (not auto).
func (f Format) Valid() bool {
	switch f {
	case FormatGeoJSON, FormatWKT, FormatPolyline, FormatCoordinates:
		return true
	}
	return false
}

// DataType echoes the shape of the parsed payload.
type DataType string

const (
	TypeFeatureCollection DataType = "FeatureCollection"
	TypeFeature           DataType = "Feature"
	TypeGeometry          DataType = "Geometry"
)
