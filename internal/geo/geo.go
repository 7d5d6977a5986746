// Package geo provides coordinate validation, reprojection, geometry
// validation and arc-length math shared by the format parsers and the
// line-progress clipper.
//
// All parsed output uses GeoJSON [longitude, latitude] ordering in
// EPSG:4326. Input pasted in web mercator (EPSG:3857) is reprojected
// here before normalization.
package geo

import (
	"errors"
	"fmt"
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	geom "github.com/peterstace/simplefeatures/geom"
	"github.com/wroge/wgs84"
)

// ErrInvalidCoordinates is returned when a coordinate pair is outside the
// valid WGS84 range or not a finite number.
var ErrInvalidCoordinates = errors.New("invalid coordinates provided")

// CheckLatLng validates a latitude/longitude pair: both finite,
// lat in [-90,90], lng in [-180,180].
func CheckLatLng(lat, lng float64) error {
	if math.IsNaN(lat) || math.IsInf(lat, 0) || math.IsNaN(lng) || math.IsInf(lng, 0) {
		return fmt.Errorf("%w: non-finite value (lat=%v, lng=%v)", ErrInvalidCoordinates, lat, lng)
	}
	if lat < -90 || lat > 90 {
		return fmt.Errorf("%w: latitude %v out of range [-90, 90]", ErrInvalidCoordinates, lat)
	}
	if lng < -180 || lng > 180 {
		return fmt.Errorf("%w: longitude %v out of range [-180, 180]", ErrInvalidCoordinates, lng)
	}
	return nil
}

// LonLatFrom3857 reprojects a web mercator coordinate to WGS84 lon/lat.
func LonLatFrom3857(x, y float64) (lon, lat float64) {
	epsg := wgs84.EPSG()
	f := epsg.Transform(3857, 4326)
	lon, lat, _ = f(x, y, 0)
	return lon, lat
}

// ValidateGeometryJSON runs a raw GeoJSON geometry object through strict
// structural and topological validation. It rejects wrong-arity
// coordinate tuples, non-finite numbers, too-short lines, unclosed or
// self-intersecting polygon rings. A nil error means the geometry is
// safe to hand to a renderer.
func ValidateGeometryJSON(raw []byte) error {
	g, err := geom.UnmarshalGeoJSON(raw, geom.NoValidate{})
	if err != nil {
		return err
	}
	return g.Validate()
}

// OrbFromGeom converts a simplefeatures geometry into an orb geometry by
// round-tripping through GeoJSON, the common serialization both
// libraries speak.
func OrbFromGeom(g geom.Geometry) (orb.Geometry, error) {
	b, err := g.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("encoding geometry: %w", err)
	}
	gg, err := geojson.UnmarshalGeometry(b)
	if err != nil {
		return nil, fmt.Errorf("decoding geometry: %w", err)
	}
	return gg.Geometry(), nil
}

// TransformGeometry applies fn to every point of g, returning a new
// geometry of the same kind. g is not mutated.
func TransformGeometry(g orb.Geometry, fn func(orb.Point) orb.Point) orb.Geometry {
	switch t := g.(type) {
	case orb.Point:
		return fn(t)
	case orb.MultiPoint:
		out := make(orb.MultiPoint, len(t))
		for i, p := range t {
			out[i] = fn(p)
		}
		return out
	case orb.LineString:
		out := make(orb.LineString, len(t))
		for i, p := range t {
			out[i] = fn(p)
		}
		return out
	case orb.MultiLineString:
		out := make(orb.MultiLineString, len(t))
		for i, ls := range t {
			out[i] = TransformGeometry(ls, fn).(orb.LineString)
		}
		return out
	case orb.Ring:
		out := make(orb.Ring, len(t))
		for i, p := range t {
			out[i] = fn(p)
		}
		return out
	case orb.Polygon:
		out := make(orb.Polygon, len(t))
		for i, r := range t {
			out[i] = TransformGeometry(r, fn).(orb.Ring)
		}
		return out
	case orb.MultiPolygon:
		out := make(orb.MultiPolygon, len(t))
		for i, p := range t {
			out[i] = TransformGeometry(p, fn).(orb.Polygon)
		}
		return out
	case orb.Collection:
		out := make(orb.Collection, len(t))
		for i, m := range t {
			out[i] = TransformGeometry(m, fn)
		}
		return out
	default:
		return g
	}
}

// ReprojectCollection reprojects every feature geometry in fc from the
// given EPSG code to 4326. Only 3857 requires work; 0 and 4326 are
// no-ops. Features are replaced, not mutated.
func ReprojectCollection(fc *geojson.FeatureCollection, fromEPSG int) {
	if fromEPSG == 0 || fromEPSG == 4326 || fc == nil {
		return
	}
	for _, f := range fc.Features {
		ReprojectFeature(f, fromEPSG)
	}
}

// ReprojectFeature reprojects a single feature's geometry in place.
func ReprojectFeature(f *geojson.Feature, fromEPSG int) {
	if f == nil || fromEPSG == 0 || fromEPSG == 4326 {
		return
	}
	f.Geometry = TransformGeometry(f.Geometry, func(p orb.Point) orb.Point {
		lon, lat := LonLatFrom3857(p[0], p[1])
		return orb.Point{lon, lat}
	})
}
