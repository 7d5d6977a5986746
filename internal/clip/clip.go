// Package clip recomputes partial line geometries for progress-based
// rendering. Given a feature collection and a percentage, every
// LineString and MultiLineString feature is truncated to that fraction
// of its great-circle arc length; all other geometry kinds pass through
// unchanged.
//
// The transform is pure and synchronous: it never mutates its input and
// is safe to call concurrently for independent layers.
package clip

import (
	"errors"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/geodrop/geodrop/internal/geo"
)

// ErrProgressOutOfRange is the clipper's only hard failure: the
// percentage must be within [0, 100].
var ErrProgressOutOfRange = errors.New("progress percentage must be between 0 and 100")

// ByProgress returns a copy of fc with every line feature truncated to
// pct percent of its arc length.
//
//   - pct == 100 returns fc itself, untouched (identity fast path).
//   - pct == 0 collapses each line to a degenerate 2-point line at its
//     start point, keeping the type shape stable for the renderer.
//   - Otherwise the sub-line from the start to pct% of the total length
//     is produced, interpolating within the segment that straddles the
//     cut point. A line that cannot be sliced (degenerate or zero
//     length) falls back to its original geometry rather than failing
//     the whole batch.
//
// MultiLineString components are clipped independently to the same
// percentage, preserving component order.
func ByProgress(fc *geojson.FeatureCollection, pct float64) (*geojson.FeatureCollection, error) {
	if pct < 0 || pct > 100 {
		return nil, ErrProgressOutOfRange
	}
	if pct == 100 {
		return fc, nil
	}

	out := geojson.NewFeatureCollection()
	for _, f := range fc.Features {
		switch g := f.Geometry.(type) {
		case orb.LineString:
			out.Append(cloneWithGeometry(f, clipLine(g, pct)))
		case orb.MultiLineString:
			clipped := make(orb.MultiLineString, len(g))
			for i, component := range g {
				clipped[i] = clipLine(component, pct)
			}
			out.Append(cloneWithGeometry(f, clipped))
		default:
			out.Append(f)
		}
	}
	return out, nil
}

// clipLine truncates a single line to pct percent of its arc length.
// Lines with fewer than 2 points pass through unchanged.
func clipLine(ls orb.LineString, pct float64) orb.LineString {
	if len(ls) < 2 {
		return ls
	}
	if pct == 0 {
		return orb.LineString{ls[0], ls[0]}
	}

	total := geo.LineLengthKm(ls)
	if total == 0 {
		return ls
	}
	sliced, ok := geo.SliceLineKm(ls, total*pct/100)
	if !ok {
		return ls
	}
	return sliced
}

// cloneWithGeometry builds a new feature carrying the clipped geometry
// and the original feature's identity and properties.
func cloneWithGeometry(f *geojson.Feature, g orb.Geometry) *geojson.Feature {
	out := geojson.NewFeature(g)
	out.ID = f.ID
	out.Properties = f.Properties
	return out
}
