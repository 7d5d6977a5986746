package geo

import (
	orbgeo "github.com/paulmach/orb/geo"

	"github.com/paulmach/orb"
)

// LineLengthKm returns the cumulative great-circle length of a line in
// kilometers, accumulated vertex to vertex with the haversine formula.
func LineLengthKm(ls orb.LineString) float64 {
	var total float64
	for i := 1; i < len(ls); i++ {
		total += orbgeo.DistanceHaversine(ls[i-1], ls[i]) / 1000
	}
	return total
}

// SliceLineKm returns the sub-line from the start of ls up to targetKm
// along its arc length, interpolating within the segment that straddles
// the cut point. The second return is false when ls cannot be sliced
// (fewer than 2 points, or zero total length); callers are expected to
// fall back to the original line.
func SliceLineKm(ls orb.LineString, targetKm float64) (orb.LineString, bool) {
	if len(ls) < 2 {
		return nil, false
	}
	if targetKm <= 0 {
		return orb.LineString{ls[0], ls[0]}, true
	}

	out := orb.LineString{ls[0]}
	var travelled float64
	for i := 1; i < len(ls); i++ {
		seg := orbgeo.DistanceHaversine(ls[i-1], ls[i]) / 1000
		if seg == 0 {
			continue
		}
		if travelled+seg < targetKm {
			travelled += seg
			out = append(out, ls[i])
			continue
		}
		// cut point lies within this segment
		frac := (targetKm - travelled) / seg
		out = append(out, interpolate(ls[i-1], ls[i], frac))
		return out, true
	}

	// target beyond the end of the line
	if len(out) < 2 {
		return nil, false
	}
	return out, true
}

// interpolate returns the point a fraction frac of the way from a to b.
// Linear in lon/lat, which is the resolution the cut segment warrants.
func interpolate(a, b orb.Point, frac float64) orb.Point {
	return orb.Point{
		a[0] + (b[0]-a[0])*frac,
		a[1] + (b[1]-a[1])*frac,
	}
}
