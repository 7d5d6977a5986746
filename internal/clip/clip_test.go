package clip

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geodrop/geodrop/internal/geo"
)

func lineCollection(lines ...orb.LineString) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, ls := range lines {
		fc.Append(geojson.NewFeature(ls))
	}
	return fc
}

func TestByProgressRangeValidation(t *testing.T) {
	fc := lineCollection(orb.LineString{{0, 0}, {1, 1}})

	for _, pct := range []float64{-1, -0.001, 100.001, 101, 250} {
		result, err := ByProgress(fc, pct)
		assert.Nil(t, result, "pct=%v", pct)
		assert.ErrorIs(t, err, ErrProgressOutOfRange, "pct=%v", pct)
	}
}

func TestByProgressIdentityAt100(t *testing.T) {
	fc := lineCollection(orb.LineString{{0, 0}, {1, 1}, {2, 2}})

	result, err := ByProgress(fc, 100)
	require.NoError(t, err)
	assert.Same(t, fc, result)
}

func TestByProgressZeroCollapsesToStart(t *testing.T) {
	fc := lineCollection(orb.LineString{{10, 20}, {11, 21}, {12, 22}, {13, 23}})

	result, err := ByProgress(fc, 0)
	require.NoError(t, err)
	require.Len(t, result.Features, 1)

	ls, ok := result.Features[0].Geometry.(orb.LineString)
	require.True(t, ok)
	require.Len(t, ls, 2)
	assert.Equal(t, orb.Point{10, 20}, ls[0])
	assert.Equal(t, orb.Point{10, 20}, ls[1])

	// the input collection is untouched
	original := fc.Features[0].Geometry.(orb.LineString)
	assert.Len(t, original, 4)
}

func TestByProgressHalfway(t *testing.T) {
	full := orb.LineString{{0, 0}, {1, 0}, {2, 0}, {3, 0}}
	fc := lineCollection(full)

	result, err := ByProgress(fc, 50)
	require.NoError(t, err)

	ls := result.Features[0].Geometry.(orb.LineString)
	assert.GreaterOrEqual(t, len(ls), 2)
	assert.LessOrEqual(t, len(ls), 4)

	// along the equator the cut lands at half the span
	end := ls[len(ls)-1]
	assert.InDelta(t, 1.5, end[0], 0.01)
	assert.InDelta(t, 0, end[1], 1e-9)

	// clipped length tracks half the original arc length
	assert.InDelta(t, geo.LineLengthKm(full)/2, geo.LineLengthKm(ls), 0.5)
}

func TestByProgressMultiLineStringComponentsIndependent(t *testing.T) {
	mls := orb.MultiLineString{
		{{0, 0}, {1, 1}},
		{{2, 2}, {3, 3}},
	}
	fc := geojson.NewFeatureCollection()
	fc.Append(geojson.NewFeature(mls))

	result, err := ByProgress(fc, 50)
	require.NoError(t, err)

	clipped, ok := result.Features[0].Geometry.(orb.MultiLineString)
	require.True(t, ok)
	require.Len(t, clipped, 2)

	// each component is truncated to half its own length, not a shared
	// budget across components
	for i, component := range clipped {
		assert.InDelta(t, geo.LineLengthKm(mls[i])/2, geo.LineLengthKm(component), 0.5,
			"component %d", i)
	}
	// order preserved: first component still starts at the origin
	assert.Equal(t, orb.Point{0, 0}, clipped[0][0])
	assert.Equal(t, orb.Point{2, 2}, clipped[1][0])
}

func TestByProgressPassesThroughOtherGeometries(t *testing.T) {
	fc := geojson.NewFeatureCollection()
	point := geojson.NewFeature(orb.Point{5, 5})
	polygon := geojson.NewFeature(orb.Polygon{{{0, 0}, {1, 0}, {1, 1}, {0, 0}}})
	line := geojson.NewFeature(orb.LineString{{0, 0}, {1, 0}})
	fc.Append(point)
	fc.Append(polygon)
	fc.Append(line)

	result, err := ByProgress(fc, 25)
	require.NoError(t, err)
	require.Len(t, result.Features, 3)

	assert.Same(t, point, result.Features[0])
	assert.Same(t, polygon, result.Features[1])
	assert.NotSame(t, line, result.Features[2])
}

func TestByProgressShortLinePassesThrough(t *testing.T) {
	// a 1-point "line" cannot be clipped and must survive unchanged
	short := orb.LineString{{7, 7}}
	fc := lineCollection(short)

	result, err := ByProgress(fc, 40)
	require.NoError(t, err)

	ls := result.Features[0].Geometry.(orb.LineString)
	assert.Equal(t, short, ls)
}

func TestByProgressZeroLengthLineFallsBack(t *testing.T) {
	// all points identical: zero arc length, slicing cannot apply and
	// the original geometry must come back unchanged
	degenerate := orb.LineString{{4, 4}, {4, 4}, {4, 4}}

	for _, pct := range []float64{25, 50, 99.9} {
		fc := lineCollection(degenerate)
		result, err := ByProgress(fc, pct)
		require.NoError(t, err, "pct=%v", pct)

		ls := result.Features[0].Geometry.(orb.LineString)
		assert.Equal(t, degenerate, ls, "pct=%v", pct)
	}
}

func TestByProgressKeepsIdentityAndProperties(t *testing.T) {
	f := geojson.NewFeature(orb.LineString{{0, 0}, {1, 0}})
	f.ID = "route-7"
	f.Properties = geojson.Properties{"name": "Route 7"}
	fc := geojson.NewFeatureCollection()
	fc.Append(f)

	result, err := ByProgress(fc, 50)
	require.NoError(t, err)

	clipped := result.Features[0]
	assert.Equal(t, "route-7", clipped.ID)
	assert.Equal(t, "Route 7", clipped.Properties["name"])
}
