package parser

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geodrop/geodrop/pkg/core"
)

func TestParseLatLngList(t *testing.T) {
	p := newTestParser()

	tests := []struct {
		name      string
		input     string
		wantPairs [][2]float64 // [lng, lat], output order
	}{
		{
			name:      "comma separated pair",
			input:     "40.7484,-73.9857",
			wantPairs: [][2]float64{{-73.9857, 40.7484}},
		},
		{
			name:      "space separated",
			input:     "40.7484 -73.9857",
			wantPairs: [][2]float64{{-73.9857, 40.7484}},
		},
		{
			name:      "semicolons and newlines mixed",
			input:     "40.7484,-73.9857; 40.7128,-74.0060\n34.0522,-118.2437",
			wantPairs: [][2]float64{{-73.9857, 40.7484}, {-74.0060, 40.7128}, {-118.2437, 34.0522}},
		},
		{
			name:      "scientific notation",
			input:     "4.07484e1,-7.39857e1",
			wantPairs: [][2]float64{{-73.9857, 40.7484}},
		},
		{
			name:      "surrounding prose ignored",
			input:     "lat: 40.7484 lng: -73.9857",
			wantPairs: [][2]float64{{-73.9857, 40.7484}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := p.ParseLatLngList(tt.input)
			require.NoError(t, err)
			assert.Equal(t, core.FormatCoordinates, result.Format)
			assert.Equal(t, core.TypeFeatureCollection, result.Type)
			assert.Equal(t, len(tt.wantPairs), result.GeometryCount)
			require.NotNil(t, result.Collection)
			require.Len(t, result.Collection.Features, len(tt.wantPairs))

			for i, want := range tt.wantPairs {
				f := result.Collection.Features[i]
				pt, ok := f.Geometry.(orb.Point)
				require.True(t, ok)
				assert.InDelta(t, want[0], pt[0], 1e-9)
				assert.InDelta(t, want[1], pt[1], 1e-9)
				// 1-based index property reflects input order
				assert.Equal(t, i+1, f.Properties["index"])
			}
		})
	}
}

func TestParseLatLngListErrors(t *testing.T) {
	p := newTestParser()

	tests := []struct {
		name        string
		input       string
		wantMessage string
	}{
		{"empty", "", "Empty coordinate input"},
		{"no numbers", "north of the river", "No valid numbers found"},
		{"odd count", "40.7484,-73.9857,40.7128", "Odd number of coordinates"},
		{"latitude out of range", "91.0,0.0", "Pair 1 is invalid"},
		{"longitude out of range", "0.0,181.0", "Pair 1 is invalid"},
		{
			name:        "later pair aborts whole parse",
			input:       "40.0,-73.0 95.0,-73.0",
			wantMessage: "Pair 2 is invalid",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := p.ParseLatLngList(tt.input)
			assert.Nil(t, result)
			perr := parseErr(t, err)
			assert.Equal(t, core.ErrLatLngList, perr.Code)
			assert.Contains(t, perr.Message, tt.wantMessage)
		})
	}
}
