//go:build unit

package geo_test

import (
	"math"
	"testing"

	"parkspot/internal/domain/geo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistanceKm(t *testing.T) {
	t.Run("one degree of longitude at the equator", func(t *testing.T) {
		d := geo.DistanceKm(0, 0, 0, 1)
		assert.InDelta(t, 111.19, d, 0.1)
	})

	t.Run("zero distance for identical points", func(t *testing.T) {
		assert.Equal(t, 0.0, geo.DistanceKm(33.3152, 44.3661, 33.3152, 44.3661))
	})

	t.Run("symmetric", func(t *testing.T) {
		a := geo.DistanceKm(33.3152, 44.3661, 36.19, 44.01)
		b := geo.DistanceKm(36.19, 44.01, 33.3152, 44.3661)
		assert.InDelta(t, a, b, 1e-9)
	})

	t.Run("antipodal points near half circumference", func(t *testing.T) {
		d := geo.DistanceKm(0, 0, 0, 180)
		assert.InDelta(t, math.Pi*6371, d, 1)
	})
}

func TestValidateCoordinates(t *testing.T) {
	cases := []struct {
		name     string
		lat, lon float64
		wantErr  bool
	}{
		{name: "origin", lat: 0, lon: 0},
		{name: "latitude north pole", lat: 90, lon: 0},
		{name: "latitude south pole", lat: -90, lon: 0},
		{name: "longitude bounds", lat: 0, lon: 180},
		{name: "longitude negative bound", lat: 0, lon: -180},
		{name: "latitude above range", lat: 90.0001, lon: 0, wantErr: true},
		{name: "latitude below range", lat: -91, lon: 0, wantErr: true},
		{name: "longitude above range", lat: 0, lon: 180.5, wantErr: true},
		{name: "longitude below range", lat: 0, lon: -181, wantErr: true},
		{name: "NaN latitude", lat: math.NaN(), lon: 0, wantErr: true},
		{name: "NaN longitude", lat: 0, lon: math.NaN(), wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := geo.ValidateCoordinates(tc.lat, tc.lon)
			if tc.wantErr {
				require.ErrorIs(t, err, geo.ErrInvalidCoordinates)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestValidateRadiusKm(t *testing.T) {
	cases := []struct {
		name    string
		radius  float64
		wantErr bool
	}{
		{name: "tiny radius", radius: 0.0001},
		{name: "default radius", radius: 10},
		{name: "maximum radius", radius: 100},
		{name: "zero radius", radius: 0, wantErr: true},
		{name: "negative radius", radius: -1, wantErr: true},
		{name: "above maximum", radius: 100.01, wantErr: true},
		{name: "NaN radius", radius: math.NaN(), wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := geo.ValidateRadiusKm(tc.radius)
			if tc.wantErr {
				require.ErrorIs(t, err, geo.ErrInvalidRadius)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestRoundKm(t *testing.T) {
	assert.Equal(t, 111.19, geo.RoundKm(111.1949))
	assert.Equal(t, 111.2, geo.RoundKm(111.195))
	assert.Equal(t, 0.0, geo.RoundKm(0))
}
