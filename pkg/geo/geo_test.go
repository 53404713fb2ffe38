package geo

import (
	"math"
	"testing"

	"github.com/kass/matchmap/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValid(t *testing.T) {
	testCases := []struct {
		name     string
		lon, lat float64
		expected bool
	}{
		{"london", -0.1278, 51.5074, true},
		{"corners", 180, -90, true},
		{"lon too large", 180.0001, 0, false},
		{"lat too small", 0, -90.5, false},
		{"nan", math.NaN(), 10, false},
		{"inf", 10, math.Inf(1), false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Valid(tc.lon, tc.lat))
		})
	}
}

func TestFromCoordinates(t *testing.T) {
	p, ok := FromCoordinates([]float64{139.6503, 35.6762})
	require.True(t, ok)
	assert.Equal(t, models.GeoPoint{Lon: 139.6503, Lat: 35.6762}, p)

	_, ok = FromCoordinates([]float64{1})
	assert.False(t, ok)
	_, ok = FromCoordinates([]float64{1, 2, 3})
	assert.False(t, ok)
	_, ok = FromCoordinates([]float64{51.5, 200})
	assert.False(t, ok, "swapped or out of range pairs are rejected, not clamped")
	_, ok = VenuePoint(nil)
	assert.False(t, ok)
}

func TestRound(t *testing.T) {
	assert.Equal(t, -0.13, Round(-0.1278, 2))
	assert.Equal(t, 51.51, Round(51.5074, 2))
	assert.Equal(t, -0.1278, Round(-0.127800001, 6))
	assert.Equal(t, 51.5074, Round(51.507400002, 6))

	z := Round(-0.0000001, 6)
	assert.False(t, math.Signbit(z), "negative zero must be normalised")
}

func TestDistance(t *testing.T) {
	// London to Paris is roughly 344 km
	d := Distance(51.5074, -0.1278, 48.8566, 2.3522)
	assert.InDelta(t, 344, d, 5)
	assert.InDelta(t, 0, Distance(10, 10, 10, 10), 1e-9)
}

func TestEuclidean(t *testing.T) {
	a := models.GeoPoint{Lon: 0, Lat: 0}
	b := models.GeoPoint{Lon: 3, Lat: 4}
	assert.InDelta(t, 5, Euclidean(a, b), 1e-12)
}

func TestExtent(t *testing.T) {
	box, ok := Extent(nil)
	assert.False(t, ok)

	box, ok = Extent([]models.GeoPoint{
		{Lon: -0.1278, Lat: 51.5074},
		{Lon: 2.3522, Lat: 48.8566},
		{Lon: 500, Lat: 10}, // invalid, ignored
		{Lon: -3.7038, Lat: 40.4168},
	})
	require.True(t, ok)
	assert.Equal(t, -3.7038, box.BottomLeft.Lon)
	assert.Equal(t, 40.4168, box.BottomLeft.Lat)
	assert.Equal(t, 2.3522, box.TopRight.Lon)
	assert.Equal(t, 51.5074, box.TopRight.Lat)

	box, ok = Extent([]models.GeoPoint{{Lon: 5, Lat: 5}})
	require.True(t, ok)
	assert.Equal(t, 0.0, box.LatSpan())
	assert.Equal(t, 0.0, box.LonSpan())
	assert.Equal(t, models.GeoPoint{Lon: 5, Lat: 5}, box.Center())
}
