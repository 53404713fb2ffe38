package bounds

import (
	"math"
	"math/rand"
	"testing"

	"github.com/kass/matchmap/pkg/models"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	wembley     = models.GeoPoint{Lon: -0.2795, Lat: 51.5560}
	emirates    = models.GeoPoint{Lon: -0.1086, Lat: 51.5549}
	stamford    = models.GeoPoint{Lon: -0.1910, Lat: 51.4817}
	newcastle   = models.GeoPoint{Lon: -1.6216, Lat: 54.9756}
	southampton = models.GeoPoint{Lon: -1.3910, Lat: 50.9058}
)

func assertFinite(t *testing.T, r models.MapRegion) {
	t.Helper()
	for _, v := range []float64{r.Center.Lon, r.Center.Lat, r.LatitudeSpan, r.LongitudeSpan} {
		assert.False(t, math.IsNaN(v) || math.IsInf(v, 0), "non-finite region %+v", r)
	}
}

func TestAdaptiveBoundsFallbackRegion(t *testing.T) {
	testCases := []struct {
		name   string
		points []models.GeoPoint
		opts   Options
		center models.GeoPoint
		span   float64
	}{
		{"nil points", nil, DefaultOptions(), DefaultFallbackCenter, DefaultSpan},
		{"zero options", []models.GeoPoint{}, Options{}, DefaultFallbackCenter, DefaultSpan},
		{"only invalid points", []models.GeoPoint{{Lon: 200, Lat: 0}, {Lon: math.NaN(), Lat: 1}}, DefaultOptions(), DefaultFallbackCenter, DefaultSpan},
		{"custom fallback", nil, Options{FallbackCenter: models.GeoPoint{Lon: -3.7, Lat: 40.4}, DefaultSpan: 5}, models.GeoPoint{Lon: -3.7, Lat: 40.4}, 5},
		{"default span is clamped", nil, Options{DefaultSpan: 100}, DefaultFallbackCenter, DefaultMaxSpan},
		{"invalid fallback center", nil, Options{FallbackCenter: models.GeoPoint{Lon: 0, Lat: 120}}, DefaultFallbackCenter, DefaultSpan},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := AdaptiveBounds(tc.points, tc.opts)
			assertFinite(t, r)
			assert.Equal(t, tc.center, r.Center)
			assert.Equal(t, tc.span, r.LatitudeSpan)
			assert.Equal(t, tc.span, r.LongitudeSpan)
		})
	}
}

func TestAdaptiveBoundsSinglePoint(t *testing.T) {
	opts := DefaultOptions()
	r := AdaptiveBounds([]models.GeoPoint{wembley}, opts)
	assertFinite(t, r)
	assert.Equal(t, wembley, r.Center)
	assert.Equal(t, opts.MinSpan, r.LatitudeSpan)
	assert.Equal(t, opts.MinSpan, r.LongitudeSpan)

	// invalid points do not affect the result
	noisy := AdaptiveBounds([]models.GeoPoint{{Lon: math.NaN(), Lat: 0}, wembley, {Lon: 0, Lat: 100}}, opts)
	assert.Equal(t, r, noisy)
}

func TestAdaptiveBoundsSwapsSpanLimits(t *testing.T) {
	r := AdaptiveBounds([]models.GeoPoint{wembley}, Options{MinSpan: 10, MaxSpan: 1})
	assert.Equal(t, 1.0, r.LatitudeSpan)
	assert.Equal(t, 1.0, r.LongitudeSpan)

	r = AdaptiveBounds([]models.GeoPoint{newcastle, southampton}, Options{MinSpan: 3, MaxSpan: 0.5})
	assert.Equal(t, 3.0, r.LatitudeSpan)
	assert.Equal(t, 0.5, r.LongitudeSpan)
}

func TestAdaptiveBoundsPadding(t *testing.T) {
	opts := DefaultOptions()

	testCases := []struct {
		name    string
		points  []models.GeoPoint
		setting Setting
		city    string
		padding float64
	}{
		{"london grounds are urban", []models.GeoPoint{wembley, emirates, stamford}, Urban, "London", opts.UrbanPadding},
		{"england wide is rural", []models.GeoPoint{newcastle, southampton}, Rural, "", opts.RuralPadding},
		{"tight cluster without a city", []models.GeoPoint{{Lon: 7.0, Lat: 46.0}, {Lon: 7.05, Lat: 46.02}}, Urban, "", opts.UrbanPadding},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r, cls := Default().Frame(tc.points, opts)
			assert.Equal(t, tc.setting, cls.Setting)
			assert.Equal(t, tc.city, cls.City)

			var latMin, latMax, lonMin, lonMax = 90.0, -90.0, 180.0, -180.0
			for _, p := range tc.points {
				latMin, latMax = math.Min(latMin, p.Lat), math.Max(latMax, p.Lat)
				lonMin, lonMax = math.Min(lonMin, p.Lon), math.Max(lonMax, p.Lon)
			}
			assert.InDelta(t, (lonMin+lonMax)/2, r.Center.Lon, 1e-9)
			assert.InDelta(t, (latMin+latMax)/2, r.Center.Lat, 1e-9)
			assert.InDelta(t, (latMax-latMin)*tc.padding, r.LatitudeSpan, 1e-9)
			assert.InDelta(t, (lonMax-lonMin)*tc.padding, r.LongitudeSpan, 1e-9)
		})
	}
}

func TestAdaptiveBoundsClampsToMaxSpan(t *testing.T) {
	r := AdaptiveBounds([]models.GeoPoint{{Lon: -170, Lat: -80}, {Lon: 170, Lat: 80}}, DefaultOptions())
	assert.Equal(t, DefaultMaxSpan, r.LatitudeSpan)
	assert.Equal(t, DefaultMaxSpan, r.LongitudeSpan)
	assert.Equal(t, models.GeoPoint{Lon: 0, Lat: 0}, r.Center)
}

func TestCalculatorWithoutUrbanCatalog(t *testing.T) {
	c, err := NewCalculator(WithUrbanCenters(nil))
	require.NoError(t, err)
	opts := DefaultOptions()

	r, cls := c.Frame([]models.GeoPoint{newcastle, southampton}, opts)
	assert.Equal(t, Unknown, cls.Setting)
	assert.InDelta(t, (newcastle.Lat-southampton.Lat)*opts.BasePadding, r.LatitudeSpan, 1e-9)

	_, cls = c.Frame([]models.GeoPoint{wembley}, opts)
	assert.Equal(t, Urban, cls.Setting)
	assert.True(t, cls.Tight)
}

func TestCalculatorOptions(t *testing.T) {
	c, err := NewCalculator(WithUrbanRadius(2))
	require.NoError(t, err)

	_, cls := c.Frame([]models.GeoPoint{newcastle, southampton}, DefaultOptions())
	assert.Equal(t, Urban, cls.Setting)
	assert.Equal(t, "Birmingham", cls.City)

	_, err = NewCalculator(WithUrbanCenters([]*models.CatalogEntry{
		{ID: "Atlantis", Value: "Atlantis", Location: &models.GeoPoint{Lon: 0, Lat: 95}},
	}))
	assert.Error(t, err)
}

func TestClassify(t *testing.T) {
	box := models.BoundingBox{BottomLeft: emirates, TopRight: emirates}
	cls := Classify(box)
	assert.Equal(t, Classification{Setting: Urban, City: "London", Tight: true}, cls)

	box = models.BoundingBox{
		BottomLeft: models.GeoPoint{Lon: -30, Lat: 30},
		TopRight:   models.GeoPoint{Lon: -20, Lat: 40},
	}
	assert.Equal(t, Rural, Classify(box).Setting)
}

func TestClassifyExtent(t *testing.T) {
	tests := []struct {
		name string
		box  models.BoundingBox
		km   float64
	}{
		{"single point", models.BoundingBox{BottomLeft: emirates, TopRight: emirates}, 0},
		{"north london", models.BoundingBox{
			BottomLeft: models.GeoPoint{Lon: wembley.Lon, Lat: emirates.Lat},
			TopRight:   models.GeoPoint{Lon: emirates.Lon, Lat: wembley.Lat},
		}, 11.82},
		{"mid atlantic", models.BoundingBox{
			BottomLeft: models.GeoPoint{Lon: -30, Lat: 30},
			TopRight:   models.GeoPoint{Lon: -20, Lat: 40},
		}, 1435.33},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.km, Classify(tt.box).ExtentKm, 0.01)
		})
	}
}

func TestFrameReportsExtent(t *testing.T) {
	_, cls := Default().Frame([]models.GeoPoint{wembley, emirates}, DefaultOptions())
	assert.InDelta(t, 11.82, cls.ExtentKm, 0.01)

	_, cls = Default().Frame(nil, DefaultOptions())
	assert.Zero(t, cls.ExtentKm)
}

func TestFrameLogsDecision(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	c, err := NewCalculator(WithLogger(logger))
	require.NoError(t, err)

	c.AdaptiveBounds([]models.GeoPoint{wembley, emirates}, DefaultOptions())
	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, "framed points", entry.Message)
	assert.Equal(t, Urban, entry.Data["setting"])

	c.AdaptiveBounds(nil, DefaultOptions())
	assert.Equal(t, "no valid points, using fallback region", hook.LastEntry().Message)
}

func TestUrbanCentersAreValid(t *testing.T) {
	seen := make(map[string]bool)
	for _, e := range UrbanCenters() {
		assert.False(t, seen[e.ID], "duplicate urban centre %s", e.ID)
		seen[e.ID] = true
	}
	c, err := NewCalculator()
	require.NoError(t, err)
	assert.Equal(t, int64(len(urbanCenters)), c.urban.Count())
}

func BenchmarkAdaptiveBounds(b *testing.B) {
	r := rand.New(rand.NewSource(7))
	points := make([]models.GeoPoint, 200)
	for i := range points {
		points[i] = models.GeoPoint{Lon: r.Float64()*20 - 5, Lat: r.Float64()*10 + 40}
	}
	c := Default()
	opts := DefaultOptions()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = c.AdaptiveBounds(points, opts)
	}
}
