package timezone

import (
	"testing"

	"github.com/kass/matchmap/pkg/models"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	london = []float64{-0.1278, 51.5074}
	tokyo  = []float64{139.7146, 35.6778}
)

func TestResolve(t *testing.T) {
	testCases := []struct {
		name     string
		fixture  *models.Fixture
		zone     string
		source   string
		verified bool
	}{
		{"nil fixture", nil, "UTC", SourceDefault, false},
		{"empty fixture", &models.Fixture{}, "UTC", SourceDefault, false},
		{
			"explicit claim wins over contradicting venue",
			&models.Fixture{Timezone: "Asia/Tokyo", Venue: &models.Venue{City: "London", Coordinates: london}},
			"Asia/Tokyo", SourceExplicit, true,
		},
		{
			"utc claim is treated as unknown",
			&models.Fixture{Timezone: "UTC", Venue: &models.Venue{Coordinates: london}},
			"Europe/London", SourceCoordinates, true,
		},
		{
			"unrecognized claim falls through",
			&models.Fixture{Timezone: "Mars/Olympus_Mons", Venue: &models.Venue{City: "Madrid"}},
			"Europe/Madrid", SourceCity, true,
		},
		{
			"coordinates beat city",
			&models.Fixture{Venue: &models.Venue{City: "Madrid", Coordinates: tokyo}},
			"Asia/Tokyo", SourceCoordinates, true,
		},
		{
			"out of range coordinates are ignored",
			&models.Fixture{Venue: &models.Venue{City: "Rome", Coordinates: []float64{200, 10}}},
			"Europe/Rome", SourceCity, true,
		},
		{
			"malformed coordinates are ignored",
			&models.Fixture{Venue: &models.Venue{City: "Rome", Coordinates: []float64{12.45}}},
			"Europe/Rome", SourceCity, true,
		},
		{
			"coordinates far from any venue",
			&models.Fixture{Venue: &models.Venue{Coordinates: []float64{-30, 40}, Country: "Portugal"}},
			"Europe/Lisbon", SourceCountry, true,
		},
		{
			"city beats country",
			&models.Fixture{Venue: &models.Venue{City: "Madrid", Country: "England"}},
			"Europe/Madrid", SourceCity, true,
		},
		{
			"unknown city falls back to country",
			&models.Fixture{Venue: &models.Venue{City: "Smallville", Country: "Brazil"}},
			"America/Sao_Paulo", SourceCountry, true,
		},
		{
			"city match is case sensitive",
			&models.Fixture{Venue: &models.Venue{City: "london"}},
			"UTC", SourceDefault, false,
		},
		{
			"hyphenated country names",
			&models.Fixture{Venue: &models.Venue{Country: "Saudi-Arabia"}},
			"Asia/Riyadh", SourceCountry, true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			res := Resolve(tc.fixture)
			assert.Equal(t, tc.zone, res.ZoneID)
			assert.Equal(t, tc.source, res.Source)
			assert.Equal(t, tc.verified, res.IsValidated)
			assert.True(t, IsRecognized(res.ZoneID))
		})
	}
}

func TestResolveCoordinateCutoff(t *testing.T) {
	// Eden Park is the only catalogued venue near Auckland
	near := &models.Fixture{Venue: &models.Venue{Coordinates: []float64{174.7447 + 0.95, -36.875}}}
	res := Resolve(near)
	assert.Equal(t, "Pacific/Auckland", res.ZoneID)
	assert.Equal(t, "Eden Park", res.CatalogName)
	assert.Less(t, res.Distance, 1.0)

	far := &models.Fixture{Venue: &models.Venue{Coordinates: []float64{174.7447 + 1.2, -36.875}}}
	assert.Equal(t, "UTC", Resolve(far).ZoneID)
}

func TestResolveRoundsCoordinates(t *testing.T) {
	a := Resolve(&models.Fixture{Venue: &models.Venue{Coordinates: []float64{-0.12781, 51.50744}}})
	b := Resolve(&models.Fixture{Venue: &models.Venue{Coordinates: []float64{-0.1278, 51.5074}}})
	assert.Equal(t, a, b)
}

func TestResolverCatalogEntries(t *testing.T) {
	malaga := &models.Fixture{Venue: &models.Venue{Coordinates: []float64{-4.4266, 36.7340}}}
	assert.Equal(t, "UTC", Resolve(malaga).ZoneID, "no static venue within a degree")

	r, err := NewResolver(WithCatalogEntries([]*models.CatalogEntry{
		{ID: "La Rosaleda", Value: "Europe/Madrid", Location: &models.GeoPoint{Lon: -4.4266, Lat: 36.7340}},
	}))
	require.NoError(t, err)
	assert.Equal(t, int64(len(venueCatalog)+1), r.CatalogSize())

	res := r.Resolve(malaga)
	assert.Equal(t, "Europe/Madrid", res.ZoneID)
	assert.Equal(t, "La Rosaleda", res.CatalogName)

	_, err = NewResolver(WithCatalogEntries([]*models.CatalogEntry{
		{ID: "Gran Canaria", Value: "Atlantic/Canary", Location: &models.GeoPoint{Lon: -15.4563, Lat: 28.1001}},
	}))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownZone)
	assert.Contains(t, err.Error(), "Gran Canaria")

	_, err = NewResolver(WithCatalogEntries([]*models.CatalogEntry{
		{ID: "Nowhere", Value: "Europe/Madrid", Location: &models.GeoPoint{Lon: 0, Lat: 95}},
	}))
	assert.Error(t, err)
}

func TestResolverLogsStrategy(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	r, err := NewResolver(WithLogger(logger))
	require.NoError(t, err)

	r.Resolve(&models.Fixture{Timezone: "Not/AZone", Venue: &models.Venue{Country: "Japan"}})

	entries := hook.AllEntries()
	require.Len(t, entries, 2)
	assert.Equal(t, "discarding unrecognized zone candidate", entries[0].Message)
	assert.Equal(t, SourceExplicit, entries[0].Data["source"])
	assert.Equal(t, "timezone resolved", entries[1].Message)
	assert.Equal(t, SourceCountry, entries[1].Data["source"])
	assert.Equal(t, "Asia/Tokyo", entries[1].Data["zone"])
}

func TestCatalogConsistency(t *testing.T) {
	for _, v := range venueCatalog {
		assert.True(t, IsRecognized(v.zone), "venue %s has unrecognized zone %s", v.name, v.zone)
	}
	for city, zone := range cityZones {
		assert.True(t, IsRecognized(zone), "city %s has unrecognized zone %s", city, zone)
	}
	for country, zone := range countryZones {
		assert.True(t, IsRecognized(zone), "country %s has unrecognized zone %s", country, zone)
	}
	for zone := range fallbackAbbreviations {
		assert.True(t, IsRecognized(zone), "abbreviation for unrecognized zone %s", zone)
	}
	for _, zone := range RecognizedZones() {
		_, ok := locations[zone]
		assert.True(t, ok, "zone %s does not load", zone)
		if zone != DefaultZone {
			_, ok = fallbackAbbreviations[zone]
			assert.True(t, ok, "zone %s has no curated abbreviation", zone)
		}
	}
}

func BenchmarkResolveCoordinates(b *testing.B) {
	f := &models.Fixture{Timezone: "UTC", Venue: &models.Venue{Coordinates: london}}
	r := Default()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = r.Resolve(f)
	}
}
