package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/kass/matchmap/pkg/bounds"
	"github.com/kass/matchmap/pkg/geo"
	"github.com/kass/matchmap/pkg/models"
	"github.com/kass/matchmap/pkg/rtree"
	"github.com/kass/matchmap/pkg/timezone"
	"github.com/kass/matchmap/pkg/venuegroup"
)

func main() {
	// A weekend of fixtures, with the usual upstream quirks: "UTC" claims,
	// numeric and string venue ids, a missing date
	matches := []models.Match{
		fixture("Arsenal", "Chelsea", "2025-03-15T17:30:00Z", "UTC",
			&models.Venue{ID: "494", Name: "Emirates Stadium", City: "London", Coordinates: []float64{-0.1086, 51.5549}}),
		fixture("Tottenham", "Fulham", "2025-03-16T14:00:00Z", "UTC",
			&models.Venue{ID: "593", Name: "Tottenham Hotspur Stadium", City: "London", Coordinates: []float64{-0.0664, 51.6043}}),
		fixture("Arsenal", "Everton", "2025-03-29T15:00:00Z", "",
			&models.Venue{ID: "19939", Name: "Emirates Stadium", City: "London", Coordinates: []float64{-0.108600001, 51.554900002}}),
		fixture("Real Madrid", "Villarreal", "2025-03-15T20:00:00Z", "Europe/Madrid",
			&models.Venue{ID: "1456", Name: "Estadio Santiago Bernabeu", City: "Madrid"}),
		fixture("Urawa Reds", "Kashima Antlers", "", "UTC",
			&models.Venue{Name: "Saitama Stadium", City: "Saitama", Country: "Japan"}),
	}

	// Example 1: kick-off times in the venue's zone
	fmt.Println("=== Kick-off Times ===")
	opts := timezone.DefaultFormatOptions()
	for _, m := range matches {
		f := m.Fixture
		tz := timezone.Resolve(&f)
		fmt.Printf("  %-28s %-38s [%s via %s]\n",
			m.Teams.Home.Name+" vs "+m.Teams.Away.Name,
			timezone.FormatMatchTime(f.Date, &f, opts),
			tz.ZoneID, tz.Source)
	}

	// Example 2: one marker per stadium
	fmt.Println("\n=== Map Markers ===")
	groups := venuegroup.GroupMatches(matches)
	var points []models.GeoPoint
	for _, g := range groups {
		fmt.Printf("  %-30s %-26s %d match(es)\n", g.Key, g.Venue.Name, len(g.Matches))
		if p, ok := geo.VenuePoint(&g.Venue); ok {
			points = append(points, p)
		}
	}

	// Example 3: frame the London markers, then everything
	fmt.Println("\n=== Map Regions ===")
	calc := bounds.Default()
	for _, set := range []struct {
		name   string
		points []models.GeoPoint
	}{
		{"London markers", points},
		{"London + Madrid", append(points, models.GeoPoint{Lon: -3.6883, Lat: 40.4531})},
		{"nothing", nil},
	} {
		region, cls := calc.Frame(set.points, bounds.DefaultOptions())
		fmt.Printf("  %-16s center (%.4f, %.4f) span %.3f x %.3f [%s %s]\n",
			set.name, region.Center.Lon, region.Center.Lat,
			region.LongitudeSpan, region.LatitudeSpan, cls.Setting, cls.City)
	}

	// Example 4: extend the venue catalog and ship it as a file
	fmt.Println("\n=== Catalog File ===")
	extra := []*models.CatalogEntry{
		{ID: "Saitama Stadium", Value: "Asia/Tokyo", Location: &models.GeoPoint{Lon: 139.7178, Lat: 35.9031}},
	}
	r, err := timezone.NewResolver(timezone.WithCatalogEntries(extra))
	if err != nil {
		log.Fatal(err)
	}

	file := filepath.Join(os.TempDir(), "venues.gob")
	if err := r.Catalog().SaveToFile(file, "example"); err != nil {
		log.Fatal(err)
	}
	data, err := rtree.LoadFromFile(file)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Saved and reloaded %d venues from %s\n", data.Count, file)

	// Example 5: relative times against a fixed clock
	fmt.Println("\n=== Relative Times ===")
	now := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)
	r, err = timezone.NewResolver(timezone.WithClock(func() time.Time { return now }))
	if err != nil {
		log.Fatal(err)
	}
	for _, m := range matches {
		f := m.Fixture
		if rel := r.RelativeTime(f.Date, &f); rel != "" {
			fmt.Printf("  %-28s %s\n", m.Teams.Home.Name+" vs "+m.Teams.Away.Name, rel)
		}
	}
}

func fixture(home, away, date, zone string, v *models.Venue) models.Match {
	return models.Match{
		Fixture: models.Fixture{Date: date, Timezone: zone, Venue: v},
		Teams:   models.Teams{Home: models.Team{Name: home}, Away: models.Team{Name: away}},
	}
}
