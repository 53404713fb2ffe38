// Package timezone resolves the zone a fixture's venue sits in from partial
// venue data and renders match times in that zone.
//
// Resolution is an ordered fallback chain: an explicit non-UTC claim, the
// nearest catalogued venue within one degree, the venue city, the venue
// country, and finally UTC. Every candidate is checked against the
// recognized zone allow-list before it is accepted.
package timezone

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/kass/matchmap/pkg/geo"
	"github.com/kass/matchmap/pkg/logging"
	"github.com/kass/matchmap/pkg/models"
	"github.com/kass/matchmap/pkg/rtree"
	"github.com/sirupsen/logrus"
)

const (
	// DefaultZone is returned when no strategy yields a recognized zone
	DefaultZone = "UTC"

	coordinatePrecision = 2
	maxCatalogDistance  = 1.0 // degrees
)

// Resolution sources
const (
	SourceExplicit    = "explicit"
	SourceCoordinates = "coordinates"
	SourceCity        = "city"
	SourceCountry     = "country"
	SourceDefault     = "default"
)

var (
	ErrInvalidDate    = errors.New("invalid date")
	ErrUnknownZone    = errors.New("unknown zone")
	ErrNoAbbreviation = errors.New("no abbreviation")
)

// Resolver resolves fixture zones and formats match times. A Resolver is
// immutable after construction and safe for concurrent use.
type Resolver struct {
	catalog *rtree.GeoIndex
	logger  logrus.FieldLogger
	now     func() time.Time
	extra   []*models.CatalogEntry
}

// Option configures a Resolver
type Option func(*Resolver)

// WithLogger sets the logger used for debug tracing
func WithLogger(l logrus.FieldLogger) Option {
	return func(r *Resolver) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithClock sets the time source used by RelativeTime
func WithClock(now func() time.Time) Option {
	return func(r *Resolver) {
		if now != nil {
			r.now = now
		}
	}
}

// WithCatalogEntries adds venue entries, tagged with their zone, to the
// static coordinate catalog
func WithCatalogEntries(entries []*models.CatalogEntry) Option {
	return func(r *Resolver) {
		r.extra = append(r.extra, entries...)
	}
}

// NewResolver builds a resolver over the static venue catalog plus any
// extra entries. Extra entries tagged with an unrecognized zone are
// rejected.
func NewResolver(opts ...Option) (*Resolver, error) {
	r := &Resolver{
		logger: logging.Discard(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}

	var rejected []string
	entries := CatalogEntries()
	for _, e := range r.extra {
		if e == nil {
			continue
		}
		if !IsRecognized(e.Value) {
			rejected = append(rejected, fmt.Sprintf("%s (%s)", e.ID, e.Value))
			continue
		}
		entries = append(entries, e)
	}
	if len(rejected) > 0 {
		return nil, fmt.Errorf("%w: catalog entries with unrecognized zones: %s",
			ErrUnknownZone, strings.Join(rejected, ", "))
	}

	catalog, err := rtree.NewGeoIndexFromEntries(entries)
	if err != nil {
		return nil, fmt.Errorf("build venue catalog: %w", err)
	}
	r.catalog = catalog
	r.extra = nil
	return r, nil
}

var (
	defaultResolver *Resolver
	defaultOnce     sync.Once
)

// Default returns the shared resolver over the static catalog
func Default() *Resolver {
	defaultOnce.Do(func() {
		r, err := NewResolver()
		if err != nil {
			// the static catalog is covered by tests
			panic(err)
		}
		defaultResolver = r
	})
	return defaultResolver
}

// CatalogSize returns the number of venues in the coordinate catalog
func (r *Resolver) CatalogSize() int64 {
	return r.catalog.Count()
}

// Catalog returns the coordinate catalog. Callers must not add entries.
func (r *Resolver) Catalog() *rtree.GeoIndex {
	return r.catalog
}

// Resolve returns the zone for a fixture. It never fails: unresolvable
// fixtures, including nil, resolve to UTC.
func (r *Resolver) Resolve(f *models.Fixture) models.ResolvedTimezone {
	if f == nil {
		return r.fallback()
	}

	if res, ok := r.fromExplicit(f.Timezone); ok {
		return r.accept(res)
	}
	if res, ok := r.fromCoordinates(f.Venue); ok {
		return r.accept(res)
	}
	if res, ok := r.fromLocation(f.Venue); ok {
		return r.accept(res)
	}
	return r.fallback()
}

// "UTC" is treated as unknown: upstream feeds send it whatever the venue.
func (r *Resolver) fromExplicit(claim string) (models.ResolvedTimezone, bool) {
	if claim == "" || claim == DefaultZone {
		return models.ResolvedTimezone{}, false
	}
	if !r.recognized(claim, SourceExplicit) {
		return models.ResolvedTimezone{}, false
	}
	return models.ResolvedTimezone{ZoneID: claim, IsValidated: true, Source: SourceExplicit}, true
}

func (r *Resolver) fromCoordinates(v *models.Venue) (models.ResolvedTimezone, bool) {
	p, ok := geo.VenuePoint(v)
	if !ok {
		return models.ResolvedTimezone{}, false
	}
	p = geo.RoundPoint(p, coordinatePrecision)

	m, ok := r.catalog.Nearest(p)
	if !ok || m.Distance >= maxCatalogDistance {
		return models.ResolvedTimezone{}, false
	}
	if !r.recognized(m.Entry.Value, SourceCoordinates) {
		return models.ResolvedTimezone{}, false
	}
	return models.ResolvedTimezone{
		ZoneID:      m.Entry.Value,
		IsValidated: true,
		Source:      SourceCoordinates,
		CatalogName: m.Entry.ID,
		Distance:    m.Distance,
	}, true
}

func (r *Resolver) fromLocation(v *models.Venue) (models.ResolvedTimezone, bool) {
	if v == nil {
		return models.ResolvedTimezone{}, false
	}
	if zone, ok := cityZones[v.City]; ok && v.City != "" && r.recognized(zone, SourceCity) {
		return models.ResolvedTimezone{ZoneID: zone, IsValidated: true, Source: SourceCity}, true
	}
	if zone, ok := countryZones[v.Country]; ok && v.Country != "" && r.recognized(zone, SourceCountry) {
		return models.ResolvedTimezone{ZoneID: zone, IsValidated: true, Source: SourceCountry}, true
	}
	return models.ResolvedTimezone{}, false
}

func (r *Resolver) recognized(zone, source string) bool {
	if IsRecognized(zone) {
		return true
	}
	r.logger.WithFields(logrus.Fields{"zone": zone, "source": source}).
		Debug("discarding unrecognized zone candidate")
	return false
}

func (r *Resolver) accept(res models.ResolvedTimezone) models.ResolvedTimezone {
	r.logger.WithFields(logrus.Fields{
		"zone":   res.ZoneID,
		"source": res.Source,
		"venue":  res.CatalogName,
	}).Debug("timezone resolved")
	return res
}

func (r *Resolver) fallback() models.ResolvedTimezone {
	r.logger.Debug("no strategy resolved a zone, using UTC")
	return models.ResolvedTimezone{ZoneID: DefaultZone, Source: SourceDefault}
}

// location loads a zone, preferring the preloaded allow-list
func location(zoneID string) (*time.Location, error) {
	if loc, ok := locations[zoneID]; ok {
		return loc, nil
	}
	// "" and "Local" are valid to LoadLocation but never real venue zones
	if zoneID == "" || zoneID == "Local" {
		return nil, fmt.Errorf("%w: %q", ErrUnknownZone, zoneID)
	}
	loc, err := time.LoadLocation(zoneID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnknownZone, err)
	}
	return loc, nil
}

// Resolve resolves f with the default resolver
func Resolve(f *models.Fixture) models.ResolvedTimezone {
	return Default().Resolve(f)
}
