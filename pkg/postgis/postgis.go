// Package postgis stores venues with their zone in a PostGIS table and loads
// them back as coordinate catalog entries for the timezone resolver.
package postgis

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"
	"time"

	"github.com/kass/matchmap/pkg/geo"
	"github.com/kass/matchmap/pkg/logging"
	"github.com/kass/matchmap/pkg/models"
	"github.com/kass/matchmap/pkg/timezone"
	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"
)

const (
	DefaultTable = "venues"
	batchSize    = 500
)

var identifier = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// VenueRecord is one row of the venue table
type VenueRecord struct {
	ID       string
	Name     string
	City     string
	Country  string
	Timezone string
	Location models.GeoPoint
}

// VenueStore reads and writes venue rows
type VenueStore struct {
	db     *sql.DB
	table  string
	logger logrus.FieldLogger
}

// StoreOption configures a VenueStore
type StoreOption func(*VenueStore)

// WithTable sets the venue table name
func WithTable(table string) StoreOption {
	return func(s *VenueStore) {
		if table != "" {
			s.table = table
		}
	}
}

// WithLogger sets the store logger
func WithLogger(l logrus.FieldLogger) StoreOption {
	return func(s *VenueStore) {
		if l != nil {
			s.logger = l
		}
	}
}

// Open connects to PostgreSQL using a lib/pq connection string
func Open(ctx context.Context, dsn string, opts ...StoreOption) (*VenueStore, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(5 * time.Minute)

	s, err := New(db, opts...)
	if err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// New wraps an open database handle
func New(db *sql.DB, opts ...StoreOption) (*VenueStore, error) {
	s := &VenueStore{db: db, table: DefaultTable, logger: logging.Discard()}
	for _, opt := range opts {
		opt(s)
	}
	if !identifier.MatchString(s.table) {
		return nil, fmt.Errorf("invalid table name %q", s.table)
	}
	return s, nil
}

// InitSchema creates the venue table and its spatial index if missing
func (s *VenueStore) InitSchema(ctx context.Context) error {
	queries := []string{
		`CREATE EXTENSION IF NOT EXISTS postgis`,
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL DEFAULT '',
			city TEXT NOT NULL DEFAULT '',
			country TEXT NOT NULL DEFAULT '',
			timezone TEXT NOT NULL,
			location GEOMETRY(POINT, 4326)
		)`, s.table),
		fmt.Sprintf(`CREATE INDEX IF NOT EXISTS idx_%s_location ON %s USING GIST(location)`, s.table, s.table),
	}

	for _, query := range queries {
		if _, err := s.db.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("failed to execute query '%s': %w", query, err)
		}
	}
	return nil
}

// UpsertVenues writes venues in batches, one transaction per batch. It
// returns the number of rows written before any failure.
func (s *VenueStore) UpsertVenues(ctx context.Context, venues []VenueRecord) (int, error) {
	written := 0
	for start := 0; start < len(venues); start += batchSize {
		end := min(start+batchSize, len(venues))
		if err := s.upsertBatch(ctx, venues[start:end]); err != nil {
			return written, err
		}
		written = end
		s.logger.WithField("rows", written).Debug("venue batch committed")
	}
	return written, nil
}

func (s *VenueStore) upsertBatch(ctx context.Context, batch []VenueRecord) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, fmt.Sprintf(`
		INSERT INTO %s (id, name, city, country, timezone, location)
		VALUES ($1, $2, $3, $4, $5, ST_SetSRID(ST_MakePoint($6, $7), 4326))
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name, city = EXCLUDED.city, country = EXCLUDED.country,
			timezone = EXCLUDED.timezone, location = EXCLUDED.location
	`, s.table))
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	for _, v := range batch {
		if !geo.ValidPoint(v.Location) {
			tx.Rollback()
			return fmt.Errorf("venue %s has invalid coordinates %v,%v", v.ID, v.Location.Lon, v.Location.Lat)
		}
		_, err := stmt.ExecContext(ctx, v.ID, v.Name, v.City, v.Country, v.Timezone, v.Location.Lon, v.Location.Lat)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to upsert venue %s: %w", v.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit batch: %w", err)
	}
	return nil
}

// LoadCatalog reads every located venue as a catalog entry named after the
// venue and tagged with its zone. Rows whose zone is not recognized or whose
// coordinates are out of range are skipped and counted.
func (s *VenueStore) LoadCatalog(ctx context.Context) (entries []*models.CatalogEntry, skipped int, err error) {
	query := fmt.Sprintf(`
		SELECT id, name, timezone, ST_X(location) AS lon, ST_Y(location) AS lat
		FROM %s
		WHERE location IS NOT NULL
		ORDER BY id
	`, s.table)

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to execute query: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id, name, zone string
		var lon, lat float64
		if err := rows.Scan(&id, &name, &zone, &lon, &lat); err != nil {
			return nil, 0, fmt.Errorf("failed to scan row: %w", err)
		}

		if !timezone.IsRecognized(zone) || zone == timezone.DefaultZone {
			s.logger.WithFields(logrus.Fields{"venue": id, "zone": zone}).Warn("skipping venue with unrecognized zone")
			skipped++
			continue
		}
		if !geo.Valid(lon, lat) {
			s.logger.WithFields(logrus.Fields{"venue": id, "lon": lon, "lat": lat}).Warn("skipping venue with invalid coordinates")
			skipped++
			continue
		}
		if name == "" {
			name = id
		}
		entries = append(entries, &models.CatalogEntry{
			ID:       name,
			Value:    zone,
			Location: &models.GeoPoint{Lon: lon, Lat: lat},
		})
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("rows error: %w", err)
	}
	return entries, skipped, nil
}

// Count returns the number of venue rows
func (s *VenueStore) Count(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.QueryRowContext(ctx, fmt.Sprintf("SELECT COUNT(*) FROM %s", s.table)).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count venues: %w", err)
	}
	return count, nil
}

// Close closes the database connection
func (s *VenueStore) Close() error {
	return s.db.Close()
}
