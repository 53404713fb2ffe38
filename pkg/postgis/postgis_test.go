package postgis

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/kass/matchmap/pkg/models"
	"github.com/kass/matchmap/pkg/rtree"
	"github.com/kass/matchmap/pkg/timezone"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockStore(t *testing.T, opts ...StoreOption) (*VenueStore, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	s, err := New(db, opts...)
	require.NoError(t, err)
	return s, mock
}

func TestNewRejectsBadTableName(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	_, err = New(db, WithTable("venues; DROP TABLE venues"))
	assert.Error(t, err)

	s, err := New(db, WithTable("stadiums_2025"))
	require.NoError(t, err)
	assert.Equal(t, "stadiums_2025", s.table)
}

func TestInitSchema(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectExec(`CREATE EXTENSION IF NOT EXISTS postgis`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS venues`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`CREATE INDEX IF NOT EXISTS idx_venues_location ON venues USING GIST`).WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, s.InitSchema(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInitSchemaError(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectExec(`CREATE EXTENSION`).WillReturnError(errors.New("permission denied"))

	err := s.InitSchema(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "permission denied")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsertVenues(t *testing.T) {
	s, mock := newMockStore(t)
	venues := []VenueRecord{
		{ID: "556", Name: "Old Trafford", City: "Manchester", Country: "England", Timezone: "Europe/London",
			Location: models.GeoPoint{Lon: -2.2913, Lat: 53.4631}},
		{ID: "1456", Name: "Estadio Santiago Bernabeu", City: "Madrid", Country: "Spain", Timezone: "Europe/Madrid",
			Location: models.GeoPoint{Lon: -3.6883, Lat: 40.4531}},
	}

	mock.ExpectBegin()
	prep := mock.ExpectPrepare(`INSERT INTO venues`)
	prep.ExpectExec().
		WithArgs("556", "Old Trafford", "Manchester", "England", "Europe/London", -2.2913, 53.4631).
		WillReturnResult(sqlmock.NewResult(0, 1))
	prep.ExpectExec().
		WithArgs("1456", "Estadio Santiago Bernabeu", "Madrid", "Spain", "Europe/Madrid", -3.6883, 40.4531).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	n, err := s.UpsertVenues(context.Background(), venues)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsertVenuesRollsBackOnFailure(t *testing.T) {
	s, mock := newMockStore(t)
	venues := []VenueRecord{
		{ID: "1", Timezone: "Europe/London", Location: models.GeoPoint{Lon: 0, Lat: 51}},
		{ID: "2", Timezone: "Europe/London", Location: models.GeoPoint{Lon: 0, Lat: 91}},
	}

	mock.ExpectBegin()
	prep := mock.ExpectPrepare(`INSERT INTO venues`)
	prep.ExpectExec().WithArgs("1", "", "", "", "Europe/London", 0.0, 51.0).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectRollback()

	n, err := s.UpsertVenues(context.Background(), venues)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "venue 2")
	assert.Equal(t, 0, n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoadCatalog(t *testing.T) {
	s, mock := newMockStore(t, WithTable("stadiums"))

	rows := sqlmock.NewRows([]string{"id", "name", "timezone", "lon", "lat"}).
		AddRow("1456", "Estadio Santiago Bernabeu", "Europe/Madrid", -3.6883, 40.4531).
		AddRow("19", "", "Europe/London", -2.2913, 53.4631).
		AddRow("77", "Estadio de Gran Canaria", "Atlantic/Canary", -15.4563, 28.1001).
		AddRow("78", "Somewhere", "UTC", 0.0, 0.0)
	mock.ExpectQuery(`SELECT id, name, timezone, ST_X\(location\) AS lon, ST_Y\(location\) AS lat\s+FROM stadiums`).
		WillReturnRows(rows)

	entries, skipped, err := s.LoadCatalog(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, skipped)
	require.Len(t, entries, 2)

	assert.Equal(t, &models.CatalogEntry{
		ID:       "Estadio Santiago Bernabeu",
		Value:    "Europe/Madrid",
		Location: &models.GeoPoint{Lon: -3.6883, Lat: 40.4531},
	}, entries[0])
	assert.Equal(t, "19", entries[1].ID, "unnamed venues fall back to their id")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoadCatalogSkipsInvalidCoordinates(t *testing.T) {
	logger, hook := test.NewNullLogger()
	s, mock := newMockStore(t, WithLogger(logger))

	rows := sqlmock.NewRows([]string{"id", "name", "timezone", "lon", "lat"}).
		AddRow("489", "Wembley Stadium", "Europe/London", -0.2795, 51.5560).
		AddRow("900", "Broken", "Europe/London", 200.0, 51.0).
		AddRow("901", "Upside Down", "Europe/Madrid", -3.7, -95.0)
	mock.ExpectQuery(`SELECT (.+) FROM venues`).WillReturnRows(rows)

	entries, skipped, err := s.LoadCatalog(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, skipped)
	require.Len(t, entries, 1)
	assert.Equal(t, "Wembley Stadium", entries[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())

	require.Len(t, hook.AllEntries(), 2)
	assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
	assert.Equal(t, "901", hook.LastEntry().Data["venue"])

	// the loaded entries must be usable as an extra resolver catalog
	index, err := rtree.NewGeoIndexFromEntries(entries)
	require.NoError(t, err)
	assert.Equal(t, int64(1), index.Count())

	r, err := timezone.NewResolver(timezone.WithCatalogEntries(entries))
	require.NoError(t, err)
	assert.Equal(t, int64(len(timezone.CatalogEntries())+1), r.CatalogSize())
}

func TestLoadCatalogQueryError(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectQuery(`SELECT (.+) FROM venues`).WillReturnError(errors.New("relation does not exist"))

	_, _, err := s.LoadCatalog(context.Background())
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCount(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM venues`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(147))

	n, err := s.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(147), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}
