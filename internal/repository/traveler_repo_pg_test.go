package repository

import (
	"context"
	"testing"
	"time"

	"github.com/Domenick1991/tripverse/internal/domain"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPGTravelerRepository_Stats(t *testing.T) {
	db := newMockDB(t)
	repo := NewTravelerRepository(db)

	db.ExpectQuery(`COUNT\(DISTINCT lower\(location\)\) FROM journal_entries WHERE traveler_id = t.id AND location <> ''`).
		WithArgs("t1").
		WillReturnRows(pgxmock.NewRows([]string{"trips", "places", "photos", "reviews"}).AddRow(2, 7, 31, 4))

	stats, err := repo.Stats(context.Background(), "t1")

	require.NoError(t, err)
	assert.Equal(t, domain.TravelerStats{TripsPlanned: 2, PlacesVisited: 7, PhotosShared: 31, ReviewsGiven: 4}, stats)
	assert.NoError(t, db.ExpectationsWereMet())
}

func TestPGTravelerRepository_Stats_NotFound(t *testing.T) {
	db := newMockDB(t)
	repo := NewTravelerRepository(db)

	db.ExpectQuery(`SUM\(photos\)`).
		WithArgs("missing").
		WillReturnRows(pgxmock.NewRows([]string{"trips", "places", "photos", "reviews"}))

	_, err := repo.Stats(context.Background(), "missing")

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.NoError(t, db.ExpectationsWereMet())
}

func TestPGTravelerRepository_UpsertByEmail(t *testing.T) {
	db := newMockDB(t)
	repo := NewTravelerRepository(db)
	now := time.Date(2024, 1, 20, 6, 0, 0, 0, time.UTC)
	traveler := &domain.Traveler{ID: "new-id", Name: "Priya", Email: "priya@example.com"}

	db.ExpectQuery(`ON CONFLICT \(email\) DO UPDATE SET name = EXCLUDED.name`).
		WithArgs("new-id", "Priya", "priya@example.com", "").
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "email", "phone", "notifications", "location_access", "reviews_given", "created_at", "updated_at"}).
			AddRow("existing-id", "Priya", "priya@example.com", "+91 98765 43210", true, false, 3, now, now))

	require.NoError(t, repo.UpsertByEmail(context.Background(), traveler))

	assert.Equal(t, "existing-id", traveler.ID)
	assert.Equal(t, "+91 98765 43210", traveler.Phone)
	assert.False(t, traveler.LocationAccess)
	assert.NoError(t, db.ExpectationsWereMet())
}

func TestPGTripRepository_GetAndDelete(t *testing.T) {
	db := newMockDB(t)
	repo := NewTripRepository(db)
	start := time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC)
	created := start.Add(-48 * time.Hour)
	stops := []domain.TripStop{{Name: "Munnar", Days: 2}}

	db.ExpectQuery(`FROM trips WHERE traveler_id=\$1 AND id=\$2`).
		WithArgs("t1", "trip-1").
		WillReturnRows(pgxmock.NewRows([]string{"id", "traveler_id", "name", "start_date", "end_date", "travelers", "notes", "stops", "total_days", "estimated_budget_paise", "created_at"}).
			AddRow("trip-1", "t1", "Kerala Loop", &start, (*time.Time)(nil), 2, "", stops, 2, int64(500000), created))
	db.ExpectExec(`DELETE FROM trips WHERE traveler_id=\$1 AND id=\$2`).
		WithArgs("t1", "trip-2").
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	trip, err := repo.Get(context.Background(), "t1", "trip-1")
	require.NoError(t, err)
	assert.Equal(t, "Kerala Loop", trip.Name)
	assert.Equal(t, stops, trip.Stops)
	assert.Nil(t, trip.EndDate)

	assert.ErrorIs(t, repo.Delete(context.Background(), "t1", "trip-2"), domain.ErrNotFound)
	assert.NoError(t, db.ExpectationsWereMet())
}

func TestPGJournalRepository_Delete(t *testing.T) {
	db := newMockDB(t)
	repo := NewJournalRepository(db)

	db.ExpectExec(`DELETE FROM journal_entries WHERE traveler_id=\$1 AND id=\$2`).
		WithArgs("t1", "e1").
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	db.ExpectExec(`DELETE FROM journal_entries WHERE traveler_id=\$1 AND id=\$2`).
		WithArgs("t1", "e2").
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	assert.NoError(t, repo.Delete(context.Background(), "t1", "e1"))
	assert.ErrorIs(t, repo.Delete(context.Background(), "t1", "e2"), domain.ErrNotFound)
	assert.NoError(t, db.ExpectationsWereMet())
}

func TestPGTransportRepository_List(t *testing.T) {
	db := newMockDB(t)
	repo := NewTransportRepository(db)
	dep := time.Date(2024, 1, 20, 6, 0, 0, 0, time.UTC)

	db.ExpectQuery(`FROM transports ORDER BY departure_time, id`).
		WillReturnRows(pgxmock.NewRows([]string{"id", "mode", "carrier", "code", "origin", "destination", "departure_time", "arrival_time", "stops", "rating", "total_seats", "available_seats", "price_paise", "created_at", "updated_at"}).
			AddRow(int64(1), domain.TransportModeFlight, "IndiGo", "6E-5432", "Mumbai", "Kochi", dep, dep.Add(2*time.Hour+15*time.Minute), 0, 4.5, 180, 12, int64(425000), dep, dep))

	transports, err := repo.List(context.Background())

	require.NoError(t, err)
	require.Len(t, transports, 1)
	assert.Equal(t, "Mumbai → Kochi", transports[0].Route())
	assert.Equal(t, 12, transports[0].AvailableSeats)
	assert.NoError(t, db.ExpectationsWereMet())
}
