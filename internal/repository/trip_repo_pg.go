package repository

import (
	"context"
	"fmt"

	"github.com/Domenick1991/tripverse/internal/domain"
	"github.com/jackc/pgx/v5"
)

type TripRepository interface {
	Create(ctx context.Context, trip *domain.Trip) error
	ListByTraveler(ctx context.Context, travelerID string) ([]domain.Trip, error)
	Get(ctx context.Context, travelerID, id string) (*domain.Trip, error)
	Delete(ctx context.Context, travelerID, id string) error
}

type PGTripRepository struct {
	db DB
}

func NewTripRepository(db DB) TripRepository {
	return &PGTripRepository{db: db}
}

const tripColumns = `id::text, traveler_id::text, name, start_date, end_date, travelers, notes, stops, total_days, estimated_budget_paise, created_at`

func scanTrip(row pgx.Row) (domain.Trip, error) {
	var t domain.Trip
	err := row.Scan(&t.ID, &t.TravelerID, &t.Name, &t.StartDate, &t.EndDate, &t.Travelers, &t.Notes, &t.Stops, &t.TotalDays, &t.EstimatedBudgetPaise, &t.CreatedAt)
	return t, err
}

func (r *PGTripRepository) Create(ctx context.Context, trip *domain.Trip) error {
	return r.db.QueryRow(ctx, `INSERT INTO trips (id, traveler_id, name, start_date, end_date, travelers, notes, stops, total_days, estimated_budget_paise)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING created_at`,
		trip.ID, trip.TravelerID, trip.Name, trip.StartDate, trip.EndDate, trip.Travelers, trip.Notes, trip.Stops, trip.TotalDays, trip.EstimatedBudgetPaise).
		Scan(&trip.CreatedAt)
}

func (r *PGTripRepository) ListByTraveler(ctx context.Context, travelerID string) ([]domain.Trip, error) {
	rows, err := r.db.Query(ctx, `SELECT `+tripColumns+` FROM trips WHERE traveler_id=$1 ORDER BY created_at DESC`, travelerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	trips := make([]domain.Trip, 0)
	for rows.Next() {
		t, err := scanTrip(rows)
		if err != nil {
			return nil, err
		}
		trips = append(trips, t)
	}
	return trips, rows.Err()
}

func (r *PGTripRepository) Get(ctx context.Context, travelerID, id string) (*domain.Trip, error) {
	t, err := scanTrip(r.db.QueryRow(ctx, `SELECT `+tripColumns+` FROM trips WHERE traveler_id=$1 AND id=$2`, travelerID, id))
	if err != nil {
		return nil, notFound(err, "trip")
	}
	return &t, nil
}

func (r *PGTripRepository) Delete(ctx context.Context, travelerID, id string) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM trips WHERE traveler_id=$1 AND id=$2`, travelerID, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("trip %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

var _ TripRepository = (*PGTripRepository)(nil)
