package repository

import (
	"context"

	"github.com/Domenick1991/tripverse/internal/domain"
	"github.com/jackc/pgx/v5"
)

type TravelerRepository interface {
	// UpsertByEmail creates the traveler or refreshes the name of an existing one.
	UpsertByEmail(ctx context.Context, traveler *domain.Traveler) error
	GetByID(ctx context.Context, id string) (*domain.Traveler, error)
	Update(ctx context.Context, traveler *domain.Traveler) error
	Stats(ctx context.Context, id string) (domain.TravelerStats, error)
}

type PGTravelerRepository struct {
	db DB
}

func NewTravelerRepository(db DB) TravelerRepository {
	return &PGTravelerRepository{db: db}
}

const travelerColumns = `id::text, name, email, phone, notifications, location_access, reviews_given, created_at, updated_at`

func scanTraveler(row pgx.Row, t *domain.Traveler) error {
	return row.Scan(&t.ID, &t.Name, &t.Email, &t.Phone, &t.Notifications, &t.LocationAccess, &t.ReviewsGiven, &t.CreatedAt, &t.UpdatedAt)
}

func (r *PGTravelerRepository) UpsertByEmail(ctx context.Context, traveler *domain.Traveler) error {
	row := r.db.QueryRow(ctx, `INSERT INTO travelers (id, name, email, phone)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (email) DO UPDATE SET name = EXCLUDED.name, updated_at = now()
		RETURNING `+travelerColumns, traveler.ID, traveler.Name, traveler.Email, traveler.Phone)
	return scanTraveler(row, traveler)
}

func (r *PGTravelerRepository) GetByID(ctx context.Context, id string) (*domain.Traveler, error) {
	var t domain.Traveler
	if err := scanTraveler(r.db.QueryRow(ctx, `SELECT `+travelerColumns+` FROM travelers WHERE id=$1`, id), &t); err != nil {
		return nil, notFound(err, "traveler")
	}
	return &t, nil
}

func (r *PGTravelerRepository) Update(ctx context.Context, traveler *domain.Traveler) error {
	row := r.db.QueryRow(ctx, `UPDATE travelers
		SET name=$2, phone=$3, notifications=$4, location_access=$5, updated_at=now()
		WHERE id=$1
		RETURNING `+travelerColumns, traveler.ID, traveler.Name, traveler.Phone, traveler.Notifications, traveler.LocationAccess)
	if err := scanTraveler(row, traveler); err != nil {
		return notFound(err, "traveler")
	}
	return nil
}

func (r *PGTravelerRepository) Stats(ctx context.Context, id string) (domain.TravelerStats, error) {
	var s domain.TravelerStats
	err := r.db.QueryRow(ctx, `SELECT
			(SELECT COUNT(*) FROM trips WHERE traveler_id = t.id),
			(SELECT COUNT(DISTINCT lower(location)) FROM journal_entries WHERE traveler_id = t.id AND location <> ''),
			(SELECT COALESCE(SUM(photos), 0) FROM journal_entries WHERE traveler_id = t.id),
			t.reviews_given
		FROM travelers t WHERE t.id = $1`, id).
		Scan(&s.TripsPlanned, &s.PlacesVisited, &s.PhotosShared, &s.ReviewsGiven)
	if err != nil {
		return domain.TravelerStats{}, notFound(err, "traveler")
	}
	return s, nil
}

var _ TravelerRepository = (*PGTravelerRepository)(nil)
