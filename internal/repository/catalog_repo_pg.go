package repository

import (
	"context"

	"github.com/Domenick1991/tripverse/internal/domain"
	"github.com/jackc/pgx/v5"
)

// CatalogRepository reads the seeded explore and map catalogue.
type CatalogRepository interface {
	ListDestinations(ctx context.Context) ([]domain.Destination, error)
	GetDestination(ctx context.Context, id int64) (*domain.Destination, error)
	ListPlaces(ctx context.Context) ([]domain.Place, error)
}

type PGCatalogRepository struct {
	db DB
}

func NewCatalogRepository(db DB) CatalogRepository {
	return &PGCatalogRepository{db: db}
}

const destinationColumns = `id, name, category, rating::float8, review_count, distance_km::float8, duration, price_paise, image, description, highlights`

func scanDestination(row pgx.Row) (domain.Destination, error) {
	var d domain.Destination
	err := row.Scan(&d.ID, &d.Name, &d.Category, &d.Rating, &d.ReviewCount, &d.DistanceKm, &d.Duration, &d.PricePaise, &d.Image, &d.Description, &d.Highlights)
	return d, err
}

func (r *PGCatalogRepository) ListDestinations(ctx context.Context) ([]domain.Destination, error) {
	rows, err := r.db.Query(ctx, `SELECT `+destinationColumns+` FROM destinations ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.Destination, 0)
	for rows.Next() {
		d, err := scanDestination(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (r *PGCatalogRepository) GetDestination(ctx context.Context, id int64) (*domain.Destination, error) {
	d, err := scanDestination(r.db.QueryRow(ctx, `SELECT `+destinationColumns+` FROM destinations WHERE id=$1`, id))
	if err != nil {
		return nil, notFound(err, "destination")
	}
	return &d, nil
}

func (r *PGCatalogRepository) ListPlaces(ctx context.Context) ([]domain.Place, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, category, city, distance_km::float8, travel_time, rating::float8, image, description, is_open, contact FROM places ORDER BY distance_km, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.Place, 0)
	for rows.Next() {
		var p domain.Place
		if err := rows.Scan(&p.ID, &p.Name, &p.Category, &p.City, &p.DistanceKm, &p.TravelTime, &p.Rating, &p.Image, &p.Description, &p.IsOpen, &p.Contact); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

var _ CatalogRepository = (*PGCatalogRepository)(nil)
