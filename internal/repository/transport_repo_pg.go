package repository

import (
	"context"

	"github.com/Domenick1991/tripverse/internal/domain"
	"github.com/jackc/pgx/v5"
)

type TransportRepository interface {
	List(ctx context.Context) ([]domain.Transport, error)
	GetByID(ctx context.Context, id int64) (*domain.Transport, error)
}

type PGTransportRepository struct {
	db DB
}

func NewTransportRepository(db DB) TransportRepository {
	return &PGTransportRepository{db: db}
}

const transportColumns = `id, mode, carrier, code, origin, destination, departure_time, arrival_time, stops, rating::float8, total_seats, available_seats, price_paise, created_at, updated_at`

func scanTransport(row pgx.Row) (domain.Transport, error) {
	var t domain.Transport
	err := row.Scan(&t.ID, &t.Mode, &t.Carrier, &t.Code, &t.Origin, &t.Destination, &t.DepartureTime, &t.ArrivalTime, &t.Stops, &t.Rating, &t.TotalSeats, &t.AvailableSeats, &t.PricePaise, &t.CreatedAt, &t.UpdatedAt)
	return t, err
}

func (r *PGTransportRepository) List(ctx context.Context) ([]domain.Transport, error) {
	rows, err := r.db.Query(ctx, `SELECT `+transportColumns+` FROM transports ORDER BY departure_time, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	transports := make([]domain.Transport, 0)
	for rows.Next() {
		t, err := scanTransport(rows)
		if err != nil {
			return nil, err
		}
		transports = append(transports, t)
	}
	return transports, rows.Err()
}

func (r *PGTransportRepository) GetByID(ctx context.Context, id int64) (*domain.Transport, error) {
	t, err := scanTransport(r.db.QueryRow(ctx, `SELECT `+transportColumns+` FROM transports WHERE id=$1`, id))
	if err != nil {
		return nil, notFound(err, "transport")
	}
	return &t, nil
}

var _ TransportRepository = (*PGTransportRepository)(nil)
