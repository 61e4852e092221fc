package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Domenick1991/tripverse/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type BookingRepository interface {
	// CreatePending takes a seat and stores the booking in one transaction.
	// TotalPaise is set to the fare plus extraPaise.
	CreatePending(ctx context.Context, booking *domain.Booking, extraPaise int64) error
	GetByToken(ctx context.Context, token string) (*domain.Booking, error)
	// Transition moves the booking from one status to another. It fails with
	// domain.ErrConflict when the booking is no longer in the from status.
	Transition(ctx context.Context, token string, from, to domain.BookingStatus) (*domain.Booking, error)
	ExpirePendingBefore(ctx context.Context, deadline time.Time) ([]domain.Booking, error)
	ReleaseSeat(ctx context.Context, transportID int64) error
}

type PGBookingRepository struct {
	db DB
}

func NewBookingRepository(db DB) BookingRepository {
	return &PGBookingRepository{db: db}
}

const bookingColumns = `id, transport_id, seat_number, token, status, insurance, total_paise, expires_at, email, created_at, updated_at`

func scanBooking(row pgx.Row) (domain.Booking, error) {
	var b domain.Booking
	err := row.Scan(&b.ID, &b.TransportID, &b.SeatNumber, &b.Token, &b.Status, &b.Insurance, &b.TotalPaise, &b.ExpiresAt, &b.Email, &b.CreatedAt, &b.UpdatedAt)
	return b, err
}

func (r *PGBookingRepository) CreatePending(ctx context.Context, booking *domain.Booking, extraPaise int64) error {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	var fare int64
	err = tx.QueryRow(ctx, `UPDATE transports SET available_seats = available_seats - 1, updated_at = now()
		WHERE id=$1 AND available_seats > 0 AND total_seats >= $2
		RETURNING price_paise`, booking.TransportID, booking.SeatNumber).Scan(&fare)
	if errors.Is(err, pgx.ErrNoRows) {
		return seatUnavailable(ctx, tx, booking)
	}
	if err != nil {
		return err
	}

	booking.Status = domain.BookingStatusPending
	booking.TotalPaise = fare + extraPaise
	if err := tx.QueryRow(ctx, `INSERT INTO bookings (transport_id, seat_number, token, status, insurance, total_paise, expires_at, email)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at`, booking.TransportID, booking.SeatNumber, booking.Token, booking.Status, booking.Insurance, booking.TotalPaise, booking.ExpiresAt, booking.Email).
		Scan(&booking.ID, &booking.CreatedAt, &booking.UpdatedAt); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("seat %d is already booked: %w", booking.SeatNumber, domain.ErrConflict)
		}
		return err
	}

	return tx.Commit(ctx)
}

// seatUnavailable explains why the seat decrement matched no row.
func seatUnavailable(ctx context.Context, tx pgx.Tx, booking *domain.Booking) error {
	var totalSeats int
	err := tx.QueryRow(ctx, `SELECT total_seats FROM transports WHERE id=$1`, booking.TransportID).Scan(&totalSeats)
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("transport %d: %w", booking.TransportID, domain.ErrNotFound)
	}
	if err != nil {
		return err
	}
	if booking.SeatNumber > totalSeats {
		return fmt.Errorf("seat %d exceeds the %d seats of transport %d: %w", booking.SeatNumber, totalSeats, booking.TransportID, domain.ErrValidation)
	}
	return fmt.Errorf("no available seats: %w", domain.ErrConflict)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func (r *PGBookingRepository) GetByToken(ctx context.Context, token string) (*domain.Booking, error) {
	b, err := scanBooking(r.db.QueryRow(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE token=$1`, token))
	if err != nil {
		return nil, notFound(err, "booking")
	}
	return &b, nil
}

func (r *PGBookingRepository) Transition(ctx context.Context, token string, from, to domain.BookingStatus) (*domain.Booking, error) {
	b, err := scanBooking(r.db.QueryRow(ctx, `UPDATE bookings SET status=$1, updated_at=now() WHERE token=$2 AND status=$3 RETURNING `+bookingColumns, to, token, from))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("booking %s is no longer %s: %w", token, from, domain.ErrConflict)
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *PGBookingRepository) ExpirePendingBefore(ctx context.Context, deadline time.Time) ([]domain.Booking, error) {
	rows, err := r.db.Query(ctx, `UPDATE bookings SET status=$1, updated_at=now() WHERE status=$2 AND expires_at <= $3 RETURNING `+bookingColumns, domain.BookingStatusExpired, domain.BookingStatusPending, deadline)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var expired []domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		expired = append(expired, b)
	}
	return expired, rows.Err()
}

func (r *PGBookingRepository) ReleaseSeat(ctx context.Context, transportID int64) error {
	cmd, err := r.db.Exec(ctx, `
        UPDATE transports
        SET available_seats = LEAST(available_seats + 1, total_seats),
            updated_at = now()
        WHERE id = $1
    `, transportID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("transport %d: %w", transportID, domain.ErrNotFound)
	}
	return nil
}

var _ BookingRepository = (*PGBookingRepository)(nil)
