package repository

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
)

// HealthRepository answers the diagnostic query behind GET /api/test.
type HealthRepository interface {
	Now(ctx context.Context) (time.Time, error)
}

type SQLHealthRepository struct {
	db *sqlx.DB
}

func NewHealthRepository(db *sqlx.DB) HealthRepository {
	return &SQLHealthRepository{db: db}
}

func (r *SQLHealthRepository) Now(ctx context.Context) (time.Time, error) {
	var row struct {
		Now time.Time `db:"now"`
	}
	if err := r.db.GetContext(ctx, &row, `SELECT NOW() AS now`); err != nil {
		return time.Time{}, err
	}
	return row.Now, nil
}

var _ HealthRepository = (*SQLHealthRepository)(nil)
