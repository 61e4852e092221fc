package repository

import (
	"errors"
	"fmt"

	"github.com/Domenick1991/tripverse/internal/domain"
	"github.com/jackc/pgx/v5"
)

// notFound turns pgx.ErrNoRows into domain.ErrNotFound and leaves other errors alone.
func notFound(err error, what string) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s: %w", what, domain.ErrNotFound)
	}
	return err
}
