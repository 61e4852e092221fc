package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockHealthRepo(t *testing.T) (HealthRepository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewHealthRepository(sqlx.NewDb(db, "sqlmock")), mock
}

func TestSQLHealthRepository_Now(t *testing.T) {
	repo, mock := newMockHealthRepo(t)
	ts := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT NOW\(\) AS now`).WillReturnRows(sqlmock.NewRows([]string{"now"}).AddRow(ts))

	got, err := repo.Now(context.Background())
	require.NoError(t, err)
	assert.True(t, ts.Equal(got))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLHealthRepository_NowError(t *testing.T) {
	repo, mock := newMockHealthRepo(t)
	mock.ExpectQuery(`SELECT NOW\(\) AS now`).WillReturnError(errors.New("connection refused"))

	_, err := repo.Now(context.Background())
	assert.EqualError(t, err, "connection refused")
	assert.NoError(t, mock.ExpectationsWereMet())
}
