package repository

import (
	"context"
	"fmt"

	"github.com/Domenick1991/tripverse/internal/domain"
)

type JournalRepository interface {
	Create(ctx context.Context, entry *domain.JournalEntry) error
	ListByTraveler(ctx context.Context, travelerID string) ([]domain.JournalEntry, error)
	Delete(ctx context.Context, travelerID, id string) error
}

type PGJournalRepository struct {
	db DB
}

func NewJournalRepository(db DB) JournalRepository {
	return &PGJournalRepository{db: db}
}

func (r *PGJournalRepository) Create(ctx context.Context, entry *domain.JournalEntry) error {
	return r.db.QueryRow(ctx, `INSERT INTO journal_entries (id, traveler_id, title, content, location, mood, photos, tags, entry_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at`,
		entry.ID, entry.TravelerID, entry.Title, entry.Content, entry.Location, entry.Mood, entry.Photos, entry.Tags, entry.EntryDate).
		Scan(&entry.CreatedAt)
}

func (r *PGJournalRepository) ListByTraveler(ctx context.Context, travelerID string) ([]domain.JournalEntry, error) {
	rows, err := r.db.Query(ctx, `SELECT id::text, traveler_id::text, title, content, location, mood, photos, tags, entry_date, created_at
		FROM journal_entries WHERE traveler_id=$1 ORDER BY entry_date DESC, created_at DESC`, travelerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]domain.JournalEntry, 0)
	for rows.Next() {
		var e domain.JournalEntry
		if err := rows.Scan(&e.ID, &e.TravelerID, &e.Title, &e.Content, &e.Location, &e.Mood, &e.Photos, &e.Tags, &e.EntryDate, &e.CreatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (r *PGJournalRepository) Delete(ctx context.Context, travelerID, id string) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM journal_entries WHERE traveler_id=$1 AND id=$2`, travelerID, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("journal entry %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

var _ JournalRepository = (*PGJournalRepository)(nil)
