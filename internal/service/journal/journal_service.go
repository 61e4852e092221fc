package journal

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Domenick1991/tripverse/internal/domain"
	"github.com/Domenick1991/tripverse/internal/repository"
	"github.com/google/uuid"
)

type JournalUseCase interface {
	CreateEntry(ctx context.Context, travelerID string, input CreateEntryInput) (*domain.JournalEntry, error)
	ListEntries(ctx context.Context, travelerID string) ([]domain.JournalEntry, error)
	DeleteEntry(ctx context.Context, travelerID, id string) error
	Moods() []string
}

type CreateEntryInput struct {
	Title     string       `json:"title"`
	Content   string       `json:"content"`
	Location  string       `json:"location"`
	Mood      string       `json:"mood"`
	Photos    int          `json:"photos"`
	Tags      []string     `json:"tags"`
	EntryDate *domain.Date `json:"entry_date"`
}

type JournalService struct {
	repo repository.JournalRepository
	now  func() time.Time
}

func NewJournalService(repo repository.JournalRepository) *JournalService {
	return &JournalService{repo: repo, now: time.Now}
}

func validationError(msg string) error {
	return fmt.Errorf("%s: %w", msg, domain.ErrValidation)
}

func (s *JournalService) CreateEntry(ctx context.Context, travelerID string, input CreateEntryInput) (*domain.JournalEntry, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, validationError("title is required")
	}
	content := strings.TrimSpace(input.Content)
	if content == "" {
		return nil, validationError("content is required")
	}
	mood := input.Mood
	if mood == "" {
		mood = domain.DefaultMood
	}
	if !domain.ValidMood(mood) {
		return nil, validationError(fmt.Sprintf("unknown mood %q", mood))
	}
	if input.Photos < 0 {
		return nil, validationError("photos must not be negative")
	}

	date := s.now()
	if t := input.EntryDate.TimePtr(); t != nil {
		date = *t
	}
	y, m, d := date.Date()

	entry := &domain.JournalEntry{
		ID:         uuid.NewString(),
		TravelerID: travelerID,
		Title:      title,
		Content:    content,
		Location:   strings.TrimSpace(input.Location),
		Mood:       mood,
		Photos:     input.Photos,
		Tags:       NormalizeTags(input.Tags),
		EntryDate:  time.Date(y, m, d, 0, 0, 0, 0, time.UTC),
	}
	if err := s.repo.Create(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// NormalizeTags trims and lower-cases tags, dropping blanks and repeats while
// keeping first-seen order.
func NormalizeTags(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		t := strings.ToLower(strings.TrimSpace(tag))
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}

func (s *JournalService) ListEntries(ctx context.Context, travelerID string) ([]domain.JournalEntry, error) {
	return s.repo.ListByTraveler(ctx, travelerID)
}

func (s *JournalService) DeleteEntry(ctx context.Context, travelerID, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("journal entry %s: %w", id, domain.ErrNotFound)
	}
	return s.repo.Delete(ctx, travelerID, id)
}

func (s *JournalService) Moods() []string {
	return domain.Moods
}

var _ JournalUseCase = (*JournalService)(nil)
