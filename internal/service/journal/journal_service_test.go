package journal

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Domenick1991/tripverse/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockJournalRepository struct {
	mock.Mock
}

func (m *MockJournalRepository) Create(ctx context.Context, entry *domain.JournalEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockJournalRepository) ListByTraveler(ctx context.Context, travelerID string) ([]domain.JournalEntry, error) {
	args := m.Called(ctx, travelerID)
	return args.Get(0).([]domain.JournalEntry), args.Error(1)
}

func (m *MockJournalRepository) Delete(ctx context.Context, travelerID, id string) error {
	args := m.Called(ctx, travelerID, id)
	return args.Error(0)
}

const (
	travelerID   = "0f8fad5b-d9cb-469f-a165-70867728950e"
	missingEntry = "3f2504e0-4f89-41d3-9a0c-0305e82c3301"
)

func TestJournalService_CreateEntry_Defaults(t *testing.T) {
	mockRepo := &MockJournalRepository{}
	service := NewJournalService(mockRepo)
	service.now = func() time.Time { return time.Date(2024, 1, 15, 18, 30, 0, 0, time.UTC) }

	ctx := context.Background()
	mockRepo.On("Create", ctx, mock.AnythingOfType("*domain.JournalEntry")).Return(nil).Once()

	entry, err := service.CreateEntry(ctx, travelerID, CreateEntryInput{
		Title:    "Sunrise at Munnar",
		Content:  "Woke up early to catch the sunrise over the tea gardens.",
		Location: " Munnar, Kerala ",
		Tags:     []string{" Nature ", "sunrise", "NATURE", ""},
	})

	require.NoError(t, err)
	assert.NotEmpty(t, entry.ID)
	assert.Equal(t, domain.DefaultMood, entry.Mood)
	assert.Equal(t, "Munnar, Kerala", entry.Location)
	assert.Equal(t, []string{"nature", "sunrise"}, entry.Tags)
	assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), entry.EntryDate)
	mockRepo.AssertExpectations(t)
}

func TestJournalService_CreateEntry_ExplicitDateAndMood(t *testing.T) {
	mockRepo := &MockJournalRepository{}
	service := NewJournalService(mockRepo)

	ctx := context.Background()
	date := time.Date(2024, 1, 12, 9, 0, 0, 0, time.UTC)
	mockRepo.On("Create", ctx, mock.Anything).Return(nil).Once()

	entry, err := service.CreateEntry(ctx, travelerID, CreateEntryInput{Title: "Houseboat", Content: "Backwaters", Mood: "😌", Photos: 12, EntryDate: &domain.Date{Time: date}})

	require.NoError(t, err)
	assert.Equal(t, "😌", entry.Mood)
	assert.Equal(t, 12, entry.Photos)
	assert.Equal(t, time.Date(2024, 1, 12, 0, 0, 0, 0, time.UTC), entry.EntryDate)
	assert.Empty(t, entry.Tags)
}

func TestJournalService_CreateEntry_ValidationErrors(t *testing.T) {
	mockRepo := &MockJournalRepository{}
	service := NewJournalService(mockRepo)

	testCases := []struct {
		name        string
		input       CreateEntryInput
		expectedErr string
	}{
		{"Empty title", CreateEntryInput{Content: "x"}, "title is required"},
		{"Empty content", CreateEntryInput{Title: "x", Content: "  "}, "content is required"},
		{"Unknown mood", CreateEntryInput{Title: "x", Content: "y", Mood: "🙃"}, "unknown mood"},
		{"Negative photos", CreateEntryInput{Title: "x", Content: "y", Photos: -1}, "photos must not be negative"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			entry, err := service.CreateEntry(context.Background(), travelerID, tc.input)
			assert.Nil(t, entry)
			assert.ErrorIs(t, err, domain.ErrValidation)
			assert.Contains(t, err.Error(), tc.expectedErr)
		})
	}
	mockRepo.AssertNotCalled(t, "Create")
}

func TestJournalService_CreateEntry_RepositoryError(t *testing.T) {
	mockRepo := &MockJournalRepository{}
	service := NewJournalService(mockRepo)

	ctx := context.Background()
	expectedErr := errors.New("database error")
	mockRepo.On("Create", ctx, mock.Anything).Return(expectedErr).Once()

	entry, err := service.CreateEntry(ctx, travelerID, CreateEntryInput{Title: "x", Content: "y"})

	assert.Nil(t, entry)
	assert.Equal(t, expectedErr, err)
}

func TestJournalService_ListAndDelete(t *testing.T) {
	mockRepo := &MockJournalRepository{}
	service := NewJournalService(mockRepo)

	ctx := context.Background()
	entries := []domain.JournalEntry{{ID: "1", Title: "Sunrise at Munnar"}}
	mockRepo.On("ListByTraveler", ctx, travelerID).Return(entries, nil).Once()
	mockRepo.On("Delete", ctx, travelerID, missingEntry).Return(domain.ErrNotFound).Once()

	list, err := service.ListEntries(ctx, travelerID)
	assert.NoError(t, err)
	assert.Equal(t, entries, list)

	assert.ErrorIs(t, service.DeleteEntry(ctx, travelerID, missingEntry), domain.ErrNotFound)
	mockRepo.AssertExpectations(t)
}

func TestJournalService_DeleteEntry_MalformedID(t *testing.T) {
	mockRepo := &MockJournalRepository{}
	service := NewJournalService(mockRepo)

	err := service.DeleteEntry(context.Background(), travelerID, "abc")

	assert.ErrorIs(t, err, domain.ErrNotFound)
	mockRepo.AssertNotCalled(t, "Delete")
}

func TestNormalizeTags(t *testing.T) {
	assert.Equal(t, []string{}, NormalizeTags(nil))
	assert.Equal(t, []string{"food", "kochi"}, NormalizeTags([]string{"Food", " kochi", "food ", "KOCHI"}))
}

func TestJournalService_Moods(t *testing.T) {
	moods := NewJournalService(nil).Moods()
	assert.Len(t, moods, 8)
	assert.Equal(t, domain.DefaultMood, moods[0])
}
