package profile

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Domenick1991/tripverse/internal/auth"
	"github.com/Domenick1991/tripverse/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockTravelerRepository struct {
	mock.Mock
}

func (m *MockTravelerRepository) UpsertByEmail(ctx context.Context, traveler *domain.Traveler) error {
	args := m.Called(ctx, traveler)
	return args.Error(0)
}

func (m *MockTravelerRepository) GetByID(ctx context.Context, id string) (*domain.Traveler, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Traveler), args.Error(1)
}

func (m *MockTravelerRepository) Update(ctx context.Context, traveler *domain.Traveler) error {
	args := m.Called(ctx, traveler)
	return args.Error(0)
}

func (m *MockTravelerRepository) Stats(ctx context.Context, id string) (domain.TravelerStats, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.TravelerStats), args.Error(1)
}

func TestProfileService_Login_Success(t *testing.T) {
	mockRepo := &MockTravelerRepository{}
	tokens := auth.NewTokenManager("secret", "tripverse", time.Hour)
	service := NewProfileService(mockRepo, tokens)

	ctx := context.Background()
	mockRepo.On("UpsertByEmail", ctx, mock.MatchedBy(func(tr *domain.Traveler) bool {
		return tr.Email == "priya@example.com" && tr.Name == "priya"
	})).Return(nil).Once()

	result, err := service.Login(ctx, LoginInput{Email: " Priya@Example.com "})

	require.NoError(t, err)
	assert.NotEmpty(t, result.Token)
	assert.Equal(t, "priya@example.com", result.Traveler.Email)

	claims, err := tokens.Parse(result.Token)
	require.NoError(t, err)
	assert.Equal(t, result.Traveler.ID, claims.TravelerID)
	mockRepo.AssertExpectations(t)
}

func TestProfileService_Login_DisplayNameAddress(t *testing.T) {
	mockRepo := &MockTravelerRepository{}
	tokens := auth.NewTokenManager("secret", "tripverse", time.Hour)
	service := NewProfileService(mockRepo, tokens)

	ctx := context.Background()
	mockRepo.On("UpsertByEmail", ctx, mock.MatchedBy(func(tr *domain.Traveler) bool {
		return tr.Email == "jane@example.com" && tr.Name == "Jane Doe"
	})).Return(nil).Once()

	result, err := service.Login(ctx, LoginInput{Email: "Jane Doe <Jane@Example.com>"})

	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", result.Traveler.Email)
	assert.Equal(t, "Jane Doe", result.Traveler.Name)

	claims, err := tokens.Parse(result.Token)
	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", claims.Email)
	mockRepo.AssertExpectations(t)
}

func TestProfileService_Login_ValidationErrors(t *testing.T) {
	mockRepo := &MockTravelerRepository{}
	service := NewProfileService(mockRepo, auth.NewTokenManager("secret", "tripverse", time.Hour))

	_, err := service.Login(context.Background(), LoginInput{Name: "Priya"})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = service.Login(context.Background(), LoginInput{Email: "not-an-email"})
	assert.ErrorIs(t, err, domain.ErrValidation)

	mockRepo.AssertNotCalled(t, "UpsertByEmail")
}

func TestProfileService_Login_RepositoryError(t *testing.T) {
	mockRepo := &MockTravelerRepository{}
	service := NewProfileService(mockRepo, auth.NewTokenManager("secret", "tripverse", time.Hour))

	ctx := context.Background()
	expectedErr := errors.New("database error")
	mockRepo.On("UpsertByEmail", ctx, mock.Anything).Return(expectedErr).Once()

	result, err := service.Login(ctx, LoginInput{Name: "Priya", Email: "priya@example.com"})

	assert.Nil(t, result)
	assert.Equal(t, expectedErr, err)
}

func TestProfileService_GetProfile(t *testing.T) {
	mockRepo := &MockTravelerRepository{}
	service := NewProfileService(mockRepo, nil)

	ctx := context.Background()
	traveler := &domain.Traveler{ID: "t1", Name: "Priya Sharma", Email: "priya@example.com"}
	stats := domain.TravelerStats{TripsPlanned: 2, PlacesVisited: 6, PhotosShared: 30, ReviewsGiven: 4}
	mockRepo.On("GetByID", ctx, "t1").Return(traveler, nil).Once()
	mockRepo.On("Stats", ctx, "t1").Return(stats, nil).Once()

	profile, err := service.GetProfile(ctx, "t1")

	require.NoError(t, err)
	assert.Equal(t, "PS", profile.Initials)
	assert.Equal(t, stats, profile.Stats)
	require.Len(t, profile.Achievements, 4)
	assert.True(t, profile.Achievements[0].Earned)
	assert.True(t, profile.Achievements[1].Earned)
	assert.False(t, profile.Achievements[2].Earned)
	assert.False(t, profile.Achievements[3].Earned)
}

func TestProfileService_GetProfile_NotFound(t *testing.T) {
	mockRepo := &MockTravelerRepository{}
	service := NewProfileService(mockRepo, nil)

	ctx := context.Background()
	mockRepo.On("GetByID", ctx, "missing").Return(nil, domain.ErrNotFound).Once()

	profile, err := service.GetProfile(ctx, "missing")

	assert.Nil(t, profile)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	mockRepo.AssertNotCalled(t, "Stats")
}

func TestProfileService_UpdateProfile(t *testing.T) {
	mockRepo := &MockTravelerRepository{}
	service := NewProfileService(mockRepo, nil)

	ctx := context.Background()
	traveler := &domain.Traveler{ID: "t1", Name: "Priya Sharma", Phone: "+91 98765 43210", Notifications: true}
	mockRepo.On("GetByID", ctx, "t1").Return(traveler, nil).Once()
	mockRepo.On("Update", ctx, mock.MatchedBy(func(tr *domain.Traveler) bool {
		return tr.Name == "Priya S" && tr.Phone == "+91 98765 43210" && !tr.Notifications && tr.LocationAccess
	})).Return(nil).Once()
	mockRepo.On("Stats", ctx, "t1").Return(domain.TravelerStats{}, nil).Once()

	name := " Priya S "
	off, on := false, true
	profile, err := service.UpdateProfile(ctx, "t1", ProfilePatch{Name: &name, Notifications: &off, LocationAccess: &on})

	require.NoError(t, err)
	assert.Equal(t, "Priya S", profile.Traveler.Name)
	mockRepo.AssertExpectations(t)
}

func TestProfileService_UpdateProfile_EmptyName(t *testing.T) {
	mockRepo := &MockTravelerRepository{}
	service := NewProfileService(mockRepo, nil)

	ctx := context.Background()
	mockRepo.On("GetByID", ctx, "t1").Return(&domain.Traveler{ID: "t1", Name: "Priya"}, nil).Once()

	blank := "  "
	_, err := service.UpdateProfile(ctx, "t1", ProfilePatch{Name: &blank})

	assert.ErrorIs(t, err, domain.ErrValidation)
	mockRepo.AssertNotCalled(t, "Update")
}
