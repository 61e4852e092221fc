package api

import (
	"context"
	"time"

	"github.com/Domenick1991/tripverse/internal/domain"
	"github.com/Domenick1991/tripverse/internal/service/booking"
	"github.com/Domenick1991/tripverse/internal/service/journal"
	"github.com/Domenick1991/tripverse/internal/service/profile"
	"github.com/Domenick1991/tripverse/internal/service/trips"
	"github.com/stretchr/testify/mock"
)

// MockBookingUseCase is a mock implementation of booking.BookingUseCase
type MockBookingUseCase struct {
	mock.Mock
}

func (m *MockBookingUseCase) CreateBooking(ctx context.Context, input booking.CreateBookingInput) (*domain.Booking, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingUseCase) GetBooking(ctx context.Context, token string) (*domain.Booking, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingUseCase) ConfirmBooking(ctx context.Context, token string) (*domain.Booking, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingUseCase) CancelBooking(ctx context.Context, token string) (*domain.Booking, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingUseCase) ExpirePendingBookings(ctx context.Context) ([]domain.Booking, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Booking), args.Error(1)
}

type MockTransportUseCase struct {
	mock.Mock
}

func (m *MockTransportUseCase) List(ctx context.Context, mode string) ([]domain.Transport, error) {
	args := m.Called(ctx, mode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transport), args.Error(1)
}

func (m *MockTransportUseCase) GetByID(ctx context.Context, id int64) (*domain.Transport, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transport), args.Error(1)
}

func (m *MockTransportUseCase) Modes() []domain.TransportModeInfo {
	return domain.TransportModes
}

type MockCatalogUseCase struct {
	mock.Mock
}

func (m *MockCatalogUseCase) ListDestinations(ctx context.Context, category, query string) ([]domain.Destination, error) {
	args := m.Called(ctx, category, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Destination), args.Error(1)
}

func (m *MockCatalogUseCase) GetDestination(ctx context.Context, id int64) (*domain.Destination, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Destination), args.Error(1)
}

func (m *MockCatalogUseCase) Highlights(ctx context.Context, n int) ([]domain.Destination, error) {
	args := m.Called(ctx, n)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Destination), args.Error(1)
}

func (m *MockCatalogUseCase) DestinationCategories() []domain.Category {
	return domain.DestinationCategories
}

func (m *MockCatalogUseCase) ListPlaces(ctx context.Context, city, category, query string) ([]domain.Place, error) {
	args := m.Called(ctx, city, category, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Place), args.Error(1)
}

func (m *MockCatalogUseCase) PlaceCategories() []domain.Category {
	return domain.PlaceCategories
}

type MockTripUseCase struct {
	mock.Mock
}

func (m *MockTripUseCase) Planner() trips.Planner {
	return trips.Planner{Options: domain.PlannerOptions, Suggestions: domain.TripSuggestions}
}

func (m *MockTripUseCase) Estimate(stops []domain.TripStop) (domain.TripEstimate, error) {
	args := m.Called(stops)
	return args.Get(0).(domain.TripEstimate), args.Error(1)
}

func (m *MockTripUseCase) CreateTrip(ctx context.Context, travelerID string, input trips.CreateTripInput) (*domain.Trip, error) {
	args := m.Called(ctx, travelerID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Trip), args.Error(1)
}

func (m *MockTripUseCase) ListTrips(ctx context.Context, travelerID string) ([]domain.Trip, error) {
	args := m.Called(ctx, travelerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Trip), args.Error(1)
}

func (m *MockTripUseCase) GetTrip(ctx context.Context, travelerID, id string) (*domain.Trip, error) {
	args := m.Called(ctx, travelerID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Trip), args.Error(1)
}

func (m *MockTripUseCase) DeleteTrip(ctx context.Context, travelerID, id string) error {
	args := m.Called(ctx, travelerID, id)
	return args.Error(0)
}

type MockJournalUseCase struct {
	mock.Mock
}

func (m *MockJournalUseCase) CreateEntry(ctx context.Context, travelerID string, input journal.CreateEntryInput) (*domain.JournalEntry, error) {
	args := m.Called(ctx, travelerID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockJournalUseCase) ListEntries(ctx context.Context, travelerID string) ([]domain.JournalEntry, error) {
	args := m.Called(ctx, travelerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JournalEntry), args.Error(1)
}

func (m *MockJournalUseCase) DeleteEntry(ctx context.Context, travelerID, id string) error {
	args := m.Called(ctx, travelerID, id)
	return args.Error(0)
}

func (m *MockJournalUseCase) Moods() []string {
	return domain.Moods
}

type MockProfileUseCase struct {
	mock.Mock
}

func (m *MockProfileUseCase) Login(ctx context.Context, input profile.LoginInput) (*profile.LoginResult, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*profile.LoginResult), args.Error(1)
}

func (m *MockProfileUseCase) GetProfile(ctx context.Context, travelerID string) (*profile.Profile, error) {
	args := m.Called(ctx, travelerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*profile.Profile), args.Error(1)
}

func (m *MockProfileUseCase) UpdateProfile(ctx context.Context, travelerID string, patch profile.ProfilePatch) (*profile.Profile, error) {
	args := m.Called(ctx, travelerID, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*profile.Profile), args.Error(1)
}

type MockHealthUseCase struct {
	mock.Mock
}

func (m *MockHealthUseCase) Now(ctx context.Context) (time.Time, error) {
	args := m.Called(ctx)
	return args.Get(0).(time.Time), args.Error(1)
}
