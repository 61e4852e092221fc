package trips

import (
	"context"
	"fmt"
	"strings"

	"github.com/Domenick1991/tripverse/internal/domain"
	"github.com/Domenick1991/tripverse/internal/repository"
	"github.com/google/uuid"
)

type TripUseCase interface {
	Planner() Planner
	Estimate(stops []domain.TripStop) (domain.TripEstimate, error)
	CreateTrip(ctx context.Context, travelerID string, input CreateTripInput) (*domain.Trip, error)
	ListTrips(ctx context.Context, travelerID string) ([]domain.Trip, error)
	GetTrip(ctx context.Context, travelerID, id string) (*domain.Trip, error)
	DeleteTrip(ctx context.Context, travelerID, id string) error
}

type CreateTripInput struct {
	Name      string            `json:"name"`
	StartDate *domain.Date      `json:"start_date"`
	EndDate   *domain.Date      `json:"end_date"`
	Travelers int               `json:"travelers"`
	Notes     string            `json:"notes"`
	Stops     []domain.TripStop `json:"stops"`
}

// Planner is the initial state of the trip planner screen.
type Planner struct {
	Options     []domain.PlannerOption  `json:"options"`
	Suggestions []domain.TripSuggestion `json:"suggestions"`
	Estimate    domain.TripEstimate     `json:"estimate"`
}

type TripService struct {
	repo repository.TripRepository
}

func NewTripService(repo repository.TripRepository) *TripService {
	return &TripService{repo: repo}
}

func validationError(msg string) error {
	return fmt.Errorf("%s: %w", msg, domain.ErrValidation)
}

func (s *TripService) Planner() Planner {
	var selected []domain.TripStop
	for _, o := range domain.PlannerOptions {
		if o.Selected {
			selected = append(selected, domain.TripStop{Name: o.Name, Days: o.Days})
		}
	}
	return Planner{
		Options:     domain.PlannerOptions,
		Suggestions: domain.TripSuggestions,
		Estimate:    domain.EstimateTrip(selected),
	}
}

func (s *TripService) Estimate(stops []domain.TripStop) (domain.TripEstimate, error) {
	if err := validateStops(stops, false); err != nil {
		return domain.TripEstimate{}, err
	}
	return domain.EstimateTrip(stops), nil
}

func validateStops(stops []domain.TripStop, required bool) error {
	if required && len(stops) == 0 {
		return validationError("at least one stop is required")
	}
	for i, stop := range stops {
		if strings.TrimSpace(stop.Name) == "" {
			return validationError(fmt.Sprintf("stop %d: name is required", i+1))
		}
		if stop.Days < 1 {
			return validationError(fmt.Sprintf("stop %d: days must be at least 1", i+1))
		}
	}
	return nil
}

func (s *TripService) CreateTrip(ctx context.Context, travelerID string, input CreateTripInput) (*domain.Trip, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, validationError("trip name is required")
	}
	if err := validateStops(input.Stops, true); err != nil {
		return nil, err
	}
	travelers := input.Travelers
	if travelers == 0 {
		travelers = 1
	}
	if travelers < 1 {
		return nil, validationError("travelers must be at least 1")
	}
	start, end := input.StartDate.TimePtr(), input.EndDate.TimePtr()
	if start != nil && end != nil && end.Before(*start) {
		return nil, validationError("end date is before start date")
	}

	stops := make([]domain.TripStop, len(input.Stops))
	for i, stop := range input.Stops {
		stops[i] = domain.TripStop{Name: strings.TrimSpace(stop.Name), Days: stop.Days}
	}
	estimate := domain.EstimateTrip(stops)

	trip := &domain.Trip{
		ID:                   uuid.NewString(),
		TravelerID:           travelerID,
		Name:                 name,
		StartDate:            start,
		EndDate:              end,
		Travelers:            travelers,
		Notes:                strings.TrimSpace(input.Notes),
		Stops:                stops,
		TotalDays:            estimate.TotalDays,
		EstimatedBudgetPaise: estimate.EstimatedBudgetPaise,
	}
	if err := s.repo.Create(ctx, trip); err != nil {
		return nil, err
	}
	return trip, nil
}

func (s *TripService) ListTrips(ctx context.Context, travelerID string) ([]domain.Trip, error) {
	return s.repo.ListByTraveler(ctx, travelerID)
}

func (s *TripService) GetTrip(ctx context.Context, travelerID, id string) (*domain.Trip, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	return s.repo.Get(ctx, travelerID, id)
}

func (s *TripService) DeleteTrip(ctx context.Context, travelerID, id string) error {
	if err := checkID(id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, travelerID, id)
}

// checkID rejects ids that could never have been issued, before they reach
// the uuid column.
func checkID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("trip %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

var _ TripUseCase = (*TripService)(nil)
