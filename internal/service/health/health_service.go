package health

import (
	"context"
	"time"

	"github.com/Domenick1991/tripverse/internal/repository"
)

type HealthUseCase interface {
	Now(ctx context.Context) (time.Time, error)
}

// HealthService checks database reachability by asking it for the time.
type HealthService struct {
	repo repository.HealthRepository
}

func NewHealthService(repo repository.HealthRepository) *HealthService {
	return &HealthService{repo: repo}
}

func (s *HealthService) Now(ctx context.Context) (time.Time, error) {
	return s.repo.Now(ctx)
}

var _ HealthUseCase = (*HealthService)(nil)
