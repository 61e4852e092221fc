package transport

import (
	"context"
	"fmt"
	"sort"

	"github.com/Domenick1991/tripverse/internal/domain"
	"github.com/Domenick1991/tripverse/internal/metrics"
	"github.com/Domenick1991/tripverse/internal/repository"
)

type TransportUseCase interface {
	List(ctx context.Context, mode string) ([]domain.Transport, error)
	GetByID(ctx context.Context, id int64) (*domain.Transport, error)
	Modes() []domain.TransportModeInfo
}

type TransportCache interface {
	GetTransports(ctx context.Context) ([]domain.Transport, error)
	SetTransports(ctx context.Context, transports []domain.Transport) error
}

type TransportService struct {
	repo  repository.TransportRepository
	cache TransportCache
}

func NewTransportService(repo repository.TransportRepository, cache TransportCache) *TransportService {
	return &TransportService{repo: repo, cache: cache}
}

// List returns transports of the given mode ordered by departure. An empty
// mode returns every transport.
func (s *TransportService) List(ctx context.Context, mode string) ([]domain.Transport, error) {
	m := domain.TransportMode(mode)
	if mode != "" && !m.Valid() {
		return nil, fmt.Errorf("unknown transport mode %q: %w", mode, domain.ErrValidation)
	}

	all, err := s.all(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]domain.Transport, 0, len(all))
	for _, t := range all {
		if mode == "" || t.Mode == m {
			result = append(result, t)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].DepartureTime.Before(result[j].DepartureTime)
	})
	return result, nil
}

func (s *TransportService) all(ctx context.Context) ([]domain.Transport, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetTransports(ctx); err == nil && cached != nil {
			metrics.RecordCacheLookup("transports", true)
			return cached, nil
		}
		metrics.RecordCacheLookup("transports", false)
	}

	transports, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		_ = s.cache.SetTransports(ctx, transports)
	}
	return transports, nil
}

func (s *TransportService) GetByID(ctx context.Context, id int64) (*domain.Transport, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *TransportService) Modes() []domain.TransportModeInfo {
	return domain.TransportModes
}

var _ TransportUseCase = (*TransportService)(nil)
