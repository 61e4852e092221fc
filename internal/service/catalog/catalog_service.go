package catalog

import (
	"context"
	"fmt"
	"sort"

	"github.com/Domenick1991/tripverse/internal/domain"
	"github.com/Domenick1991/tripverse/internal/metrics"
	"github.com/Domenick1991/tripverse/internal/repository"
)

type CatalogUseCase interface {
	ListDestinations(ctx context.Context, category, query string) ([]domain.Destination, error)
	GetDestination(ctx context.Context, id int64) (*domain.Destination, error)
	Highlights(ctx context.Context, n int) ([]domain.Destination, error)
	DestinationCategories() []domain.Category
	ListPlaces(ctx context.Context, city, category, query string) ([]domain.Place, error)
	PlaceCategories() []domain.Category
}

type CatalogCache interface {
	GetDestinations(ctx context.Context) ([]domain.Destination, error)
	SetDestinations(ctx context.Context, destinations []domain.Destination) error
	GetPlaces(ctx context.Context) ([]domain.Place, error)
	SetPlaces(ctx context.Context, places []domain.Place) error
}

type CatalogService struct {
	repo        repository.CatalogRepository
	cache       CatalogCache
	defaultCity string
}

func NewCatalogService(repo repository.CatalogRepository, cache CatalogCache, defaultCity string) *CatalogService {
	return &CatalogService{repo: repo, cache: cache, defaultCity: defaultCity}
}

func (s *CatalogService) ListDestinations(ctx context.Context, category, query string) ([]domain.Destination, error) {
	if !domain.KnownCategory(domain.DestinationCategories, category) {
		return nil, fmt.Errorf("unknown category %q: %w", category, domain.ErrValidation)
	}
	all, err := s.destinations(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]domain.Destination, 0, len(all))
	for _, d := range all {
		if d.Matches(category, query) {
			result = append(result, d)
		}
	}
	return result, nil
}

func (s *CatalogService) GetDestination(ctx context.Context, id int64) (*domain.Destination, error) {
	return s.repo.GetDestination(ctx, id)
}

// Highlights returns the n best rated destinations, ties broken by id.
func (s *CatalogService) Highlights(ctx context.Context, n int) ([]domain.Destination, error) {
	all, err := s.destinations(ctx)
	if err != nil {
		return nil, err
	}
	sorted := make([]domain.Destination, len(all))
	copy(sorted, all)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Rating != sorted[j].Rating {
			return sorted[i].Rating > sorted[j].Rating
		}
		return sorted[i].ID < sorted[j].ID
	})
	if n >= 0 && n < len(sorted) {
		sorted = sorted[:n]
	}
	return sorted, nil
}

func (s *CatalogService) DestinationCategories() []domain.Category {
	return domain.DestinationCategories
}

func (s *CatalogService) ListPlaces(ctx context.Context, city, category, query string) ([]domain.Place, error) {
	if !domain.KnownCategory(domain.PlaceCategories, category) {
		return nil, fmt.Errorf("unknown category %q: %w", category, domain.ErrValidation)
	}
	if city == "" {
		city = s.defaultCity
	}
	all, err := s.places(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]domain.Place, 0, len(all))
	for _, p := range all {
		if p.Matches(city, category, query) {
			result = append(result, p)
		}
	}
	return result, nil
}

func (s *CatalogService) PlaceCategories() []domain.Category {
	return domain.PlaceCategories
}

func (s *CatalogService) destinations(ctx context.Context) ([]domain.Destination, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetDestinations(ctx); err == nil && cached != nil {
			metrics.RecordCacheLookup("destinations", true)
			return cached, nil
		}
		metrics.RecordCacheLookup("destinations", false)
	}
	destinations, err := s.repo.ListDestinations(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		_ = s.cache.SetDestinations(ctx, destinations)
	}
	return destinations, nil
}

func (s *CatalogService) places(ctx context.Context) ([]domain.Place, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetPlaces(ctx); err == nil && cached != nil {
			metrics.RecordCacheLookup("places", true)
			return cached, nil
		}
		metrics.RecordCacheLookup("places", false)
	}
	places, err := s.repo.ListPlaces(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		_ = s.cache.SetPlaces(ctx, places)
	}
	return places, nil
}

var _ CatalogUseCase = (*CatalogService)(nil)
