package flights

import (
	"context"
	"strings"

	"github.com/Domenick1991/flightbooking/internal/domain"
	"github.com/Domenick1991/flightbooking/internal/repository"
)

type FlightUseCase interface {
	Search(ctx context.Context, params domain.SearchParams) ([]domain.FlightSummary, error)
}

type SearchCache interface {
	GetSearch(ctx context.Context, params domain.SearchParams) ([]domain.FlightSummary, error)
	SetSearch(ctx context.Context, params domain.SearchParams, flights []domain.FlightSummary) error
}

type FlightService struct {
	store repository.InventoryStore
	cache SearchCache
}

func NewFlightService(store repository.InventoryStore, cache SearchCache) *FlightService {
	return &FlightService{store: store, cache: cache}
}

// Search is a filtered read with no locking. Results pass through the cache
// when one is configured; a cache failure falls back to the store.
func (s *FlightService) Search(ctx context.Context, params domain.SearchParams) ([]domain.FlightSummary, error) {
	if strings.TrimSpace(params.Departure) == "" || strings.TrimSpace(params.Arrival) == "" {
		return nil, domain.InvalidInput("departure and arrival cities are required")
	}
	params.Departure = strings.TrimSpace(params.Departure)
	params.Arrival = strings.TrimSpace(params.Arrival)

	if s.cache != nil {
		if cached, err := s.cache.GetSearch(ctx, params); err == nil && cached != nil {
			return cached, nil
		}
	}

	flights, err := s.store.SearchFlights(ctx, params)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		_ = s.cache.SetSearch(ctx, params, flights)
	}
	return flights, nil
}

var _ FlightUseCase = (*FlightService)(nil)
