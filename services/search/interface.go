package search

import (
	"context"

	providerRepo "localpro/database/repository/provider"
	"localpro/models"

	"go.uber.org/zap"
)

//go:generate mockgen -source=interface.go -destination=mocks/mock_search.go -package=mocks

// LocationIndex is the provider store as seen by search.
type LocationIndex interface {
	Within(ctx context.Context, center models.GeoPoint, radiusMeters float64, filter providerRepo.CategoryFilter) ([]models.Provider, error)
	List(ctx context.Context, filter providerRepo.CategoryFilter, order providerRepo.ListOrder, skip, limit int) ([]models.Provider, error)
}

// SearchService ranks and pages providers.
type SearchService interface {
	Search(ctx context.Context, filter Filter) (*models.SearchResult, error)
}

// DefaultSearchService implements SearchService.
type DefaultSearchService struct {
	Index  LocationIndex
	Logger *zap.Logger
}
