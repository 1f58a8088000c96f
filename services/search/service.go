package search

import (
	"context"

	providerRepo "localpro/database/repository/provider"
	"localpro/models"
	"localpro/utils"

	"go.uber.org/zap"
)

// candidateSlackMeters widens the store-side cap so floating point drift at
// the boundary never drops a provider the exact haversine check would keep.
const candidateSlackMeters = 1.0

func NewSearchService(index LocationIndex, logger *zap.Logger) *DefaultSearchService {
	return &DefaultSearchService{Index: index, Logger: logger}
}

// Search runs a validated filter. With a center it ranks the candidates
// from the location index in memory; without one it delegates ordering and
// paging to the store.
func (s *DefaultSearchService) Search(ctx context.Context, f Filter) (*models.SearchResult, error) {
	category := providerRepo.CategoryFilter{
		CategoryID:      f.CategoryID,
		SubCategorySlug: f.SubCategorySlug,
	}

	result := &models.SearchResult{
		Providers: []models.ProviderSummary{},
		Page:      f.Page,
		Limit:     f.Limit,
	}
	// Offsets that cannot be represented lie past every result.
	if f.Page < 1 || f.Limit < 1 || !utils.PageInRange(f.Page, f.Limit) {
		return result, nil
	}

	if f.Center != nil {
		radiusMeters := f.RadiusKm * 1000
		candidates, err := s.Index.Within(ctx, *f.Center, radiusMeters+candidateSlackMeters, category)
		if err != nil {
			return nil, utils.NewInternalError("search failed", err)
		}
		for _, r := range pageOf(rankNearby(candidates, *f.Center, radiusMeters, f.Sort), f.Skip(), f.Limit) {
			result.Providers = append(result.Providers, withDistance(r))
		}
		result.Count = len(result.Providers)
		s.Logger.Debug("geo search",
			zap.Int("candidates", len(candidates)),
			zap.Int("returned", result.Count),
			zap.Float64("radiusKm", f.RadiusKm),
		)
		return result, nil
	}

	order := providerRepo.OrderByRecency
	if f.Sort == SortRating {
		order = providerRepo.OrderByRating
	}
	providers, err := s.Index.List(ctx, category, order, f.Skip(), f.Limit)
	if err != nil {
		return nil, utils.NewInternalError("search failed", err)
	}
	for _, p := range providers {
		if !p.IsActive {
			continue
		}
		result.Providers = append(result.Providers, toSummary(p))
	}
	result.Count = len(result.Providers)
	return result, nil
}
