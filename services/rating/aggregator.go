package rating

import (
	"context"
	"errors"
	"math"

	providerRepo "localpro/database/repository/provider"
	"localpro/models"
	"localpro/utils"

	"go.uber.org/zap"
)

const writeAttempts = 3

// Average is the mean of the approved ratings rounded half away from zero
// to one decimal, or 0 when nothing is approved.
func Average(stats models.ReviewStats) float64 {
	if stats.Count <= 0 {
		return 0
	}
	return math.Round(float64(stats.Sum)*10/float64(stats.Count)) / 10
}

func lockKey(providerID string) string {
	return "rating:" + providerID
}

// Recompute derives the provider's rating from scratch. Calls for the same
// provider are serialized by the locker, and the write is conditional on
// ratingVersion so a recompute that lost its lock mid-way cannot overwrite
// a newer result.
func (s *DefaultRatingService) Recompute(ctx context.Context, providerID string) (*models.RatingSummary, error) {
	unlock, err := s.Locker.Lock(ctx, lockKey(providerID))
	if err != nil {
		return nil, utils.NewInternalError("failed to acquire rating lock", err)
	}
	defer unlock()

	for attempt := 1; attempt <= writeAttempts; attempt++ {
		provider, err := s.Providers.GetByID(ctx, providerID)
		if err != nil {
			if errors.Is(err, providerRepo.ErrNotFound) {
				return nil, utils.NewNotFoundError("provider not found")
			}
			return nil, utils.NewInternalError("failed to load provider", err)
		}

		stats, err := s.Reviews.ApprovedStats(ctx, providerID)
		if err != nil {
			return nil, utils.NewInternalError("failed to aggregate reviews", err)
		}
		average := Average(stats)

		err = s.Providers.SetRatingAggregate(ctx, providerID, provider.RatingVersion, average, stats.Count)
		if errors.Is(err, providerRepo.ErrVersionConflict) {
			s.Logger.Warn("rating write conflicted, recomputing",
				zap.String("providerId", providerID),
				zap.Int("attempt", attempt),
			)
			continue
		}
		if err != nil {
			return nil, utils.NewInternalError("failed to store rating", err)
		}

		s.Logger.Debug("rating recomputed",
			zap.String("providerId", providerID),
			zap.Float64("ratingAverage", average),
			zap.Int("totalReviews", stats.Count),
		)
		return &models.RatingSummary{
			ProviderID:    providerID,
			RatingAverage: average,
			TotalReviews:  stats.Count,
		}, nil
	}
	return nil, utils.NewInternalError("rating update kept conflicting", providerRepo.ErrVersionConflict)
}
