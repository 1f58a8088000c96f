package rating

import (
	"context"

	"localpro/models"
	"localpro/utils"

	"go.uber.org/zap"
)

//go:generate mockgen -source=interface.go -destination=mocks/mock_rating.go -package=mocks

// RatingService keeps a provider's ratingAverage and totalReviews derived
// from its approved reviews.
type RatingService interface {
	Recompute(ctx context.Context, providerID string) (*models.RatingSummary, error)
}

// ReviewStatsSource aggregates approved reviews.
type ReviewStatsSource interface {
	ApprovedStats(ctx context.Context, providerID string) (models.ReviewStats, error)
}

// ProviderAggregates reads and conditionally writes the rating fields.
type ProviderAggregates interface {
	GetByID(ctx context.Context, id string) (*models.Provider, error)
	SetRatingAggregate(ctx context.Context, id string, expectedVersion int, average float64, total int) error
}

// DefaultRatingService implements RatingService.
type DefaultRatingService struct {
	Reviews   ReviewStatsSource
	Providers ProviderAggregates
	Locker    utils.Locker
	Logger    *zap.Logger
}

func NewRatingService(reviews ReviewStatsSource, providers ProviderAggregates, locker utils.Locker, logger *zap.Logger) *DefaultRatingService {
	return &DefaultRatingService{Reviews: reviews, Providers: providers, Locker: locker, Logger: logger}
}
