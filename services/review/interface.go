package review

import (
	"context"
	"time"

	providerRepo "localpro/database/repository/provider"
	reviewRepo "localpro/database/repository/review"
	"localpro/models"
	"localpro/services/rating"

	"go.uber.org/zap"
)

//go:generate mockgen -source=interface.go -destination=mocks/mock_review.go -package=mocks

// ReviewInput is the author-supplied part of a review.
type ReviewInput struct {
	ProviderID string
	Rating     int
	Comment    string
}

// ReviewService manages reviews and keeps provider ratings in step with them.
type ReviewService interface {
	Create(ctx context.Context, author models.Identity, input ReviewInput) (*models.Review, error)
	Update(ctx context.Context, author models.Identity, reviewID string, input ReviewInput) (*models.Review, error)
	Delete(ctx context.Context, author models.Identity, reviewID string) error
	Moderate(ctx context.Context, moderator models.Identity, reviewID string, approve bool) (*models.Review, error)
	ListForProvider(ctx context.Context, providerID string, page, limit int) (*models.Page[models.Review], error)
}

// ReconcileEnqueuer schedules a later recompute when an inline one fails.
type ReconcileEnqueuer interface {
	EnqueueRatingReconcile(ctx context.Context, providerID string) error
}

// DefaultReviewService implements ReviewService.
type DefaultReviewService struct {
	Reviews    reviewRepo.ReviewRepository
	Providers  providerRepo.ProviderRepository
	Rating     rating.RatingService
	Reconciler ReconcileEnqueuer
	// AutoApprove publishes new reviews without moderation.
	AutoApprove bool
	Logger      *zap.Logger
	Now         func() time.Time
}

func NewReviewService(
	reviews reviewRepo.ReviewRepository,
	providers providerRepo.ProviderRepository,
	ratingSvc rating.RatingService,
	reconciler ReconcileEnqueuer,
	autoApprove bool,
	logger *zap.Logger,
) *DefaultReviewService {
	return &DefaultReviewService{
		Reviews:     reviews,
		Providers:   providers,
		Rating:      ratingSvc,
		Reconciler:  reconciler,
		AutoApprove: autoApprove,
		Logger:      logger,
		Now:         func() time.Time { return time.Now().UTC() },
	}
}
