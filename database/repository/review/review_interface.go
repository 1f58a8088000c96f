package reviewRepo

import (
	"context"
	"errors"

	"localpro/models"
)

//go:generate mockgen -source=review_interface.go -destination=mocks/mock_review_repository.go -package=mocks

var (
	ErrNotFound  = errors.New("review not found")
	ErrDuplicate = errors.New("review already exists for this provider")
)

// ReviewRepository defines methods for review data access.
type ReviewRepository interface {
	// Create inserts a review; ErrDuplicate when the user already reviewed
	// the provider.
	Create(ctx context.Context, review *models.Review) error
	GetByID(ctx context.Context, id string) (*models.Review, error)
	// FindByProviderAndUser returns ErrNotFound when no review exists.
	FindByProviderAndUser(ctx context.Context, providerID, userID string) (*models.Review, error)
	// Update rewrites rating and comment, leaving moderation flags untouched.
	Update(ctx context.Context, id string, rating int, comment string) (*models.Review, error)
	// SetModeration approves or rejects a review.
	SetModeration(ctx context.Context, id string, approved bool) (*models.Review, error)
	Delete(ctx context.Context, id string) error
	// ApprovedStats sums ratings over a provider's approved reviews.
	ApprovedStats(ctx context.Context, providerID string) (models.ReviewStats, error)
	// ListApproved returns approved reviews, newest first.
	ListApproved(ctx context.Context, providerID string, skip, limit int) ([]models.Review, error)
}
