package providerRepo

import (
	"context"
	"errors"

	"localpro/models"
)

//go:generate mockgen -source=provider_interface.go -destination=mocks/mock_provider_repository.go -package=mocks

var (
	ErrNotFound        = errors.New("provider not found")
	ErrVersionConflict = errors.New("provider rating version changed")
)

// CategoryFilter narrows provider queries to a category and/or subcategory.
// Empty fields do not filter.
type CategoryFilter struct {
	CategoryID      string
	SubCategorySlug string
}

// ListOrder is the ordering of a non-geographic listing.
type ListOrder string

const (
	OrderByRating  ListOrder = "rating"
	OrderByRecency ListOrder = "recency"
)

// ProviderRepository defines methods for provider data access.
type ProviderRepository interface {
	// GetByID retrieves a provider by its unique ID.
	GetByID(ctx context.Context, id string) (*models.Provider, error)
	// GetByUserID retrieves the provider owned by an account holder.
	GetByUserID(ctx context.Context, userID string) (*models.Provider, error)
	// Within returns active, located providers whose point lies inside the
	// spherical cap of radiusMeters around center.
	Within(ctx context.Context, center models.GeoPoint, radiusMeters float64, filter CategoryFilter) ([]models.Provider, error)
	// List returns one page of active providers without a geographic filter.
	List(ctx context.Context, filter CategoryFilter, order ListOrder, skip, limit int) ([]models.Provider, error)
	// IncrementViews bumps totalViews of an active provider and returns it.
	// Inactive or unknown providers yield ErrNotFound.
	IncrementViews(ctx context.Context, id string) (*models.Provider, error)
	// SetRatingAggregate writes the derived rating fields if ratingVersion
	// still equals expectedVersion.
	SetRatingAggregate(ctx context.Context, id string, expectedVersion int, average float64, total int) error
	// SetProfileImage replaces the provider's profile image reference.
	SetProfileImage(ctx context.Context, id string, asset *models.MediaAsset) error
}
