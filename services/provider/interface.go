package provider

import (
	"context"
	"io"

	providerRepo "localpro/database/repository/provider"
	"localpro/models"
	"localpro/services/storage"

	"go.uber.org/zap"
)

//go:generate mockgen -source=interface.go -destination=mocks/mock_provider_service.go -package=mocks

// AvatarFolder is where provider profile images are stored.
const AvatarFolder = "providers/avatars"

type ProviderService interface {
	// GetProfile returns the public profile and counts the view.
	GetProfile(ctx context.Context, id string) (*models.Provider, error)
	// UpdateAvatar replaces the profile image of the caller's provider profile.
	UpdateAvatar(ctx context.Context, userID string, image io.Reader) (*models.MediaAsset, error)
}

// DefaultProviderService is the production implementation.
type DefaultProviderService struct {
	Repo   providerRepo.ProviderRepository
	Media  storage.MediaStore
	Logger *zap.Logger
}

func NewDefaultProviderService(repo providerRepo.ProviderRepository, media storage.MediaStore, logger *zap.Logger) *DefaultProviderService {
	return &DefaultProviderService{Repo: repo, Media: media, Logger: logger}
}
