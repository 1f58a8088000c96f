package provider

import (
	"context"
	"errors"
	"io"

	providerRepo "localpro/database/repository/provider"
	"localpro/models"
	"localpro/utils"

	"go.uber.org/zap"
)

func (s *DefaultProviderService) GetProfile(ctx context.Context, id string) (*models.Provider, error) {
	provider, err := s.Repo.IncrementViews(ctx, id)
	if err != nil {
		if errors.Is(err, providerRepo.ErrNotFound) {
			return nil, utils.NewNotFoundError("provider not found")
		}
		return nil, utils.NewInternalError("failed to load provider", err)
	}
	return provider, nil
}

// UpdateAvatar uploads the new image before touching the profile, so a
// failed upload leaves the old avatar in place. The previous asset is
// removed best-effort.
func (s *DefaultProviderService) UpdateAvatar(ctx context.Context, userID string, image io.Reader) (*models.MediaAsset, error) {
	if s.Media == nil {
		return nil, utils.NewInternalError("media storage unavailable", errors.New("media store not configured"))
	}

	provider, err := s.Repo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, providerRepo.ErrNotFound) {
			return nil, utils.NewNotFoundError("provider profile not found")
		}
		return nil, utils.NewInternalError("failed to load provider", err)
	}

	asset, err := s.Media.Upload(ctx, image, AvatarFolder)
	if err != nil {
		return nil, utils.NewInternalError("failed to upload image", err)
	}

	if err := s.Repo.SetProfileImage(ctx, provider.ID, asset); err != nil {
		if delErr := s.Media.Delete(context.WithoutCancel(ctx), asset.PublicID); delErr != nil {
			s.Logger.Warn("failed to remove orphaned upload", zap.String("publicId", asset.PublicID), zap.Error(delErr))
		}
		return nil, utils.NewInternalError("failed to save profile image", err)
	}

	if old := provider.ProfileImage; old != nil && old.PublicID != "" && old.PublicID != asset.PublicID {
		if err := s.Media.Delete(context.WithoutCancel(ctx), old.PublicID); err != nil {
			s.Logger.Warn("failed to delete previous avatar", zap.String("publicId", old.PublicID), zap.Error(err))
		}
	}

	s.Logger.Info("provider avatar updated", zap.String("providerId", provider.ID))
	return asset, nil
}
