package review

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"unicode/utf8"

	providerRepo "localpro/database/repository/provider"
	reviewRepo "localpro/database/repository/review"
	"localpro/models"
	"localpro/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	MsgReviewNotFound   = "review not found"
	MsgProviderNotFound = "provider not found"
	MsgDuplicateReview  = "review already exists for this provider"
	MsgNotReviewAuthor  = "only the author may change this review"
)

func validateInput(input ReviewInput, needProvider bool) error {
	fields := map[string]string{}
	if needProvider && strings.TrimSpace(input.ProviderID) == "" {
		fields["providerId"] = "is required"
	}
	if input.Rating < models.MinRating || input.Rating > models.MaxRating {
		fields["rating"] = "must be an integer between 1 and 5"
	}
	if utf8.RuneCountInString(input.Comment) > models.MaxReviewComment {
		fields["comment"] = "must be at most 1000 characters"
	}
	if len(fields) > 0 {
		return utils.NewValidationError("invalid review", fields)
	}
	return nil
}

// Create stores a seeker's single review of a provider.
func (s *DefaultReviewService) Create(ctx context.Context, author models.Identity, input ReviewInput) (*models.Review, error) {
	if err := validateInput(input, true); err != nil {
		return nil, err
	}

	provider, err := s.Providers.GetByID(ctx, input.ProviderID)
	if err != nil {
		if errors.Is(err, providerRepo.ErrNotFound) {
			return nil, utils.NewNotFoundError(MsgProviderNotFound)
		}
		return nil, utils.NewInternalError("failed to load provider", err)
	}
	if provider.UserID == author.UserID {
		return nil, utils.NewAuthorizationError("providers cannot review themselves")
	}

	// The unique index decides races; this read only gives the common case
	// a clean answer without a failed insert.
	if _, err := s.Reviews.FindByProviderAndUser(ctx, provider.ID, author.UserID); err == nil {
		return nil, utils.NewConflictError(MsgDuplicateReview)
	} else if !errors.Is(err, reviewRepo.ErrNotFound) {
		return nil, utils.NewInternalError("failed to check existing review", err)
	}

	now := s.Now()
	review := &models.Review{
		ID:         uuid.New().String(),
		ProviderID: provider.ID,
		UserID:     author.UserID,
		Rating:     input.Rating,
		Comment:    strings.TrimSpace(input.Comment),
		IsApproved: s.AutoApprove,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.Reviews.Create(ctx, review); err != nil {
		if errors.Is(err, reviewRepo.ErrDuplicate) {
			return nil, utils.NewConflictError(MsgDuplicateReview)
		}
		return nil, utils.NewInternalError("failed to create review", err)
	}

	s.Logger.Info("review created",
		zap.String("reviewId", review.ID),
		zap.String("providerId", review.ProviderID),
		zap.Bool("approved", review.IsApproved),
	)
	s.syncRating(ctx, review.ProviderID)
	return review, nil
}

// Update rewrites rating and comment; moderation state is kept.
func (s *DefaultReviewService) Update(ctx context.Context, author models.Identity, reviewID string, input ReviewInput) (*models.Review, error) {
	if err := validateInput(input, false); err != nil {
		return nil, err
	}
	existing, err := s.authorsReview(ctx, author, reviewID)
	if err != nil {
		return nil, err
	}

	updated, err := s.Reviews.Update(ctx, existing.ID, input.Rating, strings.TrimSpace(input.Comment))
	if err != nil {
		if errors.Is(err, reviewRepo.ErrNotFound) {
			return nil, utils.NewNotFoundError(MsgReviewNotFound)
		}
		return nil, utils.NewInternalError("failed to update review", err)
	}
	s.syncRating(ctx, updated.ProviderID)
	return updated, nil
}

func (s *DefaultReviewService) Delete(ctx context.Context, author models.Identity, reviewID string) error {
	existing, err := s.authorsReview(ctx, author, reviewID)
	if err != nil {
		return err
	}
	if err := s.Reviews.Delete(ctx, existing.ID); err != nil {
		if errors.Is(err, reviewRepo.ErrNotFound) {
			return utils.NewNotFoundError(MsgReviewNotFound)
		}
		return utils.NewInternalError("failed to delete review", err)
	}
	s.Logger.Info("review deleted", zap.String("reviewId", existing.ID), zap.String("providerId", existing.ProviderID))
	s.syncRating(ctx, existing.ProviderID)
	return nil
}

// Moderate approves or rejects a review. Only admins moderate.
func (s *DefaultReviewService) Moderate(ctx context.Context, moderator models.Identity, reviewID string, approve bool) (*models.Review, error) {
	if moderator.Role != models.RoleAdmin {
		return nil, utils.NewAuthorizationError("only admins can moderate reviews")
	}
	updated, err := s.Reviews.SetModeration(ctx, reviewID, approve)
	if err != nil {
		if errors.Is(err, reviewRepo.ErrNotFound) {
			return nil, utils.NewNotFoundError(MsgReviewNotFound)
		}
		return nil, utils.NewInternalError("failed to moderate review", err)
	}
	s.Logger.Info("review moderated", zap.String("reviewId", updated.ID), zap.Bool("approved", approve))
	s.syncRating(ctx, updated.ProviderID)
	return updated, nil
}

func (s *DefaultReviewService) ListForProvider(ctx context.Context, providerID string, page, limit int) (*models.Page[models.Review], error) {
	fields := map[string]string{}
	if page < 1 {
		fields["page"] = "must be an integer of at least 1"
	}
	if limit < 1 || limit > 100 {
		fields["limit"] = "must be between 1 and 100"
	} else if page >= 1 && !utils.PageInRange(page, limit) {
		fields["page"] = "must not exceed " + strconv.Itoa(utils.MaxPage)
	}
	if len(fields) > 0 {
		return nil, utils.NewValidationError("invalid pagination", fields)
	}

	reviews, err := s.Reviews.ListApproved(ctx, providerID, (page-1)*limit, limit)
	if err != nil {
		return nil, utils.NewInternalError("failed to list reviews", err)
	}
	return &models.Page[models.Review]{Items: reviews, Page: page, Limit: limit}, nil
}

func (s *DefaultReviewService) authorsReview(ctx context.Context, author models.Identity, reviewID string) (*models.Review, error) {
	existing, err := s.Reviews.GetByID(ctx, reviewID)
	if err != nil {
		if errors.Is(err, reviewRepo.ErrNotFound) {
			return nil, utils.NewNotFoundError(MsgReviewNotFound)
		}
		return nil, utils.NewInternalError("failed to load review", err)
	}
	if existing.UserID != author.UserID {
		return nil, utils.NewAuthorizationError(MsgNotReviewAuthor)
	}
	return existing, nil
}

// syncRating recomputes after a committed review write. The write already
// succeeded, so a failure here is handed to the reconcile queue instead of
// failing the request.
func (s *DefaultReviewService) syncRating(ctx context.Context, providerID string) {
	_, err := s.Rating.Recompute(ctx, providerID)
	if err == nil {
		return
	}
	s.Logger.Error("rating recompute failed", zap.String("providerId", providerID), zap.Error(err))
	if s.Reconciler == nil {
		return
	}
	if err := s.Reconciler.EnqueueRatingReconcile(context.WithoutCancel(ctx), providerID); err != nil {
		s.Logger.Error("failed to schedule rating reconcile", zap.String("providerId", providerID), zap.Error(err))
	}
}
