package booking

import (
	"context"
	"errors"

	bookingRepo "localpro/database/repository/booking"
	providerRepo "localpro/database/repository/provider"
	"localpro/models"
	"localpro/utils"

	"go.uber.org/zap"
)

// transitionAttempts is the first try plus one re-read after a lost race.
const transitionAttempts = 2

// Transition moves a booking along the lifecycle on behalf of its provider.
// The write is conditional on the status and version that were validated,
// so two racing requests cannot both succeed from the same prior state.
func (s *DefaultBookingService) Transition(ctx context.Context, req models.TransitionRequest) (*models.Booking, error) {
	if !isRequestable(req.Status) {
		return nil, utils.NewFieldError("status", "must be one of confirmed, completed, cancelled")
	}

	for attempt := 1; attempt <= transitionAttempts; attempt++ {
		booking, err := s.loadBooking(ctx, req.BookingID)
		if err != nil {
			return nil, err
		}
		if err := s.authorizeProvider(ctx, booking, req.ActorID); err != nil {
			return nil, err
		}
		if !CanTransition(booking.Status, req.Status) {
			return nil, utils.NewConflictError(MsgTransitionNotAllowed)
		}

		now := s.Now()
		if n := len(booking.StatusHistory); n > 0 && now.Before(booking.StatusHistory[n-1].ChangedAt) {
			now = booking.StatusHistory[n-1].ChangedAt
		}

		updated, err := s.Bookings.ApplyStatus(ctx, models.StatusWrite{
			BookingID:       booking.ID,
			ExpectedStatus:  booking.Status,
			ExpectedVersion: booking.Version,
			Entry: models.StatusChange{
				Status:    req.Status,
				ChangedBy: models.ChangedByProvider,
				ChangedAt: now,
				Reason:    req.Reason,
			},
			Response: models.ProviderResponse{RespondedAt: now, Message: req.Reason},
		})
		if errors.Is(err, bookingRepo.ErrVersionConflict) {
			s.Logger.Warn("booking transition lost a race",
				zap.String("bookingId", booking.ID),
				zap.String("from", string(booking.Status)),
				zap.String("to", string(req.Status)),
				zap.Int("attempt", attempt),
			)
			continue
		}
		if err != nil {
			return nil, utils.NewInternalError("failed to update booking", err)
		}

		s.Logger.Info("booking transitioned",
			zap.String("bookingId", updated.ID),
			zap.String("from", string(booking.Status)),
			zap.String("to", string(updated.Status)),
		)
		return updated, nil
	}
	return nil, utils.NewConflictError(MsgConcurrentUpdate)
}

func (s *DefaultBookingService) loadBooking(ctx context.Context, id string) (*models.Booking, error) {
	booking, err := s.Bookings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrNotFound) {
			return nil, utils.NewNotFoundError(MsgBookingNotFound)
		}
		return nil, utils.NewInternalError("failed to load booking", err)
	}
	return booking, nil
}

// providerUserID resolves the account holder of the booking's provider,
// falling back to a lookup for bookings stored without the snapshot.
func (s *DefaultBookingService) providerUserID(ctx context.Context, booking *models.Booking) (string, error) {
	if booking.ProviderUserID != "" {
		return booking.ProviderUserID, nil
	}
	provider, err := s.Providers.GetByID(ctx, booking.ProviderID)
	if err != nil {
		if errors.Is(err, providerRepo.ErrNotFound) {
			return "", nil
		}
		return "", utils.NewInternalError("failed to load provider", err)
	}
	return provider.UserID, nil
}

func (s *DefaultBookingService) authorizeProvider(ctx context.Context, booking *models.Booking, actorID string) error {
	owner, err := s.providerUserID(ctx, booking)
	if err != nil {
		return err
	}
	if owner == "" || owner != actorID {
		return utils.NewAuthorizationError(MsgNotBookingProvider)
	}
	return nil
}
