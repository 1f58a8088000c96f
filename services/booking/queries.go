package booking

import (
	"context"
	"errors"
	"strconv"

	providerRepo "localpro/database/repository/provider"
	"localpro/models"
	"localpro/utils"
)

const maxPageLimit = 100

func validatePage(page, limit int) error {
	fields := map[string]string{}
	if page < 1 {
		fields["page"] = "must be an integer of at least 1"
	}
	if limit < 1 || limit > maxPageLimit {
		fields["limit"] = "must be between 1 and 100"
	} else if page >= 1 && !utils.PageInRange(page, limit) {
		fields["page"] = "must not exceed " + strconv.Itoa(utils.MaxPage)
	}
	if len(fields) > 0 {
		return utils.NewValidationError("invalid pagination", fields)
	}
	return nil
}

// Get returns a booking to its seeker, its provider, or an admin.
func (s *DefaultBookingService) Get(ctx context.Context, id string, viewer models.Identity) (*models.Booking, error) {
	booking, err := s.loadBooking(ctx, id)
	if err != nil {
		return nil, err
	}
	if viewer.Role == models.RoleAdmin || booking.SeekerID == viewer.UserID {
		return booking, nil
	}
	owner, err := s.providerUserID(ctx, booking)
	if err != nil {
		return nil, err
	}
	if owner == "" || owner != viewer.UserID {
		return nil, utils.NewAuthorizationError(MsgNotBookingParty)
	}
	return booking, nil
}

func (s *DefaultBookingService) ListForSeeker(ctx context.Context, seekerID string, page, limit int) (*models.Page[models.Booking], error) {
	if err := validatePage(page, limit); err != nil {
		return nil, err
	}
	bookings, err := s.Bookings.ListBySeeker(ctx, seekerID, (page-1)*limit, limit)
	if err != nil {
		return nil, utils.NewInternalError("failed to list bookings", err)
	}
	return &models.Page[models.Booking]{Items: bookings, Page: page, Limit: limit}, nil
}

// ListForProvider lists the bookings of the provider profile owned by
// providerUserID.
func (s *DefaultBookingService) ListForProvider(ctx context.Context, providerUserID string, status models.BookingStatus, page, limit int) (*models.Page[models.Booking], error) {
	if err := validatePage(page, limit); err != nil {
		return nil, err
	}
	if status != "" {
		if _, known := transitions[status]; !known {
			return nil, utils.NewFieldError("status", "unknown booking status")
		}
	}

	provider, err := s.Providers.GetByUserID(ctx, providerUserID)
	if err != nil {
		if errors.Is(err, providerRepo.ErrNotFound) {
			return nil, utils.NewNotFoundError(MsgProviderNotFound)
		}
		return nil, utils.NewInternalError("failed to load provider", err)
	}

	bookings, err := s.Bookings.ListByProvider(ctx, provider.ID, status, (page-1)*limit, limit)
	if err != nil {
		return nil, utils.NewInternalError("failed to list bookings", err)
	}
	return &models.Page[models.Booking]{Items: bookings, Page: page, Limit: limit}, nil
}
