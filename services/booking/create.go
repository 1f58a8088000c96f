package booking

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	bookingRepo "localpro/database/repository/booking"
	catalogRepo "localpro/database/repository/catalog"
	providerRepo "localpro/database/repository/provider"
	userRepo "localpro/database/repository/user"
	"localpro/models"
	"localpro/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const maxNotesLength = 500

var bookingTimePattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// parseBookingDate accepts a calendar date or a full RFC3339 timestamp and
// returns it in UTC.
func parseBookingDate(raw string) (time.Time, bool) {
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t.UTC(), true
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t.UTC(), true
	}
	return time.Time{}, false
}

// validateRequest checks everything that can be checked without the store.
func validateRequest(req models.BookingRequest, now time.Time) (time.Time, error) {
	fields := map[string]string{}
	if strings.TrimSpace(req.SeekerID) == "" {
		fields["seekerId"] = "is required"
	}
	if strings.TrimSpace(req.ServiceID) == "" {
		fields["serviceId"] = "is required"
	}

	var date time.Time
	if strings.TrimSpace(req.BookingDate) == "" {
		fields["bookingDate"] = "is required"
	} else if d, ok := parseBookingDate(strings.TrimSpace(req.BookingDate)); !ok {
		fields["bookingDate"] = "must be YYYY-MM-DD or an RFC3339 timestamp"
	} else if !d.After(now) {
		fields["bookingDate"] = "must be in the future"
	} else {
		date = d
	}

	if strings.TrimSpace(req.BookingTime) == "" {
		fields["bookingTime"] = "is required"
	} else if !bookingTimePattern.MatchString(strings.TrimSpace(req.BookingTime)) {
		fields["bookingTime"] = "must be HH:MM"
	}

	if req.Duration == 0 {
		fields["duration"] = "is required"
	} else if req.Duration < models.MinBookingDuration || req.Duration > models.MaxBookingDuration {
		fields["duration"] = "must be between 15 and 480 minutes"
	}

	if len(req.Notes) > maxNotesLength {
		fields["notes"] = "must be at most 500 characters"
	}

	if len(fields) > 0 {
		return time.Time{}, utils.NewValidationError("invalid booking request", fields)
	}
	return date, nil
}

// Create validates the request, snapshots the service price and the
// seeker's contact, and stores a pending booking.
func (s *DefaultBookingService) Create(ctx context.Context, req models.BookingRequest) (*models.Booking, error) {
	now := s.Now()
	date, err := validateRequest(req, now)
	if err != nil {
		return nil, err
	}

	service, err := s.Services.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrNotFound) {
			return nil, utils.NewNotFoundError(MsgServiceNotFound)
		}
		return nil, utils.NewInternalError("failed to load service", err)
	}
	if !service.IsActive {
		return nil, utils.NewFieldError("serviceId", "service is not active")
	}

	provider, err := s.Providers.GetByID(ctx, service.ProviderID)
	if err != nil {
		if errors.Is(err, providerRepo.ErrNotFound) {
			return nil, utils.NewNotFoundError(MsgProviderNotFound)
		}
		return nil, utils.NewInternalError("failed to load provider", err)
	}

	seeker, err := s.Users.GetByID(ctx, req.SeekerID)
	if err != nil {
		if errors.Is(err, userRepo.ErrNotFound) {
			return nil, utils.NewNotFoundError(MsgSeekerNotFound)
		}
		return nil, utils.NewInternalError("failed to load seeker", err)
	}

	booking := &models.Booking{
		ID:             uuid.New().String(),
		ServiceID:      service.ID,
		ProviderID:     provider.ID,
		ProviderUserID: provider.UserID,
		SeekerID:       seeker.ID,
		SeekerContact: models.SeekerContact{
			Name:  seeker.Name,
			Email: seeker.Email,
			Phone: seeker.Phone,
		},
		BookingDate: date,
		BookingTime: strings.TrimSpace(req.BookingTime),
		Duration:    req.Duration,
		Notes:       strings.TrimSpace(req.Notes),
		Pricing: models.Pricing{
			ServicePrice: service.Price,
			PlatformFee:  models.PlatformFee,
			TotalAmount:  service.Price + models.PlatformFee,
		},
		Status: models.BookingPending,
		StatusHistory: []models.StatusChange{{
			Status:    models.BookingPending,
			ChangedBy: models.ChangedBySeeker,
			ChangedAt: now,
		}},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.Bookings.Create(ctx, booking); err != nil {
		if errors.Is(err, bookingRepo.ErrProviderMissing) {
			return nil, utils.NewNotFoundError(MsgProviderNotFound)
		}
		return nil, utils.NewInternalError("failed to create booking", err)
	}

	s.Logger.Info("booking created",
		zap.String("bookingId", booking.ID),
		zap.String("providerId", booking.ProviderID),
		zap.String("seekerId", booking.SeekerID),
		zap.Float64("totalAmount", booking.Pricing.TotalAmount),
	)
	return booking, nil
}
