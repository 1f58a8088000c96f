package bookingRepo

import (
	"context"
	"errors"

	"localpro/models"
)

//go:generate mockgen -source=booking_interface.go -destination=mocks/mock_booking_repository.go -package=mocks

var (
	ErrNotFound        = errors.New("booking not found")
	ErrVersionConflict = errors.New("booking changed since it was read")
	// ErrProviderMissing aborts a create whose provider vanished mid-transaction.
	ErrProviderMissing = errors.New("provider not found")
)

// BookingRepository defines methods for booking data access.
type BookingRepository interface {
	// Create inserts the booking and bumps the provider's totalBookings in
	// one transaction.
	Create(ctx context.Context, booking *models.Booking) error
	// GetByID retrieves a booking by its unique ID.
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	// ApplyStatus performs the conditional transition write. It fails with
	// ErrVersionConflict when the stored status or version no longer match.
	ApplyStatus(ctx context.Context, write models.StatusWrite) (*models.Booking, error)
	// ListBySeeker returns a seeker's bookings, newest first.
	ListBySeeker(ctx context.Context, seekerID string, skip, limit int) ([]models.Booking, error)
	// ListByProvider returns a provider's bookings, newest first, optionally
	// restricted to one status.
	ListByProvider(ctx context.Context, providerID string, status models.BookingStatus, skip, limit int) ([]models.Booking, error)
}
