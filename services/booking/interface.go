package booking

import (
	"context"
	"time"

	bookingRepo "localpro/database/repository/booking"
	catalogRepo "localpro/database/repository/catalog"
	providerRepo "localpro/database/repository/provider"
	userRepo "localpro/database/repository/user"
	"localpro/models"

	"go.uber.org/zap"
)

//go:generate mockgen -source=interface.go -destination=mocks/mock_booking_service.go -package=mocks

// BookingService owns the booking lifecycle.
type BookingService interface {
	Create(ctx context.Context, req models.BookingRequest) (*models.Booking, error)
	Transition(ctx context.Context, req models.TransitionRequest) (*models.Booking, error)
	Get(ctx context.Context, id string, viewer models.Identity) (*models.Booking, error)
	ListForSeeker(ctx context.Context, seekerID string, page, limit int) (*models.Page[models.Booking], error)
	ListForProvider(ctx context.Context, providerUserID string, status models.BookingStatus, page, limit int) (*models.Page[models.Booking], error)
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Bookings  bookingRepo.BookingRepository
	Services  catalogRepo.ServiceRepository
	Providers providerRepo.ProviderRepository
	Users     userRepo.UserRepository
	Logger    *zap.Logger
	// Now is the clock; tests pin it.
	Now func() time.Time
}

func NewBookingService(
	bookings bookingRepo.BookingRepository,
	services catalogRepo.ServiceRepository,
	providers providerRepo.ProviderRepository,
	users userRepo.UserRepository,
	logger *zap.Logger,
) *DefaultBookingService {
	return &DefaultBookingService{
		Bookings:  bookings,
		Services:  services,
		Providers: providers,
		Users:     users,
		Logger:    logger,
		Now:       func() time.Time { return time.Now().UTC() },
	}
}
