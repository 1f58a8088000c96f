package models

import "time"

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCompleted BookingStatus = "completed"
	BookingCancelled BookingStatus = "cancelled"
)

const (
	ChangedBySeeker   = "seeker"
	ChangedByProvider = "provider"
	ChangedBySystem   = "system"
)

// PlatformFee is charged on top of the service price of every booking.
const PlatformFee = 49.0

const (
	MinBookingDuration = 15
	MaxBookingDuration = 480
)

// SeekerContact is copied from the seeker's account when the booking is made.
type SeekerContact struct {
	Name  string `bson:"name" json:"name"`
	Email string `bson:"email" json:"email"`
	Phone string `bson:"phone" json:"phone"`
}

// Pricing is frozen at creation and never recomputed.
type Pricing struct {
	ServicePrice float64 `bson:"servicePrice" json:"servicePrice"`
	PlatformFee  float64 `bson:"platformFee" json:"platformFee"`
	TotalAmount  float64 `bson:"totalAmount" json:"totalAmount"`
}

// StatusChange is one entry of the append-only audit trail.
type StatusChange struct {
	Status    BookingStatus `bson:"status" json:"status"`
	ChangedBy string        `bson:"changedBy" json:"changedBy"`
	ChangedAt time.Time     `bson:"changedAt" json:"changedAt"`
	Reason    string        `bson:"reason,omitempty" json:"reason,omitempty"`
}

// ProviderResponse records the provider's latest action on a booking.
type ProviderResponse struct {
	RespondedAt time.Time `bson:"respondedAt" json:"respondedAt"`
	Message     string    `bson:"message,omitempty" json:"message,omitempty"`
}

// Booking is a scheduled engagement between a seeker and a provider.
type Booking struct {
	ID               string            `bson:"id" json:"id"`
	ServiceID        string            `bson:"serviceId" json:"serviceId"`
	ProviderID       string            `bson:"providerId" json:"providerId"`
	ProviderUserID   string            `bson:"providerUserId" json:"-"`
	SeekerID         string            `bson:"seekerId" json:"seekerId"`
	SeekerContact    SeekerContact     `bson:"seekerContact" json:"seekerContact"`
	BookingDate      time.Time         `bson:"bookingDate" json:"bookingDate"`
	BookingTime      string            `bson:"bookingTime" json:"bookingTime"`
	Duration         int               `bson:"duration" json:"duration"`
	Notes            string            `bson:"notes,omitempty" json:"notes,omitempty"`
	Pricing          Pricing           `bson:"pricing" json:"pricing"`
	Status           BookingStatus     `bson:"status" json:"status"`
	StatusHistory    []StatusChange    `bson:"statusHistory" json:"statusHistory"`
	ProviderResponse *ProviderResponse `bson:"providerResponse,omitempty" json:"providerResponse,omitempty"`
	// Version increments on each transition and guards the conditional write.
	Version   int       `bson:"version" json:"-"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// BookingRequest is the validated input of a booking creation.
type BookingRequest struct {
	SeekerID    string
	ServiceID   string
	BookingDate string
	BookingTime string
	Duration    int
	Notes       string
}

// TransitionRequest asks the ledger to move a booking to a new status.
type TransitionRequest struct {
	BookingID string
	ActorID   string
	Status    BookingStatus
	Reason    string
}

// StatusWrite is the single conditional update applied for one transition.
type StatusWrite struct {
	BookingID       string
	ExpectedStatus  BookingStatus
	ExpectedVersion int
	Entry           StatusChange
	Response        ProviderResponse
}
