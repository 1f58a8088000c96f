package booking

import (
	"context"
	"sync"

	bookingRepo "localpro/database/repository/booking"
	"localpro/models"
)

// memoryBookings is a BookingRepository with the same conditional-write
// semantics as the Mongo implementation.
type memoryBookings struct {
	mu       sync.Mutex
	bookings map[string]models.Booking
}

func newMemoryBookings(bs ...models.Booking) *memoryBookings {
	m := &memoryBookings{bookings: map[string]models.Booking{}}
	for _, b := range bs {
		m.bookings[b.ID] = b
	}
	return m
}

func clone(b models.Booking) *models.Booking {
	b.StatusHistory = append([]models.StatusChange(nil), b.StatusHistory...)
	if b.ProviderResponse != nil {
		r := *b.ProviderResponse
		b.ProviderResponse = &r
	}
	return &b
}

func (m *memoryBookings) Create(_ context.Context, b *models.Booking) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.bookings[b.ID] = *clone(*b)
	return nil
}

func (m *memoryBookings) GetByID(_ context.Context, id string) (*models.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrNotFound
	}
	return clone(b), nil
}

func (m *memoryBookings) ApplyStatus(_ context.Context, w models.StatusWrite) (*models.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.bookings[w.BookingID]
	if !ok || b.Status != w.ExpectedStatus || b.Version != w.ExpectedVersion {
		return nil, bookingRepo.ErrVersionConflict
	}
	b = *clone(b)
	b.Status = w.Entry.Status
	b.StatusHistory = append(b.StatusHistory, w.Entry)
	resp := w.Response
	b.ProviderResponse = &resp
	b.UpdatedAt = w.Entry.ChangedAt
	b.Version++
	m.bookings[b.ID] = b
	return clone(b), nil
}

func (m *memoryBookings) ListBySeeker(context.Context, string, int, int) ([]models.Booking, error) {
	return nil, nil
}

func (m *memoryBookings) ListByProvider(context.Context, string, models.BookingStatus, int, int) ([]models.Booking, error) {
	return nil, nil
}
