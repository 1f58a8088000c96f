package booking

import (
	"context"
	"math"
	"testing"

	providerRepo "localpro/database/repository/provider"
	"localpro/models"
	"localpro/utils"

	"go.uber.org/mock/gomock"
)

func TestGetRestrictsToParties(t *testing.T) {
	b := storedBooking(models.BookingPending)
	tests := []struct {
		name   string
		viewer models.Identity
		kind   utils.ErrorKind
	}{
		{"seeker", models.Identity{UserID: "seeker-1", Role: models.RoleSeeker}, ""},
		{"provider", models.Identity{UserID: "provider-user-1", Role: models.RoleProvider}, ""},
		{"admin", models.Identity{UserID: "root", Role: models.RoleAdmin}, ""},
		{"stranger", models.Identity{UserID: "someone", Role: models.RoleSeeker}, utils.KindAuthorization},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.bookings.EXPECT().GetByID(gomock.Any(), "booking-1").Return(&b, nil)

			_, err := f.svc.Get(context.Background(), "booking-1", tt.viewer)
			if tt.kind == "" && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.kind != "" && utils.KindOf(err) != tt.kind {
				t.Fatalf("expected %s, got %v", tt.kind, err)
			}
		})
	}
}

func TestListForSeeker(t *testing.T) {
	f := newFixture(t)
	f.bookings.EXPECT().ListBySeeker(gomock.Any(), "seeker-1", 20, 10).Return([]models.Booking{{ID: "b"}}, nil)

	page, err := f.svc.ListForSeeker(context.Background(), "seeker-1", 3, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page.Page != 3 || page.Limit != 10 || len(page.Items) != 1 {
		t.Errorf("unexpected page: %+v", page)
	}

	if _, err := f.svc.ListForSeeker(context.Background(), "seeker-1", 0, 10); utils.KindOf(err) != utils.KindValidation {
		t.Errorf("expected validation error for page 0, got %v", err)
	}
	for _, page := range []int{utils.MaxPage + 1, math.MaxInt} {
		if _, err := f.svc.ListForSeeker(context.Background(), "seeker-1", page, 10); utils.KindOf(err) != utils.KindValidation {
			t.Errorf("expected validation error for page %d, got %v", page, err)
		}
	}
}

func TestListForProvider(t *testing.T) {
	f := newFixture(t)
	f.providers.EXPECT().GetByUserID(gomock.Any(), "provider-user-1").Return(&models.Provider{ID: "provider-1"}, nil)
	f.bookings.EXPECT().ListByProvider(gomock.Any(), "provider-1", models.BookingConfirmed, 0, 5).Return(nil, nil)

	if _, err := f.svc.ListForProvider(context.Background(), "provider-user-1", models.BookingConfirmed, 1, 5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := f.svc.ListForProvider(context.Background(), "provider-user-1", "archived", 1, 5); utils.KindOf(err) != utils.KindValidation {
		t.Errorf("expected validation error for unknown status, got %v", err)
	}

	f2 := newFixture(t)
	f2.providers.EXPECT().GetByUserID(gomock.Any(), "nobody").Return(nil, providerRepo.ErrNotFound)
	if _, err := f2.svc.ListForProvider(context.Background(), "nobody", "", 1, 5); utils.KindOf(err) != utils.KindNotFound {
		t.Errorf("expected not found, got %v", err)
	}
}
