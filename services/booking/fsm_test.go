package booking

import (
	"testing"

	"localpro/models"
)

var allStatuses = []models.BookingStatus{
	models.BookingPending,
	models.BookingConfirmed,
	models.BookingCompleted,
	models.BookingCancelled,
}

func TestCanTransition(t *testing.T) {
	edges := map[[2]models.BookingStatus]bool{
		{models.BookingPending, models.BookingConfirmed}:   true,
		{models.BookingPending, models.BookingCancelled}:   true,
		{models.BookingConfirmed, models.BookingCompleted}: true,
		{models.BookingConfirmed, models.BookingCancelled}: true,
	}
	for _, from := range allStatuses {
		for _, to := range append(allStatuses, "archived") {
			want := edges[[2]models.BookingStatus{from, to}]
			if got := CanTransition(from, to); got != want {
				t.Errorf("CanTransition(%s, %s) = %v, want %v", from, to, got, want)
			}
		}
	}
	if CanTransition("archived", models.BookingConfirmed) {
		t.Error("unknown source status must not transition")
	}
}

func TestIsTerminal(t *testing.T) {
	for _, s := range allStatuses {
		want := s == models.BookingCompleted || s == models.BookingCancelled
		if got := IsTerminal(s); got != want {
			t.Errorf("IsTerminal(%s) = %v, want %v", s, got, want)
		}
	}
}
