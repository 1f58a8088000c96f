package bookingRepo

import (
	"testing"
	"time"

	"localpro/models"

	"go.mongodb.org/mongo-driver/bson"
)

func TestStatusUpdatePinsStatusAndVersion(t *testing.T) {
	at := time.Date(2030, 1, 2, 3, 4, 5, 0, time.UTC)
	filter, update := statusUpdate(models.StatusWrite{
		BookingID:       "b1",
		ExpectedStatus:  models.BookingPending,
		ExpectedVersion: 3,
		Entry:           models.StatusChange{Status: models.BookingConfirmed, ChangedBy: models.ChangedByProvider, ChangedAt: at},
	})

	if filter["id"] != "b1" || filter["status"] != models.BookingPending || filter["version"] != 3 {
		t.Fatalf("unexpected filter: %v", filter)
	}
	set := update["$set"].(bson.M)
	if set["status"] != models.BookingConfirmed {
		t.Errorf("expected status confirmed, got %v", set["status"])
	}
	if set["updatedAt"] != at {
		t.Errorf("expected updatedAt %v, got %v", at, set["updatedAt"])
	}
	push := update["$push"].(bson.M)
	entry, ok := push["statusHistory"].(models.StatusChange)
	if !ok || entry.Status != models.BookingConfirmed {
		t.Errorf("expected history entry to be pushed, got %v", push)
	}
	if inc := update["$inc"].(bson.M); inc["version"] != 1 {
		t.Errorf("expected version increment, got %v", inc)
	}
}
