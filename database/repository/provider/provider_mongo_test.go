package providerRepo

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson"
)

func TestViewFilterSkipsInactiveProviders(t *testing.T) {
	filter := viewFilter("p1")
	want := bson.M{"id": "p1", "isActive": true}
	if len(filter) != len(want) {
		t.Fatalf("unexpected filter %v", filter)
	}
	for k, v := range want {
		if filter[k] != v {
			t.Errorf("filter[%q] = %v, want %v", k, filter[k], v)
		}
	}
}
