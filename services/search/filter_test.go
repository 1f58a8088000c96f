package search

import (
	"testing"

	"localpro/utils"
)

const categoryID = "5f0c8a2e-4b7d-4a43-9a57-2a0b1f3c9d11"

func TestParseFilterDefaults(t *testing.T) {
	f, err := ParseFilter(Query{Lat: "28.0", Lng: "77.0"}, 100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.Center == nil || f.Center.Lat() != 28.0 || f.Center.Lng() != 77.0 {
		t.Fatalf("expected center (77,28), got %+v", f.Center)
	}
	if f.RadiusKm != DefaultRadiusKm || f.Page != 1 || f.Limit != 9 || f.Sort != SortDistance {
		t.Errorf("unexpected defaults: %+v", f)
	}
	if f.Skip() != 0 {
		t.Errorf("expected skip 0, got %d", f.Skip())
	}
}

func TestParseFilterSortWithoutLocation(t *testing.T) {
	tests := []struct {
		sort string
		want SortKey
	}{
		{"", SortRecency},
		{"distance", SortRating},
		{"rating", SortRating},
		{"RATING", SortRating},
	}
	for _, tt := range tests {
		f, err := ParseFilter(Query{Sort: tt.sort}, 100)
		if err != nil {
			t.Fatalf("sort %q: unexpected error: %v", tt.sort, err)
		}
		if f.Sort != tt.want {
			t.Errorf("sort %q: expected %s, got %s", tt.sort, tt.want, f.Sort)
		}
	}
}

func TestParseFilterRejectsBadInput(t *testing.T) {
	tests := []struct {
		name  string
		query Query
		field string
	}{
		{"non numeric lat", Query{Lat: "north", Lng: "77"}, "lat"},
		{"non numeric lng", Query{Lat: "28", Lng: "east"}, "lng"},
		{"lat out of range", Query{Lat: "91", Lng: "77"}, "lat"},
		{"lat without lng", Query{Lat: "28"}, "location"},
		{"negative radius", Query{Lat: "28", Lng: "77", RadiusKm: "-1"}, "radiusKm"},
		{"non numeric radius", Query{RadiusKm: "far"}, "radiusKm"},
		{"malformed category", Query{CategoryID: "plumbing"}, "categoryId"},
		{"zero page", Query{Page: "0"}, "page"},
		{"zero limit", Query{Limit: "0"}, "limit"},
		{"limit above max", Query{Limit: "101"}, "limit"},
		{"unknown sort", Query{Sort: "price"}, "sort"},
		{"NaN lat", Query{Lat: "NaN", Lng: "77"}, "lat"},
		{"infinite lng", Query{Lat: "28", Lng: "-Inf"}, "lng"},
		{"NaN radius", Query{Lat: "28", Lng: "77", RadiusKm: "NaN"}, "radiusKm"},
		{"infinite radius", Query{Lat: "28", Lng: "77", RadiusKm: "+Inf"}, "radiusKm"},
		{"page beyond bound", Query{Page: "1000001"}, "page"},
		{"page overflowing offset", Query{Page: "9223372036854775807", Limit: "2"}, "page"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseFilter(tt.query, 100)
			if utils.KindOf(err) != utils.KindValidation {
				t.Fatalf("expected validation error, got %v", err)
			}
			appErr := err.(*utils.AppError)
			if _, ok := appErr.Fields[tt.field]; !ok {
				t.Errorf("expected field %q in %v", tt.field, appErr.Fields)
			}
		})
	}
}

func TestParseFilterAcceptsZeroRadiusAndCategory(t *testing.T) {
	f, err := ParseFilter(Query{Lat: "28", Lng: "77", RadiusKm: "0", CategoryID: categoryID, Page: "3", Limit: "20"}, 100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.RadiusKm != 0 {
		t.Errorf("expected radius 0, got %v", f.RadiusKm)
	}
	if f.CategoryID != categoryID {
		t.Errorf("expected category to be kept, got %q", f.CategoryID)
	}
	if f.Skip() != 40 {
		t.Errorf("expected skip 40, got %d", f.Skip())
	}
}
