package search

import (
	"math"
	"strconv"
	"strings"

	"localpro/models"
	"localpro/utils"

	"github.com/google/uuid"
)

type SortKey string

const (
	SortDistance SortKey = "distance"
	SortRating   SortKey = "rating"
	SortRecency  SortKey = "recency"
)

const (
	DefaultRadiusKm = 10.0
	DefaultPage     = 1
	DefaultLimit    = 9
)

// Query is the raw, untyped search input as received from a client.
type Query struct {
	Lat             string
	Lng             string
	RadiusKm        string
	CategoryID      string
	SubCategorySlug string
	Sort            string
	Page            string
	Limit           string
}

// Filter is a validated search request. Center is nil for non-geo listings.
type Filter struct {
	Center          *models.GeoPoint
	RadiusKm        float64
	CategoryID      string
	SubCategorySlug string
	Sort            SortKey
	Page            int
	Limit           int
}

// Skip is the number of ranked records before the requested page.
func (f Filter) Skip() int {
	return (f.Page - 1) * f.Limit
}

// ParseFilter validates q and applies defaults. Every problem found is
// reported at once as a field-level validation error.
func ParseFilter(q Query, maxLimit int) (Filter, error) {
	f := Filter{
		RadiusKm:        DefaultRadiusKm,
		CategoryID:      strings.TrimSpace(q.CategoryID),
		SubCategorySlug: strings.TrimSpace(q.SubCategorySlug),
		Page:            DefaultPage,
		Limit:           DefaultLimit,
	}
	fields := map[string]string{}

	lat, lng := strings.TrimSpace(q.Lat), strings.TrimSpace(q.Lng)
	switch {
	case lat == "" && lng == "":
	case lat == "" || lng == "":
		fields["location"] = "lat and lng must be provided together"
	default:
		latV, latErr := strconv.ParseFloat(lat, 64)
		lngV, lngErr := strconv.ParseFloat(lng, 64)
		if latErr != nil || !finite(latV) || latV < -90 || latV > 90 {
			fields["lat"] = "must be a number between -90 and 90"
		}
		if lngErr != nil || !finite(lngV) || lngV < -180 || lngV > 180 {
			fields["lng"] = "must be a number between -180 and 180"
		}
		if fields["lat"] == "" && fields["lng"] == "" {
			p := models.NewGeoPoint(lngV, latV)
			f.Center = &p
		}
	}

	if r := strings.TrimSpace(q.RadiusKm); r != "" {
		v, err := strconv.ParseFloat(r, 64)
		if err != nil || !finite(v) || v < 0 {
			fields["radiusKm"] = "must be a non-negative number"
		} else {
			f.RadiusKm = v
		}
	}

	if f.CategoryID != "" {
		if _, err := uuid.Parse(f.CategoryID); err != nil {
			fields["categoryId"] = "must be a valid identifier"
		}
	}

	if p, ok := parsePositive(q.Page, DefaultPage); ok {
		f.Page = p
	} else {
		fields["page"] = "must be an integer of at least 1"
	}
	if l, ok := parsePositive(q.Limit, DefaultLimit); !ok {
		fields["limit"] = "must be an integer of at least 1"
	} else if maxLimit > 0 && l > maxLimit {
		fields["limit"] = "must not exceed " + strconv.Itoa(maxLimit)
	} else {
		f.Limit = l
	}
	if fields["page"] == "" && !utils.PageInRange(f.Page, f.Limit) {
		fields["page"] = "must not exceed " + strconv.Itoa(utils.MaxPage)
	}

	switch SortKey(strings.ToLower(strings.TrimSpace(q.Sort))) {
	case "":
		f.Sort = SortDistance
		if f.Center == nil {
			f.Sort = SortRecency
		}
	case SortDistance:
		f.Sort = SortDistance
		if f.Center == nil {
			f.Sort = SortRating
		}
	case SortRating:
		f.Sort = SortRating
	default:
		fields["sort"] = "must be one of distance, rating"
	}

	if len(fields) > 0 {
		return Filter{}, utils.NewValidationError("invalid search parameters", fields)
	}
	return f, nil
}

// finite rejects the NaN and Inf spellings ParseFloat accepts.
func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func parsePositive(raw string, def int) (int, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return def, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 1 {
		return 0, false
	}
	return v, true
}
