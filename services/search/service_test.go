package search

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
	"testing"
	"time"

	providerRepo "localpro/database/repository/provider"
	"localpro/models"
	"localpro/utils"

	"go.uber.org/zap"
)

// memoryIndex returns every stored provider as a geo candidate so the
// ranker's own filtering is what the tests observe.
type memoryIndex struct {
	providers []models.Provider
	err       error
}

func (m *memoryIndex) Within(_ context.Context, _ models.GeoPoint, _ float64, f providerRepo.CategoryFilter) ([]models.Provider, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []models.Provider
	for _, p := range m.providers {
		if matches(p, f) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *memoryIndex) List(_ context.Context, f providerRepo.CategoryFilter, order providerRepo.ListOrder, skip, limit int) ([]models.Provider, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []models.Provider
	for _, p := range m.providers {
		if p.IsActive && matches(p, f) {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if order == providerRepo.OrderByRating && out[i].RatingAverage != out[j].RatingAverage {
			return out[i].RatingAverage > out[j].RatingAverage
		}
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	if skip >= len(out) {
		return nil, nil
	}
	end := skip + limit
	if end > len(out) {
		end = len(out)
	}
	return out[skip:end], nil
}

func matches(p models.Provider, f providerRepo.CategoryFilter) bool {
	if f.CategoryID != "" && p.CategoryID != f.CategoryID {
		return false
	}
	if f.SubCategorySlug != "" && !strings.EqualFold(p.SubCategorySlug, f.SubCategorySlug) {
		return false
	}
	return true
}

func provider(id string, lng, lat, rating float64) models.Provider {
	return models.Provider{
		ID:            id,
		BusinessName:  "Business " + id,
		CategoryID:    categoryID,
		Location:      models.Location{City: "Delhi", Point: models.NewGeoPoint(lng, lat)},
		IsActive:      true,
		RatingAverage: rating,
	}
}

func newService(providers ...models.Provider) *DefaultSearchService {
	return NewSearchService(&memoryIndex{providers: providers}, zap.NewNop())
}

func mustFilter(t *testing.T, q Query) Filter {
	t.Helper()
	f, err := ParseFilter(q, 100)
	if err != nil {
		t.Fatalf("unexpected filter error: %v", err)
	}
	return f
}

func TestSearchRadiusScenario(t *testing.T) {
	svc := newService(provider("p1", 77.0, 28.0, 4.5))

	res, err := svc.Search(context.Background(), mustFilter(t, Query{Lat: "28.01", Lng: "77.01", RadiusKm: "5"}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Providers) != 1 {
		t.Fatalf("expected provider within 5km, got %d results", len(res.Providers))
	}
	d := res.Providers[0].DistanceKm
	if d == nil || *d < 1.4 || *d > 1.6 {
		t.Fatalf("expected distance ~1.5km, got %v", d)
	}

	res, err = svc.Search(context.Background(), mustFilter(t, Query{Lat: "28.01", Lng: "77.01", RadiusKm: "0.5"}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Providers) != 0 {
		t.Fatalf("expected provider outside 0.5km to be excluded, got %d", len(res.Providers))
	}
}

func TestSearchExcludesInactiveAndUnlocated(t *testing.T) {
	inactive := provider("inactive", 77.0, 28.0, 5)
	inactive.IsActive = false
	origin := provider("origin", 0, 0, 5)
	missing := provider("missing", 0, 0, 5)
	missing.Location.Point = models.GeoPoint{}

	svc := newService(provider("ok", 77.0, 28.0, 3), inactive, origin, missing)

	// A search centred on the origin with a huge radius would include the
	// sentinel point if it were not excluded.
	for _, q := range []Query{
		{Lat: "28", Lng: "77", RadiusKm: "20000"},
		{Lat: "0", Lng: "0", RadiusKm: "20000"},
	} {
		res, err := svc.Search(context.Background(), mustFilter(t, q))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res.Providers) != 1 || res.Providers[0].ID != "ok" {
			t.Fatalf("expected only the active located provider, got %+v", res.Providers)
		}
		if *res.Providers[0].DistanceKm*1000 > 20000*1000 {
			t.Errorf("distance exceeds radius")
		}
	}
}

func TestSearchOrdering(t *testing.T) {
	// Same distance for b and c to exercise the id tie-break.
	svc := newService(
		provider("c", 77.02, 28.0, 4.0),
		provider("b", 77.02, 28.0, 4.0),
		provider("a", 77.01, 28.0, 3.0),
		provider("d", 77.05, 28.0, 5.0),
	)

	res, err := svc.Search(context.Background(), mustFilter(t, Query{Lat: "28", Lng: "77", Sort: "distance"}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := ids(res.Providers); got != "a,b,c,d" {
		t.Errorf("distance order: expected a,b,c,d got %s", got)
	}

	res, err = svc.Search(context.Background(), mustFilter(t, Query{Lat: "28", Lng: "77", Sort: "rating"}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := ids(res.Providers); got != "d,b,c,a" {
		t.Errorf("rating order: expected d,b,c,a got %s", got)
	}
}

func TestSearchPaginationPartition(t *testing.T) {
	var providers []models.Provider
	for i := 0; i < 23; i++ {
		// Few distinct offsets and ratings so ties are common.
		p := provider(fmt.Sprintf("p%02d", i), 77.0+float64(i%4)*0.01, 28.0, float64(i%3))
		providers = append(providers, p)
	}
	svc := newService(providers...)

	for _, sortKey := range []string{"distance", "rating"} {
		for _, limit := range []int{1, 4, 5, 23, 30} {
			seen := map[string]bool{}
			var all []string
			for page := 1; page <= 6; page++ {
				f := mustFilter(t, Query{Lat: "28", Lng: "77", Sort: sortKey, Page: fmt.Sprint(page), Limit: fmt.Sprint(limit)})
				res, err := svc.Search(context.Background(), f)
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if res.Page != page {
					t.Errorf("expected page %d echoed, got %d", page, res.Page)
				}
				if len(res.Providers) > limit {
					t.Fatalf("page larger than limit: %d > %d", len(res.Providers), limit)
				}
				for _, p := range res.Providers {
					if seen[p.ID] {
						t.Fatalf("sort %s limit %d: duplicate %s across pages", sortKey, limit, p.ID)
					}
					seen[p.ID] = true
					all = append(all, p.ID)
				}
			}
			want := 6 * limit
			if want > 23 {
				want = 23
			}
			if len(all) != want {
				t.Errorf("sort %s limit %d: expected %d records, got %d", sortKey, limit, want, len(all))
			}
		}
	}
}

func TestSearchFarPagesAreEmpty(t *testing.T) {
	svc := newService(provider("p1", 77.0, 28.0, 4))

	f := mustFilter(t, Query{Lat: "28", Lng: "77", Page: fmt.Sprint(utils.MaxPage), Limit: "2"})
	res, err := svc.Search(context.Background(), f)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Providers) != 0 {
		t.Errorf("expected empty page, got %d providers", len(res.Providers))
	}

	// A filter built without ParseFilter can still carry an offset that
	// wraps negative; the pager must treat it as past the end.
	f.Page = math.MaxInt
	res, err = svc.Search(context.Background(), f)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Providers) != 0 {
		t.Errorf("expected empty page, got %d providers", len(res.Providers))
	}
}

func TestSearchWithoutLocation(t *testing.T) {
	base := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	older := provider("older", 77, 28, 5)
	older.CreatedAt = base
	newer := provider("newer", 77, 28, 2)
	newer.CreatedAt = base.Add(time.Hour)
	other := provider("other", 77, 28, 4)
	other.CategoryID = "another-category"
	other.CreatedAt = base.Add(2 * time.Hour)
	svc := newService(older, newer, other)

	res, err := svc.Search(context.Background(), mustFilter(t, Query{CategoryID: categoryID}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := ids(res.Providers); got != "newer,older" {
		t.Errorf("recency order: expected newer,older got %s", got)
	}
	for _, p := range res.Providers {
		if p.DistanceKm != nil {
			t.Errorf("expected no distance without a location, got %v", *p.DistanceKm)
		}
	}

	res, err = svc.Search(context.Background(), mustFilter(t, Query{Sort: "distance"}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := ids(res.Providers); got != "older,other,newer" {
		t.Errorf("rating order: expected older,other,newer got %s", got)
	}
}

func TestSearchSubCategoryIsCaseInsensitive(t *testing.T) {
	p := provider("p1", 77, 28, 4)
	p.SubCategorySlug = "pipe-repair"
	svc := newService(p, provider("p2", 77, 28, 4))

	res, err := svc.Search(context.Background(), mustFilter(t, Query{Lat: "28", Lng: "77", SubCategorySlug: "Pipe-Repair"}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := ids(res.Providers); got != "p1" {
		t.Errorf("expected p1 only, got %s", got)
	}
}

func TestSearchStoreFailureIsInternal(t *testing.T) {
	svc := NewSearchService(&memoryIndex{err: errors.New("connection reset")}, zap.NewNop())

	_, err := svc.Search(context.Background(), mustFilter(t, Query{Lat: "28", Lng: "77"}))
	if utils.KindOf(err) != utils.KindInternal {
		t.Fatalf("expected internal error, got %v", err)
	}
}

func ids(ps []models.ProviderSummary) string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.ID
	}
	return strings.Join(out, ",")
}
