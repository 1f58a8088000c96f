package search

import (
	"sort"

	"localpro/models"
	"localpro/utils"
)

// rankedProvider pairs a provider with its distance from the search center.
type rankedProvider struct {
	Provider       models.Provider
	DistanceMeters float64
}

// rankNearby keeps the active, located providers inside radiusMeters of
// center and orders them by sortKey. The id tie-break makes the order total,
// so pages of an unchanged set partition it.
func rankNearby(providers []models.Provider, center models.GeoPoint, radiusMeters float64, sortKey SortKey) []rankedProvider {
	ranked := make([]rankedProvider, 0, len(providers))
	for _, p := range providers {
		if !p.IsActive || p.Location.Point.IsUnset() {
			continue
		}
		d := utils.HaversineMeters(center, p.Location.Point)
		if d > radiusMeters {
			continue
		}
		ranked = append(ranked, rankedProvider{Provider: p, DistanceMeters: d})
	}

	sort.Slice(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if sortKey == SortRating && a.Provider.RatingAverage != b.Provider.RatingAverage {
			return a.Provider.RatingAverage > b.Provider.RatingAverage
		}
		if a.DistanceMeters != b.DistanceMeters {
			return a.DistanceMeters < b.DistanceMeters
		}
		return a.Provider.ID < b.Provider.ID
	})
	return ranked
}

// pageOf returns the [skip, skip+limit) window of ranked.
func pageOf(ranked []rankedProvider, skip, limit int) []rankedProvider {
	if skip < 0 || skip >= len(ranked) {
		return nil
	}
	end := skip + limit
	if end > len(ranked) {
		end = len(ranked)
	}
	return ranked[skip:end]
}

func toSummary(p models.Provider) models.ProviderSummary {
	return models.ProviderSummary{
		ID:              p.ID,
		BusinessName:    p.BusinessName,
		Location:        p.Location,
		CategoryID:      p.CategoryID,
		SubCategorySlug: p.SubCategorySlug,
		RatingAverage:   p.RatingAverage,
		TotalReviews:    p.TotalReviews,
		ProfileImage:    p.ProfileImage,
	}
}

func withDistance(r rankedProvider) models.ProviderSummary {
	s := toSummary(r.Provider)
	km := utils.RoundTo(r.DistanceMeters/1000, 2)
	s.DistanceKm = &km
	return s
}
