package providerRepo

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"localpro/models"
	"localpro/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// activeFilter matches active providers in the requested category.
func activeFilter(f CategoryFilter) bson.M {
	filter := bson.M{"isActive": true}
	if f.CategoryID != "" {
		filter["categoryId"] = f.CategoryID
	}
	if f.SubCategorySlug != "" {
		filter["subCategorySlug"] = bson.M{
			"$regex":   "^" + regexp.QuoteMeta(f.SubCategorySlug) + "$",
			"$options": "i",
		}
	}
	return filter
}

// withinFilter adds the spherical cap and the (0,0) sentinel exclusion.
// $centerSphere takes its radius in radians, so dividing by the same Earth
// radius as the haversine keeps both distance models identical.
func withinFilter(center models.GeoPoint, radiusMeters float64, f CategoryFilter) bson.M {
	filter := activeFilter(f)
	filter["location.point.coordinates"] = bson.M{"$ne": bson.A{0.0, 0.0}}
	filter["location.point"] = bson.M{
		"$geoWithin": bson.M{
			"$centerSphere": bson.A{
				bson.A{center.Lng(), center.Lat()},
				radiusMeters / utils.EarthRadiusMeters,
			},
		},
	}
	return filter
}

// listSort orders a listing; id is the final key so pages never overlap.
func listSort(order ListOrder) bson.D {
	if order == OrderByRating {
		return bson.D{
			{Key: "ratingAverage", Value: -1},
			{Key: "createdAt", Value: -1},
			{Key: "id", Value: 1},
		}
	}
	return bson.D{
		{Key: "createdAt", Value: -1},
		{Key: "id", Value: 1},
	}
}

func (r *MongoProviderRepo) Within(ctx context.Context, center models.GeoPoint, radiusMeters float64, f CategoryFilter) ([]models.Provider, error) {
	ctx, cancel := withTimeout(ctx, 10*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, withinFilter(center, radiusMeters, f))
	if err != nil {
		return nil, fmt.Errorf("geo query failed: %w", err)
	}
	defer cursor.Close(ctx)

	var providers []models.Provider
	if err := cursor.All(ctx, &providers); err != nil {
		return nil, fmt.Errorf("failed to decode providers: %w", err)
	}
	return providers, nil
}

func (r *MongoProviderRepo) List(ctx context.Context, f CategoryFilter, order ListOrder, skip, limit int) ([]models.Provider, error) {
	ctx, cancel := withTimeout(ctx, 10*time.Second)
	defer cancel()

	opts := options.Find().
		SetSort(listSort(order)).
		SetSkip(int64(skip)).
		SetLimit(int64(limit))

	cursor, err := r.coll.Find(ctx, activeFilter(f), opts)
	if err != nil {
		return nil, fmt.Errorf("provider listing failed: %w", err)
	}
	defer cursor.Close(ctx)

	var providers []models.Provider
	if err := cursor.All(ctx, &providers); err != nil {
		return nil, fmt.Errorf("failed to decode providers: %w", err)
	}
	return providers, nil
}
