package providerRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

// ratingVersionFilter matches documents written before ratingVersion existed
// as version 0.
func ratingVersionFilter(id string, expectedVersion int) bson.M {
	filter := bson.M{"id": id}
	if expectedVersion == 0 {
		filter["ratingVersion"] = bson.M{"$in": bson.A{0, nil}}
	} else {
		filter["ratingVersion"] = expectedVersion
	}
	return filter
}

// SetRatingAggregate is the only writer of ratingAverage and totalReviews.
func (r *MongoProviderRepo) SetRatingAggregate(ctx context.Context, id string, expectedVersion int, average float64, total int) error {
	ctx, cancel := withTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{
		"$set": bson.M{
			"ratingAverage": average,
			"totalReviews":  total,
			"updatedAt":     time.Now().UTC(),
		},
		"$inc": bson.M{"ratingVersion": 1},
	}
	result, err := r.coll.UpdateOne(ctx, ratingVersionFilter(id, expectedVersion), update)
	if err != nil {
		return fmt.Errorf("failed to update rating for provider %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return ErrVersionConflict
	}
	return nil
}
