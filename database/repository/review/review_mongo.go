package reviewRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"localpro/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoReviewRepo implements ReviewRepository using MongoDB.
type MongoReviewRepo struct {
	coll *mongo.Collection
}

var _ ReviewRepository = (*MongoReviewRepo)(nil)

func NewMongoReviewRepo(db *mongo.Database) *MongoReviewRepo {
	return &MongoReviewRepo{coll: db.Collection("reviews")}
}

func (r *MongoReviewRepo) Create(ctx context.Context, review *models.Review) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, review); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("failed to insert review: %w", err)
	}
	return nil
}

func (r *MongoReviewRepo) findOne(ctx context.Context, filter bson.M) (*models.Review, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var review models.Review
	if err := r.coll.FindOne(ctx, filter).Decode(&review); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch review: %w", err)
	}
	return &review, nil
}

func (r *MongoReviewRepo) GetByID(ctx context.Context, id string) (*models.Review, error) {
	return r.findOne(ctx, bson.M{"id": id})
}

func (r *MongoReviewRepo) FindByProviderAndUser(ctx context.Context, providerID, userID string) (*models.Review, error) {
	return r.findOne(ctx, bson.M{"providerId": providerID, "userId": userID})
}

func (r *MongoReviewRepo) updateOne(ctx context.Context, id string, set bson.M) (*models.Review, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	set["updatedAt"] = time.Now().UTC()
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var review models.Review
	if err := r.coll.FindOneAndUpdate(ctx, bson.M{"id": id}, bson.M{"$set": set}, opts).Decode(&review); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update review %s: %w", id, err)
	}
	return &review, nil
}

func (r *MongoReviewRepo) Update(ctx context.Context, id string, rating int, comment string) (*models.Review, error) {
	return r.updateOne(ctx, id, bson.M{"rating": rating, "comment": comment})
}

func (r *MongoReviewRepo) SetModeration(ctx context.Context, id string, approved bool) (*models.Review, error) {
	return r.updateOne(ctx, id, bson.M{"isApproved": approved, "isRejected": !approved})
}

func (r *MongoReviewRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete review %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// approvedStatsPipeline groups a provider's approved reviews into one
// {sum, count} document. No document comes back when nothing is approved.
func approvedStatsPipeline(providerID string) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: bson.D{
			{Key: "providerId", Value: providerID},
			{Key: "isApproved", Value: true},
		}}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "sum", Value: bson.D{{Key: "$sum", Value: "$rating"}}},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
	}
}

func (r *MongoReviewRepo) ApprovedStats(ctx context.Context, providerID string) (models.ReviewStats, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Aggregate(ctx, approvedStatsPipeline(providerID))
	if err != nil {
		return models.ReviewStats{}, fmt.Errorf("rating aggregation failed: %w", err)
	}
	defer cursor.Close(ctx)

	var stats models.ReviewStats
	if cursor.Next(ctx) {
		if err := cursor.Decode(&stats); err != nil {
			return models.ReviewStats{}, fmt.Errorf("failed to decode rating stats: %w", err)
		}
	}
	if err := cursor.Err(); err != nil {
		return models.ReviewStats{}, fmt.Errorf("rating aggregation cursor failed: %w", err)
	}
	return stats, nil
}

func (r *MongoReviewRepo) ListApproved(ctx context.Context, providerID string, skip, limit int) ([]models.Review, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "id", Value: 1}}).
		SetSkip(int64(skip)).
		SetLimit(int64(limit))

	cursor, err := r.coll.Find(ctx, bson.M{"providerId": providerID, "isApproved": true}, opts)
	if err != nil {
		return nil, fmt.Errorf("review listing failed: %w", err)
	}
	defer cursor.Close(ctx)

	reviews := []models.Review{}
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, fmt.Errorf("failed to decode reviews: %w", err)
	}
	return reviews, nil
}

// EnsureIndexes creates review indexes, including the one-review-per-user
// uniqueness constraint.
func (r *MongoReviewRepo) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "providerId", Value: 1}, {Key: "userId", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "providerId", Value: 1}, {Key: "isApproved", Value: 1}, {Key: "createdAt", Value: -1}}},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create review indexes: %w", err)
	}
	return nil
}
