package providerRepo

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

// MongoProviderRepo implements ProviderRepository using MongoDB.
type MongoProviderRepo struct {
	coll *mongo.Collection
}

var _ ProviderRepository = (*MongoProviderRepo)(nil)

// NewMongoProviderRepo creates a new instance of ProviderRepository using MongoDB.
func NewMongoProviderRepo(db *mongo.Database) *MongoProviderRepo {
	return &MongoProviderRepo{coll: db.Collection("providers")}
}

// withTimeout bounds a single store call while keeping the caller's cancellation.
func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, timeout)
}

func (r *MongoProviderRepo) findOne(ctx context.Context, filter bson.M) (*models.Provider, error) {
	ctx, cancel := withTimeout(ctx, 5*time.Second)
	defer cancel()

	var provider models.Provider
	if err := r.coll.FindOne(ctx, filter).Decode(&provider); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch provider: %w", err)
	}
	return &provider, nil
}

// GetByID retrieves a provider by its unique ID.
func (r *MongoProviderRepo) GetByID(ctx context.Context, id string) (*models.Provider, error) {
	return r.findOne(ctx, bson.M{"id": id})
}

// GetByUserID retrieves the provider whose account holder is userID.
func (r *MongoProviderRepo) GetByUserID(ctx context.Context, userID string) (*models.Provider, error) {
	return r.findOne(ctx, bson.M{"userId": userID})
}

// viewFilter matches the profiles that may be viewed, and so counted.
func viewFilter(id string) bson.M {
	return bson.M{"id": id, "isActive": true}
}

func (r *MongoProviderRepo) IncrementViews(ctx context.Context, id string) (*models.Provider, error) {
	ctx, cancel := withTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var provider models.Provider
	err := r.coll.FindOneAndUpdate(ctx, viewFilter(id), bson.M{"$inc": bson.M{"totalViews": 1}}, opts).Decode(&provider)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to increment views for provider %s: %w", id, err)
	}
	return &provider, nil
}

func (r *MongoProviderRepo) SetProfileImage(ctx context.Context, id string, asset *models.MediaAsset) error {
	ctx, cancel := withTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"profileImage": asset, "updatedAt": time.Now().UTC()}}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update profile image for provider %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
