package bookingRepo

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

// MongoBookingRepo implements BookingRepository using MongoDB.
type MongoBookingRepo struct {
	bookingColl  *mongo.Collection
	providerColl *mongo.Collection
}

var _ BookingRepository = (*MongoBookingRepo)(nil)

func NewMongoBookingRepo(db *mongo.Database) *MongoBookingRepo {
	return &MongoBookingRepo{
		bookingColl:  db.Collection("bookings"),
		providerColl: db.Collection("providers"),
	}
}

func (r *MongoBookingRepo) Create(ctx context.Context, booking *models.Booking) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	sess, err := r.bookingColl.Database().Client().StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	txnFn := func(sc mongo.SessionContext) error {
		if _, err := r.bookingColl.InsertOne(sc, booking); err != nil {
			return fmt.Errorf("insert booking failed: %w", err)
		}
		res, err := r.providerColl.UpdateOne(sc,
			bson.M{"id": booking.ProviderID},
			bson.M{"$inc": bson.M{"totalBookings": 1}},
		)
		if err != nil {
			return fmt.Errorf("increment provider bookings failed: %w", err)
		}
		if res.MatchedCount == 0 {
			return ErrProviderMissing
		}
		return nil
	}

	return mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return fmt.Errorf("could not start transaction: %w", err)
		}
		if err := txnFn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	})
}

func (r *MongoBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var booking models.Booking
	if err := r.bookingColl.FindOne(ctx, bson.M{"id": id}).Decode(&booking); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch booking: %w", err)
	}
	return &booking, nil
}

// statusUpdate builds the filter and update of one transition. The filter
// pins both status and version so a concurrent writer makes it match nothing.
func statusUpdate(w models.StatusWrite) (bson.M, bson.M) {
	filter := bson.M{
		"id":      w.BookingID,
		"status":  w.ExpectedStatus,
		"version": w.ExpectedVersion,
	}
	update := bson.M{
		"$set": bson.M{
			"status":           w.Entry.Status,
			"providerResponse": w.Response,
			"updatedAt":        w.Entry.ChangedAt,
		},
		"$push": bson.M{"statusHistory": w.Entry},
		"$inc":  bson.M{"version": 1},
	}
	return filter, update
}

func (r *MongoBookingRepo) ApplyStatus(ctx context.Context, w models.StatusWrite) (*models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter, update := statusUpdate(w)
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var booking models.Booking
	if err := r.bookingColl.FindOneAndUpdate(ctx, filter, update, opts).Decode(&booking); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrVersionConflict
		}
		return nil, fmt.Errorf("failed to update booking status: %w", err)
	}
	return &booking, nil
}

func (r *MongoBookingRepo) list(ctx context.Context, filter bson.M, skip, limit int) ([]models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "id", Value: 1}}).
		SetSkip(int64(skip)).
		SetLimit(int64(limit))

	cursor, err := r.bookingColl.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("booking listing failed: %w", err)
	}
	defer cursor.Close(ctx)

	bookings := []models.Booking{}
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}
	return bookings, nil
}

func (r *MongoBookingRepo) ListBySeeker(ctx context.Context, seekerID string, skip, limit int) ([]models.Booking, error) {
	return r.list(ctx, bson.M{"seekerId": seekerID}, skip, limit)
}

func (r *MongoBookingRepo) ListByProvider(ctx context.Context, providerID string, status models.BookingStatus, skip, limit int) ([]models.Booking, error) {
	filter := bson.M{"providerId": providerID}
	if status != "" {
		filter["status"] = status
	}
	return r.list(ctx, filter, skip, limit)
}

// EnsureIndexes creates the booking lookup indexes.
func (r *MongoBookingRepo) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "seekerId", Value: 1}, {Key: "createdAt", Value: -1}}},
		{Keys: bson.D{{Key: "providerId", Value: 1}, {Key: "createdAt", Value: -1}}},
	}
	if _, err := r.bookingColl.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create booking indexes: %w", err)
	}
	return nil
}
