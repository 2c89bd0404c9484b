package days

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/DexterPressley/calzone/internal/pkg/sequence"
	apperrors "github.com/DexterPressley/calzone/pkg/errors"
)

type Repository struct {
	collection *mongo.Collection
	seq        *sequence.Allocator
}

func NewRepository(db *mongo.Database, seq *sequence.Allocator) *Repository {
	collection := db.Collection("days")

	// Create indexes. The compound unique index is what actually enforces
	// one day per user per date; the handler-level check only exists to
	// return the existing dayId in the conflict body.
	collection.Indexes().CreateMany(context.Background(), []mongo.IndexModel{
		{Keys: bson.D{{Key: "dayId", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "userId", Value: 1}, {Key: "date", Value: 1}}, Options: options.Index().SetUnique(true)},
	})

	return &Repository{collection: collection, seq: seq}
}

// List returns the user's days, optionally bounded by an inclusive date
// range, newest first.
func (r *Repository) List(ctx context.Context, userID int64, startDate, endDate *time.Time) ([]Day, error) {
	filter := bson.M{"userId": userID}

	if startDate != nil || endDate != nil {
		dateFilter := bson.M{}
		if startDate != nil {
			dateFilter["$gte"] = *startDate
		}
		if endDate != nil {
			dateFilter["$lte"] = *endDate
		}
		filter["date"] = dateFilter
	}

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var days []Day
	if err := cursor.All(ctx, &days); err != nil {
		return nil, err
	}

	if days == nil {
		days = []Day{}
	}

	return days, nil
}

func (r *Repository) Get(ctx context.Context, dayID, userID int64) (*Day, error) {
	return r.findOne(ctx, bson.M{"dayId": dayID, "userId": userID})
}

// FindByDate resolves the user's day for an exact (normalized) date.
func (r *Repository) FindByDate(ctx context.Context, userID int64, date time.Time) (*Day, error) {
	return r.findOne(ctx, bson.M{"userId": userID, "date": date})
}

func (r *Repository) findOne(ctx context.Context, filter bson.M) (*Day, error) {
	var day Day
	err := r.collection.FindOne(ctx, filter).Decode(&day)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &day, nil
}

// Create allocates the next day id and inserts the record. A concurrent
// insert for the same (user, date) surfaces as ErrDuplicate.
func (r *Repository) Create(ctx context.Context, day *Day) error {
	id, err := r.seq.Next(ctx, "days")
	if err != nil {
		return fmt.Errorf("allocate day id: %w", err)
	}

	day.DayID = id
	day.CreatedAt = time.Now()
	if day.Entries == nil {
		day.Entries = []Entry{}
	}

	result, err := r.collection.InsertOne(ctx, day)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperrors.ErrDuplicate
		}
		return err
	}

	day.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

// UpdateDate moves a day to a new date. Moving onto an already-logged
// date surfaces as ErrDuplicate.
func (r *Repository) UpdateDate(ctx context.Context, dayID, userID int64, date time.Time) (*Day, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var day Day
	err := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"dayId": dayID, "userId": userID},
		bson.M{"$set": bson.M{"date": date}},
		opts,
	).Decode(&day)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperrors.ErrNotFound
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, apperrors.ErrDuplicate
		}
		return nil, err
	}

	return &day, nil
}

func (r *Repository) Delete(ctx context.Context, dayID, userID int64) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"dayId": dayID, "userId": userID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// AddEntry appends an entry to the day document. The entry id is assigned
// here, not by the caller.
func (r *Repository) AddEntry(ctx context.Context, dayID, userID int64, entry *Entry) error {
	entry.ID = primitive.NewObjectID()
	entry.Timestamp = time.Now()

	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"dayId": dayID, "userId": userID},
		bson.M{"$push": bson.M{"entries": entry}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// UpdateEntry applies the given entry fields in place inside the day
// document.
func (r *Repository) UpdateEntry(ctx context.Context, dayID, userID int64, entryID primitive.ObjectID, fields bson.M) error {
	set := bson.M{}
	for key, value := range fields {
		set["entries.$[entry]."+key] = value
	}

	opts := options.Update().SetArrayFilters(options.ArrayFilters{
		Filters: []interface{}{bson.M{"entry._id": entryID}},
	})

	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"dayId": dayID, "userId": userID},
		bson.M{"$set": set},
		opts,
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *Repository) DeleteEntry(ctx context.Context, dayID, userID int64, entryID primitive.ObjectID) error {
	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"dayId": dayID, "userId": userID},
		bson.M{"$pull": bson.M{"entries": bson.M{"_id": entryID}}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
