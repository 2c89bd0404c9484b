package foods

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

// CatalogUserID owns the shared food catalog visible to every user in
// read paths. Writes stay owner-only.
const CatalogUserID int64 = 1

type Repository struct {
	collection *mongo.Collection
	seq        *sequence.Allocator
}

func NewRepository(db *mongo.Database, seq *sequence.Allocator) *Repository {
	collection := db.Collection("foods")

	// Create indexes
	collection.Indexes().CreateMany(context.Background(), []mongo.IndexModel{
		{Keys: bson.D{{Key: "foodId", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "userId", Value: 1}, {Key: "name", Value: 1}}},
	})

	return &Repository{collection: collection, seq: seq}
}

// List returns the user's foods plus the shared catalog, optionally
// filtered by a case-insensitive name search.
func (r *Repository) List(ctx context.Context, userID int64, search string) ([]Food, error) {
	filter := bson.M{"userId": bson.M{"$in": []int64{userID, CatalogUserID}}}
	if search != "" {
		filter["name"] = primitive.Regex{Pattern: search, Options: "i"}
	}

	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var foods []Food
	if err := cursor.All(ctx, &foods); err != nil {
		return nil, err
	}

	if foods == nil {
		foods = []Food{}
	}

	return foods, nil
}

func (r *Repository) Create(ctx context.Context, food *Food) error {
	id, err := r.seq.Next(ctx, "foods")
	if err != nil {
		return fmt.Errorf("allocate food id: %w", err)
	}

	food.FoodID = id
	food.CreatedAt = time.Now()

	result, err := r.collection.InsertOne(ctx, food)
	if err != nil {
		return err
	}

	food.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

// Get resolves a food the user can read: their own or the shared catalog.
// Absent or unreadable both come back nil.
func (r *Repository) Get(ctx context.Context, foodID, userID int64) (*Food, error) {
	return r.findOne(ctx, bson.M{
		"foodId": foodID,
		"userId": bson.M{"$in": []int64{userID, CatalogUserID}},
	})
}

// GetOwned resolves a food only when the user owns it.
func (r *Repository) GetOwned(ctx context.Context, foodID, userID int64) (*Food, error) {
	return r.findOne(ctx, bson.M{"foodId": foodID, "userId": userID})
}

func (r *Repository) findOne(ctx context.Context, filter bson.M) (*Food, error) {
	var food Food
	err := r.collection.FindOne(ctx, filter).Decode(&food)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &food, nil
}

// GetMany resolves readable foods by id for entry enrichment. Missing ids
// are simply absent from the map.
func (r *Repository) GetMany(ctx context.Context, foodIDs []int64, userID int64) (map[int64]Food, error) {
	if len(foodIDs) == 0 {
		return map[int64]Food{}, nil
	}

	cursor, err := r.collection.Find(ctx, bson.M{
		"foodId": bson.M{"$in": foodIDs},
		"userId": bson.M{"$in": []int64{userID, CatalogUserID}},
	})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var foods []Food
	if err := cursor.All(ctx, &foods); err != nil {
		return nil, err
	}

	byID := make(map[int64]Food, len(foods))
	for _, f := range foods {
		byID[f.FoodID] = f
	}
	return byID, nil
}

// Update applies the given fields to an owned food and returns the
// updated record.
func (r *Repository) Update(ctx context.Context, foodID, userID int64, fields bson.M) (*Food, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var food Food
	err := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"foodId": foodID, "userId": userID},
		bson.M{"$set": fields},
		opts,
	).Decode(&food)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}

	return &food, nil
}

func (r *Repository) Delete(ctx context.Context, foodID, userID int64) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"foodId": foodID, "userId": userID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
