// Package sequence allocates monotonic numeric ids from a counter
// document, replacing the read-max-then-insert pattern that races under
// concurrent writers.
package sequence

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Allocator struct {
	collection *mongo.Collection
}

func NewAllocator(db *mongo.Database) *Allocator {
	return &Allocator{collection: db.Collection("counters")}
}

// Next atomically increments the named counter and returns the new value.
// The first call for a name yields 1.
func (a *Allocator) Next(ctx context.Context, name string) (int64, error) {
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var doc struct {
		Seq int64 `bson:"seq"`
	}
	err := a.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": name},
		bson.M{"$inc": bson.M{"seq": 1}},
		opts,
	).Decode(&doc)
	if err != nil {
		return 0, err
	}

	return doc.Seq, nil
}
