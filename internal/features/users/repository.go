package users

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
	collection := db.Collection("users")

	// Create indexes
	collection.Indexes().CreateMany(context.Background(), []mongo.IndexModel{
		{Keys: bson.D{{Key: "userId", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "username", Value: 1}}, Options: options.Index().SetUnique(true)},
	})

	return &Repository{collection: collection, seq: seq}
}

// Create allocates the next numeric user id and inserts the record.
// Duplicate email or username surfaces as ErrDuplicate even when the
// handler-level existence checks raced with another registration.
func (r *Repository) Create(ctx context.Context, user *User) error {
	id, err := r.seq.Next(ctx, "users")
	if err != nil {
		return fmt.Errorf("allocate user id: %w", err)
	}

	user.UserID = id
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt

	result, err := r.collection.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperrors.ErrDuplicate
		}
		return err
	}

	user.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *Repository) FindByEmail(ctx context.Context, email string) (*User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *Repository) FindByUsername(ctx context.Context, username string) (*User, error) {
	return r.findOne(ctx, bson.M{"username": username})
}

func (r *Repository) FindByUserID(ctx context.Context, userID int64) (*User, error) {
	return r.findOne(ctx, bson.M{"userId": userID})
}

// FindByVerificationToken matches only unexpired tokens.
func (r *Repository) FindByVerificationToken(ctx context.Context, token string) (*User, error) {
	return r.findOne(ctx, bson.M{
		"verificationToken":   token,
		"verificationExpires": bson.M{"$gt": time.Now()},
	})
}

// FindByResetToken matches only unexpired tokens.
func (r *Repository) FindByResetToken(ctx context.Context, token string) (*User, error) {
	return r.findOne(ctx, bson.M{
		"resetPasswordToken":   token,
		"resetPasswordExpires": bson.M{"$gt": time.Now()},
	})
}

func (r *Repository) findOne(ctx context.Context, filter bson.M) (*User, error) {
	var user User
	err := r.collection.FindOne(ctx, filter).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// MarkVerified flips the verification flag and clears the single-use token.
func (r *Repository) MarkVerified(ctx context.Context, userID int64) error {
	return r.update(ctx, userID, bson.M{
		"$set":   bson.M{"isVerified": true, "updatedAt": time.Now()},
		"$unset": bson.M{"verificationToken": "", "verificationExpires": ""},
	})
}

// SetVerificationToken replaces the verification token, invalidating any
// previously emailed link.
func (r *Repository) SetVerificationToken(ctx context.Context, userID int64, token string, expires time.Time) error {
	return r.update(ctx, userID, bson.M{
		"$set": bson.M{
			"verificationToken":   token,
			"verificationExpires": expires,
			"updatedAt":           time.Now(),
		},
	})
}

func (r *Repository) SetResetToken(ctx context.Context, userID int64, token string, expires time.Time) error {
	return r.update(ctx, userID, bson.M{
		"$set": bson.M{
			"resetPasswordToken":   token,
			"resetPasswordExpires": expires,
			"updatedAt":            time.Now(),
		},
	})
}

// UpdatePassword stores the new hash and clears the single-use reset token.
func (r *Repository) UpdatePassword(ctx context.Context, userID int64, passwordHash string) error {
	return r.update(ctx, userID, bson.M{
		"$set":   bson.M{"password": passwordHash, "updatedAt": time.Now()},
		"$unset": bson.M{"resetPasswordToken": "", "resetPasswordExpires": ""},
	})
}

func (r *Repository) UpdateCalorieGoal(ctx context.Context, userID int64, goal int) error {
	return r.update(ctx, userID, bson.M{
		"$set": bson.M{"calorieGoal": goal, "updatedAt": time.Now()},
	})
}

// UpdateMacroGoals applies the given goal fields and returns the updated
// record so the handler can echo all three values.
func (r *Repository) UpdateMacroGoals(ctx context.Context, userID int64, fields bson.M) (*User, error) {
	fields["updatedAt"] = time.Now()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var user User
	err := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"userId": userID},
		bson.M{"$set": fields},
		opts,
	).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}

	return &user, nil
}

func (r *Repository) UpdateRolloverTime(ctx context.Context, userID int64, rollover string) error {
	return r.update(ctx, userID, bson.M{
		"$set": bson.M{"dayRolloverTime": rollover, "updatedAt": time.Now()},
	})
}

func (r *Repository) update(ctx context.Context, userID int64, update bson.M) error {
	result, err := r.collection.UpdateOne(ctx, bson.M{"userId": userID}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
