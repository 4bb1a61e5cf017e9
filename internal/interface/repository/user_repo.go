package repository

import (
	"context"
	"errors"
	"time"

	"uavops-service/internal/domain/entity"
	"uavops-service/internal/domain/repository"
	"uavops-service/pkg/apperrors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoUserRepository implements the UserRepository interface. User documents
// are keyed by the identity provider's subject id, so creation happens on
// first login rather than through the generic document core.
type MongoUserRepository struct {
	collection *mongo.Collection
}

// NewMongoUserRepository creates a new MongoDB user repository
func NewMongoUserRepository(db *mongo.Database) repository.UserRepository {
	collection := db.Collection("users")

	ctx := context.Background()

	emailIndex := mongo.IndexModel{
		Keys:    bson.M{"email": 1},
		Options: options.Index().SetUnique(true),
	}

	collection.Indexes().CreateOne(ctx, emailIndex)

	return &MongoUserRepository{
		collection: collection,
	}
}

// GetAll returns all user profiles, newest first.
func (r *MongoUserRepository) GetAll(ctx context.Context) ([]*entity.User, error) {
	cursor, err := r.collection.Find(ctx, bson.M{}, &options.FindOptions{
		Sort: bson.D{{Key: "createdAt", Value: -1}},
	})
	if err != nil {
		return nil, apperrors.RemoteFailure(err, "failed to list users")
	}
	defer cursor.Close(ctx)

	var users []*entity.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, apperrors.RemoteFailure(err, "failed to decode users")
	}

	return users, nil
}

// GetByID finds a user profile by id
func (r *MongoUserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	var user entity.User
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.NotFound("user not found: %s", id)
		}
		return nil, apperrors.RemoteFailure(err, "failed to load user %s", id)
	}
	return &user, nil
}

// EnsureProfile returns the profile for id, creating it with the default
// role on first authentication.
func (r *MongoUserRepository) EnsureProfile(ctx context.Context, id, email string) (*entity.User, bool, error) {
	user, err := r.GetByID(ctx, id)
	if err == nil {
		return user, false, nil
	}
	if !apperrors.IsNotFound(err) {
		return nil, false, err
	}

	now := time.Now().UTC()
	user = &entity.User{
		ID:        id,
		Email:     email,
		Role:      entity.RoleUser,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if _, err := r.collection.InsertOne(ctx, user); err != nil {
		// Lost a race against a concurrent first login: read the winner.
		if mongo.IsDuplicateKeyError(err) {
			existing, getErr := r.GetByID(ctx, id)
			if getErr != nil {
				return nil, false, getErr
			}
			return existing, false, nil
		}
		return nil, false, apperrors.RemoteFailure(err, "failed to create profile for %s", id)
	}

	return user, true, nil
}

// Update replaces the editable profile fields.
func (r *MongoUserRepository) Update(ctx context.Context, id string, fields entity.UserFields, actorID string) error {
	set, err := flatten(fields)
	if err != nil {
		return apperrors.RemoteFailure(err, "failed to encode user fields")
	}
	set["updatedAt"] = time.Now().UTC()

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return apperrors.RemoteFailure(err, "failed to update user %s", id)
	}
	if result.MatchedCount == 0 {
		return apperrors.NotFound("user not found: %s", id)
	}
	return nil
}

// UpdateRole sets the privilege level of a user.
func (r *MongoUserRepository) UpdateRole(ctx context.Context, id string, role entity.Role, actorID string) error {
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$set": bson.M{
			"role":      role,
			"updatedAt": time.Now().UTC(),
		},
	})
	if err != nil {
		return apperrors.RemoteFailure(err, "failed to update role of user %s", id)
	}
	if result.MatchedCount == 0 {
		return apperrors.NotFound("user not found: %s", id)
	}
	return nil
}

// TouchLastLogin stamps the last successful authentication time.
func (r *MongoUserRepository) TouchLastLogin(ctx context.Context, id string, at time.Time) error {
	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$set": bson.M{"lastLoginAt": at},
	})
	if err != nil {
		return apperrors.RemoteFailure(err, "failed to stamp last login of user %s", id)
	}
	return nil
}
