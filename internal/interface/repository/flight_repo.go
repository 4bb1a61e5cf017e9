package repository

import (
	"context"

	"uavops-service/internal/domain/entity"
	"uavops-service/internal/domain/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoFlightRepository implements the FlightRepository interface
type MongoFlightRepository struct {
	docs *documents[entity.Flight]
}

// NewMongoFlightRepository creates a new MongoDB flight repository
func NewMongoFlightRepository(db *mongo.Database) repository.FlightRepository {
	collection := db.Collection("flights")

	ctx := context.Background()

	// Index on userId for owner-scoped listings
	userIndex := mongo.IndexModel{
		Keys: bson.M{"userId": 1},
	}

	// Compound index matching the visibility-filtered listing
	listedIndex := mongo.IndexModel{
		Keys: bson.D{
			{Key: "isDeleted", Value: 1},
			{Key: "createdAt", Value: -1},
		},
	}

	droneIndex := mongo.IndexModel{
		Keys: bson.M{"droneId": 1},
	}

	collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		userIndex,
		listedIndex,
		droneIndex,
	})

	return &MongoFlightRepository{
		docs: newDocuments[entity.Flight](collection, entity.EntityFlight),
	}
}

// GetAll returns flights, newest first; deleted ones only when asked for.
func (r *MongoFlightRepository) GetAll(ctx context.Context, includeDeleted bool) ([]*entity.Flight, error) {
	return r.docs.find(ctx, nil, includeDeleted)
}

// GetByUser returns the flights owned by userID.
func (r *MongoFlightRepository) GetByUser(ctx context.Context, userID string, includeDeleted bool) ([]*entity.Flight, error) {
	return r.docs.find(ctx, bson.M{"userId": userID}, includeDeleted)
}

// GetByID returns the raw stored flight without visibility filtering.
func (r *MongoFlightRepository) GetByID(ctx context.Context, id string) (*entity.Flight, error) {
	return r.docs.findByID(ctx, id)
}

// Create inserts a new flight with stamped metadata.
func (r *MongoFlightRepository) Create(ctx context.Context, fields entity.FlightFields, actorID string) (*entity.Flight, error) {
	flight := &entity.Flight{
		Meta:         newMeta(actorID),
		FlightFields: fields,
	}
	if err := r.docs.insert(ctx, flight); err != nil {
		return nil, err
	}
	return flight, nil
}

// Update replaces the domain fields of an existing flight.
func (r *MongoFlightRepository) Update(ctx context.Context, id string, fields entity.FlightFields, actorID string) error {
	return r.docs.setFields(ctx, id, fields, actorID)
}

// SetDeleted toggles the soft-delete flag.
func (r *MongoFlightRepository) SetDeleted(ctx context.Context, id string, deleted bool, actorID string) error {
	return r.docs.setDeleted(ctx, id, deleted, actorID)
}
