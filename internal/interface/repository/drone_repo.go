package repository

import (
	"context"

	"uavops-service/internal/domain/entity"
	"uavops-service/internal/domain/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoDroneRepository implements the DroneRepository interface
type MongoDroneRepository struct {
	docs *documents[entity.Drone]
}

// NewMongoDroneRepository creates a new MongoDB drone repository
func NewMongoDroneRepository(db *mongo.Database) repository.DroneRepository {
	collection := db.Collection("drones")

	// Create indexes for better performance
	ctx := context.Background()

	inventoryCodeIndex := mongo.IndexModel{
		Keys:    bson.M{"inventoryCode": 1},
		Options: options.Index().SetUnique(true).SetSparse(true),
	}

	// Index on isDeleted for visibility-filtered listings
	isDeletedIndex := mongo.IndexModel{
		Keys: bson.M{"isDeleted": 1},
	}

	// Index on createdAt for stable ordering
	createdAtIndex := mongo.IndexModel{
		Keys: bson.M{"createdAt": -1},
	}

	collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		inventoryCodeIndex,
		isDeletedIndex,
		createdAtIndex,
	})

	return &MongoDroneRepository{
		docs: newDocuments[entity.Drone](collection, entity.EntityDrone),
	}
}

// GetAll returns drones, newest first; deleted ones only when asked for.
func (r *MongoDroneRepository) GetAll(ctx context.Context, includeDeleted bool) ([]*entity.Drone, error) {
	return r.docs.find(ctx, nil, includeDeleted)
}

// GetByID returns the raw stored drone without visibility filtering.
func (r *MongoDroneRepository) GetByID(ctx context.Context, id string) (*entity.Drone, error) {
	return r.docs.findByID(ctx, id)
}

// Create inserts a new drone with stamped metadata.
func (r *MongoDroneRepository) Create(ctx context.Context, fields entity.DroneFields, actorID string) (*entity.Drone, error) {
	drone := &entity.Drone{
		Meta:        newMeta(actorID),
		DroneFields: fields,
	}
	if err := r.docs.insert(ctx, drone); err != nil {
		return nil, err
	}
	return drone, nil
}

// Update replaces the domain fields of an existing drone.
func (r *MongoDroneRepository) Update(ctx context.Context, id string, fields entity.DroneFields, actorID string) error {
	return r.docs.setFields(ctx, id, fields, actorID)
}

// SetDeleted toggles the soft-delete flag.
func (r *MongoDroneRepository) SetDeleted(ctx context.Context, id string, deleted bool, actorID string) error {
	return r.docs.setDeleted(ctx, id, deleted, actorID)
}
