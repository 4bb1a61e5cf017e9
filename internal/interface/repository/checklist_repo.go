package repository

import (
	"context"

	"uavops-service/internal/domain/entity"
	"uavops-service/internal/domain/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoChecklistRepository implements the ChecklistRepository interface
type MongoChecklistRepository struct {
	docs *documents[entity.ProcedureChecklist]
}

// NewMongoChecklistRepository creates a new MongoDB procedure checklist repository
func NewMongoChecklistRepository(db *mongo.Database) repository.ChecklistRepository {
	collection := db.Collection("procedureChecklists")

	ctx := context.Background()

	listedIndex := mongo.IndexModel{
		Keys: bson.D{
			{Key: "isDeleted", Value: 1},
			{Key: "createdAt", Value: -1},
		},
	}

	collection.Indexes().CreateOne(ctx, listedIndex)

	return &MongoChecklistRepository{
		docs: newDocuments[entity.ProcedureChecklist](collection, entity.EntityChecklist),
	}
}

// GetAll returns checklists, newest first; deleted ones only when asked for.
func (r *MongoChecklistRepository) GetAll(ctx context.Context, includeDeleted bool) ([]*entity.ProcedureChecklist, error) {
	return r.docs.find(ctx, nil, includeDeleted)
}

// GetByID returns the raw stored checklist without visibility filtering.
func (r *MongoChecklistRepository) GetByID(ctx context.Context, id string) (*entity.ProcedureChecklist, error) {
	return r.docs.findByID(ctx, id)
}

// Create inserts a new checklist with stamped metadata.
func (r *MongoChecklistRepository) Create(ctx context.Context, fields entity.ChecklistFields, actorID string) (*entity.ProcedureChecklist, error) {
	checklist := &entity.ProcedureChecklist{
		Meta:            newMeta(actorID),
		ChecklistFields: fields,
	}
	if err := r.docs.insert(ctx, checklist); err != nil {
		return nil, err
	}
	return checklist, nil
}

// Update replaces the domain fields of an existing checklist.
func (r *MongoChecklistRepository) Update(ctx context.Context, id string, fields entity.ChecklistFields, actorID string) error {
	return r.docs.setFields(ctx, id, fields, actorID)
}

// SetDeleted toggles the soft-delete flag.
func (r *MongoChecklistRepository) SetDeleted(ctx context.Context, id string, deleted bool, actorID string) error {
	return r.docs.setDeleted(ctx, id, deleted, actorID)
}
