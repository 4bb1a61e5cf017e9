package repository

import (
	"context"
	"time"

	"uavops-service/internal/domain/entity"
	"uavops-service/internal/domain/repository"
	"uavops-service/pkg/apperrors"

	"github.com/oklog/ulid/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const defaultAuditListLimit = 100

// MongoAuditLogRepository implements the AuditLogRepository interface.
// The collection is append-only; nothing here updates or deletes entries.
type MongoAuditLogRepository struct {
	collection *mongo.Collection
}

// NewMongoAuditLogRepository creates a new MongoDB audit log repository
func NewMongoAuditLogRepository(db *mongo.Database) repository.AuditLogRepository {
	collection := db.Collection("auditLogs")

	ctx := context.Background()

	// Compound index for the per-entity history view
	entityIndex := mongo.IndexModel{
		Keys: bson.D{
			{Key: "entityType", Value: 1},
			{Key: "entityId", Value: 1},
			{Key: "timestamp", Value: -1},
		},
	}

	timestampIndex := mongo.IndexModel{
		Keys: bson.M{"timestamp": -1},
	}

	collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		entityIndex,
		timestampIndex,
	})

	return &MongoAuditLogRepository{
		collection: collection,
	}
}

// Append writes one immutable entry. Failures are returned to the caller;
// an unaudited mutation must never pass silently.
func (r *MongoAuditLogRepository) Append(ctx context.Context, entry *entity.AuditLog) error {
	if entry.ID == "" {
		entry.ID = ulid.Make().String()
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now().UTC()
	}

	if _, err := r.collection.InsertOne(ctx, entry); err != nil {
		return apperrors.RemoteFailure(err, "failed to append audit entry for %s %s", entry.EntityType, entry.EntityID)
	}
	return nil
}

// List returns entries matching the filter, newest first.
func (r *MongoAuditLogRepository) List(ctx context.Context, filter repository.AuditLogFilter) ([]*entity.AuditLog, error) {
	query := bson.M{}
	if filter.EntityType != "" {
		query["entityType"] = filter.EntityType
	}
	if filter.EntityID != "" {
		query["entityId"] = filter.EntityID
	}
	if filter.UserID != "" {
		query["userId"] = filter.UserID
	}

	limit := int64(filter.Limit)
	if limit <= 0 {
		limit = defaultAuditListLimit
	}

	cursor, err := r.collection.Find(ctx, query, &options.FindOptions{
		Limit: &limit,
		Sort:  bson.D{{Key: "timestamp", Value: -1}},
	})
	if err != nil {
		return nil, apperrors.RemoteFailure(err, "failed to list audit entries")
	}
	defer cursor.Close(ctx)

	var entries []*entity.AuditLog
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, apperrors.RemoteFailure(err, "failed to decode audit entries")
	}

	return entries, nil
}
