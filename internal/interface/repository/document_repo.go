package repository

import (
	"context"
	"errors"
	"time"

	"uavops-service/internal/domain/entity"
	"uavops-service/pkg/apperrors"

	"github.com/oklog/ulid/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// documents is the shared CRUD core behind the per-entity Mongo repositories.
// Every collection it manages stores records with an inlined entity.Meta
// block, so listing, stamping and soft-delete toggling are handled in one
// place instead of being repeated per entity kind.
//
// Errors are classified per the repository contract: absence as NotFound,
// everything else as RemoteFailure. Authorization never happens here.
type documents[T any] struct {
	collection *mongo.Collection
	kind       string
}

func newDocuments[T any](collection *mongo.Collection, kind string) *documents[T] {
	return &documents[T]{collection: collection, kind: kind}
}

// newMeta stamps the bookkeeping block for a freshly created record. ULIDs
// keep ids lexicographically ordered by creation time.
func newMeta(actorID string) entity.Meta {
	now := time.Now().UTC()
	return entity.Meta{
		ID:        ulid.Make().String(),
		CreatedAt: now,
		UpdatedAt: now,
		CreatedBy: actorID,
		UpdatedBy: actorID,
		IsDeleted: false,
	}
}

// findByID returns the raw stored record without visibility filtering.
func (d *documents[T]) findByID(ctx context.Context, id string) (*T, error) {
	var doc T
	err := d.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.NotFound("%s not found: %s", d.kind, id)
		}
		return nil, apperrors.RemoteFailure(err, "failed to load %s %s", d.kind, id)
	}
	return &doc, nil
}

// find lists records matching filter, newest first. Unless includeDeleted is
// set, soft-deleted records are excluded.
func (d *documents[T]) find(ctx context.Context, filter bson.M, includeDeleted bool) ([]*T, error) {
	if filter == nil {
		filter = bson.M{}
	}
	if !includeDeleted {
		filter["isDeleted"] = bson.M{"$ne": true}
	}

	cursor, err := d.collection.Find(ctx, filter, &options.FindOptions{
		Sort: bson.D{{Key: "createdAt", Value: -1}},
	})
	if err != nil {
		return nil, apperrors.RemoteFailure(err, "failed to list %s records", d.kind)
	}
	defer cursor.Close(ctx)

	var docs []*T
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, apperrors.RemoteFailure(err, "failed to decode %s records", d.kind)
	}

	return docs, nil
}

func (d *documents[T]) insert(ctx context.Context, doc *T) error {
	if _, err := d.collection.InsertOne(ctx, doc); err != nil {
		return apperrors.RemoteFailure(err, "failed to create %s", d.kind)
	}
	return nil
}

// setFields replaces the domain field block of an existing record and stamps
// updatedAt/updatedBy. Concurrent writers are resolved last-write-wins.
func (d *documents[T]) setFields(ctx context.Context, id string, fields any, actorID string) error {
	set, err := flatten(fields)
	if err != nil {
		return apperrors.RemoteFailure(err, "failed to encode %s fields", d.kind)
	}
	set["updatedAt"] = time.Now().UTC()
	set["updatedBy"] = actorID

	result, err := d.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return apperrors.RemoteFailure(err, "failed to update %s %s", d.kind, id)
	}
	if result.MatchedCount == 0 {
		return apperrors.NotFound("%s not found: %s", d.kind, id)
	}
	return nil
}

// setDeleted toggles the soft-delete flag. Deleting sets deletedAt, restoring
// clears it; both stamp updatedAt/updatedBy.
func (d *documents[T]) setDeleted(ctx context.Context, id string, deleted bool, actorID string) error {
	now := time.Now().UTC()
	update := bson.M{
		"$set": bson.M{
			"isDeleted": deleted,
			"updatedAt": now,
			"updatedBy": actorID,
		},
	}
	if deleted {
		update["$set"].(bson.M)["deletedAt"] = now
	} else {
		update["$unset"] = bson.M{"deletedAt": ""}
	}

	result, err := d.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return apperrors.RemoteFailure(err, "failed to flag %s %s", d.kind, id)
	}
	if result.MatchedCount == 0 {
		return apperrors.NotFound("%s not found: %s", d.kind, id)
	}
	return nil
}

// flatten turns a bson-tagged fields struct into the flat key set used for
// $set updates.
func flatten(fields any) (bson.M, error) {
	raw, err := bson.Marshal(fields)
	if err != nil {
		return nil, err
	}
	var m bson.M
	if err := bson.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	return m, nil
}
