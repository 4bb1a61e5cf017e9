package repository

import (
	"context"

	"uavops-service/internal/domain/entity"
)

// DroneRepository defines storage operations for drones. Soft delete only
// flags the record; repositories never authorize, they trust the service
// layer.
type DroneRepository interface {
	GetAll(ctx context.Context, includeDeleted bool) ([]*entity.Drone, error)
	GetByID(ctx context.Context, id string) (*entity.Drone, error)
	Create(ctx context.Context, fields entity.DroneFields, actorID string) (*entity.Drone, error)
	Update(ctx context.Context, id string, fields entity.DroneFields, actorID string) error
	SetDeleted(ctx context.Context, id string, deleted bool, actorID string) error
}
