package repository

import (
	"context"

	"uavops-service/internal/domain/entity"
)

// FlightRepository defines storage operations for flight logs.
type FlightRepository interface {
	GetAll(ctx context.Context, includeDeleted bool) ([]*entity.Flight, error)
	GetByUser(ctx context.Context, userID string, includeDeleted bool) ([]*entity.Flight, error)
	GetByID(ctx context.Context, id string) (*entity.Flight, error)
	Create(ctx context.Context, fields entity.FlightFields, actorID string) (*entity.Flight, error)
	Update(ctx context.Context, id string, fields entity.FlightFields, actorID string) error
	SetDeleted(ctx context.Context, id string, deleted bool, actorID string) error
}
