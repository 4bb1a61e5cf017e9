package repository

import (
	"context"

	"uavops-service/internal/domain/entity"
)

// ChecklistRepository defines storage operations for procedure checklists.
type ChecklistRepository interface {
	GetAll(ctx context.Context, includeDeleted bool) ([]*entity.ProcedureChecklist, error)
	GetByID(ctx context.Context, id string) (*entity.ProcedureChecklist, error)
	Create(ctx context.Context, fields entity.ChecklistFields, actorID string) (*entity.ProcedureChecklist, error)
	Update(ctx context.Context, id string, fields entity.ChecklistFields, actorID string) error
	SetDeleted(ctx context.Context, id string, deleted bool, actorID string) error
}
