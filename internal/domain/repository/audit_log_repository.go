package repository

import (
	"context"

	"uavops-service/internal/domain/entity"
)

// AuditLogFilter narrows audit queries for the viewer API.
type AuditLogFilter struct {
	EntityType string
	EntityID   string
	UserID     string
	Limit      int
}

// AuditLogRepository is an append-only store of entity mutations. Entries are
// never updated or deleted by the application.
type AuditLogRepository interface {
	Append(ctx context.Context, entry *entity.AuditLog) error
	List(ctx context.Context, filter AuditLogFilter) ([]*entity.AuditLog, error)
}
