package usecase

import (
	"context"

	"uavops-service/internal/domain/entity"
	"uavops-service/internal/domain/repository"
	"uavops-service/pkg/apperrors"
	"uavops-service/pkg/logger"
)

// AuditLogService is the read side of the audit trail, backing the history
// viewer. Writing goes through AuditRecorder only.
type AuditLogService struct {
	auditRepo repository.AuditLogRepository
	logger    logger.Logger
}

// NewAuditLogService creates a new audit log read service
func NewAuditLogService(auditRepo repository.AuditLogRepository, logger logger.Logger) *AuditLogService {
	return &AuditLogService{
		auditRepo: auditRepo,
		logger:    logger,
	}
}

// List returns audit entries matching the filter; admin-only.
func (s *AuditLogService) List(ctx context.Context, filter repository.AuditLogFilter, actor entity.Actor) ([]*entity.AuditLog, error) {
	if actor.Role != entity.RoleAdmin {
		return nil, apperrors.PermissionDenied("role %s may not read the audit log", actor.Role)
	}
	return s.auditRepo.List(ctx, filter)
}
