package usecase

import (
	"context"
	"fmt"

	"uavops-service/internal/domain/entity"
	"uavops-service/internal/domain/repository"
	"uavops-service/pkg/logger"
	"uavops-service/pkg/metrics"

	"go.mongodb.org/mongo-driver/bson"
)

// AuditRecorder writes one audit entry per successful mutation. The entity
// write and the audit append are two independent network calls with no
// atomicity between them; when the append fails the caller gets the error so
// an unaudited mutation is never silent.
type AuditRecorder struct {
	auditRepo repository.AuditLogRepository
	metrics   *metrics.Metrics
	logger    logger.Logger
}

// NewAuditRecorder creates a new audit recorder
func NewAuditRecorder(auditRepo repository.AuditLogRepository, m *metrics.Metrics, logger logger.Logger) *AuditRecorder {
	return &AuditRecorder{
		auditRepo: auditRepo,
		metrics:   m,
		logger:    logger,
	}
}

// Record appends one entry for a completed mutation. prev/next may be nil
// depending on the action: create carries only next, delete/restore only
// prev, edit both.
func (r *AuditRecorder) Record(ctx context.Context, entityType, entityID, action string, actor entity.Actor, prev, next any) error {
	entry := &entity.AuditLog{
		EntityType:    entityType,
		EntityID:      entityID,
		Action:        action,
		UserID:        actor.ID,
		UserEmail:     actor.Email,
		Details:       fmt.Sprintf("%s %s by %s", entityType, pastTense(action), actor.Email),
		PreviousValue: Snapshot(prev),
		NewValue:      Snapshot(next),
	}

	if err := r.auditRepo.Append(ctx, entry); err != nil {
		if r.metrics != nil {
			r.metrics.AuditFailures.Inc()
		}
		r.logger.Error("Audit append failed", "entityType", entityType, "entityId", entityID, "action", action, "error", err)
		return fmt.Errorf("%s %s succeeded but audit append failed: %w", entityType, action, err)
	}

	if r.metrics != nil {
		r.metrics.AuditAppends.Inc()
		r.metrics.MutationsTotal.WithLabelValues(entityType, action).Inc()
	}
	return nil
}

// Snapshot converts a bson-tagged value into the map form stored in audit
// entries. A nil input yields nil.
func Snapshot(v any) map[string]any {
	if v == nil {
		return nil
	}
	raw, err := bson.Marshal(v)
	if err != nil {
		return nil
	}
	var m map[string]any
	if err := bson.Unmarshal(raw, &m); err != nil {
		return nil
	}
	return m
}

func pastTense(action string) string {
	switch action {
	case entity.AuditActionCreate:
		return "created"
	case entity.AuditActionEdit:
		return "edited"
	case entity.AuditActionDelete:
		return "deleted"
	case entity.AuditActionRestore:
		return "restored"
	}
	return action
}
