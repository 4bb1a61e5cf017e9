package usecase

import (
	"context"

	"uavops-service/internal/domain/entity"
	"uavops-service/internal/domain/repository"
	"uavops-service/pkg/apperrors"
	"uavops-service/pkg/logger"
	"uavops-service/pkg/metrics"
)

// ChecklistService owns authorization and audit emission for procedure
// checklists. The rules mirror the drone inventory.
type ChecklistService struct {
	checklists repository.ChecklistRepository
	audit      *AuditRecorder
	cleaner    *attachmentCleaner
	logger     logger.Logger
}

// NewChecklistService creates a new procedure checklist service
func NewChecklistService(
	checklists repository.ChecklistRepository,
	audit *AuditRecorder,
	attachments repository.AttachmentRepository,
	m *metrics.Metrics,
	logger logger.Logger,
) *ChecklistService {
	return &ChecklistService{
		checklists: checklists,
		audit:      audit,
		cleaner:    newAttachmentCleaner(attachments, m, logger),
		logger:     logger,
	}
}

// List returns the checklists visible to the actor, newest first.
func (s *ChecklistService) List(ctx context.Context, actor entity.Actor) ([]*entity.ProcedureChecklist, error) {
	return s.checklists.GetAll(ctx, ChecklistPolicy.CanViewDeleted(actor.Role))
}

// GetByID returns the checklist, or (nil, nil) when it does not exist or is
// soft-deleted and hidden from this actor.
func (s *ChecklistService) GetByID(ctx context.Context, id string, actor entity.Actor) (*entity.ProcedureChecklist, error) {
	checklist, err := s.checklists.GetByID(ctx, id)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	if checklist.IsDeleted && !ChecklistPolicy.CanViewDeleted(actor.Role) {
		return nil, nil
	}
	return checklist, nil
}

// Create adds a checklist and audits it.
func (s *ChecklistService) Create(ctx context.Context, fields entity.ChecklistFields, actor entity.Actor) (*entity.ProcedureChecklist, error) {
	if !ChecklistPolicy.CanCreate(actor.Role) {
		return nil, apperrors.PermissionDenied("role %s may not create checklists", actor.Role)
	}

	checklist, err := s.checklists.Create(ctx, fields, actor.ID)
	if err != nil {
		return nil, err
	}

	if err := s.audit.Record(ctx, entity.EntityChecklist, checklist.ID, entity.AuditActionCreate, actor, nil, fields); err != nil {
		return nil, err
	}

	s.logger.Info("Checklist created", "id", checklist.ID, "title", fields.Title, "actor", actor.ID)
	return checklist, nil
}

// Update replaces the checklist's fields and audits both snapshots.
func (s *ChecklistService) Update(ctx context.Context, id string, fields entity.ChecklistFields, actor entity.Actor) error {
	if !ChecklistPolicy.CanEdit(actor.Role) {
		return apperrors.PermissionDenied("role %s may not edit checklists", actor.Role)
	}

	prev, err := s.checklists.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if prev.IsDeleted && !ChecklistPolicy.CanViewDeleted(actor.Role) {
		return apperrors.InvalidState("checklist %s is deleted", id)
	}

	if err := s.checklists.Update(ctx, id, fields, actor.ID); err != nil {
		return err
	}

	if err := s.audit.Record(ctx, entity.EntityChecklist, id, entity.AuditActionEdit, actor, prev.ChecklistFields, fields); err != nil {
		return err
	}

	s.cleaner.removeStale(prev.ImageURL, fields.ImageURL)
	return nil
}

// Delete soft-deletes the checklist.
func (s *ChecklistService) Delete(ctx context.Context, id string, actor entity.Actor) error {
	if !ChecklistPolicy.CanDelete(actor.Role) {
		return apperrors.PermissionDenied("role %s may not delete checklists", actor.Role)
	}

	prev, err := s.checklists.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if prev.IsDeleted {
		return apperrors.InvalidState("checklist %s is already deleted", id)
	}

	if err := s.checklists.SetDeleted(ctx, id, true, actor.ID); err != nil {
		return err
	}

	return s.audit.Record(ctx, entity.EntityChecklist, id, entity.AuditActionDelete, actor, prev, nil)
}

// Restore clears the soft-delete flag; admin-only, rejected for checklists
// that are not deleted.
func (s *ChecklistService) Restore(ctx context.Context, id string, actor entity.Actor) error {
	if !ChecklistPolicy.CanRestore(actor.Role) {
		return apperrors.PermissionDenied("role %s may not restore checklists", actor.Role)
	}

	prev, err := s.checklists.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !prev.IsDeleted {
		return apperrors.InvalidState("checklist %s is not deleted", id)
	}

	if err := s.checklists.SetDeleted(ctx, id, false, actor.ID); err != nil {
		return err
	}

	return s.audit.Record(ctx, entity.EntityChecklist, id, entity.AuditActionRestore, actor, prev, nil)
}

// DrainCleanups waits for in-flight attachment cleanups; called on shutdown.
func (s *ChecklistService) DrainCleanups() {
	s.cleaner.Drain()
}
