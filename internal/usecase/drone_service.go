package usecase

import (
	"context"

	"uavops-service/internal/domain/entity"
	"uavops-service/internal/domain/repository"
	"uavops-service/pkg/apperrors"
	"uavops-service/pkg/logger"
	"uavops-service/pkg/metrics"
)

// DroneService owns authorization and audit emission for the drone
// inventory. Visibility follows the soft-delete contract: actors who cannot
// view deleted records read a deleted drone as absent, never as forbidden.
type DroneService struct {
	drones  repository.DroneRepository
	audit   *AuditRecorder
	cleaner *attachmentCleaner
	logger  logger.Logger
}

// NewDroneService creates a new drone service
func NewDroneService(
	drones repository.DroneRepository,
	audit *AuditRecorder,
	attachments repository.AttachmentRepository,
	m *metrics.Metrics,
	logger logger.Logger,
) *DroneService {
	return &DroneService{
		drones:  drones,
		audit:   audit,
		cleaner: newAttachmentCleaner(attachments, m, logger),
		logger:  logger,
	}
}

// List returns the drones visible to the actor, newest first.
func (s *DroneService) List(ctx context.Context, actor entity.Actor) ([]*entity.Drone, error) {
	return s.drones.GetAll(ctx, DronePolicy.CanViewDeleted(actor.Role))
}

// GetByID returns the drone, or (nil, nil) when it does not exist or is
// soft-deleted and hidden from this actor.
func (s *DroneService) GetByID(ctx context.Context, id string, actor entity.Actor) (*entity.Drone, error) {
	drone, err := s.drones.GetByID(ctx, id)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	if drone.IsDeleted && !DronePolicy.CanViewDeleted(actor.Role) {
		return nil, nil
	}
	return drone, nil
}

// Create adds a drone to the inventory and audits it.
func (s *DroneService) Create(ctx context.Context, fields entity.DroneFields, actor entity.Actor) (*entity.Drone, error) {
	if !DronePolicy.CanCreate(actor.Role) {
		return nil, apperrors.PermissionDenied("role %s may not create drones", actor.Role)
	}

	drone, err := s.drones.Create(ctx, fields, actor.ID)
	if err != nil {
		return nil, err
	}

	if err := s.audit.Record(ctx, entity.EntityDrone, drone.ID, entity.AuditActionCreate, actor, nil, fields); err != nil {
		return nil, err
	}

	s.logger.Info("Drone created", "id", drone.ID, "name", fields.Name, "actor", actor.ID)
	return drone, nil
}

// Update replaces the drone's fields and audits both snapshots. Editing a
// soft-deleted drone is allowed only for actors who can view deleted records.
func (s *DroneService) Update(ctx context.Context, id string, fields entity.DroneFields, actor entity.Actor) error {
	if !DronePolicy.CanEdit(actor.Role) {
		return apperrors.PermissionDenied("role %s may not edit drones", actor.Role)
	}

	prev, err := s.drones.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if prev.IsDeleted && !DronePolicy.CanViewDeleted(actor.Role) {
		return apperrors.InvalidState("drone %s is deleted", id)
	}

	if err := s.drones.Update(ctx, id, fields, actor.ID); err != nil {
		return err
	}

	if err := s.audit.Record(ctx, entity.EntityDrone, id, entity.AuditActionEdit, actor, prev.DroneFields, fields); err != nil {
		return err
	}

	s.cleaner.removeStale(prev.ImageURL, fields.ImageURL)
	s.cleaner.removeStale(prev.UserManualURL, fields.UserManualURL)
	return nil
}

// Delete soft-deletes the drone.
func (s *DroneService) Delete(ctx context.Context, id string, actor entity.Actor) error {
	if !DronePolicy.CanDelete(actor.Role) {
		return apperrors.PermissionDenied("role %s may not delete drones", actor.Role)
	}

	prev, err := s.drones.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if prev.IsDeleted {
		return apperrors.InvalidState("drone %s is already deleted", id)
	}

	if err := s.drones.SetDeleted(ctx, id, true, actor.ID); err != nil {
		return err
	}

	return s.audit.Record(ctx, entity.EntityDrone, id, entity.AuditActionDelete, actor, prev, nil)
}

// Restore clears the soft-delete flag. Restoring a drone that is not deleted
// is rejected rather than audited as a state change.
func (s *DroneService) Restore(ctx context.Context, id string, actor entity.Actor) error {
	if !DronePolicy.CanRestore(actor.Role) {
		return apperrors.PermissionDenied("role %s may not restore drones", actor.Role)
	}

	prev, err := s.drones.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !prev.IsDeleted {
		return apperrors.InvalidState("drone %s is not deleted", id)
	}

	if err := s.drones.SetDeleted(ctx, id, false, actor.ID); err != nil {
		return err
	}

	return s.audit.Record(ctx, entity.EntityDrone, id, entity.AuditActionRestore, actor, prev, nil)
}

// DrainCleanups waits for in-flight attachment cleanups; called on shutdown.
func (s *DroneService) DrainCleanups() {
	s.cleaner.Drain()
}
