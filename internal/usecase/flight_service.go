package usecase

import (
	"context"

	"uavops-service/internal/domain/entity"
	"uavops-service/internal/domain/repository"
	"uavops-service/pkg/apperrors"
	"uavops-service/pkg/logger"
)

// FlightService owns authorization and audit emission for flight logs.
// On top of the role policy it enforces ownership: a non-privileged pilot
// only sees and touches their own flights, and cannot log a flight under
// another pilot's id.
type FlightService struct {
	flights    repository.FlightRepository
	categories repository.CategoryRepository
	audit      *AuditRecorder
	logger     logger.Logger
}

// NewFlightService creates a new flight service
func NewFlightService(
	flights repository.FlightRepository,
	categories repository.CategoryRepository,
	audit *AuditRecorder,
	logger logger.Logger,
) *FlightService {
	return &FlightService{
		flights:    flights,
		categories: categories,
		audit:      audit,
		logger:     logger,
	}
}

// List returns the flights visible to the actor: all of them for privileged
// roles (deleted ones for admins), only owned ones for pilots.
func (s *FlightService) List(ctx context.Context, actor entity.Actor) ([]*entity.Flight, error) {
	if !actor.Role.Privileged() {
		return s.flights.GetByUser(ctx, actor.ID, false)
	}
	return s.flights.GetAll(ctx, FlightPolicy.CanViewDeleted(actor.Role))
}

// GetByID returns the flight, or (nil, nil) when it does not exist, is
// soft-deleted and hidden from this actor, or belongs to someone else and
// the actor is not privileged. Hidden records read as absent; denial is
// reserved for writes.
func (s *FlightService) GetByID(ctx context.Context, id string, actor entity.Actor) (*entity.Flight, error) {
	flight, err := s.flights.GetByID(ctx, id)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	if flight.IsDeleted && !FlightPolicy.CanViewDeleted(actor.Role) {
		return nil, nil
	}
	if !actor.Role.Privileged() && !flight.OwnedBy(actor.ID) {
		return nil, nil
	}
	return flight, nil
}

// Create logs a flight. A non-privileged creator's ownership fields are
// forced to their own identity regardless of the payload.
func (s *FlightService) Create(ctx context.Context, fields entity.FlightFields, actor entity.Actor) (*entity.Flight, error) {
	if !FlightPolicy.CanCreate(actor.Role) {
		return nil, apperrors.PermissionDenied("role %s may not create flights", actor.Role)
	}

	if !actor.Role.Privileged() || fields.UserID == "" {
		fields.UserID = actor.ID
		fields.UserEmail = actor.Email
	}
	s.checkDictionaries(ctx, fields)

	flight, err := s.flights.Create(ctx, fields, actor.ID)
	if err != nil {
		return nil, err
	}

	if err := s.audit.Record(ctx, entity.EntityFlight, flight.ID, entity.AuditActionCreate, actor, nil, fields); err != nil {
		return nil, err
	}

	s.logger.Info("Flight logged", "id", flight.ID, "user", fields.UserID, "drone", fields.DroneID)
	return flight, nil
}

// Update replaces the flight's fields. Owners may edit their own flights;
// otherwise the role policy applies. Ownership cannot be reassigned by a
// non-privileged actor.
func (s *FlightService) Update(ctx context.Context, id string, fields entity.FlightFields, actor entity.Actor) error {
	prev, err := s.flights.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if !FlightPolicy.CanEdit(actor.Role) && !prev.OwnedBy(actor.ID) {
		return apperrors.PermissionDenied("flight %s does not belong to actor %s", id, actor.ID)
	}
	if prev.IsDeleted && !FlightPolicy.CanViewDeleted(actor.Role) {
		return apperrors.InvalidState("flight %s is deleted", id)
	}

	if !actor.Role.Privileged() {
		fields.UserID = prev.UserID
		fields.UserEmail = prev.UserEmail
	}
	s.checkDictionaries(ctx, fields)

	if err := s.flights.Update(ctx, id, fields, actor.ID); err != nil {
		return err
	}

	return s.audit.Record(ctx, entity.EntityFlight, id, entity.AuditActionEdit, actor, prev.FlightFields, fields)
}

// Delete soft-deletes the flight.
func (s *FlightService) Delete(ctx context.Context, id string, actor entity.Actor) error {
	if !FlightPolicy.CanDelete(actor.Role) {
		return apperrors.PermissionDenied("role %s may not delete flights", actor.Role)
	}

	prev, err := s.flights.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if prev.IsDeleted {
		return apperrors.InvalidState("flight %s is already deleted", id)
	}

	if err := s.flights.SetDeleted(ctx, id, true, actor.ID); err != nil {
		return err
	}

	return s.audit.Record(ctx, entity.EntityFlight, id, entity.AuditActionDelete, actor, prev, nil)
}

// Restore clears the soft-delete flag; admin-only, and rejected when the
// flight is not deleted.
func (s *FlightService) Restore(ctx context.Context, id string, actor entity.Actor) error {
	if !FlightPolicy.CanRestore(actor.Role) {
		return apperrors.PermissionDenied("role %s may not restore flights", actor.Role)
	}

	prev, err := s.flights.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !prev.IsDeleted {
		return apperrors.InvalidState("flight %s is not deleted", id)
	}

	if err := s.flights.SetDeleted(ctx, id, false, actor.ID); err != nil {
		return err
	}

	return s.audit.Record(ctx, entity.EntityFlight, id, entity.AuditActionRestore, actor, prev, nil)
}

// checkDictionaries warns about category or activity codes missing from the
// reference dictionaries. Advisory only: historical flights keep codes that
// were removed later, so unknown codes are logged, not rejected.
func (s *FlightService) checkDictionaries(ctx context.Context, fields entity.FlightFields) {
	if s.categories == nil {
		return
	}
	if fields.Category != "" {
		if _, err := s.categories.GetFlightCategoryByCode(ctx, fields.Category); err != nil {
			s.logger.Warn("Unknown flight category", "code", fields.Category, "error", err)
		}
	}
	if fields.ActivityType != "" {
		if _, err := s.categories.GetActivityTypeByCode(ctx, fields.ActivityType); err != nil {
			s.logger.Warn("Unknown activity type", "code", fields.ActivityType, "error", err)
		}
	}
}
