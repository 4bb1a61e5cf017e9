package usecase

import (
	"context"
	"time"

	"uavops-service/internal/domain/entity"
	"uavops-service/internal/domain/repository"
	"uavops-service/pkg/apperrors"
	"uavops-service/pkg/logger"
)

// UserService owns authorization and audit emission for team member
// profiles. Profiles are provisioned lazily on first authenticated request
// and, unlike the other entity kinds, never soft-deleted.
type UserService struct {
	users  repository.UserRepository
	audit  *AuditRecorder
	logger logger.Logger
}

// NewUserService creates a new user service
func NewUserService(users repository.UserRepository, audit *AuditRecorder, logger logger.Logger) *UserService {
	return &UserService{
		users:  users,
		audit:  audit,
		logger: logger,
	}
}

// Authenticate resolves the actor for a verified identity, creating the
// profile with the default role on first sight and stamping the login time.
func (s *UserService) Authenticate(ctx context.Context, subject, email string) (*entity.User, error) {
	user, created, err := s.users.EnsureProfile(ctx, subject, email)
	if err != nil {
		return nil, err
	}

	if created {
		actor := entity.Actor{ID: user.ID, Email: user.Email, Role: user.Role}
		if err := s.audit.Record(ctx, entity.EntityUser, user.ID, entity.AuditActionCreate, actor, nil, map[string]any{
			"email": user.Email,
			"role":  string(user.Role),
		}); err != nil {
			return nil, err
		}
		s.logger.Info("Provisioned profile on first login", "id", user.ID, "email", user.Email)
	}

	// Login stamping is not a tracked mutation; a failure only loses a
	// timestamp, so it is logged and swallowed.
	now := time.Now().UTC()
	if err := s.users.TouchLastLogin(ctx, user.ID, now); err != nil {
		s.logger.Warn("Failed to stamp last login", "id", user.ID, "error", err)
	} else {
		user.LastLoginAt = &now
	}

	return user, nil
}

// List returns all profiles; the user-management view is for privileged
// roles only.
func (s *UserService) List(ctx context.Context, actor entity.Actor) ([]*entity.User, error) {
	if !actor.Role.Privileged() {
		return nil, apperrors.PermissionDenied("role %s may not list users", actor.Role)
	}
	return s.users.GetAll(ctx)
}

// GetByID returns the profile, or (nil, nil) when it does not exist or the
// actor may not see it. Everyone sees their own profile.
func (s *UserService) GetByID(ctx context.Context, id string, actor entity.Actor) (*entity.User, error) {
	if id != actor.ID && !actor.Role.Privileged() {
		return nil, nil
	}

	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return user, nil
}

// UpdateProfile replaces the editable profile fields. Users edit themselves;
// admins edit anyone.
func (s *UserService) UpdateProfile(ctx context.Context, id string, fields entity.UserFields, actor entity.Actor) error {
	if id != actor.ID && actor.Role != entity.RoleAdmin {
		return apperrors.PermissionDenied("profile %s does not belong to actor %s", id, actor.ID)
	}

	prev, err := s.users.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.users.Update(ctx, id, fields, actor.ID); err != nil {
		return err
	}

	return s.audit.Record(ctx, entity.EntityUser, id, entity.AuditActionEdit, actor, prev.UserFields, fields)
}

// ChangeRole sets another user's privilege level; admin-only, never on the
// acting admin's own profile.
func (s *UserService) ChangeRole(ctx context.Context, id string, role entity.Role, actor entity.Actor) error {
	if actor.Role != entity.RoleAdmin {
		return apperrors.PermissionDenied("role %s may not change roles", actor.Role)
	}
	if id == actor.ID {
		return apperrors.PermissionDenied("actors may not change their own role")
	}
	if !role.Valid() {
		return apperrors.InvalidState("unknown role %q", role)
	}

	prev, err := s.users.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if prev.Role == role {
		return nil
	}

	if err := s.users.UpdateRole(ctx, id, role, actor.ID); err != nil {
		return err
	}

	s.logger.Info("Role changed", "id", id, "from", prev.Role, "to", role, "actor", actor.ID)
	return s.audit.Record(ctx, entity.EntityUser, id, entity.AuditActionEdit, actor,
		map[string]any{"role": string(prev.Role)},
		map[string]any{"role": string(role)})
}
