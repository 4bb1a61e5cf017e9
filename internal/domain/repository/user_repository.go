package repository

import (
	"context"
	"time"

	"uavops-service/internal/domain/entity"
)

// UserRepository defines storage operations for user profiles. Users are
// keyed by the identity provider's stable subject id and are never
// soft-deleted.
type UserRepository interface {
	GetAll(ctx context.Context) ([]*entity.User, error)
	GetByID(ctx context.Context, id string) (*entity.User, error)
	// EnsureProfile returns the profile for id, creating it with the default
	// role on first sight. The second result reports whether a profile was
	// created by this call.
	EnsureProfile(ctx context.Context, id, email string) (*entity.User, bool, error)
	Update(ctx context.Context, id string, fields entity.UserFields, actorID string) error
	UpdateRole(ctx context.Context, id string, role entity.Role, actorID string) error
	TouchLastLogin(ctx context.Context, id string, at time.Time) error
}
