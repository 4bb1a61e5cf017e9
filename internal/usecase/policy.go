package usecase

import "uavops-service/internal/domain/entity"

// Policy declares which roles may perform each operation on an entity kind.
// One declarative table per kind replaces per-service role checks; services
// consult the policy and never duplicate role logic.
type Policy struct {
	Create      []entity.Role
	Edit        []entity.Role
	Delete      []entity.Role
	Restore     []entity.Role
	ViewDeleted []entity.Role
}

func (p Policy) CanCreate(r entity.Role) bool      { return contains(p.Create, r) }
func (p Policy) CanEdit(r entity.Role) bool        { return contains(p.Edit, r) }
func (p Policy) CanDelete(r entity.Role) bool      { return contains(p.Delete, r) }
func (p Policy) CanRestore(r entity.Role) bool     { return contains(p.Restore, r) }
func (p Policy) CanViewDeleted(r entity.Role) bool { return contains(p.ViewDeleted, r) }

func contains(roles []entity.Role, r entity.Role) bool {
	for _, role := range roles {
		if role == r {
			return true
		}
	}
	return false
}

var (
	managerUp = []entity.Role{entity.RoleManager, entity.RoleAdmin}
	adminOnly = []entity.Role{entity.RoleAdmin}
	anyRole   = []entity.Role{entity.RoleUser, entity.RoleManager, entity.RoleAdmin}
)

// DronePolicy: shared inventory, managed by managers and admins. Deleted
// drones are visible to admins only, and only admins restore.
var DronePolicy = Policy{
	Create:      managerUp,
	Edit:        managerUp,
	Delete:      managerUp,
	Restore:     adminOnly,
	ViewDeleted: adminOnly,
}

// FlightPolicy: every pilot logs their own flights; editing an owned flight
// is allowed for its owner regardless of role (the service enforces
// ownership for non-privileged actors on top of this table).
var FlightPolicy = Policy{
	Create:      anyRole,
	Edit:        managerUp,
	Delete:      managerUp,
	Restore:     adminOnly,
	ViewDeleted: adminOnly,
}

// ChecklistPolicy mirrors the drone rules.
var ChecklistPolicy = Policy{
	Create:      managerUp,
	Edit:        managerUp,
	Delete:      managerUp,
	Restore:     adminOnly,
	ViewDeleted: adminOnly,
}
