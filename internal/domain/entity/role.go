package entity

// Role is the privilege level of an authenticated actor.
type Role string

const (
	RoleUser    Role = "user"
	RoleManager Role = "manager"
	RoleAdmin   Role = "admin"
)

// Privileged reports whether the role may manage shared resources.
func (r Role) Privileged() bool {
	return r == RoleManager || r == RoleAdmin
}

// Valid reports whether the role is one of the known values.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleManager || r == RoleAdmin
}

// Actor is the authenticated principal performing an operation.
type Actor struct {
	ID    string
	Email string
	Role  Role
}
