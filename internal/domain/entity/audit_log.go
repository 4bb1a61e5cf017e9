package entity

import "time"

// Audit actions.
const (
	AuditActionCreate  = "create"
	AuditActionEdit    = "edit"
	AuditActionDelete  = "delete"
	AuditActionRestore = "restore"
)

// Entity type names used in audit entries and API paths.
const (
	EntityDrone     = "drone"
	EntityFlight    = "flight"
	EntityChecklist = "procedureChecklist"
	EntityUser      = "user"
)

// AuditLog is one immutable record of a mutation: who changed what, when,
// and the before/after snapshots. Entries are appended once and never
// updated or deleted by the application.
type AuditLog struct {
	ID            string         `bson:"_id,omitempty" json:"id"`
	EntityType    string         `bson:"entityType" json:"entityType"`
	EntityID      string         `bson:"entityId" json:"entityId"`
	Action        string         `bson:"action" json:"action"`
	UserID        string         `bson:"userId" json:"userId"`
	UserEmail     string         `bson:"userEmail" json:"userEmail"` // denormalized snapshot
	Details       string         `bson:"details" json:"details"`
	PreviousValue map[string]any `bson:"previousValue,omitempty" json:"previousValue,omitempty"`
	NewValue      map[string]any `bson:"newValue,omitempty" json:"newValue,omitempty"`
	Timestamp     time.Time      `bson:"timestamp" json:"timestamp"`
}
