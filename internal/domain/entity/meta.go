package entity

import "time"

// Meta carries the bookkeeping fields shared by every stored record:
// identity, actor stamps and the soft-delete flag. A soft-deleted record is
// never removed from the collection, only flagged, and stays restorable.
type Meta struct {
	ID        string     `bson:"_id,omitempty" json:"id"`
	CreatedAt time.Time  `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time  `bson:"updatedAt" json:"updatedAt"`
	CreatedBy string     `bson:"createdBy" json:"createdBy"`
	UpdatedBy string     `bson:"updatedBy" json:"updatedBy"`
	IsDeleted bool       `bson:"isDeleted" json:"isDeleted"`
	DeletedAt *time.Time `bson:"deletedAt,omitempty" json:"deletedAt,omitempty"`
}

// RecordID returns the stored identifier.
func (m *Meta) RecordID() string {
	return m.ID
}

// Deleted reports the soft-delete state.
func (m *Meta) Deleted() bool {
	return m.IsDeleted
}
