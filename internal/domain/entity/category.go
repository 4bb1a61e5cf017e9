package entity

import (
	"time"

	"gorm.io/gorm"
)

// FlightCategory is a reference dictionary row (e.g. rescue, training).
type FlightCategory struct {
	ID        uint
	Code      string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt
}

// ActivityType is a reference dictionary row (e.g. search, patrol, exercise).
type ActivityType struct {
	ID        uint
	Code      string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt
}
