package repository

import (
	"context"

	"uavops-service/internal/domain/entity"
)

// CategoryRepository reads the reference dictionaries used to classify
// flights. Dictionaries are maintained out-of-band in the relational store.
type CategoryRepository interface {
	GetFlightCategories(ctx context.Context) ([]*entity.FlightCategory, error)
	GetFlightCategoryByCode(ctx context.Context, code string) (*entity.FlightCategory, error)
	GetActivityTypes(ctx context.Context) ([]*entity.ActivityType, error)
	GetActivityTypeByCode(ctx context.Context, code string) (*entity.ActivityType, error)
}
