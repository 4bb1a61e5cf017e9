package repository

import (
	"context"
	"time"

	"uavops-service/internal/domain/entity"
	"uavops-service/internal/domain/repository"

	"gorm.io/gorm"
)

// GormCategoryRepository implements the CategoryRepository interface
type GormCategoryRepository struct {
	db *gorm.DB
}

// NewGormCategoryRepository creates a new GORM category repository
func NewGormCategoryRepository(db *gorm.DB) repository.CategoryRepository {
	return &GormCategoryRepository{
		db: db,
	}
}

// FlightCategories GORM model for database mapping
type FlightCategories struct {
	gorm.Model
	ID        uint           `gorm:"primaryKey"`
	Code      string         `gorm:"column:code;unique"`
	Name      string         `gorm:"column:name"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName overrides the default table name
func (FlightCategories) TableName() string {
	return "m_flight_categories"
}

// ActivityTypes GORM model for database mapping
type ActivityTypes struct {
	gorm.Model
	ID        uint           `gorm:"primaryKey"`
	Code      string         `gorm:"column:code;unique"`
	Name      string         `gorm:"column:name"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName overrides the default table name
func (ActivityTypes) TableName() string {
	return "m_activity_types"
}

// GetFlightCategories returns the flight category dictionary
func (r *GormCategoryRepository) GetFlightCategories(ctx context.Context) ([]*entity.FlightCategory, error) {
	var rows []FlightCategories
	result := r.db.WithContext(ctx).Order("code").Find(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	categories := make([]*entity.FlightCategory, 0, len(rows))
	for _, row := range rows {
		categories = append(categories, flightCategoryEntity(row))
	}
	return categories, nil
}

// GetFlightCategoryByCode finds a flight category by code
func (r *GormCategoryRepository) GetFlightCategoryByCode(ctx context.Context, code string) (*entity.FlightCategory, error) {
	var row FlightCategories
	result := r.db.WithContext(ctx).Where("code = ?", code).First(&row)
	if result.Error != nil {
		return nil, result.Error
	}
	return flightCategoryEntity(row), nil
}

// GetActivityTypes returns the activity type dictionary
func (r *GormCategoryRepository) GetActivityTypes(ctx context.Context) ([]*entity.ActivityType, error) {
	var rows []ActivityTypes
	result := r.db.WithContext(ctx).Order("code").Find(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	types := make([]*entity.ActivityType, 0, len(rows))
	for _, row := range rows {
		types = append(types, activityTypeEntity(row))
	}
	return types, nil
}

// GetActivityTypeByCode finds an activity type by code
func (r *GormCategoryRepository) GetActivityTypeByCode(ctx context.Context, code string) (*entity.ActivityType, error) {
	var row ActivityTypes
	result := r.db.WithContext(ctx).Where("code = ?", code).First(&row)
	if result.Error != nil {
		return nil, result.Error
	}
	return activityTypeEntity(row), nil
}

// Convert GORM models to domain entities
func flightCategoryEntity(row FlightCategories) *entity.FlightCategory {
	return &entity.FlightCategory{
		ID:        row.ID,
		Code:      row.Code,
		Name:      row.Name,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
		DeletedAt: row.DeletedAt,
	}
}

func activityTypeEntity(row ActivityTypes) *entity.ActivityType {
	return &entity.ActivityType{
		ID:        row.ID,
		Code:      row.Code,
		Name:      row.Name,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
		DeletedAt: row.DeletedAt,
	}
}
