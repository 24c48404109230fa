package exits

import (
	"context"

	"github.com/aceitestapia/fueltrack-backend/pkg/db/models"
	"github.com/aceitestapia/fueltrack-backend/pkg/pagination"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository exposes fuel exit persistence operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs an exits repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new dispense row.
func (r *Repository) Create(ctx context.Context, exit *models.FuelExit) error {
	return r.db.WithContext(ctx).Create(exit).Error
}

// List returns a filtered page of exits ordered newest first plus the
// total count under the same filters.
func (r *Repository) List(ctx context.Context, params pagination.Params, filters Filters) ([]models.FuelExit, int64, error) {
	params = pagination.Normalize(params)

	query := r.db.WithContext(ctx).Model(&models.FuelExit{})
	query = applyFilters(query, filters)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []models.FuelExit
	err := query.
		Order("date DESC, created_at DESC").
		Offset(params.Offset).
		Limit(params.Limit).
		Find(&rows).Error
	if err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

// Delete removes the exit row. Returns false when no row matched.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&models.FuelExit{}, "id = ?", id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func applyFilters(query *gorm.DB, filters Filters) *gorm.DB {
	if filters.StaffID != nil {
		query = query.Where("staff_id = ?", *filters.StaffID)
	}
	if filters.Product != nil {
		query = query.Where("product = ?", *filters.Product)
	}
	if filters.RefuelType != nil {
		query = query.Where("refuel_type = ?", *filters.RefuelType)
	}
	return query
}
