package entries

import (
	"context"

	"github.com/aceitestapia/fueltrack-backend/pkg/db/models"
	"github.com/aceitestapia/fueltrack-backend/pkg/pagination"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository exposes fuel entry persistence operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs an entries repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new delivery row.
func (r *Repository) Create(ctx context.Context, entry *models.FuelEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

// List returns a page of entries ordered newest first plus the total count.
func (r *Repository) List(ctx context.Context, params pagination.Params) ([]models.FuelEntry, int64, error) {
	params = pagination.Normalize(params)

	var total int64
	if err := r.db.WithContext(ctx).Model(&models.FuelEntry{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []models.FuelEntry
	err := r.db.WithContext(ctx).
		Order("date DESC, created_at DESC").
		Offset(params.Offset).
		Limit(params.Limit).
		Find(&rows).Error
	if err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

// Delete removes the entry row. Returns false when no row matched.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&models.FuelEntry{}, "id = ?", id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
