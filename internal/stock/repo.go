package stock

import (
	"context"

	"github.com/aceitestapia/fueltrack-backend/pkg/db/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ProductTotal is one product's summed volume in a movement table. The
// product is kept as raw text so the service can surface values the enum
// does not know about instead of silently dropping them.
type ProductTotal struct {
	Product string          `gorm:"column:product"`
	Total   decimal.Decimal `gorm:"column:total"`
}

// Repository reads movement aggregates for stock derivation.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a stock repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// EntryTotals sums delivered volume per product.
func (r *Repository) EntryTotals(ctx context.Context) ([]ProductTotal, error) {
	return r.sumByProduct(ctx, &models.FuelEntry{})
}

// ExitTotals sums dispensed volume per product.
func (r *Repository) ExitTotals(ctx context.Context) ([]ProductTotal, error) {
	return r.sumByProduct(ctx, &models.FuelExit{})
}

func (r *Repository) sumByProduct(ctx context.Context, model any) ([]ProductTotal, error) {
	var totals []ProductTotal
	err := r.db.WithContext(ctx).
		Model(model).
		Select("product, SUM(volume) AS total").
		Group("product").
		Scan(&totals).Error
	if err != nil {
		return nil, err
	}
	return totals, nil
}
