package models

import (
	"time"

	"github.com/aceitestapia/fueltrack-backend/pkg/enums"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// FuelEntry is a delivery of fuel into site storage. Rows are immutable
// once created; the only mutation is an admin hard delete.
type FuelEntry struct {
	ID            uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Date          time.Time       `gorm:"column:date;not null" json:"date"`
	Product       enums.Product   `gorm:"type:text;not null" json:"product"`
	Volume        decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"volume"`
	Supplier      string          `gorm:"type:text;not null" json:"supplier"`
	PricePerLiter decimal.Decimal `gorm:"column:price_per_liter;type:numeric(12,3);not null" json:"price_per_liter"`
	CreatedBy     uuid.UUID       `gorm:"column:created_by;type:uuid;not null" json:"created_by"`
	CreatedAt     time.Time       `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (FuelEntry) TableName() string {
	return "fuel_entries"
}
