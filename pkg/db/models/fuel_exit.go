package models

import (
	"time"

	"github.com/aceitestapia/fueltrack-backend/pkg/enums"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// FuelExit is fuel dispensed out of site storage. StaffName is a snapshot
// of the dispensing member's name so history survives roster deactivation.
type FuelExit struct {
	ID         uuid.UUID        `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	StaffID    uuid.UUID        `gorm:"column:staff_id;type:uuid;not null" json:"staff_id"`
	StaffName  string           `gorm:"column:staff_name;type:text;not null" json:"staff_name"`
	Date       time.Time        `gorm:"column:date;not null" json:"date"`
	Product    enums.Product    `gorm:"type:text;not null" json:"product"`
	Volume     decimal.Decimal  `gorm:"type:numeric(12,2);not null" json:"volume"`
	RefuelType enums.RefuelType `gorm:"column:refuel_type;type:text;not null" json:"refuel_type"`
	Plate      *string          `gorm:"type:text" json:"plate,omitempty"`
	CreatedAt  time.Time        `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (FuelExit) TableName() string {
	return "fuel_exits"
}
