package exits

import (
	"time"

	"github.com/aceitestapia/fueltrack-backend/pkg/db/models"
	"github.com/aceitestapia/fueltrack-backend/pkg/enums"
	"github.com/aceitestapia/fueltrack-backend/pkg/format"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ExitDTO is the fuel dispense shape returned to clients.
type ExitDTO struct {
	ID          uuid.UUID        `json:"id"`
	StaffID     uuid.UUID        `json:"staff_id"`
	StaffName   string           `json:"staff_name"`
	Date        time.Time        `json:"date"`
	DateLabel   string           `json:"date_label"`
	Product     enums.Product    `json:"product"`
	Volume      decimal.Decimal  `json:"volume"`
	VolumeLabel string           `json:"volume_label"`
	RefuelType  enums.RefuelType `json:"refuel_type"`
	Plate       *string          `json:"plate,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
}

// FromModel maps a persisted exit to its DTO.
func FromModel(m *models.FuelExit) *ExitDTO {
	if m == nil {
		return nil
	}
	return &ExitDTO{
		ID:          m.ID,
		StaffID:     m.StaffID,
		StaffName:   m.StaffName,
		Date:        m.Date,
		DateLabel:   format.FormatDateTime(m.Date),
		Product:     m.Product,
		Volume:      m.Volume,
		VolumeLabel: format.FormatVolume(m.Volume),
		RefuelType:  m.RefuelType,
		Plate:       m.Plate,
		CreatedAt:   m.CreatedAt,
	}
}

// CreateExitRequest is the payload any active member sends when logging a
// dispense. Plate is only meaningful for vehicle refuels.
type CreateExitRequest struct {
	Date       string  `json:"date" validate:"required"`
	Product    string  `json:"product" validate:"required"`
	Volume     string  `json:"volume" validate:"required"`
	RefuelType string  `json:"refuel_type" validate:"required"`
	Plate      *string `json:"plate,omitempty"`
}

// Actor identifies the authenticated member logging the exit. Name is
// snapshotted onto the row so history survives roster changes.
type Actor struct {
	ID   uuid.UUID
	Name string
}

// Filters narrows exit listings. Nil fields match everything.
type Filters struct {
	StaffID    *uuid.UUID
	Product    *enums.Product
	RefuelType *enums.RefuelType
}

// ListResult couples a page of exits with the total row count.
type ListResult struct {
	Exits []ExitDTO
	Total int64
}
