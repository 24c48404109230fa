package entries

import (
	"time"

	"github.com/aceitestapia/fueltrack-backend/pkg/db/models"
	"github.com/aceitestapia/fueltrack-backend/pkg/enums"
	"github.com/aceitestapia/fueltrack-backend/pkg/format"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// EntryDTO is the fuel delivery shape returned to clients. Label fields
// carry the es-ES rendering used by the dashboard.
type EntryDTO struct {
	ID            uuid.UUID       `json:"id"`
	Date          time.Time       `json:"date"`
	DateLabel     string          `json:"date_label"`
	Product       enums.Product   `json:"product"`
	Volume        decimal.Decimal `json:"volume"`
	VolumeLabel   string          `json:"volume_label"`
	Supplier      string          `json:"supplier"`
	PricePerLiter decimal.Decimal `json:"price_per_liter"`
	PriceLabel    string          `json:"price_label"`
	CreatedBy     uuid.UUID       `json:"created_by"`
	CreatedAt     time.Time       `json:"created_at"`
}

// FromModel maps a persisted entry to its DTO.
func FromModel(m *models.FuelEntry) *EntryDTO {
	if m == nil {
		return nil
	}
	return &EntryDTO{
		ID:            m.ID,
		Date:          m.Date,
		DateLabel:     format.FormatDate(m.Date),
		Product:       m.Product,
		Volume:        m.Volume,
		VolumeLabel:   format.FormatVolume(m.Volume),
		Supplier:      m.Supplier,
		PricePerLiter: m.PricePerLiter,
		PriceLabel:    format.FormatCurrency(m.PricePerLiter),
		CreatedBy:     m.CreatedBy,
		CreatedAt:     m.CreatedAt,
	}
}

// CreateEntryRequest is the admin payload for registering a delivery.
// Volume and price arrive as strings so decimal parsing stays exact.
type CreateEntryRequest struct {
	Date          string `json:"date" validate:"required"`
	Product       string `json:"product" validate:"required"`
	Volume        string `json:"volume" validate:"required"`
	Supplier      string `json:"supplier" validate:"required"`
	PricePerLiter string `json:"price_per_liter" validate:"required"`
}

// ListResult couples a page of entries with the total row count.
type ListResult struct {
	Entries []EntryDTO
	Total   int64
}
