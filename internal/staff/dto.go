package staff

import (
	"time"

	"github.com/aceitestapia/fueltrack-backend/pkg/db/models"
	"github.com/aceitestapia/fueltrack-backend/pkg/enums"
	"github.com/google/uuid"
)

// StaffDTO is the roster entry shape returned to clients.
type StaffDTO struct {
	ID          uuid.UUID       `json:"id"`
	Phone       string          `json:"phone"`
	Name        string          `json:"name"`
	Role        enums.StaffRole `json:"role"`
	Plates      []string        `json:"plates"`
	IsActive    bool            `json:"is_active"`
	Linked      bool            `json:"linked"`
	LastLoginAt *time.Time      `json:"last_login_at,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

// FromModel maps a persisted staff member to its DTO.
func FromModel(m *models.StaffMember) *StaffDTO {
	if m == nil {
		return nil
	}
	plates := make([]string, len(m.Plates))
	copy(plates, m.Plates)
	return &StaffDTO{
		ID:          m.ID,
		Phone:       m.Phone,
		Name:        m.Name,
		Role:        m.Role,
		Plates:      plates,
		IsActive:    m.IsActive,
		Linked:      m.IsLinked(),
		LastLoginAt: m.LastLoginAt,
		CreatedAt:   m.CreatedAt,
	}
}

// CreateStaffRequest is the admin payload for adding a roster entry.
type CreateStaffRequest struct {
	Name   string   `json:"name" validate:"required"`
	Phone  string   `json:"phone" validate:"required"`
	Role   string   `json:"role" validate:"required"`
	Plates []string `json:"plates"`
}

// UpdateStaffRequest carries the mutable roster fields. Nil means unchanged.
type UpdateStaffRequest struct {
	Name   *string   `json:"name,omitempty"`
	Phone  *string   `json:"phone,omitempty"`
	Role   *string   `json:"role,omitempty"`
	Plates *[]string `json:"plates,omitempty"`
}
