package models

import (
	"time"

	"github.com/aceitestapia/fueltrack-backend/pkg/enums"
	"github.com/google/uuid"
	"github.com/lib/pq"
)

// StaffMember is a roster entry. The phone number is the login identifier;
// PasswordHash stays null until the member's first login links a credential.
type StaffMember struct {
	ID           uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Phone        string          `gorm:"type:text;not null;uniqueIndex" json:"phone"`
	Name         string          `gorm:"type:text;not null" json:"name"`
	Role         enums.StaffRole `gorm:"type:text;not null;default:'operario'" json:"role"`
	Plates       pq.StringArray  `gorm:"type:text[];not null;default:ARRAY[]::text[]" json:"plates"`
	IsActive     bool            `gorm:"column:is_active;not null;default:true" json:"is_active"`
	PasswordHash *string         `gorm:"column:password_hash" json:"-"`
	LastLoginAt  *time.Time      `gorm:"column:last_login_at" json:"last_login_at,omitempty"`
	CreatedAt    time.Time       `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time       `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

// TableName keeps the legacy table naming.
func (StaffMember) TableName() string {
	return "staff"
}

// IsLinked reports whether the member already has a login credential.
func (s StaffMember) IsLinked() bool {
	return s.PasswordHash != nil && *s.PasswordHash != ""
}
