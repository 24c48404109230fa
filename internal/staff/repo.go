package staff

import (
	"context"
	"time"

	"github.com/aceitestapia/fueltrack-backend/pkg/db/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository exposes roster persistence operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a staff repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new staff member and returns the persisted model.
func (r *Repository) Create(ctx context.Context, member *models.StaffMember) error {
	return r.db.WithContext(ctx).Create(member).Error
}

// FindByID loads a staff member by their UUID regardless of active state.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.StaffMember, error) {
	var member models.StaffMember
	if err := r.db.WithContext(ctx).First(&member, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &member, nil
}

// FindActiveByPhone retrieves the active member matching the normalized phone.
func (r *Repository) FindActiveByPhone(ctx context.Context, phone string) (*models.StaffMember, error) {
	var member models.StaffMember
	err := r.db.WithContext(ctx).
		Where("phone = ? AND is_active = ?", phone, true).
		First(&member).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// ListActive returns active members ordered by roster creation time.
func (r *Repository) ListActive(ctx context.Context) ([]models.StaffMember, error) {
	var members []models.StaffMember
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("created_at ASC").
		Find(&members).Error
	if err != nil {
		return nil, err
	}
	return members, nil
}

// Update applies the provided column map to the member row.
func (r *Repository) Update(ctx context.Context, id uuid.UUID, updates map[string]any) (*models.StaffMember, error) {
	if err := r.db.WithContext(ctx).
		Model(&models.StaffMember{}).
		Where("id = ?", id).
		Updates(updates).Error; err != nil {
		return nil, err
	}
	return r.FindByID(ctx, id)
}

// Deactivate soft-deletes the member. Historical fuel exits keep their
// denormalized staff_name and are never touched.
func (r *Repository) Deactivate(ctx context.Context, id uuid.UUID) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&models.StaffMember{}).
		Where("id = ? AND is_active = ?", id, true).
		UpdateColumn("is_active", false)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// LinkCredential stores the password hash created at first login.
func (r *Repository) LinkCredential(ctx context.Context, id uuid.UUID, passwordHash string) error {
	return r.db.WithContext(ctx).
		Model(&models.StaffMember{}).
		Where("id = ?", id).
		UpdateColumn("password_hash", passwordHash).Error
}

// UpdateLastLogin refreshes the member's last_login_at timestamp.
func (r *Repository) UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	return r.db.WithContext(ctx).
		Model(&models.StaffMember{}).
		Where("id = ?", id).
		UpdateColumn("last_login_at", at).Error
}
