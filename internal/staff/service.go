package staff

import (
	"context"
	"fmt"
	"strings"

	"github.com/aceitestapia/fueltrack-backend/pkg/db"
	"github.com/aceitestapia/fueltrack-backend/pkg/db/models"
	"github.com/aceitestapia/fueltrack-backend/pkg/enums"
	pkgerrors "github.com/aceitestapia/fueltrack-backend/pkg/errors"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Service defines roster operations available to the HTTP layer.
type Service interface {
	Create(ctx context.Context, req CreateStaffRequest) (*StaffDTO, error)
	List(ctx context.Context) ([]StaffDTO, error)
	Update(ctx context.Context, id uuid.UUID, req UpdateStaffRequest) (*StaffDTO, error)
	Deactivate(ctx context.Context, id uuid.UUID) error
}

type repository interface {
	Create(ctx context.Context, member *models.StaffMember) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.StaffMember, error)
	ListActive(ctx context.Context) ([]models.StaffMember, error)
	Update(ctx context.Context, id uuid.UUID, updates map[string]any) (*models.StaffMember, error)
	Deactivate(ctx context.Context, id uuid.UUID) (bool, error)
}

type service struct {
	repo repository
}

// NewService wires the roster service.
func NewService(repo repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("staff repository is required")
	}
	return &service{repo: repo}, nil
}

func (s *service) Create(ctx context.Context, req CreateStaffRequest) (*StaffDTO, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "name is required")
	}

	phone := NormalizePhone(req.Phone)
	if len(phone) < MinPhoneDigits {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "phone must have at least 6 digits")
	}

	role, err := enums.ParseStaffRole(req.Role)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid role")
	}

	member := &models.StaffMember{
		ID:       uuid.New(),
		Phone:    phone,
		Name:     name,
		Role:     role,
		Plates:   normalizePlates(req.Plates),
		IsActive: true,
	}

	if err := s.repo.Create(ctx, member); err != nil {
		if db.IsUniqueViolation(err, "") {
			return nil, pkgerrors.Wrap(pkgerrors.CodeConflict, err, "phone already registered")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create staff member")
	}

	return FromModel(member), nil
}

func (s *service) List(ctx context.Context) ([]StaffDTO, error) {
	members, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list staff")
	}
	out := make([]StaffDTO, 0, len(members))
	for i := range members {
		out = append(out, *FromModel(&members[i]))
	}
	return out, nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, req UpdateStaffRequest) (*StaffDTO, error) {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "staff member not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load staff member")
	}

	updates := map[string]any{}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "name cannot be empty")
		}
		updates["name"] = name
	}
	if req.Phone != nil {
		phone := NormalizePhone(*req.Phone)
		if len(phone) < MinPhoneDigits {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "phone must have at least 6 digits")
		}
		updates["phone"] = phone
	}
	if req.Role != nil {
		role, err := enums.ParseStaffRole(*req.Role)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid role")
		}
		updates["role"] = role
	}
	if req.Plates != nil {
		updates["plates"] = normalizePlates(*req.Plates)
	}
	if len(updates) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "no fields to update")
	}

	member, err := s.repo.Update(ctx, id, updates)
	if err != nil {
		if db.IsUniqueViolation(err, "") {
			return nil, pkgerrors.Wrap(pkgerrors.CodeConflict, err, "phone already registered")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update staff member")
	}
	return FromModel(member), nil
}

func (s *service) Deactivate(ctx context.Context, id uuid.UUID) error {
	found, err := s.repo.Deactivate(ctx, id)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "deactivate staff member")
	}
	if !found {
		return pkgerrors.New(pkgerrors.CodeNotFound, "staff member not found")
	}
	return nil
}

func normalizePlates(plates []string) pq.StringArray {
	out := pq.StringArray{}
	for _, plate := range plates {
		cleaned := strings.ToUpper(strings.TrimSpace(plate))
		if cleaned != "" {
			out = append(out, cleaned)
		}
	}
	return out
}
