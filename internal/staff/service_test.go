package staff

import (
	"context"
	"errors"
	"testing"

	"github.com/aceitestapia/fueltrack-backend/pkg/db/models"
	"github.com/aceitestapia/fueltrack-backend/pkg/enums"
	pkgerrors "github.com/aceitestapia/fueltrack-backend/pkg/errors"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type stubRepo struct {
	created     *models.StaffMember
	createErr   error
	findResult  *models.StaffMember
	findErr     error
	listResult  []models.StaffMember
	listErr     error
	updated     map[string]any
	updateErr   error
	deactFound  bool
	deactErr    error
	deactivated uuid.UUID
}

func (s *stubRepo) Create(_ context.Context, member *models.StaffMember) error {
	s.created = member
	return s.createErr
}

func (s *stubRepo) FindByID(_ context.Context, _ uuid.UUID) (*models.StaffMember, error) {
	return s.findResult, s.findErr
}

func (s *stubRepo) ListActive(_ context.Context) ([]models.StaffMember, error) {
	return s.listResult, s.listErr
}

func (s *stubRepo) Update(_ context.Context, id uuid.UUID, updates map[string]any) (*models.StaffMember, error) {
	s.updated = updates
	if s.updateErr != nil {
		return nil, s.updateErr
	}
	return s.findResult, nil
}

func (s *stubRepo) Deactivate(_ context.Context, id uuid.UUID) (bool, error) {
	s.deactivated = id
	return s.deactFound, s.deactErr
}

func expectCode(t *testing.T, err error, code pkgerrors.Code) {
	t.Helper()
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != code {
		t.Fatalf("expected %s, got %v", code, err)
	}
}

func TestCreateNormalizesPhoneAndPlates(t *testing.T) {
	repo := &stubRepo{}
	svc, err := NewService(repo)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	dto, err := svc.Create(context.Background(), CreateStaffRequest{
		Name:   "  María López ",
		Phone:  "612 345 678",
		Role:   "operario",
		Plates: []string{" 1234 abc ", ""},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if dto.Phone != "612345678" {
		t.Fatalf("expected normalized phone, got %q", dto.Phone)
	}
	if dto.Name != "María López" {
		t.Fatalf("expected trimmed name, got %q", dto.Name)
	}
	if len(dto.Plates) != 1 || dto.Plates[0] != "1234 ABC" {
		t.Fatalf("expected uppercased plate, got %v", dto.Plates)
	}
	if !repo.created.IsActive {
		t.Fatal("new member must start active")
	}
}

func TestCreateRejectsShortPhone(t *testing.T) {
	svc, _ := NewService(&stubRepo{})
	_, err := svc.Create(context.Background(), CreateStaffRequest{
		Name:  "Ana",
		Phone: "12 34",
		Role:  "operario",
	})
	expectCode(t, err, pkgerrors.CodeValidation)
}

func TestCreateRejectsUnknownRole(t *testing.T) {
	svc, _ := NewService(&stubRepo{})
	_, err := svc.Create(context.Background(), CreateStaffRequest{
		Name:  "Ana",
		Phone: "612345678",
		Role:  "root",
	})
	expectCode(t, err, pkgerrors.CodeValidation)
}

func TestCreateMapsDuplicatePhone(t *testing.T) {
	repo := &stubRepo{createErr: errors.New(`duplicate key value violates unique constraint "staff_phone_key"`)}
	svc, _ := NewService(repo)
	_, err := svc.Create(context.Background(), CreateStaffRequest{
		Name:  "Ana",
		Phone: "612345678",
		Role:  "admin",
	})
	expectCode(t, err, pkgerrors.CodeConflict)
}

func TestUpdateNotFound(t *testing.T) {
	repo := &stubRepo{findErr: gorm.ErrRecordNotFound}
	svc, _ := NewService(repo)
	name := "Nuevo"
	_, err := svc.Update(context.Background(), uuid.New(), UpdateStaffRequest{Name: &name})
	expectCode(t, err, pkgerrors.CodeNotFound)
}

func TestUpdateRequiresFields(t *testing.T) {
	repo := &stubRepo{findResult: &models.StaffMember{ID: uuid.New(), Role: enums.StaffRoleOperario}}
	svc, _ := NewService(repo)
	_, err := svc.Update(context.Background(), uuid.New(), UpdateStaffRequest{})
	expectCode(t, err, pkgerrors.CodeValidation)
}

func TestDeactivateNotFound(t *testing.T) {
	repo := &stubRepo{deactFound: false}
	svc, _ := NewService(repo)
	err := svc.Deactivate(context.Background(), uuid.New())
	expectCode(t, err, pkgerrors.CodeNotFound)
}

func TestNormalizePhoneIdempotent(t *testing.T) {
	once := NormalizePhone("683 613 331")
	twice := NormalizePhone(once)
	if once != "683613331" || once != twice {
		t.Fatalf("normalization not idempotent: %q vs %q", once, twice)
	}
}
