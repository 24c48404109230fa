package auth

import (
	"context"
	"testing"
	"time"

	pkgAuth "github.com/aceitestapia/fueltrack-backend/pkg/auth"
	"github.com/aceitestapia/fueltrack-backend/pkg/config"
	"github.com/aceitestapia/fueltrack-backend/pkg/db/models"
	"github.com/aceitestapia/fueltrack-backend/pkg/enums"
	pkgerrors "github.com/aceitestapia/fueltrack-backend/pkg/errors"
	"github.com/aceitestapia/fueltrack-backend/pkg/security"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type stubStaffRepo struct {
	byID        *models.StaffMember
	byIDErr     error
	byPhone     *models.StaffMember
	byPhoneErr  error
	linkedHash  string
	lastLoginAt *time.Time
}

func (s *stubStaffRepo) FindByID(_ context.Context, _ uuid.UUID) (*models.StaffMember, error) {
	return s.byID, s.byIDErr
}

func (s *stubStaffRepo) FindActiveByPhone(_ context.Context, _ string) (*models.StaffMember, error) {
	return s.byPhone, s.byPhoneErr
}

func (s *stubStaffRepo) LinkCredential(_ context.Context, _ uuid.UUID, hash string) error {
	s.linkedHash = hash
	return nil
}

func (s *stubStaffRepo) UpdateLastLogin(_ context.Context, _ uuid.UUID, at time.Time) error {
	s.lastLoginAt = &at
	return nil
}

type stubSessions struct {
	generated []string
	revoked   []string
}

func (s *stubSessions) Generate(_ context.Context, accessID string) error {
	s.generated = append(s.generated, accessID)
	return nil
}

func (s *stubSessions) Revoke(_ context.Context, accessID string) error {
	s.revoked = append(s.revoked, accessID)
	return nil
}

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:                 "test-secret",
		Issuer:                 "fueltrack-test",
		ExpirationMinutes:      60,
		RefreshTokenTTLMinutes: 43200,
	}
}

func testPasswordConfig() config.PasswordConfig {
	return config.PasswordConfig{
		ArgonMemoryKB:    8,
		ArgonTime:        1,
		ArgonParallelism: 1,
		ArgonSaltLen:     16,
		ArgonKeyLen:      32,
	}
}

func newTestService(t *testing.T, repo staffRepository, sessions sessionManager) Service {
	t.Helper()

	svc, err := NewService(ServiceParams{
		StaffRepo:      repo,
		SessionManager: sessions,
		JWTConfig:      testJWTConfig(),
		PasswordConfig: testPasswordConfig(),
	})
	require.NoError(t, err)
	return svc
}

func TestLoginFirstTimeLinksCredential(t *testing.T) {
	repo := &stubStaffRepo{
		byPhone: &models.StaffMember{
			ID:       uuid.New(),
			Phone:    "683613331",
			Name:     "Pedro García",
			Role:     enums.StaffRoleOperario,
			IsActive: true,
		},
	}
	sessions := &stubSessions{}
	svc := newTestService(t, repo, sessions)

	resp, err := svc.Login(context.Background(), LoginRequest{Phone: "683 613 331"})
	require.NoError(t, err)
	require.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, "Pedro García", resp.Profile.Name)
	assert.True(t, resp.Profile.Linked)
	require.NotNil(t, repo.lastLoginAt)

	require.NotEmpty(t, repo.linkedHash)
	valid, err := security.VerifyPassword("683613331", repo.linkedHash)
	require.NoError(t, err)
	assert.True(t, valid)

	claims, err := pkgAuth.ParseAccessToken(testJWTConfig(), resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, repo.byPhone.ID, claims.StaffID)
	assert.Equal(t, enums.StaffRoleOperario, claims.Role)
	require.Len(t, sessions.generated, 1)
	assert.Equal(t, claims.ID, sessions.generated[0])
}

func TestLoginLinkedMemberVerifiesHash(t *testing.T) {
	hash, err := security.HashPassword("612345678", testPasswordConfig())
	require.NoError(t, err)

	repo := &stubStaffRepo{
		byPhone: &models.StaffMember{
			ID:           uuid.New(),
			Phone:        "612345678",
			Name:         "Ana Ruiz",
			Role:         enums.StaffRoleAdmin,
			IsActive:     true,
			PasswordHash: &hash,
		},
	}
	svc := newTestService(t, repo, &stubSessions{})

	resp, err := svc.Login(context.Background(), LoginRequest{Phone: "612345678"})
	require.NoError(t, err)
	assert.Empty(t, repo.linkedHash, "already linked member must not be re-linked")
	assert.Equal(t, enums.StaffRoleAdmin, resp.Profile.Role)
}

func TestLoginUnknownPhone(t *testing.T) {
	repo := &stubStaffRepo{byPhoneErr: gorm.ErrRecordNotFound}
	svc := newTestService(t, repo, &stubSessions{})

	_, err := svc.Login(context.Background(), LoginRequest{Phone: "699999999"})
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeNotRegistered, typed.Code())
}

func TestLoginShortPhone(t *testing.T) {
	svc := newTestService(t, &stubStaffRepo{}, &stubSessions{})

	_, err := svc.Login(context.Background(), LoginRequest{Phone: "12 3 45"})
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeValidation, typed.Code())
}

func TestCurrentSessionDeactivatedMember(t *testing.T) {
	repo := &stubStaffRepo{
		byID: &models.StaffMember{ID: uuid.New(), IsActive: false, Role: enums.StaffRoleOperario},
	}
	svc := newTestService(t, repo, &stubSessions{})

	_, err := svc.CurrentSession(context.Background(), repo.byID.ID)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeUnauthorized, typed.Code())
}

func TestLogoutRevokesSession(t *testing.T) {
	sessions := &stubSessions{}
	svc := newTestService(t, &stubStaffRepo{}, sessions)

	require.NoError(t, svc.Logout(context.Background(), "jti-123"))
	require.Len(t, sessions.revoked, 1)
	assert.Equal(t, "jti-123", sessions.revoked[0])
}
