package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aceitestapia/fueltrack-backend/internal/staff"
	pkgAuth "github.com/aceitestapia/fueltrack-backend/pkg/auth"
	"github.com/aceitestapia/fueltrack-backend/pkg/auth/session"
	"github.com/aceitestapia/fueltrack-backend/pkg/config"
	"github.com/aceitestapia/fueltrack-backend/pkg/db/models"
	pkgerrors "github.com/aceitestapia/fueltrack-backend/pkg/errors"
	"github.com/aceitestapia/fueltrack-backend/pkg/security"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const notRegisteredMessage = "phone is not registered"

// Service defines the behavior needed by the auth controller.
type Service interface {
	Login(ctx context.Context, req LoginRequest) (*LoginResponse, error)
	CurrentSession(ctx context.Context, staffID uuid.UUID) (*SessionResponse, error)
	Logout(ctx context.Context, accessID string) error
}

type staffRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.StaffMember, error)
	FindActiveByPhone(ctx context.Context, phone string) (*models.StaffMember, error)
	LinkCredential(ctx context.Context, id uuid.UUID, passwordHash string) error
	UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error
}

type sessionManager interface {
	Generate(ctx context.Context, accessID string) error
	Revoke(ctx context.Context, accessID string) error
}

type service struct {
	staff       staffRepository
	session     sessionManager
	jwtCfg      config.JWTConfig
	passwordCfg config.PasswordConfig
}

// ServiceParams bundles the dependencies required to build an auth service.
type ServiceParams struct {
	StaffRepo      staffRepository
	SessionManager sessionManager
	JWTConfig      config.JWTConfig
	PasswordConfig config.PasswordConfig
}

// NewService constructs a login service with the provided dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.StaffRepo == nil {
		return nil, fmt.Errorf("staff repository is required")
	}
	if params.SessionManager == nil {
		return nil, fmt.Errorf("session manager is required")
	}
	return &service{
		staff:       params.StaffRepo,
		session:     params.SessionManager,
		jwtCfg:      params.JWTConfig,
		passwordCfg: params.PasswordConfig,
	}, nil
}

// Login resolves the phone against the active roster. Roster entries created
// by an admin have no credential yet; the first successful login links one,
// derived from the normalized phone itself.
func (s *service) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	phone := staff.NormalizePhone(req.Phone)
	if len(phone) < staff.MinPhoneDigits {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "phone must have at least 6 digits")
	}

	member, err := s.staff.FindActiveByPhone(ctx, phone)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotRegistered, notRegisteredMessage)
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "lookup staff member")
	}

	if member.IsLinked() {
		valid, err := security.VerifyPassword(phone, *member.PasswordHash)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "verify credential")
		}
		if !valid {
			return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid credentials")
		}
	} else {
		hash, err := security.HashPassword(phone, s.passwordCfg)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "hash credential")
		}
		if err := s.staff.LinkCredential(ctx, member.ID, hash); err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "link credential")
		}
		member.PasswordHash = &hash
	}

	now := time.Now().UTC()
	if err := s.staff.UpdateLastLogin(ctx, member.ID, now); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update last login")
	}
	member.LastLoginAt = &now

	accessID := session.NewAccessID()
	accessToken, err := pkgAuth.MintAccessToken(s.jwtCfg, now, pkgAuth.AccessTokenPayload{
		StaffID: member.ID,
		Role:    member.Role,
		JTI:     accessID,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "mint jwt")
	}
	if err := s.session.Generate(ctx, accessID); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "store session")
	}

	return &LoginResponse{
		AccessToken: accessToken,
		Profile:     staff.FromModel(member),
	}, nil
}

// CurrentSession loads the profile behind an authenticated request. A member
// deactivated after their token was issued is treated as logged out.
func (s *service) CurrentSession(ctx context.Context, staffID uuid.UUID) (*SessionResponse, error) {
	member, err := s.staff.FindByID(ctx, staffID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "session no longer valid")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load staff member")
	}
	if !member.IsActive {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "session no longer valid")
	}
	return &SessionResponse{Profile: staff.FromModel(member)}, nil
}

// Logout revokes the Redis session tied to the token's jti, so the JWT stops
// working before its natural expiry.
func (s *service) Logout(ctx context.Context, accessID string) error {
	if err := s.session.Revoke(ctx, accessID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "revoke session")
	}
	return nil
}
