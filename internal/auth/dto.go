package auth

import "github.com/aceitestapia/fueltrack-backend/internal/staff"

// LoginRequest carries the phone number sent to the login endpoint. The
// phone doubles as the credential: the roster is the source of truth for
// who may sign in.
type LoginRequest struct {
	Phone string `json:"phone" validate:"required"`
}

// LoginResponse contains the access token and the member profile produced
// by a successful login.
type LoginResponse struct {
	AccessToken string          `json:"access_token"`
	Profile     *staff.StaffDTO `json:"profile"`
}

// SessionResponse exposes the profile behind a live session.
type SessionResponse struct {
	Profile *staff.StaffDTO `json:"profile"`
}
