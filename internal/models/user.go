package models

import "time"

type User struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	PasswordHash string    `json:"-"` // Never expose in JSON
	Role         string    `json:"role"` // admin or landlord
	TOTPSecret   string    `json:"-"`
	TOTPEnabled  bool      `json:"totp_enabled"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// SignupRequest represents the request body for signup
type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

// LoginRequest represents the request body for login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse represents the response after successful authentication.
// When TwoFactorRequired is set, Token is a short-lived 2FA token and the
// client must call /auth/2fa/verify to obtain a full session token.
type AuthResponse struct {
	Token             string `json:"token"`
	TwoFactorRequired bool   `json:"two_factor_required,omitempty"`
	User              *User  `json:"user,omitempty"`
}

// TwoFactorVerifyRequest carries the temp token plus the authenticator code
type TwoFactorVerifyRequest struct {
	TempToken string `json:"temp_token"`
	Code      string `json:"code"`
}
