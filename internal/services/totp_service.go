package services

import (
	"context"

	"github.com/pquerna/otp/totp"

	"unitsync-backend/internal/apperrors"
	"unitsync-backend/internal/repositories"
)

const totpIssuer = "UnitSync"

// TOTPService manages authenticator-app 2FA for landlord accounts
type TOTPService struct {
	store repositories.Store
}

func NewTOTPService(store repositories.Store) *TOTPService {
	return &TOTPService{store: store}
}

// Setup generates a fresh secret for the user and stores it disabled. The
// returned otpauth URL is rendered as a QR code by the client; 2FA only
// activates once Enable confirms a valid code.
func (s *TOTPService) Setup(ctx context.Context, userID int) (secret, url string, err error) {
	user, err := s.store.Users().Get(ctx, userID)
	if err != nil {
		return "", "", err
	}
	if user == nil {
		return "", "", apperrors.NotFound("user_not_found", "user not found")
	}

	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      totpIssuer,
		AccountName: user.Email,
	})
	if err != nil {
		return "", "", err
	}

	if err := s.store.Users().SetTOTPSecret(ctx, userID, key.Secret()); err != nil {
		return "", "", err
	}
	return key.Secret(), key.URL(), nil
}

// Enable turns 2FA on after the user proves they hold the secret
func (s *TOTPService) Enable(ctx context.Context, userID int, code string) error {
	user, err := s.store.Users().Get(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return apperrors.NotFound("user_not_found", "user not found")
	}
	if user.TOTPSecret == "" {
		return apperrors.MissingPrecondition("totp_not_setup", "2FA has not been set up")
	}
	if !totp.Validate(code, user.TOTPSecret) {
		return apperrors.Validation("invalid_code", "invalid authenticator code")
	}
	return s.store.Users().EnableTOTP(ctx, userID)
}

// Disable turns 2FA off and clears the secret
func (s *TOTPService) Disable(ctx context.Context, userID int, code string) error {
	user, err := s.store.Users().Get(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return apperrors.NotFound("user_not_found", "user not found")
	}
	if !user.TOTPEnabled {
		return apperrors.InvalidState("totp_not_enabled", "2FA is not enabled")
	}
	if !totp.Validate(code, user.TOTPSecret) {
		return apperrors.Validation("invalid_code", "invalid authenticator code")
	}
	return s.store.Users().DisableTOTP(ctx, userID)
}

// Verify checks a login-time authenticator code
func (s *TOTPService) Verify(ctx context.Context, userID int, code string) error {
	user, err := s.store.Users().Get(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return apperrors.NotFound("user_not_found", "user not found")
	}
	if !user.TOTPEnabled {
		return apperrors.InvalidState("totp_not_enabled", "2FA is not enabled")
	}
	if !totp.Validate(code, user.TOTPSecret) {
		return apperrors.Validation("invalid_code", "invalid authenticator code")
	}
	return nil
}
