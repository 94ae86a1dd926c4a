package services

import (
	"context"
	"log"
	"strings"

	"unitsync-backend/internal/apperrors"
	"unitsync-backend/internal/auth"
	"unitsync-backend/internal/models"
	"unitsync-backend/internal/repositories"
)

// UserService handles landlord/admin account signup and login
type UserService struct {
	store repositories.Store
}

func NewUserService(store repositories.Store) *UserService {
	return &UserService{store: store}
}

// Signup registers a new landlord account
func (s *UserService) Signup(ctx context.Context, req *models.SignupRequest) (*models.User, error) {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Name == "" {
		return nil, apperrors.Validation("missing_name", "name is required")
	}
	if req.Email == "" || !strings.Contains(req.Email, "@") {
		return nil, apperrors.Validation("invalid_email", "a valid email is required")
	}
	if len(req.Password) < 8 {
		return nil, apperrors.Validation("weak_password", "password must be at least 8 characters")
	}

	existing, err := s.store.Users().GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.Validation("email_exists", "an account with this email already exists")
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		PasswordHash: hash,
		Role:         "landlord",
	}
	if err := s.store.Users().Create(ctx, user); err != nil {
		return nil, err
	}
	user.IsActive = true

	log.Printf("[Auth] new account %s (user %d)", user.Email, user.ID)
	return user, nil
}

// Login verifies credentials and returns the account. The caller decides
// between a session token and a 2FA challenge based on TOTPEnabled.
func (s *UserService) Login(ctx context.Context, req *models.LoginRequest) (*models.User, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.store.Users().GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil || !auth.VerifyPassword(user.PasswordHash, req.Password) {
		return nil, apperrors.Validation("invalid_credentials", "invalid email or password")
	}
	if !user.IsActive {
		return nil, apperrors.InvalidState("account_disabled", "account is disabled")
	}
	return user, nil
}

// Get returns one account
func (s *UserService) Get(ctx context.Context, id int) (*models.User, error) {
	user, err := s.store.Users().Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.NotFound("user_not_found", "user not found")
	}
	return user, nil
}
