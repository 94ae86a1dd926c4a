package handlers

import (
	"encoding/json"
	"net/http"

	"unitsync-backend/internal/auth"
	"unitsync-backend/internal/middleware"
	"unitsync-backend/internal/models"
	"unitsync-backend/internal/services"
	"unitsync-backend/pkg/utils"
)

type AuthHandler struct {
	users      *services.UserService
	totp       *services.TOTPService
	jwtManager *auth.JWTManager
}

func NewAuthHandler(users *services.UserService, totp *services.TOTPService, jwtManager *auth.JWTManager) *AuthHandler {
	return &AuthHandler{users: users, totp: totp, jwtManager: jwtManager}
}

func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req models.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	user, err := h.users.Signup(r.Context(), &req)
	if err != nil {
		utils.Error(w, err)
		return
	}

	token, err := h.jwtManager.GenerateToken(user)
	if err != nil {
		utils.Error(w, err)
		return
	}

	utils.JSON(w, http.StatusCreated, models.AuthResponse{Token: token, User: user})
}

// Login issues a session token, or a short-lived 2FA token when the account
// has an authenticator enrolled
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	user, err := h.users.Login(r.Context(), &req)
	if err != nil {
		utils.Error(w, err)
		return
	}

	if user.TOTPEnabled {
		tempToken, err := h.jwtManager.GenerateTempToken(user)
		if err != nil {
			utils.Error(w, err)
			return
		}
		utils.JSON(w, http.StatusOK, models.AuthResponse{Token: tempToken, TwoFactorRequired: true})
		return
	}

	token, err := h.jwtManager.GenerateToken(user)
	if err != nil {
		utils.Error(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, models.AuthResponse{Token: token, User: user})
}

// Verify2FA exchanges a temp token plus an authenticator code for a full
// session token
func (h *AuthHandler) Verify2FA(w http.ResponseWriter, r *http.Request) {
	var req models.TwoFactorVerifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	claims, err := h.jwtManager.ValidateTempToken(req.TempToken)
	if err != nil {
		http.Error(w, "Invalid or expired token", http.StatusUnauthorized)
		return
	}

	if err := h.totp.Verify(r.Context(), claims.UserID, req.Code); err != nil {
		utils.Error(w, err)
		return
	}

	user, err := h.users.Get(r.Context(), claims.UserID)
	if err != nil {
		utils.Error(w, err)
		return
	}

	token, err := h.jwtManager.GenerateToken(user)
	if err != nil {
		utils.Error(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, models.AuthResponse{Token: token, User: user})
}

// Me returns the authenticated account
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "User ID not found in context", http.StatusUnauthorized)
		return
	}

	user, err := h.users.Get(r.Context(), userID)
	if err != nil {
		utils.Error(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, user)
}
