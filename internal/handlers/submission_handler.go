package handlers

import (
	"encoding/json"
	"net/http"

	"unitsync-backend/internal/middleware"
	"unitsync-backend/internal/models"
	"unitsync-backend/internal/services"
	"unitsync-backend/pkg/utils"
)

type SubmissionHandler struct {
	submissions *services.SubmissionService
}

func NewSubmissionHandler(submissions *services.SubmissionService) *SubmissionHandler {
	return &SubmissionHandler{submissions: submissions}
}

// List returns the caller's submissions, optionally filtered by status
func (h *SubmissionHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "User ID not found in context", http.StatusUnauthorized)
		return
	}

	subs, err := h.submissions.List(r.Context(), models.SubmissionFilter{
		LandlordID: userID,
		Status:     r.URL.Query().Get("status"),
	})
	if err != nil {
		utils.Error(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, subs)
}

// ListAll is the admin view across landlords
func (h *SubmissionHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	subs, err := h.submissions.List(r.Context(), models.SubmissionFilter{
		Status: r.URL.Query().Get("status"),
	})
	if err != nil {
		utils.Error(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, subs)
}

func (h *SubmissionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		http.Error(w, "Invalid submission ID", http.StatusBadRequest)
		return
	}

	sub, err := h.submissions.Get(r.Context(), id)
	if err != nil {
		utils.Error(w, err)
		return
	}
	if !canAccess(r.Context(), sub.LandlordID) {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}
	utils.JSON(w, http.StatusOK, sub)
}

// Approve converts a pending submission into a payment
func (h *SubmissionHandler) Approve(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		http.Error(w, "Invalid submission ID", http.StatusBadRequest)
		return
	}
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "User ID not found in context", http.StatusUnauthorized)
		return
	}

	sub, err := h.submissions.Get(r.Context(), id)
	if err != nil {
		utils.Error(w, err)
		return
	}
	if !canAccess(r.Context(), sub.LandlordID) {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}

	paymentID, err := h.submissions.Approve(r.Context(), id, userID)
	if err != nil {
		utils.Error(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, map[string]interface{}{
		"success":    true,
		"payment_id": paymentID,
	})
}

// Reject marks a pending submission rejected with a reason
func (h *SubmissionHandler) Reject(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		http.Error(w, "Invalid submission ID", http.StatusBadRequest)
		return
	}
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "User ID not found in context", http.StatusUnauthorized)
		return
	}

	sub, err := h.submissions.Get(r.Context(), id)
	if err != nil {
		utils.Error(w, err)
		return
	}
	if !canAccess(r.Context(), sub.LandlordID) {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}

	var req models.ReviewSubmissionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.submissions.Reject(r.Context(), id, userID, req.Reason); err != nil {
		utils.Error(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, map[string]bool{"success": true})
}
