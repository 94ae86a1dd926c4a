package handlers

import (
	"encoding/json"
	"net/http"

	"unitsync-backend/internal/middleware"
	"unitsync-backend/internal/models"
	"unitsync-backend/internal/services"
	"unitsync-backend/pkg/utils"
)

type MaintenanceHandler struct {
	maintenance *services.MaintenanceService
}

func NewMaintenanceHandler(maintenance *services.MaintenanceService) *MaintenanceHandler {
	return &MaintenanceHandler{maintenance: maintenance}
}

// List returns the caller's maintenance tickets
func (h *MaintenanceHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "User ID not found in context", http.StatusUnauthorized)
		return
	}

	requests, err := h.maintenance.ListByLandlord(r.Context(), userID)
	if err != nil {
		utils.Error(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, requests)
}

func (h *MaintenanceHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		http.Error(w, "Invalid request ID", http.StatusBadRequest)
		return
	}

	request, err := h.maintenance.Get(r.Context(), id)
	if err != nil {
		utils.Error(w, err)
		return
	}
	if !canAccess(r.Context(), request.LandlordID) {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}
	utils.JSON(w, http.StatusOK, request)
}

// UpdateStatus moves a ticket through its lifecycle
func (h *MaintenanceHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		http.Error(w, "Invalid request ID", http.StatusBadRequest)
		return
	}

	request, err := h.maintenance.Get(r.Context(), id)
	if err != nil {
		utils.Error(w, err)
		return
	}
	if !canAccess(r.Context(), request.LandlordID) {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}

	var req models.UpdateMaintenanceStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	updated, err := h.maintenance.UpdateStatus(r.Context(), id, &req)
	if err != nil {
		utils.Error(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, updated)
}
