package handlers

import (
	"encoding/json"
	"net/http"

	"unitsync-backend/internal/middleware"
	"unitsync-backend/internal/models"
	"unitsync-backend/internal/services"
	"unitsync-backend/pkg/utils"
)

type PropertyHandler struct {
	properties *services.PropertyService
}

func NewPropertyHandler(properties *services.PropertyService) *PropertyHandler {
	return &PropertyHandler{properties: properties}
}

func (h *PropertyHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "User ID not found in context", http.StatusUnauthorized)
		return
	}

	var req models.CreatePropertyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	property, err := h.properties.Create(r.Context(), userID, &req)
	if err != nil {
		utils.Error(w, err)
		return
	}
	utils.JSON(w, http.StatusCreated, property)
}

func (h *PropertyHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "User ID not found in context", http.StatusUnauthorized)
		return
	}

	properties, err := h.properties.List(r.Context(), userID)
	if err != nil {
		utils.Error(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, properties)
}

func (h *PropertyHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		http.Error(w, "Invalid property ID", http.StatusBadRequest)
		return
	}

	property, err := h.properties.Get(r.Context(), id)
	if err != nil {
		utils.Error(w, err)
		return
	}
	if !canAccess(r.Context(), property.LandlordID) {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}
	utils.JSON(w, http.StatusOK, property)
}

func (h *PropertyHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		http.Error(w, "Invalid property ID", http.StatusBadRequest)
		return
	}

	property, err := h.properties.Get(r.Context(), id)
	if err != nil {
		utils.Error(w, err)
		return
	}
	if !canAccess(r.Context(), property.LandlordID) {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}

	var req models.UpdatePropertyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	updated, err := h.properties.Update(r.Context(), id, &req)
	if err != nil {
		utils.Error(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, updated)
}

func (h *PropertyHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		http.Error(w, "Invalid property ID", http.StatusBadRequest)
		return
	}

	property, err := h.properties.Get(r.Context(), id)
	if err != nil {
		utils.Error(w, err)
		return
	}
	if !canAccess(r.Context(), property.LandlordID) {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}

	if err := h.properties.Delete(r.Context(), id); err != nil {
		utils.Error(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, map[string]bool{"success": true})
}
