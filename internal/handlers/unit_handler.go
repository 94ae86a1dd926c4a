package handlers

import (
	"encoding/json"
	"net/http"

	"unitsync-backend/internal/models"
	"unitsync-backend/internal/services"
	"unitsync-backend/pkg/utils"
)

type UnitHandler struct {
	units      *services.UnitService
	properties *services.PropertyService
	tenants    *services.TenantService
}

func NewUnitHandler(units *services.UnitService, properties *services.PropertyService, tenants *services.TenantService) *UnitHandler {
	return &UnitHandler{units: units, properties: properties, tenants: tenants}
}

// checkPropertyAccess loads the property and verifies the caller owns it
func (h *UnitHandler) checkPropertyAccess(w http.ResponseWriter, r *http.Request, propertyID int) bool {
	property, err := h.properties.Get(r.Context(), propertyID)
	if err != nil {
		utils.Error(w, err)
		return false
	}
	if !canAccess(r.Context(), property.LandlordID) {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return false
	}
	return true
}

func (h *UnitHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateUnitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if !h.checkPropertyAccess(w, r, req.PropertyID) {
		return
	}

	unit, err := h.units.Create(r.Context(), &req)
	if err != nil {
		utils.Error(w, err)
		return
	}
	utils.JSON(w, http.StatusCreated, unit)
}

func (h *UnitHandler) ListByProperty(w http.ResponseWriter, r *http.Request) {
	propertyID, ok := pathID(r, "property_id")
	if !ok {
		http.Error(w, "Invalid property ID", http.StatusBadRequest)
		return
	}
	if !h.checkPropertyAccess(w, r, propertyID) {
		return
	}

	units, err := h.units.ListByProperty(r.Context(), propertyID)
	if err != nil {
		utils.Error(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, units)
}

func (h *UnitHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		http.Error(w, "Invalid unit ID", http.StatusBadRequest)
		return
	}

	unit, err := h.units.Get(r.Context(), id)
	if err != nil {
		utils.Error(w, err)
		return
	}
	if !h.checkPropertyAccess(w, r, unit.PropertyID) {
		return
	}
	utils.JSON(w, http.StatusOK, unit)
}

func (h *UnitHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		http.Error(w, "Invalid unit ID", http.StatusBadRequest)
		return
	}

	unit, err := h.units.Get(r.Context(), id)
	if err != nil {
		utils.Error(w, err)
		return
	}
	if !h.checkPropertyAccess(w, r, unit.PropertyID) {
		return
	}

	var req models.UpdateUnitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	updated, err := h.units.Update(r.Context(), id, &req)
	if err != nil {
		utils.Error(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, updated)
}

func (h *UnitHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		http.Error(w, "Invalid unit ID", http.StatusBadRequest)
		return
	}

	unit, err := h.units.Get(r.Context(), id)
	if err != nil {
		utils.Error(w, err)
		return
	}
	if !h.checkPropertyAccess(w, r, unit.PropertyID) {
		return
	}

	if err := h.units.Delete(r.Context(), id); err != nil {
		utils.Error(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, map[string]bool{"success": true})
}

// Assign moves a tenant into the unit
func (h *UnitHandler) Assign(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		http.Error(w, "Invalid unit ID", http.StatusBadRequest)
		return
	}

	unit, err := h.units.Get(r.Context(), id)
	if err != nil {
		utils.Error(w, err)
		return
	}
	if !h.checkPropertyAccess(w, r, unit.PropertyID) {
		return
	}

	var req models.AssignUnitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.tenants.AssignUnit(r.Context(), id, req.TenantID); err != nil {
		utils.Error(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, map[string]bool{"success": true})
}
