package handlers

import (
	"encoding/json"
	"net/http"

	"unitsync-backend/internal/middleware"
	"unitsync-backend/internal/models"
	"unitsync-backend/internal/services"
	"unitsync-backend/pkg/utils"
)

type TenantHandler struct {
	tenants *services.TenantService
	ledgers *services.LedgerService
}

func NewTenantHandler(tenants *services.TenantService, ledgers *services.LedgerService) *TenantHandler {
	return &TenantHandler{tenants: tenants, ledgers: ledgers}
}

// checkTenantAccess loads the tenant and verifies the caller owns them
func (h *TenantHandler) checkTenantAccess(w http.ResponseWriter, r *http.Request, tenantID int) (*models.Tenant, bool) {
	tenant, err := h.tenants.Get(r.Context(), tenantID)
	if err != nil {
		utils.Error(w, err)
		return nil, false
	}
	if !canAccess(r.Context(), tenant.LandlordID) {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return nil, false
	}
	return tenant, true
}

// Create registers a tenant. The response includes the generated portal
// access code once; it is not readable afterwards.
func (h *TenantHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "User ID not found in context", http.StatusUnauthorized)
		return
	}

	var req models.CreateTenantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	tenant, err := h.tenants.Create(r.Context(), userID, &req)
	if err != nil {
		utils.Error(w, err)
		return
	}
	utils.JSON(w, http.StatusCreated, map[string]interface{}{
		"tenant":      tenant,
		"access_code": tenant.AccessCode,
	})
}

func (h *TenantHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "User ID not found in context", http.StatusUnauthorized)
		return
	}

	tenants, err := h.tenants.List(r.Context(), userID)
	if err != nil {
		utils.Error(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, tenants)
}

func (h *TenantHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		http.Error(w, "Invalid tenant ID", http.StatusBadRequest)
		return
	}

	tenant, ok := h.checkTenantAccess(w, r, id)
	if !ok {
		return
	}
	utils.JSON(w, http.StatusOK, tenant)
}

func (h *TenantHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		http.Error(w, "Invalid tenant ID", http.StatusBadRequest)
		return
	}
	if _, ok := h.checkTenantAccess(w, r, id); !ok {
		return
	}

	var req models.UpdateTenantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	tenant, err := h.tenants.Update(r.Context(), id, &req)
	if err != nil {
		utils.Error(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, tenant)
}

// Vacate clears the tenant's unit assignment
func (h *TenantHandler) Vacate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		http.Error(w, "Invalid tenant ID", http.StatusBadRequest)
		return
	}
	if _, ok := h.checkTenantAccess(w, r, id); !ok {
		return
	}

	if err := h.tenants.Vacate(r.Context(), id); err != nil {
		utils.Error(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, map[string]bool{"success": true})
}

// RegenerateAccessCode rotates the tenant's portal credential and returns
// the new code once
func (h *TenantHandler) RegenerateAccessCode(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		http.Error(w, "Invalid tenant ID", http.StatusBadRequest)
		return
	}
	if _, ok := h.checkTenantAccess(w, r, id); !ok {
		return
	}

	code, err := h.tenants.RegenerateAccessCode(r.Context(), id)
	if err != nil {
		utils.Error(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, map[string]string{"access_code": code})
}

// PaymentHistory returns the tenant's ledger entries with nested payments
func (h *TenantHandler) PaymentHistory(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		http.Error(w, "Invalid tenant ID", http.StatusBadRequest)
		return
	}
	if _, ok := h.checkTenantAccess(w, r, id); !ok {
		return
	}

	history, err := h.ledgers.TenantPaymentHistory(r.Context(), id)
	if err != nil {
		utils.Error(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, history)
}
