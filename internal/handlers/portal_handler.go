package handlers

import (
	"encoding/json"
	"net/http"

	"unitsync-backend/internal/apperrors"
	"unitsync-backend/internal/auth"
	"unitsync-backend/internal/middleware"
	"unitsync-backend/internal/models"
	"unitsync-backend/internal/services"
	"unitsync-backend/pkg/utils"
)

// PortalHandler serves the tenant-facing portal: login, payment history,
// proof submission and maintenance tickets. All IDs come from the tenant's
// token and record, never from the request body.
type PortalHandler struct {
	tenants     *services.TenantService
	ledgers     *services.LedgerService
	submissions *services.SubmissionService
	maintenance *services.MaintenanceService
	jwtManager  *auth.JWTManager
}

func NewPortalHandler(
	tenants *services.TenantService,
	ledgers *services.LedgerService,
	submissions *services.SubmissionService,
	maintenance *services.MaintenanceService,
	jwtManager *auth.JWTManager,
) *PortalHandler {
	return &PortalHandler{
		tenants:     tenants,
		ledgers:     ledgers,
		submissions: submissions,
		maintenance: maintenance,
		jwtManager:  jwtManager,
	}
}

func (h *PortalHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.PortalLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	tenant, err := h.tenants.PortalLogin(r.Context(), &req)
	if err != nil {
		utils.Error(w, err)
		return
	}

	token, err := h.jwtManager.GenerateTenantToken(tenant)
	if err != nil {
		utils.Error(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, models.PortalAuthResponse{Token: token, Tenant: tenant})
}

func (h *PortalHandler) tenantFromContext(w http.ResponseWriter, r *http.Request) (*models.Tenant, bool) {
	tenantID, ok := middleware.GetTenantIDFromContext(r.Context())
	if !ok {
		http.Error(w, "Tenant ID not found in context", http.StatusUnauthorized)
		return nil, false
	}

	tenant, err := h.tenants.Get(r.Context(), tenantID)
	if err != nil {
		utils.Error(w, err)
		return nil, false
	}
	return tenant, true
}

// Me returns the logged-in tenant's record
func (h *PortalHandler) Me(w http.ResponseWriter, r *http.Request) {
	tenant, ok := h.tenantFromContext(w, r)
	if !ok {
		return
	}
	utils.JSON(w, http.StatusOK, tenant)
}

// History returns the tenant's ledger entries with nested payments
func (h *PortalHandler) History(w http.ResponseWriter, r *http.Request) {
	tenant, ok := h.tenantFromContext(w, r)
	if !ok {
		return
	}

	history, err := h.ledgers.TenantPaymentHistory(r.Context(), tenant.ID)
	if err != nil {
		utils.Error(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, history)
}

type portalSubmitRequest struct {
	Month           string  `json:"month"`
	Amount          float64 `json:"amount"`
	Method          string  `json:"method"`
	ReferenceNumber string  `json:"reference_number"`
	PaidDate        string  `json:"paid_date"`
	Notes           string  `json:"notes"`
	ProofImageURL   string  `json:"proof_image_url"`
}

// SubmitProof creates a pending payment submission for the logged-in tenant
func (h *PortalHandler) SubmitProof(w http.ResponseWriter, r *http.Request) {
	tenant, ok := h.tenantFromContext(w, r)
	if !ok {
		return
	}
	if tenant.UnitID == nil || tenant.PropertyID == nil {
		utils.Error(w, apperrors.MissingPrecondition("no_unit_assigned", "tenant has no unit assigned"))
		return
	}

	var req portalSubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	submissionID, err := h.submissions.Submit(r.Context(), &models.SubmitPaymentProofRequest{
		TenantID:        tenant.ID,
		UnitID:          *tenant.UnitID,
		PropertyID:      *tenant.PropertyID,
		LandlordID:      tenant.LandlordID,
		Month:           req.Month,
		Amount:          req.Amount,
		Method:          req.Method,
		ReferenceNumber: req.ReferenceNumber,
		PaidDate:        req.PaidDate,
		Notes:           req.Notes,
		ProofImageURL:   req.ProofImageURL,
	})
	if err != nil {
		utils.Error(w, err)
		return
	}
	utils.JSON(w, http.StatusCreated, map[string]interface{}{
		"submission_id": submissionID,
		"success":       true,
	})
}

// MySubmissions lists the tenant's own submissions
func (h *PortalHandler) MySubmissions(w http.ResponseWriter, r *http.Request) {
	tenant, ok := h.tenantFromContext(w, r)
	if !ok {
		return
	}

	subs, err := h.submissions.List(r.Context(), models.SubmissionFilter{
		TenantID: tenant.ID,
		Status:   r.URL.Query().Get("status"),
	})
	if err != nil {
		utils.Error(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, subs)
}

// CancelSubmission hard-deletes one of the tenant's pending submissions
func (h *PortalHandler) CancelSubmission(w http.ResponseWriter, r *http.Request) {
	tenant, ok := h.tenantFromContext(w, r)
	if !ok {
		return
	}

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
	if sub.TenantID != tenant.ID {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}

	if err := h.submissions.Cancel(r.Context(), id); err != nil {
		utils.Error(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, map[string]bool{"success": true})
}

type portalMaintenanceRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
}

// CreateMaintenance raises a ticket for the tenant's unit
func (h *PortalHandler) CreateMaintenance(w http.ResponseWriter, r *http.Request) {
	tenant, ok := h.tenantFromContext(w, r)
	if !ok {
		return
	}

	var req portalMaintenanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	request, err := h.maintenance.Create(r.Context(), &models.CreateMaintenanceRequest{
		TenantID:    tenant.ID,
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
	})
	if err != nil {
		utils.Error(w, err)
		return
	}
	utils.JSON(w, http.StatusCreated, request)
}

// MyMaintenance lists the tenant's tickets
func (h *PortalHandler) MyMaintenance(w http.ResponseWriter, r *http.Request) {
	tenant, ok := h.tenantFromContext(w, r)
	if !ok {
		return
	}

	requests, err := h.maintenance.ListByTenant(r.Context(), tenant.ID)
	if err != nil {
		utils.Error(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, requests)
}
