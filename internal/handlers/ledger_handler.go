package handlers

import (
	"encoding/json"
	"net/http"

	"unitsync-backend/internal/middleware"
	"unitsync-backend/internal/models"
	"unitsync-backend/internal/services"
	"unitsync-backend/internal/timeutil"
	"unitsync-backend/pkg/utils"
)

type LedgerHandler struct {
	ledgers *services.LedgerService
}

func NewLedgerHandler(ledgers *services.LedgerService) *LedgerHandler {
	return &LedgerHandler{ledgers: ledgers}
}

// Generate creates the missing ledger entries for the caller's tenants for
// one billing month
func (h *LedgerHandler) Generate(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "User ID not found in context", http.StatusUnauthorized)
		return
	}

	var req models.GenerateLedgerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.Month == "" {
		req.Month = timeutil.CurrentMonth()
	}

	result, err := h.ledgers.Generate(r.Context(), userID, req.Month)
	if err != nil {
		utils.Error(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, result)
}

// List returns the caller's ledger for one month, defaulting to the
// current month
func (h *LedgerHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "User ID not found in context", http.StatusUnauthorized)
		return
	}

	month := r.URL.Query().Get("month")
	if month == "" {
		month = timeutil.CurrentMonth()
	}

	entries, err := h.ledgers.LandlordLedger(r.Context(), userID, month)
	if err != nil {
		utils.Error(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, entries)
}

// Payments lists one ledger entry's payments
func (h *LedgerHandler) Payments(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		http.Error(w, "Invalid ledger ID", http.StatusBadRequest)
		return
	}

	payments, err := h.ledgers.LedgerPayments(r.Context(), id)
	if err != nil {
		utils.Error(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, payments)
}
