package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"unitsync-backend/internal/middleware"
	"unitsync-backend/internal/models"
	"unitsync-backend/internal/services"
	"unitsync-backend/internal/timeutil"
	"unitsync-backend/pkg/utils"
)

type PaymentHandler struct {
	ledgers *services.LedgerService
	reports *services.ReportService
}

func NewPaymentHandler(ledgers *services.LedgerService, reports *services.ReportService) *PaymentHandler {
	return &PaymentHandler{ledgers: ledgers, reports: reports}
}

// Record appends an authoritative payment against a tenant's month
func (h *PaymentHandler) Record(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "User ID not found in context", http.StatusUnauthorized)
		return
	}

	var req models.RecordPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	req.LandlordID = userID

	if err := h.ledgers.RecordPayment(r.Context(), &req); err != nil {
		utils.Error(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, map[string]bool{"success": true})
}

// Delete removes a payment and recomputes its ledger entry
func (h *PaymentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		http.Error(w, "Invalid payment ID", http.StatusBadRequest)
		return
	}

	payment, err := h.ledgers.GetPayment(r.Context(), id)
	if err != nil {
		utils.Error(w, err)
		return
	}
	if !canAccess(r.Context(), payment.RecordedBy) {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}

	if err := h.ledgers.DeletePayment(r.Context(), id); err != nil {
		utils.Error(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, map[string]bool{"success": true})
}

// Receipt streams a payment receipt PDF
func (h *PaymentHandler) Receipt(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		http.Error(w, "Invalid payment ID", http.StatusBadRequest)
		return
	}

	pdf, err := h.reports.PaymentReceipt(r.Context(), id)
	if err != nil {
		utils.Error(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="receipt-%d.pdf"`, id))
	w.Write(pdf)
}

// Statement streams the caller's monthly ledger statement PDF
func (h *PaymentHandler) Statement(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "User ID not found in context", http.StatusUnauthorized)
		return
	}

	month := r.URL.Query().Get("month")
	if month == "" {
		month = timeutil.CurrentMonth()
	}

	pdf, err := h.reports.MonthlyStatement(r.Context(), userID, month)
	if err != nil {
		utils.Error(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="statement-%s.pdf"`, month))
	w.Write(pdf)
}
