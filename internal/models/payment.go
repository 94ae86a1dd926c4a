package models

import "time"

// Payment methods accepted for rent
const (
	PaymentMethodMpesa = "mpesa"
	PaymentMethodBank  = "bank"
	PaymentMethodCash  = "cash"
)

// Payment is an authoritative record of money received against a ledger
// entry. Payments are immutable once created; the only correction mechanism
// is deletion followed by ledger recomputation.
type Payment struct {
	ID              int       `json:"id"`
	LedgerID        int       `json:"ledger_id"`
	TenantID        int       `json:"tenant_id"`
	Amount          float64   `json:"amount"`
	Method          string    `json:"method"`
	ReferenceNumber string    `json:"reference_number"`
	PaidDate        string    `json:"paid_date"` // YYYY-MM-DD
	Month           string    `json:"month"`     // YYYY-MM
	Notes           string    `json:"notes"`
	RecordedBy      int       `json:"recorded_by"`
	CreatedAt       time.Time `json:"created_at"`
}

// RecordPaymentRequest represents the request body for recording a payment
type RecordPaymentRequest struct {
	TenantID        int     `json:"tenant_id"`
	LandlordID      int     `json:"landlord_id"`
	Month           string  `json:"month"`
	Amount          float64 `json:"amount"`
	Method          string  `json:"method"`
	ReferenceNumber string  `json:"reference_number"`
	PaidDate        string  `json:"paid_date"`
	Notes           string  `json:"notes"`
}
