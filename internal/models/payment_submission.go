package models

import "time"

// Submission statuses. Pending submissions may be cancelled (hard delete);
// approved and rejected are terminal.
const (
	SubmissionStatusPending  = "pending"
	SubmissionStatusApproved = "approved"
	SubmissionStatusRejected = "rejected"
)

// PaymentSubmission is a tenant-asserted, unverified claim of payment
// awaiting landlord review. Approval materializes exactly one Payment and
// links it via PaymentID.
type PaymentSubmission struct {
	ID              int        `json:"id"`
	TenantID        int        `json:"tenant_id"`
	UnitID          int        `json:"unit_id"`
	PropertyID      int        `json:"property_id"`
	LandlordID      int        `json:"landlord_id"`
	Month           string     `json:"month"` // YYYY-MM
	Amount          float64    `json:"amount"`
	Method          string     `json:"method"`
	ReferenceNumber string     `json:"reference_number"`
	PaidDate        string     `json:"paid_date"` // YYYY-MM-DD
	Notes           string     `json:"notes"`
	ProofImageURL   string     `json:"proof_image_url"`
	Status          string     `json:"status"`
	ReviewedBy      *int       `json:"reviewed_by,omitempty"`
	ReviewedAt      *time.Time `json:"reviewed_at,omitempty"`
	RejectionReason string     `json:"rejection_reason,omitempty"`
	PaymentID       *int       `json:"payment_id,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

// SubmissionDetail is a submission enriched with tenant/unit/property info
type SubmissionDetail struct {
	PaymentSubmission
	TenantName   string `json:"tenant_name"`
	TenantPhone  string `json:"tenant_phone"`
	UnitNumber   string `json:"unit_number"`
	PropertyName string `json:"property_name"`
}

// SubmitPaymentProofRequest represents the request body for a new submission
type SubmitPaymentProofRequest struct {
	TenantID        int     `json:"tenant_id"`
	UnitID          int     `json:"unit_id"`
	PropertyID      int     `json:"property_id"`
	LandlordID      int     `json:"landlord_id"`
	Month           string  `json:"month"`
	Amount          float64 `json:"amount"`
	Method          string  `json:"method"`
	ReferenceNumber string  `json:"reference_number"`
	PaidDate        string  `json:"paid_date"`
	Notes           string  `json:"notes"`
	ProofImageURL   string  `json:"proof_image_url"`
}

// ReviewSubmissionRequest carries the reviewer decision inputs
type ReviewSubmissionRequest struct {
	Reason string `json:"reason"` // required for rejection
}

// SubmissionFilter narrows submission listings
type SubmissionFilter struct {
	LandlordID int    // 0 = all landlords
	TenantID   int    // 0 = all tenants
	Status     string // "" = all statuses
}
