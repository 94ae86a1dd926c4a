package models

import "time"

// Ledger statuses derived from (amount_due, amount_paid, due_date, today)
const (
	LedgerStatusUnpaid  = "unpaid"
	LedgerStatusPartial = "partial"
	LedgerStatusPaid    = "paid"
	LedgerStatusOverdue = "overdue"
)

// RentLedger is one month's rent obligation for one tenant. AmountPaid is a
// cached total; the payments table is authoritative and every write path
// recomputes the cache by resumming.
type RentLedger struct {
	ID         int       `json:"id"`
	TenantID   int       `json:"tenant_id"`
	UnitID     int       `json:"unit_id"`
	PropertyID int       `json:"property_id"`
	LandlordID int       `json:"landlord_id"`
	Month      string    `json:"month"` // YYYY-MM
	AmountDue  float64   `json:"amount_due"`
	AmountPaid float64   `json:"amount_paid"`
	Status     string    `json:"status"`
	DueDate    string    `json:"due_date"` // YYYY-MM-DD, always first of month
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// LedgerDetail is a ledger entry enriched with tenant/unit/property info
// for landlord-facing listings
type LedgerDetail struct {
	RentLedger
	TenantName   string `json:"tenant_name"`
	TenantPhone  string `json:"tenant_phone"`
	UnitNumber   string `json:"unit_number"`
	PropertyName string `json:"property_name"`
}

// TenantLedgerHistory is one ledger entry with its payments nested,
// newest payments first
type TenantLedgerHistory struct {
	RentLedger
	Payments []Payment `json:"payments"`
}

// GenerateLedgerRequest triggers monthly ledger generation
type GenerateLedgerRequest struct {
	LandlordID int    `json:"landlord_id"`
	Month      string `json:"month"` // YYYY-MM
}

// SkippedTenant reports a tenant the generator could not bill and why
type SkippedTenant struct {
	TenantID int    `json:"tenant_id"`
	Reason   string `json:"reason"`
}

// GenerateLedgerResult is the generator outcome: entries created plus the
// tenants that were skipped
type GenerateLedgerResult struct {
	Created int             `json:"created"`
	Skipped []SkippedTenant `json:"skipped"`
}
