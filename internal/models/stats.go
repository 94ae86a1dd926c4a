package models

// DashboardStats summarizes a landlord's portfolio for one billing month
type DashboardStats struct {
	Month              string  `json:"month"`
	Properties         int     `json:"properties"`
	Tenants            int     `json:"tenants"`
	ActiveTenants      int     `json:"active_tenants"`
	LedgerEntries      int     `json:"ledger_entries"`
	AmountDue          float64 `json:"amount_due"`
	AmountCollected    float64 `json:"amount_collected"`
	CollectionRate     float64 `json:"collection_rate"` // 0..100
	PendingSubmissions int     `json:"pending_submissions"`
}
