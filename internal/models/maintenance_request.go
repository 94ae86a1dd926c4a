package models

import "time"

// Maintenance request statuses
const (
	MaintenanceStatusOpen       = "open"
	MaintenanceStatusInProgress = "in_progress"
	MaintenanceStatusResolved   = "resolved"
	MaintenanceStatusCancelled  = "cancelled"
)

type MaintenanceRequest struct {
	ID              int       `json:"id"`
	TenantID        int       `json:"tenant_id"`
	UnitID          int       `json:"unit_id"`
	PropertyID      int       `json:"property_id"`
	LandlordID      int       `json:"landlord_id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Priority        string    `json:"priority"` // low, normal, high, urgent
	Status          string    `json:"status"`
	ResolutionNotes string    `json:"resolution_notes,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// CreateMaintenanceRequest represents the request body for raising a ticket
type CreateMaintenanceRequest struct {
	TenantID    int    `json:"tenant_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
}

// UpdateMaintenanceStatusRequest moves a ticket through its lifecycle
type UpdateMaintenanceStatusRequest struct {
	Status          string `json:"status"`
	ResolutionNotes string `json:"resolution_notes"`
}
