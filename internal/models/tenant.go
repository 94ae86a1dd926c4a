package models

import "time"

// Tenant statuses
const (
	TenantStatusActive  = "active"
	TenantStatusVacated = "vacated"
)

type Tenant struct {
	ID         int       `json:"id"`
	LandlordID int       `json:"landlord_id"`
	PropertyID *int      `json:"property_id,omitempty"`
	UnitID     *int      `json:"unit_id,omitempty"`
	FullName   string    `json:"full_name"`
	Phone      string    `json:"phone"`
	Email      string    `json:"email"`
	AccessCode string    `json:"-"` // Portal login credential, shared out of band
	LeaseStart string    `json:"lease_start"`
	LeaseEnd   string    `json:"lease_end"`
	Status     string    `json:"status"` // active or vacated
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// CreateTenantRequest represents the request body for creating a tenant
type CreateTenantRequest struct {
	PropertyID *int   `json:"property_id"`
	FullName   string `json:"full_name"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
	LeaseStart string `json:"lease_start"`
	LeaseEnd   string `json:"lease_end"`
}

// UpdateTenantRequest represents the request body for updating a tenant
type UpdateTenantRequest struct {
	FullName   string `json:"full_name"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
	LeaseStart string `json:"lease_start"`
	LeaseEnd   string `json:"lease_end"`
}

// PortalLoginRequest is the tenant portal login body
type PortalLoginRequest struct {
	Phone      string `json:"phone"`
	AccessCode string `json:"access_code"`
}

// PortalAuthResponse is returned after a successful portal login
type PortalAuthResponse struct {
	Token  string  `json:"token"`
	Tenant *Tenant `json:"tenant"`
}
