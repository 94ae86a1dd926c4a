package models

import "time"

// Unit is a rentable space inside a property. TenantID is the back-reference
// to the current occupant; it must mirror the tenant's UnitID at all times.
type Unit struct {
	ID         int       `json:"id"`
	PropertyID int       `json:"property_id"`
	UnitNumber string    `json:"unit_number"`
	RentAmount float64   `json:"rent_amount"`
	TenantID   *int      `json:"tenant_id,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// CreateUnitRequest represents the request body for creating a unit
type CreateUnitRequest struct {
	PropertyID int     `json:"property_id"`
	UnitNumber string  `json:"unit_number"`
	RentAmount float64 `json:"rent_amount"`
}

// UpdateUnitRequest represents the request body for updating a unit
type UpdateUnitRequest struct {
	UnitNumber string  `json:"unit_number"`
	RentAmount float64 `json:"rent_amount"`
}

// AssignUnitRequest assigns a tenant to a unit
type AssignUnitRequest struct {
	TenantID int `json:"tenant_id"`
}
