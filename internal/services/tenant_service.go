package services

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"fmt"
	"log"

	"unitsync-backend/internal/apperrors"
	"unitsync-backend/internal/models"
	"unitsync-backend/internal/repositories"
)

// TenantService manages tenant records, unit assignment and the tenant
// portal credential (phone + access code).
type TenantService struct {
	store repositories.Store
}

func NewTenantService(store repositories.Store) *TenantService {
	return &TenantService{store: store}
}

// Alphabet excludes ambiguous characters (0/O, 1/I/L)
const accessCodeAlphabet = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"
const accessCodeLength = 8

func generateAccessCode() (string, error) {
	buf := make([]byte, accessCodeLength)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate access code: %w", err)
	}
	for i, b := range buf {
		buf[i] = accessCodeAlphabet[int(b)%len(accessCodeAlphabet)]
	}
	return string(buf), nil
}

// Create registers a tenant under a landlord and issues a fresh portal
// access code. The code is returned once on the created record; the landlord
// shares it with the tenant out of band.
func (s *TenantService) Create(ctx context.Context, landlordID int, req *models.CreateTenantRequest) (*models.Tenant, error) {
	if req.FullName == "" {
		return nil, apperrors.Validation("missing_name", "full name is required")
	}
	if req.Phone == "" {
		return nil, apperrors.Validation("missing_phone", "phone is required")
	}
	if req.LeaseStart != "" && !ValidDate(req.LeaseStart) {
		return nil, apperrors.Validation("invalid_lease_start", "lease_start must be in YYYY-MM-DD format")
	}
	if req.LeaseEnd != "" && !ValidDate(req.LeaseEnd) {
		return nil, apperrors.Validation("invalid_lease_end", "lease_end must be in YYYY-MM-DD format")
	}

	code, err := generateAccessCode()
	if err != nil {
		return nil, err
	}

	tenant := &models.Tenant{
		LandlordID: landlordID,
		PropertyID: req.PropertyID,
		FullName:   req.FullName,
		Phone:      req.Phone,
		Email:      req.Email,
		AccessCode: code,
		LeaseStart: req.LeaseStart,
		LeaseEnd:   req.LeaseEnd,
		Status:     models.TenantStatusActive,
	}
	if err := s.store.Tenants().Create(ctx, tenant); err != nil {
		return nil, fmt.Errorf("failed to create tenant: %w", err)
	}
	return tenant, nil
}

// Get returns one tenant
func (s *TenantService) Get(ctx context.Context, id int) (*models.Tenant, error) {
	tenant, err := s.store.Tenants().Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if tenant == nil {
		return nil, apperrors.NotFound("tenant_not_found", "tenant not found")
	}
	return tenant, nil
}

// List returns a landlord's tenants
func (s *TenantService) List(ctx context.Context, landlordID int) ([]models.Tenant, error) {
	return s.store.Tenants().ListByLandlord(ctx, landlordID)
}

// Update patches a tenant's identity and lease fields
func (s *TenantService) Update(ctx context.Context, id int, req *models.UpdateTenantRequest) (*models.Tenant, error) {
	tenant, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	tenant.FullName = req.FullName
	tenant.Phone = req.Phone
	tenant.Email = req.Email
	tenant.LeaseStart = req.LeaseStart
	tenant.LeaseEnd = req.LeaseEnd
	if err := s.store.Tenants().Update(ctx, tenant); err != nil {
		return nil, err
	}
	return tenant, nil
}

// AssignUnit moves a tenant into a unit. Both back-references update in the
// same transaction so they never point past each other.
func (s *TenantService) AssignUnit(ctx context.Context, unitID, tenantID int) error {
	return s.store.WithTx(ctx, func(st repositories.Store) error {
		unit, err := st.Units().Get(ctx, unitID)
		if err != nil {
			return err
		}
		if unit == nil {
			return apperrors.NotFound("unit_not_found", "unit not found")
		}
		if unit.TenantID != nil {
			return apperrors.InvalidState("unit_occupied", "unit already has a tenant")
		}

		tenant, err := st.Tenants().Get(ctx, tenantID)
		if err != nil {
			return err
		}
		if tenant == nil {
			return apperrors.NotFound("tenant_not_found", "tenant not found")
		}
		if tenant.UnitID != nil {
			return apperrors.InvalidState("tenant_already_assigned", "tenant is already assigned to a unit")
		}

		if err := st.Units().SetTenant(ctx, unitID, &tenantID); err != nil {
			return err
		}
		return st.Tenants().SetAssignment(ctx, tenantID, &unitID, &unit.PropertyID, models.TenantStatusActive)
	})
}

// Vacate clears a tenant's unit assignment and marks them vacated. Ledger
// history stays; tenants are never hard-deleted.
func (s *TenantService) Vacate(ctx context.Context, tenantID int) error {
	err := s.store.WithTx(ctx, func(st repositories.Store) error {
		tenant, err := st.Tenants().Get(ctx, tenantID)
		if err != nil {
			return err
		}
		if tenant == nil {
			return apperrors.NotFound("tenant_not_found", "tenant not found")
		}
		if tenant.UnitID == nil {
			return apperrors.InvalidState("tenant_not_assigned", "tenant has no unit to vacate")
		}

		if err := st.Units().SetTenant(ctx, *tenant.UnitID, nil); err != nil {
			return err
		}
		return st.Tenants().SetAssignment(ctx, tenantID, nil, nil, models.TenantStatusVacated)
	})
	if err != nil {
		return err
	}

	log.Printf("[Tenant] tenant %d vacated", tenantID)
	return nil
}

// PortalLogin authenticates a tenant by phone and access code
func (s *TenantService) PortalLogin(ctx context.Context, req *models.PortalLoginRequest) (*models.Tenant, error) {
	if req.Phone == "" || req.AccessCode == "" {
		return nil, apperrors.Validation("missing_credentials", "phone and access code are required")
	}

	tenant, err := s.store.Tenants().GetByPhone(ctx, req.Phone)
	if err != nil {
		return nil, err
	}
	if tenant == nil || subtle.ConstantTimeCompare([]byte(tenant.AccessCode), []byte(req.AccessCode)) != 1 {
		return nil, apperrors.Validation("invalid_credentials", "invalid phone or access code")
	}
	return tenant, nil
}

// RegenerateAccessCode rotates a tenant's portal credential
func (s *TenantService) RegenerateAccessCode(ctx context.Context, tenantID int) (string, error) {
	tenant, err := s.Get(ctx, tenantID)
	if err != nil {
		return "", err
	}

	code, err := generateAccessCode()
	if err != nil {
		return "", err
	}
	tenant.AccessCode = code
	if err := s.store.Tenants().SetAccessCode(ctx, tenantID, code); err != nil {
		return "", err
	}
	return code, nil
}
