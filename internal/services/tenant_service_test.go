package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"unitsync-backend/internal/apperrors"
	"unitsync-backend/internal/models"
)

func TestCreateTenantIssuesAccessCode(t *testing.T) {
	f := newFakeStore()
	landlord, _ := seedLandlord(f)

	svc := NewTenantService(f)

	tenant, err := svc.Create(context.Background(), landlord.ID, &models.CreateTenantRequest{
		FullName: "Peter Mwangi",
		Phone:    "0700000001",
	})
	require.NoError(t, err)
	assert.Equal(t, models.TenantStatusActive, tenant.Status)
	assert.Len(t, tenant.AccessCode, accessCodeLength)
	for _, c := range tenant.AccessCode {
		assert.Contains(t, accessCodeAlphabet, string(c))
	}
}

func TestCreateTenantValidation(t *testing.T) {
	f := newFakeStore()
	svc := NewTenantService(f)
	ctx := context.Background()

	_, err := svc.Create(ctx, 1, &models.CreateTenantRequest{Phone: "0700000001"})
	assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))

	_, err = svc.Create(ctx, 1, &models.CreateTenantRequest{FullName: "Peter Mwangi"})
	assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))

	_, err = svc.Create(ctx, 1, &models.CreateTenantRequest{
		FullName: "Peter Mwangi", Phone: "0700000001", LeaseStart: "Jan 2025",
	})
	assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))
}

func TestAssignUnitKeepsBackReferencesInSync(t *testing.T) {
	f := newFakeStore()
	landlord, property := seedLandlord(f)
	unit := f.addUnit(models.Unit{PropertyID: property.ID, UnitNumber: "B2", RentAmount: 6000})
	tenant := f.addTenant(models.Tenant{LandlordID: landlord.ID, FullName: "Peter Mwangi", Phone: "0700000001"})

	svc := NewTenantService(f)
	ctx := context.Background()

	require.NoError(t, svc.AssignUnit(ctx, unit.ID, tenant.ID))

	gotUnit, _ := f.Units().Get(ctx, unit.ID)
	require.NotNil(t, gotUnit.TenantID)
	assert.Equal(t, tenant.ID, *gotUnit.TenantID)

	gotTenant, _ := f.Tenants().Get(ctx, tenant.ID)
	require.NotNil(t, gotTenant.UnitID)
	assert.Equal(t, unit.ID, *gotTenant.UnitID)
	require.NotNil(t, gotTenant.PropertyID)
	assert.Equal(t, property.ID, *gotTenant.PropertyID)
}

func TestAssignUnitRefusesOccupiedUnit(t *testing.T) {
	f := newFakeStore()
	landlord, property := seedLandlord(f)
	_, unit := f.addOccupant(landlord.ID, property.ID, 5000)
	other := f.addTenant(models.Tenant{LandlordID: landlord.ID, FullName: "Peter Mwangi", Phone: "0700000001"})

	svc := NewTenantService(f)

	err := svc.AssignUnit(context.Background(), unit.ID, other.ID)
	assert.True(t, apperrors.IsKind(err, apperrors.KindInvalidState))
}

func TestAssignUnitRefusesAssignedTenant(t *testing.T) {
	f := newFakeStore()
	landlord, property := seedLandlord(f)
	tenant, _ := f.addOccupant(landlord.ID, property.ID, 5000)
	spare := f.addUnit(models.Unit{PropertyID: property.ID, UnitNumber: "B2", RentAmount: 6000})

	svc := NewTenantService(f)

	err := svc.AssignUnit(context.Background(), spare.ID, tenant.ID)
	assert.True(t, apperrors.IsKind(err, apperrors.KindInvalidState))
}

func TestVacateClearsAssignmentKeepsLedger(t *testing.T) {
	f := newFakeStore()
	landlord, property := seedLandlord(f)
	tenant, unit := f.addOccupant(landlord.ID, property.ID, 5000)

	tenants := NewTenantService(f)
	ledgers := NewLedgerService(f)
	ctx := context.Background()

	_, err := ledgers.Generate(ctx, landlord.ID, "2025-02")
	require.NoError(t, err)

	require.NoError(t, tenants.Vacate(ctx, tenant.ID))

	gotTenant, _ := f.Tenants().Get(ctx, tenant.ID)
	assert.Nil(t, gotTenant.UnitID)
	assert.Nil(t, gotTenant.PropertyID)
	assert.Equal(t, models.TenantStatusVacated, gotTenant.Status)

	gotUnit, _ := f.Units().Get(ctx, unit.ID)
	assert.Nil(t, gotUnit.TenantID)

	// Ledger history survives the move-out
	history, err := ledgers.TenantPaymentHistory(ctx, tenant.ID)
	require.NoError(t, err)
	assert.Len(t, history, 1)

	err = tenants.Vacate(ctx, tenant.ID)
	assert.True(t, apperrors.IsKind(err, apperrors.KindInvalidState))
}

func TestPortalLogin(t *testing.T) {
	f := newFakeStore()
	landlord, property := seedLandlord(f)
	tenant, _ := f.addOccupant(landlord.ID, property.ID, 5000)

	svc := NewTenantService(f)
	ctx := context.Background()

	got, err := svc.PortalLogin(ctx, &models.PortalLoginRequest{Phone: tenant.Phone, AccessCode: "TESTCODE"})
	require.NoError(t, err)
	assert.Equal(t, tenant.ID, got.ID)

	_, err = svc.PortalLogin(ctx, &models.PortalLoginRequest{Phone: tenant.Phone, AccessCode: "WRONGCODE"})
	assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))

	_, err = svc.PortalLogin(ctx, &models.PortalLoginRequest{Phone: "0799999999", AccessCode: "TESTCODE"})
	assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))

	_, err = svc.PortalLogin(ctx, &models.PortalLoginRequest{})
	assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))
}

func TestRegenerateAccessCode(t *testing.T) {
	f := newFakeStore()
	landlord, property := seedLandlord(f)
	tenant, _ := f.addOccupant(landlord.ID, property.ID, 5000)

	svc := NewTenantService(f)
	ctx := context.Background()

	code, err := svc.RegenerateAccessCode(ctx, tenant.ID)
	require.NoError(t, err)
	assert.Len(t, code, accessCodeLength)
	assert.NotEqual(t, "TESTCODE", code)

	// Old code no longer works, new one does
	_, err = svc.PortalLogin(ctx, &models.PortalLoginRequest{Phone: tenant.Phone, AccessCode: "TESTCODE"})
	assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))

	got, err := svc.PortalLogin(ctx, &models.PortalLoginRequest{Phone: tenant.Phone, AccessCode: code})
	require.NoError(t, err)
	assert.Equal(t, tenant.ID, got.ID)
}
