package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"unitsync-backend/internal/apperrors"
	"unitsync-backend/internal/models"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to string
		want     bool
	}{
		{"open", "in_progress", true},
		{"open", "resolved", true},
		{"open", "cancelled", true},
		{"in_progress", "resolved", true},
		{"in_progress", "cancelled", true},
		{"in_progress", "open", false},
		{"resolved", "open", false},
		{"resolved", "in_progress", false},
		{"cancelled", "resolved", false},
		{"open", "open", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, canTransition(tt.from, tt.to), "%s -> %s", tt.from, tt.to)
	}
}

func TestCreateMaintenanceRequest(t *testing.T) {
	f := newFakeStore()
	landlord, property := seedLandlord(f)
	tenant, unit := f.addOccupant(landlord.ID, property.ID, 5000)

	svc := NewMaintenanceService(f)

	request, err := svc.Create(context.Background(), &models.CreateMaintenanceRequest{
		TenantID:    tenant.ID,
		Title:       "Leaking kitchen tap",
		Description: "Dripping since Monday",
	})
	require.NoError(t, err)
	assert.Equal(t, models.MaintenanceStatusOpen, request.Status)
	assert.Equal(t, "normal", request.Priority)
	assert.Equal(t, unit.ID, request.UnitID)
	assert.Equal(t, property.ID, request.PropertyID)
	assert.Equal(t, landlord.ID, request.LandlordID)
}

func TestCreateMaintenanceValidation(t *testing.T) {
	f := newFakeStore()
	landlord, property := seedLandlord(f)
	tenant, _ := f.addOccupant(landlord.ID, property.ID, 5000)

	svc := NewMaintenanceService(f)
	ctx := context.Background()

	_, err := svc.Create(ctx, &models.CreateMaintenanceRequest{TenantID: tenant.ID})
	assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))

	_, err = svc.Create(ctx, &models.CreateMaintenanceRequest{
		TenantID: tenant.ID, Title: "Broken lock", Priority: "asap",
	})
	assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))
}

func TestCreateMaintenanceRequiresUnit(t *testing.T) {
	f := newFakeStore()
	landlord, _ := seedLandlord(f)
	tenant := f.addTenant(models.Tenant{LandlordID: landlord.ID, FullName: "Peter Mwangi", Phone: "0700000001"})

	svc := NewMaintenanceService(f)

	_, err := svc.Create(context.Background(), &models.CreateMaintenanceRequest{
		TenantID: tenant.ID, Title: "No hot water",
	})
	assert.True(t, apperrors.IsKind(err, apperrors.KindMissingPrecondition))
}

func TestUpdateMaintenanceStatus(t *testing.T) {
	f := newFakeStore()
	landlord, property := seedLandlord(f)
	tenant, _ := f.addOccupant(landlord.ID, property.ID, 5000)

	svc := NewMaintenanceService(f)
	ctx := context.Background()

	request, err := svc.Create(ctx, &models.CreateMaintenanceRequest{
		TenantID: tenant.ID, Title: "Leaking kitchen tap",
	})
	require.NoError(t, err)

	updated, err := svc.UpdateStatus(ctx, request.ID, &models.UpdateMaintenanceStatusRequest{
		Status: models.MaintenanceStatusInProgress,
	})
	require.NoError(t, err)
	assert.Equal(t, models.MaintenanceStatusInProgress, updated.Status)

	updated, err = svc.UpdateStatus(ctx, request.ID, &models.UpdateMaintenanceStatusRequest{
		Status: models.MaintenanceStatusResolved, ResolutionNotes: "Washer replaced",
	})
	require.NoError(t, err)
	assert.Equal(t, models.MaintenanceStatusResolved, updated.Status)
	assert.Equal(t, "Washer replaced", updated.ResolutionNotes)

	// Terminal tickets cannot move again
	_, err = svc.UpdateStatus(ctx, request.ID, &models.UpdateMaintenanceStatusRequest{
		Status: models.MaintenanceStatusInProgress,
	})
	assert.True(t, apperrors.IsKind(err, apperrors.KindInvalidState))
}

func TestUpdateMaintenanceStatusRejectsUnknownStatus(t *testing.T) {
	f := newFakeStore()
	svc := NewMaintenanceService(f)

	_, err := svc.UpdateStatus(context.Background(), 1, &models.UpdateMaintenanceStatusRequest{Status: "done"})
	assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))
}

func TestUpdateMaintenanceStatusNotFound(t *testing.T) {
	f := newFakeStore()
	svc := NewMaintenanceService(f)

	_, err := svc.UpdateStatus(context.Background(), 9, &models.UpdateMaintenanceStatusRequest{
		Status: models.MaintenanceStatusResolved,
	})
	assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
}
