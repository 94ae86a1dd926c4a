package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"unitsync-backend/internal/apperrors"
	"unitsync-backend/internal/models"
)

func seedLandlord(f *fakeStore) (*models.User, *models.Property) {
	landlord := f.addUser(models.User{Name: "Mary Otieno", Email: "mary@example.com", Role: "landlord"})
	property := f.addProperty(models.Property{LandlordID: landlord.ID, Name: "Sunrise Court", City: "Nairobi"})
	return landlord, property
}

func TestGenerateCreatesOneEntryPerOccupiedTenant(t *testing.T) {
	f := newFakeStore()
	landlord, property := seedLandlord(f)
	tenant, _ := f.addOccupant(landlord.ID, property.ID, 5000)
	unassigned := f.addTenant(models.Tenant{LandlordID: landlord.ID, FullName: "Peter Mwangi", Phone: "0700000001"})

	svc := NewLedgerService(f)

	result, err := svc.Generate(context.Background(), landlord.ID, "2025-02")
	require.NoError(t, err)
	assert.Equal(t, 1, result.Created)
	require.Len(t, result.Skipped, 1)
	assert.Equal(t, unassigned.ID, result.Skipped[0].TenantID)
	assert.Equal(t, "no unit assigned", result.Skipped[0].Reason)

	ledger, err := f.Ledgers().GetByTenantMonth(context.Background(), tenant.ID, "2025-02")
	require.NoError(t, err)
	require.NotNil(t, ledger)
	assert.Equal(t, 5000.0, ledger.AmountDue)
	assert.Equal(t, 0.0, ledger.AmountPaid)
	assert.Equal(t, models.LedgerStatusUnpaid, ledger.Status)
	assert.Equal(t, "2025-02-01", ledger.DueDate)
	assert.Equal(t, landlord.ID, ledger.LandlordID)
}

func TestGenerateIsIdempotent(t *testing.T) {
	f := newFakeStore()
	landlord, property := seedLandlord(f)
	f.addOccupant(landlord.ID, property.ID, 5000)

	svc := NewLedgerService(f)

	first, err := svc.Generate(context.Background(), landlord.ID, "2025-02")
	require.NoError(t, err)
	assert.Equal(t, 1, first.Created)

	second, err := svc.Generate(context.Background(), landlord.ID, "2025-02")
	require.NoError(t, err)
	assert.Equal(t, 0, second.Created)
	assert.Len(t, f.ledgers, 1)
}

func TestGenerateFillsGapsOnly(t *testing.T) {
	f := newFakeStore()
	landlord, property := seedLandlord(f)
	f.addOccupant(landlord.ID, property.ID, 5000)

	svc := NewLedgerService(f)
	_, err := svc.Generate(context.Background(), landlord.ID, "2025-02")
	require.NoError(t, err)

	// New tenant moves in; re-running only bills them
	f.addOccupant(landlord.ID, property.ID, 7500)
	result, err := svc.Generate(context.Background(), landlord.ID, "2025-02")
	require.NoError(t, err)
	assert.Equal(t, 1, result.Created)
	assert.Len(t, f.ledgers, 2)
}

func TestGenerateRejectsBadMonth(t *testing.T) {
	f := newFakeStore()
	svc := NewLedgerService(f)

	_, err := svc.Generate(context.Background(), 1, "2025-2")
	assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))
}

func TestRecordPaymentPartialThenPaid(t *testing.T) {
	f := newFakeStore()
	landlord, property := seedLandlord(f)
	tenant, _ := f.addOccupant(landlord.ID, property.ID, 5000)

	svc := NewLedgerService(f)
	_, err := svc.Generate(context.Background(), landlord.ID, "2025-02")
	require.NoError(t, err)

	err = svc.RecordPayment(context.Background(), &models.RecordPaymentRequest{
		TenantID: tenant.ID, LandlordID: landlord.ID, Month: "2025-02",
		Amount: 3000, Method: "mpesa", PaidDate: "2025-02-05",
	})
	require.NoError(t, err)

	ledger, _ := f.Ledgers().GetByTenantMonth(context.Background(), tenant.ID, "2025-02")
	assert.Equal(t, 3000.0, ledger.AmountPaid)
	assert.Equal(t, models.LedgerStatusPartial, ledger.Status)

	err = svc.RecordPayment(context.Background(), &models.RecordPaymentRequest{
		TenantID: tenant.ID, LandlordID: landlord.ID, Month: "2025-02",
		Amount: 2000, Method: "cash", PaidDate: "2025-02-20",
	})
	require.NoError(t, err)

	ledger, _ = f.Ledgers().GetByTenantMonth(context.Background(), tenant.ID, "2025-02")
	assert.Equal(t, 5000.0, ledger.AmountPaid)
	assert.Equal(t, models.LedgerStatusPaid, ledger.Status)

	// Cached total always equals the resummed payment rows
	total, _ := f.Payments().SumByLedger(context.Background(), ledger.ID)
	assert.Equal(t, ledger.AmountPaid, total)
}

func TestRecordPaymentAutoCreatesLedger(t *testing.T) {
	f := newFakeStore()
	landlord, property := seedLandlord(f)
	tenant, _ := f.addOccupant(landlord.ID, property.ID, 8000)

	svc := NewLedgerService(f)

	// No generator run; recording creates the entry on the fly
	err := svc.RecordPayment(context.Background(), &models.RecordPaymentRequest{
		TenantID: tenant.ID, LandlordID: landlord.ID, Month: "2025-03",
		Amount: 8000, Method: "bank", PaidDate: "2025-03-01",
	})
	require.NoError(t, err)

	ledger, _ := f.Ledgers().GetByTenantMonth(context.Background(), tenant.ID, "2025-03")
	require.NotNil(t, ledger)
	assert.Equal(t, 8000.0, ledger.AmountDue)
	assert.Equal(t, 8000.0, ledger.AmountPaid)
	assert.Equal(t, models.LedgerStatusPaid, ledger.Status)
	assert.Equal(t, "2025-03-01", ledger.DueDate)
}

func TestRecordPaymentRequiresAssignedUnit(t *testing.T) {
	f := newFakeStore()
	landlord, _ := seedLandlord(f)
	tenant := f.addTenant(models.Tenant{LandlordID: landlord.ID, FullName: "Peter Mwangi", Phone: "0700000001"})

	svc := NewLedgerService(f)
	err := svc.RecordPayment(context.Background(), &models.RecordPaymentRequest{
		TenantID: tenant.ID, LandlordID: landlord.ID, Month: "2025-02",
		Amount: 5000, Method: "mpesa", PaidDate: "2025-02-05",
	})
	assert.True(t, apperrors.IsKind(err, apperrors.KindMissingPrecondition))

	// Precondition failure must leave no writes behind
	assert.Empty(t, f.ledgers)
	assert.Empty(t, f.payments)
}

func TestRecordPaymentUnknownTenant(t *testing.T) {
	f := newFakeStore()
	landlord, _ := seedLandlord(f)

	svc := NewLedgerService(f)
	err := svc.RecordPayment(context.Background(), &models.RecordPaymentRequest{
		TenantID: 999, LandlordID: landlord.ID, Month: "2025-02",
		Amount: 5000, Method: "mpesa", PaidDate: "2025-02-05",
	})
	assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
}

func TestRecordPaymentValidation(t *testing.T) {
	f := newFakeStore()
	svc := NewLedgerService(f)
	ctx := context.Background()

	base := models.RecordPaymentRequest{
		TenantID: 1, LandlordID: 1, Month: "2025-02",
		Amount: 5000, Method: "mpesa", PaidDate: "2025-02-05",
	}

	bad := base
	bad.Month = "February 2025"
	assert.True(t, apperrors.IsKind(svc.RecordPayment(ctx, &bad), apperrors.KindValidation))

	bad = base
	bad.PaidDate = "05/02/2025"
	assert.True(t, apperrors.IsKind(svc.RecordPayment(ctx, &bad), apperrors.KindValidation))

	bad = base
	bad.Amount = 0
	assert.True(t, apperrors.IsKind(svc.RecordPayment(ctx, &bad), apperrors.KindValidation))

	bad = base
	bad.Method = "cheque"
	assert.True(t, apperrors.IsKind(svc.RecordPayment(ctx, &bad), apperrors.KindValidation))
}

func TestDeletePaymentRecomputesLedger(t *testing.T) {
	f := newFakeStore()
	landlord, property := seedLandlord(f)
	tenant, _ := f.addOccupant(landlord.ID, property.ID, 5000)

	svc := NewLedgerService(f)
	ctx := context.Background()

	// Far-future month keeps the zero-paid status deterministic
	month := "2999-01"
	require.NoError(t, svc.RecordPayment(ctx, &models.RecordPaymentRequest{
		TenantID: tenant.ID, LandlordID: landlord.ID, Month: month,
		Amount: 3000, Method: "mpesa", PaidDate: "2025-02-05",
	}))
	require.NoError(t, svc.RecordPayment(ctx, &models.RecordPaymentRequest{
		TenantID: tenant.ID, LandlordID: landlord.ID, Month: month,
		Amount: 2000, Method: "cash", PaidDate: "2025-02-10",
	}))

	ledger, _ := f.Ledgers().GetByTenantMonth(ctx, tenant.ID, month)
	require.Equal(t, 5000.0, ledger.AmountPaid)

	payments, _ := f.Payments().ListByLedger(ctx, ledger.ID)
	require.Len(t, payments, 2)

	require.NoError(t, svc.DeletePayment(ctx, payments[0].ID))
	ledger, _ = f.Ledgers().GetByTenantMonth(ctx, tenant.ID, month)
	assert.Equal(t, 3000.0, ledger.AmountPaid)
	assert.Equal(t, models.LedgerStatusPartial, ledger.Status)

	payments, _ = f.Payments().ListByLedger(ctx, ledger.ID)
	require.Len(t, payments, 1)
	require.NoError(t, svc.DeletePayment(ctx, payments[0].ID))

	ledger, _ = f.Ledgers().GetByTenantMonth(ctx, tenant.ID, month)
	assert.Equal(t, 0.0, ledger.AmountPaid)
	assert.Equal(t, models.LedgerStatusUnpaid, ledger.Status)
}

func TestDeletePaymentNotFound(t *testing.T) {
	f := newFakeStore()
	svc := NewLedgerService(f)

	err := svc.DeletePayment(context.Background(), 42)
	assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
}

func TestTenantPaymentHistoryOrdering(t *testing.T) {
	f := newFakeStore()
	landlord, property := seedLandlord(f)
	tenant, _ := f.addOccupant(landlord.ID, property.ID, 5000)

	svc := NewLedgerService(f)
	ctx := context.Background()

	for _, month := range []string{"2025-01", "2025-02", "2025-03"} {
		require.NoError(t, svc.RecordPayment(ctx, &models.RecordPaymentRequest{
			TenantID: tenant.ID, LandlordID: landlord.ID, Month: month,
			Amount: 5000, Method: "mpesa", PaidDate: month + "-05",
		}))
	}

	history, err := svc.TenantPaymentHistory(ctx, tenant.ID)
	require.NoError(t, err)
	require.Len(t, history, 3)
	assert.Equal(t, "2025-03", history[0].Month)
	assert.Equal(t, "2025-02", history[1].Month)
	assert.Equal(t, "2025-01", history[2].Month)
	require.Len(t, history[0].Payments, 1)
}

func TestTenantPaymentHistoryUnknownTenant(t *testing.T) {
	f := newFakeStore()
	svc := NewLedgerService(f)

	_, err := svc.TenantPaymentHistory(context.Background(), 7)
	assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
}

func TestLandlordLedgerEnrichment(t *testing.T) {
	f := newFakeStore()
	landlord, property := seedLandlord(f)
	tenant, _ := f.addOccupant(landlord.ID, property.ID, 5000)

	svc := NewLedgerService(f)
	_, err := svc.Generate(context.Background(), landlord.ID, "2025-02")
	require.NoError(t, err)

	entries, err := svc.LandlordLedger(context.Background(), landlord.ID, "2025-02")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, tenant.FullName, entries[0].TenantName)
	assert.Equal(t, "Sunrise Court", entries[0].PropertyName)
}
