package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"unitsync-backend/internal/apperrors"
	"unitsync-backend/internal/models"
)

func TestPaymentReceipt(t *testing.T) {
	f := newFakeStore()
	landlord, property := seedLandlord(f)
	tenant, _ := f.addOccupant(landlord.ID, property.ID, 5000)

	ledgers := NewLedgerService(f)
	reports := NewReportService(f)
	ctx := context.Background()

	require.NoError(t, ledgers.RecordPayment(ctx, &models.RecordPaymentRequest{
		TenantID: tenant.ID, LandlordID: landlord.ID, Month: "2025-02",
		Amount: 5000, Method: "mpesa", PaidDate: "2025-02-05",
	}))

	ledger, _ := f.Ledgers().GetByTenantMonth(ctx, tenant.ID, "2025-02")
	payments, _ := f.Payments().ListByLedger(ctx, ledger.ID)
	require.Len(t, payments, 1)

	pdf, err := reports.PaymentReceipt(ctx, payments[0].ID)
	require.NoError(t, err)
	require.NotEmpty(t, pdf)
	assert.Equal(t, "%PDF", string(pdf[:4]))
}

func TestPaymentReceiptNotFound(t *testing.T) {
	f := newFakeStore()
	reports := NewReportService(f)

	_, err := reports.PaymentReceipt(context.Background(), 77)
	assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
}

func TestMonthlyStatement(t *testing.T) {
	f := newFakeStore()
	landlord, property := seedLandlord(f)
	f.addOccupant(landlord.ID, property.ID, 5000)

	ledgers := NewLedgerService(f)
	reports := NewReportService(f)
	ctx := context.Background()

	_, err := ledgers.Generate(ctx, landlord.ID, "2025-02")
	require.NoError(t, err)

	pdf, err := reports.MonthlyStatement(ctx, landlord.ID, "2025-02")
	require.NoError(t, err)
	require.NotEmpty(t, pdf)
	assert.Equal(t, "%PDF", string(pdf[:4]))

	_, err = reports.MonthlyStatement(ctx, landlord.ID, "Feb 2025")
	assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))
}
