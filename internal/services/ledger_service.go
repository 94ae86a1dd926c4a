package services

import (
	"context"
	"fmt"
	"log"

	"unitsync-backend/internal/apperrors"
	"unitsync-backend/internal/cache"
	"unitsync-backend/internal/metrics"
	"unitsync-backend/internal/models"
	"unitsync-backend/internal/repositories"
	"unitsync-backend/internal/timeutil"
)

// LedgerService owns monthly ledger generation, payment recording and the
// reconciliation rules that keep a ledger's cached totals equal to the sum
// of its payment rows.
type LedgerService struct {
	store repositories.Store
}

func NewLedgerService(store repositories.Store) *LedgerService {
	return &LedgerService{store: store}
}

// ensureLedgerEntry finds or creates the single ledger entry for
// (tenant, month). Every path that needs a ledger entry goes through here so
// generation, direct recording and submission approval cannot diverge.
// Inside a transaction the existing-row lookup takes a row lock.
func ensureLedgerEntry(ctx context.Context, st repositories.Store, tenantID int, month string) (*models.RentLedger, bool, error) {
	ledger, err := st.Ledgers().GetByTenantMonthForUpdate(ctx, tenantID, month)
	if err != nil {
		return nil, false, err
	}
	if ledger != nil {
		return ledger, false, nil
	}

	tenant, err := st.Tenants().Get(ctx, tenantID)
	if err != nil {
		return nil, false, err
	}
	if tenant == nil {
		return nil, false, apperrors.NotFound("tenant_not_found", "tenant not found")
	}
	if tenant.UnitID == nil {
		return nil, false, apperrors.MissingPrecondition("no_unit_assigned", "tenant has no unit assigned")
	}

	unit, err := st.Units().Get(ctx, *tenant.UnitID)
	if err != nil {
		return nil, false, err
	}
	if unit == nil {
		return nil, false, apperrors.NotFound("unit_not_found", "unit not found")
	}

	ledger = &models.RentLedger{
		TenantID:   tenantID,
		UnitID:     unit.ID,
		PropertyID: unit.PropertyID,
		LandlordID: tenant.LandlordID,
		Month:      month,
		AmountDue:  unit.RentAmount,
		AmountPaid: 0,
		Status:     models.LedgerStatusUnpaid,
		DueDate:    DueDateForMonth(month),
	}
	if err := st.Ledgers().Create(ctx, ledger); err != nil {
		return nil, false, err
	}
	return ledger, true, nil
}

// recomputeLedger resums all payment rows for the ledger entry and patches
// the cached total and status. The payments table is always authoritative.
func recomputeLedger(ctx context.Context, st repositories.Store, ledger *models.RentLedger) error {
	total, err := st.Payments().SumByLedger(ctx, ledger.ID)
	if err != nil {
		return fmt.Errorf("failed to sum payments for ledger %d: %w", ledger.ID, err)
	}

	status := DeriveStatus(ledger.AmountDue, total, ledger.DueDate, timeutil.Today())
	if err := st.Ledgers().UpdateTotals(ctx, ledger.ID, total, status); err != nil {
		return fmt.Errorf("failed to update ledger %d totals: %w", ledger.ID, err)
	}

	ledger.AmountPaid = total
	ledger.Status = status
	return nil
}

// Generate creates the missing ledger entries for one landlord and month.
// Tenants that already have an entry are untouched; tenants that cannot be
// billed are reported back in Skipped rather than silently dropped.
func (s *LedgerService) Generate(ctx context.Context, landlordID int, month string) (*models.GenerateLedgerResult, error) {
	if !ValidMonth(month) {
		return nil, apperrors.Validation("invalid_month", "month must be in YYYY-MM format")
	}

	result := &models.GenerateLedgerResult{Skipped: []models.SkippedTenant{}}

	err := s.store.WithTx(ctx, func(st repositories.Store) error {
		tenants, err := st.Tenants().ListByLandlord(ctx, landlordID)
		if err != nil {
			return err
		}

		for _, tenant := range tenants {
			if tenant.UnitID == nil {
				result.Skipped = append(result.Skipped, models.SkippedTenant{
					TenantID: tenant.ID, Reason: "no unit assigned",
				})
				continue
			}

			_, created, err := ensureLedgerEntry(ctx, st, tenant.ID, month)
			if err != nil {
				if apperrors.AsError(err) != nil {
					result.Skipped = append(result.Skipped, models.SkippedTenant{
						TenantID: tenant.ID, Reason: err.Error(),
					})
					continue
				}
				return err
			}
			if created {
				result.Created++
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.LedgerEntriesGeneratedTotal.Add(float64(result.Created))
	cache.InvalidateLandlordStats(ctx, landlordID, month)
	log.Printf("[Ledger] generated %d entries for landlord %d month %s (%d skipped)",
		result.Created, landlordID, month, len(result.Skipped))
	return result, nil
}

// RecordPayment appends an authoritative payment against the tenant's
// (tenant, month) ledger entry, creating the entry first if the generator
// has not run yet, then recomputes the ledger by resumming.
func (s *LedgerService) RecordPayment(ctx context.Context, req *models.RecordPaymentRequest) error {
	if !ValidMonth(req.Month) {
		return apperrors.Validation("invalid_month", "month must be in YYYY-MM format")
	}
	if !ValidDate(req.PaidDate) {
		return apperrors.Validation("invalid_paid_date", "paid_date must be in YYYY-MM-DD format")
	}
	if req.Amount <= 0 {
		return apperrors.Validation("invalid_amount", "amount must be greater than zero")
	}
	if !ValidPaymentMethod(req.Method) {
		return apperrors.Validation("invalid_method", "method must be one of mpesa, bank, cash")
	}

	var landlordID int
	err := s.store.WithTx(ctx, func(st repositories.Store) error {
		ledger, _, err := ensureLedgerEntry(ctx, st, req.TenantID, req.Month)
		if err != nil {
			return err
		}
		landlordID = ledger.LandlordID

		payment := &models.Payment{
			LedgerID:        ledger.ID,
			TenantID:        req.TenantID,
			Amount:          req.Amount,
			Method:          req.Method,
			ReferenceNumber: req.ReferenceNumber,
			PaidDate:        req.PaidDate,
			Month:           req.Month,
			Notes:           req.Notes,
			RecordedBy:      req.LandlordID,
		}
		if err := st.Payments().Create(ctx, payment); err != nil {
			return fmt.Errorf("failed to create payment: %w", err)
		}

		return recomputeLedger(ctx, st, ledger)
	})
	if err != nil {
		return err
	}

	metrics.PaymentsRecordedTotal.WithLabelValues(req.Method).Inc()
	cache.InvalidateLandlordStats(ctx, landlordID, req.Month)
	return nil
}

// DeletePayment removes a payment row and recomputes its ledger entry.
// Deletion is the only correction mechanism; payments are never edited.
func (s *LedgerService) DeletePayment(ctx context.Context, paymentID int) error {
	var landlordID int
	var month string

	err := s.store.WithTx(ctx, func(st repositories.Store) error {
		payment, err := st.Payments().Get(ctx, paymentID)
		if err != nil {
			return err
		}
		if payment == nil {
			return apperrors.NotFound("payment_not_found", "payment not found")
		}

		ledger, err := st.Ledgers().GetForUpdate(ctx, payment.LedgerID)
		if err != nil {
			return err
		}
		if ledger == nil {
			return apperrors.NotFound("ledger_not_found", "ledger entry not found")
		}
		landlordID = ledger.LandlordID
		month = ledger.Month

		if err := st.Payments().Delete(ctx, paymentID); err != nil {
			return err
		}
		return recomputeLedger(ctx, st, ledger)
	})
	if err != nil {
		return err
	}

	cache.InvalidateLandlordStats(ctx, landlordID, month)
	return nil
}

// LandlordLedger returns a landlord's enriched ledger for one month
func (s *LedgerService) LandlordLedger(ctx context.Context, landlordID int, month string) ([]models.LedgerDetail, error) {
	if !ValidMonth(month) {
		return nil, apperrors.Validation("invalid_month", "month must be in YYYY-MM format")
	}
	return s.store.Ledgers().ListByLandlordMonth(ctx, landlordID, month)
}

// TenantPaymentHistory returns a tenant's ledger entries newest month first,
// each with its payments nested newest first
func (s *LedgerService) TenantPaymentHistory(ctx context.Context, tenantID int) ([]models.TenantLedgerHistory, error) {
	tenant, err := s.store.Tenants().Get(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	if tenant == nil {
		return nil, apperrors.NotFound("tenant_not_found", "tenant not found")
	}

	entries, err := s.store.Ledgers().ListByTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	history := make([]models.TenantLedgerHistory, 0, len(entries))
	for _, entry := range entries {
		payments, err := s.store.Payments().ListByLedger(ctx, entry.ID)
		if err != nil {
			return nil, err
		}
		history = append(history, models.TenantLedgerHistory{RentLedger: entry, Payments: payments})
	}
	return history, nil
}

// LedgerPayments lists one ledger entry's payments
func (s *LedgerService) LedgerPayments(ctx context.Context, ledgerID int) ([]models.Payment, error) {
	ledger, err := s.store.Ledgers().Get(ctx, ledgerID)
	if err != nil {
		return nil, err
	}
	if ledger == nil {
		return nil, apperrors.NotFound("ledger_not_found", "ledger entry not found")
	}
	return s.store.Payments().ListByLedger(ctx, ledgerID)
}

// GetPayment returns one payment
func (s *LedgerService) GetPayment(ctx context.Context, paymentID int) (*models.Payment, error) {
	payment, err := s.store.Payments().Get(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, apperrors.NotFound("payment_not_found", "payment not found")
	}
	return payment, nil
}
