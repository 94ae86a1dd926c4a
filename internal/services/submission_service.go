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
)

// SubmissionService runs the payment-proof review workflow. A submission is
// pending until a reviewer approves or rejects it; both outcomes are
// terminal. Pending submissions may be cancelled by their tenant, which
// deletes them outright.
type SubmissionService struct {
	store repositories.Store
}

func NewSubmissionService(store repositories.Store) *SubmissionService {
	return &SubmissionService{store: store}
}

// Submit records a new pending proof of payment. Multiple submissions per
// (tenant, month) are allowed; tenants report partial and corrective
// payments this way.
func (s *SubmissionService) Submit(ctx context.Context, req *models.SubmitPaymentProofRequest) (int, error) {
	if !ValidMonth(req.Month) {
		return 0, apperrors.Validation("invalid_month", "month must be in YYYY-MM format")
	}
	if !ValidDate(req.PaidDate) {
		return 0, apperrors.Validation("invalid_paid_date", "paid_date must be in YYYY-MM-DD format")
	}
	if req.Amount <= 0 {
		return 0, apperrors.Validation("invalid_amount", "amount must be greater than zero")
	}
	if !ValidPaymentMethod(req.Method) {
		return 0, apperrors.Validation("invalid_method", "method must be one of mpesa, bank, cash")
	}

	tenant, err := s.store.Tenants().Get(ctx, req.TenantID)
	if err != nil {
		return 0, err
	}
	if tenant == nil {
		return 0, apperrors.NotFound("tenant_not_found", "tenant not found")
	}

	sub := &models.PaymentSubmission{
		TenantID:        req.TenantID,
		UnitID:          req.UnitID,
		PropertyID:      req.PropertyID,
		LandlordID:      req.LandlordID,
		Month:           req.Month,
		Amount:          req.Amount,
		Method:          req.Method,
		ReferenceNumber: req.ReferenceNumber,
		PaidDate:        req.PaidDate,
		Notes:           req.Notes,
		ProofImageURL:   req.ProofImageURL,
		Status:          models.SubmissionStatusPending,
	}
	if err := s.store.Submissions().Create(ctx, sub); err != nil {
		return 0, fmt.Errorf("failed to create submission: %w", err)
	}
	return sub.ID, nil
}

// Cancel hard-deletes a pending submission. Reviewed submissions are
// immutable and cannot be cancelled.
func (s *SubmissionService) Cancel(ctx context.Context, submissionID int) error {
	return s.store.WithTx(ctx, func(st repositories.Store) error {
		sub, err := st.Submissions().GetForUpdate(ctx, submissionID)
		if err != nil {
			return err
		}
		if sub == nil {
			return apperrors.NotFound("submission_not_found", "submission not found")
		}
		if sub.Status != models.SubmissionStatusPending {
			return apperrors.InvalidState("submission_not_pending", "only pending submissions can be cancelled")
		}
		return st.Submissions().Delete(ctx, submissionID)
	})
}

// Approve converts a pending submission into an authoritative payment. The
// submission lock, the ledger find-or-create, the payment insert, the
// ledger recompute and the submission patch all commit in one transaction.
func (s *SubmissionService) Approve(ctx context.Context, submissionID, reviewerID int) (int, error) {
	var paymentID int
	var landlordID int
	var month string

	err := s.store.WithTx(ctx, func(st repositories.Store) error {
		sub, err := st.Submissions().GetForUpdate(ctx, submissionID)
		if err != nil {
			return err
		}
		if sub == nil {
			return apperrors.NotFound("submission_not_found", "submission not found")
		}
		if sub.Status != models.SubmissionStatusPending {
			return apperrors.InvalidState("submission_not_pending", "submission has already been reviewed")
		}

		ledger, _, err := ensureLedgerEntry(ctx, st, sub.TenantID, sub.Month)
		if err != nil {
			return err
		}
		landlordID = ledger.LandlordID
		month = ledger.Month

		payment := &models.Payment{
			LedgerID:        ledger.ID,
			TenantID:        sub.TenantID,
			Amount:          sub.Amount,
			Method:          sub.Method,
			ReferenceNumber: sub.ReferenceNumber,
			PaidDate:        sub.PaidDate,
			Month:           sub.Month,
			Notes:           sub.Notes,
			RecordedBy:      reviewerID,
		}
		if err := st.Payments().Create(ctx, payment); err != nil {
			return fmt.Errorf("failed to create payment: %w", err)
		}
		paymentID = payment.ID

		if err := recomputeLedger(ctx, st, ledger); err != nil {
			return err
		}
		return st.Submissions().MarkApproved(ctx, submissionID, reviewerID, paymentID)
	})
	if err != nil {
		return 0, err
	}

	metrics.SubmissionsReviewedTotal.WithLabelValues("approved").Inc()
	metrics.PaymentsRecordedTotal.WithLabelValues("submission").Inc()
	cache.InvalidateLandlordStats(ctx, landlordID, month)
	log.Printf("[Submission] submission %d approved by user %d, payment %d", submissionID, reviewerID, paymentID)
	return paymentID, nil
}

// Reject marks a pending submission rejected with the reviewer's reason.
// No financial side effects.
func (s *SubmissionService) Reject(ctx context.Context, submissionID, reviewerID int, reason string) error {
	if reason == "" {
		return apperrors.Validation("empty_reason", "rejection reason is required")
	}

	err := s.store.WithTx(ctx, func(st repositories.Store) error {
		sub, err := st.Submissions().GetForUpdate(ctx, submissionID)
		if err != nil {
			return err
		}
		if sub == nil {
			return apperrors.NotFound("submission_not_found", "submission not found")
		}
		if sub.Status != models.SubmissionStatusPending {
			return apperrors.InvalidState("submission_not_pending", "submission has already been reviewed")
		}
		return st.Submissions().MarkRejected(ctx, submissionID, reviewerID, reason)
	})
	if err != nil {
		return err
	}

	metrics.SubmissionsReviewedTotal.WithLabelValues("rejected").Inc()
	return nil
}

// Get returns one submission
func (s *SubmissionService) Get(ctx context.Context, submissionID int) (*models.PaymentSubmission, error) {
	sub, err := s.store.Submissions().Get(ctx, submissionID)
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, apperrors.NotFound("submission_not_found", "submission not found")
	}
	return sub, nil
}

// List returns submissions matching the filter, enriched for display
func (s *SubmissionService) List(ctx context.Context, filter models.SubmissionFilter) ([]models.SubmissionDetail, error) {
	if filter.Status != "" {
		switch filter.Status {
		case models.SubmissionStatusPending, models.SubmissionStatusApproved, models.SubmissionStatusRejected:
		default:
			return nil, apperrors.Validation("invalid_status", "status must be one of pending, approved, rejected")
		}
	}
	return s.store.Submissions().List(ctx, filter)
}
