package repositories

import (
	"context"
	"errors"
	"strconv"

	"github.com/jackc/pgx/v5"

	"unitsync-backend/internal/models"
)

type SubmissionRepository struct {
	DB DBTX
}

func NewSubmissionRepository(db DBTX) *SubmissionRepository {
	return &SubmissionRepository{DB: db}
}

const submissionColumns = `id, tenant_id, unit_id, property_id, landlord_id, month, amount, method,
	COALESCE(reference_number, ''), paid_date, COALESCE(notes, ''), COALESCE(proof_image_url, ''),
	status, reviewed_by, reviewed_at, COALESCE(rejection_reason, ''), payment_id, created_at`

func scanSubmission(row pgx.Row) (*models.PaymentSubmission, error) {
	s := &models.PaymentSubmission{}
	err := row.Scan(
		&s.ID, &s.TenantID, &s.UnitID, &s.PropertyID, &s.LandlordID, &s.Month, &s.Amount, &s.Method,
		&s.ReferenceNumber, &s.PaidDate, &s.Notes, &s.ProofImageURL,
		&s.Status, &s.ReviewedBy, &s.ReviewedAt, &s.RejectionReason, &s.PaymentID, &s.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return s, nil
}

func (r *SubmissionRepository) Create(ctx context.Context, s *models.PaymentSubmission) error {
	query := `
		INSERT INTO payment_submissions (tenant_id, unit_id, property_id, landlord_id, month, amount, method, reference_number, paid_date, notes, proof_image_url, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id, created_at
	`

	return r.DB.QueryRow(ctx, query,
		s.TenantID, s.UnitID, s.PropertyID, s.LandlordID, s.Month, s.Amount, s.Method,
		s.ReferenceNumber, s.PaidDate, s.Notes, s.ProofImageURL, s.Status,
	).Scan(&s.ID, &s.CreatedAt)
}

// Get returns the submission, or nil when no such submission exists
func (r *SubmissionRepository) Get(ctx context.Context, id int) (*models.PaymentSubmission, error) {
	return scanSubmission(r.DB.QueryRow(ctx,
		`SELECT `+submissionColumns+` FROM payment_submissions WHERE id = $1`, id))
}

// GetForUpdate locks the submission row so concurrent reviews serialize.
// Call only inside WithTx.
func (r *SubmissionRepository) GetForUpdate(ctx context.Context, id int) (*models.PaymentSubmission, error) {
	return scanSubmission(r.DB.QueryRow(ctx,
		`SELECT `+submissionColumns+` FROM payment_submissions WHERE id = $1 FOR UPDATE`, id))
}

// Delete hard-deletes a submission. Cancellation of pending proofs is the
// only caller.
func (r *SubmissionRepository) Delete(ctx context.Context, id int) error {
	_, err := r.DB.Exec(ctx, `DELETE FROM payment_submissions WHERE id = $1`, id)
	return err
}

func (r *SubmissionRepository) MarkApproved(ctx context.Context, id, reviewerID, paymentID int) error {
	_, err := r.DB.Exec(ctx, `
		UPDATE payment_submissions
		SET status = 'approved', reviewed_by = $1, reviewed_at = NOW(), payment_id = $2
		WHERE id = $3
	`, reviewerID, paymentID, id)
	return err
}

func (r *SubmissionRepository) MarkRejected(ctx context.Context, id, reviewerID int, reason string) error {
	_, err := r.DB.Exec(ctx, `
		UPDATE payment_submissions
		SET status = 'rejected', reviewed_by = $1, reviewed_at = NOW(), rejection_reason = $2
		WHERE id = $3
	`, reviewerID, reason, id)
	return err
}

// List returns submissions matching the filter, enriched for display,
// pending first then newest
func (r *SubmissionRepository) List(ctx context.Context, filter models.SubmissionFilter) ([]models.SubmissionDetail, error) {
	query := `
		SELECT s.id, s.tenant_id, s.unit_id, s.property_id, s.landlord_id, s.month, s.amount, s.method,
		       COALESCE(s.reference_number, ''), s.paid_date, COALESCE(s.notes, ''), COALESCE(s.proof_image_url, ''),
		       s.status, s.reviewed_by, s.reviewed_at, COALESCE(s.rejection_reason, ''), s.payment_id, s.created_at,
		       t.full_name, t.phone, u.unit_number, p.name
		FROM payment_submissions s
		JOIN tenants t ON s.tenant_id = t.id
		JOIN units u ON s.unit_id = u.id
		JOIN properties p ON s.property_id = p.id
		WHERE 1=1
	`
	args := []interface{}{}

	if filter.LandlordID != 0 {
		args = append(args, filter.LandlordID)
		query += ` AND s.landlord_id = $` + strconv.Itoa(len(args))
	}
	if filter.TenantID != 0 {
		args = append(args, filter.TenantID)
		query += ` AND s.tenant_id = $` + strconv.Itoa(len(args))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		query += ` AND s.status = $` + strconv.Itoa(len(args))
	}

	query += ` ORDER BY (s.status = 'pending') DESC, s.created_at DESC`

	rows, err := r.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subs []models.SubmissionDetail
	for rows.Next() {
		var d models.SubmissionDetail
		err := rows.Scan(
			&d.ID, &d.TenantID, &d.UnitID, &d.PropertyID, &d.LandlordID, &d.Month, &d.Amount, &d.Method,
			&d.ReferenceNumber, &d.PaidDate, &d.Notes, &d.ProofImageURL,
			&d.Status, &d.ReviewedBy, &d.ReviewedAt, &d.RejectionReason, &d.PaymentID, &d.CreatedAt,
			&d.TenantName, &d.TenantPhone, &d.UnitNumber, &d.PropertyName,
		)
		if err != nil {
			return nil, err
		}
		subs = append(subs, d)
	}

	return subs, rows.Err()
}

// CountPendingByLandlord feeds the dashboard's review queue badge
func (r *SubmissionRepository) CountPendingByLandlord(ctx context.Context, landlordID int) (int, error) {
	var n int
	err := r.DB.QueryRow(ctx,
		`SELECT COUNT(*) FROM payment_submissions WHERE landlord_id = $1 AND status = 'pending'`, landlordID).Scan(&n)
	return n, err
}
