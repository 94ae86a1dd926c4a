package repositories

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"unitsync-backend/internal/models"
)

type PaymentRepository struct {
	DB DBTX
}

func NewPaymentRepository(db DBTX) *PaymentRepository {
	return &PaymentRepository{DB: db}
}

const paymentColumns = `id, ledger_id, tenant_id, amount, method,
	COALESCE(reference_number, ''), paid_date, month, COALESCE(notes, ''), recorded_by, created_at`

func scanPayment(row pgx.Row) (*models.Payment, error) {
	p := &models.Payment{}
	err := row.Scan(
		&p.ID, &p.LedgerID, &p.TenantID, &p.Amount, &p.Method,
		&p.ReferenceNumber, &p.PaidDate, &p.Month, &p.Notes, &p.RecordedBy, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return p, nil
}

func (r *PaymentRepository) Create(ctx context.Context, p *models.Payment) error {
	query := `
		INSERT INTO payments (ledger_id, tenant_id, amount, method, reference_number, paid_date, month, notes, recorded_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at
	`

	return r.DB.QueryRow(ctx, query,
		p.LedgerID, p.TenantID, p.Amount, p.Method, p.ReferenceNumber,
		p.PaidDate, p.Month, p.Notes, p.RecordedBy,
	).Scan(&p.ID, &p.CreatedAt)
}

// Get returns the payment, or nil when no such payment exists
func (r *PaymentRepository) Get(ctx context.Context, id int) (*models.Payment, error) {
	return scanPayment(r.DB.QueryRow(ctx,
		`SELECT `+paymentColumns+` FROM payments WHERE id = $1`, id))
}

func (r *PaymentRepository) Delete(ctx context.Context, id int) error {
	_, err := r.DB.Exec(ctx, `DELETE FROM payments WHERE id = $1`, id)
	return err
}

// SumByLedger resums every payment against a ledger entry. This is the
// authoritative total the cached ledger figure must match.
func (r *PaymentRepository) SumByLedger(ctx context.Context, ledgerID int) (float64, error) {
	var total float64
	err := r.DB.QueryRow(ctx,
		`SELECT COALESCE(SUM(amount), 0) FROM payments WHERE ledger_id = $1`, ledgerID).Scan(&total)
	return total, err
}

// ListByLedger returns a ledger entry's payments, newest first
func (r *PaymentRepository) ListByLedger(ctx context.Context, ledgerID int) ([]models.Payment, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT `+paymentColumns+` FROM payments WHERE ledger_id = $1 ORDER BY created_at DESC, id DESC`, ledgerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var payments []models.Payment
	for rows.Next() {
		var p models.Payment
		err := rows.Scan(
			&p.ID, &p.LedgerID, &p.TenantID, &p.Amount, &p.Method,
			&p.ReferenceNumber, &p.PaidDate, &p.Month, &p.Notes, &p.RecordedBy, &p.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}

	return payments, rows.Err()
}
