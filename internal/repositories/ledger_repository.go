package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"unitsync-backend/internal/models"
)

type LedgerRepository struct {
	DB DBTX
}

func NewLedgerRepository(db DBTX) *LedgerRepository {
	return &LedgerRepository{DB: db}
}

const ledgerColumns = `id, tenant_id, unit_id, property_id, landlord_id, month,
	amount_due, amount_paid, status, due_date, created_at, updated_at`

func scanLedger(row pgx.Row) (*models.RentLedger, error) {
	l := &models.RentLedger{}
	err := row.Scan(
		&l.ID, &l.TenantID, &l.UnitID, &l.PropertyID, &l.LandlordID, &l.Month,
		&l.AmountDue, &l.AmountPaid, &l.Status, &l.DueDate, &l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return l, nil
}

func (r *LedgerRepository) Create(ctx context.Context, l *models.RentLedger) error {
	query := `
		INSERT INTO rent_ledgers (tenant_id, unit_id, property_id, landlord_id, month, amount_due, amount_paid, status, due_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at
	`

	err := r.DB.QueryRow(ctx, query,
		l.TenantID, l.UnitID, l.PropertyID, l.LandlordID, l.Month,
		l.AmountDue, l.AmountPaid, l.Status, l.DueDate,
	).Scan(&l.ID, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create ledger entry: %w", err)
	}
	return nil
}

// Get returns the ledger entry, or nil when no such entry exists
func (r *LedgerRepository) Get(ctx context.Context, id int) (*models.RentLedger, error) {
	return scanLedger(r.DB.QueryRow(ctx,
		`SELECT `+ledgerColumns+` FROM rent_ledgers WHERE id = $1`, id))
}

// GetByTenantMonth returns the single ledger entry for (tenant, month),
// or nil when none exists yet
func (r *LedgerRepository) GetByTenantMonth(ctx context.Context, tenantID int, month string) (*models.RentLedger, error) {
	return scanLedger(r.DB.QueryRow(ctx,
		`SELECT `+ledgerColumns+` FROM rent_ledgers WHERE tenant_id = $1 AND month = $2`, tenantID, month))
}

// GetByTenantMonthForUpdate locks the (tenant, month) row for the duration
// of the surrounding transaction. Call only inside WithTx.
func (r *LedgerRepository) GetByTenantMonthForUpdate(ctx context.Context, tenantID int, month string) (*models.RentLedger, error) {
	return scanLedger(r.DB.QueryRow(ctx,
		`SELECT `+ledgerColumns+` FROM rent_ledgers WHERE tenant_id = $1 AND month = $2 FOR UPDATE`, tenantID, month))
}

// GetForUpdate locks the ledger row by id. Call only inside WithTx.
func (r *LedgerRepository) GetForUpdate(ctx context.Context, id int) (*models.RentLedger, error) {
	return scanLedger(r.DB.QueryRow(ctx,
		`SELECT `+ledgerColumns+` FROM rent_ledgers WHERE id = $1 FOR UPDATE`, id))
}

// UpdateTotals patches the cached amount_paid/status after recomputation
func (r *LedgerRepository) UpdateTotals(ctx context.Context, ledgerID int, amountPaid float64, status string) error {
	_, err := r.DB.Exec(ctx, `
		UPDATE rent_ledgers SET amount_paid = $1, status = $2, updated_at = NOW()
		WHERE id = $3
	`, amountPaid, status, ledgerID)
	return err
}

// ListByLandlordMonth returns a landlord's ledger for one month, enriched
// with tenant/unit/property data for display
func (r *LedgerRepository) ListByLandlordMonth(ctx context.Context, landlordID int, month string) ([]models.LedgerDetail, error) {
	query := `
		SELECT l.id, l.tenant_id, l.unit_id, l.property_id, l.landlord_id, l.month,
		       l.amount_due, l.amount_paid, l.status, l.due_date, l.created_at, l.updated_at,
		       t.full_name, t.phone, u.unit_number, p.name
		FROM rent_ledgers l
		JOIN tenants t ON l.tenant_id = t.id
		JOIN units u ON l.unit_id = u.id
		JOIN properties p ON l.property_id = p.id
		WHERE l.landlord_id = $1 AND l.month = $2
		ORDER BY p.name, u.unit_number
	`

	rows, err := r.DB.Query(ctx, query, landlordID, month)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []models.LedgerDetail
	for rows.Next() {
		var e models.LedgerDetail
		err := rows.Scan(
			&e.ID, &e.TenantID, &e.UnitID, &e.PropertyID, &e.LandlordID, &e.Month,
			&e.AmountDue, &e.AmountPaid, &e.Status, &e.DueDate, &e.CreatedAt, &e.UpdatedAt,
			&e.TenantName, &e.TenantPhone, &e.UnitNumber, &e.PropertyName,
		)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

// ListByTenant returns all of a tenant's ledger entries, newest month first
func (r *LedgerRepository) ListByTenant(ctx context.Context, tenantID int) ([]models.RentLedger, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT `+ledgerColumns+` FROM rent_ledgers WHERE tenant_id = $1 ORDER BY month DESC`, tenantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []models.RentLedger
	for rows.Next() {
		var l models.RentLedger
		err := rows.Scan(
			&l.ID, &l.TenantID, &l.UnitID, &l.PropertyID, &l.LandlordID, &l.Month,
			&l.AmountDue, &l.AmountPaid, &l.Status, &l.DueDate, &l.CreatedAt, &l.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		entries = append(entries, l)
	}

	return entries, rows.Err()
}

// CountByLandlordMonth returns ledger totals for the dashboard
func (r *LedgerRepository) CountByLandlordMonth(ctx context.Context, landlordID int, month string) (entries int, due, collected float64, err error) {
	err = r.DB.QueryRow(ctx, `
		SELECT COUNT(*), COALESCE(SUM(amount_due), 0), COALESCE(SUM(amount_paid), 0)
		FROM rent_ledgers
		WHERE landlord_id = $1 AND month = $2
	`, landlordID, month).Scan(&entries, &due, &collected)
	return
}
