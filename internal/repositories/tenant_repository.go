package repositories

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"unitsync-backend/internal/models"
)

type TenantRepository struct {
	DB DBTX
}

func NewTenantRepository(db DBTX) *TenantRepository {
	return &TenantRepository{DB: db}
}

const tenantColumns = `id, landlord_id, property_id, unit_id, full_name, phone,
	COALESCE(email, ''), access_code, COALESCE(lease_start, ''), COALESCE(lease_end, ''),
	status, created_at, updated_at`

func scanTenant(row pgx.Row) (*models.Tenant, error) {
	t := &models.Tenant{}
	err := row.Scan(
		&t.ID, &t.LandlordID, &t.PropertyID, &t.UnitID, &t.FullName, &t.Phone,
		&t.Email, &t.AccessCode, &t.LeaseStart, &t.LeaseEnd,
		&t.Status, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return t, nil
}

func (r *TenantRepository) Create(ctx context.Context, t *models.Tenant) error {
	query := `
		INSERT INTO tenants (landlord_id, property_id, full_name, phone, email, access_code, lease_start, lease_end, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at
	`

	return r.DB.QueryRow(ctx, query,
		t.LandlordID, t.PropertyID, t.FullName, t.Phone, t.Email, t.AccessCode,
		t.LeaseStart, t.LeaseEnd, t.Status,
	).Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
}

// Get returns the tenant, or nil when no such tenant exists
func (r *TenantRepository) Get(ctx context.Context, id int) (*models.Tenant, error) {
	return scanTenant(r.DB.QueryRow(ctx,
		`SELECT `+tenantColumns+` FROM tenants WHERE id = $1`, id))
}

func (r *TenantRepository) GetByPhone(ctx context.Context, phone string) (*models.Tenant, error) {
	return scanTenant(r.DB.QueryRow(ctx,
		`SELECT `+tenantColumns+` FROM tenants WHERE phone = $1 ORDER BY created_at DESC LIMIT 1`, phone))
}

func (r *TenantRepository) ListByLandlord(ctx context.Context, landlordID int) ([]models.Tenant, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT `+tenantColumns+` FROM tenants WHERE landlord_id = $1 ORDER BY full_name`, landlordID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tenants []models.Tenant
	for rows.Next() {
		var t models.Tenant
		err := rows.Scan(
			&t.ID, &t.LandlordID, &t.PropertyID, &t.UnitID, &t.FullName, &t.Phone,
			&t.Email, &t.AccessCode, &t.LeaseStart, &t.LeaseEnd,
			&t.Status, &t.CreatedAt, &t.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		tenants = append(tenants, t)
	}

	return tenants, rows.Err()
}

func (r *TenantRepository) Update(ctx context.Context, t *models.Tenant) error {
	_, err := r.DB.Exec(ctx, `
		UPDATE tenants SET full_name = $1, phone = $2, email = $3, lease_start = $4, lease_end = $5, updated_at = NOW()
		WHERE id = $6
	`, t.FullName, t.Phone, t.Email, t.LeaseStart, t.LeaseEnd, t.ID)
	return err
}

// SetAccessCode rotates the tenant's portal credential
func (r *TenantRepository) SetAccessCode(ctx context.Context, tenantID int, code string) error {
	_, err := r.DB.Exec(ctx,
		`UPDATE tenants SET access_code = $1, updated_at = NOW() WHERE id = $2`, code, tenantID)
	return err
}

// SetAssignment updates a tenant's unit/property link and status in one
// statement so assign/vacate stay consistent with the unit back-reference
func (r *TenantRepository) SetAssignment(ctx context.Context, tenantID int, unitID, propertyID *int, status string) error {
	_, err := r.DB.Exec(ctx, `
		UPDATE tenants SET unit_id = $1, property_id = $2, status = $3, updated_at = NOW()
		WHERE id = $4
	`, unitID, propertyID, status, tenantID)
	return err
}
