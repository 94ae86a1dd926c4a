package repositories

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"unitsync-backend/internal/models"
)

type UnitRepository struct {
	DB DBTX
}

func NewUnitRepository(db DBTX) *UnitRepository {
	return &UnitRepository{DB: db}
}

const unitColumns = `id, property_id, unit_number, rent_amount, tenant_id, created_at, updated_at`

func scanUnit(row pgx.Row) (*models.Unit, error) {
	u := &models.Unit{}
	err := row.Scan(&u.ID, &u.PropertyID, &u.UnitNumber, &u.RentAmount, &u.TenantID, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return u, nil
}

func (r *UnitRepository) Create(ctx context.Context, u *models.Unit) error {
	query := `
		INSERT INTO units (property_id, unit_number, rent_amount)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`

	return r.DB.QueryRow(ctx, query,
		u.PropertyID, u.UnitNumber, u.RentAmount,
	).Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt)
}

// Get returns the unit, or nil when no such unit exists
func (r *UnitRepository) Get(ctx context.Context, id int) (*models.Unit, error) {
	return scanUnit(r.DB.QueryRow(ctx,
		`SELECT `+unitColumns+` FROM units WHERE id = $1`, id))
}

func (r *UnitRepository) ListByProperty(ctx context.Context, propertyID int) ([]models.Unit, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT `+unitColumns+` FROM units WHERE property_id = $1 ORDER BY unit_number`, propertyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var units []models.Unit
	for rows.Next() {
		var u models.Unit
		if err := rows.Scan(&u.ID, &u.PropertyID, &u.UnitNumber, &u.RentAmount, &u.TenantID, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, err
		}
		units = append(units, u)
	}

	return units, rows.Err()
}

func (r *UnitRepository) Update(ctx context.Context, u *models.Unit) error {
	_, err := r.DB.Exec(ctx, `
		UPDATE units SET unit_number = $1, rent_amount = $2, updated_at = NOW()
		WHERE id = $3
	`, u.UnitNumber, u.RentAmount, u.ID)
	return err
}

// SetTenant updates the occupant back-reference; nil clears it
func (r *UnitRepository) SetTenant(ctx context.Context, unitID int, tenantID *int) error {
	_, err := r.DB.Exec(ctx,
		`UPDATE units SET tenant_id = $1, updated_at = NOW() WHERE id = $2`, tenantID, unitID)
	return err
}

func (r *UnitRepository) Delete(ctx context.Context, id int) error {
	_, err := r.DB.Exec(ctx, `DELETE FROM units WHERE id = $1`, id)
	return err
}
