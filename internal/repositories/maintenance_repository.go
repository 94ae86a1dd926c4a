package repositories

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"unitsync-backend/internal/models"
)

type MaintenanceRepository struct {
	DB DBTX
}

func NewMaintenanceRepository(db DBTX) *MaintenanceRepository {
	return &MaintenanceRepository{DB: db}
}

const maintenanceColumns = `id, tenant_id, unit_id, property_id, landlord_id, title,
	COALESCE(description, ''), priority, status, COALESCE(resolution_notes, ''), created_at, updated_at`

func scanMaintenance(row pgx.Row) (*models.MaintenanceRequest, error) {
	m := &models.MaintenanceRequest{}
	err := row.Scan(
		&m.ID, &m.TenantID, &m.UnitID, &m.PropertyID, &m.LandlordID, &m.Title,
		&m.Description, &m.Priority, &m.Status, &m.ResolutionNotes, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return m, nil
}

func (r *MaintenanceRepository) Create(ctx context.Context, m *models.MaintenanceRequest) error {
	query := `
		INSERT INTO maintenance_requests (tenant_id, unit_id, property_id, landlord_id, title, description, priority, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at
	`

	return r.DB.QueryRow(ctx, query,
		m.TenantID, m.UnitID, m.PropertyID, m.LandlordID, m.Title, m.Description, m.Priority, m.Status,
	).Scan(&m.ID, &m.CreatedAt, &m.UpdatedAt)
}

// Get returns the request, or nil when no such request exists
func (r *MaintenanceRepository) Get(ctx context.Context, id int) (*models.MaintenanceRequest, error) {
	return scanMaintenance(r.DB.QueryRow(ctx,
		`SELECT `+maintenanceColumns+` FROM maintenance_requests WHERE id = $1`, id))
}

func (r *MaintenanceRepository) ListByLandlord(ctx context.Context, landlordID int) ([]models.MaintenanceRequest, error) {
	return r.list(ctx, `landlord_id`, landlordID)
}

func (r *MaintenanceRepository) ListByTenant(ctx context.Context, tenantID int) ([]models.MaintenanceRequest, error) {
	return r.list(ctx, `tenant_id`, tenantID)
}

func (r *MaintenanceRepository) list(ctx context.Context, column string, id int) ([]models.MaintenanceRequest, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT `+maintenanceColumns+` FROM maintenance_requests WHERE `+column+` = $1 ORDER BY created_at DESC`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []models.MaintenanceRequest
	for rows.Next() {
		var m models.MaintenanceRequest
		err := rows.Scan(
			&m.ID, &m.TenantID, &m.UnitID, &m.PropertyID, &m.LandlordID, &m.Title,
			&m.Description, &m.Priority, &m.Status, &m.ResolutionNotes, &m.CreatedAt, &m.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		requests = append(requests, m)
	}

	return requests, rows.Err()
}

func (r *MaintenanceRepository) UpdateStatus(ctx context.Context, id int, status, resolutionNotes string) error {
	_, err := r.DB.Exec(ctx, `
		UPDATE maintenance_requests SET status = $1, resolution_notes = $2, updated_at = NOW()
		WHERE id = $3
	`, status, resolutionNotes, id)
	return err
}
