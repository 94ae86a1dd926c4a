package repositories

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"unitsync-backend/internal/models"
)

type PropertyRepository struct {
	DB DBTX
}

func NewPropertyRepository(db DBTX) *PropertyRepository {
	return &PropertyRepository{DB: db}
}

func (r *PropertyRepository) Create(ctx context.Context, p *models.Property) error {
	query := `
		INSERT INTO properties (landlord_id, name, address, city)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`

	return r.DB.QueryRow(ctx, query,
		p.LandlordID, p.Name, p.Address, p.City,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
}

// Get returns the property, or nil when no such property exists
func (r *PropertyRepository) Get(ctx context.Context, id int) (*models.Property, error) {
	p := &models.Property{}
	err := r.DB.QueryRow(ctx, `
		SELECT id, landlord_id, name, COALESCE(address, ''), COALESCE(city, ''), created_at, updated_at
		FROM properties WHERE id = $1
	`, id).Scan(&p.ID, &p.LandlordID, &p.Name, &p.Address, &p.City, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return p, nil
}

func (r *PropertyRepository) ListByLandlord(ctx context.Context, landlordID int) ([]models.Property, error) {
	rows, err := r.DB.Query(ctx, `
		SELECT id, landlord_id, name, COALESCE(address, ''), COALESCE(city, ''), created_at, updated_at
		FROM properties
		WHERE landlord_id = $1
		ORDER BY name
	`, landlordID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var properties []models.Property
	for rows.Next() {
		var p models.Property
		if err := rows.Scan(&p.ID, &p.LandlordID, &p.Name, &p.Address, &p.City, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		properties = append(properties, p)
	}

	return properties, rows.Err()
}

func (r *PropertyRepository) Update(ctx context.Context, p *models.Property) error {
	_, err := r.DB.Exec(ctx, `
		UPDATE properties SET name = $1, address = $2, city = $3, updated_at = NOW()
		WHERE id = $4
	`, p.Name, p.Address, p.City, p.ID)
	return err
}

func (r *PropertyRepository) Delete(ctx context.Context, id int) error {
	_, err := r.DB.Exec(ctx, `DELETE FROM properties WHERE id = $1`, id)
	return err
}
