package services

import (
	"context"

	"unitsync-backend/internal/apperrors"
	"unitsync-backend/internal/models"
	"unitsync-backend/internal/repositories"
)

type UnitService struct {
	store repositories.Store
}

func NewUnitService(store repositories.Store) *UnitService {
	return &UnitService{store: store}
}

func (s *UnitService) Create(ctx context.Context, req *models.CreateUnitRequest) (*models.Unit, error) {
	if req.UnitNumber == "" {
		return nil, apperrors.Validation("missing_unit_number", "unit number is required")
	}
	if req.RentAmount < 0 {
		return nil, apperrors.Validation("invalid_rent_amount", "rent amount cannot be negative")
	}

	property, err := s.store.Properties().Get(ctx, req.PropertyID)
	if err != nil {
		return nil, err
	}
	if property == nil {
		return nil, apperrors.NotFound("property_not_found", "property not found")
	}

	unit := &models.Unit{
		PropertyID: req.PropertyID,
		UnitNumber: req.UnitNumber,
		RentAmount: req.RentAmount,
	}
	if err := s.store.Units().Create(ctx, unit); err != nil {
		return nil, err
	}
	return unit, nil
}

func (s *UnitService) Get(ctx context.Context, id int) (*models.Unit, error) {
	unit, err := s.store.Units().Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if unit == nil {
		return nil, apperrors.NotFound("unit_not_found", "unit not found")
	}
	return unit, nil
}

func (s *UnitService) ListByProperty(ctx context.Context, propertyID int) ([]models.Unit, error) {
	return s.store.Units().ListByProperty(ctx, propertyID)
}

// Update changes the unit number or rent amount. Rent changes only affect
// ledger entries generated afterwards; existing entries keep the amount due
// captured at generation time.
func (s *UnitService) Update(ctx context.Context, id int, req *models.UpdateUnitRequest) (*models.Unit, error) {
	unit, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.UnitNumber == "" {
		return nil, apperrors.Validation("missing_unit_number", "unit number is required")
	}
	if req.RentAmount < 0 {
		return nil, apperrors.Validation("invalid_rent_amount", "rent amount cannot be negative")
	}

	unit.UnitNumber = req.UnitNumber
	unit.RentAmount = req.RentAmount
	if err := s.store.Units().Update(ctx, unit); err != nil {
		return nil, err
	}
	return unit, nil
}

// Delete removes a vacant unit
func (s *UnitService) Delete(ctx context.Context, id int) error {
	unit, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if unit.TenantID != nil {
		return apperrors.InvalidState("unit_occupied", "unit still has a tenant assigned")
	}
	return s.store.Units().Delete(ctx, id)
}
