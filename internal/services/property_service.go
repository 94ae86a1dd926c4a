package services

import (
	"context"

	"unitsync-backend/internal/apperrors"
	"unitsync-backend/internal/models"
	"unitsync-backend/internal/repositories"
)

type PropertyService struct {
	store repositories.Store
}

func NewPropertyService(store repositories.Store) *PropertyService {
	return &PropertyService{store: store}
}

func (s *PropertyService) Create(ctx context.Context, landlordID int, req *models.CreatePropertyRequest) (*models.Property, error) {
	if req.Name == "" {
		return nil, apperrors.Validation("missing_name", "property name is required")
	}

	property := &models.Property{
		LandlordID: landlordID,
		Name:       req.Name,
		Address:    req.Address,
		City:       req.City,
	}
	if err := s.store.Properties().Create(ctx, property); err != nil {
		return nil, err
	}
	return property, nil
}

func (s *PropertyService) Get(ctx context.Context, id int) (*models.Property, error) {
	property, err := s.store.Properties().Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if property == nil {
		return nil, apperrors.NotFound("property_not_found", "property not found")
	}
	return property, nil
}

func (s *PropertyService) List(ctx context.Context, landlordID int) ([]models.Property, error) {
	return s.store.Properties().ListByLandlord(ctx, landlordID)
}

func (s *PropertyService) Update(ctx context.Context, id int, req *models.UpdatePropertyRequest) (*models.Property, error) {
	property, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Name == "" {
		return nil, apperrors.Validation("missing_name", "property name is required")
	}

	property.Name = req.Name
	property.Address = req.Address
	property.City = req.City
	if err := s.store.Properties().Update(ctx, property); err != nil {
		return nil, err
	}
	return property, nil
}

// Delete removes an empty property. Properties with units must have the
// units removed first.
func (s *PropertyService) Delete(ctx context.Context, id int) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}

	units, err := s.store.Units().ListByProperty(ctx, id)
	if err != nil {
		return err
	}
	if len(units) > 0 {
		return apperrors.InvalidState("property_has_units", "property still has units")
	}
	return s.store.Properties().Delete(ctx, id)
}
