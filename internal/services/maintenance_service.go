package services

import (
	"context"

	"unitsync-backend/internal/apperrors"
	"unitsync-backend/internal/models"
	"unitsync-backend/internal/repositories"
)

// MaintenanceService runs the maintenance ticket lifecycle:
// open -> in_progress -> resolved/cancelled, with open allowed to jump
// straight to either terminal state.
type MaintenanceService struct {
	store repositories.Store
}

func NewMaintenanceService(store repositories.Store) *MaintenanceService {
	return &MaintenanceService{store: store}
}

func validPriority(p string) bool {
	switch p {
	case "low", "normal", "high", "urgent":
		return true
	}
	return false
}

// canTransition encodes the ticket state machine
func canTransition(from, to string) bool {
	switch from {
	case models.MaintenanceStatusOpen:
		return to == models.MaintenanceStatusInProgress ||
			to == models.MaintenanceStatusResolved ||
			to == models.MaintenanceStatusCancelled
	case models.MaintenanceStatusInProgress:
		return to == models.MaintenanceStatusResolved ||
			to == models.MaintenanceStatusCancelled
	}
	return false
}

// Create raises a ticket for a tenant's current unit
func (s *MaintenanceService) Create(ctx context.Context, req *models.CreateMaintenanceRequest) (*models.MaintenanceRequest, error) {
	if req.Title == "" {
		return nil, apperrors.Validation("missing_title", "title is required")
	}
	if req.Priority == "" {
		req.Priority = "normal"
	}
	if !validPriority(req.Priority) {
		return nil, apperrors.Validation("invalid_priority", "priority must be one of low, normal, high, urgent")
	}

	tenant, err := s.store.Tenants().Get(ctx, req.TenantID)
	if err != nil {
		return nil, err
	}
	if tenant == nil {
		return nil, apperrors.NotFound("tenant_not_found", "tenant not found")
	}
	if tenant.UnitID == nil || tenant.PropertyID == nil {
		return nil, apperrors.MissingPrecondition("no_unit_assigned", "tenant has no unit assigned")
	}

	request := &models.MaintenanceRequest{
		TenantID:    tenant.ID,
		UnitID:      *tenant.UnitID,
		PropertyID:  *tenant.PropertyID,
		LandlordID:  tenant.LandlordID,
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		Status:      models.MaintenanceStatusOpen,
	}
	if err := s.store.Maintenance().Create(ctx, request); err != nil {
		return nil, err
	}
	return request, nil
}

func (s *MaintenanceService) Get(ctx context.Context, id int) (*models.MaintenanceRequest, error) {
	request, err := s.store.Maintenance().Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if request == nil {
		return nil, apperrors.NotFound("request_not_found", "maintenance request not found")
	}
	return request, nil
}

func (s *MaintenanceService) ListByLandlord(ctx context.Context, landlordID int) ([]models.MaintenanceRequest, error) {
	return s.store.Maintenance().ListByLandlord(ctx, landlordID)
}

func (s *MaintenanceService) ListByTenant(ctx context.Context, tenantID int) ([]models.MaintenanceRequest, error) {
	return s.store.Maintenance().ListByTenant(ctx, tenantID)
}

// UpdateStatus moves a ticket through its lifecycle. Terminal tickets
// cannot be reopened.
func (s *MaintenanceService) UpdateStatus(ctx context.Context, id int, req *models.UpdateMaintenanceStatusRequest) (*models.MaintenanceRequest, error) {
	switch req.Status {
	case models.MaintenanceStatusInProgress, models.MaintenanceStatusResolved, models.MaintenanceStatusCancelled:
	default:
		return nil, apperrors.Validation("invalid_status", "status must be one of in_progress, resolved, cancelled")
	}

	request, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !canTransition(request.Status, req.Status) {
		return nil, apperrors.InvalidState("invalid_transition",
			"cannot move request from "+request.Status+" to "+req.Status)
	}

	if err := s.store.Maintenance().UpdateStatus(ctx, id, req.Status, req.ResolutionNotes); err != nil {
		return nil, err
	}
	request.Status = req.Status
	request.ResolutionNotes = req.ResolutionNotes
	return request, nil
}
