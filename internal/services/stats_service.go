package services

import (
	"context"

	"unitsync-backend/internal/apperrors"
	"unitsync-backend/internal/cache"
	"unitsync-backend/internal/models"
	"unitsync-backend/internal/repositories"
)

// StatsService computes landlord dashboard numbers. Results are cached in
// redis for a short TTL and invalidated by the write paths.
type StatsService struct {
	store repositories.Store
}

func NewStatsService(store repositories.Store) *StatsService {
	return &StatsService{store: store}
}

func (s *StatsService) LandlordStats(ctx context.Context, landlordID int, month string) (*models.DashboardStats, error) {
	if !ValidMonth(month) {
		return nil, apperrors.Validation("invalid_month", "month must be in YYYY-MM format")
	}

	var stats models.DashboardStats
	if cache.GetLandlordStats(ctx, landlordID, month, &stats) {
		return &stats, nil
	}

	properties, err := s.store.Properties().ListByLandlord(ctx, landlordID)
	if err != nil {
		return nil, err
	}

	tenants, err := s.store.Tenants().ListByLandlord(ctx, landlordID)
	if err != nil {
		return nil, err
	}
	active := 0
	for _, t := range tenants {
		if t.Status == models.TenantStatusActive {
			active++
		}
	}

	entries, due, collected, err := s.store.Ledgers().CountByLandlordMonth(ctx, landlordID, month)
	if err != nil {
		return nil, err
	}

	pending, err := s.store.Submissions().CountPendingByLandlord(ctx, landlordID)
	if err != nil {
		return nil, err
	}

	stats = models.DashboardStats{
		Month:              month,
		Properties:         len(properties),
		Tenants:            len(tenants),
		ActiveTenants:      active,
		LedgerEntries:      entries,
		AmountDue:          due,
		AmountCollected:    collected,
		PendingSubmissions: pending,
	}
	if due > 0 {
		stats.CollectionRate = collected / due * 100
	}

	cache.SetLandlordStats(ctx, landlordID, month, &stats)
	return &stats, nil
}
