package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"unitsync-backend/internal/models"
)

// UserStore covers landlord/admin account persistence
type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	Get(ctx context.Context, id int) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	SetTOTPSecret(ctx context.Context, userID int, secret string) error
	EnableTOTP(ctx context.Context, userID int) error
	DisableTOTP(ctx context.Context, userID int) error
}

type PropertyStore interface {
	Create(ctx context.Context, p *models.Property) error
	Get(ctx context.Context, id int) (*models.Property, error)
	ListByLandlord(ctx context.Context, landlordID int) ([]models.Property, error)
	Update(ctx context.Context, p *models.Property) error
	Delete(ctx context.Context, id int) error
}

type UnitStore interface {
	Create(ctx context.Context, u *models.Unit) error
	Get(ctx context.Context, id int) (*models.Unit, error)
	ListByProperty(ctx context.Context, propertyID int) ([]models.Unit, error)
	Update(ctx context.Context, u *models.Unit) error
	SetTenant(ctx context.Context, unitID int, tenantID *int) error
	Delete(ctx context.Context, id int) error
}

type TenantStore interface {
	Create(ctx context.Context, t *models.Tenant) error
	Get(ctx context.Context, id int) (*models.Tenant, error)
	GetByPhone(ctx context.Context, phone string) (*models.Tenant, error)
	ListByLandlord(ctx context.Context, landlordID int) ([]models.Tenant, error)
	Update(ctx context.Context, t *models.Tenant) error
	SetAccessCode(ctx context.Context, tenantID int, code string) error
	SetAssignment(ctx context.Context, tenantID int, unitID, propertyID *int, status string) error
}

type LedgerStore interface {
	Create(ctx context.Context, l *models.RentLedger) error
	Get(ctx context.Context, id int) (*models.RentLedger, error)
	GetByTenantMonth(ctx context.Context, tenantID int, month string) (*models.RentLedger, error)
	GetByTenantMonthForUpdate(ctx context.Context, tenantID int, month string) (*models.RentLedger, error)
	GetForUpdate(ctx context.Context, id int) (*models.RentLedger, error)
	UpdateTotals(ctx context.Context, ledgerID int, amountPaid float64, status string) error
	ListByLandlordMonth(ctx context.Context, landlordID int, month string) ([]models.LedgerDetail, error)
	ListByTenant(ctx context.Context, tenantID int) ([]models.RentLedger, error)
	CountByLandlordMonth(ctx context.Context, landlordID int, month string) (entries int, due, collected float64, err error)
}

type PaymentStore interface {
	Create(ctx context.Context, p *models.Payment) error
	Get(ctx context.Context, id int) (*models.Payment, error)
	Delete(ctx context.Context, id int) error
	SumByLedger(ctx context.Context, ledgerID int) (float64, error)
	ListByLedger(ctx context.Context, ledgerID int) ([]models.Payment, error)
}

type SubmissionStore interface {
	Create(ctx context.Context, s *models.PaymentSubmission) error
	Get(ctx context.Context, id int) (*models.PaymentSubmission, error)
	GetForUpdate(ctx context.Context, id int) (*models.PaymentSubmission, error)
	Delete(ctx context.Context, id int) error
	MarkApproved(ctx context.Context, id, reviewerID, paymentID int) error
	MarkRejected(ctx context.Context, id, reviewerID int, reason string) error
	List(ctx context.Context, filter models.SubmissionFilter) ([]models.SubmissionDetail, error)
	CountPendingByLandlord(ctx context.Context, landlordID int) (int, error)
}

type MaintenanceStore interface {
	Create(ctx context.Context, m *models.MaintenanceRequest) error
	Get(ctx context.Context, id int) (*models.MaintenanceRequest, error)
	ListByLandlord(ctx context.Context, landlordID int) ([]models.MaintenanceRequest, error)
	ListByTenant(ctx context.Context, tenantID int) ([]models.MaintenanceRequest, error)
	UpdateStatus(ctx context.Context, id int, status, resolutionNotes string) error
}

// Store aggregates the repositories behind one handle. WithTx hands the
// callback a Store whose repositories all run on the same transaction, so
// multi-table writes commit or roll back together.
type Store interface {
	Users() UserStore
	Properties() PropertyStore
	Units() UnitStore
	Tenants() TenantStore
	Ledgers() LedgerStore
	Payments() PaymentStore
	Submissions() SubmissionStore
	Maintenance() MaintenanceStore

	WithTx(ctx context.Context, fn func(Store) error) error
}

// SQLStore is the pgx-backed Store. The zero value is not usable; construct
// with NewStore.
type SQLStore struct {
	pool *pgxpool.Pool

	users       *UserRepository
	properties  *PropertyRepository
	units       *UnitRepository
	tenants     *TenantRepository
	ledgers     *LedgerRepository
	payments    *PaymentRepository
	submissions *SubmissionRepository
	maintenance *MaintenanceRepository
}

func NewStore(pool *pgxpool.Pool) *SQLStore {
	s := &SQLStore{pool: pool}
	s.bind(pool)
	return s
}

func (s *SQLStore) bind(db DBTX) {
	s.users = NewUserRepository(db)
	s.properties = NewPropertyRepository(db)
	s.units = NewUnitRepository(db)
	s.tenants = NewTenantRepository(db)
	s.ledgers = NewLedgerRepository(db)
	s.payments = NewPaymentRepository(db)
	s.submissions = NewSubmissionRepository(db)
	s.maintenance = NewMaintenanceRepository(db)
}

func (s *SQLStore) Users() UserStore              { return s.users }
func (s *SQLStore) Properties() PropertyStore     { return s.properties }
func (s *SQLStore) Units() UnitStore              { return s.units }
func (s *SQLStore) Tenants() TenantStore          { return s.tenants }
func (s *SQLStore) Ledgers() LedgerStore          { return s.ledgers }
func (s *SQLStore) Payments() PaymentStore        { return s.payments }
func (s *SQLStore) Submissions() SubmissionStore  { return s.submissions }
func (s *SQLStore) Maintenance() MaintenanceStore { return s.maintenance }

// WithTx runs fn inside a database transaction. A nested call reuses the
// pool and opens a fresh transaction; callers should not nest.
func (s *SQLStore) WithTx(ctx context.Context, fn func(Store) error) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	txStore := &SQLStore{pool: s.pool}
	txStore.bind(tx)

	if err := fn(txStore); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

var _ Store = (*SQLStore)(nil)
var _ DBTX = (*pgxpool.Pool)(nil)
var _ DBTX = (pgx.Tx)(nil)
