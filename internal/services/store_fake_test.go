package services

import (
	"context"
	"sort"
	"time"

	"unitsync-backend/internal/models"
	"unitsync-backend/internal/repositories"
)

// fakeStore is an in-memory Store for service tests. It mimics the database
// contract the services rely on: lookups return nil for missing rows, reads
// return copies, and the (tenant, month) ledger pair is unique.
type fakeStore struct {
	users       map[int]*models.User
	properties  map[int]*models.Property
	units       map[int]*models.Unit
	tenants     map[int]*models.Tenant
	ledgers     map[int]*models.RentLedger
	payments    map[int]*models.Payment
	submissions map[int]*models.PaymentSubmission
	maintenance map[int]*models.MaintenanceRequest
	nextID      int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:       make(map[int]*models.User),
		properties:  make(map[int]*models.Property),
		units:       make(map[int]*models.Unit),
		tenants:     make(map[int]*models.Tenant),
		ledgers:     make(map[int]*models.RentLedger),
		payments:    make(map[int]*models.Payment),
		submissions: make(map[int]*models.PaymentSubmission),
		maintenance: make(map[int]*models.MaintenanceRequest),
	}
}

func (f *fakeStore) id() int {
	f.nextID++
	return f.nextID
}

func (f *fakeStore) Users() repositories.UserStore             { return &fakeUsers{f} }
func (f *fakeStore) Properties() repositories.PropertyStore    { return &fakeProperties{f} }
func (f *fakeStore) Units() repositories.UnitStore             { return &fakeUnits{f} }
func (f *fakeStore) Tenants() repositories.TenantStore         { return &fakeTenants{f} }
func (f *fakeStore) Ledgers() repositories.LedgerStore         { return &fakeLedgers{f} }
func (f *fakeStore) Payments() repositories.PaymentStore       { return &fakePayments{f} }
func (f *fakeStore) Submissions() repositories.SubmissionStore { return &fakeSubmissions{f} }
func (f *fakeStore) Maintenance() repositories.MaintenanceStore {
	return &fakeMaintenance{f}
}

func (f *fakeStore) WithTx(ctx context.Context, fn func(repositories.Store) error) error {
	return fn(f)
}

// seed helpers

func (f *fakeStore) addUser(u models.User) *models.User {
	u.ID = f.id()
	u.IsActive = true
	f.users[u.ID] = &u
	return &u
}

func (f *fakeStore) addProperty(p models.Property) *models.Property {
	p.ID = f.id()
	f.properties[p.ID] = &p
	return &p
}

func (f *fakeStore) addUnit(u models.Unit) *models.Unit {
	u.ID = f.id()
	f.units[u.ID] = &u
	return &u
}

func (f *fakeStore) addTenant(t models.Tenant) *models.Tenant {
	t.ID = f.id()
	if t.Status == "" {
		t.Status = models.TenantStatusActive
	}
	f.tenants[t.ID] = &t
	return &t
}

// addOccupant wires a tenant into a unit with both back-references set
func (f *fakeStore) addOccupant(landlordID, propertyID int, rent float64) (*models.Tenant, *models.Unit) {
	unit := f.addUnit(models.Unit{PropertyID: propertyID, UnitNumber: "A1", RentAmount: rent})
	tenant := f.addTenant(models.Tenant{
		LandlordID: landlordID,
		PropertyID: &propertyID,
		UnitID:     &unit.ID,
		FullName:   "Jane Wanjiku",
		Phone:      "0712345678",
		AccessCode: "TESTCODE",
	})
	unit.TenantID = &tenant.ID
	return tenant, unit
}

type fakeUsers struct{ f *fakeStore }

func (r *fakeUsers) Create(ctx context.Context, u *models.User) error {
	u.ID = r.f.id()
	cp := *u
	r.f.users[u.ID] = &cp
	return nil
}

func (r *fakeUsers) Get(ctx context.Context, id int) (*models.User, error) {
	u, ok := r.f.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUsers) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, u := range r.f.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUsers) SetTOTPSecret(ctx context.Context, userID int, secret string) error {
	if u, ok := r.f.users[userID]; ok {
		u.TOTPSecret = secret
		u.TOTPEnabled = false
	}
	return nil
}

func (r *fakeUsers) EnableTOTP(ctx context.Context, userID int) error {
	if u, ok := r.f.users[userID]; ok {
		u.TOTPEnabled = true
	}
	return nil
}

func (r *fakeUsers) DisableTOTP(ctx context.Context, userID int) error {
	if u, ok := r.f.users[userID]; ok {
		u.TOTPSecret = ""
		u.TOTPEnabled = false
	}
	return nil
}

type fakeProperties struct{ f *fakeStore }

func (r *fakeProperties) Create(ctx context.Context, p *models.Property) error {
	p.ID = r.f.id()
	cp := *p
	r.f.properties[p.ID] = &cp
	return nil
}

func (r *fakeProperties) Get(ctx context.Context, id int) (*models.Property, error) {
	p, ok := r.f.properties[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProperties) ListByLandlord(ctx context.Context, landlordID int) ([]models.Property, error) {
	var out []models.Property
	for _, p := range r.f.properties {
		if p.LandlordID == landlordID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakeProperties) Update(ctx context.Context, p *models.Property) error {
	cp := *p
	r.f.properties[p.ID] = &cp
	return nil
}

func (r *fakeProperties) Delete(ctx context.Context, id int) error {
	delete(r.f.properties, id)
	return nil
}

type fakeUnits struct{ f *fakeStore }

func (r *fakeUnits) Create(ctx context.Context, u *models.Unit) error {
	u.ID = r.f.id()
	cp := *u
	r.f.units[u.ID] = &cp
	return nil
}

func (r *fakeUnits) Get(ctx context.Context, id int) (*models.Unit, error) {
	u, ok := r.f.units[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUnits) ListByProperty(ctx context.Context, propertyID int) ([]models.Unit, error) {
	var out []models.Unit
	for _, u := range r.f.units {
		if u.PropertyID == propertyID {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (r *fakeUnits) Update(ctx context.Context, u *models.Unit) error {
	if stored, ok := r.f.units[u.ID]; ok {
		stored.UnitNumber = u.UnitNumber
		stored.RentAmount = u.RentAmount
	}
	return nil
}

func (r *fakeUnits) SetTenant(ctx context.Context, unitID int, tenantID *int) error {
	if u, ok := r.f.units[unitID]; ok {
		u.TenantID = tenantID
	}
	return nil
}

func (r *fakeUnits) Delete(ctx context.Context, id int) error {
	delete(r.f.units, id)
	return nil
}

type fakeTenants struct{ f *fakeStore }

func (r *fakeTenants) Create(ctx context.Context, t *models.Tenant) error {
	t.ID = r.f.id()
	cp := *t
	r.f.tenants[t.ID] = &cp
	return nil
}

func (r *fakeTenants) Get(ctx context.Context, id int) (*models.Tenant, error) {
	t, ok := r.f.tenants[id]
	if !ok {
		return nil, nil
	}
	cp := *t
	return &cp, nil
}

func (r *fakeTenants) GetByPhone(ctx context.Context, phone string) (*models.Tenant, error) {
	for _, t := range r.f.tenants {
		if t.Phone == phone {
			cp := *t
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeTenants) ListByLandlord(ctx context.Context, landlordID int) ([]models.Tenant, error) {
	var out []models.Tenant
	for _, t := range r.f.tenants {
		if t.LandlordID == landlordID {
			out = append(out, *t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeTenants) Update(ctx context.Context, t *models.Tenant) error {
	if stored, ok := r.f.tenants[t.ID]; ok {
		stored.FullName = t.FullName
		stored.Phone = t.Phone
		stored.Email = t.Email
		stored.LeaseStart = t.LeaseStart
		stored.LeaseEnd = t.LeaseEnd
	}
	return nil
}

func (r *fakeTenants) SetAccessCode(ctx context.Context, tenantID int, code string) error {
	if t, ok := r.f.tenants[tenantID]; ok {
		t.AccessCode = code
	}
	return nil
}

func (r *fakeTenants) SetAssignment(ctx context.Context, tenantID int, unitID, propertyID *int, status string) error {
	if t, ok := r.f.tenants[tenantID]; ok {
		t.UnitID = unitID
		t.PropertyID = propertyID
		t.Status = status
	}
	return nil
}

type fakeLedgers struct{ f *fakeStore }

func (r *fakeLedgers) Create(ctx context.Context, l *models.RentLedger) error {
	l.ID = r.f.id()
	cp := *l
	r.f.ledgers[l.ID] = &cp
	return nil
}

func (r *fakeLedgers) Get(ctx context.Context, id int) (*models.RentLedger, error) {
	l, ok := r.f.ledgers[id]
	if !ok {
		return nil, nil
	}
	cp := *l
	return &cp, nil
}

func (r *fakeLedgers) GetByTenantMonth(ctx context.Context, tenantID int, month string) (*models.RentLedger, error) {
	for _, l := range r.f.ledgers {
		if l.TenantID == tenantID && l.Month == month {
			cp := *l
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeLedgers) GetByTenantMonthForUpdate(ctx context.Context, tenantID int, month string) (*models.RentLedger, error) {
	return r.GetByTenantMonth(ctx, tenantID, month)
}

func (r *fakeLedgers) GetForUpdate(ctx context.Context, id int) (*models.RentLedger, error) {
	return r.Get(ctx, id)
}

func (r *fakeLedgers) UpdateTotals(ctx context.Context, ledgerID int, amountPaid float64, status string) error {
	if l, ok := r.f.ledgers[ledgerID]; ok {
		l.AmountPaid = amountPaid
		l.Status = status
	}
	return nil
}

func (r *fakeLedgers) ListByLandlordMonth(ctx context.Context, landlordID int, month string) ([]models.LedgerDetail, error) {
	var out []models.LedgerDetail
	for _, l := range r.f.ledgers {
		if l.LandlordID != landlordID || l.Month != month {
			continue
		}
		d := models.LedgerDetail{RentLedger: *l}
		if t, ok := r.f.tenants[l.TenantID]; ok {
			d.TenantName = t.FullName
			d.TenantPhone = t.Phone
		}
		if u, ok := r.f.units[l.UnitID]; ok {
			d.UnitNumber = u.UnitNumber
		}
		if p, ok := r.f.properties[l.PropertyID]; ok {
			d.PropertyName = p.Name
		}
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeLedgers) ListByTenant(ctx context.Context, tenantID int) ([]models.RentLedger, error) {
	var out []models.RentLedger
	for _, l := range r.f.ledgers {
		if l.TenantID == tenantID {
			out = append(out, *l)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month > out[j].Month })
	return out, nil
}

func (r *fakeLedgers) CountByLandlordMonth(ctx context.Context, landlordID int, month string) (int, float64, float64, error) {
	var entries int
	var due, collected float64
	for _, l := range r.f.ledgers {
		if l.LandlordID == landlordID && l.Month == month {
			entries++
			due += l.AmountDue
			collected += l.AmountPaid
		}
	}
	return entries, due, collected, nil
}

type fakePayments struct{ f *fakeStore }

func (r *fakePayments) Create(ctx context.Context, p *models.Payment) error {
	p.ID = r.f.id()
	p.CreatedAt = time.Now()
	cp := *p
	r.f.payments[p.ID] = &cp
	return nil
}

func (r *fakePayments) Get(ctx context.Context, id int) (*models.Payment, error) {
	p, ok := r.f.payments[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakePayments) Delete(ctx context.Context, id int) error {
	delete(r.f.payments, id)
	return nil
}

func (r *fakePayments) SumByLedger(ctx context.Context, ledgerID int) (float64, error) {
	var total float64
	for _, p := range r.f.payments {
		if p.LedgerID == ledgerID {
			total += p.Amount
		}
	}
	return total, nil
}

func (r *fakePayments) ListByLedger(ctx context.Context, ledgerID int) ([]models.Payment, error) {
	var out []models.Payment
	for _, p := range r.f.payments {
		if p.LedgerID == ledgerID {
			out = append(out, *p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

type fakeSubmissions struct{ f *fakeStore }

func (r *fakeSubmissions) Create(ctx context.Context, s *models.PaymentSubmission) error {
	s.ID = r.f.id()
	s.CreatedAt = time.Now()
	cp := *s
	r.f.submissions[s.ID] = &cp
	return nil
}

func (r *fakeSubmissions) Get(ctx context.Context, id int) (*models.PaymentSubmission, error) {
	s, ok := r.f.submissions[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (r *fakeSubmissions) GetForUpdate(ctx context.Context, id int) (*models.PaymentSubmission, error) {
	return r.Get(ctx, id)
}

func (r *fakeSubmissions) Delete(ctx context.Context, id int) error {
	delete(r.f.submissions, id)
	return nil
}

func (r *fakeSubmissions) MarkApproved(ctx context.Context, id, reviewerID, paymentID int) error {
	if s, ok := r.f.submissions[id]; ok {
		now := time.Now()
		s.Status = models.SubmissionStatusApproved
		s.ReviewedBy = &reviewerID
		s.ReviewedAt = &now
		s.PaymentID = &paymentID
	}
	return nil
}

func (r *fakeSubmissions) MarkRejected(ctx context.Context, id, reviewerID int, reason string) error {
	if s, ok := r.f.submissions[id]; ok {
		now := time.Now()
		s.Status = models.SubmissionStatusRejected
		s.ReviewedBy = &reviewerID
		s.ReviewedAt = &now
		s.RejectionReason = reason
	}
	return nil
}

func (r *fakeSubmissions) List(ctx context.Context, filter models.SubmissionFilter) ([]models.SubmissionDetail, error) {
	var out []models.SubmissionDetail
	for _, s := range r.f.submissions {
		if filter.LandlordID != 0 && s.LandlordID != filter.LandlordID {
			continue
		}
		if filter.TenantID != 0 && s.TenantID != filter.TenantID {
			continue
		}
		if filter.Status != "" && s.Status != filter.Status {
			continue
		}
		d := models.SubmissionDetail{PaymentSubmission: *s}
		if t, ok := r.f.tenants[s.TenantID]; ok {
			d.TenantName = t.FullName
			d.TenantPhone = t.Phone
		}
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeSubmissions) CountPendingByLandlord(ctx context.Context, landlordID int) (int, error) {
	n := 0
	for _, s := range r.f.submissions {
		if s.LandlordID == landlordID && s.Status == models.SubmissionStatusPending {
			n++
		}
	}
	return n, nil
}

type fakeMaintenance struct{ f *fakeStore }

func (r *fakeMaintenance) Create(ctx context.Context, m *models.MaintenanceRequest) error {
	m.ID = r.f.id()
	cp := *m
	r.f.maintenance[m.ID] = &cp
	return nil
}

func (r *fakeMaintenance) Get(ctx context.Context, id int) (*models.MaintenanceRequest, error) {
	m, ok := r.f.maintenance[id]
	if !ok {
		return nil, nil
	}
	cp := *m
	return &cp, nil
}

func (r *fakeMaintenance) ListByLandlord(ctx context.Context, landlordID int) ([]models.MaintenanceRequest, error) {
	var out []models.MaintenanceRequest
	for _, m := range r.f.maintenance {
		if m.LandlordID == landlordID {
			out = append(out, *m)
		}
	}
	return out, nil
}

func (r *fakeMaintenance) ListByTenant(ctx context.Context, tenantID int) ([]models.MaintenanceRequest, error) {
	var out []models.MaintenanceRequest
	for _, m := range r.f.maintenance {
		if m.TenantID == tenantID {
			out = append(out, *m)
		}
	}
	return out, nil
}

func (r *fakeMaintenance) UpdateStatus(ctx context.Context, id int, status, resolutionNotes string) error {
	if m, ok := r.f.maintenance[id]; ok {
		m.Status = status
		m.ResolutionNotes = resolutionNotes
	}
	return nil
}

var _ repositories.Store = (*fakeStore)(nil)
