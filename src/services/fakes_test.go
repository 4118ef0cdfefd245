package services_test

import (
	"context"
	"fmt"
	"sync"
	"time"

	"greenvest/src/models"
	"greenvest/src/repositories"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// memStore is a shared in-memory database for the fake repositories. The
// fake TxManager serializes whole transactions on txMu, standing in for the
// offering row lock; mu guards individual reads and writes.
type memStore struct {
	mu   sync.Mutex
	txMu sync.Mutex

	users        map[int64]*models.User
	verified     map[int64]bool
	kyc          map[int64]*models.KycVerification
	projects     map[int64]*models.Project
	offerings    map[int64]*models.Offering
	investments  map[int64]*models.Investment
	transactions map[int64]*models.Transaction
	nextID       int64
}

func newMemStore() *memStore {
	return &memStore{
		users:        make(map[int64]*models.User),
		verified:     make(map[int64]bool),
		kyc:          make(map[int64]*models.KycVerification),
		projects:     make(map[int64]*models.Project),
		offerings:    make(map[int64]*models.Offering),
		investments:  make(map[int64]*models.Investment),
		transactions: make(map[int64]*models.Transaction),
	}
}

func (s *memStore) id() int64 {
	s.nextID++
	return s.nextID
}

func (s *memStore) offeringSnapshot(id int64) (*models.Offering, error) {
	offering, ok := s.offerings[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *offering
	if project, ok := s.projects[offering.ProjectID]; ok {
		projectCopy := *project
		copied.Project = &projectCopy
	}
	return &copied, nil
}

// storeSnapshot captures the tables the confirmation scope writes to, so a
// failed transaction can be rolled back the way the real manager does.
type storeSnapshot struct {
	projects     map[int64]models.Project
	offerings    map[int64]models.Offering
	investments  map[int64]models.Investment
	transactions map[int64]models.Transaction
	nextID       int64
}

func (s *memStore) snapshot() storeSnapshot {
	snap := storeSnapshot{
		projects:     make(map[int64]models.Project, len(s.projects)),
		offerings:    make(map[int64]models.Offering, len(s.offerings)),
		investments:  make(map[int64]models.Investment, len(s.investments)),
		transactions: make(map[int64]models.Transaction, len(s.transactions)),
		nextID:       s.nextID,
	}
	for id, p := range s.projects {
		snap.projects[id] = *p
	}
	for id, o := range s.offerings {
		snap.offerings[id] = *o
	}
	for id, i := range s.investments {
		snap.investments[id] = *i
	}
	for id, t := range s.transactions {
		snap.transactions[id] = *t
	}
	return snap
}

func (s *memStore) restore(snap storeSnapshot) {
	s.projects = make(map[int64]*models.Project, len(snap.projects))
	for id := range snap.projects {
		p := snap.projects[id]
		s.projects[id] = &p
	}
	s.offerings = make(map[int64]*models.Offering, len(snap.offerings))
	for id := range snap.offerings {
		o := snap.offerings[id]
		s.offerings[id] = &o
	}
	s.investments = make(map[int64]*models.Investment, len(snap.investments))
	for id := range snap.investments {
		i := snap.investments[id]
		s.investments[id] = &i
	}
	s.transactions = make(map[int64]*models.Transaction, len(snap.transactions))
	for id := range snap.transactions {
		t := snap.transactions[id]
		s.transactions[id] = &t
	}
	s.nextID = snap.nextID
}

type fakeTxManager struct {
	store *memStore
}

func (m *fakeTxManager) WithinTx(_ context.Context, fn func(tx pgx.Tx) error) error {
	m.store.txMu.Lock()
	defer m.store.txMu.Unlock()

	m.store.mu.Lock()
	snap := m.store.snapshot()
	m.store.mu.Unlock()

	if err := fn(nil); err != nil {
		m.store.mu.Lock()
		m.store.restore(snap)
		m.store.mu.Unlock()
		return err
	}
	return nil
}

type fakeUserRepo struct {
	store *memStore
}

func (r *fakeUserRepo) GetByID(_ context.Context, id int64) (*models.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	user, ok := r.store.users[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *user
	return &copied, nil
}

type fakeKycVerifier struct {
	store *memStore
}

func (v *fakeKycVerifier) IsVerified(_ context.Context, userID int64) (bool, error) {
	v.store.mu.Lock()
	defer v.store.mu.Unlock()
	return v.store.verified[userID], nil
}

type fakeKycRepo struct {
	store *memStore
}

func (r *fakeKycRepo) GetByUserID(_ context.Context, userID int64) (*models.KycVerification, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	kyc, ok := r.store.kyc[userID]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *kyc
	return &copied, nil
}

func (r *fakeKycRepo) IsVerified(_ context.Context, userID int64) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	kyc, ok := r.store.kyc[userID]
	return ok && kyc.IsVerified(), nil
}

func (r *fakeKycRepo) Upsert(_ context.Context, userID int64, provider, status string) (*models.KycVerification, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	kyc, ok := r.store.kyc[userID]
	if !ok {
		kyc = &models.KycVerification{ID: r.store.id(), UserID: userID, CreatedAt: time.Now()}
		r.store.kyc[userID] = kyc
	}
	kyc.Provider = provider
	kyc.Status = status
	kyc.UpdatedAt = time.Now()
	copied := *kyc
	return &copied, nil
}

func (r *fakeKycRepo) MarkVerified(_ context.Context, userID int64) (*models.KycVerification, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	kyc, ok := r.store.kyc[userID]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	now := time.Now()
	kyc.Status = models.KycStatusVerified
	kyc.VerifiedAt = &now
	kyc.UpdatedAt = now
	copied := *kyc
	return &copied, nil
}

type fakeProjectRepo struct {
	store *memStore
}

func (r *fakeProjectRepo) GetAll(_ context.Context, _ repositories.ProjectFilter) ([]models.Project, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var projects []models.Project
	for _, p := range r.store.projects {
		projects = append(projects, *p)
	}
	return projects, nil
}

func (r *fakeProjectRepo) GetByID(_ context.Context, id int64) (*models.Project, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	project, ok := r.store.projects[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *project
	return &copied, nil
}

func (r *fakeProjectRepo) GetBySlug(_ context.Context, slug string) (*models.Project, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, p := range r.store.projects {
		if p.Slug == slug {
			copied := *p
			return &copied, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeProjectRepo) GetInvestorsCount(_ context.Context, projectID int64) (int, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	investors := make(map[int64]struct{})
	for _, i := range r.store.investments {
		if i.ProjectID == projectID {
			investors[i.UserID] = struct{}{}
		}
	}
	return len(investors), nil
}

func (r *fakeProjectRepo) IncrementFunding(_ context.Context, id int64, amount decimal.Decimal, _ pgx.Tx) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	project, ok := r.store.projects[id]
	if !ok {
		return pgx.ErrNoRows
	}
	project.CurrentFunding = project.CurrentFunding.Add(amount)
	return nil
}

type fakeOfferingRepo struct {
	store *memStore
}

func (r *fakeOfferingRepo) GetByID(_ context.Context, id int64) (*models.Offering, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return r.store.offeringSnapshot(id)
}

func (r *fakeOfferingRepo) GetByIDForUpdate(_ context.Context, id int64, _ pgx.Tx) (*models.Offering, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return r.store.offeringSnapshot(id)
}

func (r *fakeOfferingRepo) GetActiveByProjectID(_ context.Context, projectID int64) (*models.Offering, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	now := time.Now()
	for _, o := range r.store.offerings {
		if o.ProjectID == projectID && o.IsOpen(now) {
			copied := *o
			return &copied, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeOfferingRepo) IncrementSharesSold(_ context.Context, id int64, shares decimal.Decimal, _ pgx.Tx) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	offering, ok := r.store.offerings[id]
	if !ok {
		return pgx.ErrNoRows
	}
	offering.SharesSold = offering.SharesSold.Add(shares)
	return nil
}

type fakeInvestmentRepo struct {
	store *memStore
}

func (r *fakeInvestmentRepo) Create(_ context.Context, i *models.Investment, _ pgx.Tx) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	i.ID = r.store.id()
	i.CreatedAt = time.Now()
	i.UpdatedAt = i.CreatedAt
	copied := *i
	r.store.investments[i.ID] = &copied
	return nil
}

func (r *fakeInvestmentRepo) GetByID(_ context.Context, id int64, _ pgx.Tx) (*models.Investment, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	investment, ok := r.store.investments[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *investment
	return &copied, nil
}

func (r *fakeInvestmentRepo) GetByUserID(_ context.Context, userID int64) ([]models.Investment, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var investments []models.Investment
	for _, i := range r.store.investments {
		if i.UserID != userID {
			continue
		}
		copied := *i
		if project, ok := r.store.projects[i.ProjectID]; ok {
			projectCopy := *project
			copied.Project = &projectCopy
		}
		investments = append(investments, copied)
	}
	return investments, nil
}

type fakeTransactionRepo struct {
	store *memStore
}

func (r *fakeTransactionRepo) Create(_ context.Context, t *models.Transaction, _ pgx.Tx) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if t.ReferenceNumber == "" {
		t.ReferenceNumber = models.NewReferenceNumber()
	}
	for _, existing := range r.store.transactions {
		if existing.ReferenceNumber == t.ReferenceNumber {
			return fmt.Errorf("duplicate key value violates unique constraint %q", "transactions_reference_number_key")
		}
	}
	t.ID = r.store.id()
	t.CreatedAt = time.Now()
	t.UpdatedAt = t.CreatedAt
	copied := *t
	r.store.transactions[t.ID] = &copied
	return nil
}

func (r *fakeTransactionRepo) GetByReference(_ context.Context, reference, txnType string, _ pgx.Tx) (*models.Transaction, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, t := range r.store.transactions {
		if t.ReferenceNumber == reference && t.Type == txnType {
			copied := *t
			return &copied, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeTransactionRepo) GetRecentByUserID(_ context.Context, userID int64, limit int) ([]models.Transaction, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var transactions []models.Transaction
	for _, t := range r.store.transactions {
		if t.UserID == userID {
			transactions = append(transactions, *t)
		}
	}
	if len(transactions) > limit {
		transactions = transactions[:limit]
	}
	return transactions, nil
}
