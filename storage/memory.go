package storage

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jumptake/backend/models"
)

// MemoryStore keeps everything in process memory. It backs tests and local
// development with STORE_BACKEND=memory.
type MemoryStore struct {
	mu sync.RWMutex

	profiles     map[string]*models.CandidateProfile
	accounts     map[string]*models.Account
	companies    map[string]*models.Company
	jobs         map[string]*models.Job
	applications map[string]*models.Application

	// insertion order per collection, used to break CreatedAt ties
	seq   map[string]int
	clock func() time.Time
}

// NewMemoryStore creates an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		profiles:     make(map[string]*models.CandidateProfile),
		accounts:     make(map[string]*models.Account),
		companies:    make(map[string]*models.Company),
		jobs:         make(map[string]*models.Job),
		applications: make(map[string]*models.Application),
		seq:          make(map[string]int),
		clock:        time.Now,
	}
}

// Close is a no-op.
func (m *MemoryStore) Close() error {
	return nil
}

func (m *MemoryStore) track(id string) {
	m.seq[id] = len(m.seq)
}

// newestFirst orders by creation time descending, later inserts first on ties.
func (m *MemoryStore) newestFirst(ids []string, created func(string) time.Time) {
	sort.SliceStable(ids, func(i, j int) bool {
		ci, cj := created(ids[i]), created(ids[j])
		if !ci.Equal(cj) {
			return ci.After(cj)
		}
		return m.seq[ids[i]] > m.seq[ids[j]]
	})
}

func copyProfile(p *models.CandidateProfile) *models.CandidateProfile {
	cp := *p
	if p.AccountID != nil {
		id := *p.AccountID
		cp.AccountID = &id
	}
	return &cp
}

func copyAccount(a *models.Account) *models.Account {
	cp := *a
	if a.JobSeekerID != nil {
		id := *a.JobSeekerID
		cp.JobSeekerID = &id
	}
	return &cp
}

func copyJob(j *models.Job) *models.Job {
	cp := *j
	cp.Requirements = append([]string(nil), j.Requirements...)
	cp.Responsibilities = append([]string(nil), j.Responsibilities...)
	cp.Skills = append([]string(nil), j.Skills...)
	return &cp
}

// Profiles

func (m *MemoryStore) CreateProfile(_ context.Context, profile *models.CandidateProfile) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if profile.ID == "" {
		profile.ID = uuid.NewString()
	}
	now := m.clock()
	profile.CreatedAt = now
	profile.UpdatedAt = now

	m.profiles[profile.ID] = copyProfile(profile)
	m.track(profile.ID)
	return nil
}

func (m *MemoryStore) GetProfile(_ context.Context, id string) (*models.CandidateProfile, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	p, ok := m.profiles[id]
	if !ok {
		return nil, notFound("Job seeker")
	}
	return copyProfile(p), nil
}

func (m *MemoryStore) GetProfileByAccount(_ context.Context, accountID string) (*models.CandidateProfile, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var found *models.CandidateProfile
	for id, p := range m.profiles {
		if p.AccountID == nil || *p.AccountID != accountID {
			continue
		}
		if found == nil || p.UpdatedAt.After(found.UpdatedAt) ||
			(p.UpdatedAt.Equal(found.UpdatedAt) && m.seq[id] > m.seq[found.ID]) {
			found = p
		}
	}
	if found == nil {
		return nil, notFound("Job seeker")
	}
	return copyProfile(found), nil
}

func (m *MemoryStore) ListProfiles(_ context.Context) ([]*models.CandidateProfile, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	ids := make([]string, 0, len(m.profiles))
	for id := range m.profiles {
		ids = append(ids, id)
	}
	m.newestFirst(ids, func(id string) time.Time { return m.profiles[id].CreatedAt })

	out := make([]*models.CandidateProfile, 0, len(ids))
	for _, id := range ids {
		out = append(out, copyProfile(m.profiles[id]))
	}
	return out, nil
}

func (m *MemoryStore) UpdateProfile(_ context.Context, id string, update models.ProfileUpdate) (*models.CandidateProfile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.profiles[id]
	if !ok {
		return nil, notFound("Job seeker")
	}
	update.Apply(p)
	p.UpdatedAt = m.clock()
	return copyProfile(p), nil
}

func (m *MemoryStore) SetProfileAccount(_ context.Context, profileID, accountID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.profiles[profileID]
	if !ok {
		return notFound("Job seeker")
	}
	p.AccountID = &accountID
	p.UpdatedAt = m.clock()
	return nil
}

func (m *MemoryStore) ClearProfileAccount(_ context.Context, profileID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.profiles[profileID]
	if !ok {
		return notFound("Job seeker")
	}
	p.AccountID = nil
	p.UpdatedAt = m.clock()
	return nil
}

// Accounts

func (m *MemoryStore) CreateAccount(_ context.Context, account *models.Account) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	account.Email = models.NormalizeEmail(account.Email)
	for _, existing := range m.accounts {
		if existing.Email == account.Email {
			return errEmailTaken()
		}
	}

	if account.ID == "" {
		account.ID = uuid.NewString()
	}
	now := m.clock()
	account.CreatedAt = now
	account.UpdatedAt = now

	m.accounts[account.ID] = copyAccount(account)
	m.track(account.ID)
	return nil
}

func (m *MemoryStore) GetAccount(_ context.Context, id string) (*models.Account, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	a, ok := m.accounts[id]
	if !ok {
		return nil, notFound("User")
	}
	return copyAccount(a), nil
}

func (m *MemoryStore) GetAccountByEmail(_ context.Context, email string) (*models.Account, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	email = models.NormalizeEmail(email)
	for _, a := range m.accounts {
		if a.Email == email {
			return copyAccount(a), nil
		}
	}
	return nil, notFound("User")
}

func (m *MemoryStore) GetAccountByGoogleID(_ context.Context, googleID string) (*models.Account, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, a := range m.accounts {
		if googleID != "" && a.GoogleID == googleID {
			return copyAccount(a), nil
		}
	}
	return nil, notFound("User")
}

func (m *MemoryStore) LinkGoogleAccount(_ context.Context, accountID, googleID string) error {
	return m.mutateAccount(accountID, func(a *models.Account) {
		a.GoogleID = googleID
	})
}

func (m *MemoryStore) SetAccountProfile(_ context.Context, accountID, profileID string) error {
	return m.mutateAccount(accountID, func(a *models.Account) {
		a.JobSeekerID = &profileID
	})
}

func (m *MemoryStore) UpdateNotificationPreferences(_ context.Context, accountID string, prefs models.NotificationPreferences) error {
	return m.mutateAccount(accountID, func(a *models.Account) {
		a.NotificationPreferences = prefs
	})
}

func (m *MemoryStore) mutateAccount(id string, fn func(*models.Account)) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	a, ok := m.accounts[id]
	if !ok {
		return notFound("User")
	}
	fn(a)
	a.UpdatedAt = m.clock()
	return nil
}

// Companies

func (m *MemoryStore) CreateCompany(_ context.Context, company *models.Company) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if company.ID == "" {
		company.ID = uuid.NewString()
	}
	company.CreatedAt = m.clock()

	cp := *company
	m.companies[company.ID] = &cp
	m.track(company.ID)
	return nil
}

func (m *MemoryStore) GetCompany(_ context.Context, id string) (*models.Company, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	c, ok := m.companies[id]
	if !ok {
		return nil, notFound("Company")
	}
	cp := *c
	return &cp, nil
}

func (m *MemoryStore) ListCompanies(_ context.Context) ([]*models.Company, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	ids := make([]string, 0, len(m.companies))
	for id := range m.companies {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return m.companies[ids[i]].Name < m.companies[ids[j]].Name })

	out := make([]*models.Company, 0, len(ids))
	for _, id := range ids {
		cp := *m.companies[id]
		out = append(out, &cp)
	}
	return out, nil
}

// Jobs

func (m *MemoryStore) CreateJob(_ context.Context, job *models.Job) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if job.ID == "" {
		job.ID = uuid.NewString()
	}
	now := m.clock()
	job.CreatedAt = now
	job.UpdatedAt = now

	m.jobs[job.ID] = copyJob(job)
	m.track(job.ID)
	return nil
}

func (m *MemoryStore) GetJob(_ context.Context, id string) (*models.Job, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	j, ok := m.jobs[id]
	if !ok {
		return nil, notFound("Job")
	}
	return copyJob(j), nil
}

func (m *MemoryStore) ListActiveJobs(_ context.Context) ([]*models.Job, error) {
	return m.listJobs(func(j *models.Job) bool { return j.Active })
}

func (m *MemoryStore) ListCompanyJobs(_ context.Context, companyID string) ([]*models.Job, error) {
	return m.listJobs(func(j *models.Job) bool { return j.CompanyID == companyID })
}

func (m *MemoryStore) listJobs(keep func(*models.Job) bool) ([]*models.Job, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var ids []string
	for id, j := range m.jobs {
		if keep(j) {
			ids = append(ids, id)
		}
	}
	m.newestFirst(ids, func(id string) time.Time { return m.jobs[id].CreatedAt })

	out := make([]*models.Job, 0, len(ids))
	for _, id := range ids {
		out = append(out, copyJob(m.jobs[id]))
	}
	return out, nil
}

func (m *MemoryStore) UpdateJob(_ context.Context, job *models.Job) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	existing, ok := m.jobs[job.ID]
	if !ok {
		return notFound("Job")
	}
	job.CreatedAt = existing.CreatedAt
	job.UpdatedAt = m.clock()
	m.jobs[job.ID] = copyJob(job)
	return nil
}

// Applications

func (m *MemoryStore) CreateApplication(_ context.Context, app *models.Application) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := models.ApplicationID(app.JobID, app.AccountID)
	if _, exists := m.applications[id]; exists {
		return errAlreadyApplied()
	}

	app.ID = id
	if app.Status == "" {
		app.Status = models.StatusSubmitted
	}
	now := m.clock()
	app.CreatedAt = now
	app.UpdatedAt = now

	cp := *app
	m.applications[id] = &cp
	m.track(id)
	return nil
}

func (m *MemoryStore) GetApplication(_ context.Context, id string) (*models.Application, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	a, ok := m.applications[id]
	if !ok {
		return nil, notFound("Application")
	}
	cp := *a
	return &cp, nil
}

func (m *MemoryStore) ListApplicationsByAccount(_ context.Context, accountID string) ([]*models.Application, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var ids []string
	for id, a := range m.applications {
		if a.AccountID == accountID {
			ids = append(ids, id)
		}
	}
	m.newestFirst(ids, func(id string) time.Time { return m.applications[id].CreatedAt })

	out := make([]*models.Application, 0, len(ids))
	for _, id := range ids {
		cp := *m.applications[id]
		out = append(out, &cp)
	}
	return out, nil
}

func (m *MemoryStore) UpdateApplicationStatus(_ context.Context, id string, status models.ApplicationStatus) (*models.Application, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	a, ok := m.applications[id]
	if !ok {
		return nil, notFound("Application")
	}
	a.Status = status
	a.UpdatedAt = m.clock()
	cp := *a
	return &cp, nil
}
