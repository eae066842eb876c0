package storage

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/jumptake/backend/config"
	"github.com/jumptake/backend/models"
)

// ProfileStore persists candidate profiles.
type ProfileStore interface {
	CreateProfile(ctx context.Context, profile *models.CandidateProfile) error
	GetProfile(ctx context.Context, id string) (*models.CandidateProfile, error)
	// GetProfileByAccount returns the profile owned by the account, if any.
	// When several claim the account the most recently updated wins.
	GetProfileByAccount(ctx context.Context, accountID string) (*models.CandidateProfile, error)
	// ListProfiles returns every profile, newest first.
	ListProfiles(ctx context.Context) ([]*models.CandidateProfile, error)
	UpdateProfile(ctx context.Context, id string, update models.ProfileUpdate) (*models.CandidateProfile, error)
	SetProfileAccount(ctx context.Context, profileID, accountID string) error
	ClearProfileAccount(ctx context.Context, profileID string) error
}

// AccountStore persists login accounts. Emails are unique.
type AccountStore interface {
	CreateAccount(ctx context.Context, account *models.Account) error
	GetAccount(ctx context.Context, id string) (*models.Account, error)
	GetAccountByEmail(ctx context.Context, email string) (*models.Account, error)
	GetAccountByGoogleID(ctx context.Context, googleID string) (*models.Account, error)
	LinkGoogleAccount(ctx context.Context, accountID, googleID string) error
	SetAccountProfile(ctx context.Context, accountID, profileID string) error
	UpdateNotificationPreferences(ctx context.Context, accountID string, prefs models.NotificationPreferences) error
}

// CompanyStore persists employer companies.
type CompanyStore interface {
	CreateCompany(ctx context.Context, company *models.Company) error
	GetCompany(ctx context.Context, id string) (*models.Company, error)
	ListCompanies(ctx context.Context) ([]*models.Company, error)
}

// JobStore persists job postings.
type JobStore interface {
	CreateJob(ctx context.Context, job *models.Job) error
	GetJob(ctx context.Context, id string) (*models.Job, error)
	// ListActiveJobs returns active postings, newest first.
	ListActiveJobs(ctx context.Context) ([]*models.Job, error)
	ListCompanyJobs(ctx context.Context, companyID string) ([]*models.Job, error)
	UpdateJob(ctx context.Context, job *models.Job) error
}

// ApplicationStore persists job applications. A second application for the
// same (job, account) pair fails with a Duplicate error.
type ApplicationStore interface {
	CreateApplication(ctx context.Context, app *models.Application) error
	GetApplication(ctx context.Context, id string) (*models.Application, error)
	ListApplicationsByAccount(ctx context.Context, accountID string) ([]*models.Application, error)
	UpdateApplicationStatus(ctx context.Context, id string, status models.ApplicationStatus) (*models.Application, error)
}

// Store aggregates every collection.
type Store interface {
	ProfileStore
	AccountStore
	CompanyStore
	JobStore
	ApplicationStore
	Close() error
}

var (
	_ Store = (*MemoryStore)(nil)
	_ Store = (*FirestoreClient)(nil)
	_ Store = (*PostgresStore)(nil)
)

// Open connects the backend selected by STORE_BACKEND.
func Open(ctx context.Context, cfg *config.Config, log *zap.Logger) (Store, error) {
	switch cfg.StoreBackend {
	case config.StoreFirestore:
		fs, err := NewFirestoreClient(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return fs, nil
	case config.StorePostgres:
		pg, err := NewPostgresStore(ctx, cfg, log)
		if err != nil {
			return nil, err
		}
		return pg, nil
	case config.StoreMemory:
		log.Warn("using in-memory store, data is lost on restart")
		return NewMemoryStore(), nil
	default:
		return nil, &config.ConfigError{Field: "STORE_BACKEND", Message: fmt.Sprintf("unknown store backend %q", cfg.StoreBackend)}
	}
}
