package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/jumptake/backend/config"
	"github.com/jumptake/backend/models"
)

const (
	profilesCollection     = "jobseekers"
	usersCollection        = "users"
	userEmailsCollection   = "user_emails"
	companiesCollection    = "companies"
	jobsCollection         = "jobs"
	applicationsCollection = "applications"
)

// FirestoreClient wraps Firestore operations
type FirestoreClient struct {
	client *firestore.Client
}

// NewFirestoreClient creates a new Firestore client
func NewFirestoreClient(ctx context.Context, cfg *config.Config) (*FirestoreClient, error) {
	client, err := firestore.NewClient(ctx, cfg.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("failed to create Firestore client: %w", err)
	}

	return &FirestoreClient{client: client}, nil
}

// Close closes the Firestore client
func (f *FirestoreClient) Close() error {
	return f.client.Close()
}

func isNotFound(err error) bool {
	return status.Code(err) == codes.NotFound
}

// collect decodes every document of the iterator.
func collect[T any](iter *firestore.DocumentIterator, withID func(*T, string)) ([]*T, error) {
	defer iter.Stop()

	out := []*T{}
	for {
		doc, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to query documents: %w", err)
		}

		var v T
		if err := doc.DataTo(&v); err != nil {
			return nil, fmt.Errorf("failed to parse document %s: %w", doc.Ref.ID, err)
		}
		withID(&v, doc.Ref.ID)
		out = append(out, &v)
	}
	return out, nil
}

// get decodes a single document, mapping a missing document to NotFound.
func get[T any](ctx context.Context, ref *firestore.DocumentRef, what string) (*T, error) {
	doc, err := ref.Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, notFound(what)
		}
		return nil, fmt.Errorf("failed to get %s: %w", what, err)
	}

	var v T
	if err := doc.DataTo(&v); err != nil {
		return nil, fmt.Errorf("failed to parse %s data: %w", what, err)
	}
	return &v, nil
}

// update applies field updates, mapping a missing document to NotFound.
func (f *FirestoreClient) update(ctx context.Context, ref *firestore.DocumentRef, what string, updates []firestore.Update) error {
	updates = append(updates, firestore.Update{Path: "updatedAt", Value: time.Now()})
	if _, err := ref.Update(ctx, updates); err != nil {
		if isNotFound(err) {
			return notFound(what)
		}
		return fmt.Errorf("failed to update %s: %w", what, err)
	}
	return nil
}

// Profiles

// CreateProfile stores a new job seeker profile
func (f *FirestoreClient) CreateProfile(ctx context.Context, profile *models.CandidateProfile) error {
	if profile.ID == "" {
		profile.ID = uuid.NewString()
	}
	profile.CreatedAt = time.Now()
	profile.UpdatedAt = profile.CreatedAt

	if _, err := f.client.Collection(profilesCollection).Doc(profile.ID).Create(ctx, profile); err != nil {
		return fmt.Errorf("failed to create job seeker: %w", err)
	}
	return nil
}

// GetProfile retrieves a job seeker profile by ID
func (f *FirestoreClient) GetProfile(ctx context.Context, id string) (*models.CandidateProfile, error) {
	p, err := get[models.CandidateProfile](ctx, f.client.Collection(profilesCollection).Doc(id), "Job seeker")
	if err != nil {
		return nil, err
	}
	p.ID = id
	return p, nil
}

// GetProfileByAccount retrieves the most recently updated profile linked
// to an account
func (f *FirestoreClient) GetProfileByAccount(ctx context.Context, accountID string) (*models.CandidateProfile, error) {
	iter := f.client.Collection(profilesCollection).
		Where("accountId", "==", accountID).
		OrderBy("updatedAt", firestore.Desc).
		Limit(1).
		Documents(ctx)
	profiles, err := collect(iter, func(p *models.CandidateProfile, id string) { p.ID = id })
	if err != nil {
		return nil, err
	}
	if len(profiles) == 0 {
		return nil, notFound("Job seeker")
	}
	return profiles[0], nil
}

// ListProfiles returns all profiles, newest first
func (f *FirestoreClient) ListProfiles(ctx context.Context) ([]*models.CandidateProfile, error) {
	iter := f.client.Collection(profilesCollection).OrderBy("createdAt", firestore.Desc).Documents(ctx)
	return collect(iter, func(p *models.CandidateProfile, id string) { p.ID = id })
}

// UpdateProfile applies an allow-listed partial update
func (f *FirestoreClient) UpdateProfile(ctx context.Context, id string, update models.ProfileUpdate) (*models.CandidateProfile, error) {
	var updates []firestore.Update
	if update.Name != nil {
		updates = append(updates, firestore.Update{Path: "name", Value: *update.Name})
	}
	if update.Email != nil {
		updates = append(updates, firestore.Update{Path: "email", Value: *update.Email})
	}
	for path, list := range map[string]*models.TextList{
		"skills":       update.Skills,
		"interests":    update.Interests,
		"hobbies":      update.Hobbies,
		"achievements": update.Achievements,
	} {
		if list != nil {
			updates = append(updates, firestore.Update{Path: path, Value: *list})
		}
	}
	for path, entries := range map[string]*models.EntryList{
		"education":  update.Education,
		"experience": update.Experience,
	} {
		if entries != nil {
			updates = append(updates, firestore.Update{Path: path, Value: *entries})
		}
	}

	ref := f.client.Collection(profilesCollection).Doc(id)
	if err := f.update(ctx, ref, "Job seeker", updates); err != nil {
		return nil, err
	}
	return f.GetProfile(ctx, id)
}

// SetProfileAccount records the owning account on a profile
func (f *FirestoreClient) SetProfileAccount(ctx context.Context, profileID, accountID string) error {
	ref := f.client.Collection(profilesCollection).Doc(profileID)
	return f.update(ctx, ref, "Job seeker", []firestore.Update{{Path: "accountId", Value: accountID}})
}

// ClearProfileAccount removes the owning account from a profile
func (f *FirestoreClient) ClearProfileAccount(ctx context.Context, profileID string) error {
	ref := f.client.Collection(profilesCollection).Doc(profileID)
	return f.update(ctx, ref, "Job seeker", []firestore.Update{{Path: "accountId", Value: nil}})
}

// Accounts

// CreateAccount creates a new user. Email uniqueness is kept by an index
// document keyed by the email, written in the same transaction.
func (f *FirestoreClient) CreateAccount(ctx context.Context, account *models.Account) error {
	account.Email = models.NormalizeEmail(account.Email)
	if account.ID == "" {
		account.ID = uuid.NewString()
	}
	account.CreatedAt = time.Now()
	account.UpdatedAt = account.CreatedAt

	emailRef := f.client.Collection(userEmailsCollection).Doc(account.Email)
	userRef := f.client.Collection(usersCollection).Doc(account.ID)

	err := f.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		_, err := tx.Get(emailRef)
		if err == nil {
			return errEmailTaken()
		}
		if !isNotFound(err) {
			return fmt.Errorf("failed to check user existence: %w", err)
		}

		if err := tx.Create(emailRef, map[string]any{"userId": account.ID}); err != nil {
			return err
		}
		return tx.Create(userRef, account)
	})
	if err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return errEmailTaken()
		}
		return err
	}
	return nil
}

// GetAccount retrieves a user by ID
func (f *FirestoreClient) GetAccount(ctx context.Context, id string) (*models.Account, error) {
	a, err := get[models.Account](ctx, f.client.Collection(usersCollection).Doc(id), "User")
	if err != nil {
		return nil, err
	}
	a.ID = id
	return a, nil
}

// GetAccountByEmail retrieves a user by email
func (f *FirestoreClient) GetAccountByEmail(ctx context.Context, email string) (*models.Account, error) {
	doc, err := f.client.Collection(userEmailsCollection).Doc(models.NormalizeEmail(email)).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, notFound("User")
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	id, ok := doc.Data()["userId"].(string)
	if !ok {
		return nil, notFound("User")
	}
	return f.GetAccount(ctx, id)
}

// GetAccountByGoogleID retrieves a user by Google ID
func (f *FirestoreClient) GetAccountByGoogleID(ctx context.Context, googleID string) (*models.Account, error) {
	iter := f.client.Collection(usersCollection).Where("googleId", "==", googleID).Limit(1).Documents(ctx)
	accounts, err := collect(iter, func(a *models.Account, id string) { a.ID = id })
	if err != nil {
		return nil, err
	}
	if len(accounts) == 0 {
		return nil, notFound("User")
	}
	return accounts[0], nil
}

// LinkGoogleAccount attaches a Google identity to an existing user
func (f *FirestoreClient) LinkGoogleAccount(ctx context.Context, accountID, googleID string) error {
	ref := f.client.Collection(usersCollection).Doc(accountID)
	return f.update(ctx, ref, "User", []firestore.Update{{Path: "googleId", Value: googleID}})
}

// SetAccountProfile records the job seeker profile on a user
func (f *FirestoreClient) SetAccountProfile(ctx context.Context, accountID, profileID string) error {
	ref := f.client.Collection(usersCollection).Doc(accountID)
	return f.update(ctx, ref, "User", []firestore.Update{{Path: "jobSeekerId", Value: profileID}})
}

// UpdateNotificationPreferences replaces a user's notification preferences
func (f *FirestoreClient) UpdateNotificationPreferences(ctx context.Context, accountID string, prefs models.NotificationPreferences) error {
	ref := f.client.Collection(usersCollection).Doc(accountID)
	return f.update(ctx, ref, "User", []firestore.Update{{Path: "notificationPreferences", Value: prefs}})
}

// Companies

// CreateCompany stores a new company
func (f *FirestoreClient) CreateCompany(ctx context.Context, company *models.Company) error {
	if company.ID == "" {
		company.ID = uuid.NewString()
	}
	company.CreatedAt = time.Now()

	if _, err := f.client.Collection(companiesCollection).Doc(company.ID).Create(ctx, company); err != nil {
		return fmt.Errorf("failed to create company: %w", err)
	}
	return nil
}

// GetCompany retrieves a company by ID
func (f *FirestoreClient) GetCompany(ctx context.Context, id string) (*models.Company, error) {
	c, err := get[models.Company](ctx, f.client.Collection(companiesCollection).Doc(id), "Company")
	if err != nil {
		return nil, err
	}
	c.ID = id
	return c, nil
}

// ListCompanies returns all companies by name
func (f *FirestoreClient) ListCompanies(ctx context.Context) ([]*models.Company, error) {
	iter := f.client.Collection(companiesCollection).OrderBy("name", firestore.Asc).Documents(ctx)
	return collect(iter, func(c *models.Company, id string) { c.ID = id })
}

// Jobs

// CreateJob stores a new job posting
func (f *FirestoreClient) CreateJob(ctx context.Context, job *models.Job) error {
	if job.ID == "" {
		job.ID = uuid.NewString()
	}
	job.CreatedAt = time.Now()
	job.UpdatedAt = job.CreatedAt

	if _, err := f.client.Collection(jobsCollection).Doc(job.ID).Create(ctx, job); err != nil {
		return fmt.Errorf("failed to create job: %w", err)
	}
	return nil
}

// GetJob retrieves a job by ID
func (f *FirestoreClient) GetJob(ctx context.Context, id string) (*models.Job, error) {
	j, err := get[models.Job](ctx, f.client.Collection(jobsCollection).Doc(id), "Job")
	if err != nil {
		return nil, err
	}
	j.ID = id
	return j, nil
}

// ListActiveJobs returns active jobs, newest first
func (f *FirestoreClient) ListActiveJobs(ctx context.Context) ([]*models.Job, error) {
	iter := f.client.Collection(jobsCollection).
		Where("active", "==", true).
		OrderBy("createdAt", firestore.Desc).
		Documents(ctx)
	return collect(iter, func(j *models.Job, id string) { j.ID = id })
}

// ListCompanyJobs returns every job of a company, newest first
func (f *FirestoreClient) ListCompanyJobs(ctx context.Context, companyID string) ([]*models.Job, error) {
	iter := f.client.Collection(jobsCollection).
		Where("companyId", "==", companyID).
		OrderBy("createdAt", firestore.Desc).
		Documents(ctx)
	return collect(iter, func(j *models.Job, id string) { j.ID = id })
}

// UpdateJob overwrites an existing job
func (f *FirestoreClient) UpdateJob(ctx context.Context, job *models.Job) error {
	ref := f.client.Collection(jobsCollection).Doc(job.ID)
	job.UpdatedAt = time.Now()

	err := f.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		if _, err := tx.Get(ref); err != nil {
			if isNotFound(err) {
				return notFound("Job")
			}
			return err
		}
		return tx.Set(ref, job)
	})
	if err != nil {
		return err
	}
	return nil
}

// Applications

// CreateApplication stores an application. The document ID is derived from
// the (job, user) pair, so Create fails on a second application.
func (f *FirestoreClient) CreateApplication(ctx context.Context, app *models.Application) error {
	app.ID = models.ApplicationID(app.JobID, app.AccountID)
	if app.Status == "" {
		app.Status = models.StatusSubmitted
	}
	app.CreatedAt = time.Now()
	app.UpdatedAt = app.CreatedAt

	if _, err := f.client.Collection(applicationsCollection).Doc(app.ID).Create(ctx, app); err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return errAlreadyApplied()
		}
		return fmt.Errorf("failed to create application: %w", err)
	}
	return nil
}

// GetApplication retrieves an application by ID
func (f *FirestoreClient) GetApplication(ctx context.Context, id string) (*models.Application, error) {
	a, err := get[models.Application](ctx, f.client.Collection(applicationsCollection).Doc(id), "Application")
	if err != nil {
		return nil, err
	}
	a.ID = id
	return a, nil
}

// ListApplicationsByAccount returns a user's applications, newest first
func (f *FirestoreClient) ListApplicationsByAccount(ctx context.Context, accountID string) ([]*models.Application, error) {
	iter := f.client.Collection(applicationsCollection).
		Where("accountId", "==", accountID).
		OrderBy("createdAt", firestore.Desc).
		Documents(ctx)
	return collect(iter, func(a *models.Application, id string) { a.ID = id })
}

// UpdateApplicationStatus changes an application's status
func (f *FirestoreClient) UpdateApplicationStatus(ctx context.Context, id string, st models.ApplicationStatus) (*models.Application, error) {
	ref := f.client.Collection(applicationsCollection).Doc(id)
	if err := f.update(ctx, ref, "Application", []firestore.Update{{Path: "status", Value: st}}); err != nil {
		return nil, err
	}
	return f.GetApplication(ctx, id)
}
