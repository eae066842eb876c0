package storage

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/jumptake/backend/config"
	"github.com/jumptake/backend/models"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

const uniqueViolation = "23505"

// PostgresStore keeps every collection in Postgres. Polymorphic profile
// fields are stored as JSONB in the shape the model returned them.
type PostgresStore struct {
	db  *pgxpool.Pool
	log *zap.Logger
}

// NewPostgresStore connects, pings and applies the embedded migrations.
func NewPostgresStore(ctx context.Context, cfg *config.Config, log *zap.Logger) (*PostgresStore, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("unable to parse database url: %w", err)
	}

	poolCfg.MaxConns = 10
	poolCfg.MinConns = 1
	poolCfg.MaxConnLifetime = time.Hour

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("unable to connect to database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("database unreachable: %w", err)
	}

	s := &PostgresStore{db: pool, log: log.Named("postgres")}
	if err := s.migrate(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the pool
func (s *PostgresStore) Close() error {
	s.db.Close()
	return nil
}

func (s *PostgresStore) migrate(ctx context.Context) error {
	names, err := fs.Glob(migrationFiles, "migrations/*.sql")
	if err != nil {
		return fmt.Errorf("list migrations: %w", err)
	}
	sort.Strings(names)

	for _, name := range names {
		body, err := migrationFiles.ReadFile(name)
		if err != nil {
			return fmt.Errorf("read migration %s: %w", name, err)
		}
		if _, err := s.db.Exec(ctx, string(body)); err != nil {
			return fmt.Errorf("apply migration %s: %w", name, err)
		}
		s.log.Info("migration applied", zap.String("name", name))
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// Profiles

const profileColumns = `id, account_id, name, email, education, degrees, experience, skills,
	achievements, interests, hobbies, resume_text, resume_url, created_at, updated_at`

func scanProfile(row pgx.Row) (*models.CandidateProfile, error) {
	var p models.CandidateProfile
	err := row.Scan(&p.ID, &p.AccountID, &p.Name, &p.Email, &p.Education, &p.Degrees, &p.Experience,
		&p.Skills, &p.Achievements, &p.Interests, &p.Hobbies, &p.ResumeText, &p.ResumeURL,
		&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *PostgresStore) CreateProfile(ctx context.Context, profile *models.CandidateProfile) error {
	if profile.ID == "" {
		profile.ID = uuid.NewString()
	}
	profile.CreatedAt = time.Now().UTC()
	profile.UpdatedAt = profile.CreatedAt

	_, err := s.db.Exec(ctx, `
		INSERT INTO job_seekers (`+profileColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`,
		profile.ID, profile.AccountID, profile.Name, profile.Email, profile.Education, profile.Degrees,
		profile.Experience, profile.Skills, profile.Achievements, profile.Interests, profile.Hobbies,
		profile.ResumeText, profile.ResumeURL, profile.CreatedAt, profile.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create job seeker: %w", err)
	}
	return nil
}

func (s *PostgresStore) GetProfile(ctx context.Context, id string) (*models.CandidateProfile, error) {
	p, err := scanProfile(s.db.QueryRow(ctx, `SELECT `+profileColumns+` FROM job_seekers WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, notFound("Job seeker")
		}
		return nil, fmt.Errorf("failed to get job seeker: %w", err)
	}
	return p, nil
}

func (s *PostgresStore) GetProfileByAccount(ctx context.Context, accountID string) (*models.CandidateProfile, error) {
	p, err := scanProfile(s.db.QueryRow(ctx,
		`SELECT `+profileColumns+` FROM job_seekers WHERE account_id = $1 ORDER BY updated_at DESC, id DESC LIMIT 1`, accountID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, notFound("Job seeker")
		}
		return nil, fmt.Errorf("failed to get job seeker: %w", err)
	}
	return p, nil
}

func (s *PostgresStore) ListProfiles(ctx context.Context) ([]*models.CandidateProfile, error) {
	rows, err := s.db.Query(ctx, `SELECT `+profileColumns+` FROM job_seekers ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list job seekers: %w", err)
	}
	defer rows.Close()

	out := []*models.CandidateProfile{}
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan job seeker: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (s *PostgresStore) UpdateProfile(ctx context.Context, id string, update models.ProfileUpdate) (*models.CandidateProfile, error) {
	var result *models.CandidateProfile
	err := pgx.BeginFunc(ctx, s.db, func(tx pgx.Tx) error {
		p, err := scanProfile(tx.QueryRow(ctx, `SELECT `+profileColumns+` FROM job_seekers WHERE id = $1 FOR UPDATE`, id))
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return notFound("Job seeker")
			}
			return err
		}

		update.Apply(p)
		p.UpdatedAt = time.Now().UTC()

		_, err = tx.Exec(ctx, `
			UPDATE job_seekers SET name = $2, email = $3, education = $4, experience = $5, skills = $6,
				achievements = $7, interests = $8, hobbies = $9, updated_at = $10
			WHERE id = $1`,
			p.ID, p.Name, p.Email, p.Education, p.Experience, p.Skills, p.Achievements, p.Interests,
			p.Hobbies, p.UpdatedAt)
		result = p
		return err
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *PostgresStore) SetProfileAccount(ctx context.Context, profileID, accountID string) error {
	tag, err := s.db.Exec(ctx, `UPDATE job_seekers SET account_id = $2, updated_at = now() WHERE id = $1`, profileID, accountID)
	if err != nil {
		return fmt.Errorf("failed to link job seeker: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return notFound("Job seeker")
	}
	return nil
}

func (s *PostgresStore) ClearProfileAccount(ctx context.Context, profileID string) error {
	tag, err := s.db.Exec(ctx, `UPDATE job_seekers SET account_id = NULL, updated_at = now() WHERE id = $1`, profileID)
	if err != nil {
		return fmt.Errorf("failed to unlink job seeker: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return notFound("Job seeker")
	}
	return nil
}

// Accounts

const accountColumns = `id, email, password, role, provider, google_id, job_seeker_id,
	notification_preferences, created_at, updated_at`

func scanAccount(row pgx.Row) (*models.Account, error) {
	var (
		a        models.Account
		googleID *string
	)
	err := row.Scan(&a.ID, &a.Email, &a.Password, &a.Role, &a.Provider, &googleID, &a.JobSeekerID,
		&a.NotificationPreferences, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if googleID != nil {
		a.GoogleID = *googleID
	}
	return &a, nil
}

func (s *PostgresStore) CreateAccount(ctx context.Context, account *models.Account) error {
	account.Email = models.NormalizeEmail(account.Email)
	if account.ID == "" {
		account.ID = uuid.NewString()
	}
	account.CreatedAt = time.Now().UTC()
	account.UpdatedAt = account.CreatedAt

	_, err := s.db.Exec(ctx, `
		INSERT INTO users (`+accountColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		account.ID, account.Email, account.Password, account.Role, account.Provider,
		nullIfEmpty(account.GoogleID), account.JobSeekerID, account.NotificationPreferences,
		account.CreatedAt, account.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return errEmailTaken()
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

func (s *PostgresStore) getAccount(ctx context.Context, where string, arg any) (*models.Account, error) {
	a, err := scanAccount(s.db.QueryRow(ctx, `SELECT `+accountColumns+` FROM users WHERE `+where+` = $1`, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, notFound("User")
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return a, nil
}

func (s *PostgresStore) GetAccount(ctx context.Context, id string) (*models.Account, error) {
	return s.getAccount(ctx, "id", id)
}

func (s *PostgresStore) GetAccountByEmail(ctx context.Context, email string) (*models.Account, error) {
	return s.getAccount(ctx, "email", models.NormalizeEmail(email))
}

func (s *PostgresStore) GetAccountByGoogleID(ctx context.Context, googleID string) (*models.Account, error) {
	return s.getAccount(ctx, "google_id", googleID)
}

func (s *PostgresStore) updateAccount(ctx context.Context, id, set string, arg any) error {
	tag, err := s.db.Exec(ctx, `UPDATE users SET `+set+` = $2, updated_at = now() WHERE id = $1`, id, arg)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return notFound("User")
	}
	return nil
}

func (s *PostgresStore) LinkGoogleAccount(ctx context.Context, accountID, googleID string) error {
	return s.updateAccount(ctx, accountID, "google_id", googleID)
}

func (s *PostgresStore) SetAccountProfile(ctx context.Context, accountID, profileID string) error {
	return s.updateAccount(ctx, accountID, "job_seeker_id", profileID)
}

func (s *PostgresStore) UpdateNotificationPreferences(ctx context.Context, accountID string, prefs models.NotificationPreferences) error {
	return s.updateAccount(ctx, accountID, "notification_preferences", prefs)
}

// Companies

const companyColumns = `id, name, industry, headquarters, description, website, owner_id, created_at`

func scanCompany(row pgx.Row) (*models.Company, error) {
	var c models.Company
	if err := row.Scan(&c.ID, &c.Name, &c.Industry, &c.Headquarters, &c.Description, &c.Website, &c.OwnerID, &c.CreatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *PostgresStore) CreateCompany(ctx context.Context, company *models.Company) error {
	if company.ID == "" {
		company.ID = uuid.NewString()
	}
	company.CreatedAt = time.Now().UTC()

	_, err := s.db.Exec(ctx, `INSERT INTO companies (`+companyColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		company.ID, company.Name, company.Industry, company.Headquarters, company.Description,
		company.Website, company.OwnerID, company.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create company: %w", err)
	}
	return nil
}

func (s *PostgresStore) GetCompany(ctx context.Context, id string) (*models.Company, error) {
	c, err := scanCompany(s.db.QueryRow(ctx, `SELECT `+companyColumns+` FROM companies WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, notFound("Company")
		}
		return nil, fmt.Errorf("failed to get company: %w", err)
	}
	return c, nil
}

func (s *PostgresStore) ListCompanies(ctx context.Context) ([]*models.Company, error) {
	rows, err := s.db.Query(ctx, `SELECT `+companyColumns+` FROM companies ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}
	defer rows.Close()

	out := []*models.Company{}
	for rows.Next() {
		c, err := scanCompany(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan company: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// Jobs

const jobColumns = `id, title, description, company_id, location, salary, job_type, requirements,
	responsibilities, skills, active, created_at, updated_at`

func scanJob(row pgx.Row) (*models.Job, error) {
	var j models.Job
	err := row.Scan(&j.ID, &j.Title, &j.Description, &j.CompanyID, &j.Location, &j.Salary, &j.JobType,
		&j.Requirements, &j.Responsibilities, &j.Skills, &j.Active, &j.CreatedAt, &j.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &j, nil
}

func (s *PostgresStore) CreateJob(ctx context.Context, job *models.Job) error {
	if job.ID == "" {
		job.ID = uuid.NewString()
	}
	job.CreatedAt = time.Now().UTC()
	job.UpdatedAt = job.CreatedAt

	_, err := s.db.Exec(ctx, `INSERT INTO jobs (`+jobColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		job.ID, job.Title, job.Description, job.CompanyID, job.Location, job.Salary, job.JobType,
		job.Requirements, job.Responsibilities, job.Skills, job.Active, job.CreatedAt, job.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create job: %w", err)
	}
	return nil
}

func (s *PostgresStore) GetJob(ctx context.Context, id string) (*models.Job, error) {
	j, err := scanJob(s.db.QueryRow(ctx, `SELECT `+jobColumns+` FROM jobs WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, notFound("Job")
		}
		return nil, fmt.Errorf("failed to get job: %w", err)
	}
	return j, nil
}

func (s *PostgresStore) queryJobs(ctx context.Context, where string, args ...any) ([]*models.Job, error) {
	rows, err := s.db.Query(ctx, `SELECT `+jobColumns+` FROM jobs WHERE `+where+` ORDER BY created_at DESC`, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	defer rows.Close()

	out := []*models.Job{}
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan job: %w", err)
		}
		out = append(out, j)
	}
	return out, rows.Err()
}

func (s *PostgresStore) ListActiveJobs(ctx context.Context) ([]*models.Job, error) {
	return s.queryJobs(ctx, "active")
}

func (s *PostgresStore) ListCompanyJobs(ctx context.Context, companyID string) ([]*models.Job, error) {
	return s.queryJobs(ctx, "company_id = $1", companyID)
}

func (s *PostgresStore) UpdateJob(ctx context.Context, job *models.Job) error {
	job.UpdatedAt = time.Now().UTC()
	tag, err := s.db.Exec(ctx, `
		UPDATE jobs SET title = $2, description = $3, location = $4, salary = $5, job_type = $6,
			requirements = $7, responsibilities = $8, skills = $9, active = $10, updated_at = $11
		WHERE id = $1`,
		job.ID, job.Title, job.Description, job.Location, job.Salary, job.JobType,
		job.Requirements, job.Responsibilities, job.Skills, job.Active, job.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to update job: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return notFound("Job")
	}
	return nil
}

// Applications

const applicationColumns = `id, job_id, account_id, message, status, created_at, updated_at`

func scanApplication(row pgx.Row) (*models.Application, error) {
	var a models.Application
	if err := row.Scan(&a.ID, &a.JobID, &a.AccountID, &a.Message, &a.Status, &a.CreatedAt, &a.UpdatedAt); err != nil {
		return nil, err
	}
	return &a, nil
}

func (s *PostgresStore) CreateApplication(ctx context.Context, app *models.Application) error {
	app.ID = models.ApplicationID(app.JobID, app.AccountID)
	if app.Status == "" {
		app.Status = models.StatusSubmitted
	}
	app.CreatedAt = time.Now().UTC()
	app.UpdatedAt = app.CreatedAt

	_, err := s.db.Exec(ctx, `INSERT INTO applications (`+applicationColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		app.ID, app.JobID, app.AccountID, app.Message, app.Status, app.CreatedAt, app.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return errAlreadyApplied()
		}
		return fmt.Errorf("failed to create application: %w", err)
	}
	return nil
}

func (s *PostgresStore) GetApplication(ctx context.Context, id string) (*models.Application, error) {
	a, err := scanApplication(s.db.QueryRow(ctx, `SELECT `+applicationColumns+` FROM applications WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, notFound("Application")
		}
		return nil, fmt.Errorf("failed to get application: %w", err)
	}
	return a, nil
}

func (s *PostgresStore) ListApplicationsByAccount(ctx context.Context, accountID string) ([]*models.Application, error) {
	rows, err := s.db.Query(ctx,
		`SELECT `+applicationColumns+` FROM applications WHERE account_id = $1 ORDER BY created_at DESC`, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}
	defer rows.Close()

	out := []*models.Application{}
	for rows.Next() {
		a, err := scanApplication(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan application: %w", err)
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (s *PostgresStore) UpdateApplicationStatus(ctx context.Context, id string, status models.ApplicationStatus) (*models.Application, error) {
	a, err := scanApplication(s.db.QueryRow(ctx, `
		UPDATE applications SET status = $2, updated_at = now() WHERE id = $1
		RETURNING `+applicationColumns, id, status))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, notFound("Application")
		}
		return nil, fmt.Errorf("failed to update application: %w", err)
	}
	return a, nil
}
