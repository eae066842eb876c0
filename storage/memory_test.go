package storage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jumptake/backend/apperror"
	"github.com/jumptake/backend/models"
)

func fixedClock(start time.Time) func() time.Time {
	now := start
	return func() time.Time {
		now = now.Add(time.Second)
		return now
	}
}

func newTestStore() *MemoryStore {
	s := NewMemoryStore()
	s.clock = fixedClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	return s
}

func TestMemoryProfiles(t *testing.T) {
	ctx := context.Background()
	s := newTestStore()

	first := &models.CandidateProfile{Name: "Jane", Skills: models.List("Python")}
	second := &models.CandidateProfile{Name: "John"}
	require.NoError(t, s.CreateProfile(ctx, first))
	require.NoError(t, s.CreateProfile(ctx, second))
	require.NotEmpty(t, first.ID)

	got, err := s.GetProfile(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "Jane", got.Name)
	assert.Nil(t, got.AccountID)

	list, err := s.ListProfiles(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID, "newest first")

	_, err = s.GetProfile(ctx, "missing")
	assert.Equal(t, apperror.NotFound, apperror.KindOf(err))
}

func TestMemoryProfileUpdateAndLink(t *testing.T) {
	ctx := context.Background()
	s := newTestStore()

	p := &models.CandidateProfile{Name: "Jane", ResumeText: "original"}
	require.NoError(t, s.CreateProfile(ctx, p))

	update, err := models.ParseProfileUpdate([]byte(`{"skills":"Go, SQL"}`))
	require.NoError(t, err)
	updated, err := s.UpdateProfile(ctx, p.ID, update)
	require.NoError(t, err)
	assert.Equal(t, []string{"Go", "SQL"}, updated.Skills.Values())
	assert.Equal(t, "original", updated.ResumeText)
	assert.True(t, updated.UpdatedAt.After(updated.CreatedAt))

	require.NoError(t, s.SetProfileAccount(ctx, p.ID, "acct-1"))
	byAccount, err := s.GetProfileByAccount(ctx, "acct-1")
	require.NoError(t, err)
	assert.Equal(t, p.ID, byAccount.ID)

	assert.Equal(t, apperror.NotFound, apperror.KindOf(s.SetProfileAccount(ctx, "missing", "acct-1")))
	_, err = s.GetProfileByAccount(ctx, "acct-2")
	assert.Equal(t, apperror.NotFound, apperror.KindOf(err))
}

func TestMemoryProfileByAccountPrefersLatestLink(t *testing.T) {
	ctx := context.Background()
	s := newTestStore()

	older := &models.CandidateProfile{Name: "Jane v1"}
	newer := &models.CandidateProfile{Name: "Jane v2"}
	require.NoError(t, s.CreateProfile(ctx, older))
	require.NoError(t, s.CreateProfile(ctx, newer))

	require.NoError(t, s.SetProfileAccount(ctx, newer.ID, "acct-1"))
	require.NoError(t, s.SetProfileAccount(ctx, older.ID, "acct-1"))
	got, err := s.GetProfileByAccount(ctx, "acct-1")
	require.NoError(t, err)
	assert.Equal(t, older.ID, got.ID, "most recently linked wins")

	require.NoError(t, s.ClearProfileAccount(ctx, older.ID))
	got, err = s.GetProfileByAccount(ctx, "acct-1")
	require.NoError(t, err)
	assert.Equal(t, newer.ID, got.ID)

	cleared, err := s.GetProfile(ctx, older.ID)
	require.NoError(t, err)
	assert.Nil(t, cleared.AccountID)
	assert.Equal(t, apperror.NotFound, apperror.KindOf(s.ClearProfileAccount(ctx, "missing")))
}

func TestMemoryReturnsCopies(t *testing.T) {
	ctx := context.Background()
	s := newTestStore()

	p := &models.CandidateProfile{Name: "Jane"}
	require.NoError(t, s.CreateProfile(ctx, p))
	p.Name = "Mutated"

	got, err := s.GetProfile(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Jane", got.Name)
}

func TestMemoryAccounts(t *testing.T) {
	ctx := context.Background()
	s := newTestStore()

	a := &models.Account{Email: " Jane@Example.com ", Role: models.RoleJobSeeker}
	require.NoError(t, s.CreateAccount(ctx, a))
	assert.Equal(t, "jane@example.com", a.Email)

	err := s.CreateAccount(ctx, &models.Account{Email: "JANE@example.com"})
	assert.Equal(t, apperror.Duplicate, apperror.KindOf(err))

	byEmail, err := s.GetAccountByEmail(ctx, "jane@EXAMPLE.com")
	require.NoError(t, err)
	assert.Equal(t, a.ID, byEmail.ID)

	require.NoError(t, s.LinkGoogleAccount(ctx, a.ID, "google-1"))
	byGoogle, err := s.GetAccountByGoogleID(ctx, "google-1")
	require.NoError(t, err)
	assert.Equal(t, a.ID, byGoogle.ID)

	require.NoError(t, s.SetAccountProfile(ctx, a.ID, "profile-1"))
	prefs := models.DefaultNotificationPreferences()
	prefs.MarketingEmails = true
	require.NoError(t, s.UpdateNotificationPreferences(ctx, a.ID, prefs))

	got, err := s.GetAccount(ctx, a.ID)
	require.NoError(t, err)
	require.NotNil(t, got.JobSeekerID)
	assert.Equal(t, "profile-1", *got.JobSeekerID)
	assert.True(t, got.NotificationPreferences.MarketingEmails)

	assert.Equal(t, apperror.NotFound, apperror.KindOf(s.SetAccountProfile(ctx, "missing", "profile-1")))
}

func TestMemoryJobs(t *testing.T) {
	ctx := context.Background()
	s := newTestStore()

	older := &models.Job{Title: "Old", CompanyID: "c1", Active: true}
	inactive := &models.Job{Title: "Closed", CompanyID: "c1", Active: false}
	newer := &models.Job{Title: "New", CompanyID: "c2", Active: true}
	for _, j := range []*models.Job{older, inactive, newer} {
		require.NoError(t, s.CreateJob(ctx, j))
	}

	active, err := s.ListActiveJobs(ctx)
	require.NoError(t, err)
	require.Len(t, active, 2)
	assert.Equal(t, "New", active[0].Title)
	assert.Equal(t, "Old", active[1].Title)

	companyJobs, err := s.ListCompanyJobs(ctx, "c1")
	require.NoError(t, err)
	assert.Len(t, companyJobs, 2)

	inactive.Active = true
	require.NoError(t, s.UpdateJob(ctx, inactive))
	active, err = s.ListActiveJobs(ctx)
	require.NoError(t, err)
	assert.Len(t, active, 3)

	assert.Equal(t, apperror.NotFound, apperror.KindOf(s.UpdateJob(ctx, &models.Job{ID: "missing"})))
}

func TestMemoryApplicationsAreUnique(t *testing.T) {
	ctx := context.Background()
	s := newTestStore()

	app := &models.Application{JobID: "job-1", AccountID: "acct-1"}
	require.NoError(t, s.CreateApplication(ctx, app))
	assert.Equal(t, models.StatusSubmitted, app.Status)

	err := s.CreateApplication(ctx, &models.Application{JobID: "job-1", AccountID: "acct-1"})
	require.Error(t, err)
	assert.Equal(t, apperror.Duplicate, apperror.KindOf(err))
	assert.Equal(t, "already_applied", apperror.CodeOf(err))

	require.NoError(t, s.CreateApplication(ctx, &models.Application{JobID: "job-2", AccountID: "acct-1"}))
	apps, err := s.ListApplicationsByAccount(ctx, "acct-1")
	require.NoError(t, err)
	assert.Len(t, apps, 2)

	updated, err := s.UpdateApplicationStatus(ctx, app.ID, models.StatusUnderReview)
	require.NoError(t, err)
	assert.Equal(t, models.StatusUnderReview, updated.Status)
}
