package resume

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jumptake/backend/apperror"
	"github.com/jumptake/backend/config"
	"github.com/jumptake/backend/gemini"
	"github.com/jumptake/backend/models"
	"github.com/jumptake/backend/storage"
)

const janeResponse = "```json\n" + `{"name":"Jane Doe","email":"jane@example.com","education":"BSc Computer Science",` +
	`"degrees":["BSc"],"experience":[{"company":"Acme","role":"Analyst","dates":"2020-2023"}],` +
	`"skills":["Python","SQL"],"achievements":[],"interests":"data","hobbies":null}` + "\n```"

type fakeArchive struct {
	err   error
	calls int
}

func (f *fakeArchive) ArchiveResume(context.Context, string, string, []byte) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return "https://storage.googleapis.com/bucket/resumes/cv.docx", nil
}

func newService(t *testing.T, oracle gemini.Oracle, archive Archiver) (*Service, *storage.MemoryStore) {
	t.Helper()
	ext, err := gemini.NewResumeExtractor(oracle, time.Second, zap.NewNop())
	require.NoError(t, err)
	store := storage.NewMemoryStore()
	return NewService(store, ext, archive, zap.NewNop()), store
}

func static(response string) gemini.Oracle {
	return gemini.OracleFunc(func(context.Context, string) (string, error) {
		return response, nil
	})
}

func TestParseJaneDoe(t *testing.T) {
	ctx := context.Background()
	svc, store := newService(t, static(janeResponse), nil)

	res, err := svc.Parse(ctx, "Jane Doe\njane@example.com\nSkills: Python, SQL")
	require.NoError(t, err)
	require.NotEmpty(t, res.JobSeekerID)
	assert.False(t, res.Data.IsSentinel())

	profile, err := store.GetProfile(ctx, res.JobSeekerID)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", profile.Name)
	assert.Equal(t, []string{"Python", "SQL"}, profile.Skills.Values())
	assert.Equal(t, []string{"Analyst, Acme (2020-2023)"}, profile.Experience.Lines())
	assert.Contains(t, profile.ResumeText, "Skills: Python, SQL")
	assert.Nil(t, profile.AccountID)
}

func TestParseNetworkFailureStoresSentinel(t *testing.T) {
	ctx := context.Background()
	failing := gemini.OracleFunc(func(context.Context, string) (string, error) {
		return "", &net.OpError{Op: "dial", Net: "tcp", Err: errors.New("connection refused")}
	})
	svc, store := newService(t, failing, nil)

	res, err := svc.Parse(ctx, "Some resume")
	require.NoError(t, err)
	assert.True(t, res.Data.IsSentinel())

	profile, err := store.GetProfile(ctx, res.JobSeekerID)
	require.NoError(t, err)
	assert.Equal(t, models.SentinelValue, profile.Name)
	assert.Equal(t, "Some resume", profile.ResumeText)
}

func TestParseMissingKeyIsConfigurationError(t *testing.T) {
	svc, _ := newService(t, gemini.Unconfigured{Err: &config.ConfigError{Field: "GEMINI_API_KEY", Message: "missing"}}, nil)

	_, err := svc.Parse(context.Background(), "Some resume")

	assert.Equal(t, apperror.Configuration, apperror.KindOf(err))
}

func TestParseEmptyText(t *testing.T) {
	svc, _ := newService(t, static(janeResponse), nil)

	_, err := svc.Parse(context.Background(), "   ")

	assert.Equal(t, apperror.Validation, apperror.KindOf(err))
}

func docx(t *testing.T, text string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte(`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body><w:p><w:r><w:t>` +
		text + `</w:t></w:r></w:p></w:body></w:document>`))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestParseDocumentArchivesBestEffort(t *testing.T) {
	ctx := context.Background()
	var prompts []string
	oracle := gemini.OracleFunc(func(_ context.Context, prompt string) (string, error) {
		prompts = append(prompts, prompt)
		return janeResponse, nil
	})

	archive := &fakeArchive{}
	svc, store := newService(t, oracle, archive)

	res, err := svc.ParseDocument(ctx, Upload{Data: docx(t, "Jane Doe resume"), Filename: "cv.docx"})
	require.NoError(t, err)
	assert.Equal(t, 1, archive.calls)
	require.Len(t, prompts, 1)
	assert.Contains(t, prompts[0], "Jane Doe resume")

	profile, err := store.GetProfile(ctx, res.JobSeekerID)
	require.NoError(t, err)
	assert.Equal(t, "https://storage.googleapis.com/bucket/resumes/cv.docx", profile.ResumeURL)

	archive.err = errors.New("bucket unavailable")
	res, err = svc.ParseDocument(ctx, Upload{Data: docx(t, "Second"), Filename: "cv.docx"})
	require.NoError(t, err)
	assert.Empty(t, res.Profile.ResumeURL)
}

func TestParseDocumentUnsupportedFormat(t *testing.T) {
	svc, _ := newService(t, static(janeResponse), nil)

	_, err := svc.ParseDocument(context.Background(), Upload{Data: []byte("x"), Filename: "cv.doc"})

	assert.Equal(t, apperror.UnsupportedFormat, apperror.KindOf(err))
}

func TestLinkIsIdempotent(t *testing.T) {
	ctx := context.Background()
	svc, store := newService(t, static(janeResponse), nil)

	res, err := svc.Parse(ctx, "Jane Doe")
	require.NoError(t, err)
	account := &models.Account{Email: "jane@example.com", Role: models.RoleJobSeeker}
	require.NoError(t, store.CreateAccount(ctx, account))

	require.NoError(t, svc.Link(ctx, account.ID, res.JobSeekerID))
	require.NoError(t, svc.Link(ctx, account.ID, res.JobSeekerID))

	profile, err := store.GetProfile(ctx, res.JobSeekerID)
	require.NoError(t, err)
	require.NotNil(t, profile.AccountID)
	assert.Equal(t, account.ID, *profile.AccountID)

	got, err := store.GetAccount(ctx, account.ID)
	require.NoError(t, err)
	require.NotNil(t, got.JobSeekerID)
	assert.Equal(t, res.JobSeekerID, *got.JobSeekerID)

	analysis, err := svc.AnalysisForAccount(ctx, account.ID)
	require.NoError(t, err)
	assert.Equal(t, res.JobSeekerID, analysis.ID)
}

func TestLinkBeforeAccountExists(t *testing.T) {
	ctx := context.Background()
	svc, store := newService(t, static(janeResponse), nil)

	res, err := svc.Parse(ctx, "Jane Doe")
	require.NoError(t, err)

	err = svc.Link(ctx, "no-such-account", res.JobSeekerID)
	assert.Equal(t, apperror.NotFound, apperror.KindOf(err))

	profile, err := store.GetProfile(ctx, res.JobSeekerID)
	require.NoError(t, err)
	assert.Nil(t, profile.AccountID, "no dangling link")

	err = svc.Link(ctx, "no-such-account", "no-such-profile")
	assert.Equal(t, apperror.NotFound, apperror.KindOf(err))
}

func TestRelinkReleasesPreviousProfile(t *testing.T) {
	ctx := context.Background()
	svc, store := newService(t, static(janeResponse), nil)

	first, err := svc.Parse(ctx, "Jane Doe v1")
	require.NoError(t, err)
	second, err := svc.Parse(ctx, "Jane Doe v2")
	require.NoError(t, err)
	account := &models.Account{Email: "jane@example.com", Role: models.RoleJobSeeker}
	require.NoError(t, store.CreateAccount(ctx, account))

	require.NoError(t, svc.Link(ctx, account.ID, first.JobSeekerID))
	require.NoError(t, svc.Link(ctx, account.ID, second.JobSeekerID))

	analysis, err := svc.AnalysisForAccount(ctx, account.ID)
	require.NoError(t, err)
	assert.Equal(t, second.JobSeekerID, analysis.ID)

	old, err := store.GetProfile(ctx, first.JobSeekerID)
	require.NoError(t, err)
	assert.Nil(t, old.AccountID)

	byAccount, err := store.GetProfileByAccount(ctx, account.ID)
	require.NoError(t, err)
	assert.Equal(t, second.JobSeekerID, byAccount.ID)

	require.NoError(t, svc.Link(ctx, account.ID, first.JobSeekerID), "a released profile can be linked back")
	analysis, err = svc.AnalysisForAccount(ctx, account.ID)
	require.NoError(t, err)
	assert.Equal(t, first.JobSeekerID, analysis.ID)
}

func TestLinkRejectsProfileOwnedByAnotherAccount(t *testing.T) {
	ctx := context.Background()
	svc, store := newService(t, static(janeResponse), nil)

	res, err := svc.Parse(ctx, "Jane Doe")
	require.NoError(t, err)
	jane := &models.Account{Email: "jane@example.com"}
	require.NoError(t, store.CreateAccount(ctx, jane))
	john := &models.Account{Email: "john@example.com"}
	require.NoError(t, store.CreateAccount(ctx, john))

	require.NoError(t, svc.Link(ctx, jane.ID, res.JobSeekerID))

	err = svc.Link(ctx, john.ID, res.JobSeekerID)
	assert.Equal(t, apperror.Forbidden, apperror.KindOf(err))
	assert.Equal(t, "already_linked", apperror.CodeOf(err))

	profile, err := store.GetProfile(ctx, res.JobSeekerID)
	require.NoError(t, err)
	require.NotNil(t, profile.AccountID)
	assert.Equal(t, jane.ID, *profile.AccountID)

	got, err := store.GetAccount(ctx, john.ID)
	require.NoError(t, err)
	assert.Nil(t, got.JobSeekerID)

	analysis, err := svc.AnalysisForAccount(ctx, jane.ID)
	require.NoError(t, err)
	assert.Equal(t, res.JobSeekerID, analysis.ID)
}

func TestAnalysisForAccountFallsBackToAccountReference(t *testing.T) {
	ctx := context.Background()
	svc, store := newService(t, static(janeResponse), nil)

	res, err := svc.Parse(ctx, "Jane Doe")
	require.NoError(t, err)
	account := &models.Account{Email: "jane@example.com"}
	require.NoError(t, store.CreateAccount(ctx, account))
	require.NoError(t, store.SetAccountProfile(ctx, account.ID, res.JobSeekerID))

	profile, err := svc.AnalysisForAccount(ctx, account.ID)
	require.NoError(t, err)
	assert.Equal(t, res.JobSeekerID, profile.ID)

	other := &models.Account{Email: "john@example.com"}
	require.NoError(t, store.CreateAccount(ctx, other))
	_, err = svc.AnalysisForAccount(ctx, other.ID)
	assert.Equal(t, apperror.NotFound, apperror.KindOf(err))
}

func TestUpdateAnalysis(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t, static(janeResponse), nil)

	res, err := svc.Parse(ctx, "Jane Doe")
	require.NoError(t, err)

	update, err := models.ParseProfileUpdate([]byte(`{"skills":["Go","Rust"],"hobbies":"climbing"}`))
	require.NoError(t, err)

	profile, err := svc.UpdateAnalysis(ctx, "", res.JobSeekerID, update)
	require.NoError(t, err)
	assert.Equal(t, []string{"Go", "Rust"}, profile.Skills.Values())
	assert.Equal(t, "climbing", profile.Hobbies.Display())
	assert.Equal(t, "Jane Doe", profile.Name)

	_, err = svc.UpdateAnalysis(ctx, "", "missing", update)
	assert.Equal(t, apperror.NotFound, apperror.KindOf(err))
}

func TestUpdateAnalysisOwnership(t *testing.T) {
	ctx := context.Background()
	svc, store := newService(t, static(janeResponse), nil)

	res, err := svc.Parse(ctx, "Jane Doe")
	require.NoError(t, err)
	owner := &models.Account{Email: "jane@example.com"}
	require.NoError(t, store.CreateAccount(ctx, owner))
	require.NoError(t, svc.Link(ctx, owner.ID, res.JobSeekerID))

	update, err := models.ParseProfileUpdate([]byte(`{"name":"Janet"}`))
	require.NoError(t, err)

	_, err = svc.UpdateAnalysis(ctx, "someone-else", res.JobSeekerID, update)
	assert.Equal(t, apperror.Forbidden, apperror.KindOf(err))

	profile, err := svc.UpdateAnalysis(ctx, owner.ID, res.JobSeekerID, update)
	require.NoError(t, err)
	assert.Equal(t, "Janet", profile.Name)
}
