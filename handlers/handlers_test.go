package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jumptake/backend/auth"
	"github.com/jumptake/backend/config"
	"github.com/jumptake/backend/gemini"
	"github.com/jumptake/backend/matching"
	"github.com/jumptake/backend/models"
	"github.com/jumptake/backend/resume"
	"github.com/jumptake/backend/storage"
)

const janeResponse = "Here you go:\n```json\n" + `{"name":"Jane Doe","email":"jane@example.com","education":"BSc",` +
	`"degrees":["BSc"],"experience":"Analyst at Acme","skills":["Python","SQL"],"achievements":[],` +
	`"interests":null,"hobbies":"chess"}` + "\n```"

type testServer struct {
	router *gin.Engine
	store  *storage.MemoryStore
}

func newTestServer(t *testing.T, oracle gemini.Oracle) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log := zap.NewNop()
	cfg := &config.Config{JWTSecret: "test-secret", JWTExpiryHours: 1, MaxUploadMB: 1}
	store := storage.NewMemoryStore()

	extractor, err := gemini.NewResumeExtractor(oracle, time.Second, log)
	require.NoError(t, err)

	router := NewRouter(Deps{
		Config:      cfg,
		Store:       store,
		Resumes:     resume.NewService(store, extractor, nil, log),
		Recommender: matching.NewRecommender(store, store, 0, log),
		JWT:         auth.NewJWTService(cfg),
		GoogleAuth:  auth.NewGoogleAuthServiceWithValidator("", nil),
		Version:     "test",
		Logger:      log,
	})
	return &testServer{router: router, store: store}
}

func static(response string) gemini.Oracle {
	return gemini.OracleFunc(func(context.Context, string) (string, error) {
		return response, nil
	})
}

func (s *testServer) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if raw, ok := body.(string); ok {
			buf.WriteString(raw)
		} else {
			require.NoError(t, json.NewEncoder(&buf).Encode(body))
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func (s *testServer) register(t *testing.T, email, role, jobSeekerID string) models.AuthResponse {
	t.Helper()
	w := s.do(t, http.MethodPost, "/api/auth/register", "", models.RegisterRequest{
		Email: email, Password: "password123", Role: role, JobSeekerID: jobSeekerID,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decode[models.AuthResponse](t, w)
}

func (s *testServer) parse(t *testing.T) models.ResumeParseResponse {
	t.Helper()
	w := s.do(t, http.MethodPost, "/api/resume/parse", "", models.ResumeParseRequest{ResumeText: "Jane Doe, Python, SQL"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	return decode[models.ResumeParseResponse](t, w)
}

func TestHealth(t *testing.T) {
	s := newTestServer(t, static(janeResponse))

	w := s.do(t, http.MethodGet, "/health", "", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "test", decode[models.HealthResponse](t, w).Version)
}

func TestParseResumeJSON(t *testing.T) {
	s := newTestServer(t, static(janeResponse))

	resp := s.parse(t)

	assert.NotEmpty(t, resp.JobSeekerID)
	assert.JSONEq(t, `["Python","SQL"]`, string(resp.Data.Skills))

	profile, err := s.store.GetProfile(context.Background(), resp.JobSeekerID)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", profile.Name)
}

func TestParseResumeModelFailureReturnsSentinel(t *testing.T) {
	s := newTestServer(t, gemini.OracleFunc(func(context.Context, string) (string, error) {
		return "", errors.New("network unreachable")
	}))

	resp := s.parse(t)

	assert.True(t, resp.Data.IsSentinel())
	profile, err := s.store.GetProfile(context.Background(), resp.JobSeekerID)
	require.NoError(t, err)
	assert.Equal(t, models.SentinelValue, profile.Name)
}

func TestParseResumeMissingKey(t *testing.T) {
	s := newTestServer(t, gemini.Unconfigured{Err: &config.ConfigError{Field: "GEMINI_API_KEY", Message: "Gemini API key not configured"}})

	w := s.do(t, http.MethodPost, "/api/resume/parse", "", models.ResumeParseRequest{ResumeText: "Jane"})

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	resp := decode[models.ErrorResponse](t, w)
	assert.Equal(t, "configuration_error", resp.Type)
	assert.Equal(t, "Gemini API key not configured", resp.Error)
}

func TestParseResumeEmptyText(t *testing.T) {
	s := newTestServer(t, static(janeResponse))

	w := s.do(t, http.MethodPost, "/api/resume/parse", "", models.ResumeParseRequest{})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "No resume text provided", decode[models.ErrorResponse](t, w).Error)
}

func multipartBody(t *testing.T, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("resume_file", filename)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func TestParseResumeUpload(t *testing.T) {
	s := newTestServer(t, static(janeResponse))

	body, contentType := multipartBody(t, "resume.txt", []byte("Jane Doe\nPython, SQL"))
	req := httptest.NewRequest(http.MethodPost, "/api/resume/parse", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	profile, err := s.store.GetProfile(context.Background(), decode[models.ResumeParseResponse](t, w).JobSeekerID)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe\nPython, SQL", profile.ResumeText)

	body, contentType = multipartBody(t, "resume.doc", []byte("legacy"))
	req = httptest.NewRequest(http.MethodPost, "/api/resume/parse", body)
	req.Header.Set("Content-Type", contentType)
	w = httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "unsupported_format", decode[models.ErrorResponse](t, w).Type)
}

func TestRegisterLoginLink(t *testing.T) {
	s := newTestServer(t, static(janeResponse))
	parsed := s.parse(t)

	registered := s.register(t, "Jane@Example.com", "", parsed.JobSeekerID)
	assert.Equal(t, parsed.JobSeekerID, registered.JobSeekerID)
	assert.Equal(t, "jane@example.com", registered.User.Email)

	w := s.do(t, http.MethodPost, "/api/auth/login", "", models.LoginRequest{Email: "jane@example.com", Password: "password123"})
	require.Equal(t, http.StatusOK, w.Code)
	login := decode[models.AuthResponse](t, w)
	assert.Equal(t, parsed.JobSeekerID, login.JobSeekerID)

	w = s.do(t, http.MethodGet, "/api/resume/analysis/"+login.User.ID, login.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, parsed.JobSeekerID, decode[models.ProfileDataResponse](t, w).Data.ID)

	w = s.do(t, http.MethodPost, "/api/resume/link", login.Token, models.LinkRequest{UserID: login.User.ID, JobSeekerID: parsed.JobSeekerID})
	assert.Equal(t, http.StatusOK, w.Code, "linking twice is fine")

	w = s.do(t, http.MethodPost, "/api/auth/login", "", models.LoginRequest{Email: "jane@example.com", Password: "nope"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = s.do(t, http.MethodPost, "/api/auth/register", "", models.RegisterRequest{Email: "jane@example.com", Password: "password123"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "email_taken", decode[models.ErrorResponse](t, w).Type)
}

func TestLinkOtherUserForbidden(t *testing.T) {
	s := newTestServer(t, static(janeResponse))
	parsed := s.parse(t)
	jane := s.register(t, "jane@example.com", "", "")
	john := s.register(t, "john@example.com", "", "")

	w := s.do(t, http.MethodPost, "/api/resume/link", john.Token, models.LinkRequest{UserID: jane.User.ID, JobSeekerID: parsed.JobSeekerID})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = s.do(t, http.MethodPost, "/api/resume/link", jane.Token, models.LinkRequest{UserID: jane.User.ID, JobSeekerID: "missing"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = s.do(t, http.MethodGet, "/api/resume/analysis/"+jane.User.ID, john.Token, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestLinkClaimedProfileForbidden(t *testing.T) {
	s := newTestServer(t, static(janeResponse))
	parsed := s.parse(t)
	jane := s.register(t, "jane@example.com", "", parsed.JobSeekerID)
	john := s.register(t, "john@example.com", "", "")

	w := s.do(t, http.MethodPost, "/api/resume/link", john.Token, models.LinkRequest{UserID: john.User.ID, JobSeekerID: parsed.JobSeekerID})
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "already_linked", decode[models.ErrorResponse](t, w).Type)

	w = s.do(t, http.MethodGet, "/api/resume/analysis/"+jane.User.ID, jane.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, parsed.JobSeekerID, decode[models.ProfileDataResponse](t, w).Data.ID)

	w = s.do(t, http.MethodGet, "/api/resume/analysis/"+john.User.ID, john.Token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateAnalysisRejectsUnknownField(t *testing.T) {
	s := newTestServer(t, static(janeResponse))
	parsed := s.parse(t)
	jane := s.register(t, "jane@example.com", "", parsed.JobSeekerID)
	path := "/api/resume/analysis/" + parsed.JobSeekerID

	w := s.do(t, http.MethodPut, path, jane.Token, `{"skills":"Go, SQL","resumeText":"hacked"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "field(s) not updatable: resumeText", decode[models.ErrorResponse](t, w).Error)

	w = s.do(t, http.MethodPut, path, jane.Token, `{"skills":"Go, SQL"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, []string{"Go", "SQL"}, decode[models.ProfileDataResponse](t, w).Data.Skills.Values())

	w = s.do(t, http.MethodPut, path, "", `{"skills":"Go"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

// employerWithJob registers an employer, a company and one job.
func employerWithJob(t *testing.T, s *testServer, skills ...string) (models.AuthResponse, models.Job) {
	t.Helper()
	employer := s.register(t, "hr@acme.example", "employer", "")

	w := s.do(t, http.MethodPost, "/api/companies", employer.Token, models.CompanyRequest{Name: "Acme"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	company := decode[models.Company](t, w)

	w = s.do(t, http.MethodPost, "/api/jobs", employer.Token, map[string]interface{}{
		"title": "Data Analyst", "description": "Analyse data", "companyId": company.ID,
		"location": "Remote", "skills": skills,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return employer, decode[models.Job](t, w)
}

func TestJaneDoeRecommendation(t *testing.T) {
	s := newTestServer(t, static(janeResponse))
	parsed := s.parse(t)
	jane := s.register(t, "jane@example.com", "", parsed.JobSeekerID)
	employer, job := employerWithJob(t, s, "python", "Java")
	assert.Equal(t, models.JobTypeFullTime, job.JobType)

	w := s.do(t, http.MethodGet, "/api/jobs/recommendations/"+parsed.JobSeekerID, jane.Token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	recs := decode[models.RecommendationsResponse](t, w)
	require.Equal(t, 1, recs.TotalResults)
	assert.Equal(t, job.ID, recs.Results[0].ID)
	assert.Equal(t, 1, recs.Results[0].MatchScore)

	w = s.do(t, http.MethodGet, "/api/jobs/"+job.ID+"/candidates", employer.Token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	candidates := decode[models.CandidatesResponse](t, w)
	require.Equal(t, 1, candidates.TotalResults)
	assert.Equal(t, "Jane Doe", candidates.Results[0].Profile.Name)

	w = s.do(t, http.MethodGet, "/api/jobs/"+job.ID+"/candidates", jane.Token, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = s.do(t, http.MethodGet, "/api/jobs/recommendations/"+parsed.JobSeekerID+"?limit=x", jane.Token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRecommendationsEmptySkills(t *testing.T) {
	s := newTestServer(t, static(`{"name":"A","email":null,"education":"","degrees":"","experience":"",`+
		`"skills":"","achievements":"","interests":"","hobbies":""}`))
	parsed := s.parse(t)
	jane := s.register(t, "jane@example.com", "", parsed.JobSeekerID)
	employerWithJob(t, s, "python")

	w := s.do(t, http.MethodGet, "/api/jobs/recommendations/"+parsed.JobSeekerID, jane.Token, nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"results":[],"total_results":0}`, w.Body.String())
}

func TestDuplicateApplication(t *testing.T) {
	s := newTestServer(t, static(janeResponse))
	jane := s.register(t, "jane@example.com", "", "")
	employer, job := employerWithJob(t, s, "python")

	w := s.do(t, http.MethodPost, "/api/applications", jane.Token, models.ApplicationRequest{JobID: job.ID, Message: "Hi"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	app := decode[models.Application](t, w)
	assert.Equal(t, models.StatusSubmitted, app.Status)

	w = s.do(t, http.MethodPost, "/api/applications", jane.Token, models.ApplicationRequest{JobID: job.ID})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decode[models.ErrorResponse](t, w)
	assert.Equal(t, "already_applied", resp.Type)
	assert.Equal(t, "You have already applied for this job", resp.Error)

	w = s.do(t, http.MethodGet, "/api/applications/user/"+jane.User.ID, jane.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]models.Application](t, w), 1)

	w = s.do(t, http.MethodPut, "/api/applications/"+app.ID, jane.Token, models.ApplicationStatusRequest{Status: "Accepted"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = s.do(t, http.MethodPut, "/api/applications/"+app.ID, employer.Token, models.ApplicationStatusRequest{Status: "under review"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, models.StatusUnderReview, decode[models.Application](t, w).Status)
}

func TestJobSeekersEmployerOnly(t *testing.T) {
	s := newTestServer(t, static(janeResponse))
	s.parse(t)
	jane := s.register(t, "jane@example.com", "", "")
	employer := s.register(t, "hr@acme.example", "employer", "")

	w := s.do(t, http.MethodGet, "/api/job-seekers", jane.Token, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = s.do(t, http.MethodGet, "/api/job-seekers", employer.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	profiles := decode[[]models.CandidateProfile](t, w)
	require.Len(t, profiles, 1)
	assert.Empty(t, profiles[0].ResumeText)
}

func TestNotificationPreferences(t *testing.T) {
	s := newTestServer(t, static(janeResponse))
	jane := s.register(t, "jane@example.com", "", "")
	path := "/api/users/" + jane.User.ID + "/notification-preferences"

	w := s.do(t, http.MethodGet, path, jane.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, models.FrequencyWeekly, decode[models.NotificationPreferencesResponse](t, w).NotificationPreferences.RecommendationFrequency)

	w = s.do(t, http.MethodPut, path, jane.Token, `{"recommendationFrequency":"Daily","marketingEmails":true}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	prefs := decode[models.NotificationPreferencesResponse](t, w).NotificationPreferences
	assert.Equal(t, models.FrequencyDaily, prefs.RecommendationFrequency)
	assert.True(t, prefs.MarketingEmails)
	assert.True(t, prefs.JobRecommendations)

	w = s.do(t, http.MethodPut, path, jane.Token, `{"recommendationFrequency":"hourly"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGoogleLoginNotConfigured(t *testing.T) {
	s := newTestServer(t, static(janeResponse))

	w := s.do(t, http.MethodPost, "/api/auth/google", "", models.GoogleAuthRequest{IDToken: "token"})

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestParseLinksSignedInJobSeeker(t *testing.T) {
	s := newTestServer(t, static(janeResponse))
	jane := s.register(t, "jane@example.com", "", "")
	employer := s.register(t, "hr@acme.example", "employer", "")

	w := s.do(t, http.MethodPost, "/api/resume/parse", jane.Token, models.ResumeParseRequest{ResumeText: "Jane Doe"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	resp := decode[models.ResumeParseResponse](t, w)
	assert.Equal(t, "Resume parsed and linked to your account", resp.Message)

	w = s.do(t, http.MethodGet, "/api/resume/analysis/"+jane.User.ID, jane.Token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, resp.JobSeekerID, decode[models.ProfileDataResponse](t, w).Data.ID)

	w = s.do(t, http.MethodPost, "/api/resume/parse", employer.Token, models.ResumeParseRequest{ResumeText: "Someone"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "Resume parsed successfully", decode[models.ResumeParseResponse](t, w).Message)
}

func TestRefreshToken(t *testing.T) {
	s := newTestServer(t, static(janeResponse))
	jane := s.register(t, "jane@example.com", "", "")

	w := s.do(t, http.MethodPost, "/api/auth/refresh", jane.Token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	refreshed := decode[models.AuthResponse](t, w)
	assert.NotEmpty(t, refreshed.Token)
	assert.Equal(t, jane.User.ID, refreshed.User.ID)

	w = s.do(t, http.MethodGet, "/api/auth/profile", refreshed.Token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = s.do(t, http.MethodPost, "/api/auth/refresh", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
