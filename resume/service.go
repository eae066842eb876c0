// Package resume turns uploaded resumes into stored candidate profiles and
// links those profiles to login accounts.
package resume

import (
	"context"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/jumptake/backend/apperror"
	"github.com/jumptake/backend/models"
	"github.com/jumptake/backend/storage"
	"github.com/jumptake/backend/utils"
)

// Extractor is satisfied by *gemini.ResumeExtractor.
type Extractor interface {
	Extract(ctx context.Context, resumeText string) (*models.ResumeExtraction, error)
}

// Archiver stores the original uploaded document. *storage.CloudStorageClient
// implements it.
type Archiver interface {
	ArchiveResume(ctx context.Context, filename, contentType string, content []byte) (string, error)
}

// Upload is a resume document received over HTTP or read from disk.
type Upload struct {
	Data      []byte
	MediaType string
	Filename  string
}

// Result is the outcome of parsing one resume.
type Result struct {
	JobSeekerID string
	Data        *models.ResumeExtraction
	Profile     *models.CandidateProfile
}

// Service orchestrates the resume pipeline.
type Service struct {
	store     storage.Store
	extractor Extractor
	documents *utils.DocumentExtractor
	archive   Archiver
	logger    *zap.Logger
}

// NewService creates the service. archive may be nil, in which case uploads
// are not archived.
func NewService(store storage.Store, extractor Extractor, archive Archiver, log *zap.Logger) *Service {
	return &Service{
		store:     store,
		extractor: extractor,
		documents: utils.NewDocumentExtractor(),
		archive:   archive,
		logger:    log.Named("resume"),
	}
}

// Parse extracts a profile from resume text and persists it. Model failures
// produce a stored placeholder profile rather than an error.
func (s *Service) Parse(ctx context.Context, resumeText string) (*Result, error) {
	return s.parse(ctx, resumeText, "")
}

// ParseDocument converts an uploaded document to text and parses it.
func (s *Service) ParseDocument(ctx context.Context, upload Upload) (*Result, error) {
	text, err := s.documents.Extract(upload.Data, upload.MediaType, upload.Filename)
	if err != nil {
		return nil, err
	}

	s.logger.Info("resume document converted",
		zap.String("filename", filepath.Base(upload.Filename)),
		zap.Int("bytes", len(upload.Data)),
		zap.Int("text_length", len(text)),
	)

	return s.parse(ctx, text, s.archiveUpload(ctx, upload))
}

// archiveUpload is best effort: a failed archive never fails the parse.
func (s *Service) archiveUpload(ctx context.Context, upload Upload) string {
	if s.archive == nil {
		return ""
	}
	url, err := s.archive.ArchiveResume(ctx, upload.Filename, upload.MediaType, upload.Data)
	if err != nil {
		s.logger.Warn("resume archive failed", zap.String("filename", upload.Filename), zap.Error(err))
		return ""
	}
	return url
}

func (s *Service) parse(ctx context.Context, resumeText, resumeURL string) (*Result, error) {
	ext, err := s.extractor.Extract(ctx, resumeText)
	if err != nil {
		return nil, err
	}

	profile := models.ProfileFromExtraction(ext, resumeText)
	profile.ResumeURL = resumeURL

	if err := s.store.CreateProfile(ctx, profile); err != nil {
		return nil, err
	}

	if ext.IsSentinel() {
		s.logger.Warn("stored placeholder profile", zap.String("job_seeker_id", profile.ID))
	} else {
		s.logger.Info("resume parsed", zap.String("job_seeker_id", profile.ID))
	}

	return &Result{JobSeekerID: profile.ID, Data: ext, Profile: profile}, nil
}

// Link attaches a profile to an account in both directions. Both must
// already exist. Relinking the same pair is a no-op. A profile owned by
// another account cannot be claimed, and a profile the account previously
// owned is released.
func (s *Service) Link(ctx context.Context, accountID, profileID string) error {
	if accountID == "" || profileID == "" {
		return apperror.New(apperror.Validation, "userId and jobSeekerId are required")
	}

	profile, err := s.store.GetProfile(ctx, profileID)
	if err != nil {
		return err
	}
	account, err := s.store.GetAccount(ctx, accountID)
	if err != nil {
		return err
	}
	if profile.IsLinked() && *profile.AccountID != accountID {
		return apperror.New(apperror.Forbidden, "Job seeker profile is linked to another account").
			WithCode("already_linked")
	}

	if err := s.store.SetProfileAccount(ctx, profileID, accountID); err != nil {
		return err
	}
	if err := s.store.SetAccountProfile(ctx, accountID, profileID); err != nil {
		return err
	}

	if prev := account.JobSeekerID; prev != nil && *prev != "" && *prev != profileID {
		if err := s.store.ClearProfileAccount(ctx, *prev); err != nil && !apperror.Is(err, apperror.NotFound) {
			s.logger.Warn("failed to release previous profile",
				zap.String("user_id", accountID),
				zap.String("job_seeker_id", *prev),
				zap.Error(err),
			)
		}
	}

	s.logger.Info("profile linked",
		zap.String("user_id", accountID),
		zap.String("job_seeker_id", profileID),
	)
	return nil
}

// AnalysisForAccount returns the profile the account points at. Accounts
// without that reference fall back to a profile claiming the account.
func (s *Service) AnalysisForAccount(ctx context.Context, accountID string) (*models.CandidateProfile, error) {
	account, err := s.store.GetAccount(ctx, accountID)
	if err != nil && !apperror.Is(err, apperror.NotFound) {
		return nil, err
	}
	if err == nil && account.JobSeekerID != nil && *account.JobSeekerID != "" {
		profile, err := s.store.GetProfile(ctx, *account.JobSeekerID)
		if err == nil || !apperror.Is(err, apperror.NotFound) {
			return profile, err
		}
	}

	profile, err := s.store.GetProfileByAccount(ctx, accountID)
	if err != nil {
		if apperror.Is(err, apperror.NotFound) {
			return nil, apperror.New(apperror.NotFound, "No analysis found for this user")
		}
		return nil, err
	}
	return profile, nil
}

// UpdateAnalysis applies an allow-listed partial update to a profile. A
// profile linked to an account may only be changed by that account; an
// empty accountID skips the check.
func (s *Service) UpdateAnalysis(ctx context.Context, accountID, profileID string, update models.ProfileUpdate) (*models.CandidateProfile, error) {
	if update.IsEmpty() {
		return nil, apperror.New(apperror.Validation, "no updatable fields supplied")
	}

	profile, err := s.store.GetProfile(ctx, profileID)
	if err != nil {
		return nil, err
	}
	if accountID != "" && profile.IsLinked() && *profile.AccountID != accountID {
		return nil, apperror.New(apperror.Forbidden, "You can only update your own analysis")
	}

	return s.store.UpdateProfile(ctx, profileID, update)
}
