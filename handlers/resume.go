package handlers

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/jumptake/backend/apperror"
	"github.com/jumptake/backend/auth"
	"github.com/jumptake/backend/models"
	"github.com/jumptake/backend/resume"
)

// ResumeHandler handles resume parsing and analysis requests
type ResumeHandler struct {
	service        *resume.Service
	maxUploadBytes int64
	logger         *zap.Logger
}

// NewResumeHandler creates a new resume handler
func NewResumeHandler(service *resume.Service, maxUploadMB int, log *zap.Logger) *ResumeHandler {
	if maxUploadMB <= 0 {
		maxUploadMB = 10
	}
	return &ResumeHandler{
		service:        service,
		maxUploadBytes: int64(maxUploadMB) << 20,
		logger:         log.Named("resume_handler"),
	}
}

// Parse parses a resume and stores the extracted profile
// @Summary Parse resume
// @Description Parse resume text or an uploaded PDF, DOCX or TXT file into a stored job seeker profile. A signed-in job seeker gets the profile linked to their account. When the AI model fails, a placeholder profile with "Could not parse" fields is stored and returned.
// @Tags Resume
// @Accept json
// @Accept multipart/form-data
// @Produce json
// @Param request body models.ResumeParseRequest false "Resume text (JSON)"
// @Param resume_file formData file false "Resume file (PDF, DOCX, TXT)"
// @Param resumeText formData string false "Resume text content"
// @Success 200 {object} models.ResumeParseResponse "Parsed resume"
// @Failure 400 {object} models.ErrorResponse "Invalid request or unsupported file"
// @Failure 503 {object} models.ErrorResponse "AI service not configured"
// @Router /resume/parse [post]
func (h *ResumeHandler) Parse(c *gin.Context) {
	ctx := c.Request.Context()

	var (
		result *resume.Result
		err    error
	)

	if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadBytes)

		file, header, ferr := c.Request.FormFile("resume_file")
		switch {
		case ferr == nil:
			defer file.Close()

			data, rerr := io.ReadAll(file)
			if rerr != nil {
				var tooLarge *http.MaxBytesError
				if errors.As(rerr, &tooLarge) {
					badRequest(c, "Resume file is too large", rerr)
					return
				}
				badRequest(c, "Failed to read resume file", rerr)
				return
			}

			result, err = h.service.ParseDocument(ctx, resume.Upload{
				Data:      data,
				MediaType: header.Header.Get("Content-Type"),
				Filename:  header.Filename,
			})
		case errors.Is(ferr, http.ErrMissingFile):
			result, err = h.service.Parse(ctx, c.PostForm("resumeText"))
		default:
			badRequest(c, "Invalid multipart request", ferr)
			return
		}
	} else {
		var req models.ResumeParseRequest
		if berr := c.ShouldBindJSON(&req); berr != nil {
			badRequest(c, "Invalid request body", berr)
			return
		}
		result, err = h.service.Parse(ctx, req.ResumeText)
	}

	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, models.ResumeParseResponse{
		Message:     h.linkToCaller(c, result.JobSeekerID),
		JobSeekerID: result.JobSeekerID,
		Data:        result.Data,
	})
}

// linkToCaller links a fresh profile to a signed-in job seeker. A failed
// link leaves the parse result intact.
func (h *ResumeHandler) linkToCaller(c *gin.Context, jobSeekerID string) string {
	claims := auth.GetAuthClaims(c)
	if claims == nil || claims.Role != models.RoleJobSeeker {
		return "Resume parsed successfully"
	}

	if err := h.service.Link(c.Request.Context(), claims.AccountID, jobSeekerID); err != nil {
		h.logger.Warn("auto-link failed",
			zap.String("user_id", claims.AccountID),
			zap.String("job_seeker_id", jobSeekerID),
			zap.Error(err),
		)
		return "Resume parsed successfully"
	}
	return "Resume parsed and linked to your account"
}

// Link links a parsed profile to the caller's account
// @Summary Link resume to user
// @Description Link a parsed job seeker profile to the authenticated account. The account's previous profile is released. Profiles owned by another account cannot be claimed.
// @Tags Resume
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.LinkRequest true "Link request"
// @Success 200 {object} models.MessageResponse "Linked"
// @Failure 400 {object} models.ErrorResponse "Invalid request body"
// @Failure 403 {object} models.ErrorResponse "Linking another user's account or profile"
// @Failure 404 {object} models.ErrorResponse "Profile or user not found"
// @Router /resume/link [post]
func (h *ResumeHandler) Link(c *gin.Context) {
	var req models.LinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body", err)
		return
	}

	if req.UserID != callerID(c) {
		respondError(c, h.logger, apperror.New(apperror.Forbidden, "You can only link resumes to your own account"))
		return
	}

	if err := h.service.Link(c.Request.Context(), req.UserID, req.JobSeekerID); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, models.MessageResponse{Message: "Linked successfully"})
}

// GetAnalysis returns the profile owned by a user
// @Summary Get resume analysis
// @Description Get the job seeker profile linked to a user account
// @Tags Resume
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} models.ProfileDataResponse "Profile"
// @Failure 403 {object} models.ErrorResponse "Another user's analysis"
// @Failure 404 {object} models.ErrorResponse "No analysis found"
// @Router /resume/analysis/{id} [get]
func (h *ResumeHandler) GetAnalysis(c *gin.Context) {
	profile, err := h.service.AnalysisForAccount(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, models.ProfileDataResponse{Data: profile})
}

// UpdateAnalysis applies a partial update to a profile
// @Summary Update resume analysis
// @Description Update name, email, skills, interests, hobbies, education, experience or achievements of a profile. Any other field is rejected.
// @Tags Resume
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Job seeker ID"
// @Param request body object true "Fields to update"
// @Success 200 {object} models.ProfileDataResponse "Updated profile"
// @Failure 400 {object} models.ErrorResponse "Field not updatable"
// @Failure 403 {object} models.ErrorResponse "Another user's analysis"
// @Failure 404 {object} models.ErrorResponse "Profile not found"
// @Router /resume/analysis/{id} [put]
func (h *ResumeHandler) UpdateAnalysis(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		badRequest(c, "Invalid request body", err)
		return
	}

	update, err := models.ParseProfileUpdate(body)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	profile, err := h.service.UpdateAnalysis(c.Request.Context(), callerID(c), c.Param("id"), update)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, models.ProfileDataResponse{
		Message: "Analysis updated successfully",
		Data:    profile,
	})
}
