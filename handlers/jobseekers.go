package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/jumptake/backend/models"
	"github.com/jumptake/backend/storage"
)

// JobSeekerHandler lets employers browse candidate profiles
type JobSeekerHandler struct {
	profiles storage.ProfileStore
	logger   *zap.Logger
}

// NewJobSeekerHandler creates a new job seeker handler
func NewJobSeekerHandler(profiles storage.ProfileStore, log *zap.Logger) *JobSeekerHandler {
	return &JobSeekerHandler{profiles: profiles, logger: log.Named("jobseeker_handler")}
}

// List returns every profile without resume text
// @Summary List job seekers
// @Tags JobSeekers
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.CandidateProfile "Profiles"
// @Failure 403 {object} models.ErrorResponse "Employers only"
// @Router /job-seekers [get]
func (h *JobSeekerHandler) List(c *gin.Context) {
	profiles, err := h.profiles.ListProfiles(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	out := make([]*models.CandidateProfile, 0, len(profiles))
	for _, p := range profiles {
		out = append(out, p.Summary())
	}
	c.JSON(http.StatusOK, out)
}

// Get returns one profile
// @Summary Get job seeker
// @Tags JobSeekers
// @Produce json
// @Security BearerAuth
// @Param id path string true "Job seeker ID"
// @Success 200 {object} models.CandidateProfile "Profile"
// @Failure 404 {object} models.ErrorResponse "Not found"
// @Router /job-seekers/{id} [get]
func (h *JobSeekerHandler) Get(c *gin.Context) {
	profile, err := h.profiles.GetProfile(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}
