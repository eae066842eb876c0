package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/jumptake/backend/apperror"
	"github.com/jumptake/backend/matching"
	"github.com/jumptake/backend/models"
	"github.com/jumptake/backend/storage"
)

// JobHandler handles job postings and skill-based ranking
type JobHandler struct {
	jobs        storage.JobStore
	companies   storage.CompanyStore
	recommender *matching.Recommender
	logger      *zap.Logger
}

// NewJobHandler creates a new job handler
func NewJobHandler(jobs storage.JobStore, companies storage.CompanyStore, recommender *matching.Recommender, log *zap.Logger) *JobHandler {
	return &JobHandler{
		jobs:        jobs,
		companies:   companies,
		recommender: recommender,
		logger:      log.Named("job_handler"),
	}
}

// ListJobs lists active jobs
// @Summary List jobs
// @Description List active job postings, newest first
// @Tags Jobs
// @Produce json
// @Success 200 {array} models.Job "Active jobs"
// @Router /jobs [get]
func (h *JobHandler) ListJobs(c *gin.Context) {
	jobs, err := h.jobs.ListActiveJobs(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, jobs)
}

// GetJob returns one job
// @Summary Get job
// @Tags Jobs
// @Produce json
// @Param id path string true "Job ID"
// @Success 200 {object} models.Job "Job"
// @Failure 404 {object} models.ErrorResponse "Job not found"
// @Router /jobs/{id} [get]
func (h *JobHandler) GetJob(c *gin.Context) {
	job, err := h.jobs.GetJob(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

// CreateJob posts a job for a company the caller owns
// @Summary Create job
// @Tags Jobs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.JobRequest true "Job"
// @Success 201 {object} models.Job "Created job"
// @Failure 400 {object} models.ErrorResponse "Invalid request body"
// @Failure 403 {object} models.ErrorResponse "Not the company owner"
// @Failure 404 {object} models.ErrorResponse "Company not found"
// @Router /jobs [post]
func (h *JobHandler) CreateJob(c *gin.Context) {
	var req models.JobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body", err)
		return
	}

	job, err := req.ToJob()
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	if err := h.checkCompanyOwner(c, job.CompanyID); err != nil {
		respondError(c, h.logger, err)
		return
	}

	if err := h.jobs.CreateJob(c.Request.Context(), job); err != nil {
		respondError(c, h.logger, err)
		return
	}

	h.logger.Info("job created", zap.String("job_id", job.ID), zap.String("company_id", job.CompanyID))
	c.JSON(http.StatusCreated, job)
}

// UpdateJob applies a partial update to a job
// @Summary Update job
// @Tags Jobs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Job ID"
// @Param request body models.JobUpdate true "Fields to update"
// @Success 200 {object} models.Job "Updated job"
// @Failure 400 {object} models.ErrorResponse "Invalid request body"
// @Failure 403 {object} models.ErrorResponse "Not the company owner"
// @Failure 404 {object} models.ErrorResponse "Job not found"
// @Router /jobs/{id} [put]
func (h *JobHandler) UpdateJob(c *gin.Context) {
	var req models.JobUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body", err)
		return
	}

	ctx := c.Request.Context()
	job, err := h.jobs.GetJob(ctx, c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	if err := h.checkCompanyOwner(c, job.CompanyID); err != nil {
		respondError(c, h.logger, err)
		return
	}

	if err := req.Apply(job); err != nil {
		respondError(c, h.logger, err)
		return
	}
	if err := h.jobs.UpdateJob(ctx, job); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, job)
}

// Recommendations ranks active jobs for a job seeker
// @Summary Job recommendations
// @Description Rank active jobs by the number of skills they share with the job seeker. Jobs without a shared skill are left out; a profile without skills gets an empty list.
// @Tags Jobs
// @Produce json
// @Security BearerAuth
// @Param jobSeekerId path string true "Job seeker ID"
// @Param limit query int false "Maximum number of results"
// @Success 200 {object} models.RecommendationsResponse "Ranked jobs"
// @Failure 400 {object} models.ErrorResponse "Invalid limit"
// @Failure 404 {object} models.ErrorResponse "Job seeker not found"
// @Router /jobs/recommendations/{jobSeekerId} [get]
func (h *JobHandler) Recommendations(c *gin.Context) {
	limit, err := limitParam(c)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	ranked, err := h.recommender.RecommendJobs(c.Request.Context(), c.Param("jobSeekerId"), limit)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, models.RecommendationsResponse{
		Results:      ranked,
		TotalResults: len(ranked),
	})
}

// Candidates ranks job seekers for a job
// @Summary Ranked candidates
// @Description Rank job seekers by the number of the job's skills they have
// @Tags Jobs
// @Produce json
// @Security BearerAuth
// @Param id path string true "Job ID"
// @Param limit query int false "Maximum number of results"
// @Success 200 {object} models.CandidatesResponse "Ranked candidates"
// @Failure 404 {object} models.ErrorResponse "Job not found"
// @Router /jobs/{id}/candidates [get]
func (h *JobHandler) Candidates(c *gin.Context) {
	limit, err := limitParam(c)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	ranked, err := h.recommender.RankCandidates(c.Request.Context(), c.Param("id"), limit)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, models.CandidatesResponse{
		Results:      ranked,
		TotalResults: len(ranked),
	})
}

func (h *JobHandler) checkCompanyOwner(c *gin.Context, companyID string) error {
	company, err := h.companies.GetCompany(c.Request.Context(), companyID)
	if err != nil {
		return err
	}
	if company.OwnerID != callerID(c) {
		return apperror.New(apperror.Forbidden, "You can only manage jobs of your own companies")
	}
	return nil
}
