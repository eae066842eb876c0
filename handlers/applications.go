package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/jumptake/backend/apperror"
	"github.com/jumptake/backend/models"
	"github.com/jumptake/backend/storage"
)

// ApplicationHandler handles job applications
type ApplicationHandler struct {
	store  storage.Store
	logger *zap.Logger
}

// NewApplicationHandler creates a new application handler
func NewApplicationHandler(store storage.Store, log *zap.Logger) *ApplicationHandler {
	return &ApplicationHandler{store: store, logger: log.Named("application_handler")}
}

// Apply submits an application for the caller
// @Summary Apply for a job
// @Description Apply to an active job. Each user can apply to a job once.
// @Tags Applications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.ApplicationRequest true "Application"
// @Success 201 {object} models.Application "Application submitted"
// @Failure 400 {object} models.ErrorResponse "Already applied or job closed"
// @Failure 404 {object} models.ErrorResponse "Job not found"
// @Router /applications [post]
func (h *ApplicationHandler) Apply(c *gin.Context) {
	var req models.ApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body", err)
		return
	}

	ctx := c.Request.Context()
	job, err := h.store.GetJob(ctx, req.JobID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	if !job.Active {
		respondError(c, h.logger, apperror.New(apperror.Validation, "This job is no longer accepting applications"))
		return
	}

	app := &models.Application{
		JobID:     job.ID,
		AccountID: callerID(c),
		Message:   strings.TrimSpace(req.Message),
	}
	if err := h.store.CreateApplication(ctx, app); err != nil {
		respondError(c, h.logger, err)
		return
	}

	h.logger.Info("application submitted", zap.String("job_id", app.JobID), zap.String("user_id", app.AccountID))
	c.JSON(http.StatusCreated, app)
}

// ListForUser returns the caller's applications
// @Summary List user applications
// @Tags Applications
// @Produce json
// @Security BearerAuth
// @Param userId path string true "User ID"
// @Success 200 {array} models.Application "Applications"
// @Failure 403 {object} models.ErrorResponse "Another user's applications"
// @Router /applications/user/{userId} [get]
func (h *ApplicationHandler) ListForUser(c *gin.Context) {
	apps, err := h.store.ListApplicationsByAccount(c.Request.Context(), c.Param("userId"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, apps)
}

// UpdateStatus changes an application's status. Applicants may only
// withdraw; the employer owning the job may set any status.
// @Summary Update application status
// @Tags Applications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Application ID"
// @Param request body models.ApplicationStatusRequest true "New status"
// @Success 200 {object} models.Application "Updated application"
// @Failure 400 {object} models.ErrorResponse "Unknown status"
// @Failure 403 {object} models.ErrorResponse "Not allowed"
// @Failure 404 {object} models.ErrorResponse "Application not found"
// @Router /applications/{id} [put]
func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	var req models.ApplicationStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body", err)
		return
	}

	status, ok := models.ParseApplicationStatus(req.Status)
	if !ok {
		respondError(c, h.logger, apperror.Newf(apperror.Validation, "unknown application status %q", req.Status))
		return
	}

	ctx := c.Request.Context()
	app, err := h.store.GetApplication(ctx, c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	if err := h.authorizeStatusChange(c, app, status); err != nil {
		respondError(c, h.logger, err)
		return
	}

	updated, err := h.store.UpdateApplicationStatus(ctx, app.ID, status)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *ApplicationHandler) authorizeStatusChange(c *gin.Context, app *models.Application, status models.ApplicationStatus) error {
	caller := callerID(c)
	if caller == app.AccountID {
		if status != models.StatusWithdrawn {
			return apperror.New(apperror.Forbidden, "Applicants can only withdraw their application")
		}
		return nil
	}

	ctx := c.Request.Context()
	job, err := h.store.GetJob(ctx, app.JobID)
	if err != nil {
		return err
	}
	company, err := h.store.GetCompany(ctx, job.CompanyID)
	if err != nil {
		return err
	}
	if company.OwnerID != caller {
		return apperror.New(apperror.Forbidden, "You can only review applications to your own jobs")
	}
	return nil
}
