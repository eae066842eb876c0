package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/jumptake/backend/models"
	"github.com/jumptake/backend/storage"
)

// CompanyHandler handles employer companies
type CompanyHandler struct {
	companies storage.CompanyStore
	jobs      storage.JobStore
	logger    *zap.Logger
}

// NewCompanyHandler creates a new company handler
func NewCompanyHandler(companies storage.CompanyStore, jobs storage.JobStore, log *zap.Logger) *CompanyHandler {
	return &CompanyHandler{companies: companies, jobs: jobs, logger: log.Named("company_handler")}
}

// Create registers a company owned by the caller
// @Summary Create company
// @Tags Companies
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.CompanyRequest true "Company"
// @Success 201 {object} models.Company "Created company"
// @Failure 400 {object} models.ErrorResponse "Invalid request body"
// @Router /companies [post]
func (h *CompanyHandler) Create(c *gin.Context) {
	var req models.CompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body", err)
		return
	}

	company := &models.Company{
		Name:         strings.TrimSpace(req.Name),
		Industry:     req.Industry,
		Headquarters: req.Headquarters,
		Description:  req.Description,
		Website:      req.Website,
		OwnerID:      callerID(c),
	}
	if err := h.companies.CreateCompany(c.Request.Context(), company); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, company)
}

// List returns every company
// @Summary List companies
// @Tags Companies
// @Produce json
// @Success 200 {array} models.Company "Companies"
// @Router /companies [get]
func (h *CompanyHandler) List(c *gin.Context) {
	companies, err := h.companies.ListCompanies(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, companies)
}

// Get returns one company
// @Summary Get company
// @Tags Companies
// @Produce json
// @Param id path string true "Company ID"
// @Success 200 {object} models.Company "Company"
// @Failure 404 {object} models.ErrorResponse "Not found"
// @Router /companies/{id} [get]
func (h *CompanyHandler) Get(c *gin.Context) {
	company, err := h.companies.GetCompany(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, company)
}

// Jobs returns every job of a company
// @Summary Company jobs
// @Tags Companies
// @Produce json
// @Param id path string true "Company ID"
// @Success 200 {array} models.Job "Jobs"
// @Failure 404 {object} models.ErrorResponse "Company not found"
// @Router /companies/{id}/jobs [get]
func (h *CompanyHandler) Jobs(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	if _, err := h.companies.GetCompany(ctx, id); err != nil {
		respondError(c, h.logger, err)
		return
	}

	jobs, err := h.jobs.ListCompanyJobs(ctx, id)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, jobs)
}
