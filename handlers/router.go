package handlers

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/jumptake/backend/auth"
	"github.com/jumptake/backend/config"
	"github.com/jumptake/backend/logger"
	"github.com/jumptake/backend/matching"
	"github.com/jumptake/backend/mcp"
	"github.com/jumptake/backend/models"
	"github.com/jumptake/backend/resume"
	"github.com/jumptake/backend/storage"
)

// Deps are the services the HTTP surface is built from.
type Deps struct {
	Config      *config.Config
	Store       storage.Store
	Resumes     *resume.Service
	Recommender *matching.Recommender
	JWT         *auth.JWTService
	GoogleAuth  *auth.GoogleAuthService
	MCP         *mcp.Server
	Version     string
	Logger      *zap.Logger
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = origins
	cfg.AllowCredentials = true
	return cfg
}

// NewRouter wires every route under /api.
func NewRouter(d Deps) *gin.Engine {
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(logger.GinMiddleware(d.Logger))

	router.Use(cors.New(corsConfig(d.Config.CORSOrigins)))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", HealthCheck(d.Version))

	resumeHandler := NewResumeHandler(d.Resumes, d.Config.MaxUploadMB, d.Logger)
	jobHandler := NewJobHandler(d.Store, d.Store, d.Recommender, d.Logger)
	jobSeekerHandler := NewJobSeekerHandler(d.Store, d.Logger)
	companyHandler := NewCompanyHandler(d.Store, d.Store, d.Logger)
	applicationHandler := NewApplicationHandler(d.Store, d.Logger)
	authHandler := NewAuthHandler(d.Store, d.Resumes, d.JWT, d.GoogleAuth, d.Logger)

	requireAuth := auth.AuthMiddleware(d.JWT)
	employerOnly := auth.RequireRole(models.RoleEmployer)

	api := router.Group("/api")
	{
		authGroup := api.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
			authGroup.POST("/google", authHandler.GoogleLogin)
			authGroup.GET("/profile", requireAuth, authHandler.GetProfile)
			authGroup.POST("/refresh", requireAuth, authHandler.Refresh)
		}

		users := api.Group("/users/:userId", requireAuth, auth.RequireSelf("userId"))
		{
			users.GET("/notification-preferences", authHandler.GetNotificationPreferences)
			users.PUT("/notification-preferences", authHandler.UpdateNotificationPreferences)
		}

		resumes := api.Group("/resume")
		{
			resumes.POST("/parse", auth.OptionalAuthMiddleware(d.JWT), resumeHandler.Parse)
			resumes.POST("/link", requireAuth, resumeHandler.Link)
			resumes.GET("/analysis/:id", requireAuth, auth.RequireSelf("id"), resumeHandler.GetAnalysis)
			resumes.PUT("/analysis/:id", requireAuth, resumeHandler.UpdateAnalysis)
		}

		jobs := api.Group("/jobs")
		{
			jobs.GET("", jobHandler.ListJobs)
			jobs.GET("/:id", jobHandler.GetJob)
			jobs.POST("", requireAuth, employerOnly, jobHandler.CreateJob)
			jobs.PUT("/:id", requireAuth, employerOnly, jobHandler.UpdateJob)
			jobs.GET("/:id/candidates", requireAuth, employerOnly, jobHandler.Candidates)
			jobs.GET("/recommendations/:jobSeekerId", requireAuth, jobHandler.Recommendations)
		}

		seekers := api.Group("/job-seekers", requireAuth, employerOnly)
		{
			seekers.GET("", jobSeekerHandler.List)
			seekers.GET("/:id", jobSeekerHandler.Get)
		}

		companies := api.Group("/companies")
		{
			companies.GET("", companyHandler.List)
			companies.GET("/:id", companyHandler.Get)
			companies.GET("/:id/jobs", companyHandler.Jobs)
			companies.POST("", requireAuth, employerOnly, companyHandler.Create)
		}

		applications := api.Group("/applications", requireAuth)
		{
			applications.POST("", applicationHandler.Apply)
			applications.GET("/user/:userId", auth.RequireSelf("userId"), applicationHandler.ListForUser)
			applications.PUT("/:id", applicationHandler.UpdateStatus)
		}

		if d.MCP != nil {
			d.MCP.RegisterRoutes(api)
		}
	}

	return router
}
