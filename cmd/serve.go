package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jumptake/backend/apperror"
	"github.com/jumptake/backend/auth"
	"github.com/jumptake/backend/config"
	"github.com/jumptake/backend/gemini"
	"github.com/jumptake/backend/handlers"
	"github.com/jumptake/backend/logger"
	"github.com/jumptake/backend/matching"
	"github.com/jumptake/backend/mcp"
	"github.com/jumptake/backend/resume"
	"github.com/jumptake/backend/storage"
	"github.com/jumptake/backend/tools"
)

const shutdownTimeout = 30 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		return serve(ctx)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func serve(ctx context.Context) error {
	cfg := loadConfig()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	log, err := logger.New(cfg.LogJSON, cfg.Debug)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer log.Sync() //nolint:errcheck

	if cfg.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	store, err := storage.Open(ctx, cfg, log)
	if err != nil {
		return fmt.Errorf("open %s store: %w", cfg.StoreBackend, err)
	}
	defer store.Close()
	log.Info("store ready", zap.String("backend", cfg.StoreBackend))

	oracle, closeOracle, err := openOracle(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeOracle()

	extractor, err := gemini.NewResumeExtractor(oracle, cfg.AITimeout, log)
	if err != nil {
		return fmt.Errorf("create resume extractor: %w", err)
	}

	var archive resume.Archiver
	if cfg.CVBucketName != "" {
		bucket, err := storage.NewCloudStorageClient(ctx, cfg)
		if err != nil {
			log.Warn("resume archive disabled", zap.String("bucket", cfg.CVBucketName), zap.Error(err))
		} else {
			defer bucket.Close()
			archive = bucket
		}
	}

	resumes := resume.NewService(store, extractor, archive, log)
	recommender := matching.NewRecommender(store, store, cfg.MaxRecommendations, log)

	registry := tools.NewToolRegistry()
	registry.Register(tools.NewParseResumeTool(extractor))
	registry.Register(tools.NewScoreSkillsTool())
	registry.Register(tools.NewRecommendJobsTool(recommender))

	router := handlers.NewRouter(handlers.Deps{
		Config:      cfg,
		Store:       store,
		Resumes:     resumes,
		Recommender: recommender,
		JWT:         auth.NewJWTService(cfg),
		GoogleAuth:  auth.NewGoogleAuthService(cfg),
		MCP:         mcp.NewServer(registry, version, log),
		Version:     version,
		Logger:      log,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", zap.String("port", cfg.Port), zap.String("version", version))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("server exited gracefully")
	return nil
}

// openOracle connects the configured model. Missing credentials do not stop
// the server: parse requests report the configuration error instead.
func openOracle(ctx context.Context, cfg *config.Config, log *zap.Logger) (gemini.Oracle, func(), error) {
	oracle, err := gemini.NewOracle(ctx, cfg, log)
	if err != nil {
		if apperror.Is(err, apperror.Configuration) {
			log.Warn("generative model not configured, resume parsing disabled", zap.Error(err))
			return gemini.Unconfigured{Err: err}, func() {}, nil
		}
		return nil, nil, fmt.Errorf("connect %s model: %w", cfg.AIBackend, err)
	}

	closeFn := func() {}
	if c, ok := oracle.(interface{ Close() error }); ok {
		closeFn = func() {
			if err := c.Close(); err != nil {
				log.Warn("close model client", zap.Error(err))
			}
		}
	}
	return oracle, closeFn, nil
}
