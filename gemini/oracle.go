package gemini

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/jumptake/backend/config"
)

// Oracle turns a prompt into generated text. It is the only seam between
// the resume pipeline and the generative model, so tests substitute it.
type Oracle interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// OracleFunc adapts a function to the Oracle interface.
type OracleFunc func(ctx context.Context, prompt string) (string, error)

func (f OracleFunc) GenerateText(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}

// Unconfigured is used when no model credentials are available. Every call
// reports the configuration problem.
type Unconfigured struct {
	Err error
}

func (u Unconfigured) GenerateText(context.Context, string) (string, error) {
	return "", u.Err
}

// NewOracle builds the configured backend wrapped in retries. Missing
// credentials are reported as a configuration error.
func NewOracle(ctx context.Context, cfg *config.Config, log *zap.Logger) (Oracle, error) {
	if err := cfg.ValidateAI(); err != nil {
		return nil, err
	}

	var (
		base Oracle
		err  error
	)
	switch cfg.AIBackend {
	case config.AIBackendVertex:
		base, err = NewVertexClient(ctx, cfg)
	case config.AIBackendGemini:
		base, err = NewAPIClient(ctx, cfg)
	default:
		return nil, &config.ConfigError{Field: "AI_BACKEND", Message: fmt.Sprintf("unknown AI backend %q", cfg.AIBackend)}
	}
	if err != nil {
		return nil, err
	}

	log.Info("generative model ready",
		zap.String("backend", cfg.AIBackend),
		zap.String("model", cfg.GeminiModel),
		zap.Int("max_retries", cfg.AIMaxRetries),
	)

	return NewRetrying(base, RetryPolicy{MaxRetries: cfg.AIMaxRetries, BaseDelay: cfg.AIRetryBase}, log), nil
}
