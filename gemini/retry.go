package gemini

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"
	"google.golang.org/api/googleapi"
	"google.golang.org/genai"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const maxBackoff = 10 * time.Second

// sleep waits for d or until ctx is done. Tests replace it.
var sleep = func(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// RetryPolicy bounds the retries of transient model failures.
type RetryPolicy struct {
	MaxRetries int
	BaseDelay  time.Duration
}

// Retrying retries transient failures of the wrapped oracle with
// exponential backoff.
type Retrying struct {
	next   Oracle
	policy RetryPolicy
	logger *zap.Logger
}

// NewRetrying wraps next.
func NewRetrying(next Oracle, policy RetryPolicy, logger *zap.Logger) *Retrying {
	if policy.MaxRetries < 0 {
		policy.MaxRetries = 0
	}
	if policy.BaseDelay <= 0 {
		policy.BaseDelay = 500 * time.Millisecond
	}
	return &Retrying{next: next, policy: policy, logger: logger.Named("oracle")}
}

func (r *Retrying) GenerateText(ctx context.Context, prompt string) (string, error) {
	delay := r.policy.BaseDelay
	for attempt := 0; ; attempt++ {
		text, err := r.next.GenerateText(ctx, prompt)
		if err == nil {
			return text, nil
		}
		if attempt >= r.policy.MaxRetries || ctx.Err() != nil || !isTransient(err) {
			return "", err
		}

		r.logger.Warn("transient model failure, retrying",
			zap.Int("attempt", attempt+1),
			zap.Duration("backoff", delay),
			zap.Error(err),
		)
		if err := sleep(ctx, delay); err != nil {
			return "", err
		}
		delay *= 2
		if delay > maxBackoff {
			delay = maxBackoff
		}
	}
}

// Close releases the wrapped client when it holds resources.
func (r *Retrying) Close() error {
	if c, ok := r.next.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}

func isTransient(err error) bool {
	if errors.Is(err, context.Canceled) {
		return false
	}

	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return retryableStatus(apiErr.Code)
	}
	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) {
		return retryableStatus(apiErrPtr.Code)
	}

	var gErr *googleapi.Error
	if errors.As(err, &gErr) {
		return retryableStatus(gErr.Code)
	}

	if st, ok := status.FromError(err); ok {
		switch st.Code() {
		case codes.Unavailable, codes.ResourceExhausted, codes.DeadlineExceeded, codes.Internal, codes.Aborted:
			return true
		}
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	return errors.Is(err, context.DeadlineExceeded)
}

func retryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}
