package gemini

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"google.golang.org/genai"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/jumptake/backend/config"
)

type scriptedOracle struct {
	errs  []error
	calls int
}

func (s *scriptedOracle) GenerateText(context.Context, string) (string, error) {
	s.calls++
	if len(s.errs) > 0 {
		err := s.errs[0]
		s.errs = s.errs[1:]
		if err != nil {
			return "", err
		}
	}
	return "ok", nil
}

func stubSleep(t *testing.T) *[]time.Duration {
	t.Helper()
	var waits []time.Duration
	original := sleep
	sleep = func(_ context.Context, d time.Duration) error {
		waits = append(waits, d)
		return nil
	}
	t.Cleanup(func() { sleep = original })
	return &waits
}

func TestRetryingRetriesTransientErrors(t *testing.T) {
	waits := stubSleep(t)
	tempErr := genai.APIError{Code: http.StatusInternalServerError, Status: "INTERNAL"}
	next := &scriptedOracle{errs: []error{tempErr, status.Error(codes.Unavailable, "down")}}

	r := NewRetrying(next, RetryPolicy{MaxRetries: 3, BaseDelay: 100 * time.Millisecond}, zap.NewNop())
	out, err := r.GenerateText(context.Background(), "prompt")

	require.NoError(t, err)
	assert.Equal(t, "ok", out)
	assert.Equal(t, 3, next.calls)
	assert.Equal(t, []time.Duration{100 * time.Millisecond, 200 * time.Millisecond}, *waits)
}

func TestRetryingStopsAfterRetriesExhausted(t *testing.T) {
	stubSleep(t)
	quota := genai.APIError{Code: http.StatusTooManyRequests, Status: "RESOURCE_EXHAUSTED"}
	next := &scriptedOracle{errs: []error{quota, quota, quota}}

	_, err := NewRetrying(next, RetryPolicy{MaxRetries: 2}, zap.NewNop()).GenerateText(context.Background(), "prompt")

	require.Error(t, err)
	assert.Equal(t, 3, next.calls)
}

func TestRetryingDoesNotRetryPermanentErrors(t *testing.T) {
	stubSleep(t)

	for name, err := range map[string]error{
		"bad request":   genai.APIError{Code: http.StatusBadRequest, Status: "INVALID_ARGUMENT"},
		"plain":         errors.New("malformed"),
		"configuration": &config.ConfigError{Field: "GEMINI_API_KEY", Message: "missing"},
	} {
		t.Run(name, func(t *testing.T) {
			next := &scriptedOracle{errs: []error{err}}
			_, got := NewRetrying(next, RetryPolicy{MaxRetries: 3}, zap.NewNop()).GenerateText(context.Background(), "prompt")
			require.Error(t, got)
			assert.Equal(t, 1, next.calls)
		})
	}
}

func TestRetryingStopsOnCancelledContext(t *testing.T) {
	stubSleep(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	next := &scriptedOracle{errs: []error{genai.APIError{Code: http.StatusServiceUnavailable}}}

	_, err := NewRetrying(next, RetryPolicy{MaxRetries: 3}, zap.NewNop()).GenerateText(ctx, "prompt")

	require.Error(t, err)
	assert.Equal(t, 1, next.calls)
}

func TestNewOracleRequiresCredentials(t *testing.T) {
	_, err := NewOracle(context.Background(), &config.Config{AIBackend: config.AIBackendGemini}, zap.NewNop())

	var cfgErr *config.ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "GEMINI_API_KEY", cfgErr.Field)
}
