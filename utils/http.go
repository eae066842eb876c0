package utils

import (
	"crypto/tls"
	"net/http"
	"time"
)

// DefaultUserAgent identifies the service on outbound calls.
const DefaultUserAgent = "jumptake-backend/1.0"

const maxRedirects = 10

// NewHTTPClient creates the client used for calls to the model API. A zero
// timeout leaves deadlines to the request context.
func NewHTTPClient(timeout time.Duration) *http.Client {
	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		TLSClientConfig: &tls.Config{
			MinVersion: tls.VersionTLS12,
		},
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
	}

	return &http.Client{
		Timeout:       timeout,
		Transport:     WithUserAgent(transport, DefaultUserAgent),
		CheckRedirect: limitRedirects,
	}
}

func limitRedirects(_ *http.Request, via []*http.Request) error {
	if len(via) >= maxRedirects {
		return http.ErrUseLastResponse
	}
	return nil
}

// WithUserAgent sets the User-Agent header on requests that have none.
func WithUserAgent(next http.RoundTripper, agent string) http.RoundTripper {
	if next == nil {
		next = http.DefaultTransport
	}
	return &userAgentTransport{next: next, agent: agent}
}

type userAgentTransport struct {
	next  http.RoundTripper
	agent string
}

func (t *userAgentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Header.Get("User-Agent") != "" {
		return t.next.RoundTrip(req)
	}
	// RoundTrippers must not modify the caller's request.
	clone := req.Clone(req.Context())
	clone.Header.Set("User-Agent", t.agent)
	return t.next.RoundTrip(clone)
}
