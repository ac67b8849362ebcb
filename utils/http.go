package utils

import (
	"crypto/tls"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

// NewHTTPClient creates a configured HTTP client for external requests.
// A nil limiter disables rate limiting.
func NewHTTPClient(timeout time.Duration, limiter *rate.Limiter) *http.Client {
	var transport http.RoundTripper = &http.Transport{
		TLSClientConfig: &tls.Config{
			MinVersion: tls.VersionTLS12,
		},
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
	}
	transport = UserAgentMiddleware(transport)
	if limiter != nil {
		transport = RateLimitMiddleware(limiter, transport)
	}

	return &http.Client{
		Timeout:   timeout,
		Transport: transport,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) >= 10 {
				return http.ErrUseLastResponse
			}
			return nil
		},
	}
}

// UserAgentMiddleware adds a user agent header to requests
func UserAgentMiddleware(next http.RoundTripper) http.RoundTripper {
	return &userAgentTransport{next: next}
}

type userAgentTransport struct {
	next http.RoundTripper
}

func (t *userAgentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Header.Get("User-Agent") == "" {
		req.Header.Set("User-Agent", "jobfeed/1.0")
	}
	return t.next.RoundTrip(req)
}

// RateLimitMiddleware blocks each request until limiter grants a token or the
// request context is done.
func RateLimitMiddleware(limiter *rate.Limiter, next http.RoundTripper) http.RoundTripper {
	return &rateLimitTransport{limiter: limiter, next: next}
}

type rateLimitTransport struct {
	limiter *rate.Limiter
	next    http.RoundTripper
}

func (t *rateLimitTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if err := t.limiter.Wait(req.Context()); err != nil {
		return nil, err
	}
	return t.next.RoundTrip(req)
}
