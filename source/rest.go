package source

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/movekit/typeaccessor/pkg/move"
)

// RESTConfig configures a REST source.
type RESTConfig struct {
	// Endpoint is the node API base URL, e.g. "https://fullnode.example.com/v1".
	Endpoint string

	// Timeout bounds a single HTTP request. Zero means DefaultTimeout.
	Timeout time.Duration

	// RequestsPerSecond throttles outgoing requests. Zero disables throttling.
	RequestsPerSecond float64

	// Burst is the throttle burst size; only meaningful with a rate limit.
	Burst int

	// MaxRetries bounds retry attempts for transient failures. Zero means
	// DefaultMaxRetries; retries never apply to not-found responses.
	MaxRetries int

	// Client overrides the HTTP client. Nil means a client with Timeout.
	Client *http.Client

	// Logger receives debug-level fetch logging. Nil means no logging.
	Logger *zerolog.Logger
}

// REST source defaults.
const (
	DefaultTimeout    = 10 * time.Second
	DefaultMaxRetries = 3
)

// REST fetches module bytes over a node REST API:
//
//	GET {endpoint}/accounts/{address}/module/{name}
//
// Transient failures (transport errors, 5xx, 429) are retried with
// exponential backoff; retry policy belongs here, at the source, never in
// the resolution engine. A 404 maps to ErrNotFound and is not retried.
type REST struct {
	endpoint string
	client   *http.Client
	limiter  *rate.Limiter
	retries  int
	log      zerolog.Logger
}

// NewREST creates a REST source from the given configuration.
func NewREST(cfg RESTConfig) (*REST, error) {
	parsed, err := url.Parse(cfg.Endpoint)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("invalid endpoint %q", cfg.Endpoint)
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	client := cfg.Client
	if client == nil {
		client = &http.Client{Timeout: timeout}
	}

	var limiter *rate.Limiter
	if cfg.RequestsPerSecond > 0 {
		burst := cfg.Burst
		if burst <= 0 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), burst)
	}

	retries := cfg.MaxRetries
	if retries <= 0 {
		retries = DefaultMaxRetries
	}

	log := zerolog.Nop()
	if cfg.Logger != nil {
		log = *cfg.Logger
	}

	return &REST{
		endpoint: strings.TrimRight(cfg.Endpoint, "/"),
		client:   client,
		limiter:  limiter,
		retries:  retries,
		log:      log,
	}, nil
}

// FetchModule implements ModuleSource.
func (s *REST) FetchModule(ctx context.Context, id move.ModuleID) ([]byte, error) {
	if s.limiter != nil {
		if err := s.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	reqURL := fmt.Sprintf("%s/accounts/%s/module/%s", s.endpoint, id.Address, id.Name)
	started := time.Now()

	operation := func() ([]byte, error) {
		return s.fetchOnce(ctx, reqURL, id)
	}

	data, err := backoff.Retry(ctx, operation,
		backoff.WithBackOff(backoff.NewExponentialBackOff()),
		backoff.WithMaxTries(uint(s.retries)),
	)
	if err != nil {
		s.log.Debug().Stringer("module", id).Err(err).Msg("module fetch failed")
		return nil, err
	}

	s.log.Debug().
		Stringer("module", id).
		Int("bytes", len(data)).
		Dur("elapsed", time.Since(started)).
		Msg("module fetched")
	return data, nil
}

// fetchOnce performs a single HTTP round trip. Errors wrapped with
// backoff.Permanent are not retried.
func (s *REST) fetchOnce(ctx context.Context, reqURL string, id move.ModuleID) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, backoff.Permanent(fmt.Errorf("module %s: %w", id, err))
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		// Transport errors are worth retrying.
		return nil, fmt.Errorf("module %s: %w", id, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("module %s: reading response: %w", id, err)
		}
		return data, nil

	case resp.StatusCode == http.StatusNotFound:
		return nil, backoff.Permanent(fmt.Errorf("module %s: %w", id, ErrNotFound))

	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
		return nil, fmt.Errorf("module %s: server returned %s", id, resp.Status)

	default:
		return nil, backoff.Permanent(fmt.Errorf("module %s: server returned %s", id, resp.Status))
	}
}

// Verify interface compliance.
var _ ModuleSource = (*REST)(nil)
