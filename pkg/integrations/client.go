package integrations

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/cenk/backoff"
	circuit "github.com/rubyist/circuitbreaker"

	"github.com/matzehuels/depaudit/pkg/httputil"
	"github.com/matzehuels/depaudit/pkg/observability"
)

// Options configures a Client. The zero value gives a single attempt per
// request, the default timeout and no circuit breaker.
type Options struct {
	// Timeout bounds each HTTP request. Defaults to DefaultTimeout.
	Timeout time.Duration

	// Attempts is the number of tries for transient failures. Values
	// below 1 mean a single try.
	Attempts int

	// RetryDelay is the wait before the first retry. Defaults to 500ms.
	RetryDelay time.Duration

	// BreakerThreshold opens the circuit after that many consecutive
	// failed requests. Zero disables the breaker.
	BreakerThreshold int

	// BreakerCooldown is the first wait before a half-open probe.
	// Defaults to 30s and grows exponentially up to 5 minutes.
	BreakerCooldown time.Duration

	// Headers are applied to all requests.
	Headers map[string]string
}

// WithDefaults returns a copy of o with zero fields filled in.
func (o Options) WithDefaults() Options {
	if o.Timeout <= 0 {
		o.Timeout = DefaultTimeout
	}
	if o.Attempts < 1 {
		o.Attempts = 1
	}
	if o.RetryDelay <= 0 {
		o.RetryDelay = 500 * time.Millisecond
	}
	if o.BreakerCooldown <= 0 {
		o.BreakerCooldown = 30 * time.Second
	}
	return o
}

// Client provides shared HTTP functionality for all registry API clients.
// It is safe for concurrent use.
type Client struct {
	http       *http.Client
	headers    map[string]string
	attempts   int
	retryDelay time.Duration
	breaker    *circuit.Breaker
}

// NewClient creates a Client from opts.
func NewClient(opts Options) *Client {
	opts = opts.WithDefaults()
	c := &Client{
		http:       NewHTTPClient(opts.Timeout),
		headers:    opts.Headers,
		attempts:   opts.Attempts,
		retryDelay: opts.RetryDelay,
	}
	if opts.BreakerThreshold > 0 {
		c.breaker = newBreaker(opts.BreakerThreshold, opts.BreakerCooldown)
	}
	return c
}

func newBreaker(threshold int, cooldown time.Duration) *circuit.Breaker {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = cooldown
	b.MaxInterval = 5 * time.Minute
	b.Multiplier = 2.0
	b.MaxElapsedTime = 0
	b.Reset()

	return circuit.NewBreakerWithOptions(&circuit.Options{
		BackOff:    b,
		ShouldTrip: circuit.ConsecutiveTripFunc(int64(threshold)),
	})
}

// Tripped reports whether the circuit breaker is currently open.
func (c *Client) Tripped() bool {
	return c.breaker != nil && c.breaker.Tripped()
}

// Get performs an HTTP GET request and JSON-decodes the response into v.
func (c *Client) Get(ctx context.Context, url string, v any) error {
	return c.GetWithHeaders(ctx, url, nil, v)
}

// GetWithHeaders performs an HTTP GET with additional headers merged with defaults.
// Request-specific headers override client defaults for the same key.
func (c *Client) GetWithHeaders(ctx context.Context, url string, headers map[string]string, v any) error {
	return c.guard(ctx, url, func() error {
		return httputil.Retry(ctx, c.attempts, c.retryDelay, func() error {
			body, err := c.doRequest(ctx, url, headers)
			if err != nil {
				return err
			}
			defer body.Close()
			if err := json.NewDecoder(body).Decode(v); err != nil {
				return fmt.Errorf("%w: decode response: %v", ErrNetwork, err)
			}
			return nil
		})
	})
}

// guard runs fn through the circuit breaker, if one is configured.
// ErrNotFound passes through without counting as a failure. Call decides
// on its own whether the breaker admits the request; asking Ready first
// would spend the half-open probe.
func (c *Client) guard(ctx context.Context, rawURL string, fn func() error) error {
	if c.breaker == nil {
		return fn()
	}

	var notFound error
	err := c.breaker.Call(func() error {
		err := fn()
		if errors.Is(err, ErrNotFound) {
			notFound = err
			return nil
		}
		return err
	}, 0)
	if errors.Is(err, circuit.ErrBreakerOpen) {
		err = fmt.Errorf("%w: %w", ErrNetwork, ErrCircuitOpen)
		host, path := splitURL(rawURL)
		observability.HTTP().OnError(ctx, http.MethodGet, host, path, err)
		return err
	}
	if err != nil {
		return err
	}
	return notFound
}

func (c *Client) doRequest(ctx context.Context, rawURL string, headers map[string]string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	host, path := req.URL.Host, req.URL.EscapedPath()
	hooks := observability.HTTP()
	hooks.OnRequest(ctx, req.Method, host, path)
	start := time.Now()

	resp, err := c.http.Do(req)
	if err != nil {
		hooks.OnError(ctx, req.Method, host, path, err)
		return nil, &httputil.RetryableError{Err: fmt.Errorf("%w: %v", ErrNetwork, err)}
	}
	hooks.OnResponse(ctx, req.Method, host, path, resp.StatusCode, time.Since(start))

	if err := checkStatus(resp.StatusCode); err != nil {
		resp.Body.Close()
		return nil, err
	}
	return resp.Body, nil
}

func checkStatus(code int) error {
	switch {
	case code == http.StatusOK:
		return nil
	case code == http.StatusNotFound:
		return ErrNotFound
	case code >= 500:
		return &httputil.RetryableError{Err: fmt.Errorf("%w: status %d", ErrNetwork, code)}
	default:
		return fmt.Errorf("%w: status %d", ErrNetwork, code)
	}
}

func splitURL(rawURL string) (host, path string) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", rawURL
	}
	return u.Host, u.EscapedPath()
}
