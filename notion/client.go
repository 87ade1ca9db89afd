package notion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
)

const (
	// DefaultBaseURL is the base URL for the Notion API.
	DefaultBaseURL = "https://api.notion.com/v1"
	// DefaultNotionVersion is the API version sent unless overridden.
	DefaultNotionVersion = "2025-09-03"
)

// Client is a Notion REST API client. A single instance is safe for
// concurrent use; all calls share one rate-limit budget.
type Client struct {
	httpClient *http.Client
	token      string
	baseURL    string
	version    string
	logger     *slog.Logger
	limiter    *rateLimiter
	retry      RetryConfig
}

// Option configures a Client at construction.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client. Per-attempt timeouts
// come from this client; the retry cycle is bounded only by MaxRetries.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithBaseURL overrides the API base URL, mainly for tests.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) { c.baseURL = baseURL }
}

// WithNotionVersion overrides the Notion-Version header.
func WithNotionVersion(version string) Option {
	return func(c *Client) { c.version = version }
}

// WithLogger attaches a structured logger. Retries and throttle delays are
// logged at Debug, exhausted retry budgets at Warn.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// WithRetry overrides the 429 retry bounds.
func WithRetry(cfg RetryConfig) Option {
	return func(c *Client) { c.retry = cfg }
}

// WithRateLimit selects the proactive throttling strategy.
func WithRateLimit(strategy RateLimitStrategy) Option {
	return func(c *Client) { c.limiter = newRateLimiter(strategy) }
}

// WithoutRateLimit disables proactive throttling. 429 retry handling stays
// active.
func WithoutRateLimit() Option {
	return func(c *Client) { c.limiter.enabled = false }
}

// NewClient creates a new Notion API client.
func NewClient(token string, opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{},
		token:      token,
		baseURL:    DefaultBaseURL,
		version:    DefaultNotionVersion,
		logger:     slog.New(slog.DiscardHandler),
		limiter:    newRateLimiter(StrategyBalanced),
		retry:      DefaultRetryConfig(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// RateLimit returns the last request budget observed from response headers.
func (c *Client) RateLimit() RateLimitState {
	return c.limiter.state()
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

func (c *Client) patch(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPatch, path, nil, body, out)
}

func (c *Client) delete(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, out)
}

// do sends one logical JSON request: marshal, throttle, attempt, and retry
// on 429 up to the configured bound. It presents as a single call returning
// success or a typed error.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	var payload []byte
	contentType := ""
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		contentType = "application/json"
	}
	return c.doRaw(ctx, method, path, query, contentType, payload, out)
}

// doRaw sends a pre-encoded request body. The buffered payload is what makes
// retries safe: each attempt rebuilds the request from the same bytes.
func (c *Client) doRaw(ctx context.Context, method, path string, query url.Values, contentType string, payload []byte, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	for attempt := 0; ; attempt++ {
		if err := c.limiter.wait(ctx); err != nil {
			return err
		}

		var reqBody io.Reader
		if payload != nil {
			reqBody = bytes.NewReader(payload)
		}
		req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
		if err != nil {
			return fmt.Errorf("failed to create request: %w", err)
		}
		c.setHeaders(req)
		if contentType != "" {
			req.Header.Set("Content-Type", contentType)
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return &NetworkError{Err: err}
		}

		respBody, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			return &NetworkError{Err: fmt.Errorf("failed to read response body: %w", err)}
		}

		c.limiter.observe(resp.Header)

		if resp.StatusCode == http.StatusTooManyRequests {
			c.limiter.observeRateLimited()
			if attempt < c.retry.MaxRetries {
				delay := c.retry.backoff(attempt, retryAfterHeader(resp.Header))
				c.logger.DebugContext(ctx, "rate limited, retrying",
					"method", method, "path", path,
					"attempt", attempt+1, "delay", delay)
				if err := sleepContext(ctx, delay); err != nil {
					return err
				}
				continue
			}
			c.logger.WarnContext(ctx, "rate limit retries exhausted",
				"method", method, "path", path, "attempts", attempt+1)
			return decodeError(resp.StatusCode, respBody)
		}

		if resp.StatusCode >= 400 {
			return decodeError(resp.StatusCode, respBody)
		}

		if out != nil {
			if err := json.Unmarshal(respBody, out); err != nil {
				return fmt.Errorf("failed to unmarshal response: %w", err)
			}
		}
		return nil
	}
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Notion-Version", c.version)
}

// decodeError maps an error response to the taxonomy. Unknown response
// bodies still yield an APIError carrying the status.
func decodeError(status int, body []byte) error {
	var apiErr APIError
	if err := json.Unmarshal(body, &apiErr); err != nil {
		apiErr = APIError{Message: string(body)}
	}
	apiErr.Status = status
	if status == http.StatusUnauthorized {
		return &AuthenticationError{APIError: apiErr}
	}
	return &apiErr
}
