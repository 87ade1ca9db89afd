package notion

import (
	"context"
	"math/rand/v2"
	"net/http"
	"strconv"
	"sync"
	"time"
)

// RateLimitStrategy selects how aggressively the client spends its remaining
// request budget once the server reports it is running low.
type RateLimitStrategy string

const (
	// StrategyConservative throttles early and stretches delays, for batch
	// jobs sharing a token with interactive traffic.
	StrategyConservative RateLimitStrategy = "conservative"
	// StrategyBalanced is the default.
	StrategyBalanced RateLimitStrategy = "balanced"
	// StrategyAggressive throttles only when the budget is nearly gone.
	StrategyAggressive RateLimitStrategy = "aggressive"
)

func (s RateLimitStrategy) params() (threshold int, multiplier float64) {
	switch s {
	case StrategyConservative:
		return 10, 1.5
	case StrategyAggressive:
		return 2, 0.5
	default:
		return 5, 1.0
	}
}

// RetryConfig bounds the 429 retry cycle. Only 429 responses are retried;
// every other error propagates on first occurrence.
type RetryConfig struct {
	// MaxRetries is the number of retries after the initial attempt.
	MaxRetries int
	// BaseDelay seeds the exponential backoff.
	BaseDelay time.Duration
	// MaxDelay caps the computed backoff before jitter.
	MaxDelay time.Duration
	// JitterFactor is the fraction of the computed delay added as random
	// jitter, spreading out retries from concurrent callers.
	JitterFactor float64
	// RespectRetryAfter prefers the server's Retry-After header over the
	// computed backoff when present.
	RespectRetryAfter bool
}

// DefaultRetryConfig returns the retry bounds used unless overridden.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxRetries:        3,
		BaseDelay:         500 * time.Millisecond,
		MaxDelay:          15 * time.Second,
		JitterFactor:      0.25,
		RespectRetryAfter: true,
	}
}

// backoff computes the delay before retry number attempt (zero-based).
func (c RetryConfig) backoff(attempt int, retryAfter time.Duration) time.Duration {
	if c.RespectRetryAfter && retryAfter > 0 {
		return retryAfter
	}
	delay := c.BaseDelay << uint(attempt)
	if delay > c.MaxDelay || delay <= 0 {
		delay = c.MaxDelay
	}
	if c.JitterFactor > 0 {
		delay += time.Duration(float64(delay) * c.JitterFactor * rand.Float64())
	}
	return delay
}

// retryAfterHeader parses a Retry-After header given in seconds or as an
// HTTP date. Returns 0 when absent or unparseable.
func retryAfterHeader(h http.Header) time.Duration {
	value := h.Get("Retry-After")
	if value == "" {
		return 0
	}
	if secs, err := strconv.ParseFloat(value, 64); err == nil && secs > 0 {
		return time.Duration(secs * float64(time.Second))
	}
	if at, err := http.ParseTime(value); err == nil {
		if d := time.Until(at); d > 0 {
			return d
		}
	}
	return 0
}

// RateLimitState is a snapshot of the last budget observed from response
// headers.
type RateLimitState struct {
	Limit     int
	Remaining int
	Reset     time.Time
}

// rateLimiter tracks the request budget reported by X-RateLimit-* headers
// and throttles proactively before the server starts returning 429s. State
// is per client instance; concurrent calls share one budget.
type rateLimiter struct {
	mu       sync.Mutex
	enabled  bool
	strategy RateLimitStrategy

	observed  bool
	limit     int
	remaining int
	reset     time.Time
	backoff   bool
}

func newRateLimiter(strategy RateLimitStrategy) *rateLimiter {
	return &rateLimiter{enabled: true, strategy: strategy}
}

// wait sleeps out any proactive delay owed before the next request.
// Cancelling ctx aborts the sleep and the call.
func (r *rateLimiter) wait(ctx context.Context) error {
	delay := r.delay(time.Now())
	if delay <= 0 {
		return nil
	}
	return sleepContext(ctx, delay)
}

// delay computes the proactive throttle: once remaining drops to the
// strategy threshold, spread the rest of the budget evenly across the time
// left until reset, scaled by the strategy multiplier.
func (r *rateLimiter) delay(now time.Time) time.Duration {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.enabled || !r.observed || r.backoff {
		return 0
	}

	threshold, multiplier := r.strategy.params()
	if r.remaining > threshold {
		return 0
	}

	untilReset := r.reset.Sub(now)
	if untilReset <= 0 {
		return 0
	}

	budget := r.remaining
	if budget < 1 {
		budget = 1
	}
	return time.Duration(float64(untilReset) / float64(budget) * multiplier)
}

// observe updates the budget from response headers. Any successful
// observation leaves the backoff state.
func (r *rateLimiter) observe(h http.Header) {
	limit, okLimit := headerInt(h, "X-RateLimit-Limit")
	remaining, okRemaining := headerInt(h, "X-RateLimit-Remaining")
	resetEpoch, okReset := headerInt(h, "X-RateLimit-Reset")

	r.mu.Lock()
	defer r.mu.Unlock()
	r.backoff = false
	if okLimit {
		r.limit = limit
	}
	if okRemaining {
		r.remaining = remaining
	}
	if okReset {
		r.reset = time.Unix(int64(resetEpoch), 0)
	}
	r.observed = r.observed || okRemaining
}

// observeRateLimited records a 429; the proactive throttle stands down while
// the retry backoff drives the pacing.
func (r *rateLimiter) observeRateLimited() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.backoff = true
	r.remaining = 0
	r.observed = true
}

func (r *rateLimiter) state() RateLimitState {
	r.mu.Lock()
	defer r.mu.Unlock()
	return RateLimitState{Limit: r.limit, Remaining: r.remaining, Reset: r.reset}
}

func headerInt(h http.Header, key string) (int, bool) {
	value := h.Get(key)
	if value == "" {
		return 0, false
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, false
	}
	return n, true
}

// sleepContext sleeps for d unless ctx is cancelled first.
func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
