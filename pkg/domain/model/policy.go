package model

import (
	"net/http"
	"time"
)

// Defaults for the retry policy, matching the defaults of the get command.
const (
	DefaultMaxAttempts = 5
	DefaultBackoff     = 500 * time.Millisecond

	maxBackoff = 30 * time.Second
)

// specialStatusCodes are permanent client-facing failures. Retrying them is
// pointless, so they are excluded from every retryable set at construction
// time and reported as terminal after a single attempt.
var specialStatusCodes = map[int]struct{}{
	http.StatusForbidden: {},
	http.StatusNotFound:  {},
}

// RetryPolicy decides how often a fetch is attempted and how long to wait
// between attempts. It is immutable and safe to share across workers.
type RetryPolicy struct {
	MaxAttempts int
	Backoff     time.Duration

	retryable map[int]struct{}
}

// NewRetryPolicy builds a policy allowing up to maxAttempts total attempts
// with exponential backoff starting at backoff. Status codes listed in codes
// are retried, except the special codes 403 and 404 which are stripped here
// so no later code path has to filter them per attempt.
func NewRetryPolicy(maxAttempts int, backoff time.Duration, codes []int) RetryPolicy {
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	if backoff < 0 {
		backoff = 0
	}

	retryable := make(map[int]struct{}, len(codes))
	for _, code := range codes {
		if _, special := specialStatusCodes[code]; special {
			continue
		}
		retryable[code] = struct{}{}
	}

	return RetryPolicy{
		MaxAttempts: maxAttempts,
		Backoff:     backoff,
		retryable:   retryable,
	}
}

// DefaultRetryPolicy retries every recognized status code >= 400 other than
// the special codes, 5 attempts with a 500ms base backoff.
func DefaultRetryPolicy() RetryPolicy {
	return NewRetryPolicy(DefaultMaxAttempts, DefaultBackoff, RetryableStatusCodes())
}

// RetryableStatusCodes returns every status code in 400-599 that the HTTP
// package recognizes, excluding the special codes.
func RetryableStatusCodes() []int {
	var codes []int
	for code := 400; code < 600; code++ {
		if _, special := specialStatusCodes[code]; special {
			continue
		}
		if http.StatusText(code) == "" {
			continue
		}
		codes = append(codes, code)
	}
	return codes
}

// Retryable reports whether a response with the given status code should be
// retried while attempts remain.
func (p RetryPolicy) Retryable(code int) bool {
	_, ok := p.retryable[code]
	return ok
}

// Terminal reports whether the status code is a special code that must never
// be retried.
func Terminal(code int) bool {
	_, ok := specialStatusCodes[code]
	return ok
}

// Delay returns how long to wait after the given attempt (1-based) before
// the next one: Backoff * 2^(attempt-1), capped at 30s. Non-decreasing in
// the attempt number.
func (p RetryPolicy) Delay(attempt int) time.Duration {
	if attempt < 1 {
		attempt = 1
	}

	d := p.Backoff
	for i := 1; i < attempt; i++ {
		d *= 2
		if d >= maxBackoff {
			return maxBackoff
		}
	}
	if d > maxBackoff {
		d = maxBackoff
	}
	return d
}
