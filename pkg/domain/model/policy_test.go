package model_test

import (
	"testing"
	"time"

	"github.com/m-mizutani/gt"

	"github.com/m-mizutani/bulkget/pkg/domain/model"
)

func TestNewRetryPolicyExcludesSpecialCodes(t *testing.T) {
	// 403 and 404 are stripped at construction time even when the caller
	// lists them as retryable.
	policy := model.NewRetryPolicy(5, time.Second, []int{403, 404, 429, 500, 503})

	gt.False(t, policy.Retryable(403))
	gt.False(t, policy.Retryable(404))
	gt.True(t, policy.Retryable(429))
	gt.True(t, policy.Retryable(500))
	gt.True(t, policy.Retryable(503))
}

func TestTerminalStatusCodes(t *testing.T) {
	gt.True(t, model.Terminal(403))
	gt.True(t, model.Terminal(404))
	gt.False(t, model.Terminal(500))
	gt.False(t, model.Terminal(200))
}

func TestDefaultRetryPolicy(t *testing.T) {
	policy := model.DefaultRetryPolicy()

	gt.Value(t, policy.MaxAttempts).Equal(model.DefaultMaxAttempts)
	gt.Value(t, policy.Backoff).Equal(model.DefaultBackoff)

	for _, code := range []int{429, 500, 502, 503, 504} {
		gt.True(t, policy.Retryable(code))
	}
	for _, code := range []int{200, 301, 403, 404} {
		gt.False(t, policy.Retryable(code))
	}
}

func TestRetryPolicyDelay(t *testing.T) {
	policy := model.NewRetryPolicy(5, time.Second, nil)

	gt.Value(t, policy.Delay(1)).Equal(time.Second)
	gt.Value(t, policy.Delay(2)).Equal(2 * time.Second)
	gt.Value(t, policy.Delay(3)).Equal(4 * time.Second)

	// Non-decreasing in the attempt number
	prev := time.Duration(0)
	for attempt := 1; attempt <= 12; attempt++ {
		d := policy.Delay(attempt)
		gt.True(t, d >= prev)
		prev = d
	}

	// Capped at 30s
	gt.Value(t, policy.Delay(20)).Equal(30 * time.Second)
}

func TestRetryPolicyClampsInvalidInput(t *testing.T) {
	policy := model.NewRetryPolicy(0, -time.Second, nil)

	gt.Value(t, policy.MaxAttempts).Equal(1)
	gt.Value(t, policy.Backoff).Equal(time.Duration(0))
}
