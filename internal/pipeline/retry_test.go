package pipeline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/accessly/docpipeline/internal/entity"
)

func TestBackoff(t *testing.T) {
	policy := entity.RetryPolicy{
		Enabled:           true,
		BackoffMultiplier: 2,
		InitialDelaySecs:  5,
		MaxDelaySecs:      60,
	}

	tests := []struct {
		attempts int
		want     time.Duration
	}{
		{0, 5 * time.Second}, // clamped to the first attempt
		{1, 5 * time.Second},
		{2, 10 * time.Second},
		{3, 20 * time.Second},
		{4, 40 * time.Second},
		{5, 60 * time.Second}, // capped
		{9, 60 * time.Second},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Backoff(policy, tt.attempts), "attempts=%d", tt.attempts)
	}
}

func TestBackoffNonIntegerMultiplier(t *testing.T) {
	policy := entity.RetryPolicy{
		Enabled:           true,
		BackoffMultiplier: 1.5,
		InitialDelaySecs:  10,
		MaxDelaySecs:      3600,
	}
	assert.Equal(t, 10*time.Second, Backoff(policy, 1))
	assert.Equal(t, 15*time.Second, Backoff(policy, 2))
	assert.Equal(t, 22500*time.Millisecond, Backoff(policy, 3))
}

func TestRetryableStopsAtMaxAttempts(t *testing.T) {
	job := &entity.Job{
		Attempts:    2,
		MaxAttempts: 3,
		Retry:       entity.RetryPolicy{Enabled: true, BackoffMultiplier: 2, InitialDelaySecs: 1, MaxDelaySecs: 10},
	}
	assert.True(t, job.Retryable())
	job.Attempts = 3
	assert.False(t, job.Retryable())
	job.Attempts = 1
	job.Retry.Enabled = false
	assert.False(t, job.Retryable())
}
