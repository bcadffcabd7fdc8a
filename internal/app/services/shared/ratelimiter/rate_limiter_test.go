package ratelimiter

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeCounter struct {
	mu       sync.Mutex
	counters map[string]int
}

func newFakeCounter() *fakeCounter {
	return &fakeCounter{counters: make(map[string]int)}
}

func (r *fakeCounter) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	return nil
}

func (r *fakeCounter) Get(ctx context.Context, key string) (string, error) {
	return "", nil
}

func (r *fakeCounter) Delete(ctx context.Context, key string) error {
	return nil
}

func (r *fakeCounter) Increment(ctx context.Context, key string) error {
	return nil
}

func (r *fakeCounter) IncrementWithTTL(ctx context.Context, key string, ttl time.Duration) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.counters[key]++
	return r.counters[key], nil
}

func (r *fakeCounter) TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error) {
	return true, nil
}

func TestResourceLimiterQuota(t *testing.T) {
	ctx := context.Background()
	limiter := NewResourceLimiter(newFakeCounter(), zap.NewNop())
	now := time.Date(2026, 8, 27, 10, 0, 5, 0, time.UTC)

	input := func() *ApplyResourceLimiterInput {
		return &ApplyResourceLimiterInput{
			ResourceName:      "user-1",
			LimiterGroupName:  "ai-triage",
			WindowDurationSec: 60,
			MaxQuota:          3,
			NowUTC:            now,
		}
	}

	for i := 0; i < 3; i++ {
		out, err := limiter.ApplyResourceLimiter(ctx, input())
		require.NoError(t, err)
		assert.True(t, out.Allowed)
	}

	out, err := limiter.ApplyResourceLimiter(ctx, input())
	require.NoError(t, err)
	assert.False(t, out.Allowed)
	// 55 seconds to the next minute boundary, plus the safety second.
	assert.Equal(t, 56, out.RetryAfterSecs)
}

func TestResourceLimiterWindowRollover(t *testing.T) {
	ctx := context.Background()
	limiter := NewResourceLimiter(newFakeCounter(), zap.NewNop())
	base := time.Date(2026, 8, 27, 10, 0, 30, 0, time.UTC)

	apply := func(now time.Time) *ApplyResourceLimiterOutput {
		out, err := limiter.ApplyResourceLimiter(ctx, &ApplyResourceLimiterInput{
			ResourceName:      "user-1",
			LimiterGroupName:  "ai-triage",
			WindowDurationSec: 60,
			MaxQuota:          1,
			NowUTC:            now,
		})
		require.NoError(t, err)
		return out
	}

	assert.True(t, apply(base).Allowed)
	assert.False(t, apply(base.Add(10*time.Second)).Allowed)
	// Next window, fresh quota.
	assert.True(t, apply(base.Add(time.Minute)).Allowed)
}

func TestResourceLimiterIsolatesResources(t *testing.T) {
	ctx := context.Background()
	limiter := NewResourceLimiter(newFakeCounter(), zap.NewNop())
	now := time.Date(2026, 8, 27, 10, 0, 0, 0, time.UTC)

	apply := func(resource string) *ApplyResourceLimiterOutput {
		out, err := limiter.ApplyResourceLimiter(ctx, &ApplyResourceLimiterInput{
			ResourceName:      resource,
			LimiterGroupName:  "ai-triage",
			WindowDurationSec: 60,
			MaxQuota:          1,
			NowUTC:            now,
		})
		require.NoError(t, err)
		return out
	}

	assert.True(t, apply("user-1").Allowed)
	assert.False(t, apply("user-1").Allowed)
	assert.True(t, apply("user-2").Allowed)
}

func TestResourceLimiterZeroQuotaDisablesLimiting(t *testing.T) {
	ctx := context.Background()
	limiter := NewResourceLimiter(newFakeCounter(), zap.NewNop())

	out, err := limiter.ApplyResourceLimiter(ctx, &ApplyResourceLimiterInput{
		ResourceName:     "user-1",
		LimiterGroupName: "ai-triage",
		MaxQuota:         0,
	})
	require.NoError(t, err)
	assert.True(t, out.Allowed)
}
