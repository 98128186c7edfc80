package ratelimit

import (
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedClock pins a limiter's clock so refills are deterministic.
type fixedClock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *fixedClock) now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fixedClock) advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

func newTestLimiter(t *testing.T, config *Config) (*Limiter, *fixedClock) {
	t.Helper()
	clock := &fixedClock{t: time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)}
	limiter := NewLimiter(config)
	limiter.now = clock.now
	t.Cleanup(limiter.Stop)
	return limiter, clock
}

func TestLimiter_Allow(t *testing.T) {
	limiter, _ := newTestLimiter(t, &Config{
		Enabled:       true,
		DefaultLimit:  10,
		DefaultWindow: time.Minute,
	})

	for i := 0; i < 10; i++ {
		allowed, info := limiter.Allow("127.0.0.1", "/test", "GET")
		require.True(t, allowed, "request %d", i+1)
		assert.Equal(t, 10, info.Limit)
		assert.Equal(t, 9-i, info.Remaining)
	}

	allowed, info := limiter.Allow("127.0.0.1", "/test", "GET")
	assert.False(t, allowed)
	assert.Equal(t, 0, info.Remaining)
	assert.Equal(t, 6*time.Second, info.RetryAfter)
	assert.True(t, info.ResetTime.After(time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)))
}

func TestLimiter_Refill(t *testing.T) {
	limiter, clock := newTestLimiter(t, &Config{
		Enabled:       true,
		DefaultLimit:  60,
		DefaultWindow: time.Minute,
		EndpointConfigs: []EndpointConfig{
			{Path: "/api/match", Method: "POST", Limit: 60, Window: time.Minute, Burst: 2},
		},
	})

	for i := 0; i < 2; i++ {
		allowed, _ := limiter.Allow("c", "/api/match", "POST")
		require.True(t, allowed)
	}
	allowed, _ := limiter.Allow("c", "/api/match", "POST")
	require.False(t, allowed)

	clock.advance(time.Second)
	allowed, _ = limiter.Allow("c", "/api/match", "POST")
	assert.True(t, allowed, "one token refills per second")
	allowed, _ = limiter.Allow("c", "/api/match", "POST")
	assert.False(t, allowed)
}

func TestLimiter_ClientsAreIndependent(t *testing.T) {
	limiter, _ := newTestLimiter(t, &Config{Enabled: true, DefaultLimit: 1, DefaultWindow: time.Minute})

	allowed, _ := limiter.Allow("a", "/test", "GET")
	assert.True(t, allowed)
	allowed, _ = limiter.Allow("a", "/test", "GET")
	assert.False(t, allowed)
	allowed, _ = limiter.Allow("b", "/test", "GET")
	assert.True(t, allowed)
}

func TestLimiter_WhitelistAndBlacklist(t *testing.T) {
	limiter, _ := newTestLimiter(t, &Config{
		Enabled:       true,
		DefaultLimit:  1,
		DefaultWindow: time.Minute,
		Whitelist:     map[string]bool{"127.0.0.1": true},
		Blacklist:     map[string]bool{"192.168.1.1": true},
	})

	for i := 0; i < 50; i++ {
		allowed, info := limiter.Allow("127.0.0.1", "/test", "GET")
		require.True(t, allowed)
		assert.Zero(t, info.Limit)
	}

	allowed, _ := limiter.Allow("192.168.1.1", "/test", "GET")
	assert.False(t, allowed)
}

func TestLimiter_Disabled(t *testing.T) {
	limiter, _ := newTestLimiter(t, &Config{Enabled: false, DefaultLimit: 1, DefaultWindow: time.Minute})

	for i := 0; i < 20; i++ {
		allowed, _ := limiter.Allow("127.0.0.1", "/api/match", "POST")
		require.True(t, allowed)
	}
}

func TestLimiter_UnlimitedByDefault(t *testing.T) {
	limiter, _ := newTestLimiter(t, NewConfig(true, 1, 1, nil, nil))

	for i := 0; i < 20; i++ {
		allowed, info := limiter.Allow("c", "/api/universities", "GET")
		require.True(t, allowed)
		assert.Zero(t, info.Limit)
	}

	allowed, _ := limiter.Allow("c", "/api/parse-cv", "POST")
	assert.True(t, allowed)
	allowed, info := limiter.Allow("c", "/api/parse-cv", "POST")
	assert.False(t, allowed)
	assert.Equal(t, 1, info.Limit)
}

func TestLimiter_HealthIsUnlimited(t *testing.T) {
	limiter, _ := newTestLimiter(t, &Config{Enabled: true, DefaultLimit: 1, DefaultWindow: time.Minute})

	for i := 0; i < 5; i++ {
		allowed, _ := limiter.Allow("c", "/api/health", "GET")
		require.True(t, allowed)
	}
}

func TestLimiter_Concurrent(t *testing.T) {
	limiter, _ := newTestLimiter(t, &Config{Enabled: true, DefaultLimit: 100, DefaultWindow: time.Minute})

	var (
		wg      sync.WaitGroup
		allowed atomic.Int64
	)
	for i := 0; i < 200; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if ok, _ := limiter.Allow("127.0.0.1", "/test", "GET"); ok {
				allowed.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(100), allowed.Load())
}

func TestLimiter_CleanupDropsIdleBuckets(t *testing.T) {
	limiter, clock := newTestLimiter(t, &Config{
		Enabled:       true,
		DefaultLimit:  10,
		DefaultWindow: time.Minute,
		IdleTimeout:   time.Minute,
	})

	for i := 0; i < 10; i++ {
		limiter.Allow(fmt.Sprintf("10.0.0.%d", i), "/test", "GET")
	}
	clock.advance(2 * time.Minute)
	limiter.Allow("10.0.0.0", "/test", "GET")

	limiter.cleanupBuckets()

	limiter.mu.Lock()
	defer limiter.mu.Unlock()
	assert.Len(t, limiter.buckets, 1)
}

func TestLimiter_StopTwice(t *testing.T) {
	limiter := NewLimiter(&Config{Enabled: true, DefaultLimit: 1, DefaultWindow: time.Minute, CleanupInterval: time.Millisecond})
	assert.NotPanics(t, func() {
		limiter.Stop()
		limiter.Stop()
	})
}

func TestNewLimiter_NilConfig(t *testing.T) {
	limiter, _ := newTestLimiter(t, nil)

	allowed, info := limiter.Allow("127.0.0.1", "/test", "GET")
	assert.True(t, allowed)
	assert.Equal(t, 1000, info.Limit)
}

func TestMatchEndpoint(t *testing.T) {
	configs := []EndpointConfig{
		{Path: "/api/match", Method: "POST", Limit: 5},
		{Path: "/api/skills/", Method: "POST", Limit: 7},
	}

	assert.Equal(t, 5, MatchEndpoint("/api/match", "POST", configs).Limit)
	assert.Nil(t, MatchEndpoint("/api/match", "GET", configs))
	assert.Equal(t, 7, MatchEndpoint("/api/skills/extract", "POST", configs).Limit)
	assert.Zero(t, MatchEndpoint("/api/health", "GET", configs).Limit)
	assert.Nil(t, MatchEndpoint("/api/universities", "GET", configs))
}

func TestParseIPList(t *testing.T) {
	assert.Equal(t, []string{"10.0.0.1", "10.0.0.2"}, ParseIPList(" 10.0.0.1, ,10.0.0.2 "))
	assert.Nil(t, ParseIPList(""))
}
