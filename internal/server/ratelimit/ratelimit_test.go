package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig(configs ...EndpointConfig) *Config {
	return &Config{
		Enabled:         true,
		DefaultLimit:    100,
		DefaultWindow:   time.Minute,
		Whitelist:       make(map[string]bool),
		Blacklist:       make(map[string]bool),
		EndpointConfigs: configs,
	}
}

func TestLimiter_AllowsWithinBurst(t *testing.T) {
	limiter := NewLimiter(newTestConfig(
		EndpointConfig{Path: "/auth/login", Method: "POST", Limit: 20, Window: time.Minute, Burst: 3},
	))
	defer limiter.Stop()

	for i := 0; i < 3; i++ {
		allowed, info := limiter.Allow("1.2.3.4", "/auth/login", "POST")
		assert.True(t, allowed, "request %d should be allowed", i)
		assert.Equal(t, 20, info.Limit)
	}

	allowed, info := limiter.Allow("1.2.3.4", "/auth/login", "POST")
	assert.False(t, allowed)
	assert.Greater(t, info.RetryAfter, time.Duration(0))
}

func TestLimiter_ClientsAreIndependent(t *testing.T) {
	limiter := NewLimiter(newTestConfig(
		EndpointConfig{Path: "/auth/login", Method: "POST", Limit: 10, Window: time.Minute, Burst: 1},
	))
	defer limiter.Stop()

	allowed, _ := limiter.Allow("1.1.1.1", "/auth/login", "POST")
	require.True(t, allowed)
	allowed, _ = limiter.Allow("1.1.1.1", "/auth/login", "POST")
	require.False(t, allowed)

	allowed, _ = limiter.Allow("2.2.2.2", "/auth/login", "POST")
	assert.True(t, allowed)
}

func TestLimiter_Disabled(t *testing.T) {
	limiter := NewLimiter(&Config{Enabled: false})
	defer limiter.Stop()

	for i := 0; i < 100; i++ {
		allowed, _ := limiter.Allow("1.2.3.4", "/auth/login", "POST")
		require.True(t, allowed)
	}
}

func TestLimiter_WhitelistBypasses(t *testing.T) {
	cfg := newTestConfig(
		EndpointConfig{Path: "/auth/login", Method: "POST", Limit: 1, Window: time.Hour, Burst: 1},
	)
	cfg.Whitelist["9.9.9.9"] = true
	limiter := NewLimiter(cfg)
	defer limiter.Stop()

	for i := 0; i < 5; i++ {
		allowed, _ := limiter.Allow("9.9.9.9", "/auth/login", "POST")
		require.True(t, allowed)
	}
}

func TestLimiter_BlacklistRejects(t *testing.T) {
	cfg := newTestConfig()
	cfg.Blacklist["6.6.6.6"] = true
	limiter := NewLimiter(cfg)
	defer limiter.Stop()

	allowed, _ := limiter.Allow("6.6.6.6", "/companies", "GET")
	assert.False(t, allowed)
}

func TestMatchEndpoint(t *testing.T) {
	configs := DefaultEndpointConfigs()

	login := MatchEndpoint("/auth/login", "POST", configs)
	require.NotNil(t, login)
	assert.Equal(t, 20, login.Limit)

	quote := MatchEndpoint("/stocks/quote/AAPL", "GET", configs)
	require.NotNil(t, quote)
	assert.Equal(t, 120, quote.Limit)

	health := MatchEndpoint("/health", "GET", configs)
	require.NotNil(t, health)
	assert.Zero(t, health.Limit)

	assert.Nil(t, MatchEndpoint("/companies", "GET", configs))
}

func TestLoadConfig_DisabledByEnv(t *testing.T) {
	t.Setenv("RATE_LIMIT_ENABLED", "false")
	cfg := LoadConfig()
	assert.False(t, cfg.Enabled)
}
