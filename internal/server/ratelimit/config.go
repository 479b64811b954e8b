package ratelimit

import (
	"strings"
	"time"

	"github.com/jonathan/candidate-screener/internal/config"
)

// EndpointConfig represents rate limiting configuration for a specific endpoint.
type EndpointConfig struct {
	Path   string        // Endpoint path pattern (prefix match when it ends in "/")
	Method string        // HTTP method
	Limit  int           // Maximum requests per window
	Window time.Duration // Time window
	Burst  int           // Burst capacity (defaults to Limit if 0)
}

// Config holds rate limiting configuration.
type Config struct {
	Enabled         bool
	DefaultLimit    int
	DefaultWindow   time.Duration
	DefaultBurst    int
	CleanupInterval time.Duration
	IdleTimeout     time.Duration
	Whitelist       map[string]bool
	Blacklist       map[string]bool
	EndpointConfigs []EndpointConfig
}

// FromSettings builds a limiter configuration from the rate-limit config section
func FromSettings(s config.RateLimitConfig) *Config {
	if !s.Enabled {
		return &Config{Enabled: false}
	}
	whitelist := make(map[string]bool, len(s.Whitelist))
	for _, ip := range s.Whitelist {
		if ip = strings.TrimSpace(ip); ip != "" {
			whitelist[ip] = true
		}
	}
	return &Config{
		Enabled:         true,
		DefaultLimit:    s.RequestsPerMinute,
		DefaultWindow:   time.Minute,
		DefaultBurst:    s.Burst,
		CleanupInterval: 5 * time.Minute,
		IdleTimeout:     time.Hour,
		Whitelist:       whitelist,
		Blacklist:       make(map[string]bool),
		EndpointConfigs: DefaultEndpointConfigs(s.RequestsPerMinute),
	}
}

// DefaultEndpointConfigs returns the fan-out endpoints, limited to a quarter of the
// per-minute default since each request scores many documents.
func DefaultEndpointConfigs(requestsPerMinute int) []EndpointConfig {
	heavy := max(requestsPerMinute/4, 1)
	burst := max(heavy/5, 1)
	return []EndpointConfig{
		{Path: "/v1/rank", Method: "POST", Limit: heavy, Window: time.Minute, Burst: burst},
		{Path: "/v1/batch", Method: "POST", Limit: heavy, Window: time.Minute, Burst: burst},
		{Path: "/v1/interviews/", Method: "POST", Limit: requestsPerMinute, Window: time.Minute},
	}
}
