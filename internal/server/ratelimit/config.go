package ratelimit

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// EndpointConfig represents rate limiting configuration for a specific endpoint.
type EndpointConfig struct {
	Path   string        // Exact path, or a prefix when it ends in "/"
	Method string        // HTTP method (GET, POST, etc.)
	Limit  int           // Maximum requests per window; zero leaves the endpoint unthrottled
	Window time.Duration // Time window
	Burst  int           // Burst capacity (defaults to Limit if 0)
}

// DefaultConfig returns the limits used when no RATE_LIMIT_* variable is set.
func DefaultConfig() *Config {
	return &Config{
		Enabled:         true,
		DefaultLimit:    1000,
		DefaultWindow:   time.Minute,
		CleanupInterval: 5 * time.Minute,
		IdleTTL:         time.Hour,
		Whitelist:       map[string]bool{},
		Blacklist:       map[string]bool{},
		EndpointConfigs: DefaultEndpointConfigs(),
	}
}

// DefaultEndpointConfigs returns the per-endpoint limits of the analysis API.
func DefaultEndpointConfigs() []EndpointConfig {
	return []EndpointConfig{
		// Analysis runs
		{Path: "/analyze", Method: "POST", Limit: 30, Window: time.Minute, Burst: 5},
		{Path: "/analyze/stream", Method: "POST", Limit: 30, Window: time.Minute, Burst: 5},
		{Path: "/validate", Method: "POST", Limit: 120, Window: time.Minute, Burst: 20},

		{Path: "/stages", Method: "GET", Limit: 0},
		{Path: "/health", Method: "GET", Limit: 0},
	}
}

// LoadConfig overlays RATE_LIMIT_* environment variables on DefaultConfig.
func LoadConfig() (*Config, error) {
	return LoadConfigFrom(os.LookupEnv)
}

// LoadConfigFrom is LoadConfig over an arbitrary variable lookup.
// A variable that is set but malformed is reported instead of being replaced by its default.
func LoadConfigFrom(lookup func(string) (string, bool)) (*Config, error) {
	cfg := DefaultConfig()
	env := envReader{lookup: lookup}

	env.boolVar("RATE_LIMIT_ENABLED", &cfg.Enabled)
	env.countVar("RATE_LIMIT_DEFAULT_LIMIT", &cfg.DefaultLimit)
	env.durationVar("RATE_LIMIT_DEFAULT_WINDOW", &cfg.DefaultWindow)
	env.durationVar("RATE_LIMIT_CLEANUP_INTERVAL", &cfg.CleanupInterval)
	env.durationVar("RATE_LIMIT_IDLE_TTL", &cfg.IdleTTL)
	env.clientsVar("RATE_LIMIT_WHITELIST", &cfg.Whitelist)
	env.clientsVar("RATE_LIMIT_BLACKLIST", &cfg.Blacklist)

	if env.err != nil {
		return nil, env.err
	}
	return cfg, nil
}

// envReader applies environment overrides and keeps the first parse failure.
type envReader struct {
	lookup func(string) (string, bool)
	err    error
}

func (r *envReader) read(key string, apply func(value string) error) {
	if r.err != nil {
		return
	}
	value, ok := r.lookup(key)
	value = strings.TrimSpace(value)
	if !ok || value == "" {
		return
	}
	if err := apply(value); err != nil {
		r.err = fmt.Errorf("invalid %s %q: %w", key, value, err)
	}
}

func (r *envReader) boolVar(key string, dst *bool) {
	r.read(key, func(value string) error {
		b, err := strconv.ParseBool(value)
		if err != nil {
			return err
		}
		*dst = b
		return nil
	})
}

func (r *envReader) countVar(key string, dst *int) {
	r.read(key, func(value string) error {
		n, err := strconv.Atoi(value)
		if err != nil {
			return err
		}
		if n < 0 {
			return fmt.Errorf("must not be negative")
		}
		*dst = n
		return nil
	})
}

func (r *envReader) durationVar(key string, dst *time.Duration) {
	r.read(key, func(value string) error {
		d, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		if d <= 0 {
			return fmt.Errorf("must be positive")
		}
		*dst = d
		return nil
	})
}

// clientsVar parses a comma-separated list of client addresses into a set.
func (r *envReader) clientsVar(key string, dst *map[string]bool) {
	r.read(key, func(value string) error {
		set := make(map[string]bool)
		for _, client := range strings.Split(value, ",") {
			if client = strings.TrimSpace(client); client != "" {
				set[client] = true
			}
		}
		*dst = set
		return nil
	})
}
