package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration and
// reports every problem found. Load calls it automatically.
func (c *Config) Validate() error {
	var errs []error

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port))
	}
	if c.Server.MaxBodyBytes <= 0 {
		errs = append(errs, fmt.Errorf("server.max_body_bytes must be > 0 (got %d)", c.Server.MaxBodyBytes))
	}

	if c.Database.MinConns < 0 || c.Database.MaxConns <= 0 || c.Database.MinConns > c.Database.MaxConns {
		errs = append(errs, fmt.Errorf("database: need 0 <= min_conns <= max_conns and max_conns > 0 (got %d, %d)",
			c.Database.MinConns, c.Database.MaxConns))
	}

	if !slices.Contains([]string{"debug", "info", "warn", "error"}, strings.ToLower(c.Log.Level)) {
		errs = append(errs, fmt.Errorf("log.level must be debug, info, warn or error (got %q)", c.Log.Level))
	}
	if !slices.Contains([]string{"json", "text"}, strings.ToLower(c.Log.Format)) {
		errs = append(errs, fmt.Errorf("log.format must be json or text (got %q)", c.Log.Format))
	}

	if c.RateLimit.Enabled && c.RateLimit.RequestsPerMin <= 0 {
		errs = append(errs, fmt.Errorf("rate_limit.requests_per_min must be > 0 (got %d)", c.RateLimit.RequestsPerMin))
	}
	if c.RateLimit.Enabled && c.RateLimit.CleanupInterval <= 0 {
		errs = append(errs, fmt.Errorf("rate_limit.cleanup_interval must be > 0 (got %v)", c.RateLimit.CleanupInterval))
	}

	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		errs = append(errs, fmt.Errorf("metrics.path must start with / (got %q)", c.Metrics.Path))
	}

	if err := c.Readers.validate(); err != nil {
		errs = append(errs, fmt.Errorf("readers: %w", err))
	}

	return errors.Join(errs...)
}

func (r *ReadersConfig) validate() error {
	var errs []error

	if r.MaxAllowedWords <= 0 {
		errs = append(errs, fmt.Errorf("max_allowed_words must be > 0 (got %d)", r.MaxAllowedWords))
	}
	if r.QueryCacheSize <= 0 {
		errs = append(errs, fmt.Errorf("query_cache_size must be > 0 (got %d)", r.QueryCacheSize))
	}
	if r.MaxSyllables <= 0 {
		errs = append(errs, fmt.Errorf("max_syllables must be > 0 (got %d)", r.MaxSyllables))
	}

	if r.Watch {
		if r.SettingsDir == "" {
			errs = append(errs, errors.New("watch requires settings_dir"))
		}
		if r.WatchDebounce <= 0 {
			errs = append(errs, fmt.Errorf("watch_debounce must be > 0 (got %v)", r.WatchDebounce))
		}
	}
	if r.SettingsDir != "" {
		info, err := os.Stat(r.SettingsDir)
		switch {
		case err != nil:
			errs = append(errs, fmt.Errorf("settings_dir: %w", err))
		case !info.IsDir():
			errs = append(errs, fmt.Errorf("settings_dir %s is not a directory", r.SettingsDir))
		}
	}

	return errors.Join(errs...)
}
