package config

import (
	"fmt"
	"net/mail"
	"net/url"
	"slices"
)

var allowedPageSizes = []int{10, 25, 50, 100}

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if err := validateURL(c.Auth.JWKSURL); err != nil {
		return fmt.Errorf("auth.jwks_url: %w", err)
	}
	if c.Auth.AdminJobCode == "" {
		return fmt.Errorf("auth.admin_job_code must not be empty")
	}

	if err := validateURL(c.Cedar.Endpoint); err != nil {
		return fmt.Errorf("cedar.endpoint: %w", err)
	}
	if c.Cedar.CacheSize <= 0 {
		return fmt.Errorf("cedar.cache_size must be > 0 (got %d)", c.Cedar.CacheSize)
	}
	if c.Cedar.Timeout <= 0 {
		return fmt.Errorf("cedar.timeout must be > 0 (got %s)", c.Cedar.Timeout)
	}

	if !slices.Contains(allowedPageSizes, c.Tables.DefaultPageSize) {
		return fmt.Errorf("tables.default_page_size must be one of %v (got %d)", allowedPageSizes, c.Tables.DefaultPageSize)
	}
	if c.Tables.ColumnCacheSize <= 0 {
		return fmt.Errorf("tables.column_cache_size must be > 0 (got %d)", c.Tables.ColumnCacheSize)
	}
	if _, err := mail.ParseAddress(c.Tables.HelpMailbox); err != nil {
		return fmt.Errorf("tables.help_mailbox: %w", err)
	}

	if c.RateLimit.Enabled && (c.RateLimit.Requests <= 0 || c.RateLimit.Window <= 0) {
		return fmt.Errorf("rate_limit: requests and window must be > 0 when enabled")
	}

	return nil
}

func validateURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("scheme must be http or https (got %q)", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("host is required")
	}
	return nil
}
