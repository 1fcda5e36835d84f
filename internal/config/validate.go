package config

import (
	"fmt"
	"net/url"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Auth.Enabled() && len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.Enabled() && c.Auth.TokenTTL <= 0 {
		return fmt.Errorf("auth.token_ttl must be > 0 (got %v)", c.Auth.TokenTTL)
	}

	if c.Server.ScrapeRateLimit < 1 {
		return fmt.Errorf("server.scrape_rate_limit must be >= 1 (got %d)", c.Server.ScrapeRateLimit)
	}

	if err := c.Database.validate(); err != nil {
		return fmt.Errorf("database: %w", err)
	}

	if err := c.Scraper.validate(); err != nil {
		return fmt.Errorf("scraper: %w", err)
	}

	if err := c.Import.validate(); err != nil {
		return fmt.Errorf("import: %w", err)
	}

	return nil
}

func (d *DatabaseConfig) validate() error {
	if d.MaxConns < 1 {
		return fmt.Errorf("max_conns must be >= 1 (got %d)", d.MaxConns)
	}
	if d.MinConns < 0 || d.MinConns > d.MaxConns {
		return fmt.Errorf("min_conns must be in [0, max_conns] (got %d)", d.MinConns)
	}
	if d.StatementTimeout < 0 {
		return fmt.Errorf("statement_timeout must be >= 0 (got %v)", d.StatementTimeout)
	}
	return nil
}

func (s *ScraperConfig) validate() error {
	if err := validateBaseURL(s.DictionaryURL); err != nil {
		return fmt.Errorf("dictionary_url: %w", err)
	}
	if err := validateBaseURL(s.TranslationURL); err != nil {
		return fmt.Errorf("translation_url: %w", err)
	}
	if s.PingURL != "" {
		if err := validateBaseURL(s.PingURL); err != nil {
			return fmt.Errorf("ping_url: %w", err)
		}
	}
	if s.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0 (got %v)", s.Timeout)
	}
	if s.RetryDelay < 0 {
		return fmt.Errorf("retry_delay must be >= 0 (got %v)", s.RetryDelay)
	}
	if s.MaxExamples <= 0 {
		return fmt.Errorf("max_examples must be > 0 (got %d)", s.MaxExamples)
	}
	if s.MaxSenses <= 0 {
		return fmt.Errorf("max_senses must be > 0 (got %d)", s.MaxSenses)
	}

	s.DictionaryURL = strings.TrimRight(s.DictionaryURL, "/")
	s.TranslationURL = strings.TrimRight(s.TranslationURL, "/")
	return nil
}

func (i *ImportConfig) validate() error {
	if i.Workers < 1 || i.Workers > 64 {
		return fmt.Errorf("workers must be in [1, 64] (got %d)", i.Workers)
	}
	if i.MaxLines <= 0 {
		return fmt.Errorf("max_lines must be > 0 (got %d)", i.MaxLines)
	}
	if strings.TrimSpace(i.DefaultCollection) == "" {
		return fmt.Errorf("default_collection is required")
	}
	return nil
}

func validateBaseURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("unsupported scheme %q", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("host is required")
	}
	return nil
}
