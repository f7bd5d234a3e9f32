// ABOUTME: Configuration options for the Swish library client
// ABOUTME: Provides functional options pattern for flexible client configuration

package swish

import (
	"time"

	"swish-api/core/domain"
	"swish-api/core/interfaces"
	"swish-api/core/listing"
)

// Option is a functional option for configuring the client
type Option func(*Config) error

// WithCache sets a custom cache implementation
func WithCache(cache interfaces.Cache) Option {
	return func(c *Config) error {
		c.Cache = cache
		return nil
	}
}

// WithHTTPClient sets a custom HTTP client
func WithHTTPClient(client interfaces.HTTPClient) Option {
	return func(c *Config) error {
		c.HTTPClient = client
		return nil
	}
}

// WithLogger sets a custom logger
func WithLogger(logger interfaces.Logger) Option {
	return func(c *Config) error {
		c.Logger = logger
		return nil
	}
}

// WithTheme sets the theme used for table documents; name is LIGHT or DARK
func WithTheme(name string) Option {
	return func(c *Config) error {
		kind, err := domain.ParseThemeKind(name)
		if err != nil {
			return wrapError(err)
		}
		c.Theme = kind
		return nil
	}
}

// WithMarkdown adds a markdown rendition to rendered text blocks
func WithMarkdown(enabled bool) Option {
	return func(c *Config) error {
		c.Markdown = enabled
		return nil
	}
}

// WithBaseURL points listing requests at another Reddit host
func WithBaseURL(baseURL string) Option {
	return func(c *Config) error {
		if baseURL == "" {
			return NewError(ErrorTypeConfiguration, "base url cannot be empty")
		}
		c.BaseURL = baseURL
		return nil
	}
}

// WithListingTTL sets how long listings and threads stay cached
func WithListingTTL(ttl time.Duration) Option {
	return func(c *Config) error {
		if ttl <= 0 {
			return NewError(ErrorTypeConfiguration, "listing ttl must be positive").
				WithContext("ttl", ttl.String())
		}
		c.ListingTTL = ttl
		return nil
	}
}

// defaultConfig returns the default client configuration
func defaultConfig() Config {
	return Config{
		Theme:      domain.ThemeDark,
		BaseURL:    listing.DefaultBaseURL,
		ListingTTL: listing.DefaultTTL,
	}
}
