package hseapi

import (
	"time"

	"github.com/pkg/errors"
)

// Option configures a Client during construction in New.
type Option func(*Client) error

// WithHTTPTimeout bounds the total time spent on a single HTTP request.
// The value must be greater than zero.
func WithHTTPTimeout(d time.Duration) Option {
	return func(c *Client) error {
		if d <= 0 {
			return errors.New("http timeout must be > 0")
		}
		c.timeout = d
		return nil
	}
}

// WithEndpoints replaces the provider URLs, primarily for tests.
func WithEndpoints(e Endpoints) Option {
	return func(c *Client) error {
		if e.Authorize == "" || e.Token == "" || e.Search == "" || e.EmailSearch == "" || e.RedirectURI == "" {
			return errors.New("all endpoints must be set")
		}
		c.endpoints = e
		return nil
	}
}

// WithDebugLogging wraps the session transport so each request and response
// is dumped to the log. Dumps include the form-encoded credentials, so keep
// this out of production environments.
func WithDebugLogging(enabled bool) Option {
	return func(c *Client) error {
		c.debug = enabled
		return nil
	}
}
