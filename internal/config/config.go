// Package config loads client settings from the environment.
package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
)

// Config holds everything needed to construct an authenticated client.
type Config struct {
	// Username is the corporate email, e.g. iipetrov@edu.hse.ru.
	Username string `envconfig:"HSE_USERNAME" required:"true"`
	// Password is the corporate account password.
	Password string `envconfig:"HSE_PASSWORD" required:"true"`
	// ClientID is the registered Android app id.
	ClientID string `envconfig:"CLIENT_ID" required:"true"`

	HTTPTimeout time.Duration `envconfig:"HSE_HTTP_TIMEOUT" default:"30s"`
	Debug       bool          `envconfig:"HSE_DEBUG" default:"false"`
}

// Load reads the configuration from the environment.
func Load() (*Config, error) {
	var c Config
	if err := envconfig.Process("", &c); err != nil {
		return nil, errors.Wrap(err, "[Load] processing environment")
	}
	return &c, nil
}
