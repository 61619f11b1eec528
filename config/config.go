package config

import (
	"github.com/carrot-e/killbill-client-go/httpclient"
	"github.com/carrot-e/killbill-client-go/logger"
)

// Config is the top-level client configuration.
type Config struct {
	// Client configures the HTTP transport.
	Client httpclient.Config `yaml:"client" mapstructure:"client"`

	// Logging configures structured logging.
	Logging logger.Config `yaml:"logging" mapstructure:"logging"`
}

// ApplyDefaults fills in zero-value fields with sensible defaults.
func (c *Config) ApplyDefaults() {
	c.Client.ApplyDefaults()
	c.Logging.ApplyDefaults()
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if err := c.Client.Validate(); err != nil {
		return err
	}
	return c.Logging.Validate()
}
