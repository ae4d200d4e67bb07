package config

import (
	"fmt"
	"image/jpeg"

	"github.com/kelseyhightower/envconfig"
)

// Version of the program, set by -ldflags
var Version = "dev"

// NameSpace is the prefix of environment variables
const NameSpace = "imresize"

// Config ...
type Config struct {
	Develop     bool   `envconfig:"DEVELOP"`
	JPEGQuality int    `envconfig:"JPEG_QUALITY" default:"75"`
	SentryDSN   string `envconfig:"SENTRY_DSN"`
}

// Current loaded settings
var Current = Config{JPEGQuality: jpeg.DefaultQuality}

// Load reads the settings from environment
func Load() (*Config, error) {
	var c Config
	if err := envconfig.Process(NameSpace, &c); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	Current = c
	return &c, nil
}

// Validate ...
func (c Config) Validate() error {
	if c.JPEGQuality < 1 || c.JPEGQuality > 100 {
		return fmt.Errorf("jpeg quality %d out of range [1, 100]", c.JPEGQuality)
	}
	return nil
}

// InDevelop ...
func InDevelop() bool {
	return Current.Develop
}
