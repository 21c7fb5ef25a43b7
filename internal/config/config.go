package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

const (
	DefaultAPIURL    = "http://127.0.0.1:8000"
	DefaultTimeout   = 30 * time.Second
	DefaultSaveDelay = 1500 * time.Millisecond
	DefaultLogLevel  = "info"
	DefaultLogFile   = "~/.go-course-roadmap/logs/app.log"
)

// Config contains settings shared by all commands. Values come from the
// environment first; command-line flags override them.
type Config struct {
	// Recommendation endpoint
	APIURL  string        `env:"COURSE_ROADMAP_API_URL" envDefault:"http://127.0.0.1:8000"`
	Timeout time.Duration `env:"COURSE_ROADMAP_TIMEOUT" envDefault:"30s"`

	// Roadmap save simulation
	SaveDelay time.Duration `env:"COURSE_ROADMAP_SAVE_DELAY" envDefault:"1500ms"`

	// Logging
	LogLevel string `env:"COURSE_ROADMAP_LOG_LEVEL" envDefault:"info"`
	LogFile  string `env:"COURSE_ROADMAP_LOG_FILE" envDefault:"~/.go-course-roadmap/logs/app.log"`
}

// ParseEnv loads configuration from environment variables into target
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load reads the environment and validates the result
func Load() (*Config, error) {
	cfg := &Config{}
	if err := ParseEnv(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate fills unset fields with defaults and rejects unusable values
func (c *Config) Validate() error {
	c.APIURL = strings.TrimSpace(c.APIURL)
	if c.APIURL == "" {
		c.APIURL = DefaultAPIURL
	}
	if c.Timeout == 0 {
		c.Timeout = DefaultTimeout
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	if c.LogFile == "" {
		c.LogFile = DefaultLogFile
	}

	u, err := url.Parse(c.APIURL)
	if err != nil {
		return fmt.Errorf("invalid api url %q: %w", c.APIURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid api url %q: scheme must be http or https", c.APIURL)
	}
	if u.Host == "" {
		return fmt.Errorf("invalid api url %q: missing host", c.APIURL)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("timeout must be positive, got %v", c.Timeout)
	}
	if c.SaveDelay < 0 {
		return fmt.Errorf("save delay must not be negative, got %v", c.SaveDelay)
	}
	return nil
}
