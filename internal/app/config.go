// Package app assembles configuration and runtime wiring for the kinobot
// process.
package app

import (
	"fmt"
	"os"
	"time"

	coreconfig "kinobot/core/config"
	coredatabase "kinobot/core/database"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// SessionConfig tunes the in-memory conversation store.
type SessionConfig struct {
	// IdleTTLHours evicts sessions idle longer than this. Zero applies the
	// 24h default; a negative value disables eviction.
	IdleTTLHours int `yaml:"idle_ttl_hours" envconfig:"SESSION_IDLE_TTL_HOURS"`
}

// Config is the full application configuration: the shared core sections
// inline plus the database and session sections.
type Config struct {
	coreconfig.Config `yaml:",inline"`

	Database coredatabase.Config `yaml:"database"`
	Session  SessionConfig       `yaml:"session"`
}

const defaultSessionIdleTTLHours = 24

// CoreConfig exposes the embedded core configuration.
func (c *Config) CoreConfig() *coreconfig.Config {
	return &c.Config
}

// SessionIdleTTL returns the configured session eviction TTL; zero means
// eviction is disabled.
func (c *Config) SessionIdleTTL() time.Duration {
	if c.Session.IdleTTLHours < 0 {
		return 0
	}
	return time.Duration(c.Session.IdleTTLHours) * time.Hour
}

// LoadConfig reads the YAML file, overlays environment variables and
// validates the result.
func LoadConfig(path string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse YAML config: %w", err)
	}
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("process env: %w", err)
	}

	if err := coreconfig.Normalize(&cfg.Config); err != nil {
		return nil, err
	}
	if cfg.Database.Host == "" || cfg.Database.Name == "" || cfg.Database.User == "" {
		return nil, fmt.Errorf("database host, name and user are required")
	}
	if cfg.Database.Port == "" {
		cfg.Database.Port = "5432"
	}
	if cfg.Database.SSLMode == "" {
		cfg.Database.SSLMode = "disable"
	}
	if cfg.Database.MaxConnections <= 0 {
		cfg.Database.MaxConnections = 10
	}
	if cfg.Session.IdleTTLHours == 0 {
		cfg.Session.IdleTTLHours = defaultSessionIdleTTLHours
	}
	return &cfg, nil
}
