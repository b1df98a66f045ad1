// Package config holds the journal's user configuration: where records are
// stored, which currency amounts display in, and the default starting
// balance used when the journal is reset.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the complete journal configuration.
type Config struct {
	Storage  StorageConfig `yaml:"storage"`
	Currency string        `yaml:"currency"`
	Account  AccountConfig `yaml:"account"`
}

// StorageConfig selects the persistence backend.
type StorageConfig struct {
	// Backend is "sqlite" or "memory". Memory keeps nothing between runs
	// and exists for testing and dry runs.
	Backend string `yaml:"backend"`
	// Path is the sqlite database file. Ignored by the memory backend.
	Path string `yaml:"path"`
}

// AccountConfig holds account initialization parameters.
type AccountConfig struct {
	// StartingBalance seeds a fresh or cleared journal.
	StartingBalance float64 `yaml:"starting_balance"`
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	return &Config{
		Storage: StorageConfig{
			Backend: "sqlite",
			Path:    defaultDBPath(),
		},
		Currency: "USD",
		Account: AccountConfig{
			StartingBalance: 10000,
		},
	}
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "journal.db"
	}
	return filepath.Join(home, ".fxj", "journal.db")
}

// DefaultPath returns the config file location searched when no -config flag
// is given.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "fxj.yaml"
	}
	return filepath.Join(home, ".fxj", "config.yaml")
}

// Load reads the configuration from path. A missing file yields the default
// configuration without error; a present but invalid file is an error.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the configuration to path as YAML, creating parent directories
// as needed.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

// Validate checks if the configuration is usable.
func (c *Config) Validate() error {
	switch c.Storage.Backend {
	case "sqlite":
		if c.Storage.Path == "" {
			return fmt.Errorf("storage.path is required for the sqlite backend")
		}
	case "memory":
	default:
		return fmt.Errorf("unknown storage backend: %s", c.Storage.Backend)
	}
	if c.Currency == "" {
		return fmt.Errorf("currency is required")
	}
	if c.Account.StartingBalance <= 0 {
		return fmt.Errorf("account.starting_balance must be positive")
	}
	return nil
}
