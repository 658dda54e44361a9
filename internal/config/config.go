package config

import (
	"fmt"
	"strings"
	"time"
)

// DefaultQueryTimeout bounds each external query. Generous on purpose:
// a slow filesystem must not be mistaken for a missing repository.
const DefaultQueryTimeout = 30 * time.Second

type Config struct {
	//===============
	// Tool
	//===============
	// Name or absolute path of the version-control binary
	binary string

	//===============
	// Environment
	//===============
	// Directory the queries run in. Empty means the process working directory
	workDir string

	//===============
	// Limits
	//===============
	// Maximum time a single query may take before it is treated as a fault.
	// Zero disables the bound
	queryTimeout time.Duration
}

// WithDefault creates a new Config with default values for all fields.
func WithDefault() *Config {
	defaultConfig := Config{
		binary:       "git",
		workDir:      "",
		queryTimeout: DefaultQueryTimeout,
	}
	return &defaultConfig
}

func (c *Config) WithBinary(binary string) *Config {
	c.binary = binary
	return c
}

func (c *Config) WithWorkDir(dir string) *Config {
	c.workDir = dir
	return c
}

func (c *Config) WithQueryTimeout(timeout time.Duration) *Config {
	c.queryTimeout = timeout
	return c
}

func (c *Config) Build() (Config, error) {
	if strings.TrimSpace(c.binary) == "" {
		return Config{}, fmt.Errorf("%w: binary cannot be empty", ErrInvalidConfig)
	}
	if c.queryTimeout < 0 {
		return Config{}, fmt.Errorf("%w: query timeout cannot be negative, got %v", ErrInvalidConfig, c.queryTimeout)
	}
	return *c, nil
}

func (c Config) Binary() string {
	return c.binary
}

func (c Config) WorkDir() string {
	return c.workDir
}

func (c Config) QueryTimeout() time.Duration {
	return c.queryTimeout
}
