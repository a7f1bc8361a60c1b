package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Environment string `yaml:"environment"`
	Server      struct {
		Port            int           `yaml:"port"`
		ReadTimeout     time.Duration `yaml:"read_timeout"`
		WriteTimeout    time.Duration `yaml:"write_timeout"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	} `yaml:"server"`
	Metrics struct {
		Enabled bool   `yaml:"enabled"`
		Path    string `yaml:"path"`
	} `yaml:"metrics"`
	Logging struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
		Output string `yaml:"output"`
	} `yaml:"logging"`
	Engine struct {
		// Base tier weights; zero values fall back to engine defaults.
		// Non-zero weights must sum to 1.
		WhaleFlowWeight   float64 `yaml:"whale_flow_weight"`
		MomentumWeight    float64 `yaml:"momentum_weight"`
		SentimentWeight   float64 `yaml:"sentiment_weight"`
		WeakSignalsWeight float64 `yaml:"weak_signals_weight"`

		// Lookback window for the whale flow tier. Zero means default (24h).
		WhaleLookback time.Duration `yaml:"whale_lookback"`
	} `yaml:"engine"`
}

// Load reads and parses a YAML configuration file.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &c, nil
}

// LoadWithEnv loads config from YAML and overrides with environment variables.
func LoadWithEnv(path string) (*Config, error) {
	c, err := Load(path)
	if err != nil {
		return nil, err
	}

	if v := os.Getenv("PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.Server.Port = port
		}
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		c.Logging.Format = v
	}

	return c, nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Environment == "" {
		return fmt.Errorf("environment is required")
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535, got %d", c.Server.Port)
	}

	weightSum := c.Engine.WhaleFlowWeight + c.Engine.MomentumWeight +
		c.Engine.SentimentWeight + c.Engine.WeakSignalsWeight
	if weightSum != 0 && (weightSum < 1-1e-9 || weightSum > 1+1e-9) {
		return fmt.Errorf("engine tier weights must sum to 1, got %v", weightSum)
	}
	if c.Engine.WhaleLookback < 0 {
		return fmt.Errorf("engine.whale_lookback cannot be negative")
	}
	return nil
}
