package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/san-kum/algoviz/internal/algorithms"
	"github.com/san-kum/algoviz/internal/logging"
	"gopkg.in/yaml.v3"
)

const (
	DefaultAlgorithm    = "bubble_sort"
	DefaultSpeed        = 1.0
	DefaultBaseInterval = "800ms"
	DefaultTheme        = "cyberpunk"
	DefaultLogLevel     = "info"
)

var ErrInvalidConfig = errors.New("config: invalid")

type Config struct {
	Algorithm    string           `yaml:"algorithm"`
	Speed        float64          `yaml:"speed"`
	BaseInterval string           `yaml:"base_interval"`
	Theme        string           `yaml:"theme"`
	LogLevel     string           `yaml:"log_level"`
	Input        algorithms.Input `yaml:"input"`
}

func DefaultConfig() *Config {
	return &Config{
		Algorithm:    DefaultAlgorithm,
		Speed:        DefaultSpeed,
		BaseInterval: DefaultBaseInterval,
		Theme:        DefaultTheme,
		LogLevel:     DefaultLogLevel,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes cfg as yaml, replacing any existing file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Interval parses BaseInterval.
func (c *Config) Interval() (time.Duration, error) {
	d, err := time.ParseDuration(c.BaseInterval)
	if err != nil {
		return 0, fmt.Errorf("%w: base_interval: %v", ErrInvalidConfig, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%w: base_interval must be positive, got %s", ErrInvalidConfig, d)
	}
	return d, nil
}

func (c *Config) Validate() error {
	if c.Speed <= 0 {
		return fmt.Errorf("%w: speed must be positive, got %g", ErrInvalidConfig, c.Speed)
	}
	if _, err := c.Interval(); err != nil {
		return err
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log_level: %v", ErrInvalidConfig, err)
	}
	return nil
}

// HasInput reports whether the file set any input field.
func (c *Config) HasInput() bool {
	in := c.Input
	return len(in.Array) > 0 || len(in.Graph) > 0 || in.N != 0 || in.Target != 0 || in.Start != 0
}
