// Package config loads daily-sns settings from a YAML file with
// environment overrides applied on top.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// AvatarSize is the pixel size requested for generated avatars.
const AvatarSize = 128

const (
	EnvPort      = "PORT"
	EnvGinMode   = "GIN_MODE"
	EnvFEOrigins = "FE_ORIGINS"
	EnvMockDelay = "SNS_MOCK_DELAY"
	EnvLogLevel  = "SNS_LOG_LEVEL"
)

type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Mock    MockConfig    `yaml:"mock"`
	Albums  AlbumsConfig  `yaml:"albums"`
	Logging LoggingConfig `yaml:"logging"`
	Client  ClientConfig  `yaml:"client"`
}

type ServerConfig struct {
	Port        string   `yaml:"port"`
	GinMode     string   `yaml:"gin_mode"`
	CORSOrigins []string `yaml:"cors_origins"`
}

type MockConfig struct {
	// Delay is the simulated network latency, e.g. "500ms".
	Delay string `yaml:"delay"`
	// Seed fixes the shuffle order; 0 seeds from the clock.
	Seed int64 `yaml:"seed"`
}

type AlbumsConfig struct {
	RefreshInterval string `yaml:"refresh_interval"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
	JSON  bool   `yaml:"json"`
}

type ClientConfig struct {
	APIBaseURL string `yaml:"api_base_url"`
	UserId     string `yaml:"user_id"`
}

func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:        "8080",
			GinMode:     "release",
			CORSOrigins: []string{"http://localhost:3000"},
		},
		Mock: MockConfig{
			Delay: "500ms",
		},
		Albums: AlbumsConfig{
			RefreshInterval: "20m",
		},
		Logging: LoggingConfig{
			Level: "info",
			JSON:  true,
		},
		Client: ClientConfig{
			UserId: "1",
		},
	}
}

// Load reads the YAML file at path over the defaults. A missing file is
// not an error; the defaults plus environment overrides are returned.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
			}
		case !os.IsNotExist(err):
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}
	cfg.applyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func (c *Config) applyEnvOverrides() {
	if port := os.Getenv(EnvPort); port != "" {
		c.Server.Port = port
	}
	if mode := os.Getenv(EnvGinMode); mode != "" {
		c.Server.GinMode = mode
	}
	if origins := os.Getenv(EnvFEOrigins); origins != "" {
		c.Server.CORSOrigins = strings.Split(origins, ";")
	}
	if delay := os.Getenv(EnvMockDelay); delay != "" {
		c.Mock.Delay = delay
	}
	if level := os.Getenv(EnvLogLevel); level != "" {
		c.Logging.Level = level
	}
}

func (c *Config) Validate() error {
	if _, err := c.MockDelay(); err != nil {
		return err
	}
	if _, err := c.AlbumRefreshInterval(); err != nil {
		return err
	}
	return nil
}

func (c *Config) MockDelay() (time.Duration, error) {
	d, err := time.ParseDuration(c.Mock.Delay)
	if err != nil {
		return 0, fmt.Errorf("mock.delay: %w", err)
	}
	if d < 0 {
		return 0, fmt.Errorf("mock.delay must not be negative, got %v", d)
	}
	return d, nil
}

func (c *Config) AlbumRefreshInterval() (time.Duration, error) {
	d, err := time.ParseDuration(c.Albums.RefreshInterval)
	if err != nil {
		return 0, fmt.Errorf("albums.refresh_interval: %w", err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("albums.refresh_interval must be positive, got %v", d)
	}
	return d, nil
}
