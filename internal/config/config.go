package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server  ServerConfig  `yaml:"server"`
	API     APIConfig     `yaml:"api"`
	Catalog CatalogConfig `yaml:"catalog"`
	Logging LoggingConfig `yaml:"logging"`
}

type ServerConfig struct {
	Port        int `yaml:"port"`
	MetricsPort int `yaml:"metrics_port"`
}

type APIConfig struct {
	RateLimitPerMinute int `yaml:"rate_limit_per_minute"`
}

type CatalogConfig struct {
	// Path to a YAML file with additional criterion definitions. Empty means
	// built-in catalog only.
	Path string `yaml:"path"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

func Load(path string) (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:        8700,
			MetricsPort: 8701,
		},
		API: APIConfig{
			RateLimitPerMinute: 120,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	applyEnv(cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("SITERANK_PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = n
		}
	}
	if v := os.Getenv("SITERANK_METRICS_PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Server.MetricsPort = n
		}
	}
	if v := os.Getenv("SITERANK_RATE_LIMIT_PER_MINUTE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.API.RateLimitPerMinute = n
		}
	}
	if v := os.Getenv("SITERANK_CATALOG_PATH"); v != "" {
		cfg.Catalog.Path = v
	}
	if v := os.Getenv("SITERANK_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("SITERANK_LOG_FORMAT"); v != "" {
		cfg.Logging.Format = v
	}
}
