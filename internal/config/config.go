// Package config loads the application configuration from YAML with
// environment variable overrides.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the application.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Analysis AnalysisConfig `yaml:"analysis"`
	Upload   UploadConfig   `yaml:"upload"`
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port int    `yaml:"port"`
	Host string `yaml:"host"`
}

// GetHost returns the server host, listening on all interfaces when running
// in a container.
func (c ServerConfig) GetHost() string {
	if os.Getenv("ECS_CONTAINER_METADATA_URI") != "" || os.Getenv("AWS_EXECUTION_ENV") != "" {
		return "0.0.0.0"
	}
	if host := os.Getenv("SERVER_HOST"); host != "" {
		return host
	}
	return c.Host
}

// AnalysisConfig holds the default classification parameters. Both are live
// inputs that callers may override per request.
type AnalysisConfig struct {
	DefaultSigma float64 `yaml:"default_sigma"` // |z| cutoff, 0.5-2.0
	CTRColumn    string  `yaml:"ctr_column"`    // "ctr_link" or "ctr_all"
}

// UploadConfig holds limits for CSV uploads.
type UploadConfig struct {
	MaxFileMB int64 `yaml:"max_file_mb"`
}

// MaxFileBytes returns the upload limit in bytes.
func (c UploadConfig) MaxFileBytes() int64 {
	return c.MaxFileMB << 20
}

// Load reads and parses the configuration file. A missing file yields the
// defaults rather than an error, so the binaries run without any config.
func Load(path string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, err
	}

	// Set defaults
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Server.Host == "" {
		cfg.Server.Host = "localhost"
	}
	if cfg.Analysis.DefaultSigma == 0 {
		cfg.Analysis.DefaultSigma = 1.0
	}
	if cfg.Analysis.CTRColumn == "" {
		cfg.Analysis.CTRColumn = "ctr_link"
	}
	if cfg.Upload.MaxFileMB == 0 {
		cfg.Upload.MaxFileMB = 50
	}

	return &cfg, nil
}

// LoadFromEnv loads configuration with environment variable overrides. A
// .env file (if present) is loaded first, so local settings can live there
// while deployments use real env vars.
func LoadFromEnv(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}

	if port := os.Getenv("PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			cfg.Server.Port = p
		}
	}
	if sigma := os.Getenv("TRIAGE_DEFAULT_SIGMA"); sigma != "" {
		if s, err := strconv.ParseFloat(sigma, 64); err == nil {
			cfg.Analysis.DefaultSigma = s
		}
	}
	if col := os.Getenv("TRIAGE_CTR_COLUMN"); col != "" {
		cfg.Analysis.CTRColumn = col
	}
	if maxMB := os.Getenv("TRIAGE_MAX_UPLOAD_MB"); maxMB != "" {
		if m, err := strconv.ParseInt(maxMB, 10, 64); err == nil {
			cfg.Upload.MaxFileMB = m
		}
	}

	return cfg, nil
}
