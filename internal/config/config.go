package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	DefaultModel          = "gpt-4"
	DefaultRequestTimeout = 60 * time.Second
	DefaultLogLevel       = "info"
)

// Environment keys read by Load.
const (
	EnvAPIKey  = "OPENAI_API_KEY"
	EnvBaseURL = "OPENAI_BASE_URL"
	EnvModel   = "TASKAGENTS_MODEL"
)

// Config holds settings loaded from taskagents.yml plus the environment.
type Config struct {
	Model          string        `yaml:"model,omitempty"`
	BaseURL        string        `yaml:"baseURL,omitempty"`
	RequestTimeout time.Duration `yaml:"requestTimeout,omitempty"`
	LogLevel       string        `yaml:"logLevel,omitempty"`

	// APIKey only ever comes from the environment or .env.
	APIKey string `yaml:"-"`
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		Model:          DefaultModel,
		RequestTimeout: DefaultRequestTimeout,
		LogLevel:       DefaultLogLevel,
	}
}

// Load reads taskagents.yml or taskagents.yaml from dir, then applies
// dir/.env and the process environment, with the process environment taking
// precedence. Missing files are not an error. The API key is not validated.
func Load(dir string) (*Config, error) {
	cfg := Default()

	for _, name := range []string{"taskagents.yml", "taskagents.yaml"} {
		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
		break
	}

	dotenv, err := godotenv.Read(filepath.Join(dir, ".env"))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("read .env: %w", err)
	}
	lookup := func(key string) string {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			return v
		}
		return dotenv[key]
	}

	cfg.APIKey = lookup(EnvAPIKey)
	if v := lookup(EnvBaseURL); v != "" {
		cfg.BaseURL = v
	}
	if v := lookup(EnvModel); v != "" {
		cfg.Model = v
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.RequestTimeout < 0 {
		cfg.RequestTimeout = 0
	}
	return cfg, nil
}

// SlogLevel maps LogLevel to a slog.Level. Unknown values map to info.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(strings.TrimSpace(c.LogLevel)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
