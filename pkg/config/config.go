// Package config handles loading and managing blockbuster configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/blockbuster/blockbuster/pkg/concept"
)

// Config is the top-level configuration for blockbuster.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Defaults  concept.Concept `yaml:"defaults"` // initial state of the input form
	Scenarios ScenariosConfig `yaml:"scenarios"`
	Log       LogConfig       `yaml:"log"`
}

// ServerConfig controls the HTTP server.
type ServerConfig struct {
	Addr         string `yaml:"addr"`
	APIKey       string `yaml:"api_key"`       // empty disables auth
	ReadTimeout  int    `yaml:"read_timeout"`  // seconds
	WriteTimeout int    `yaml:"write_timeout"` // seconds
	CORSOrigin   string `yaml:"cors_origin"`
}

// ScenariosConfig controls where what-if scenario files are read from.
type ScenariosConfig struct {
	Backend   string `yaml:"backend"` // local, s3, gcs
	Dir       string `yaml:"dir"`     // local backend root
	Bucket    string `yaml:"bucket"`
	Region    string `yaml:"region"`
	Endpoint  string `yaml:"endpoint"` // S3-compatible endpoint, e.g. MinIO
	AccessKey string `yaml:"access_key"`
	SecretKey string `yaml:"secret_key"`
}

// LogConfig controls structured logging.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json or console
}

// Scenario backends.
const (
	BackendLocal = "local"
	BackendS3    = "s3"
	BackendGCS   = "gcs"
)

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:         ":7700",
			ReadTimeout:  15,
			WriteTimeout: 15,
			CORSOrigin:   "*",
		},
		Defaults: concept.Default(),
		Scenarios: ScenariosConfig{
			Backend: BackendLocal,
			Dir:     ".",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// Load reads a config file from the given path.
// If the file does not exist, it returns the default config.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ApplyEnv overrides config values from the environment.
func (c *Config) ApplyEnv() {
	if v := os.Getenv("BLOCKBUSTER_ADDR"); v != "" {
		c.Server.Addr = v
	}
	if v := os.Getenv("BLOCKBUSTER_API_KEY"); v != "" {
		c.Server.APIKey = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
}

// Validate checks settings that would otherwise fail late.
// The default concept is not validated: any concept can be scored.
func (c *Config) Validate() error {
	switch c.Scenarios.Backend {
	case BackendLocal, BackendS3, BackendGCS:
	default:
		return fmt.Errorf("invalid scenarios.backend %q (want local, s3 or gcs)", c.Scenarios.Backend)
	}
	switch c.Log.Format {
	case "json", "console":
	default:
		return fmt.Errorf("invalid log.format %q (want json or console)", c.Log.Format)
	}
	if c.Server.ReadTimeout < 0 || c.Server.WriteTimeout < 0 {
		return fmt.Errorf("server timeouts must not be negative")
	}
	return nil
}

// ReadTimeoutDuration returns the server read timeout as a duration.
func (s ServerConfig) ReadTimeoutDuration() time.Duration {
	return time.Duration(s.ReadTimeout) * time.Second
}

// WriteTimeoutDuration returns the server write timeout as a duration.
func (s ServerConfig) WriteTimeoutDuration() time.Duration {
	return time.Duration(s.WriteTimeout) * time.Second
}

// FindConfigFile looks for .blockbuster/config.yaml in the given directory
// and its parents, returning the path if found, or "" if not.
func FindConfigFile(dir string) string {
	for {
		candidate := filepath.Join(dir, ".blockbuster", "config.yaml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return ""
}

// Resolve loads the config at path, or the nearest .blockbuster/config.yaml
// above the working directory when path is empty, then applies env overrides.
func Resolve(path string) (*Config, error) {
	if path == "" {
		if wd, err := os.Getwd(); err == nil {
			path = FindConfigFile(wd)
		}
	}

	cfg := DefaultConfig()
	if path != "" {
		var err error
		cfg, err = Load(path)
		if err != nil {
			return nil, err
		}
	}

	cfg.ApplyEnv()
	return cfg, nil
}
