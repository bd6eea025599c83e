// Package config handles application configuration.
package config

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"go.aimuz.me/webshell/internal/types"
)

const (
	appName        = "webshell"
	configFileName = "config.json"
)

// Environment overrides applied by Load.
const (
	EnvTargetURL       = "WEBSHELL_URL"
	EnvDefaultZoom     = "WEBSHELL_ZOOM"
	EnvDisableDevTools = "WEBSHELL_DISABLE_DEV_TOOLS"
)

// Config represents the application configuration.
type Config struct {
	types.Settings

	// path is where Save writes; empty means the user config dir.
	path string
}

// Load loads configuration from the config file, then applies a .env file
// in the working directory and the process environment on top.
// Returns default config if the file doesn't exist.
func Load() (*Config, error) {
	path, err := configPath()
	if err != nil {
		return nil, fmt.Errorf("get config path: %w", err)
	}
	return LoadFile(path)
}

// LoadFile loads configuration from path.
func LoadFile(path string) (*Config, error) {
	cfg := defaultConfig()
	cfg.path = path

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
	case err != nil:
		return nil, fmt.Errorf("read config: %w", err)
	default:
		if err := json.Unmarshal(data, &cfg.Settings); err != nil {
			return nil, fmt.Errorf("unmarshal config: %w", err)
		}
	}

	// Missing .env is not an error.
	_ = godotenv.Load()
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	applyDefaults(&cfg.Settings)
	return cfg, nil
}

// Save persists the configuration to disk.
func (c *Config) Save() error {
	path := c.path
	if path == "" {
		p, err := configPath()
		if err != nil {
			return fmt.Errorf("get config path: %w", err)
		}
		path = p
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := json.MarshalIndent(c.Settings, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Validate checks that the configuration can drive a shell window.
func (c *Config) Validate() error {
	if c.TargetURL == "" {
		return fmt.Errorf("target url required")
	}
	u, err := url.Parse(c.TargetURL)
	if err != nil {
		return fmt.Errorf("parse target url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("target url must be http or https: %s", c.TargetURL)
	}
	if c.DefaultZoom < types.MinZoom || c.DefaultZoom > types.MaxZoom {
		return fmt.Errorf("default zoom %v out of range [%v, %v]", c.DefaultZoom, types.MinZoom, types.MaxZoom)
	}
	return nil
}

// Dir returns the directory holding the configuration file.
func (c *Config) Dir() string {
	if c.path != "" {
		return filepath.Dir(c.path)
	}
	p, err := configPath()
	if err != nil {
		return ""
	}
	return filepath.Dir(p)
}

func (c *Config) applyEnv() error {
	if v := os.Getenv(EnvTargetURL); v != "" {
		c.TargetURL = v
	}
	if v := os.Getenv(EnvDefaultZoom); v != "" {
		z, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("parse %s: %w", EnvDefaultZoom, err)
		}
		c.DefaultZoom = z
	}
	if v := os.Getenv(EnvDisableDevTools); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("parse %s: %w", EnvDisableDevTools, err)
		}
		c.DisableDevTools = b
	}
	return nil
}

func applyDefaults(s *types.Settings) {
	if s.Name == "" {
		s.Name = "Webshell"
	}
	if s.DefaultZoom == 0 {
		s.DefaultZoom = types.DefaultZoom
	}
	if s.Width == 0 {
		s.Width = types.DefaultWidth
	}
	if s.Height == 0 {
		s.Height = types.DefaultHeight
	}
}

func configPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("get user config dir: %w", err)
	}
	return filepath.Join(dir, appName, configFileName), nil
}

func defaultConfig() *Config {
	cfg := &Config{}
	applyDefaults(&cfg.Settings)
	return cfg
}
