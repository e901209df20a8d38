// Package config loads the hecevent configuration and the settings files the
// commands operate on.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"
)

const (
	DefaultTimeout = 10      // Seconds
	DefaultListen  = ":8088" // Host bridge listen address

	EnvURL   = "HEC_URL"
	EnvToken = "HEC_TOKEN"
)

// Config holds the collector endpoint and transport settings.
type Config struct {
	URL               string   `json:"url,omitempty" yaml:"url,omitempty"`                                 // HEC collector endpoint
	Token             string   `json:"token,omitempty" yaml:"token,omitempty"`                             // HEC token
	Timeout           int      `json:"timeout,omitempty" yaml:"timeout,omitempty"`                         // Request timeout in seconds
	DisableTLS        bool     `json:"disable_tls,omitempty" yaml:"disable_tls,omitempty"`                 // Skip TLS verification
	DisableKeepAlives bool     `json:"disable_keep_alives,omitempty" yaml:"disable_keep_alives,omitempty"` // Disable HTTP keep-alives
	Channel           string   `json:"channel,omitempty" yaml:"channel,omitempty"`                         // HEC request channel, "auto" for a generated one
	Listen            string   `json:"listen,omitempty" yaml:"listen,omitempty"`                           // Host bridge listen address
	Resolvers         []string `json:"resolvers,omitempty" yaml:"resolvers,omitempty"`                     // DNS resolvers (ip:port) for the preflight check
}

func NewConfig() Config {
	return Config{
		Timeout: DefaultTimeout,
		Listen:  DefaultListen,
	}
}

// OverrideConfigWithCustomFile overrides cfg with the fields set in the JSON
// or YAML file at path. A missing file leaves cfg untouched and returns
// os.ErrNotExist wrapped.
func OverrideConfigWithCustomFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	var custom Config
	if isYAML(path) {
		err = yaml.Unmarshal(data, &custom)
	} else {
		err = json.Unmarshal(data, &custom)
	}
	if err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	// Override fields only if they are set in custom configuration
	if custom.URL != "" {
		cfg.URL = custom.URL
	}
	if custom.Token != "" {
		cfg.Token = custom.Token
	}
	if custom.Timeout > 0 {
		cfg.Timeout = custom.Timeout
	}
	if custom.DisableTLS {
		cfg.DisableTLS = true
	}
	if custom.DisableKeepAlives {
		cfg.DisableKeepAlives = true
	}
	if custom.Channel != "" {
		cfg.Channel = custom.Channel
	}
	if custom.Listen != "" {
		cfg.Listen = custom.Listen
	}
	if len(custom.Resolvers) > 0 {
		cfg.Resolvers = custom.Resolvers
	}

	return nil
}

// OverrideConfigWithEnv applies HEC_URL and HEC_TOKEN when set.
func OverrideConfigWithEnv(cfg *Config) {
	if v := os.Getenv(EnvURL); v != "" {
		cfg.URL = v
	}
	if v := os.Getenv(EnvToken); v != "" {
		cfg.Token = v
	}
}

// Load builds the configuration from defaults, the optional file and the
// environment, in that order. An empty path or a missing file is not an error.
func Load(path string) (Config, error) {
	cfg := NewConfig()

	if path != "" {
		if err := OverrideConfigWithCustomFile(&cfg, path); err != nil && !errors.Is(err, os.ErrNotExist) {
			return cfg, err
		}
	}

	OverrideConfigWithEnv(&cfg)

	return cfg, nil
}

// ValidateForSend checks what dispatching an event needs.
func (c Config) ValidateForSend() error {
	var err error

	if c.URL == "" {
		err = multierr.Append(err, fmt.Errorf("collector url is required (set url or %s)", EnvURL))
	} else if u, parseErr := url.Parse(c.URL); parseErr != nil || u.Host == "" {
		err = multierr.Append(err, fmt.Errorf("collector url %q is not an absolute URL", c.URL))
	}
	if c.Token == "" {
		err = multierr.Append(err, fmt.Errorf("token is required (set token or %s)", EnvToken))
	}
	if c.Timeout < 0 {
		err = multierr.Append(err, fmt.Errorf("timeout must not be negative"))
	}

	return err
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}
