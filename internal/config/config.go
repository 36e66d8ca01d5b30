package config

import (
	"fmt"
	"net/url"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/bioseek/bioseek/internal/errors"
)

// Config holds the immutable configuration for all bioseek clients.
// Client commands always run with DefaultConfig; the server and mcp
// commands may load overrides from a YAML file. Tests substitute stub
// endpoints by constructing a Config directly.
type Config struct {
	Taxonomy  EndpointConfig `yaml:"taxonomy"`  // NCBI Datasets API
	Archive   EndpointConfig `yaml:"archive"`   // ENA portal API
	Workflows EndpointConfig `yaml:"workflows"` // IWC workflow manifest
	HTTP      HTTPConfig     `yaml:"http"`
	Server    ServerConfig   `yaml:"server"`
}

// EndpointConfig identifies one remote service.
type EndpointConfig struct {
	BaseURL string `yaml:"base_url"`
}

// HTTPConfig contains transport settings applied uniformly to every request.
type HTTPConfig struct {
	TimeoutSeconds int `yaml:"timeout_seconds"`
}

// ServerConfig contains settings for the REST server mode.
type ServerConfig struct {
	Host       string `yaml:"host"`
	Port       int    `yaml:"port"`
	EnableCORS bool   `yaml:"enable_cors"`
}

// Timeout returns the HTTP timeout as a duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.HTTP.TimeoutSeconds) * time.Second
}

// DefaultConfig returns the default configuration pointing at the
// production services.
func DefaultConfig() *Config {
	return &Config{
		Taxonomy:  EndpointConfig{BaseURL: "https://api.ncbi.nlm.nih.gov"},
		Archive:   EndpointConfig{BaseURL: "https://www.ebi.ac.uk/ena/portal/api"},
		Workflows: EndpointConfig{BaseURL: "https://iwc.galaxyproject.org/workflow_manifest.json"},
		HTTP:      HTTPConfig{TimeoutSeconds: 30},
		Server: ServerConfig{
			Host:       "0.0.0.0",
			Port:       8080,
			EnableCORS: true,
		},
	}
}

// Load loads configuration from a YAML file, starting from defaults so a
// partial file only overrides what it names.
func Load(path string) (*Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Config("config.Load", "failed to read config file: "+path, err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, errors.Config("config.Load", "failed to parse config file: "+path, err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	for name, ep := range map[string]EndpointConfig{
		"taxonomy":  c.Taxonomy,
		"archive":   c.Archive,
		"workflows": c.Workflows,
	} {
		if ep.BaseURL == "" {
			return fmt.Errorf("config: %s base_url must not be empty", name)
		}
		if _, err := url.ParseRequestURI(ep.BaseURL); err != nil {
			return fmt.Errorf("config: invalid %s base_url %q: %w", name, ep.BaseURL, err)
		}
	}
	if c.HTTP.TimeoutSeconds <= 0 {
		return fmt.Errorf("config: timeout_seconds must be positive, got %d", c.HTTP.TimeoutSeconds)
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("config: invalid server port %d", c.Server.Port)
	}
	return nil
}
