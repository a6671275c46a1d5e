// Package config loads the optional trackdown configuration file and merges
// it with command-line overrides.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the merged view of the configuration file and command-line
// flags. The credential fields form an unvalidated bag; strategy validation
// happens after merging so partial-credential checks see the combined view.
type Config struct {
	// Server is the tracker base URL, e.g. "https://issues.example.com".
	Server string

	// Project is the target project prefix linked issues are filtered by.
	// Empty keeps linked issues from every project.
	Project string

	// Basic-auth credentials.
	Username string
	Password string

	// Oauth credential set.
	AccessToken string
	TokenSecret string
	ConsumerKey string
	KeyCert     string

	// RequestRate throttles tracker requests per second.
	// Zero uses the client default.
	RequestRate float64
}

// fileConfig is the YAML shape of the configuration file.
type fileConfig struct {
	Server            string  `yaml:"server"`
	Project           string  `yaml:"project"`
	Username          string  `yaml:"username"`
	Password          string  `yaml:"password"`
	AccessToken       string  `yaml:"access_token"`
	AccessTokenSecret string  `yaml:"access_token_secret"`
	ConsumerKey       string  `yaml:"consumer_key"`
	KeyCert           string  `yaml:"key_cert"`
	RequestRate       float64 `yaml:"request_rate"`
}

// Load reads a YAML configuration file. An empty path returns a zero Config
// so callers can rely on flags alone; a path that cannot be read or parsed
// is an error.
func Load(path string) (*Config, error) {
	if path == "" {
		return &Config{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}

	return &Config{
		Server:      fc.Server,
		Project:     fc.Project,
		Username:    fc.Username,
		Password:    fc.Password,
		AccessToken: fc.AccessToken,
		TokenSecret: fc.AccessTokenSecret,
		ConsumerKey: fc.ConsumerKey,
		KeyCert:     fc.KeyCert,
		RequestRate: fc.RequestRate,
	}, nil
}

// Merge overlays the non-zero fields of override onto c and returns the
// result. c is not modified. Flag values are expected as the override so
// they win over file values.
func (c *Config) Merge(override *Config) *Config {
	merged := *c
	if override.Server != "" {
		merged.Server = override.Server
	}
	if override.Project != "" {
		merged.Project = override.Project
	}
	if override.Username != "" {
		merged.Username = override.Username
	}
	if override.Password != "" {
		merged.Password = override.Password
	}
	if override.AccessToken != "" {
		merged.AccessToken = override.AccessToken
	}
	if override.TokenSecret != "" {
		merged.TokenSecret = override.TokenSecret
	}
	if override.ConsumerKey != "" {
		merged.ConsumerKey = override.ConsumerKey
	}
	if override.KeyCert != "" {
		merged.KeyCert = override.KeyCert
	}
	if override.RequestRate > 0 {
		merged.RequestRate = override.RequestRate
	}
	return &merged
}
