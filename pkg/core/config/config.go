// ============================================================================
// exfc - Exception Registry
// ============================================================================
//
// Package:     config
// Description: Application configuration loaded from TOML or YAML files
// Author:      Mike Stoffels
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	exfcerror "github.com/msto63/exfc/foundation/core/error"
	exfclog "github.com/msto63/exfc/foundation/core/log"
	"github.com/msto63/exfc/pkg/exception"
)

// maxExitStatus is the largest exit status a process can report
const maxExitStatus = 255

// EnvConfigPath names the environment variable holding the config file path
const EnvConfigPath = "EXFC_CONFIG"

// Config holds the complete application configuration
type Config struct {
	General  GeneralConfig  `toml:"general" yaml:"general"`
	Registry RegistryConfig `toml:"registry" yaml:"registry"`
	Catalog  CatalogConfig  `toml:"catalog" yaml:"catalog"`
}

// GeneralConfig holds general application settings
type GeneralConfig struct {
	Name        string `toml:"name" yaml:"name"`
	Environment string `toml:"environment" yaml:"environment"`
	LogLevel    string `toml:"log_level" yaml:"log_level"`
	LogFormat   string `toml:"log_format" yaml:"log_format"`
}

// RegistryConfig holds the limits of the exception registry
type RegistryConfig struct {
	Capacity     int    `toml:"capacity" yaml:"capacity"`
	BufferMax    int    `toml:"buffer_max" yaml:"buffer_max"`
	IDOffset     int    `toml:"id_offset" yaml:"id_offset"`
	Strategy     string `toml:"strategy" yaml:"strategy"`
	SeedBuiltins bool   `toml:"seed_builtins" yaml:"seed_builtins"`
}

// CatalogConfig points at the records loaded at startup
type CatalogConfig struct {
	Path string `toml:"path" yaml:"path"`
	// SkipDuplicates ignores catalog entries that collide with existing records
	SkipDuplicates bool `toml:"skip_duplicates" yaml:"skip_duplicates"`
}

// Default returns the configuration used when no file is present
func Default() *Config {
	cfg := &Config{
		Registry: RegistryConfig{SeedBuiltins: true},
	}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from a TOML or YAML file. The format follows the
// file extension; anything other than .yaml or .yml is read as TOML.
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, exfcerror.New("config file not found").
				WithCode(exfcerror.CodeMissingConfig).
				WithOperation("config.Load").
				WithDetail("path", path)
		}
		return nil, exfcerror.Wrap(err, "failed to read config").
			WithCode(exfcerror.CodeConfigError).
			WithOperation("config.Load").
			WithDetail("path", path)
	}

	cfg := &Config{
		Registry: RegistryConfig{SeedBuiltins: true},
	}
	if err := decode(path, data, cfg); err != nil {
		return nil, exfcerror.Wrap(err, "failed to parse config").
			WithCode(exfcerror.CodeInvalidFormat).
			WithOperation("config.Load").
			WithDetail("path", path)
	}

	cfg.applyDefaults()
	cfg.expandEnvVars()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFromEnv loads configuration from the EXFC_CONFIG environment variable
// or from the first default location that exists.
func LoadFromEnv() (*Config, error) {
	path := os.Getenv(EnvConfigPath)
	if path == "" {
		for _, p := range defaultPaths() {
			if _, err := os.Stat(p); err == nil {
				path = p
				break
			}
		}
	}

	if path == "" {
		return nil, exfcerror.New("no config file found, set EXFC_CONFIG or create configs/exfc.toml").
			WithCode(exfcerror.CodeMissingConfig).
			WithOperation("config.LoadFromEnv")
	}

	return Load(path)
}

func defaultPaths() []string {
	return []string{
		"./configs/exfc.toml",
		"./exfc.toml",
		filepath.Join(os.Getenv("HOME"), ".config/exfc/config.toml"),
	}
}

func decode(path string, data []byte, cfg *Config) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Unmarshal(data, cfg)
	default:
		_, err := toml.Decode(string(data), cfg)
		return err
	}
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	// General
	if c.General.Name == "" {
		c.General.Name = "exfc"
	}
	if c.General.Environment == "" {
		c.General.Environment = "development"
	}
	if c.General.LogLevel == "" {
		c.General.LogLevel = "warn"
	}
	if c.General.LogFormat == "" {
		c.General.LogFormat = "text"
	}

	// Registry
	if c.Registry.Capacity == 0 {
		c.Registry.Capacity = exception.DefaultCapacity
	}
	if c.Registry.BufferMax == 0 {
		c.Registry.BufferMax = exception.DefaultBufferMax
	}
	if c.Registry.IDOffset == 0 {
		c.Registry.IDOffset = exception.DefaultIDOffset
	}
	if c.Registry.Strategy == "" {
		c.Registry.Strategy = exception.StrategyBuffered.String()
	}
}

// expandEnvVars expands environment variables in configuration values
func (c *Config) expandEnvVars() {
	c.Catalog.Path = os.ExpandEnv(c.Catalog.Path)
}

// Validate checks that all values are usable
func (c *Config) Validate() error {
	invalid := func(field string, value interface{}, reason string) error {
		return exfcerror.New("invalid configuration: "+field+" "+reason).
			WithCode(exfcerror.CodeInvalidConfig).
			WithOperation("config.Validate").
			WithDetail("field", field).
			WithDetail("value", value)
	}

	if _, err := exfclog.ParseLevel(c.General.LogLevel); err != nil {
		return invalid("general.log_level", c.General.LogLevel, "is not a log level")
	}
	if _, err := exfclog.ParseFormat(c.General.LogFormat); err != nil {
		return invalid("general.log_format", c.General.LogFormat, "must be json or text")
	}
	if c.Registry.Capacity < 0 {
		return invalid("registry.capacity", c.Registry.Capacity, "must not be negative")
	}
	if c.Registry.BufferMax < 0 {
		return invalid("registry.buffer_max", c.Registry.BufferMax, "must not be negative")
	}
	if c.Registry.IDOffset < 0 {
		return invalid("registry.id_offset", c.Registry.IDOffset, "must not be negative")
	}
	if n := len(exception.Builtins(0)); c.Registry.SeedBuiltins && c.Registry.Capacity > 0 && c.Registry.Capacity < n {
		return invalid("registry.capacity", c.Registry.Capacity,
			fmt.Sprintf("cannot hold the %d builtin exceptions; raise it or disable seed_builtins", n))
	}
	if last := c.Registry.IDOffset + len(exception.Builtins(0)) - 1; last > maxExitStatus {
		return invalid("registry.id_offset", c.Registry.IDOffset, "puts builtin ids beyond the exit status range")
	}
	if _, err := exception.ParseStrategy(c.Registry.Strategy); err != nil {
		return invalid("registry.strategy", c.Registry.Strategy, "must be buffered or inplace")
	}
	return nil
}

// ExceptionConfig converts the registry section into a registry configuration
func (r RegistryConfig) ExceptionConfig() (exception.Config, error) {
	strategy, err := exception.ParseStrategy(r.Strategy)
	if err != nil {
		return exception.Config{}, exfcerror.Wrap(err, "invalid registry strategy").
			WithCode(exfcerror.CodeInvalidConfig).
			WithOperation("config.ExceptionConfig")
	}

	return exception.Config{
		Capacity:  r.Capacity,
		BufferMax: r.BufferMax,
		IDOffset:  r.IDOffset,
		Strategy:  strategy,
	}, nil
}
