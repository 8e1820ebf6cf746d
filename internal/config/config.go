// Package config provides configuration management for Planetarium.
//
// Settings come from a YAML file, then from the environment. A .env file in
// the working directory is loaded into the environment first.
//
// Config file locations (priority order):
//  1. $PLANETARIUM_CONFIG
//  2. ./planetarium.yaml
//  3. $XDG_CONFIG_HOME/planetarium/config.yaml (default ~/.config)
//  4. /etc/planetarium/config.yaml
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"planetarium/internal/codec"
	"planetarium/internal/generator"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment overrides
const (
	EnvConfigPath = "PLANETARIUM_CONFIG"
	EnvScenario   = "PLANETARIUM_SCENARIO"
	EnvFormat     = "PLANETARIUM_FORMAT"
	EnvLogFile    = "PLANETARIUM_LOG_FILE"
	EnvVerbose    = "PLANETARIUM_VERBOSE"
	EnvSeed       = "PLANETARIUM_SEED"
)

const (
	// ConfigFileName is looked up in the working directory
	ConfigFileName = "planetarium.yaml"
	configDirName  = "planetarium"
)

// FindConfigPath returns the first existing config file, or "" when there is none
func FindConfigPath() string {
	candidates := []string{os.Getenv(EnvConfigPath), ConfigFileName, userConfigPath()}
	candidates = append(candidates, filepath.Join("/etc", configDirName, "config.yaml"))

	for _, path := range candidates {
		if path == "" || !fileExists(path) {
			continue
		}
		if abs, err := filepath.Abs(path); err == nil {
			return abs
		}
		return path
	}
	return ""
}

// DefaultConfigPath is where a new config file is written
func DefaultConfigPath() string {
	if path := userConfigPath(); path != "" {
		return path
	}
	return ConfigFileName
}

// userConfigPath is the XDG location of the config file, "" without a home
func userConfigPath() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, configDirName, "config.yaml")
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// LoadDotEnv loads .env files into the process environment. Missing files
// are not an error; variables already set are kept.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	var existing []string
	for _, f := range files {
		if fileExists(f) {
			existing = append(existing, f)
		}
	}
	if len(existing) == 0 {
		return nil
	}
	if err := godotenv.Load(existing...); err != nil {
		return fmt.Errorf("load env: %w", err)
	}
	return nil
}

// Load finds and loads the config file, or returns defaults if none found.
// Environment overrides are applied in both cases.
func Load() (*Config, string, error) {
	path := FindConfigPath()

	if path == "" {
		cfg := DefaultConfig()
		if err := cfg.applyEnv(); err != nil {
			return nil, "", err
		}
		if err := cfg.Validate(); err != nil {
			return nil, "", fmt.Errorf("invalid config: %w", err)
		}
		return cfg, "", nil
	}

	return LoadFromPath(path)
}

// LoadFromPath loads config from a specific path
func LoadFromPath(path string) (*Config, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, path, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, path, fmt.Errorf("parse config: %w", err)
	}

	cfg.applyDefaults()
	if err := cfg.applyEnv(); err != nil {
		return nil, path, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, path, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, path, nil
}

// Save writes config to the specified path
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	return os.WriteFile(path, data, 0644)
}

// DefaultConfig returns sensible defaults for a new installation
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// applyDefaults fills in missing values with defaults
func (c *Config) applyDefaults() {
	if c.Version == 0 {
		c.Version = 1
	}
	if c.Star.Mass == 0 {
		c.Star.Mass = 1000
	}
	if c.Display.Format == "" {
		c.Display.Format = "text"
	}

	defaults := generator.DefaultOptions()
	g := &c.Generator
	if g.MinPlanetRadius == 0 && g.MaxPlanetRadius == 0 {
		g.MinPlanetRadius, g.MaxPlanetRadius = defaults.MinPlanetRadius, defaults.MaxPlanetRadius
	}
	if g.MinMoonRadius == 0 && g.MaxMoonRadius == 0 {
		g.MinMoonRadius, g.MaxMoonRadius = defaults.MinMoonRadius, defaults.MaxMoonRadius
	}
	if g.MinMass == 0 && g.MaxMass == 0 {
		g.MinMass, g.MaxMass = defaults.MinMass, defaults.MaxMass
	}
}

// applyEnv overrides file settings with environment variables
func (c *Config) applyEnv() error {
	if v := os.Getenv(EnvScenario); v != "" {
		c.Scenario = v
	}
	if v := os.Getenv(EnvFormat); v != "" {
		c.Display.Format = v
	}
	if v := os.Getenv(EnvLogFile); v != "" {
		c.Log.File = v
	}
	if v := os.Getenv(EnvVerbose); v != "" {
		verbose, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("parse %s: %w", EnvVerbose, err)
		}
		c.Log.Verbose = verbose
	}
	if v := os.Getenv(EnvSeed); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("parse %s: %w", EnvSeed, err)
		}
		c.Generator.Seed = seed
	}
	return nil
}

// Validate checks the settings the application cannot run without
func (c *Config) Validate() error {
	if c.Star.Mass <= 0 {
		return fmt.Errorf("star mass must be positive, got %g", c.Star.Mass)
	}
	if _, err := codec.ForFormat(c.Display.Format); err != nil {
		return err
	}
	return c.GeneratorOptions().Validate()
}

// GeneratorOptions converts the generator section for the generator package
func (c *Config) GeneratorOptions() generator.Options {
	g := c.Generator
	return generator.Options{
		Seed:            g.Seed,
		MinPlanetRadius: g.MinPlanetRadius,
		MaxPlanetRadius: g.MaxPlanetRadius,
		MinMoonRadius:   g.MinMoonRadius,
		MaxMoonRadius:   g.MaxMoonRadius,
		MinMass:         g.MinMass,
		MaxMass:         g.MaxMass,
	}
}

// Summary returns a human-readable config summary
func (c *Config) Summary() string {
	summary := fmt.Sprintf("Star: (%g, %g) mass %g\n", c.Star.X, c.Star.Y, c.Star.Mass)
	if c.Scenario != "" {
		summary += fmt.Sprintf("Scenario: %s\n", c.Scenario)
	}
	summary += fmt.Sprintf("Format: %s, Seed: %d", c.Display.Format, c.Generator.Seed)
	return summary
}
