// Package config loads oddspulse settings from a YAML file and the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/rshade/oddspulse/internal/loader"
	"github.com/rshade/oddspulse/internal/match"
)

// Environment variables recognised by ApplyEnv.
const (
	EnvConfig    = "ODDSPULSE_CONFIG"
	EnvSource    = "ODDSPULSE_SOURCE"
	EnvLogLevel  = "ODDSPULSE_LOG_LEVEL"
	EnvLogFormat = "ODDSPULSE_LOG_FORMAT"
	EnvLogFile   = "ODDSPULSE_LOG_FILE"
	EnvThreshold = "ODDSPULSE_LONG_ODDS_THRESHOLD"
	EnvHome      = "ODDSPULSE_HOME"
)

const (
	dirName        = ".oddspulse"
	configFileName = "config.yaml"
	logFileName    = "oddspulse.log"
)

// Validation errors.
var (
	ErrInvalidThreshold = errors.New("display.long_odds_threshold must be >= 0")
	ErrInvalidLimit     = errors.New("display.suggestion_limit must be >= 0")
	ErrInvalidFormat    = errors.New("logging.format must be json or console")
)

// Config is the full oddspulse configuration.
type Config struct {
	Source  string        `yaml:"source"`
	Logging LoggingConfig `yaml:"logging"`
	Display DisplayConfig `yaml:"display"`
}

// DisplayConfig controls how matches are shown.
type DisplayConfig struct {
	// LongOddsThreshold is the value above which odds use the long style.
	LongOddsThreshold float64 `yaml:"long_odds_threshold"`
	// SuggestionLimit caps rendered suggestion rows. Zero means unlimited.
	SuggestionLimit int `yaml:"suggestion_limit"`
}

// New returns the default configuration.
func New() *Config {
	return &Config{
		Source: loader.DefaultSource,
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			File:   filepath.Join(Dir(), "logs", logFileName),
		},
		Display: DisplayConfig{
			LongOddsThreshold: match.LongOddsThreshold,
		},
	}
}

// Dir returns the oddspulse home directory: $ODDSPULSE_HOME or ~/.oddspulse.
func Dir() string {
	if home := os.Getenv(EnvHome); home != "" {
		return home
	}
	userHome, err := os.UserHomeDir()
	if err != nil || userHome == "" {
		return dirName
	}
	return filepath.Join(userHome, dirName)
}

// DefaultPath returns the config file location when none is given.
func DefaultPath() string {
	if p := os.Getenv(EnvConfig); p != "" {
		return p
	}
	return filepath.Join(Dir(), configFileName)
}

// Load reads defaults, overlays the YAML file at path, then the environment.
// A missing file is not an error unless explicit is true.
func Load(path string, explicit bool) (*Config, error) {
	cfg := New()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if unmarshalErr := yaml.Unmarshal(data, cfg); unmarshalErr != nil {
			return nil, fmt.Errorf("parsing config %s: %w", path, unmarshalErr)
		}
	case errors.Is(err, os.ErrNotExist) && !explicit:
	default:
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err = cfg.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	if err = cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnv overlays environment variables on the config.
func (c *Config) ApplyEnv(lookupEnv func(string) (string, bool)) error {
	if v, ok := lookupEnv(EnvSource); ok && v != "" {
		c.Source = v
	}
	if v, ok := lookupEnv(EnvLogLevel); ok && v != "" {
		c.Logging.Level = v
	}
	if v, ok := lookupEnv(EnvLogFormat); ok && v != "" {
		c.Logging.Format = v
	}
	if v, ok := lookupEnv(EnvLogFile); ok {
		c.Logging.File = v
	}
	if v, ok := lookupEnv(EnvThreshold); ok && v != "" {
		threshold, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvThreshold, err)
		}
		c.Display.LongOddsThreshold = threshold
	}
	return nil
}

// Validate checks field ranges.
func (c *Config) Validate() error {
	if c.Display.LongOddsThreshold < 0 {
		return fmt.Errorf("%w, got %v", ErrInvalidThreshold, c.Display.LongOddsThreshold)
	}
	if c.Display.SuggestionLimit < 0 {
		return fmt.Errorf("%w, got %d", ErrInvalidLimit, c.Display.SuggestionLimit)
	}
	switch c.Logging.Format {
	case "", "json", "console":
	default:
		return fmt.Errorf("%w, got %q", ErrInvalidFormat, c.Logging.Format)
	}
	return nil
}

// Save writes the config as YAML to path, creating parent directories.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err = os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err = os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing config %s: %w", path, err)
	}
	return nil
}
