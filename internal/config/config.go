// Package config handles configuration loading from YAML files and environment variables.
// Configuration precedence: CLI flags > environment variables > config file > embedded > defaults.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// Duration is a wrapper around time.Duration that supports YAML unmarshaling
// from human-readable strings like "5s", "10s", "1m".
type Duration struct {
	time.Duration
}

// UnmarshalYAML implements the yaml.Unmarshaler interface for Duration.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		parsed, err := time.ParseDuration(value.Value)
		if err != nil {
			return fmt.Errorf("invalid duration %q: %w", value.Value, err)
		}
		d.Duration = parsed
		return nil
	default:
		return fmt.Errorf("unsupported duration format: %v", value.Kind)
	}
}

// MarshalYAML implements the yaml.Marshaler interface for Duration.
func (d Duration) MarshalYAML() (interface{}, error) {
	return d.Duration.String(), nil
}

// Config holds all collector configuration.
type Config struct {
	Collection CollectionConfig `yaml:"collection"`
	Timeouts   TimeoutsConfig   `yaml:"timeouts"`
	Paths      PathsConfig      `yaml:"paths"`
	Output     OutputConfig     `yaml:"output"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// CollectionConfig selects what a run collects.
type CollectionConfig struct {
	Deep           bool   `yaml:"deep"`
	TopProcesses   int    `yaml:"top_processes"`
	InternalDevice string `yaml:"internal_device"`
}

// TimeoutsConfig bounds every external command a run spawns.
type TimeoutsConfig struct {
	Default      Duration `yaml:"default"`
	Availability Duration `yaml:"availability"`
	Sampling     Duration `yaml:"sampling"`
}

// PathsConfig lists directories prepended to PATH when running tools.
type PathsConfig struct {
	Extra []string `yaml:"extra"`
}

// OutputConfig holds the format used when no output flag is given.
type OutputConfig struct {
	Format string `yaml:"format"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

var validFormats = []string{"compact", "pretty", "yaml", "table"}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Collection: CollectionConfig{
			Deep:           false,
			TopProcesses:   5,
			InternalDevice: "/dev/disk0",
		},
		Timeouts: TimeoutsConfig{
			Default:      Duration{10 * time.Second},
			Availability: Duration{5 * time.Second},
			Sampling:     Duration{15 * time.Second},
		},
		Paths: PathsConfig{
			Extra: []string{"/opt/homebrew/bin", "/usr/local/bin"},
		},
		Output: OutputConfig{
			Format: "compact",
		},
		Logging: LoggingConfig{
			Level: "warn",
			File:  "",
		},
	}
}

// LoadFromBytes parses YAML configuration from a byte slice and merges with defaults.
// Environment variables take precedence over values from the byte slice.
func LoadFromBytes(data []byte) (*Config, error) {
	cfg := DefaultConfig()

	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config data: %w", err)
		}
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Load reads configuration from a YAML file and merges with defaults.
// If path is empty or the file does not exist, only defaults and environment
// variables are used.
func Load(path string) (*Config, error) {
	if path == "" {
		return LoadFromBytes(nil)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		return LoadFromBytes(nil)
	}

	return LoadFromBytes(data)
}

// CLIOverrides holds values from command-line flags.
// Zero values are treated as "not set" and skipped.
type CLIOverrides struct {
	Deep         bool
	TopProcesses int
	LogLevel     string
}

// Locate searches standard config file paths and returns the first one found.
// Returns empty string if no config file exists.
func Locate() string {
	for _, p := range configSearchPaths() {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// LoadLayered loads configuration with the full precedence chain:
// CLI flags > env vars > external YAML file > embedded bytes > defaults.
//
// An optional configPath argument controls external-file discovery:
//   - omitted        → auto-discover via Locate()
//   - explicit value  → use that path ("" means no external file)
//
// An explicit path that cannot be read is an error; an auto-discovered one
// is only used when it exists.
func LoadLayered(cli CLIOverrides, embedded []byte, configPath ...string) (*Config, error) {
	cfg := DefaultConfig()

	// Layer 1: embedded config (lowest priority data layer)
	if len(embedded) > 0 {
		if err := yaml.Unmarshal(embedded, cfg); err != nil {
			return nil, fmt.Errorf("parsing embedded config: %w", err)
		}
	}

	// Layer 2: external YAML file
	explicit := len(configPath) > 0
	var filePath string
	if explicit {
		filePath = configPath[0]
	} else {
		filePath = Locate()
	}
	if filePath != "" {
		data, err := os.ReadFile(filePath)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parsing config file %s: %w", filePath, err)
			}
		case explicit:
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	// Layer 3: environment variables
	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}

	// Layer 4: CLI flags (highest priority)
	if cli.Deep {
		cfg.Collection.Deep = true
	}
	if cli.TopProcesses != 0 {
		cfg.Collection.TopProcesses = cli.TopProcesses
	}
	if cli.LogLevel != "" {
		cfg.Logging.Level = cli.LogLevel
	}

	return cfg, nil
}

// Marshal serializes the effective configuration as YAML.
func (c *Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("marshaling config: %w", err)
	}
	return data, nil
}

// applyEnvOverrides applies MHC_* environment variable overrides to the configuration.
func applyEnvOverrides(cfg *Config) error {
	if level := os.Getenv("MHC_LOG_LEVEL"); level != "" {
		cfg.Logging.Level = level
	}
	if file := os.Getenv("MHC_LOG_FILE"); file != "" {
		cfg.Logging.File = file
	}
	if top := os.Getenv("MHC_TOP_PROCESSES"); top != "" {
		n, err := strconv.Atoi(top)
		if err != nil {
			return fmt.Errorf("invalid MHC_TOP_PROCESSES %q: %w", top, err)
		}
		cfg.Collection.TopProcesses = n
	}
	if deep := os.Getenv("MHC_DEEP"); deep != "" {
		b, err := strconv.ParseBool(deep)
		if err != nil {
			return fmt.Errorf("invalid MHC_DEEP %q: %w", deep, err)
		}
		cfg.Collection.Deep = b
	}
	if extra := os.Getenv("MHC_EXTRA_PATH"); extra != "" {
		cfg.Paths.Extra = splitPathList(extra)
	}
	return nil
}

func splitPathList(s string) []string {
	var dirs []string
	for _, dir := range strings.Split(s, ":") {
		if dir = strings.TrimSpace(dir); dir != "" {
			dirs = append(dirs, dir)
		}
	}
	return dirs
}

// Validate checks that the configuration can drive a run.
func (c *Config) Validate() error {
	if c.Collection.TopProcesses <= 0 {
		return fmt.Errorf("collection.top_processes must be positive (got: %d)", c.Collection.TopProcesses)
	}
	if c.Collection.InternalDevice == "" {
		return fmt.Errorf("collection.internal_device is required")
	}
	for name, d := range map[string]Duration{
		"default":      c.Timeouts.Default,
		"availability": c.Timeouts.Availability,
		"sampling":     c.Timeouts.Sampling,
	} {
		if d.Duration <= 0 {
			return fmt.Errorf("timeouts.%s must be positive (got: %s)", name, d.Duration)
		}
	}
	if !isValidFormat(c.Output.Format) {
		return fmt.Errorf("output.format must be one of %s (got: %q)", strings.Join(validFormats, ", "), c.Output.Format)
	}
	if _, err := zapcore.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("logging.level: %w", err)
	}
	return nil
}

func isValidFormat(format string) bool {
	for _, f := range validFormats {
		if f == format {
			return true
		}
	}
	return false
}
