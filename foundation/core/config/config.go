// File: config.go
// Title: Console Configuration
// Description: Typed console configuration loaded from TOML or YAML files.
//              The format is chosen by file extension, environment variables
//              in string values are expanded and defaults fill every field
//              the file leaves out.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Typed console and log sections, TOML/YAML loading

package config

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	mdwerror "github.com/msto63/devconsole/foundation/core/error"
	mdwlog "github.com/msto63/devconsole/foundation/core/log"
	mdwstringx "github.com/msto63/devconsole/foundation/utils/stringx"
)

// EnvConfigPath names the environment variable holding the config file path
const EnvConfigPath = "DEVCONSOLE_CONFIG"

// Format represents the configuration file format
type Format int

const (
	// FormatTOML represents TOML format (default)
	FormatTOML Format = iota

	// FormatYAML represents YAML format
	FormatYAML

	// FormatAuto auto-detects format from file extension
	FormatAuto
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	case FormatAuto:
		return "auto"
	default:
		return "unknown"
	}
}

// Config holds the complete console configuration
type Config struct {
	Console ConsoleConfig `toml:"console" yaml:"console"`
	Log     LogConfig     `toml:"log" yaml:"log"`

	path string
}

// ConsoleConfig holds the console behaviour settings
type ConsoleConfig struct {
	Title          string   `toml:"title" yaml:"title"`
	Prompt         string   `toml:"prompt" yaml:"prompt"`
	HistorySize    int      `toml:"history_size" yaml:"history_size"`
	ScrollbackSize int      `toml:"scrollback_size" yaml:"scrollback_size"`
	NumSuggestions int      `toml:"num_suggestions" yaml:"num_suggestions"`
	MaxInputLength int      `toml:"max_input_length" yaml:"max_input_length"`
	CommandTimeout Duration `toml:"command_timeout" yaml:"command_timeout"`
}

// LogConfig holds the logging settings
type LogConfig struct {
	Level   string `toml:"level" yaml:"level"`
	Format  string `toml:"format" yaml:"format"`
	Capture *bool  `toml:"capture" yaml:"capture"`
}

// Duration wraps time.Duration for TOML and YAML parsing
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler
func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// MarshalText implements encoding.TextMarshaler
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Defaults
const (
	DefaultTitle          = "Console"
	DefaultPrompt         = "$ "
	DefaultHistorySize    = 20
	DefaultScrollbackSize = 1000
	DefaultNumSuggestions = 4
	DefaultMaxInputLength = 4096
	DefaultCommandTimeout = 30 * time.Second
	DefaultLogLevel       = "info"
	DefaultLogFormat      = "text"
)

// Default returns the configuration used when no file is found
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads the configuration file at path, detecting the format from
// its extension
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	if mdwstringx.IsBlank(path) {
		return nil, mdwerror.New("config file path cannot be empty").
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("config.Load")
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, mdwerror.Newf("config file not found: %s", path).
			WithCode(mdwerror.CodeMissingConfig).
			WithOperation("config.Load").
			WithDetail("filePath", path)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to read config file").
			WithCode(mdwerror.CodeConfigError).
			WithOperation("config.Load").
			WithDetail("filePath", path)
	}

	format := detectFormat(path)
	cfg, err := parse(content, format)
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to parse config file").
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("config.Load").
			WithDetail("filePath", path).
			WithDetail("format", format.String())
	}
	cfg.path = path

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFromString parses configuration content in the given format
func LoadFromString(content string, format Format) (*Config, error) {
	if format == FormatAuto {
		format = FormatTOML
	}

	cfg, err := parse([]byte(content), format)
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to parse config from string").
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("config.LoadFromString").
			WithDetail("format", format.String())
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFromEnv loads the file named by DEVCONSOLE_CONFIG, or the first
// existing default location. Without any file the defaults are returned.
func LoadFromEnv() (*Config, error) {
	if path := os.Getenv(EnvConfigPath); path != "" {
		return Load(path)
	}

	for _, p := range DefaultPaths() {
		if _, err := os.Stat(p); err == nil {
			return Load(p)
		}
	}
	return Default(), nil
}

// DefaultPaths lists the locations LoadFromEnv searches, in order
func DefaultPaths() []string {
	paths := []string{
		"./configs/console.toml",
		"./console.toml",
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "devconsole", "console.toml"))
	}
	return paths
}

// detectFormat determines the configuration format from file extension
func detectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// parse decodes content and applies defaults and environment expansion
func parse(content []byte, format Format) (*Config, error) {
	var cfg Config

	switch format {
	case FormatTOML:
		if _, err := toml.Decode(string(content), &cfg); err != nil {
			return nil, mdwerror.Wrap(err, "TOML parse error").
				WithCode(mdwerror.CodeInvalidConfig).
				WithOperation("config.parse")
		}
	case FormatYAML:
		if err := yaml.Unmarshal(content, &cfg); err != nil {
			return nil, mdwerror.Wrap(err, "YAML parse error").
				WithCode(mdwerror.CodeInvalidConfig).
				WithOperation("config.parse")
		}
	default:
		return nil, mdwerror.Newf("unsupported format: %s", format).
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("config.parse").
			WithDetail("format", format.String())
	}

	cfg.applyDefaults()
	cfg.expandEnvVars()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	c.Console.Title = mdwstringx.FirstNonBlank(c.Console.Title, DefaultTitle)
	if c.Console.Prompt == "" {
		c.Console.Prompt = DefaultPrompt
	}
	if c.Console.HistorySize == 0 {
		c.Console.HistorySize = DefaultHistorySize
	}
	if c.Console.ScrollbackSize == 0 {
		c.Console.ScrollbackSize = DefaultScrollbackSize
	}
	if c.Console.NumSuggestions == 0 {
		c.Console.NumSuggestions = DefaultNumSuggestions
	}
	if c.Console.MaxInputLength == 0 {
		c.Console.MaxInputLength = DefaultMaxInputLength
	}
	if c.Console.CommandTimeout.Duration == 0 {
		c.Console.CommandTimeout.Duration = DefaultCommandTimeout
	}

	c.Log.Level = mdwstringx.FirstNonBlank(c.Log.Level, DefaultLogLevel)
	c.Log.Format = mdwstringx.FirstNonBlank(c.Log.Format, DefaultLogFormat)
	if c.Log.Capture == nil {
		capture := true
		c.Log.Capture = &capture
	}
}

func (c *Config) expandEnvVars() {
	c.Console.Title = os.ExpandEnv(c.Console.Title)
	c.Console.Prompt = os.ExpandEnv(c.Console.Prompt)
}

// Validate checks sizes and the log level and format names
func (c *Config) Validate() error {
	invalid := func(key string, value interface{}, reason string) error {
		return mdwerror.Newf("invalid value for %s: %s", key, reason).
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("config.Validate").
			WithDetail("key", key).
			WithDetail("value", value)
	}

	switch {
	case c.Console.HistorySize < 0:
		return invalid("console.history_size", c.Console.HistorySize, "must not be negative")
	case c.Console.ScrollbackSize < 0:
		return invalid("console.scrollback_size", c.Console.ScrollbackSize, "must not be negative")
	case c.Console.NumSuggestions < 0:
		return invalid("console.num_suggestions", c.Console.NumSuggestions, "must not be negative")
	case c.Console.MaxInputLength < 0:
		return invalid("console.max_input_length", c.Console.MaxInputLength, "must not be negative")
	case c.Console.CommandTimeout.Duration < 0:
		return invalid("console.command_timeout", c.Console.CommandTimeout.String(), "must not be negative")
	}

	if _, err := mdwlog.ParseLevel(c.Log.Level); err != nil {
		return invalid("log.level", c.Log.Level, err.Error())
	}
	if _, err := mdwlog.ParseFormat(c.Log.Format); err != nil {
		return invalid("log.format", c.Log.Format, err.Error())
	}
	return nil
}

// Path returns the file the configuration was loaded from, if any
func (c *Config) Path() string {
	return c.path
}

// CaptureLogs reports whether log output is mirrored into the console
func (c *Config) CaptureLogs() bool {
	return c.Log.Capture == nil || *c.Log.Capture
}

// Logger builds a logger from the log section writing to the given output
func (c *Config) Logger(name string, output io.Writer) *mdwlog.Logger {
	level, err := mdwlog.ParseLevel(c.Log.Level)
	if err != nil {
		level = mdwlog.DefaultLevel()
	}
	format, err := mdwlog.ParseFormat(c.Log.Format)
	if err != nil {
		format = mdwlog.FormatText
	}
	return mdwlog.NewWithConfig(mdwlog.Config{
		Level:  level,
		Format: format,
		Output: output,
		Name:   name,
	})
}

// Encode renders the configuration in the given format
func (c *Config) Encode(format Format) ([]byte, error) {
	var buf bytes.Buffer

	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(c); err != nil {
			return nil, mdwerror.Wrap(err, "failed to encode config").
				WithCode(mdwerror.CodeConfigError).
				WithOperation("config.Encode")
		}
		if err := enc.Close(); err != nil {
			return nil, mdwerror.Wrap(err, "failed to encode config").
				WithCode(mdwerror.CodeConfigError).
				WithOperation("config.Encode")
		}
	default:
		if err := toml.NewEncoder(&buf).Encode(c); err != nil {
			return nil, mdwerror.Wrap(err, "failed to encode config").
				WithCode(mdwerror.CodeConfigError).
				WithOperation("config.Encode")
		}
	}
	return buf.Bytes(), nil
}
