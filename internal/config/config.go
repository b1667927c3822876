package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/BurntSushi/toml"
)

// EnvVar names the environment variable that points at a config file.
const EnvVar = "MONKEY_CONFIG"

// Shell modes.
const (
	ModeTokens = "tokens"
	ModeAST    = "ast"
	ModeFmt    = "fmt"
)

// Modes lists the accepted shell modes.
var Modes = []string{ModeTokens, ModeAST, ModeFmt}

// Config holds the complete application configuration
type Config struct {
	Shell   ShellConfig   `toml:"shell"`
	Format  FormatConfig  `toml:"format"`
	Logging LoggingConfig `toml:"logging"`
}

// ShellConfig holds interactive shell settings
type ShellConfig struct {
	Prompt      string `toml:"prompt"`
	Mode        string `toml:"mode"`
	Color       string `toml:"color"` // auto, always or never
	HistoryFile string `toml:"history_file"`
}

// FormatConfig holds source formatting settings
type FormatConfig struct {
	Indent *int `toml:"indent"`
}

// LoggingConfig holds logger settings
type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // text or json
}

// Default returns a configuration with every default applied.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from a TOML file
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return &cfg, nil
}

// LoadFromEnv loads configuration from the MONKEY_CONFIG environment variable.
// Without it the default locations are tried, and when none exists the
// defaults are returned.
func LoadFromEnv() (*Config, error) {
	if path := os.Getenv(EnvVar); path != "" {
		return Load(path)
	}

	for _, p := range defaultPaths() {
		if _, err := os.Stat(p); err == nil {
			return Load(p)
		}
	}
	return Default(), nil
}

func defaultPaths() []string {
	paths := []string{"./monkey.toml"}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "monkey", "config.toml"))
	}
	return paths
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	// Shell
	if c.Shell.Prompt == "" {
		c.Shell.Prompt = ">> "
	}
	if c.Shell.Mode == "" {
		c.Shell.Mode = ModeTokens
	}
	if c.Shell.Color == "" {
		c.Shell.Color = "auto"
	}
	if c.Shell.HistoryFile == "" {
		if home, err := os.UserHomeDir(); err == nil {
			c.Shell.HistoryFile = filepath.Join(home, ".monkey_history")
		}
	} else {
		c.Shell.HistoryFile = os.ExpandEnv(c.Shell.HistoryFile)
	}

	// Format
	if c.Format.Indent == nil {
		indent := 2
		c.Format.Indent = &indent
	}

	// Logging
	if c.Logging.Level == "" {
		c.Logging.Level = "warn"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "text"
	}
}

// Validate reports the first setting that holds an unsupported value.
func (c *Config) Validate() error {
	if !slices.Contains(Modes, c.Shell.Mode) {
		return fmt.Errorf("shell.mode %q must be one of %v", c.Shell.Mode, Modes)
	}
	if !slices.Contains([]string{"auto", "always", "never"}, c.Shell.Color) {
		return fmt.Errorf("shell.color %q must be auto, always or never", c.Shell.Color)
	}
	if c.Format.Indent != nil && *c.Format.Indent < 0 {
		return fmt.Errorf("format.indent must not be negative, got %d", *c.Format.Indent)
	}
	if !slices.Contains([]string{"debug", "info", "warn", "error"}, c.Logging.Level) {
		return fmt.Errorf("logging.level %q must be debug, info, warn or error", c.Logging.Level)
	}
	if !slices.Contains([]string{"text", "json"}, c.Logging.Format) {
		return fmt.Errorf("logging.format %q must be text or json", c.Logging.Format)
	}
	return nil
}
