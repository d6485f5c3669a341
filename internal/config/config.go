// Package config handles the XDG configuration directory and user settings.
package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"todo/internal/service"
)

const (
	// AppName is the application directory name.
	AppName = "todo"

	// SettingsFile is the YAML settings filename.
	SettingsFile = "config.yaml"

	// EnvFile holds environment overrides in dotenv format.
	EnvFile = ".env"
)

// Environment variables that override settings.
const (
	EnvDateLayout      = "TODO_DATE_LAYOUT"
	EnvDefaultPriority = "TODO_DEFAULT_PRIORITY"
	EnvSeed            = "TODO_SEED"
	EnvDebug           = "TODO_DEBUG"
)

// Config holds configuration paths and settings.
type Config struct {
	// Dir is the configuration directory path.
	Dir string

	// Debug enables debug logging.
	Debug bool

	// Quiet suppresses informational output.
	Quiet bool

	// DateLayout is the Go time layout for task creation dates.
	DateLayout string

	// DefaultPriority is used by add when no priority is given.
	DefaultPriority service.Priority

	// Seed populates new stores with the example tasks.
	Seed bool
}

// settings mirrors config.yaml. Pointers distinguish unset from zero.
type settings struct {
	DateLayout      *string `yaml:"date_layout"`
	DefaultPriority *string `yaml:"default_priority"`
	Seed            *bool   `yaml:"seed"`
	Debug           *bool   `yaml:"debug"`
}

// LookupFunc reads an environment variable.
type LookupFunc func(key string) (string, bool)

// New creates a Config with default settings and the default or specified config directory.
// If configDir is empty, uses XDG_CONFIG_HOME/todo or $HOME/.config/todo.
func New(configDir string) (*Config, error) {
	dir := configDir
	if dir == "" {
		dir = DefaultConfigDir()
	}
	return &Config{
		Dir:             dir,
		DateLayout:      service.DefaultDateLayout,
		DefaultPriority: service.PriorityMedium,
		Seed:            true,
	}, nil
}

// Load creates a Config and applies config.yaml, .env and the process environment.
func Load(configDir string) (*Config, error) {
	return LoadWithEnv(configDir, os.LookupEnv)
}

// LoadWithEnv is Load with an injectable environment.
// Precedence: defaults < config.yaml < .env < environment.
func LoadWithEnv(configDir string, lookup LookupFunc) (*Config, error) {
	cfg, err := New(configDir)
	if err != nil {
		return nil, err
	}

	if err := cfg.loadSettings(); err != nil {
		return nil, err
	}

	dotenv, err := cfg.readEnvFile()
	if err != nil {
		return nil, err
	}

	env := func(key string) (string, bool) {
		if v, ok := lookup(key); ok {
			return v, true
		}
		v, ok := dotenv[key]
		return v, ok
	}
	if err := cfg.applyEnv(env); err != nil {
		return nil, err
	}

	return cfg, nil
}

// DefaultConfigDir returns the default configuration directory.
// Uses XDG_CONFIG_HOME if set, otherwise $HOME/.config.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home can't be determined
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}

// SettingsPath returns the path to config.yaml.
func (c *Config) SettingsPath() string {
	return filepath.Join(c.Dir, SettingsFile)
}

// EnvPath returns the path to the .env file.
func (c *Config) EnvPath() string {
	return filepath.Join(c.Dir, EnvFile)
}

func (c *Config) loadSettings() error {
	data, err := os.ReadFile(c.SettingsPath())
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return errors.Wrapf(err, "failed to read %s", SettingsFile)
	}

	var s settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return errors.Wrapf(err, "invalid %s", SettingsFile)
	}

	if s.DateLayout != nil && *s.DateLayout != "" {
		c.DateLayout = *s.DateLayout
	}
	if s.DefaultPriority != nil {
		p, err := service.ParsePriority(*s.DefaultPriority)
		if err != nil {
			return errors.Wrapf(err, "invalid %s: default_priority", SettingsFile)
		}
		c.DefaultPriority = p
	}
	if s.Seed != nil {
		c.Seed = *s.Seed
	}
	if s.Debug != nil {
		c.Debug = *s.Debug
	}
	return nil
}

func (c *Config) readEnvFile() (map[string]string, error) {
	path := c.EnvPath()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, nil
	}
	vars, err := godotenv.Read(path)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid %s", EnvFile)
	}
	return vars, nil
}

func (c *Config) applyEnv(lookup LookupFunc) error {
	if v, ok := lookup(EnvDateLayout); ok && v != "" {
		c.DateLayout = v
	}
	if v, ok := lookup(EnvDefaultPriority); ok && v != "" {
		p, err := service.ParsePriority(v)
		if err != nil {
			return errors.Wrapf(err, "invalid %s", EnvDefaultPriority)
		}
		c.DefaultPriority = p
	}
	if v, ok := lookup(EnvSeed); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return errors.Wrapf(err, "invalid %s", EnvSeed)
		}
		c.Seed = b
	}
	if v, ok := lookup(EnvDebug); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return errors.Wrapf(err, "invalid %s", EnvDebug)
		}
		c.Debug = b
	}
	return nil
}
