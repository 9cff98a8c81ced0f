// Package config handles the XDG configuration directory, the optional
// config.yaml file and environment overrides.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// AppName is the application directory name.
	AppName = "todos"

	// ConfigFile is the optional settings filename inside the config dir.
	ConfigFile = "config.yaml"

	// StoreFile is the file backend's data filename.
	StoreFile = "store.json"

	// DatabaseFile is the sqlite backend's database filename.
	DatabaseFile = "todos.db"

	// DefaultKey is the storage key of the default task list.
	DefaultKey = "todos"
)

// Backend names.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// Policies for a persisted record that cannot be decoded.
const (
	OnCorruptReset = "reset"
	OnCorruptFail  = "fail"
)

// Environment variable overrides.
const (
	EnvBackend = "TODOS_BACKEND"
	EnvKey     = "TODOS_KEY"
)

// ErrInvalid marks a configuration value that is not accepted.
var ErrInvalid = errors.New("invalid configuration")

// Config holds configuration paths and settings.
type Config struct {
	// Dir is the configuration directory path.
	Dir string `yaml:"-"`

	// Backend selects the storage backend: "file" or "sqlite".
	Backend string `yaml:"backend"`

	// Key is the storage key of the default task list.
	Key string `yaml:"key"`

	// OnCorrupt is "reset" or "fail".
	OnCorrupt string `yaml:"on_corrupt"`

	// Debug enables debug logging.
	Debug bool `yaml:"-"`

	// Quiet suppresses informational output.
	Quiet bool `yaml:"-"`

	// Logger receives diagnostics. Never nil after New.
	Logger *slog.Logger `yaml:"-"`
}

// New creates a Config for the default or specified config directory,
// applying config.yaml (if present) and then environment overrides.
// If configDir is empty, uses XDG_CONFIG_HOME/todos or $HOME/.config/todos.
func New(configDir string) (*Config, error) {
	dir := configDir
	if dir == "" {
		dir = DefaultConfigDir()
	}
	cfg := Default(dir)

	if err := cfg.loadFile(); err != nil {
		return nil, err
	}
	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default returns a Config with built-in defaults rooted at dir.
func Default(dir string) *Config {
	return &Config{
		Dir:       dir,
		Backend:   BackendFile,
		Key:       DefaultKey,
		OnCorrupt: OnCorruptReset,
		Logger:    slog.New(slog.DiscardHandler),
	}
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

func (c *Config) loadFile() error {
	data, err := os.ReadFile(c.FilePath())
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read config %s: %w", c.FilePath(), err)
	}

	var fileCfg Config
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return fmt.Errorf("parse config %s: %w", c.FilePath(), err)
	}

	// Only fields present in the file override defaults
	if fileCfg.Backend != "" {
		c.Backend = fileCfg.Backend
	}
	if fileCfg.Key != "" {
		c.Key = fileCfg.Key
	}
	if fileCfg.OnCorrupt != "" {
		c.OnCorrupt = fileCfg.OnCorrupt
	}
	return nil
}

func (c *Config) applyEnv() {
	if v := strings.TrimSpace(os.Getenv(EnvBackend)); v != "" {
		c.Backend = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvKey)); v != "" {
		c.Key = v
	}
}

// Validate checks enumerated settings.
func (c *Config) Validate() error {
	switch c.Backend {
	case BackendFile, BackendSQLite:
	default:
		return fmt.Errorf("%w: unknown backend: %s", ErrInvalid, c.Backend)
	}
	switch c.OnCorrupt {
	case OnCorruptReset, OnCorruptFail:
	default:
		return fmt.Errorf("%w: unknown on_corrupt policy: %s", ErrInvalid, c.OnCorrupt)
	}
	if strings.TrimSpace(c.Key) == "" {
		return fmt.Errorf("%w: empty key", ErrInvalid)
	}
	return nil
}

// FilePath returns the path to config.yaml.
func (c *Config) FilePath() string {
	return filepath.Join(c.Dir, ConfigFile)
}

// StorePath returns the path to the file backend's data file.
func (c *Config) StorePath() string {
	return filepath.Join(c.Dir, StoreFile)
}

// DatabasePath returns the path to the sqlite database.
func (c *Config) DatabasePath() string {
	return filepath.Join(c.Dir, DatabaseFile)
}

// EnsureDir creates the config directory if it doesn't exist.
// Directory is created with mode 0700.
func (c *Config) EnsureDir() error {
	return os.MkdirAll(c.Dir, 0700)
}
