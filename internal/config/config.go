// Package config loads ledger settings from YAML, an optional .env file and the environment
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment overrides
const (
	EnvDataDir  = "LEDGER_DATA_DIR"
	EnvLogLevel = "LEDGER_LOG_LEVEL"
	EnvNoColor  = "NO_COLOR"
)

// Defaults match the file names the managers have always used
const (
	DefaultStudentDB = "students.db"
	DefaultProductDB = "products.db"
	DefaultLogFile   = "ledger.log"
	DefaultLogLevel  = "info"
)

// Config represents the application configuration
type Config struct {
	DataDir     string      `yaml:"data_dir"`
	StudentDB   string      `yaml:"student_db"`
	ProductDB   string      `yaml:"product_db"`
	Color       bool        `yaml:"color"`
	Log         LogConfig   `yaml:"log"`
	ColorScheme ColorScheme `yaml:"theme"`
}

// LogConfig controls the rotating log file
type LogConfig struct {
	Level      string `yaml:"level"`
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
	Compress   bool   `yaml:"compress"`
}

// Default returns the configuration used when no file exists
func Default() *Config {
	return &Config{
		DataDir:   ".",
		StudentDB: DefaultStudentDB,
		ProductDB: DefaultProductDB,
		Color:     true,
		Log: LogConfig{
			Level:      DefaultLogLevel,
			File:       DefaultLogFile,
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 28,
			Compress:   true,
		},
		ColorScheme: DefaultColorScheme(),
	}
}

// Load reads the config at path, or at the default location when path is
// empty. A missing file is not an error and yields the defaults.
// Environment variables (including those from ./.env) override file values.
func Load(path string) (*Config, error) {
	if err := loadDotEnv(".env"); err != nil {
		return nil, err
	}

	config := Default()

	explicit := path != ""
	if !explicit {
		// Can't determine config path; defaults plus environment
		path, _ = getConfigPath()
	}

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			// Unmarshal over the defaults so absent keys keep their default value
			if err := yaml.Unmarshal(data, config); err != nil {
				return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
			}
		case errors.Is(err, os.ErrNotExist) && !explicit:
			// No config file; defaults
		default:
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	config.applyEnv()
	config.applyDefaults()

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Save writes the config as YAML to path, creating its directory
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o644)
}

// Validate reports settings that cannot work
func (c *Config) Validate() error {
	switch c.Log.Level {
	case "trace", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level %q (must be: trace, debug, info, warn, error)", c.Log.Level)
	}
	if c.Log.MaxSizeMB < 0 || c.Log.MaxBackups < 0 || c.Log.MaxAgeDays < 0 {
		return fmt.Errorf("log rotation settings cannot be negative")
	}
	return nil
}

// StudentDBPath is the student database file, resolved against DataDir
func (c *Config) StudentDBPath() string {
	return c.resolve(c.StudentDB)
}

// ProductDBPath is the product database file, resolved against DataDir
func (c *Config) ProductDBPath() string {
	return c.resolve(c.ProductDB)
}

// LogFilePath is the log file, resolved against DataDir
func (c *Config) LogFilePath() string {
	return c.resolve(c.Log.File)
}

func (c *Config) resolve(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(c.DataDir, name)
}

// DefaultPath returns where Load looks when no path is given
func DefaultPath() (string, error) {
	return getConfigPath()
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "ledger", "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "ledger", "config.yaml"), nil
}

// loadDotEnv loads KEY=value pairs from file into the process environment.
// Variables already set win; a missing file is ignored.
func loadDotEnv(file string) error {
	if err := godotenv.Load(file); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to load %s: %w", file, err)
	}
	return nil
}

// applyEnv applies environment overrides
func (c *Config) applyEnv() {
	if dir := os.Getenv(EnvDataDir); dir != "" {
		c.DataDir = dir
	}
	if level := os.Getenv(EnvLogLevel); level != "" {
		c.Log.Level = level
	}
	if _, ok := os.LookupEnv(EnvNoColor); ok {
		c.Color = false
	}
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	d := Default()
	if c.DataDir == "" {
		c.DataDir = d.DataDir
	}
	if c.StudentDB == "" {
		c.StudentDB = d.StudentDB
	}
	if c.ProductDB == "" {
		c.ProductDB = d.ProductDB
	}
	if c.Log.Level == "" {
		c.Log.Level = d.Log.Level
	}
	if c.Log.File == "" {
		c.Log.File = d.Log.File
	}
	c.ColorScheme.ApplyDefaults()
}
