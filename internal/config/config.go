package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment overrides, applied after config.yml. A .env file next to the
// config file is read first; variables already set in the process win.
const (
	EnvStorage  = "DEVNOTES_STORAGE"
	EnvDBPath   = "DEVNOTES_DB_PATH"
	EnvDataDir  = "DEVNOTES_DATA_DIR"
	EnvLogLevel = "DEVNOTES_LOG_LEVEL"
)

type Config struct {
	Storage          string        `yaml:"storage" validate:"oneof=sqlite dir memory"`
	DBPath           string        `yaml:"db_path" validate:"required_if=Storage sqlite"`
	DataDir          string        `yaml:"data_dir" validate:"required_if=Storage dir"`
	Theme            string        `yaml:"theme" validate:"oneof=dark light"`
	Language         string        `yaml:"language" validate:"omitempty,oneof=en it"`
	AutoSaveInterval time.Duration `yaml:"auto_save_interval" validate:"gte=0"`
	LogFile          string        `yaml:"log_file"`
	LogLevel         string        `yaml:"log_level" validate:"oneof=trace debug info warn error disabled"`
}

func exeDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	return filepath.Dir(exe)
}

func DefaultConfigPath() string {
	return filepath.Join(exeDir(), "config.yml")
}

func DefaultDBPath() string {
	return filepath.Join(exeDir(), "devnotes.db")
}

func DefaultDataDir() string {
	return filepath.Join(exeDir(), "data")
}

func DefaultLogFile() string {
	return filepath.Join(exeDir(), "devnotes.log")
}

func ConfigExists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}

func Default() *Config {
	return &Config{
		Storage:          "sqlite",
		DBPath:           DefaultDBPath(),
		DataDir:          DefaultDataDir(),
		Theme:            "dark",
		AutoSaveInterval: time.Second,
		LogFile:          DefaultLogFile(),
		LogLevel:         "info",
	}
}

func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := loadDotEnv(filepath.Join(filepath.Dir(path), ".env")); err != nil {
		return nil, err
	}
	cfg.applyEnv()

	if cfg.DBPath == "" {
		cfg.DBPath = DefaultDBPath()
	}
	if cfg.DataDir == "" {
		cfg.DataDir = DefaultDataDir()
	}
	cfg.DBPath = expandHome(cfg.DBPath)
	cfg.DataDir = expandHome(cfg.DataDir)
	cfg.LogFile = expandHome(cfg.LogFile)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadDotEnv(path string) error {
	err := godotenv.Load(path)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("failed to load %s: %w", path, err)
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvStorage); v != "" {
		c.Storage = v
	}
	if v := os.Getenv(EnvDBPath); v != "" {
		c.DBPath = v
	}
	if v := os.Getenv(EnvDataDir); v != "" {
		c.DataDir = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
}

// Validate checks field values and reports every problem in one error.
func (c *Config) Validate() error {
	validate, trans, err := newValidator()
	if err != nil {
		return err
	}
	if err := validate.Struct(c); err != nil {
		var validationErrors validator.ValidationErrors
		if !errors.As(err, &validationErrors) {
			return fmt.Errorf("failed to validate config: %w", err)
		}
		msgs := make([]string, 0, len(validationErrors))
		for _, e := range validationErrors {
			msgs = append(msgs, e.Translate(trans))
		}
		return fmt.Errorf("invalid configuration: %s", strings.Join(msgs, ", "))
	}
	return nil
}

// StoragePath is the location handed to storage.Open for the configured
// backend.
func (c *Config) StoragePath() string {
	if c.Storage == "dir" {
		return c.DataDir
	}
	return c.DBPath
}

func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

func expandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}
