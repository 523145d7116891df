package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/alexanderramin/neurosprint/internal/domain"
	"gopkg.in/yaml.v3"
)

// DefaultStateKey is the key the planner document is stored under.
const DefaultStateKey = "neurosprint-planner"

// Config holds runtime configuration for neurosprint.
type Config struct {
	DataDir            string `yaml:"data_dir"`
	DBPath             string `yaml:"db_path"`
	LogDir             string `yaml:"log_dir"`
	ExportDir          string `yaml:"export_dir"`
	Debug              bool   `yaml:"debug"`
	DefaultSprintWeeks int    `yaml:"default_sprint_weeks"`
	DefaultBudgetHours int    `yaml:"default_budget_hours"`
	StateKey           string `yaml:"state_key"`
	MaxBackups         int    `yaml:"max_backups"`
}

// DefaultConfig returns the configuration rooted at dataDir.
func DefaultConfig(dataDir string) Config {
	return Config{
		DataDir:            dataDir,
		DBPath:             filepath.Join(dataDir, "neurosprint.db"),
		LogDir:             filepath.Join(dataDir, "logs"),
		ExportDir:          filepath.Join(dataDir, "exports"),
		DefaultSprintWeeks: domain.DefaultSprintWeeks,
		DefaultBudgetHours: domain.DefaultBudgetHours,
		StateKey:           DefaultStateKey,
		MaxBackups:         10,
	}
}

// DefaultDataDir is ~/.neurosprint.
func DefaultDataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, ".neurosprint"), nil
}

// LoadConfig builds the configuration from defaults, then the YAML file,
// then environment variables. The file is NEUROSPRINT_CONFIG or
// <data dir>/config.yaml; a missing file is fine, a malformed one is not.
func LoadConfig() (Config, error) {
	dataDir := os.Getenv("NEUROSPRINT_HOME")
	if dataDir == "" {
		var err error
		dataDir, err = DefaultDataDir()
		if err != nil {
			return Config{}, err
		}
	}
	cfg := DefaultConfig(dataDir)

	path := os.Getenv("NEUROSPRINT_CONFIG")
	if path == "" {
		path = filepath.Join(dataDir, "config.yaml")
	}
	if err := cfg.mergeFile(path); err != nil {
		return Config{}, err
	}

	applyEnv(&cfg)
	return cfg, nil
}

func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing config %s: %w", path, err)
	}
	return nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("NEUROSPRINT_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("NEUROSPRINT_LOG_DIR"); v != "" {
		cfg.LogDir = v
	}
	if v := os.Getenv("NEUROSPRINT_EXPORT_DIR"); v != "" {
		cfg.ExportDir = v
	}
	if v := os.Getenv("NEUROSPRINT_DEBUG"); v != "" {
		cfg.Debug, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("NEUROSPRINT_SPRINT_WEEKS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.DefaultSprintWeeks = n
		}
	}
	if v := os.Getenv("NEUROSPRINT_STATE_KEY"); v != "" {
		cfg.StateKey = v
	}
}

// Validate rejects values the rest of the program cannot work with.
func (c Config) Validate() error {
	if c.DBPath == "" {
		return errors.New("config: db_path must not be empty")
	}
	if c.StateKey == "" {
		return errors.New("config: state_key must not be empty")
	}
	if c.DefaultSprintWeeks < 1 {
		return fmt.Errorf("config: default_sprint_weeks must be at least 1, got %d", c.DefaultSprintWeeks)
	}
	if c.DefaultBudgetHours < 1 {
		return fmt.Errorf("config: default_budget_hours must be at least 1, got %d", c.DefaultBudgetHours)
	}
	return nil
}
