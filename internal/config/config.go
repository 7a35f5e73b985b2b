// Package config loads lessonsmith settings from defaults, an optional YAML
// file, and LESSONSMITH_* environment variables, in that order.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/alexanderramin/lessonsmith/internal/app"
	"gopkg.in/yaml.v3"
)

// RequestDefaults fill request fields the user leaves unset.
type RequestDefaults struct {
	Grade       string `yaml:"grade"`
	Space       string `yaml:"space"`
	DurationMin int    `yaml:"duration_min"`
}

// Config holds all lessonsmith settings.
type Config struct {
	DBPath      string `yaml:"db"`
	CatalogPath string `yaml:"catalog"`
	// Seed fixes generation randomness; zero means time-derived.
	Seed          int64 `yaml:"seed"`
	LogUseCases   bool  `yaml:"log_use_cases"`
	MaxCandidates int   `yaml:"max_candidates"`
	// ArchiveHistory caps how many archived titles feed lesson history.
	ArchiveHistory int             `yaml:"archive_history"`
	Defaults       RequestDefaults `yaml:"defaults"`
}

// Dir is the per-user state directory, ~/.lessonsmith.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, ".lessonsmith"), nil
}

// DefaultConfig returns the built-in settings. The catalog path is empty,
// which selects the embedded catalog.
func DefaultConfig() Config {
	dbPath := "lessonsmith.db"
	if dir, err := Dir(); err == nil {
		dbPath = filepath.Join(dir, "lessonsmith.db")
	}
	return Config{
		DBPath:         dbPath,
		MaxCandidates:  app.DefaultMaxCandidates,
		ArchiveHistory: 20,
		Defaults: RequestDefaults{
			Grade:       "5학년",
			Space:       "체육관",
			DurationMin: 40,
		},
	}
}

// LoadConfig applies the YAML file named by LESSONSMITH_CONFIG (or
// ~/.lessonsmith/config.yaml when present) over the defaults, then the
// environment overrides. An explicitly named file must exist.
func LoadConfig() (Config, error) {
	cfg := DefaultConfig()

	path, explicit := os.LookupEnv("LESSONSMITH_CONFIG")
	if !explicit || path == "" {
		explicit = false
		if dir, err := Dir(); err == nil {
			path = filepath.Join(dir, "config.yaml")
		}
	}
	if path != "" {
		if err := applyFile(&cfg, path); err != nil {
			if explicit || !errors.Is(err, fs.ErrNotExist) {
				return cfg, err
			}
		}
	}

	applyEnv(&cfg)
	return cfg, nil
}

func applyFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config %s: %w", path, err)
	}
	return nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("LESSONSMITH_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("LESSONSMITH_CATALOG"); v != "" {
		cfg.CatalogPath = v
	}
	if v := os.Getenv("LESSONSMITH_SEED"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.Seed = n
		}
	}
	if v := os.Getenv("LESSONSMITH_LOG_USE_CASES"); v != "" {
		cfg.LogUseCases, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("LESSONSMITH_MAX_CANDIDATES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.MaxCandidates = n
		}
	}
	if v := os.Getenv("LESSONSMITH_ARCHIVE_HISTORY"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.ArchiveHistory = n
		}
	}
}
