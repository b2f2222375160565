// Package config resolves runtime settings from the environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/lumieres/internal/bible"
)

// Store backends.
const (
	StoreSQLite   = "sqlite"
	StorePostgres = "postgres"
	StoreMemory   = "memory"
)

// Config holds the resolved settings. LLM settings are loaded separately by
// llm.LoadConfig.
type Config struct {
	Home        string
	Store       string
	DBPath      string
	PostgresDSN string
	PlanPath    string
	CorpusURL   string
	Debug       bool
	Location    *time.Location
}

// Load reads LUMIERES_* variables and fills in defaults under the data
// directory (default ~/.lumieres).
func Load() (*Config, error) {
	home := os.Getenv("LUMIERES_HOME")
	if home == "" {
		userHome, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("finding home directory: %w", err)
		}
		home = filepath.Join(userHome, ".lumieres")
	}

	cfg := &Config{
		Home:        home,
		Store:       strings.ToLower(strings.TrimSpace(os.Getenv("LUMIERES_STORE"))),
		DBPath:      os.Getenv("LUMIERES_DB"),
		PostgresDSN: os.Getenv("LUMIERES_POSTGRES_DSN"),
		PlanPath:    os.Getenv("LUMIERES_PLAN"),
		CorpusURL:   os.Getenv("LUMIERES_CORPUS_URL"),
		Location:    time.Local,
	}

	if cfg.Store == "" {
		cfg.Store = StoreSQLite
		if cfg.PostgresDSN != "" {
			cfg.Store = StorePostgres
		}
	}
	switch cfg.Store {
	case StoreSQLite, StoreMemory:
	case StorePostgres:
		if cfg.PostgresDSN == "" {
			return nil, fmt.Errorf("LUMIERES_STORE=postgres requires LUMIERES_POSTGRES_DSN")
		}
	default:
		return nil, fmt.Errorf("unknown LUMIERES_STORE %q (expected sqlite, postgres or memory)", cfg.Store)
	}

	if cfg.DBPath == "" {
		cfg.DBPath = filepath.Join(home, "lumieres.db")
	}
	if cfg.PlanPath == "" {
		cfg.PlanPath = defaultPlanPath(home)
	}
	if cfg.CorpusURL == "" {
		cfg.CorpusURL = bible.DefaultCorpusURL
	}

	if v := os.Getenv("LUMIERES_DEBUG"); v != "" {
		debug, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("invalid LUMIERES_DEBUG %q: %w", v, err)
		}
		cfg.Debug = debug
	}

	if tz := os.Getenv("LUMIERES_TZ"); tz != "" {
		loc, err := time.LoadLocation(tz)
		if err != nil {
			return nil, fmt.Errorf("invalid LUMIERES_TZ %q: %w", tz, err)
		}
		cfg.Location = loc
	}

	return cfg, nil
}

// defaultPlanPath picks the first existing plan file in home, preferring
// YAML.
func defaultPlanPath(home string) string {
	for _, name := range []string{"plan.yaml", "plan.yml", "plan.json"} {
		p := filepath.Join(home, name)
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return filepath.Join(home, "plan.yaml")
}
