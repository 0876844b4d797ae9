// Package config loads application settings from BOKIBATTLE_* environment
// variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/abhisek/bokibattle/internal/battle"
	"github.com/abhisek/bokibattle/internal/store"
)

// EnvPrefix prefixes every application environment variable.
const EnvPrefix = "BOKIBATTLE_"

// Config holds application settings. LLM settings live in llm.Config.
type Config struct {
	// DBPath overrides the database location. Empty resolves through
	// store.DefaultDBPath.
	DBPath string `env:"DB"`

	PlayerName string `env:"PLAYER_NAME" envDefault:"プレイヤー"`
	Prefecture string `env:"PREFECTURE" envDefault:"未設定"`

	// Tick is the battle clock resolution.
	Tick time.Duration `env:"TICK" envDefault:"100ms"`

	// Seed makes problem generation reproducible. Zero seeds from entropy.
	Seed uint64 `env:"SEED"`

	// AIShare is the fraction of journal problems requested from the LLM
	// generator when a provider is configured.
	AIShare float64 `env:"AI_SHARE" envDefault:"0"`

	// LogFile receives the TUI's log output. Empty places
	// bokibattle.log next to the database.
	LogFile string `env:"LOG_FILE"`
}

// Load parses a Config from environ, a map of environment variables. A
// nil environ reads the process environment.
func Load(environ map[string]string) (Config, error) {
	var cfg Config
	opts := env.Options{Prefix: EnvPrefix, Environment: environ}
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// FromEnv loads the Config from the process environment.
func FromEnv() (Config, error) {
	return Load(nil)
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if c.Tick <= 0 {
		return fmt.Errorf("%sTICK must be positive, got %s", EnvPrefix, c.Tick)
	}
	if c.AIShare < 0 || c.AIShare > 1 {
		return fmt.Errorf("%sAI_SHARE must be within [0, 1], got %g", EnvPrefix, c.AIShare)
	}
	return nil
}

// Profile returns the player profile stored on recorded runs.
func (c Config) Profile() battle.Profile {
	p := battle.DefaultProfile
	if c.PlayerName != "" {
		p.Name = c.PlayerName
	}
	if c.Prefecture != "" {
		p.Prefecture = c.Prefecture
	}
	return p
}

// ResolveDBPath returns the database path, creating its directory.
func (c Config) ResolveDBPath() (string, error) {
	if c.DBPath == "" {
		return store.DefaultDBPath()
	}
	if err := os.MkdirAll(filepath.Dir(c.DBPath), 0o755); err != nil {
		return "", fmt.Errorf("create data dir: %w", err)
	}
	return c.DBPath, nil
}

// LogPath returns where the TUI writes its log given the resolved
// database path.
func (c Config) LogPath(dbPath string) string {
	if c.LogFile != "" {
		return c.LogFile
	}
	return filepath.Join(filepath.Dir(dbPath), "bokibattle.log")
}

// Seeds returns the generator seed pair and whether seeding was
// requested.
func (c Config) Seeds() (uint64, uint64, bool) {
	if c.Seed == 0 {
		return 0, 0, false
	}
	return c.Seed, c.Seed ^ 0x9e3779b97f4a7c15, true
}
