package app

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
)

// Config holds runtime options for building the app. Every field has an
// environment override so scripted runs can pin simulation parameters
// without flags.
type Config struct {
	Home      string `env:"BLOOMARC_HOME"`                              // data directory, e.g. $HOME/.bloomarc
	Steps     int    `env:"BLOOMARC_STEPS" envDefault:"2000000"`        // trajectory iterations
	BurnIn    int    `env:"BLOOMARC_BURN_IN" envDefault:"1000"`         // transient points discarded
	Bins      int    `env:"BLOOMARC_BINS" envDefault:"512"`             // density grid resolution
	BlendMode string `env:"BLOOMARC_BLEND_MODE" envDefault:"composite"` // composite or first
}

// ConfigFromEnv parses configuration from the environment, defaulting Home
// to ~/.bloomarc.
func ConfigFromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.Home == "" {
		dir, err := os.UserHomeDir()
		if err != nil {
			return Config{}, err
		}
		cfg.Home = filepath.Join(dir, ".bloomarc")
	}
	return cfg, nil
}
