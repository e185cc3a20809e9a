package app

import (
	"os"
	"path/filepath"

	"bloomarc/internal/report"
	"bloomarc/internal/store"
)

// Wire bundles resolved configuration and lazily opened stores for the CLI.
type Wire struct {
	Config Config
}

// NewWire prepares the dependency graph from cfg, creating the data
// directory.
func NewWire(cfg Config) (*Wire, error) {
	if err := os.MkdirAll(cfg.Home, 0o700); err != nil {
		return nil, err
	}
	return &Wire{Config: cfg}, nil
}

// OpenHistory opens the run-history store. LevelDB is single-writer, so only
// commands that record or list runs open it, and they close it when done.
func (w *Wire) OpenHistory() (*store.History, error) {
	return store.Open(filepath.Join(w.Config.Home, "history"))
}

// Options returns the report options configured for this run.
func (w *Wire) Options() report.Options {
	return report.Options{
		Steps:     w.Config.Steps,
		BurnIn:    w.Config.BurnIn,
		Bins:      w.Config.Bins,
		BlendMode: w.Config.BlendMode,
	}
}
