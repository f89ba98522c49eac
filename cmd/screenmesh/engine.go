package main

import (
	"fmt"

	"github.com/hupe1980/screenmesh/archive"
	"github.com/hupe1980/screenmesh/config"
	"github.com/hupe1980/screenmesh/core"
	"github.com/hupe1980/screenmesh/logging"
	"github.com/hupe1980/screenmesh/memory"
	"github.com/hupe1980/screenmesh/memory/sqlite"
	"github.com/hupe1980/screenmesh/orchestrator"
)

// newLogger builds the structured logger from config.
func newLogger(cfg *config.Config) logging.Logger {
	level := logging.LogLevelInfo
	switch cfg.Log.Level {
	case "debug":
		level = logging.LogLevelDebug
	case "warn":
		level = logging.LogLevelWarn
	case "error":
		level = logging.LogLevelError
	}
	return logging.NewSlogLogger(level, cfg.Log.Format, false)
}

// newEngine wires the orchestrator from config: session store backend,
// report archive retention and pipeline defaults. The returned cleanup
// releases backend resources and must be called when done.
func newEngine(cfg *config.Config) (*orchestrator.Orchestrator, func() error, error) {
	logger := newLogger(cfg)
	cleanup := func() error { return nil }

	var store core.MemoryStore
	switch cfg.Memory.Backend {
	case "sqlite":
		s, err := sqlite.NewStore(cfg.Memory.Path)
		if err != nil {
			return nil, nil, fmt.Errorf("opening session store: %w", err)
		}
		store = s
		cleanup = s.Close
	default:
		store = memory.NewInMemoryStore()
	}

	engine := orchestrator.New(func(o *orchestrator.Options) {
		o.MemoryStore = store
		o.Archive = archive.NewInMemoryStoreWithRetention(cfg.Pipeline.ArchiveRetention)
		o.Logger = logger
		o.DefaultLibrarySize = cfg.Pipeline.DefaultLibrarySize
		o.DefaultTopN = cfg.Pipeline.DefaultTopN
	})
	return engine, cleanup, nil
}
