package app

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/openhire/openhire/internal/config"
	"github.com/openhire/openhire/internal/notify"
	"github.com/openhire/openhire/internal/store"
	"github.com/openhire/openhire/internal/workflow"
)

// App is the dependency container for the CLI application
type App struct {
	Store   store.Store
	Config  *config.Config
	Bus     *notify.Bus
	Service *workflow.Service

	closer interface{ Close() error }
}

// NewApp initializes and returns a new App instance
func NewApp(ctx context.Context) (*App, error) {
	// Initialize config
	if err := config.Initialize(); err != nil {
		return nil, fmt.Errorf("failed to initialize config: %w", err)
	}

	st, closer, err := openStore(config.AppConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}

	bus := notify.NewBus()

	return &App{
		Store:   st,
		Config:  config.AppConfig,
		Bus:     bus,
		Service: workflow.New(st, bus),
		closer:  closer,
	}, nil
}

// Close closes all resources
func (a *App) Close() error {
	if a.closer != nil {
		return a.closer.Close()
	}
	return nil
}

// openStore picks the configured Store backend.
func openStore(cfg *config.Config) (store.Store, interface{ Close() error }, error) {
	switch cfg.StoreBackend {
	case "memory":
		return store.NewMemory(), nil, nil
	case "sqlite", "":
		dbPath := filepath.Join(cfg.DataDir, "openhire.db")
		s, err := store.OpenSQLite(dbPath)
		if err != nil {
			return nil, nil, err
		}
		return s, s, nil
	default:
		return nil, nil, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
	}
}
