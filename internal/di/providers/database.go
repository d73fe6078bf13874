package providers

import (
	"github.com/samber/do/v2"

	"github.com/riverandeye/spotserver/internal/config"
	"github.com/riverandeye/spotserver/internal/logger"
	"github.com/riverandeye/spotserver/internal/store"
)

// StoreHandle wraps the store with shutdown capability.
type StoreHandle struct {
	*store.DB
}

// Shutdown implements do.Shutdownable.
func (h *StoreHandle) Shutdown() error {
	return h.Close()
}

// ProvideStore provides the document store.
func ProvideStore(i do.Injector) (*StoreHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	db, err := store.Open(cfg.Store.DataPath, log.Logger)
	if err != nil {
		return nil, err
	}

	log.Info("Database initialized", "path", cfg.Store.DataPath)

	return &StoreHandle{DB: db}, nil
}
