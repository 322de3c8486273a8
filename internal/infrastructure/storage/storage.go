// Package storage selecciona el backend de persistencia según STORAGE_DRIVER.
package storage

import (
	"context"
	"fmt"

	"github.com/jhoicas/agro-inventario-api/internal/application/inventory"
	"github.com/jhoicas/agro-inventario-api/internal/domain/repository"
	"github.com/jhoicas/agro-inventario-api/internal/infrastructure/memory"
	"github.com/jhoicas/agro-inventario-api/internal/infrastructure/postgres"
	"github.com/jhoicas/agro-inventario-api/pkg/config"
	"github.com/jhoicas/agro-inventario-api/pkg/logger"
)

// Backend unidad de trabajo más repositorios fuera de transacción. Close libera recursos.
type Backend struct {
	TxRunner inventory.TxRunner
	Repos    repository.Repositories
	Close    func()
}

// Open construye el backend configurado. Con postgres y DB_AUTO_MIGRATE aplica el esquema.
func Open(ctx context.Context, cfg *config.Config, log *logger.Logger) (*Backend, error) {
	switch cfg.Storage.Driver {
	case config.StorageDriverMemory:
		store := memory.NewDemo()
		log.Warn().Msg("STORAGE_DRIVER=memory: datos en memoria, se pierden al reiniciar")
		return &Backend{TxRunner: store, Repos: store.Repositories(), Close: func() {}}, nil

	case config.StorageDriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, fmt.Errorf("conexión a PostgreSQL: %w", err)
		}
		if cfg.DB.AutoMigrate {
			if err := postgres.EnsureSchema(ctx, pool); err != nil {
				pool.Close()
				return nil, err
			}
			log.Info().Msg("esquema aplicado")
		}
		return &Backend{
			TxRunner: postgres.NewTxRunner(pool),
			Repos:    postgres.NewRepositories(pool),
			Close:    pool.Close,
		}, nil
	}
	return nil, fmt.Errorf("STORAGE_DRIVER desconocido: %q", cfg.Storage.Driver)
}
