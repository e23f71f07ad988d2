package repositories

import (
	"context"
	"fmt"
	"log/slog"

	portsrepo "github.com/SscSPs/bizledger/internal/core/ports/repositories"
	"github.com/SscSPs/bizledger/internal/platform/config"
	"github.com/SscSPs/bizledger/internal/repositories/database/pgsql"
	"github.com/SscSPs/bizledger/internal/repositories/memory"
	"github.com/SscSPs/bizledger/pkg/database"
)

// Open builds the repository provider for cfg.StorageDriver and returns a function
// that releases it. Postgres storage is migrated before use.
func Open(ctx context.Context, cfg *config.Config, log *slog.Logger) (portsrepo.RepositoryProvider, func(), error) {
	switch cfg.StorageDriver {
	case config.StorageDriverMemory:
		log.Warn("Using in-memory storage; data is lost on exit")
		return memory.NewRepositoryProvider(memory.NewStore()), func() {}, nil
	case config.StorageDriverPostgres:
		pool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns)
		if err != nil {
			return portsrepo.RepositoryProvider{}, nil, err
		}

		log.Info("Running database migrations...", slog.String("path", cfg.MigrationsPath))
		if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
			database.ClosePgxPool(pool)
			return portsrepo.RepositoryProvider{}, nil, err
		}

		return pgsql.NewRepositoryProvider(pool, cfg.DBRetryMaxElapsed), func() { database.ClosePgxPool(pool) }, nil
	default:
		return portsrepo.RepositoryProvider{}, nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
}
