package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"assetverse/contexts/asset-management/asset-service/adapters/memory"
	mongoadapter "assetverse/contexts/asset-management/asset-service/adapters/mongo"
	postgresadapter "assetverse/contexts/asset-management/asset-service/adapters/postgres"
	"assetverse/contexts/asset-management/asset-service/ports"
	"assetverse/internal/platform/config"
	"assetverse/internal/platform/db"
)

// Repository is the full persistence surface every store driver provides.
type Repository interface {
	ports.UserRepository
	ports.AssetRepository
	ports.RequestRepository
	ports.AffiliationRepository
	ports.PaymentRepository
	ports.PackageRepository
	ports.OutboxRepository
	Ping(ctx context.Context) error
}

// Store is an opened persistence backend plus the identity and time sources
// that match it.
type Store struct {
	Driver string
	Repo   Repository
	Clock  ports.Clock
	IDs    ports.IDGenerator

	migrate func(ctx context.Context) error
	close   func(ctx context.Context) error
}

// OpenStore connects the driver selected by STORE_DRIVER. The memory driver
// never fails and keeps state for the life of the process only.
func OpenStore(ctx context.Context, cfg config.Config, logger *slog.Logger) (*Store, error) {
	if err := cfg.ValidateStore(); err != nil {
		return nil, err
	}

	switch cfg.StoreDriver {
	case config.StorePostgres:
		pg, err := db.Connect(ctx, cfg.PostgresDSN)
		if err != nil {
			return nil, err
		}
		repo := postgresadapter.NewRepository(pg.DB, logger)
		return &Store{
			Driver:  cfg.StoreDriver,
			Repo:    repo,
			Clock:   postgresadapter.SystemClock{},
			IDs:     postgresadapter.UUIDGenerator{},
			migrate: repo.Migrate,
			close:   func(context.Context) error { return pg.Close() },
		}, nil
	case config.StoreMongo:
		mg, err := db.ConnectMongo(ctx, cfg.MongoURI, cfg.MongoDatabase)
		if err != nil {
			return nil, err
		}
		repo := mongoadapter.NewRepository(mg.Client, mg.Database, logger)
		return &Store{
			Driver:  cfg.StoreDriver,
			Repo:    repo,
			Clock:   mongoadapter.SystemClock{},
			IDs:     mongoadapter.ObjectIDGenerator{},
			migrate: repo.EnsureIndexes,
			close:   mg.Close,
		}, nil
	case config.StoreMemory:
		store := memory.NewStore(memory.Seed{}, logger)
		return &Store{
			Driver: cfg.StoreDriver,
			Repo:   store,
			Clock:  store,
			IDs:    store,
		}, nil
	default:
		return nil, fmt.Errorf("unsupported store driver %q", cfg.StoreDriver)
	}
}

// Migrate creates tables, collections and indexes. It is a no-op for memory.
func (s *Store) Migrate(ctx context.Context) error {
	if s == nil || s.migrate == nil {
		return nil
	}
	return s.migrate(ctx)
}

func (s *Store) Close(ctx context.Context) error {
	if s == nil || s.close == nil {
		return nil
	}
	return s.close(ctx)
}
