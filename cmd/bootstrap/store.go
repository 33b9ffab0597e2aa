package bootstrap

import (
	"context"
	"log/slog"

	"asset-factory/internal/domain/authority"
	"asset-factory/internal/infra/db"
	"asset-factory/internal/infra/store"
	"asset-factory/internal/infra/uow"
	"asset-factory/internal/pkg/config"
	"asset-factory/internal/usecase/shared"

	"go.uber.org/fx"
)

var StoreModule = fx.Module("store",
	fx.Provide(
		NewUnitOfWork,
	),
)

// NewUnitOfWork opens the configured account store and releases it on shutdown.
func NewUnitOfWork(lc fx.Lifecycle, cfg config.Config, issuer *authority.Issuer) (shared.UnitOfWork, error) {
	switch cfg.Store.Backend {
	case config.StoreBackendPostgres:
		ctx := context.Background()
		pool, cleanup, err := db.Connect(ctx, cfg.DB)
		if err != nil {
			return nil, err
		}
		if err := db.Migrate(ctx, pool); err != nil {
			cleanup()
			return nil, err
		}
		lc.Append(fx.Hook{
			OnStop: func(_ context.Context) error {
				cleanup()
				return nil
			},
		})
		slog.Info("Account store opened", "backend", cfg.Store.Backend, "host", cfg.DB.Host)
		return uow.NewPostgresUoW(pool, issuer, cfg.Store.MaxRetries), nil
	default:
		bdb, err := store.OpenBadger(cfg.Store.BadgerPath, cfg.Store.InMemory)
		if err != nil {
			return nil, err
		}
		lc.Append(fx.Hook{
			OnStop: func(_ context.Context) error {
				return bdb.Close()
			},
		})
		slog.Info("Account store opened", "backend", cfg.Store.Backend, "path", cfg.Store.BadgerPath, "in_memory", cfg.Store.InMemory)
		return uow.NewBadgerUoW(bdb, issuer, cfg.Store.MaxRetries), nil
	}
}
