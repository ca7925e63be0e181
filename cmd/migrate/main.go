package main

import (
	"context"
	"log/slog"

	"indocafe/config"
	"indocafe/internal/domain/constants"
	logs "indocafe/internal/infra/log"
	"indocafe/internal/infra/persistence/model"
	"indocafe/internal/infra/persistence/mongodb"
	"indocafe/internal/infra/persistence/postgres"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type migrateParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Config *config.Config
	Logger *slog.Logger
}

func main() {
	fx.New(
		fx.Provide(
			config.New,
			logs.New,
		),
		fx.Invoke(
			migrate,
		),
	).Run()
}

// migrate brings the configured store's schema up to date, then stops the app.
func migrate(params migrateParams) error {
	driver := params.Config.Storage.Driver
	logger := params.Logger.With(slog.String("storage_driver", driver))

	var run func(ctx context.Context) error

	switch driver {
	case constants.StorageDriverPostgres:
		db, err := postgres.New(postgres.Params{Lifecycle: params.Lifecycle, Config: params.Config, Logger: logger})
		if err != nil {
			return err
		}
		run = func(ctx context.Context) error {
			return errors.Wrap(db.WithContext(ctx).AutoMigrate(model.All()...), "failed to migrate PostgreSQL schema")
		}

	case constants.StorageDriverMongo:
		db, err := mongodb.New(mongodb.Params{Lifecycle: params.Lifecycle, Config: params.Config, Logger: logger})
		if err != nil {
			return err
		}
		run = func(ctx context.Context) error {
			return mongodb.EnsureIndexes(ctx, db)
		}

	case constants.StorageDriverMemory:
		run = func(context.Context) error {
			logger.Info("In-memory storage needs no migration")

			return nil
		}

	default:
		return errors.Errorf("unknown storage driver: %s", driver)
	}

	params.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := run(ctx); err != nil {
				return err
			}
			logger.Info("Migration completed")

			return params.Shutdown()
		},
	})

	return nil
}
