// Package persistence selects the storage driver named by storage.driver and
// provides the repositories built on it.
package persistence

import (
	"log/slog"

	"indocafe/config"
	"indocafe/internal/domain/constants"
	"indocafe/internal/domain/repository"
	"indocafe/internal/infra/persistence/memory"
	"indocafe/internal/infra/persistence/mongodb"
	"indocafe/internal/infra/persistence/postgres"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params holds dependencies for the storage driver, injected by Fx.
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// Repositories exposes every repository of the selected driver to the Fx graph.
type Repositories struct {
	fx.Out

	MenuItems         repository.MenuItemRepository
	Outlets           repository.OutletRepository
	OutletItemConfigs repository.OutletItemConfigRepository
	Users             repository.UserRepository
}

// NewRepositories opens the configured driver and builds its repositories.
func NewRepositories(params Params) (Repositories, error) {
	driver := constants.StorageDriverPostgres
	if params.Config.Storage != nil && params.Config.Storage.Driver != "" {
		driver = params.Config.Storage.Driver
	}

	logger := params.Logger.With(slog.String("storage_driver", driver))

	switch driver {
	case constants.StorageDriverPostgres:
		db, err := postgres.New(postgres.Params{Lifecycle: params.Lifecycle, Config: params.Config, Logger: logger})
		if err != nil {
			return Repositories{}, err
		}
		logger.Info("Using PostgreSQL storage")

		return Repositories{
			MenuItems:         postgres.NewMenuItemRepository(db),
			Outlets:           postgres.NewOutletRepository(db),
			OutletItemConfigs: postgres.NewOutletItemConfigRepository(db),
			Users:             postgres.NewUserRepository(db),
		}, nil

	case constants.StorageDriverMongo:
		db, err := mongodb.New(mongodb.Params{Lifecycle: params.Lifecycle, Config: params.Config, Logger: logger})
		if err != nil {
			return Repositories{}, err
		}
		logger.Info("Using MongoDB storage")

		return Repositories{
			MenuItems:         mongodb.NewMenuItemRepository(db),
			Outlets:           mongodb.NewOutletRepository(db),
			OutletItemConfigs: mongodb.NewOutletItemConfigRepository(db),
			Users:             mongodb.NewUserRepository(db),
		}, nil

	case constants.StorageDriverMemory:
		logger.Warn("Using in-memory storage, data is lost on restart")

		return NewMemoryRepositories(), nil

	default:
		return Repositories{}, errors.Errorf("unknown storage driver: %s", driver)
	}
}

// NewMemoryRepositories builds a fresh, empty in-memory store.
func NewMemoryRepositories() Repositories {
	return Repositories{
		MenuItems:         memory.NewMenuItemRepository(),
		Outlets:           memory.NewOutletRepository(),
		OutletItemConfigs: memory.NewOutletItemConfigRepository(),
		Users:             memory.NewUserRepository(),
	}
}

// Module provides the persistence FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewRepositories),
)
