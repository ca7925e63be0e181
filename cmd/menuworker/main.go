package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"indocafe/config"
	"indocafe/internal/delivery"
	"indocafe/internal/delivery/worker"
	"indocafe/internal/delivery/worker/handler"
	"indocafe/internal/infra/imagestore"
	logs "indocafe/internal/infra/log"
	"indocafe/internal/infra/persistence"
	"indocafe/internal/infra/pubsub"
	"indocafe/internal/infra/snapshot"
	"indocafe/internal/usecase"
	"indocafe/internal/usecase/impl"
	"indocafe/internal/util"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		persistence.Module,
		pubsub.Module,
		injectService(),
		injectUsecase(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			warmSnapshots,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			imagestore.New,
			snapshot.New,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewMenuService,
			impl.NewSnapshotService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewPushHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				worker.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// warmSnapshots republishes every active outlet once the worker is up, covering events missed while it was down.
func warmSnapshots(ctx context.Context, lc fx.Lifecycle, snapshotUC usecase.SnapshotUsecase, logger *slog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				start := time.Now()
				count, err := snapshotUC.RefreshAll(ctx)
				if err != nil {
					logger.Warn("Initial snapshot refresh incomplete",
						slog.Int("outlets", count),
						slog.Any("error", err),
					)

					return
				}
				logger.Info("Initial snapshot refresh finished",
					slog.Int("outlets", count),
					slog.String("took", util.FormatDuration(time.Since(start))),
				)
			}()

			return nil
		},
	})
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
