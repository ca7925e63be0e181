package impl

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"indocafe/config"
	deliverycontext "indocafe/internal/delivery/context"
	"indocafe/internal/domain/constants"
	"indocafe/internal/domain/entity"
	domainerrors "indocafe/internal/domain/errors"
	"indocafe/internal/domain/repository"
	"indocafe/internal/domain/service"
	"indocafe/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

type snapshotService struct {
	menuUC      usecase.MenuUsecase
	outletRepo  repository.OutletRepository
	store       service.MenuSnapshotStore
	concurrency int
	now         func() time.Time
	logger      *slog.Logger
}

// SnapshotServiceParams holds dependencies for SnapshotService, injected by Fx.
type SnapshotServiceParams struct {
	fx.In

	MenuUC     usecase.MenuUsecase
	OutletRepo repository.OutletRepository
	Store      service.MenuSnapshotStore
	Config     *config.Config
	Logger     *slog.Logger
}

// NewSnapshotService is the constructor for snapshotService.
func NewSnapshotService(params SnapshotServiceParams) usecase.SnapshotUsecase {
	concurrency := constants.DefaultSnapshotConcurrency
	if params.Config != nil && params.Config.Snapshot != nil && params.Config.Snapshot.Concurrency > 0 {
		concurrency = params.Config.Snapshot.Concurrency
	}

	return &snapshotService{
		menuUC:      params.MenuUC,
		outletRepo:  params.OutletRepo,
		store:       params.Store,
		concurrency: concurrency,
		now:         time.Now,
		logger:      params.Logger,
	}
}

func (srv *snapshotService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RefreshOutlet publishes the snapshot of one outlet, active or not.
func (srv *snapshotService) RefreshOutlet(ctx context.Context, outletID string) (*entity.MenuSnapshot, error) {
	id, err := parseID(outletID, "outlet id")
	if err != nil {
		return nil, err
	}

	outlet, err := srv.outletRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrOutletNotFound) {
			return nil, domainerrors.ErrOutletNotFound
		}

		return nil, err
	}

	return srv.refresh(ctx, outlet)
}

// RefreshAll publishes every active outlet, at most concurrency at a time. The first failure
// cancels the outlets not yet started.
func (srv *snapshotService) RefreshAll(ctx context.Context) (int, error) {
	outlets, err := srv.outletRepo.FindAll(ctx)
	if err != nil {
		return 0, err
	}

	var refreshed atomic.Int64
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(srv.concurrency)

	for _, outlet := range outlets {
		if !outlet.IsActive {
			continue
		}
		// Go blocks until a slot frees, by which time a failed refresh has canceled groupCtx
		if groupCtx.Err() != nil {
			break
		}
		group.Go(func() error {
			if _, err := srv.refresh(groupCtx, outlet); err != nil {
				return err
			}
			refreshed.Add(1)

			return nil
		})
	}

	err = group.Wait()

	return int(refreshed.Load()), err
}

// HandleMenuEvent maps an override change to its outlet and a catalog change to the whole chain.
func (srv *snapshotService) HandleMenuEvent(ctx context.Context, event *service.MenuEvent) error {
	if event == nil {
		return domainerrors.ErrInvalidArgument.WithDetails("event is required")
	}

	switch event.Type {
	case service.MenuEventConfigUpdated:
		if event.OutletID == "" {
			return domainerrors.ErrInvalidArgument.WithDetails("outlet id is required for override events")
		}
		_, err := srv.RefreshOutlet(ctx, event.OutletID)

		return err

	case service.MenuEventItemCreated:
		count, err := srv.RefreshAll(ctx)
		srv.log(ctx).InfoContext(ctx, "Chain-wide snapshot refresh finished",
			slog.String("menu_item_id", event.MenuItemID),
			slog.Int("outlets", count),
		)

		return err

	default:
		return domainerrors.ErrInvalidArgument.WithDetails("unsupported event type: " + string(event.Type))
	}
}

func (srv *snapshotService) refresh(ctx context.Context, outlet *entity.Outlet) (*entity.MenuSnapshot, error) {
	items, err := srv.menuUC.GetEffectiveMenu(ctx, outlet.ID.String())
	if err != nil {
		return nil, err
	}

	snapshot := &entity.MenuSnapshot{
		OutletID:    outlet.ID,
		OutletName:  outlet.Name,
		GeneratedAt: srv.now().UTC(),
		Items:       items,
	}

	location, err := srv.store.Put(ctx, snapshot)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).InfoContext(ctx, "Menu snapshot published",
		slog.String("outlet_id", outlet.ID.String()),
		slog.Int("items", len(items)),
		slog.Int("available", snapshot.AvailableCount()),
		slog.String("location", location),
	)

	return snapshot, nil
}
