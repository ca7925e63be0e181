package impl

import (
	"context"
	"sync"
	"testing"
	"time"

	"indocafe/config"
	"indocafe/internal/domain/entity"
	domainerrors "indocafe/internal/domain/errors"
	"indocafe/internal/domain/repository"
	"indocafe/internal/domain/service"
	mockRepo "indocafe/internal/mocks/repository"
	mockSvc "indocafe/internal/mocks/service"
	mockUC "indocafe/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type snapshotServiceFixtures struct {
	service    *snapshotService
	menuUC     *mockUC.MockMenuUsecase
	outletRepo *mockRepo.MockOutletRepository
	store      *mockSvc.MockMenuSnapshotStore
}

func createTestSnapshotService(t *testing.T) snapshotServiceFixtures {
	menuUC := mockUC.NewMockMenuUsecase(t)
	outletRepo := mockRepo.NewMockOutletRepository(t)
	store := mockSvc.NewMockMenuSnapshotStore(t)

	svc := NewSnapshotService(SnapshotServiceParams{
		MenuUC:     menuUC,
		OutletRepo: outletRepo,
		Store:      store,
		Config:     &config.Config{Snapshot: &config.SnapshotConfig{Concurrency: 2}},
		Logger:     newDiscardLogger(),
	}).(*snapshotService)
	svc.now = func() time.Time { return time.Date(2026, 3, 1, 9, 0, 0, 0, time.FixedZone("WIB", 7*3600)) }

	return snapshotServiceFixtures{
		service:    svc,
		menuUC:     menuUC,
		outletRepo: outletRepo,
		store:      store,
	}
}

func newSnapshotOutlet(name string, active bool) *entity.Outlet {
	return &entity.Outlet{ID: uuid.Must(uuid.NewV7()), Name: name, IsActive: active}
}

func TestSnapshotService_RefreshOutlet(t *testing.T) {
	fx := createTestSnapshotService(t)
	ctx := context.Background()
	outlet := newSnapshotOutlet("Kemang", true)

	entries := []*entity.EffectiveMenuEntry{
		{ID: uuid.New(), Name: "Nasi Goreng", Price: decimal.NewFromInt(300), IsAvailable: true},
		{ID: uuid.New(), Name: "Es Teh", Price: decimal.NewFromInt(15), IsAvailable: false},
	}

	fx.outletRepo.EXPECT().FindByID(ctx, outlet.ID).Return(outlet, nil)
	fx.menuUC.EXPECT().GetEffectiveMenu(ctx, outlet.ID.String()).Return(entries, nil)
	fx.store.EXPECT().Put(ctx, mock.MatchedBy(func(s *entity.MenuSnapshot) bool {
		return s.OutletID == outlet.ID && s.OutletName == "Kemang" && len(s.Items) == 2
	})).Return("https://cdn/menus/x.json", nil)

	snapshot, err := fx.service.RefreshOutlet(ctx, outlet.ID.String())
	require.NoError(t, err)
	assert.Equal(t, 1, snapshot.AvailableCount())
	assert.Equal(t, time.UTC, snapshot.GeneratedAt.Location())
	assert.Equal(t, 2, snapshot.GeneratedAt.Hour())
}

func TestSnapshotService_RefreshOutlet_Errors(t *testing.T) {
	t.Run("malformed id", func(t *testing.T) {
		fx := createTestSnapshotService(t)

		_, err := fx.service.RefreshOutlet(context.Background(), "nope")
		assert.ErrorIs(t, err, domainerrors.ErrInvalidArgument)
	})

	t.Run("unknown outlet", func(t *testing.T) {
		fx := createTestSnapshotService(t)
		id := uuid.Must(uuid.NewV7())
		fx.outletRepo.EXPECT().FindByID(mock.Anything, id).Return(nil, repository.ErrOutletNotFound)

		_, err := fx.service.RefreshOutlet(context.Background(), id.String())
		assert.ErrorIs(t, err, domainerrors.ErrOutletNotFound)
	})

	t.Run("store failure", func(t *testing.T) {
		fx := createTestSnapshotService(t)
		outlet := newSnapshotOutlet("Kemang", true)
		storeErr := domainerrors.NewStorageUnavailableError(errors.New("bucket down"), "failed to write menu snapshot")

		fx.outletRepo.EXPECT().FindByID(mock.Anything, outlet.ID).Return(outlet, nil)
		fx.menuUC.EXPECT().GetEffectiveMenu(mock.Anything, outlet.ID.String()).Return(nil, nil)
		fx.store.EXPECT().Put(mock.Anything, mock.Anything).Return("", storeErr)

		_, err := fx.service.RefreshOutlet(context.Background(), outlet.ID.String())
		assert.True(t, domainerrors.IsStorageUnavailable(err))
	})
}

func TestSnapshotService_RefreshAll_SkipsInactiveOutlets(t *testing.T) {
	fx := createTestSnapshotService(t)
	ctx := context.Background()

	active := []*entity.Outlet{newSnapshotOutlet("Kemang", true), newSnapshotOutlet("Menteng", true), newSnapshotOutlet("Gambir", true)}
	inactive := newSnapshotOutlet("Closed", false)
	outlets := append([]*entity.Outlet{inactive}, active...)

	fx.outletRepo.EXPECT().FindAll(ctx).Return(outlets, nil)

	var mu sync.Mutex
	written := make(map[uuid.UUID]bool)
	for _, outlet := range active {
		fx.menuUC.EXPECT().GetEffectiveMenu(mock.Anything, outlet.ID.String()).Return(nil, nil)
	}
	fx.store.EXPECT().Put(mock.Anything, mock.Anything).RunAndReturn(
		func(_ context.Context, s *entity.MenuSnapshot) (string, error) {
			mu.Lock()
			defer mu.Unlock()
			written[s.OutletID] = true

			return "", nil
		}).Times(len(active))

	count, err := fx.service.RefreshAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, count)
	assert.Len(t, written, 3)
	assert.False(t, written[inactive.ID])
}

func TestSnapshotService_RefreshAll_ReportsFailure(t *testing.T) {
	fx := createTestSnapshotService(t)
	outlet := newSnapshotOutlet("Kemang", true)

	fx.outletRepo.EXPECT().FindAll(mock.Anything).Return([]*entity.Outlet{outlet}, nil)
	fx.menuUC.EXPECT().GetEffectiveMenu(mock.Anything, outlet.ID.String()).
		Return(nil, domainerrors.NewStorageUnavailableError(errors.New("db down"), "failed to list catalog"))

	count, err := fx.service.RefreshAll(context.Background())
	require.Error(t, err)
	assert.Zero(t, count)
}

func TestSnapshotService_RefreshAll_StopsSchedulingAfterFailure(t *testing.T) {
	fx := createTestSnapshotService(t)
	fx.service.concurrency = 1

	failing := newSnapshotOutlet("Kemang", true)
	pending := []*entity.Outlet{newSnapshotOutlet("Senopati", true), newSnapshotOutlet("Menteng", true)}

	fx.outletRepo.EXPECT().FindAll(mock.Anything).Return(append([]*entity.Outlet{failing}, pending...), nil)
	fx.menuUC.EXPECT().GetEffectiveMenu(mock.Anything, failing.ID.String()).
		Return(nil, domainerrors.NewStorageUnavailableError(errors.New("db down"), "failed to list catalog")).
		Once()

	count, err := fx.service.RefreshAll(context.Background())

	require.Error(t, err)
	assert.Zero(t, count)
	for _, outlet := range pending {
		fx.menuUC.AssertNotCalled(t, "GetEffectiveMenu", mock.Anything, outlet.ID.String())
	}
	fx.store.AssertNotCalled(t, "Put", mock.Anything, mock.Anything)
}

func TestSnapshotService_HandleMenuEvent(t *testing.T) {
	t.Run("override change refreshes one outlet", func(t *testing.T) {
		fx := createTestSnapshotService(t)
		outlet := newSnapshotOutlet("Kemang", true)

		fx.outletRepo.EXPECT().FindByID(mock.Anything, outlet.ID).Return(outlet, nil)
		fx.menuUC.EXPECT().GetEffectiveMenu(mock.Anything, outlet.ID.String()).Return(nil, nil)
		fx.store.EXPECT().Put(mock.Anything, mock.Anything).Return("", nil)

		err := fx.service.HandleMenuEvent(context.Background(), &service.MenuEvent{
			Type:     service.MenuEventConfigUpdated,
			OutletID: outlet.ID.String(),
		})
		require.NoError(t, err)
	})

	t.Run("catalog change refreshes the chain", func(t *testing.T) {
		fx := createTestSnapshotService(t)
		fx.outletRepo.EXPECT().FindAll(mock.Anything).Return(nil, nil)

		err := fx.service.HandleMenuEvent(context.Background(), &service.MenuEvent{Type: service.MenuEventItemCreated})
		require.NoError(t, err)
	})

	t.Run("invalid events", func(t *testing.T) {
		fx := createTestSnapshotService(t)
		ctx := context.Background()

		assert.ErrorIs(t, fx.service.HandleMenuEvent(ctx, nil), domainerrors.ErrInvalidArgument)
		assert.ErrorIs(t, fx.service.HandleMenuEvent(ctx, &service.MenuEvent{Type: service.MenuEventConfigUpdated}), domainerrors.ErrInvalidArgument)
		assert.ErrorIs(t, fx.service.HandleMenuEvent(ctx, &service.MenuEvent{Type: "order.placed"}), domainerrors.ErrInvalidArgument)
	})
}
