package memory

import (
	"context"
	"sync"
	"time"

	"indocafe/internal/domain/entity"
	"indocafe/internal/domain/repository"

	"github.com/google/uuid"
)

type configKey struct {
	outletID   uuid.UUID
	menuItemID uuid.UUID
}

type outletItemConfigRepository struct {
	mu      sync.RWMutex
	configs map[configKey]*entity.OutletItemConfig
	now     func() time.Time
}

// NewOutletItemConfigRepository returns in-memory override storage keyed by (outlet, item).
func NewOutletItemConfigRepository() repository.OutletItemConfigRepository {
	return &outletItemConfigRepository{
		configs: make(map[configKey]*entity.OutletItemConfig),
		now:     time.Now,
	}
}

func (repo *outletItemConfigRepository) FindByOutlet(_ context.Context, outletID uuid.UUID) ([]*entity.OutletItemConfig, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	var configs []*entity.OutletItemConfig
	for key, cfg := range repo.configs {
		if key.outletID == outletID {
			configs = append(configs, copyConfig(cfg))
		}
	}

	return configs, nil
}

// Upsert holds the write lock across the read-modify-write so the pair stays unique.
func (repo *outletItemConfigRepository) Upsert(
	_ context.Context,
	outletID, menuItemID uuid.UUID,
	patch entity.OutletItemPatch,
) (*entity.OutletItemConfig, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	key := configKey{outletID: outletID, menuItemID: menuItemID}
	now := repo.now()

	cfg, ok := repo.configs[key]
	if ok {
		cfg.Apply(patch, now)
	} else {
		cfg = entity.NewOutletItemConfig(outletID, menuItemID, patch, now)
		repo.configs[key] = cfg
	}

	return copyConfig(cfg), nil
}

func copyConfig(cfg *entity.OutletItemConfig) *entity.OutletItemConfig {
	out := *cfg
	if cfg.CustomPrice != nil {
		price := *cfg.CustomPrice
		out.CustomPrice = &price
	}

	return &out
}
