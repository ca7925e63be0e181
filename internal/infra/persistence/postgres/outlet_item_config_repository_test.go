package postgres

import (
	"context"
	"testing"
	"time"

	"indocafe/internal/domain/entity"
	"indocafe/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// newDryRunDB builds a GORM handle that renders SQL without a server and records every INSERT.
func newDryRunDB(t *testing.T) (*gorm.DB, *[]string) {
	t.Helper()

	db, err := gorm.Open(gormpostgres.New(gormpostgres.Config{
		DSN: "host=localhost user=indocafe dbname=indocafe sslmode=disable",
	}), &gorm.Config{DryRun: true, DisableAutomaticPing: true})
	require.NoError(t, err)

	var statements []string
	err = db.Callback().Create().After("gorm:create").Register("test:capture", func(tx *gorm.DB) {
		statements = append(statements, tx.Statement.SQL.String())
	})
	require.NoError(t, err)

	return db, &statements
}

func TestOutletItemConfigRepository_UpsertUpdatesOnlySuppliedColumns(t *testing.T) {
	available := false

	tests := []struct {
		name        string
		patch       entity.OutletItemPatch
		contains    []string
		notContains []string
	}{
		{
			name:        "availability only",
			patch:       entity.OutletItemPatch{IsAvailable: &available},
			contains:    []string{`"is_available"=`, `"updated_at"=`},
			notContains: []string{`"custom_price"=`},
		},
		{
			name:        "price only",
			patch:       entity.OutletItemPatch{CustomPrice: entity.PriceOf(decimal.RequireFromString("199.50"))},
			contains:    []string{`"custom_price"=`, `"updated_at"=`},
			notContains: []string{`"is_available"=`},
		},
		{
			name:     "both fields",
			patch:    entity.OutletItemPatch{IsAvailable: &available, CustomPrice: entity.NullPrice()},
			contains: []string{`"custom_price"=`, `"is_available"=`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, statements := newDryRunDB(t)
			repo := NewOutletItemConfigRepository(db)

			_, err := repo.Upsert(context.Background(), uuid.New(), uuid.New(), tt.patch)
			require.NoError(t, err)
			require.Len(t, *statements, 1)

			sql := (*statements)[0]
			assert.Contains(t, sql, `INSERT INTO "outlet_item_configs"`)
			assert.Contains(t, sql, `ON CONFLICT ("outlet_id","menu_item_id") DO UPDATE SET`)
			for _, fragment := range tt.contains {
				assert.Contains(t, sql, fragment)
			}
			for _, fragment := range tt.notContains {
				assert.NotContains(t, sql, fragment)
			}
		})
	}
}

func TestOutletItemConfigMapper_CustomPrice(t *testing.T) {
	now := time.Now()
	price := decimal.RequireFromString("250")
	cfg := &entity.OutletItemConfig{
		ID:          uuid.New(),
		OutletID:    uuid.New(),
		MenuItemID:  uuid.New(),
		IsAvailable: true,
		CustomPrice: &price,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	m := fromOutletItemConfigDomain(cfg)
	assert.True(t, m.CustomPrice.Valid)
	assert.True(t, price.Equal(m.CustomPrice.Decimal))

	back := toOutletItemConfigDomain(m)
	require.NotNil(t, back.CustomPrice)
	assert.True(t, price.Equal(*back.CustomPrice))

	cleared := toOutletItemConfigDomain(&model.OutletItemConfigModel{ID: cfg.ID})
	assert.Nil(t, cleared.CustomPrice)
}
