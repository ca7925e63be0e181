package memory

import (
	"context"
	"testing"

	"indocafe/internal/domain/entity"
	"indocafe/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMenuItemRepository_KeepsInsertionOrder(t *testing.T) {
	repo := NewMenuItemRepository()
	ctx := context.Background()

	names := []string{"Paneer Tikka", "Butter Chicken", "Gulab Jamun"}
	for _, name := range names {
		require.NoError(t, repo.Create(ctx, &entity.MenuItem{ID: uuid.New(), Name: name, BasePrice: decimal.NewFromInt(100)}))
	}

	items, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, items, 3)
	for i, name := range names {
		assert.Equal(t, name, items[i].Name)
	}
}

func TestMenuItemRepository_DuplicateIDAndMissingItem(t *testing.T) {
	repo := NewMenuItemRepository()
	ctx := context.Background()
	item := &entity.MenuItem{ID: uuid.New(), Name: "Masala Dosa"}

	require.NoError(t, repo.Create(ctx, item))
	assert.Error(t, repo.Create(ctx, item))

	_, err := repo.FindByID(ctx, uuid.New())
	assert.ErrorIs(t, err, repository.ErrMenuItemNotFound)
}

func TestOutletRepository_FindByID(t *testing.T) {
	repo := NewOutletRepository()
	ctx := context.Background()
	outlet := &entity.Outlet{ID: uuid.New(), Name: "Indiranagar", Type: entity.OutletTypeDineIn, IsActive: true}

	require.NoError(t, repo.Create(ctx, outlet))

	found, err := repo.FindByID(ctx, outlet.ID)
	require.NoError(t, err)
	assert.Equal(t, "Indiranagar", found.Name)

	_, err = repo.FindByID(ctx, uuid.New())
	assert.ErrorIs(t, err, repository.ErrOutletNotFound)
}

func TestUserRepository_EmailIsUniqueCaseInsensitively(t *testing.T) {
	repo := NewUserRepository()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &entity.User{ID: uuid.New(), Email: "Admin@IndoCafe.in", Role: entity.RoleSuperAdmin}))

	err := repo.Create(ctx, &entity.User{ID: uuid.New(), Email: "admin@indocafe.in", Role: entity.RoleCashier})
	assert.ErrorIs(t, err, repository.ErrDuplicateEmail)

	found, err := repo.FindByEmail(ctx, " ADMIN@indocafe.in ")
	require.NoError(t, err)
	assert.Equal(t, entity.RoleSuperAdmin, found.Role)

	_, err = repo.FindByID(ctx, uuid.New())
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}
