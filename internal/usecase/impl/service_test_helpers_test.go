package impl

import (
	"io"
	"log/slog"

	"indocafe/config"
	"indocafe/internal/domain/entity"

	"github.com/google/uuid"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(requireExistingOutlet bool) *config.Config {
	return &config.Config{
		Menu: &config.MenuConfig{
			RequireExistingOutlet: requireExistingOutlet,
		},
		Bootstrap: &config.BootstrapConfig{},
	}
}

func newAdmin() *entity.Principal {
	return &entity.Principal{UserID: uuid.New(), Role: entity.RoleSuperAdmin}
}

func newManager(primary uuid.UUID, additional ...uuid.UUID) *entity.Principal {
	return &entity.Principal{
		UserID:            uuid.New(),
		Role:              entity.RoleOutletManager,
		PrimaryOutletID:   &primary,
		AssignedOutletIDs: additional,
	}
}
