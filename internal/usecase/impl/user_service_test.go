package impl

import (
	"context"
	"testing"
	"time"

	"indocafe/config"
	"indocafe/internal/domain/entity"
	domainerrors "indocafe/internal/domain/errors"
	"indocafe/internal/domain/repository"
	mockRepo "indocafe/internal/mocks/repository"
	mockSvc "indocafe/internal/mocks/service"
	"indocafe/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service      usecase.UserUsecase
	userRepo     *mockRepo.MockUserRepository
	outletRepo   *mockRepo.MockOutletRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestUserService(t *testing.T, cfg *config.Config) userServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	outletRepo := mockRepo.NewMockOutletRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)

	if cfg == nil {
		cfg = newTestConfig(false)
	}

	service := NewUserService(UserServiceParams{
		UserRepo:     userRepo,
		OutletRepo:   outletRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Config:       cfg,
		Logger:       newDiscardLogger(),
	})

	return userServiceFixtures{
		service:      service,
		userRepo:     userRepo,
		outletRepo:   outletRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func TestUserService_CreateStaffUser_Manager(t *testing.T) {
	fx := createTestUserService(t, nil)

	ctx := context.Background()
	outletID := uuid.New()
	extraOutletID := uuid.New()

	fx.outletRepo.EXPECT().FindByID(ctx, outletID).Return(&entity.Outlet{ID: outletID}, nil)
	fx.outletRepo.EXPECT().FindByID(ctx, extraOutletID).Return(&entity.Outlet{ID: extraOutletID}, nil)
	fx.userRepo.EXPECT().FindByEmail(ctx, "budi@indocafe.id").Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash("s3cret-pass").Return("hashed", nil)
	fx.userRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).Return(nil)

	user, err := fx.service.CreateStaffUser(ctx, &usecase.CreateStaffUserInput{
		Name:              "Budi",
		Email:             " Budi@IndoCafe.id ",
		Password:          "s3cret-pass",
		Role:              entity.RoleOutletManager,
		OutletID:          outletID.String(),
		AssignedOutletIDs: []string{extraOutletID.String(), extraOutletID.String()},
	})

	require.NoError(t, err)
	assert.Equal(t, "budi@indocafe.id", user.Email)
	assert.Equal(t, "hashed", user.PasswordHash)
	assert.True(t, user.IsActive)
	require.NotNil(t, user.DefaultOutletID)
	assert.Equal(t, outletID, *user.DefaultOutletID)
	assert.Equal(t, []uuid.UUID{extraOutletID}, user.AssignedOutletIDs)
}

func TestUserService_CreateStaffUser_OperationalRoleRequiresOutlet(t *testing.T) {
	for _, role := range []entity.Role{
		entity.RoleOutletManager,
		entity.RoleCashier,
		entity.RoleKitchen,
		entity.RoleWaiter,
		entity.RoleDispatcher,
		entity.RoleRider,
	} {
		t.Run(role.String(), func(t *testing.T) {
			fx := createTestUserService(t, nil)

			_, err := fx.service.CreateStaffUser(context.Background(), &usecase.CreateStaffUserInput{
				Name:     "Staff",
				Email:    "staff@indocafe.id",
				Password: "password",
				Role:     role,
			})

			require.Error(t, err)
			assert.ErrorIs(t, err, domainerrors.ErrInvalidArgument)
			assert.Contains(t, err.Error(), "Outlet ID is required for operational roles")
		})
	}
}

func TestUserService_CreateStaffUser_SuperAdminWithoutOutlet(t *testing.T) {
	fx := createTestUserService(t, nil)

	fx.userRepo.EXPECT().FindByEmail(mock.Anything, "root@indocafe.id").Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash("password").Return("hashed", nil)
	fx.userRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	user, err := fx.service.CreateStaffUser(context.Background(), &usecase.CreateStaffUserInput{
		Name:     "Root",
		Email:    "root@indocafe.id",
		Password: "password",
		Role:     entity.RoleSuperAdmin,
	})

	require.NoError(t, err)
	assert.Nil(t, user.DefaultOutletID)
}

func TestUserService_CreateStaffUser_UnknownOutlet(t *testing.T) {
	fx := createTestUserService(t, nil)

	outletID := uuid.New()
	fx.outletRepo.EXPECT().FindByID(mock.Anything, outletID).Return(nil, repository.ErrOutletNotFound)

	_, err := fx.service.CreateStaffUser(context.Background(), &usecase.CreateStaffUserInput{
		Name:     "Sari",
		Email:    "sari@indocafe.id",
		Password: "password",
		Role:     entity.RoleCashier,
		OutletID: outletID.String(),
	})

	assert.ErrorIs(t, err, domainerrors.ErrOutletNotFound)
}

func TestUserService_CreateStaffUser_DuplicateEmail(t *testing.T) {
	fx := createTestUserService(t, nil)

	fx.userRepo.EXPECT().
		FindByEmail(mock.Anything, "dup@indocafe.id").
		Return(&entity.User{ID: uuid.New(), Email: "dup@indocafe.id"}, nil)

	_, err := fx.service.CreateStaffUser(context.Background(), &usecase.CreateStaffUserInput{
		Name:     "Dup",
		Email:    "dup@indocafe.id",
		Password: "password",
		Role:     entity.RoleSuperAdmin,
	})

	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestUserService_CreateStaffUser_DuplicateEmailRace(t *testing.T) {
	fx := createTestUserService(t, nil)

	fx.userRepo.EXPECT().FindByEmail(mock.Anything, mock.Anything).Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash(mock.Anything).Return("hashed", nil)
	fx.userRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(repository.ErrDuplicateEmail)

	_, err := fx.service.CreateStaffUser(context.Background(), &usecase.CreateStaffUserInput{
		Name:     "Dup",
		Email:    "dup@indocafe.id",
		Password: "password",
		Role:     entity.RoleSuperAdmin,
	})

	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestUserService_CreateStaffUser_Validation(t *testing.T) {
	tests := []struct {
		name  string
		input *usecase.CreateStaffUserInput
	}{
		{name: "missing name", input: &usecase.CreateStaffUserInput{Email: "a@b.c", Password: "p", Role: entity.RoleSuperAdmin}},
		{name: "missing email", input: &usecase.CreateStaffUserInput{Name: "a", Password: "p", Role: entity.RoleSuperAdmin}},
		{name: "missing password", input: &usecase.CreateStaffUserInput{Name: "a", Email: "a@b.c", Role: entity.RoleSuperAdmin}},
		{name: "unknown role", input: &usecase.CreateStaffUserInput{Name: "a", Email: "a@b.c", Password: "p", Role: "CHEF"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestUserService(t, nil)

			_, err := fx.service.CreateStaffUser(context.Background(), tt.input)

			assert.ErrorIs(t, err, domainerrors.ErrInvalidArgument)
		})
	}
}

func TestUserService_Login_Success(t *testing.T) {
	fx := createTestUserService(t, nil)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "budi@indocafe.id", PasswordHash: "hashed", Role: entity.RoleOutletManager, IsActive: true}
	expiresAt := time.Now().Add(time.Hour)

	fx.userRepo.EXPECT().FindByEmail(ctx, "budi@indocafe.id").Return(user, nil)
	fx.hasher.EXPECT().Check("password", "hashed").Return(true)
	fx.tokenService.EXPECT().GenerateAccessToken(user).Return("signed-token", expiresAt, nil)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "BUDI@indocafe.id", Password: "password"})

	require.NoError(t, err)
	assert.Equal(t, "signed-token", output.AccessToken)
	assert.Equal(t, expiresAt, output.ExpiresAt)
	assert.Equal(t, user, output.User)
}

func TestUserService_Login_InvalidCredentials(t *testing.T) {
	t.Run("unknown email", func(t *testing.T) {
		fx := createTestUserService(t, nil)
		fx.userRepo.EXPECT().FindByEmail(mock.Anything, mock.Anything).Return(nil, repository.ErrUserNotFound)

		_, err := fx.service.Login(context.Background(), &usecase.LoginInput{Email: "x@indocafe.id", Password: "p"})

		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})

	t.Run("wrong password", func(t *testing.T) {
		fx := createTestUserService(t, nil)
		fx.userRepo.EXPECT().
			FindByEmail(mock.Anything, mock.Anything).
			Return(&entity.User{ID: uuid.New(), PasswordHash: "hashed", IsActive: true}, nil)
		fx.hasher.EXPECT().Check("wrong", "hashed").Return(false)

		_, err := fx.service.Login(context.Background(), &usecase.LoginInput{Email: "x@indocafe.id", Password: "wrong"})

		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})

	t.Run("inactive account", func(t *testing.T) {
		fx := createTestUserService(t, nil)
		fx.userRepo.EXPECT().
			FindByEmail(mock.Anything, mock.Anything).
			Return(&entity.User{ID: uuid.New(), PasswordHash: "hashed"}, nil)
		fx.hasher.EXPECT().Check("p", "hashed").Return(true)

		_, err := fx.service.Login(context.Background(), &usecase.LoginInput{Email: "x@indocafe.id", Password: "p"})

		assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
	})
}

func TestUserService_Login_StorageFailure(t *testing.T) {
	fx := createTestUserService(t, nil)

	storageErr := domainerrors.NewStorageUnavailableError(errors.New("timeout"), "failed to find user by email")
	fx.userRepo.EXPECT().FindByEmail(mock.Anything, mock.Anything).Return(nil, storageErr)

	_, err := fx.service.Login(context.Background(), &usecase.LoginInput{Email: "x@indocafe.id", Password: "p"})

	assert.True(t, domainerrors.IsStorageUnavailable(err))
}

func TestUserService_GetProfile(t *testing.T) {
	fx := createTestUserService(t, nil)

	user := &entity.User{ID: uuid.New(), Role: entity.RoleCashier}
	fx.userRepo.EXPECT().FindByID(mock.Anything, user.ID).Return(user, nil)

	got, err := fx.service.GetProfile(context.Background(), user.Principal())

	require.NoError(t, err)
	assert.Equal(t, user, got)

	_, err = fx.service.GetProfile(context.Background(), nil)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}

func TestUserService_EnsureBootstrapAdmin(t *testing.T) {
	cfg := newTestConfig(false)
	cfg.Bootstrap = &config.BootstrapConfig{AdminEmail: "Admin@IndoCafe.id", AdminPassword: "change-me"}

	t.Run("creates missing admin", func(t *testing.T) {
		fx := createTestUserService(t, cfg)

		fx.userRepo.EXPECT().FindByEmail(mock.Anything, "admin@indocafe.id").Return(nil, repository.ErrUserNotFound)
		fx.hasher.EXPECT().Hash("change-me").Return("hashed", nil)
		fx.userRepo.EXPECT().
			Create(mock.Anything, mock.MatchedBy(func(user *entity.User) bool {
				return user.Role == entity.RoleSuperAdmin && user.Name == defaultBootstrapAdminName && user.IsActive
			})).
			Return(nil)

		require.NoError(t, fx.service.EnsureBootstrapAdmin(context.Background()))
	})

	t.Run("keeps existing admin", func(t *testing.T) {
		fx := createTestUserService(t, cfg)

		fx.userRepo.EXPECT().
			FindByEmail(mock.Anything, "admin@indocafe.id").
			Return(&entity.User{ID: uuid.New()}, nil)

		require.NoError(t, fx.service.EnsureBootstrapAdmin(context.Background()))
	})

	t.Run("lost race", func(t *testing.T) {
		fx := createTestUserService(t, cfg)

		fx.userRepo.EXPECT().FindByEmail(mock.Anything, mock.Anything).Return(nil, repository.ErrUserNotFound)
		fx.hasher.EXPECT().Hash(mock.Anything).Return("hashed", nil)
		fx.userRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(repository.ErrDuplicateEmail)

		require.NoError(t, fx.service.EnsureBootstrapAdmin(context.Background()))
	})

	t.Run("not configured", func(t *testing.T) {
		fx := createTestUserService(t, nil)

		require.NoError(t, fx.service.EnsureBootstrapAdmin(context.Background()))
	})

	t.Run("missing password", func(t *testing.T) {
		noPassword := newTestConfig(false)
		noPassword.Bootstrap = &config.BootstrapConfig{AdminEmail: "admin@indocafe.id"}
		fx := createTestUserService(t, noPassword)

		fx.userRepo.EXPECT().FindByEmail(mock.Anything, mock.Anything).Return(nil, repository.ErrUserNotFound)

		require.Error(t, fx.service.EnsureBootstrapAdmin(context.Background()))
	})
}
