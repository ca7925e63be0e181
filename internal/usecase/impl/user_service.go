// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"slices"
	"strings"
	"time"

	"indocafe/config"
	deliverycontext "indocafe/internal/delivery/context"
	"indocafe/internal/domain/entity"
	domainerrors "indocafe/internal/domain/errors"
	"indocafe/internal/domain/repository"
	"indocafe/internal/domain/service"
	"indocafe/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultBootstrapAdminName = "Chain Administrator"

// userService implements the UserUsecase interface.
type userService struct {
	userRepo     repository.UserRepository
	outletRepo   repository.OutletRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	bootstrap    *config.BootstrapConfig
	now          func() time.Time
	logger       *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	OutletRepo   repository.OutletRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Config       *config.Config
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	var bootstrap *config.BootstrapConfig
	if params.Config != nil {
		bootstrap = params.Config.Bootstrap
	}

	return &userService{
		userRepo:     params.UserRepo,
		outletRepo:   params.OutletRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		bootstrap:    bootstrap,
		now:          time.Now,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateStaffUser provisions a staff account. Operational roles must be bound to an existing outlet.
func (srv *userService) CreateStaffUser(ctx context.Context, input *usecase.CreateStaffUserInput) (*entity.User, error) {
	if err := validateStaffInput(input); err != nil {
		return nil, err
	}

	email := normalizeEmail(input.Email)
	srv.log(ctx).Info("Creating staff user", slog.String("email", email), slog.String("role", input.Role.String()))

	defaultOutletID, err := srv.resolveOutlet(ctx, input.OutletID)
	if err != nil {
		return nil, err
	}
	if defaultOutletID == nil && input.Role.RequiresOutlet() {
		return nil, domainerrors.ErrOutletRequiredForRole
	}

	assigned := make([]uuid.UUID, 0, len(input.AssignedOutletIDs))
	for _, raw := range input.AssignedOutletIDs {
		outletID, err := srv.resolveOutlet(ctx, raw)
		if err != nil {
			return nil, err
		}
		if outletID != nil && !slices.Contains(assigned, *outletID) {
			assigned = append(assigned, *outletID)
		}
	}

	if _, err := srv.userRepo.FindByEmail(ctx, email); err == nil {
		return nil, domainerrors.ErrUserAlreadyExists
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to look up user by email")
	}

	user, err := srv.buildUser(strings.TrimSpace(input.Name), email, input.Password, input.Role)
	if err != nil {
		return nil, err
	}
	user.PhoneNumber = strings.TrimSpace(input.PhoneNumber)
	user.DefaultOutletID = defaultOutletID
	user.AssignedOutletIDs = assigned

	if err := srv.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, domainerrors.ErrUserAlreadyExists
		}

		return nil, errors.Wrap(err, "failed to create user")
	}

	srv.log(ctx).Info("Staff user created", slog.String("user_id", user.ID.String()))

	return user, nil
}

// Login verifies the credentials and issues an access token.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	if input == nil || strings.TrimSpace(input.Email) == "" || input.Password == "" {
		return nil, domainerrors.ErrInvalidArgument.WithDetails("email and password are required")
	}

	email := normalizeEmail(input.Email)
	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Login attempt for unknown email", slog.String("email", email))

			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login attempt with wrong password", slog.String("user_id", user.ID.String()))

		return nil, domainerrors.ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, domainerrors.ErrUnauthorized.WithDetails("account is inactive")
	}

	token, expiresAt, err := srv.tokenService.GenerateAccessToken(user)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate access token")
	}

	srv.log(ctx).Info("User logged in", slog.String("user_id", user.ID.String()), slog.String("role", user.Role.String()))

	return &usecase.LoginOutput{
		AccessToken: token,
		ExpiresAt:   expiresAt,
		User:        user,
	}, nil
}

// GetProfile returns the account of the authenticated caller.
func (srv *userService) GetProfile(ctx context.Context, principal *entity.Principal) (*entity.User, error) {
	if principal == nil {
		return nil, domainerrors.ErrUnauthorized
	}

	user, err := srv.userRepo.FindByID(ctx, principal.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}

// EnsureBootstrapAdmin creates the configured chain administrator on first start.
func (srv *userService) EnsureBootstrapAdmin(ctx context.Context) error {
	if srv.bootstrap == nil || strings.TrimSpace(srv.bootstrap.AdminEmail) == "" {
		return nil
	}

	email := normalizeEmail(srv.bootstrap.AdminEmail)
	_, err := srv.userRepo.FindByEmail(ctx, email)
	if err == nil {
		return nil
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return errors.Wrap(err, "failed to look up bootstrap admin")
	}

	if srv.bootstrap.AdminPassword == "" {
		return errors.New("bootstrap admin password is required when bootstrap admin email is set")
	}

	name := strings.TrimSpace(srv.bootstrap.AdminName)
	if name == "" {
		name = defaultBootstrapAdminName
	}

	admin, err := srv.buildUser(name, email, srv.bootstrap.AdminPassword, entity.RoleSuperAdmin)
	if err != nil {
		return err
	}

	if err := srv.userRepo.Create(ctx, admin); err != nil {
		// Another instance won the race.
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil
		}

		return errors.Wrap(err, "failed to create bootstrap admin")
	}

	srv.log(ctx).Info("Bootstrap admin created", slog.String("user_id", admin.ID.String()), slog.String("email", email))

	return nil
}

func (srv *userService) buildUser(name, email, password string, role entity.Role) (*entity.User, error) {
	hash, err := srv.hasher.Hash(password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	id, err := newID()
	if err != nil {
		return nil, err
	}

	now := srv.now()

	return &entity.User{
		ID:           id,
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// resolveOutlet parses an optional outlet id and checks that the outlet exists.
func (srv *userService) resolveOutlet(ctx context.Context, raw string) (*uuid.UUID, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}

	outletID, err := parseID(raw, "outletId")
	if err != nil {
		return nil, err
	}

	if _, err := srv.outletRepo.FindByID(ctx, outletID); err != nil {
		if errors.Is(err, repository.ErrOutletNotFound) {
			return nil, domainerrors.ErrOutletNotFound
		}

		return nil, errors.Wrap(err, "failed to find outlet")
	}

	return &outletID, nil
}

func validateStaffInput(input *usecase.CreateStaffUserInput) error {
	switch {
	case input == nil:
		return domainerrors.ErrInvalidArgument.WithDetails("user is required")
	case strings.TrimSpace(input.Name) == "":
		return domainerrors.ErrInvalidArgument.WithDetails("name is required")
	case strings.TrimSpace(input.Email) == "":
		return domainerrors.ErrInvalidArgument.WithDetails("email is required")
	case input.Password == "":
		return domainerrors.ErrInvalidArgument.WithDetails("password is required")
	case !input.Role.IsValid():
		return domainerrors.ErrInvalidArgument.WithDetails("role is not recognised")
	}

	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
