package impl

import (
	"context"
	"log/slog"
	"mime"
	"path/filepath"
	"strings"
	"time"

	"indocafe/config"
	deliverycontext "indocafe/internal/delivery/context"
	"indocafe/internal/domain/constants"
	"indocafe/internal/domain/entity"
	domainerrors "indocafe/internal/domain/errors"
	"indocafe/internal/domain/repository"
	"indocafe/internal/domain/service"
	"indocafe/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

// menuService implements the MenuUsecase interface.
type menuService struct {
	menuItemRepo          repository.MenuItemRepository
	outletRepo            repository.OutletRepository
	configRepo            repository.OutletItemConfigRepository
	publisher             service.EventPublisher
	imageStore            service.ImageStore
	requireExistingOutlet bool
	now                   func() time.Time
	logger                *slog.Logger
}

// MenuServiceParams holds dependencies for MenuService, injected by Fx.
type MenuServiceParams struct {
	fx.In

	MenuItemRepo repository.MenuItemRepository
	OutletRepo   repository.OutletRepository
	ConfigRepo   repository.OutletItemConfigRepository
	Publisher    service.EventPublisher
	ImageStore   service.ImageStore
	Config       *config.Config
	Logger       *slog.Logger
}

// NewMenuService is the constructor for menuService.
func NewMenuService(params MenuServiceParams) usecase.MenuUsecase {
	requireExistingOutlet := false
	if params.Config != nil && params.Config.Menu != nil {
		requireExistingOutlet = params.Config.Menu.RequireExistingOutlet
	}

	return &menuService{
		menuItemRepo:          params.MenuItemRepo,
		outletRepo:            params.OutletRepo,
		configRepo:            params.ConfigRepo,
		publisher:             params.Publisher,
		imageStore:            params.ImageStore,
		requireExistingOutlet: requireExistingOutlet,
		now:                   time.Now,
		logger:                params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *menuService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetEffectiveMenu loads the catalog and the outlet's overrides concurrently and merges them.
func (srv *menuService) GetEffectiveMenu(ctx context.Context, rawOutletID string) ([]*entity.EffectiveMenuEntry, error) {
	outletID, err := parseID(rawOutletID, "outletId")
	if err != nil {
		return nil, err
	}

	if srv.requireExistingOutlet {
		if err := srv.ensureOutletExists(ctx, outletID); err != nil {
			return nil, err
		}
	}

	var (
		items   []*entity.MenuItem
		configs []*entity.OutletItemConfig
	)

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		var err error
		items, err = srv.menuItemRepo.FindAll(groupCtx)

		return errors.Wrap(err, "failed to load catalog")
	})
	group.Go(func() error {
		var err error
		configs, err = srv.configRepo.FindByOutlet(groupCtx, outletID)

		return errors.Wrap(err, "failed to load outlet overrides")
	})
	if err := group.Wait(); err != nil {
		srv.log(ctx).Error("Failed to build effective menu",
			slog.String("outlet_id", outletID.String()),
			slog.Any("error", err),
		)

		return nil, err
	}

	return entity.MergeMenu(items, configs), nil
}

// SetOutletItemConfig resolves the target outlet, authorizes the caller and upserts the override.
func (srv *menuService) SetOutletItemConfig(
	ctx context.Context,
	principal *entity.Principal,
	input *usecase.SetOutletItemConfigInput,
) (*entity.OutletItemConfig, error) {
	if principal == nil {
		return nil, domainerrors.ErrUnauthorized
	}
	if input == nil {
		return nil, domainerrors.ErrInvalidArgument.WithDetails("override input is required")
	}

	itemID, err := parseID(input.MenuItemID, "itemId")
	if err != nil {
		return nil, err
	}

	outletID, ok := principal.DefaultOutlet()
	if strings.TrimSpace(input.OutletID) != "" {
		if outletID, err = parseID(input.OutletID, "outletId"); err != nil {
			return nil, err
		}
	} else if !ok {
		return nil, domainerrors.ErrManagerWithoutOutlet
	}

	if price := input.Patch.CustomPrice; price.Set && price.Value != nil && price.Value.IsNegative() {
		return nil, domainerrors.ErrInvalidArgument.WithDetails("customPrice must not be negative")
	}

	if !principal.CanManageOutlet(outletID) {
		srv.log(ctx).Warn("Override rejected",
			slog.String("user_id", principal.UserID.String()),
			slog.String("role", principal.Role.String()),
			slog.String("outlet_id", outletID.String()),
		)

		return nil, domainerrors.ErrOutletAccessDenied
	}

	if _, err := srv.menuItemRepo.FindByID(ctx, itemID); err != nil {
		if errors.Is(err, repository.ErrMenuItemNotFound) {
			return nil, domainerrors.ErrMenuItemNotFound
		}

		return nil, errors.Wrap(err, "failed to find menu item")
	}

	if srv.requireExistingOutlet {
		if err := srv.ensureOutletExists(ctx, outletID); err != nil {
			return nil, err
		}
	}

	cfg, err := srv.configRepo.Upsert(ctx, outletID, itemID, input.Patch)
	if err != nil {
		return nil, errors.Wrap(err, "failed to upsert outlet item config")
	}

	srv.log(ctx).Info("Outlet item config updated",
		slog.String("outlet_id", outletID.String()),
		slog.String("menu_item_id", itemID.String()),
		slog.Bool("is_available", cfg.IsAvailable),
	)

	srv.publish(ctx, &service.MenuEvent{
		Type:       service.MenuEventConfigUpdated,
		OutletID:   outletID.String(),
		MenuItemID: itemID.String(),
		ActorID:    principal.UserID.String(),
	})

	return cfg, nil
}

// CreateMenuItem validates and stores a new catalog item.
func (srv *menuService) CreateMenuItem(
	ctx context.Context,
	principal *entity.Principal,
	input *usecase.CreateMenuItemInput,
) (*entity.MenuItem, error) {
	if !principal.IsChainAdmin() {
		return nil, domainerrors.ErrForbidden
	}

	if err := validateMenuItemInput(input); err != nil {
		return nil, err
	}

	id, err := newID()
	if err != nil {
		return nil, err
	}

	now := srv.now()
	item := &entity.MenuItem{
		ID:          id,
		Name:        strings.TrimSpace(input.Name),
		Description: strings.TrimSpace(input.Description),
		BasePrice:   input.BasePrice,
		Category:    entity.Category(strings.TrimSpace(input.Category.String())),
		IsVeg:       input.IsVeg,
		Pieces:      input.Pieces,
		Tags:        normalizeTags(input.Tags),
		Image:       strings.TrimSpace(input.Image),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := srv.menuItemRepo.Create(ctx, item); err != nil {
		return nil, errors.Wrap(err, "failed to create menu item")
	}

	srv.log(ctx).Info("Menu item created",
		slog.String("menu_item_id", item.ID.String()),
		slog.String("category", item.Category.String()),
	)

	srv.publish(ctx, &service.MenuEvent{
		Type:       service.MenuEventItemCreated,
		MenuItemID: item.ID.String(),
		ActorID:    principal.UserID.String(),
	})

	return item, nil
}

// ListCatalog returns the global catalog.
func (srv *menuService) ListCatalog(ctx context.Context) ([]*entity.MenuItem, error) {
	items, err := srv.menuItemRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list catalog")
	}

	return items, nil
}

// UploadMenuImage streams the image to the image store under a fresh key.
func (srv *menuService) UploadMenuImage(ctx context.Context, input *usecase.UploadMenuImageInput) (string, error) {
	if input == nil || input.Body == nil {
		return "", domainerrors.ErrInvalidArgument.WithDetails("image file is required")
	}

	id, err := newID()
	if err != nil {
		return "", err
	}

	key := constants.ImageKeyPrefix + id.String() + imageExtension(input.FileName, input.ContentType)

	url, err := srv.imageStore.Upload(ctx, key, input.ContentType, input.Body)
	if err != nil {
		return "", errors.Wrap(err, "failed to upload menu image")
	}

	srv.log(ctx).Info("Menu image uploaded", slog.String("key", key))

	return url, nil
}

// OpenMenuImage reads back an image stored by UploadMenuImage.
func (srv *menuService) OpenMenuImage(ctx context.Context, key string) (*service.StoredImage, error) {
	image, err := srv.imageStore.Open(ctx, strings.TrimLeft(key, "/"))
	if err != nil {
		return nil, errors.Wrap(err, "failed to open menu image")
	}

	return image, nil
}

func (srv *menuService) ensureOutletExists(ctx context.Context, outletID uuid.UUID) error {
	if _, err := srv.outletRepo.FindByID(ctx, outletID); err != nil {
		if errors.Is(err, repository.ErrOutletNotFound) {
			return domainerrors.ErrOutletNotFound
		}

		return errors.Wrap(err, "failed to find outlet")
	}

	return nil
}

// publish sends a menu event. Failures are logged and never fail the write that triggered them.
func (srv *menuService) publish(ctx context.Context, event *service.MenuEvent) {
	event.RequestID = deliverycontext.GetRequestIDFromContext(ctx)
	event.OccurredAt = srv.now().UTC()

	if err := srv.publisher.PublishMenuEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish menu event",
			slog.String("event_type", string(event.Type)),
			slog.String("menu_item_id", event.MenuItemID),
			slog.Any("error", err),
		)
	}
}

func validateMenuItemInput(input *usecase.CreateMenuItemInput) error {
	switch {
	case input == nil:
		return domainerrors.ErrInvalidArgument.WithDetails("menu item is required")
	case strings.TrimSpace(input.Name) == "":
		return domainerrors.ErrInvalidArgument.WithDetails("name is required")
	case input.BasePrice.IsNegative():
		return domainerrors.ErrInvalidArgument.WithDetails("basePrice must not be negative")
	case strings.TrimSpace(input.Category.String()) == "":
		return domainerrors.ErrInvalidArgument.WithDetails("category is required")
	case input.Pieces != nil && *input.Pieces < 0:
		return domainerrors.ErrInvalidArgument.WithDetails("pieces must not be negative")
	}

	return nil
}

// normalizeTags trims tags and drops blanks and duplicates, keeping first-seen order.
func normalizeTags(tags []string) []string {
	if len(tags) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}

	return out
}

func imageExtension(fileName, contentType string) string {
	if ext := strings.ToLower(filepath.Ext(fileName)); ext != "" {
		return ext
	}

	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return ""
	}
	if exts, err := mime.ExtensionsByType(mediaType); err == nil && len(exts) > 0 {
		return exts[0]
	}

	return ""
}
