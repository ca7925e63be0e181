package usecase

import (
	"context"
	"io"

	"indocafe/internal/domain/entity"
	"indocafe/internal/domain/service"

	"github.com/shopspring/decimal"
)

// CreateMenuItemInput defines the data required to add an item to the global catalog.
type CreateMenuItemInput struct {
	Name        string
	Description string
	BasePrice   decimal.Decimal
	Category    entity.Category
	IsVeg       bool
	Pieces      *int
	Tags        []string
	Image       string
}

// SetOutletItemConfigInput carries an override write. OutletID may be empty, in which case
// the caller's primary outlet is targeted.
type SetOutletItemConfigInput struct {
	MenuItemID string
	OutletID   string
	Patch      entity.OutletItemPatch
}

// UploadMenuImageInput describes an image streamed to the image store.
type UploadMenuImageInput struct {
	FileName    string
	ContentType string
	Body        io.Reader
}

// MenuUsecase defines the catalog and effective menu operations.
type MenuUsecase interface {
	// GetEffectiveMenu merges the global catalog with the overrides of one outlet.
	GetEffectiveMenu(ctx context.Context, outletID string) ([]*entity.EffectiveMenuEntry, error)

	// SetOutletItemConfig upserts the override of one item at one outlet.
	SetOutletItemConfig(ctx context.Context, principal *entity.Principal, input *SetOutletItemConfigInput) (*entity.OutletItemConfig, error)

	// CreateMenuItem adds an item to the global catalog.
	CreateMenuItem(ctx context.Context, principal *entity.Principal, input *CreateMenuItemInput) (*entity.MenuItem, error)

	// ListCatalog returns the global catalog in insertion order.
	ListCatalog(ctx context.Context) ([]*entity.MenuItem, error)

	// UploadMenuImage stores an item image and returns its URL.
	UploadMenuImage(ctx context.Context, input *UploadMenuImageInput) (string, error)

	// OpenMenuImage reads back an uploaded image by its storage key.
	OpenMenuImage(ctx context.Context, key string) (*service.StoredImage, error)
}
