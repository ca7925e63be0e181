package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"indocafe/internal/delivery/http/middleware"
	"indocafe/internal/delivery/http/response"
	"indocafe/internal/domain/entity"
	"indocafe/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

const (
	// imageFormField is the multipart field carrying an uploaded menu image.
	imageFormField = "image"
	// Uploaded keys are never rewritten, so served images can be cached for long.
	imageCacheControl = "public, max-age=86400"
)

// MenuHandlerParams holds dependencies for MenuHandler, injected by Fx.
type MenuHandlerParams struct {
	fx.In

	MenuUC usecase.MenuUsecase
	Logger *slog.Logger
}

// MenuHandler serves the catalog and effective menu endpoints.
type MenuHandler struct {
	menuUC usecase.MenuUsecase
	logger *slog.Logger
}

// NewMenuHandler is the constructor for MenuHandler
func NewMenuHandler(params MenuHandlerParams) *MenuHandler {
	return &MenuHandler{
		menuUC: params.MenuUC,
		logger: params.Logger,
	}
}

// UpdateItemStatusRequest is the body of an override write. Omitted fields keep their stored value;
// an explicit null customPrice reverts the outlet to the base price.
type UpdateItemStatusRequest struct {
	OutletID    string               `json:"outletId"`
	IsAvailable *bool                `json:"isAvailable"`
	CustomPrice entity.OptionalPrice `json:"customPrice"`
}

// CreateMenuItemRequest represents the request body for adding a catalog item
type CreateMenuItemRequest struct {
	Name        string           `json:"name" validate:"required"`
	Description string           `json:"description"`
	BasePrice   *decimal.Decimal `json:"basePrice" validate:"required"`
	Category    string           `json:"category" validate:"required"`
	IsVeg       bool             `json:"isVeg"`
	Pieces      *int             `json:"pieces" validate:"omitempty,min=0"`
	Tags        []string         `json:"tags"`
	Image       string           `json:"image" validate:"omitempty,url"`
}

// GetEffectiveMenu returns the merged menu of one outlet.
func (h *MenuHandler) GetEffectiveMenu(c echo.Context) error {
	menu, err := h.menuUC.GetEffectiveMenu(c.Request().Context(), c.Param("outletId"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, menu, "Menu fetched successfully")
}

// UpdateItemStatus upserts the caller's override of one catalog item.
func (h *MenuHandler) UpdateItemStatus(c echo.Context) error {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	var req UpdateItemStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid item status input")
	}

	cfg, err := h.menuUC.SetOutletItemConfig(c.Request().Context(), principal, &usecase.SetOutletItemConfigInput{
		MenuItemID: c.Param("itemId"),
		OutletID:   req.OutletID,
		Patch: entity.OutletItemPatch{
			IsAvailable: req.IsAvailable,
			CustomPrice: req.CustomPrice,
		},
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, cfg, "Item status updated successfully")
}

// ListCatalog returns every catalog item.
func (h *MenuHandler) ListCatalog(c echo.Context) error {
	items, err := h.menuUC.ListCatalog(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, items, "Menu items fetched successfully")
}

// CreateMenuItem adds an item to the catalog.
func (h *MenuHandler) CreateMenuItem(c echo.Context) error {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	var req CreateMenuItemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid menu item input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	item, err := h.menuUC.CreateMenuItem(c.Request().Context(), principal, &usecase.CreateMenuItemInput{
		Name:        req.Name,
		Description: req.Description,
		BasePrice:   *req.BasePrice,
		Category:    entity.Category(req.Category),
		IsVeg:       req.IsVeg,
		Pieces:      req.Pieces,
		Tags:        req.Tags,
		Image:       req.Image,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, item, "Menu item created successfully")
}

// UploadMenuImage stores a multipart image and returns its URL.
func (h *MenuHandler) UploadMenuImage(c echo.Context) error {
	fileHeader, err := c.FormFile(imageFormField)
	if err != nil {
		return response.BindingError(c, "Multipart field \""+imageFormField+"\" is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return response.BindingError(c, "Uploaded image could not be read")
	}
	defer file.Close()

	url, err := h.menuUC.UploadMenuImage(c.Request().Context(), &usecase.UploadMenuImageInput{
		FileName:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get(echo.HeaderContentType),
		Body:        file,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, map[string]string{"url": url}, "Image uploaded successfully")
}

// GetMenuImage streams an uploaded image. The storage key is the wildcard part of the path.
func (h *MenuHandler) GetMenuImage(c echo.Context) error {
	image, err := h.menuUC.OpenMenuImage(c.Request().Context(), c.Param("*"))
	if err != nil {
		return response.HandleAppError(c, err)
	}
	defer image.Body.Close()

	header := c.Response().Header()
	header.Set("Cache-Control", imageCacheControl)
	if image.Size >= 0 {
		header.Set(echo.HeaderContentLength, strconv.FormatInt(image.Size, 10))
	}
	if !image.ModTime.IsZero() {
		header.Set(echo.HeaderLastModified, image.ModTime.UTC().Format(http.TimeFormat))
	}

	return c.Stream(http.StatusOK, image.ContentType, image.Body)
}
