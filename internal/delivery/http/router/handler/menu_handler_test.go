package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"indocafe/internal/delivery/http/validator"
	"indocafe/internal/domain/entity"
	domainerrors "indocafe/internal/domain/errors"
	"indocafe/internal/domain/service"
	mockUC "indocafe/internal/mocks/usecase"
	"indocafe/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newMenuHandlerContext(method, body string, principal *entity.Principal) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validator.New()

	req := httptest.NewRequest(method, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if principal != nil {
		c.Set("principal", principal)
	}

	return c, rec
}

func TestMenuHandler_UpdateItemStatus_BindsPriceTriState(t *testing.T) {
	itemID := uuid.New().String()
	manager := &entity.Principal{UserID: uuid.New(), Role: entity.RoleOutletManager}

	tests := []struct {
		name  string
		body  string
		check func(t *testing.T, patch entity.OutletItemPatch)
	}{
		{
			name: "price omitted",
			body: `{"isAvailable": false}`,
			check: func(t *testing.T, patch entity.OutletItemPatch) {
				require.NotNil(t, patch.IsAvailable)
				assert.False(t, *patch.IsAvailable)
				assert.False(t, patch.CustomPrice.Set)
			},
		},
		{
			name: "explicit null",
			body: `{"customPrice": null}`,
			check: func(t *testing.T, patch entity.OutletItemPatch) {
				assert.Nil(t, patch.IsAvailable)
				assert.True(t, patch.CustomPrice.Set)
				assert.Nil(t, patch.CustomPrice.Value)
			},
		},
		{
			name: "numeric price",
			body: `{"customPrice": 300}`,
			check: func(t *testing.T, patch entity.OutletItemPatch) {
				require.True(t, patch.CustomPrice.Set)
				require.NotNil(t, patch.CustomPrice.Value)
				assert.True(t, patch.CustomPrice.Value.Equal(decimal.NewFromInt(300)))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			menuUC := mockUC.NewMockMenuUsecase(t)
			h := NewMenuHandler(MenuHandlerParams{MenuUC: menuUC, Logger: slog.New(slog.DiscardHandler)})

			menuUC.EXPECT().SetOutletItemConfig(mock.Anything, manager, mock.AnythingOfType("*usecase.SetOutletItemConfigInput")).
				RunAndReturn(func(_ context.Context, _ *entity.Principal, input *usecase.SetOutletItemConfigInput) (*entity.OutletItemConfig, error) {
					assert.Equal(t, itemID, input.MenuItemID)
					tt.check(t, input.Patch)

					return &entity.OutletItemConfig{MenuItemID: uuid.MustParse(itemID)}, nil
				})

			c, rec := newMenuHandlerContext(http.MethodPut, tt.body, manager)
			c.SetParamNames("itemId")
			c.SetParamValues(itemID)

			require.NoError(t, h.UpdateItemStatus(c))
			assert.Equal(t, http.StatusOK, rec.Code)
		})
	}
}

func TestMenuHandler_UpdateItemStatus_MapsDomainErrors(t *testing.T) {
	menuUC := mockUC.NewMockMenuUsecase(t)
	h := NewMenuHandler(MenuHandlerParams{MenuUC: menuUC, Logger: slog.New(slog.DiscardHandler)})
	manager := &entity.Principal{UserID: uuid.New(), Role: entity.RoleOutletManager}

	menuUC.EXPECT().SetOutletItemConfig(mock.Anything, manager, mock.Anything).Return(nil, domainerrors.ErrManagerWithoutOutlet)

	c, rec := newMenuHandlerContext(http.MethodPut, `{"isAvailable": true}`, manager)
	require.NoError(t, h.UpdateItemStatus(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Manager is not assigned to an outlet")
}

func TestMenuHandler_CreateMenuItem_Validation(t *testing.T) {
	menuUC := mockUC.NewMockMenuUsecase(t)
	h := NewMenuHandler(MenuHandlerParams{MenuUC: menuUC, Logger: slog.New(slog.DiscardHandler)})
	admin := &entity.Principal{UserID: uuid.New(), Role: entity.RoleSuperAdmin}

	c, rec := newMenuHandlerContext(http.MethodPost, `{"category": "Mains"}`, admin)
	require.NoError(t, h.CreateMenuItem(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "name is required")
	assert.Contains(t, rec.Body.String(), "basePrice is required")

	c, rec = newMenuHandlerContext(http.MethodPost, `{"name": "Es Teh"}`, nil)
	require.NoError(t, h.CreateMenuItem(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMenuHandler_GetMenuImage_StreamsStoredImage(t *testing.T) {
	menuUC := mockUC.NewMockMenuUsecase(t)
	h := NewMenuHandler(MenuHandlerParams{MenuUC: menuUC, Logger: slog.New(slog.DiscardHandler)})

	modTime := time.Date(2026, 10, 1, 8, 0, 0, 0, time.UTC)
	menuUC.EXPECT().OpenMenuImage(mock.Anything, "menu-items/x.png").Return(&service.StoredImage{
		Body:        io.NopCloser(strings.NewReader("png-bytes")),
		ContentType: "image/png",
		Size:        9,
		ModTime:     modTime,
	}, nil)

	c, rec := newMenuHandlerContext(http.MethodGet, "", nil)
	c.SetParamNames("*")
	c.SetParamValues("menu-items/x.png")

	require.NoError(t, h.GetMenuImage(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, "9", rec.Header().Get(echo.HeaderContentLength))
	assert.Equal(t, modTime.Format(http.TimeFormat), rec.Header().Get(echo.HeaderLastModified))
	assert.Equal(t, "png-bytes", rec.Body.String())
}

func TestMenuHandler_GetMenuImage_NotFound(t *testing.T) {
	menuUC := mockUC.NewMockMenuUsecase(t)
	h := NewMenuHandler(MenuHandlerParams{MenuUC: menuUC, Logger: slog.New(slog.DiscardHandler)})

	menuUC.EXPECT().OpenMenuImage(mock.Anything, "menu-items/gone.png").Return(nil, domainerrors.ErrNotFound)

	c, rec := newMenuHandlerContext(http.MethodGet, "", nil)
	c.SetParamNames("*")
	c.SetParamValues("menu-items/gone.png")

	require.NoError(t, h.GetMenuImage(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
