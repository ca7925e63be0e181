package middleware

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"indocafe/internal/domain/entity"
	"indocafe/internal/domain/service"
	mockSvc "indocafe/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthTestContext(authorization string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	if authorization != "" {
		req.Header.Set(echo.HeaderAuthorization, authorization)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	outletID := uuid.New()
	claims := &service.Claims{UserID: uuid.New(), Role: entity.RoleOutletManager, OutletID: &outletID}

	t.Run("valid token stores the principal", func(t *testing.T) {
		tokens := mockSvc.NewMockTokenService(t)
		tokens.EXPECT().ValidateToken("good").Return(claims, nil)
		m := NewAuthMiddleware(tokens, slog.New(slog.DiscardHandler))

		c, rec := newAuthTestContext("bearer good")
		var seen *entity.Principal
		err := m.Authenticate(func(c echo.Context) error {
			seen, _ = GetPrincipal(c)

			return c.NoContent(http.StatusNoContent)
		})(c)

		require.NoError(t, err)
		assert.Equal(t, http.StatusNoContent, rec.Code)
		require.NotNil(t, seen)
		assert.Equal(t, claims.UserID, seen.UserID)
		assert.True(t, seen.CanManageOutlet(outletID))
	})

	tests := []struct {
		name   string
		header string
		code   string
	}{
		{name: "missing header", header: "", code: "MISSING_TOKEN"},
		{name: "wrong scheme", header: "Basic abc", code: "INVALID_TOKEN"},
		{name: "empty token", header: "Bearer   ", code: "INVALID_TOKEN"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewAuthMiddleware(mockSvc.NewMockTokenService(t), slog.New(slog.DiscardHandler))
			c, rec := newAuthTestContext(tt.header)

			err := m.Authenticate(func(echo.Context) error {
				t.Fatal("next must not be called")

				return nil
			})(c)

			require.NoError(t, err)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Contains(t, rec.Body.String(), `"code":"`+tt.code+`"`)
		})
	}

	t.Run("rejected token", func(t *testing.T) {
		tokens := mockSvc.NewMockTokenService(t)
		tokens.EXPECT().ValidateToken("expired").Return(nil, errors.New("token is expired"))
		m := NewAuthMiddleware(tokens, slog.New(slog.DiscardHandler))

		c, rec := newAuthTestContext("Bearer expired")
		require.NoError(t, m.Authenticate(func(echo.Context) error { return nil })(c))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestAuthMiddleware_RequireRole(t *testing.T) {
	m := NewAuthMiddleware(mockSvc.NewMockTokenService(t), slog.New(slog.DiscardHandler))
	gate := m.RequireRole(entity.RoleSuperAdmin)
	ok := func(c echo.Context) error { return c.NoContent(http.StatusNoContent) }

	c, rec := newAuthTestContext("")
	require.NoError(t, gate(ok)(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	c, rec = newAuthTestContext("")
	c.Set(principalKey, &entity.Principal{UserID: uuid.New(), Role: entity.RoleCashier})
	require.NoError(t, gate(ok)(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "SUPER_ADMIN")

	c, rec = newAuthTestContext("")
	c.Set(principalKey, &entity.Principal{UserID: uuid.New(), Role: entity.RoleSuperAdmin})
	require.NoError(t, gate(ok)(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}
