package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	domainerrors "indocafe/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func render(t *testing.T, write func(c echo.Context) error) (int, map[string]any) {
	t.Helper()

	fixed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	now = func() time.Time { return fixed }
	t.Cleanup(func() { now = time.Now })

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	require.NoError(t, write(c))

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return rec.Code, body
}

func TestSuccess_Envelope(t *testing.T) {
	code, body := render(t, func(c echo.Context) error {
		return Success(c, http.StatusCreated, map[string]string{"id": "x"}, "")
	})

	assert.Equal(t, http.StatusCreated, code)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Success", body["message"])
	assert.Equal(t, "2026-01-02T03:04:05Z", body["timestamp"])
	assert.NotContains(t, body, "code")
}

func TestAppError_ExposesDetailsOnlyForClientErrors(t *testing.T) {
	code, body := render(t, func(c echo.Context) error {
		return AppError(c, domainerrors.ErrInvalidArgument.WithDetails("itemId must be a valid UUID"))
	})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Invalid argument: itemId must be a valid UUID", body["message"])
	assert.Nil(t, body["data"])
	assert.Equal(t, "INVALID_ARGUMENT", body["code"])

	code, body = render(t, func(c echo.Context) error {
		return AppError(c, domainerrors.ErrOutletAccessDenied.WithDetails("outlet 42"))
	})
	assert.Equal(t, http.StatusForbidden, code)
	assert.Equal(t, "Not authorized to manage this outlet", body["message"])

	code, body = render(t, func(c echo.Context) error {
		return AppError(c, domainerrors.NewStorageUnavailableError(errors.New("dial tcp"), "failed to list catalog"))
	})
	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Equal(t, "Storage unavailable", body["message"])
	assert.Equal(t, false, body["success"])
}

func TestHandleAppError_PassesThroughUnknownErrors(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	err := HandleAppError(c, errors.New("boom"))
	assert.EqualError(t, err, "boom")
}
