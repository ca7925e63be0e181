package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"indocafe/config"
	deliverycontext "indocafe/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEcho(buf *bytes.Buffer, debug bool) *echo.Echo {
	logger := slog.New(slog.NewTextHandler(buf, nil))
	cfg := &config.Config{}
	cfg.Env.Debug = debug

	e := echo.New()
	e.Use(NewRequestIDMiddleware(logger).Process, NewLoggerMiddleware(logger, cfg).Handle)

	return e
}

func TestRequestIDMiddleware_PropagatesClientID(t *testing.T) {
	var buf bytes.Buffer
	e := newTestEcho(&buf, false)

	var seen string
	e.GET("/ping", func(c echo.Context) error {
		seen = deliverycontext.GetRequestIDFromContext(c.Request().Context())

		return c.NoContent(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "  client-42 ")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, "client-42", seen)
	assert.Equal(t, "client-42", rec.Header().Get(deliverycontext.HeaderXRequestID))
}

func TestRequestIDMiddleware_ReplacesMissingOrOversizedID(t *testing.T) {
	for name, header := range map[string]string{"missing": "", "oversized": strings.Repeat("x", maxRequestIDLength+1)} {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			e := newTestEcho(&buf, false)
			e.GET("/ping", func(c echo.Context) error { return c.NoContent(http.StatusNoContent) })

			req := httptest.NewRequest(http.MethodGet, "/ping", nil)
			req.Header.Set(deliverycontext.HeaderXRequestID, header)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			got := rec.Header().Get(deliverycontext.HeaderXRequestID)
			assert.NotEmpty(t, got)
			assert.NotEqual(t, header, got)
		})
	}
}

func TestLoggerMiddleware_LogsResolvedStatus(t *testing.T) {
	var buf bytes.Buffer
	e := newTestEcho(&buf, true)
	e.GET("/missing", func(echo.Context) error { return echo.ErrNotFound })

	req := httptest.NewRequest(http.MethodGet, "/missing?x=1", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "req-log")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	line := buf.String()
	assert.Contains(t, line, "level=WARN")
	assert.Contains(t, line, "status=404")
	assert.Contains(t, line, "request_id=req-log")
	assert.Contains(t, line, `query="x=1"`)
}

func TestLoggerMiddleware_SilentWithoutDebug(t *testing.T) {
	var buf bytes.Buffer
	e := newTestEcho(&buf, false)
	e.GET("/ok", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ok", nil))

	assert.Empty(t, buf.String())
}

func TestAccessLogLevel(t *testing.T) {
	assert.Equal(t, slog.LevelInfo, accessLogLevel(http.StatusOK))
	assert.Equal(t, slog.LevelWarn, accessLogLevel(http.StatusForbidden))
	assert.Equal(t, slog.LevelError, accessLogLevel(http.StatusServiceUnavailable))
}
