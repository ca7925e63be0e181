package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"indocafe/config"
	deliverycontext "indocafe/internal/delivery/context"
	"indocafe/internal/domain/constants"
	domainerrors "indocafe/internal/domain/errors"
	"indocafe/internal/domain/service"
	mockUC "indocafe/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

func newTestPushHandler(t *testing.T, provider string) (*PushHandler, *mockUC.MockSnapshotUsecase) {
	snapshotUC := mockUC.NewMockSnapshotUsecase(t)
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: provider}}
	cfg.Env.Env = "production"

	h := NewPushHandler(PushHandlerParams{
		Config:     cfg,
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		SnapshotUC: snapshotUC,
	})

	return h, snapshotUC
}

func pushBody(t *testing.T, event any, attributes map[string]string) string {
	data, err := json.Marshal(event)
	require.NoError(t, err)

	var msg PubSubMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.MessageID = "msg-1"
	msg.Message.Attributes = attributes
	msg.Subscription = "projects/local/subscriptions/menu-events-sub"

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func servePush(h *PushHandler, body string, header http.Header) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for key, values := range header {
		req.Header[key] = values
	}
	rec := httptest.NewRecorder()
	_ = h.HandlePush(e.NewContext(req, rec))

	return rec
}

func TestPushHandler_DispatchesMenuEvent(t *testing.T) {
	h, snapshotUC := newTestPushHandler(t, constants.PubSubProviderLocal)

	event := service.MenuEvent{
		Type:       service.MenuEventConfigUpdated,
		OutletID:   "0190c1a2-0000-7000-8000-000000000001",
		MenuItemID: "0190c1a2-0000-7000-8000-000000000002",
	}

	snapshotUC.EXPECT().HandleMenuEvent(mock.Anything, mock.MatchedBy(func(got *service.MenuEvent) bool {
		return got.Type == event.Type && got.OutletID == event.OutletID
	})).Return(nil)

	rec := servePush(h, pushBody(t, event, map[string]string{"request_id": "req-42"}), nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_PropagatesRequestID(t *testing.T) {
	h, snapshotUC := newTestPushHandler(t, constants.PubSubProviderLocal)

	var seen string
	snapshotUC.EXPECT().HandleMenuEvent(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, _ *service.MenuEvent) error {
			seen = deliverycontext.GetRequestIDFromContext(ctx)

			return nil
		})

	event := service.MenuEvent{Type: service.MenuEventItemCreated, RequestID: "from-event"}
	rec := servePush(h, pushBody(t, event, map[string]string{"request_id": "from-attribute"}), nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "from-attribute", seen)
}

func TestPushHandler_FailureClassification(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{
			name: "storage outage is redelivered",
			err:  domainerrors.NewStorageUnavailableError(errors.New("bucket down"), "failed to write menu snapshot"),
			want: http.StatusServiceUnavailable,
		},
		{
			name: "timeout is redelivered",
			err:  errors.Wrap(context.DeadlineExceeded, "refresh"),
			want: http.StatusServiceUnavailable,
		},
		{
			name: "unknown outlet is acknowledged",
			err:  domainerrors.ErrOutletNotFound,
			want: http.StatusOK,
		},
		{
			name: "unsupported event is acknowledged",
			err:  domainerrors.ErrInvalidArgument.WithDetails("unsupported event type: x"),
			want: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, snapshotUC := newTestPushHandler(t, constants.PubSubProviderLocal)
			snapshotUC.EXPECT().HandleMenuEvent(mock.Anything, mock.Anything).Return(tt.err)

			rec := servePush(h, pushBody(t, service.MenuEvent{Type: service.MenuEventItemCreated}, nil), nil)
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestPushHandler_RejectsMalformedPayloads(t *testing.T) {
	h, _ := newTestPushHandler(t, constants.PubSubProviderLocal)

	rec := servePush(h, `{"message":{"data":"%%%not-base64"}}`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	notJSON := base64.StdEncoding.EncodeToString([]byte("plain text"))
	rec = servePush(h, `{"message":{"data":"`+notJSON+`"}}`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPushHandler_VerifiesGoogleToken(t *testing.T) {
	event := service.MenuEvent{Type: service.MenuEventItemCreated}

	t.Run("missing header", func(t *testing.T) {
		h, _ := newTestPushHandler(t, constants.PubSubProviderGoogle)
		require.True(t, h.verifyPushAuth)

		rec := servePush(h, pushBody(t, event, nil), nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("foreign issuer", func(t *testing.T) {
		h, _ := newTestPushHandler(t, constants.PubSubProviderGoogle)
		h.validateToken = func(context.Context, string, string) (*idtoken.Payload, error) {
			return &idtoken.Payload{Issuer: "https://evil.example.com"}, nil
		}

		rec := servePush(h, pushBody(t, event, nil), http.Header{"Authorization": {"Bearer token"}})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("valid token", func(t *testing.T) {
		h, snapshotUC := newTestPushHandler(t, constants.PubSubProviderGoogle)

		var audience string
		h.validateToken = func(_ context.Context, token, aud string) (*idtoken.Payload, error) {
			audience = aud

			return &idtoken.Payload{
				Issuer: "https://accounts.google.com",
				Claims: map[string]any{"email_verified": true},
			}, nil
		}
		snapshotUC.EXPECT().HandleMenuEvent(mock.Anything, mock.Anything).Return(nil)

		rec := servePush(h, pushBody(t, event, nil), http.Header{"Authorization": {"Bearer token"}})
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "http://example.com/push", audience)
	})
}
