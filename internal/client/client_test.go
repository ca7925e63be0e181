package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"indocafe/internal/domain/entity"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedRequest struct {
	method        string
	path          string
	query         string
	authorization string
	contentType   string
	body          []byte
}

type fakeAPI struct {
	mu       sync.Mutex
	requests []recordedRequest
	respond  func(w http.ResponseWriter, r *http.Request)
}

func (f *fakeAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)

	f.mu.Lock()
	f.requests = append(f.requests, recordedRequest{
		method:        r.Method,
		path:          r.URL.Path,
		query:         r.URL.RawQuery,
		authorization: r.Header.Get("Authorization"),
		contentType:   r.Header.Get("Content-Type"),
		body:          body,
	})
	f.mu.Unlock()

	f.respond(w, r)
}

func (f *fakeAPI) last() recordedRequest {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.requests[len(f.requests)-1]
}

func writeEnvelope(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"success":   status < http.StatusBadRequest,
		"message":   "ok",
		"data":      data,
		"timestamp": "2026-01-01T00:00:00Z",
	})
}

func newTestClient(t *testing.T, respond func(w http.ResponseWriter, r *http.Request)) (*Client, *fakeAPI) {
	t.Helper()

	api := &fakeAPI{respond: respond}
	server := httptest.NewServer(api)
	t.Cleanup(server.Close)

	c, err := New(server.URL + "/")
	require.NoError(t, err)

	return c, api
}

func TestNew_RejectsRelativeURL(t *testing.T) {
	_, err := New("localhost:8080")
	assert.Error(t, err)

	_, err = New("/api")
	assert.Error(t, err)
}

func TestClient_CredentialIsPerRequest(t *testing.T) {
	c, api := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		writeEnvelope(w, http.StatusOK, []any{})
	})
	ctx := context.Background()

	_, err := c.ListCatalog(ctx, Bearer("token-a"))
	require.NoError(t, err)
	assert.Equal(t, "Bearer token-a", api.last().authorization)

	_, err = c.ListOutlets(ctx, Bearer("token-b"))
	require.NoError(t, err)
	assert.Equal(t, "Bearer token-b", api.last().authorization)

	// Public calls never inherit an earlier credential
	_, err = c.GetEffectiveMenu(ctx, "outlet-1")
	require.NoError(t, err)
	assert.Empty(t, api.last().authorization)
	assert.Equal(t, "/api/public/menu/outlet-1", api.last().path)
}

func TestClient_MissingCredential(t *testing.T) {
	c, api := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		writeEnvelope(w, http.StatusOK, nil)
	})

	_, err := c.ListCatalog(context.Background(), Credential{AccessToken: "  "})
	require.ErrorIs(t, err, ErrMissingCredential)
	assert.Empty(t, api.requests)
}

func TestClient_APIError(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		_, _ = io.WriteString(w, `{"success":false,"message":"Not authorized to manage this outlet","data":null,"code":"FORBIDDEN"}`)
	})

	_, err := c.UpdateItemStatus(context.Background(), Bearer("t"), "item-1", &UpdateItemStatusRequest{})
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusForbidden, apiErr.StatusCode)
	assert.Equal(t, "FORBIDDEN", apiErr.Code)
	assert.Equal(t, "Not authorized to manage this outlet", apiErr.Message)
	assert.True(t, IsStatus(err, http.StatusForbidden))
	assert.False(t, IsStatus(err, http.StatusNotFound))
}

func TestClient_UpdateItemStatusBody(t *testing.T) {
	c, api := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		writeEnvelope(w, http.StatusOK, map[string]any{"isAvailable": false, "customPrice": nil})
	})
	ctx := context.Background()
	available := false

	tests := []struct {
		name string
		in   *UpdateItemStatusRequest
		want string
	}{
		{
			name: "availability only",
			in:   &UpdateItemStatusRequest{IsAvailable: &available},
			want: `{"isAvailable":false}`,
		},
		{
			name: "explicit null price",
			in:   &UpdateItemStatusRequest{OutletID: "o1", CustomPrice: &entity.OptionalPrice{Set: true}},
			want: `{"outletId":"o1","customPrice":null}`,
		},
		{
			name: "price value",
			in: func() *UpdateItemStatusRequest {
				price := entity.PriceOf(decimal.RequireFromString("99.5"))

				return &UpdateItemStatusRequest{CustomPrice: &price}
			}(),
			want: `{"customPrice":"99.5"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := c.UpdateItemStatus(ctx, Bearer("t"), "item-1", tt.in)
			require.NoError(t, err)
			assert.False(t, cfg.IsAvailable)

			req := api.last()
			assert.Equal(t, http.MethodPut, req.method)
			assert.Equal(t, "/api/manager/menu/item-1/status", req.path)
			assert.JSONEq(t, tt.want, string(req.body))
		})
	}
}

func TestClient_NearbyOutletsQuery(t *testing.T) {
	c, api := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		writeEnvelope(w, http.StatusOK, []map[string]any{{
			"outlet": map[string]any{
				"id":       "0190a6f4-0000-7000-8000-000000000001",
				"name":     "Gambir",
				"location": map[string]any{"type": "Point", "coordinates": []float64{106.8306, -6.1766}},
			},
			"distanceKm": 0.4,
		}})
	})

	results, err := c.NearbyOutlets(context.Background(), -6.1754, 106.8272, 0)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Gambir", results[0].Outlet.Name)
	assert.InDelta(t, -6.1766, results[0].Outlet.Point().Lat(), 1e-9)
	assert.InDelta(t, 106.8306, results[0].Outlet.Point().Lon(), 1e-9)
	assert.Equal(t, "lat=-6.1754&lng=106.8272", api.last().query)
}

func TestClient_LoginAndCreateUser(t *testing.T) {
	c, api := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/auth/login":
			writeEnvelope(w, http.StatusOK, map[string]any{"accessToken": "issued", "tokenType": "Bearer"})
		default:
			writeEnvelope(w, http.StatusCreated, map[string]any{"email": "budi@indocafe.id", "role": "OUTLET_MANAGER"})
		}
	})
	ctx := context.Background()

	login, err := c.Login(ctx, "admin@indocafe.id", "secret")
	require.NoError(t, err)
	assert.Empty(t, api.last().authorization)
	assert.JSONEq(t, `{"email":"admin@indocafe.id","password":"secret"}`, string(api.last().body))

	user, err := c.CreateUser(ctx, login.Credential(), &CreateUserRequest{
		Name:     "Budi",
		Email:    "budi@indocafe.id",
		Password: "manager-password",
		Role:     "OUTLET_MANAGER",
		OutletID: "o1",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleOutletManager, user.Role)
	assert.Equal(t, "Bearer issued", api.last().authorization)
	assert.Equal(t, "application/json", api.last().contentType)
}

func TestClient_UploadMenuImage(t *testing.T) {
	c, api := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		writeEnvelope(w, http.StatusCreated, map[string]string{"url": "https://cdn.indocafe.id/menu-items/x.png"})
	})

	url, err := c.UploadMenuImage(context.Background(), Bearer("t"), "nasi.png", "image/png", strings.NewReader("png-bytes"))
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.indocafe.id/menu-items/x.png", url)

	req := api.last()
	assert.True(t, strings.HasPrefix(req.contentType, "multipart/form-data; boundary="))
	assert.Contains(t, string(req.body), `name="image"; filename="nasi.png"`)
	assert.Contains(t, string(req.body), "Content-Type: image/png")
	assert.Contains(t, string(req.body), "png-bytes")
}

func TestClient_OutletQRCode(t *testing.T) {
	c, api := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/admin/outlets/missing/qr" {
			writeEnvelope(w, http.StatusNotFound, nil)

			return
		}
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write([]byte("\x89PNG"))
	})
	ctx := context.Background()

	png, err := c.OutletQRCode(ctx, Bearer("t"), "o1")
	require.NoError(t, err)
	assert.Equal(t, []byte("\x89PNG"), png)
	assert.Equal(t, "Bearer t", api.last().authorization)

	_, err = c.OutletQRCode(ctx, Bearer("t"), "missing")
	assert.True(t, IsStatus(err, http.StatusNotFound))
}
