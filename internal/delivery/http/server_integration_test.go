package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"indocafe/config"
	deliverycontext "indocafe/internal/delivery/context"
	deliveryhttp "indocafe/internal/delivery/http"
	httpmiddleware "indocafe/internal/delivery/http/middleware"
	"indocafe/internal/delivery/http/router"
	"indocafe/internal/delivery/http/router/handler"
	"indocafe/internal/domain/constants"
	"indocafe/internal/domain/service"
	"indocafe/internal/infra/auth"
	"indocafe/internal/infra/imagestore"
	"indocafe/internal/infra/persistence"
	"indocafe/internal/infra/qrcode"
	"indocafe/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
	"golang.org/x/crypto/bcrypt"
)

const (
	adminEmail    = "admin@indocafe.id"
	adminPassword = "admin-password"
)

type recordingPublisher struct {
	mu     sync.Mutex
	events []*service.MenuEvent
}

func (p *recordingPublisher) PublishMenuEvent(_ context.Context, event *service.MenuEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)

	return nil
}

func (p *recordingPublisher) Close() error {
	return nil
}

func (p *recordingPublisher) types() []service.MenuEventType {
	p.mu.Lock()
	defer p.mu.Unlock()

	types := make([]service.MenuEventType, 0, len(p.events))
	for _, event := range p.events {
		types = append(types, event.Type)
	}

	return types
}

type envelope struct {
	Success   bool            `json:"success"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data"`
	Code      string          `json:"code"`
	Timestamp time.Time       `json:"timestamp"`
}

type testApp struct {
	t         *testing.T
	echo      *echo.Echo
	publisher *recordingPublisher
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	cfg := &config.Config{}
	cfg.Env.Env = "test"
	cfg.HTTP.MaxRequestBodySize = "1MB"
	cfg.SecretKey.Access = "integration-secret"
	cfg.Auth = &config.AuthConfig{BcryptCost: bcrypt.MinCost, AccessTokenTTL: time.Hour}
	cfg.Menu = &config.MenuConfig{}
	cfg.Bootstrap = &config.BootstrapConfig{AdminEmail: adminEmail, AdminPassword: adminPassword}
	cfg.QRCode = &config.QRCodeConfig{Size: 128, ErrorCorrectionLevel: "M", BaseURL: "https://menu.indocafe.id"}

	logger := slog.New(slog.DiscardHandler)
	repos := persistence.NewMemoryRepositories()
	publisher := &recordingPublisher{}

	tokens, err := auth.NewJWTService(cfg)
	require.NoError(t, err)
	hasher := auth.NewBcryptHasher(cfg)

	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	menuUC := impl.NewMenuService(impl.MenuServiceParams{
		MenuItemRepo: repos.MenuItems,
		OutletRepo:   repos.Outlets,
		ConfigRepo:   repos.OutletItemConfigs,
		Publisher:    publisher,
		ImageStore:   imagestore.NewBucketStore(bucket, "http://example.com"+constants.ImageRoutePath, 1<<20),
		Config:       cfg,
		Logger:       logger,
	})
	outletUC := impl.NewOutletService(impl.OutletServiceParams{
		OutletRepo: repos.Outlets,
		QRCode:     qrcode.NewFromConfig(cfg),
		Logger:     logger,
	})
	userUC := impl.NewUserService(impl.UserServiceParams{
		UserRepo:     repos.Users,
		OutletRepo:   repos.Outlets,
		Hasher:       hasher,
		TokenService: tokens,
		Config:       cfg,
		Logger:       logger,
	})
	require.NoError(t, userUC.EnsureBootstrapAdmin(context.Background()))

	e := deliveryhttp.NewEcho(cfg, logger, router.RouterParams{
		MenuHandler:    handler.NewMenuHandler(handler.MenuHandlerParams{MenuUC: menuUC, Logger: logger}),
		OutletHandler:  handler.NewOutletHandler(handler.OutletHandlerParams{OutletUC: outletUC, Logger: logger}),
		UserHandler:    handler.NewUserHandler(handler.UserHandlerParams{UserUC: userUC, Logger: logger}),
		AuthMiddleware: httpmiddleware.NewAuthMiddleware(tokens, logger),
	})

	return &testApp{t: t, echo: e, publisher: publisher}
}

func (a *testApp) do(method, path, token string, body any) (*httptest.ResponseRecorder, envelope) {
	a.t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(a.t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	return a.serve(req)
}

func (a *testApp) serve(req *http.Request) (*httptest.ResponseRecorder, envelope) {
	a.t.Helper()

	rec := httptest.NewRecorder()
	a.echo.ServeHTTP(rec, req)

	var env envelope
	if strings.HasPrefix(rec.Header().Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
		require.NoError(a.t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	}

	return rec, env
}

func (a *testApp) login(email, password string) string {
	a.t.Helper()

	rec, env := a.do(http.MethodPost, "/api/auth/login", "", map[string]string{"email": email, "password": password})
	require.Equal(a.t, http.StatusOK, rec.Code, rec.Body.String())

	var out struct {
		AccessToken string `json:"accessToken"`
	}
	require.NoError(a.t, json.Unmarshal(env.Data, &out))
	require.NotEmpty(a.t, out.AccessToken)

	return out.AccessToken
}

func (a *testApp) createOutlet(token, name string, lng, lat float64) string {
	a.t.Helper()

	rec, env := a.do(http.MethodPost, "/api/admin/outlets", token, map[string]any{
		"name":        name,
		"address":     "Jakarta",
		"type":        "dine_in",
		"phoneNumber": "+62 21 555 0101",
		"location":    map[string]any{"type": "Point", "coordinates": []float64{lng, lat}},
	})
	require.Equal(a.t, http.StatusCreated, rec.Code, rec.Body.String())

	return decodeID(a.t, env.Data)
}

func (a *testApp) createMenuItem(token, name, price string) string {
	a.t.Helper()

	rec, env := a.do(http.MethodPost, "/api/admin/menu", token, map[string]any{
		"name":      name,
		"basePrice": json.RawMessage(price),
		"category":  "Mains",
	})
	require.Equal(a.t, http.StatusCreated, rec.Code, rec.Body.String())

	return decodeID(a.t, env.Data)
}

func decodeID(t *testing.T, data json.RawMessage) string {
	t.Helper()

	var out struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(data, &out))
	require.NotEmpty(t, out.ID)

	return out.ID
}

type menuEntry struct {
	ID            string  `json:"id"`
	Price         float64 `json:"price,string"`
	OriginalPrice float64 `json:"originalPrice,string"`
	IsAvailable   bool    `json:"isAvailable"`
}

func (a *testApp) menu(outletID string) []menuEntry {
	a.t.Helper()

	rec, env := a.do(http.MethodGet, "/api/public/menu/"+outletID, "", nil)
	require.Equal(a.t, http.StatusOK, rec.Code, rec.Body.String())

	var entries []menuEntry
	require.NoError(a.t, json.Unmarshal(env.Data, &entries))

	return entries
}

func TestAPI_HealthAndRequestID(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "req-123")
	rec, env := app.serve(req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "req-123", rec.Header().Get(deliverycontext.HeaderXRequestID))
	assert.True(t, env.Success)
	assert.WithinDuration(t, time.Now(), env.Timestamp, time.Minute)
}

func TestAPI_MenuOverrideLifecycle(t *testing.T) {
	app := newTestApp(t)
	admin := app.login(adminEmail, adminPassword)

	home := app.createOutlet(admin, "Kemang", 106.8137, -6.2607)
	other := app.createOutlet(admin, "Menteng", 106.8325, -6.1950)
	first := app.createMenuItem(admin, "Nasi Goreng", `250`)
	second := app.createMenuItem(admin, "Sate Ayam", `"120.50"`)

	rec, _ := app.do(http.MethodPost, "/api/admin/users", admin, map[string]any{
		"name":     "Budi",
		"email":    "budi@indocafe.id",
		"password": "manager-password",
		"role":     "OUTLET_MANAGER",
		"outletId": home,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	manager := app.login("budi@indocafe.id", "manager-password")

	// Defaults before any override, in catalog order
	entries := app.menu(home)
	require.Len(t, entries, 2)
	assert.Equal(t, first, entries[0].ID)
	assert.Equal(t, second, entries[1].ID)
	assert.InDelta(t, 250, entries[0].Price, 0.001)
	assert.True(t, entries[0].IsAvailable)

	// Hide the item at the manager's outlet
	rec, env := app.do(http.MethodPut, "/api/manager/menu/"+first+"/status", manager, map[string]any{"isAvailable": false})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.True(t, env.Success)

	// Partial update keeps the availability flag
	rec, _ = app.do(http.MethodPut, "/api/manager/menu/"+first+"/status", manager, map[string]any{"customPrice": 300})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	entries = app.menu(home)
	assert.False(t, entries[0].IsAvailable)
	assert.InDelta(t, 300, entries[0].Price, 0.001)
	assert.InDelta(t, 250, entries[0].OriginalPrice, 0.001)

	// Explicit null reverts to the base price
	rec, _ = app.do(http.MethodPut, "/api/manager/menu/"+first+"/status", manager, map[string]any{"customPrice": nil})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	entries = app.menu(home)
	assert.InDelta(t, 250, entries[0].Price, 0.001)
	assert.False(t, entries[0].IsAvailable)

	// Other outlets are unaffected
	entries = app.menu(other)
	assert.True(t, entries[0].IsAvailable)
	assert.InDelta(t, 250, entries[0].Price, 0.001)

	// Managers cannot touch foreign outlets
	rec, env = app.do(http.MethodPut, "/api/manager/menu/"+first+"/status", manager, map[string]any{
		"outletId":    other,
		"isAvailable": false,
	})
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.False(t, env.Success)
	assert.Equal(t, "null", string(env.Data))

	// Chain administrators can
	rec, _ = app.do(http.MethodPut, "/api/manager/menu/"+second+"/status", admin, map[string]any{
		"outletId":    other,
		"customPrice": "99.90",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	entries = app.menu(other)
	assert.InDelta(t, 99.90, entries[1].Price, 0.001)
	assert.InDelta(t, 120.50, entries[1].OriginalPrice, 0.001)

	assert.Contains(t, app.publisher.types(), service.MenuEventItemCreated)
	assert.Contains(t, app.publisher.types(), service.MenuEventConfigUpdated)
}

func TestAPI_OverrideErrors(t *testing.T) {
	app := newTestApp(t)
	admin := app.login(adminEmail, adminPassword)
	outlet := app.createOutlet(admin, "Kemang", 106.8137, -6.2607)

	rec, env := app.do(http.MethodPut, "/api/manager/menu/"+outlet+"/status", admin, map[string]any{
		"outletId":    outlet,
		"isAvailable": false,
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "MENU_ITEM_NOT_FOUND", env.Code)

	item := app.createMenuItem(admin, "Es Teh", `15`)
	rec, _ = app.do(http.MethodPut, "/api/manager/menu/"+item+"/status", admin, map[string]any{
		"outletId":    outlet,
		"customPrice": -5,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Chain administrators have no primary outlet
	rec, env = app.do(http.MethodPut, "/api/manager/menu/"+item+"/status", admin, map[string]any{"isAvailable": false})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_STATE", env.Code)

	rec, _ = app.do(http.MethodGet, "/api/public/menu/not-a-uuid", "", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAPI_AccessControl(t *testing.T) {
	app := newTestApp(t)
	admin := app.login(adminEmail, adminPassword)
	outlet := app.createOutlet(admin, "Kemang", 106.8137, -6.2607)

	rec, env := app.do(http.MethodGet, "/api/admin/menu", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, env.Success)

	rec, _ = app.do(http.MethodGet, "/api/admin/menu", "garbage", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec, _ = app.do(http.MethodPost, "/api/admin/users", admin, map[string]any{
		"name":     "Sari",
		"email":    "sari@indocafe.id",
		"password": "cashier-password",
		"role":     "CASHIER",
		"outletId": outlet,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	cashier := app.login("sari@indocafe.id", "cashier-password")

	rec, _ = app.do(http.MethodGet, "/api/admin/menu", cashier, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec, _ = app.do(http.MethodPut, "/api/manager/menu/"+outlet+"/status", cashier, map[string]any{"isAvailable": false})
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec, env = app.do(http.MethodGet, "/api/auth/me", cashier, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(env.Data), `"role":"CASHIER"`)
	assert.NotContains(t, string(env.Data), "password")

	rec, _ = app.do(http.MethodPost, "/api/auth/login", "", map[string]string{"email": "sari@indocafe.id", "password": "wrong-password"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAPI_StaffProvisioning(t *testing.T) {
	app := newTestApp(t)
	admin := app.login(adminEmail, adminPassword)

	rec, env := app.do(http.MethodPost, "/api/admin/users", admin, map[string]any{
		"name":     "Rudi",
		"email":    "rudi@indocafe.id",
		"password": "kitchen-password",
		"role":     "KITCHEN",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Outlet ID is required for operational roles", env.Message)

	rec, _ = app.do(http.MethodPost, "/api/admin/users", admin, map[string]any{
		"name":     "Another Admin",
		"email":    strings.ToUpper(adminEmail),
		"password": "another-password",
		"role":     "SUPER_ADMIN",
	})
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec, env = app.do(http.MethodPost, "/api/admin/users", admin, map[string]any{"name": "x"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", env.Code)
}

func TestAPI_OutletsListingNearbyAndQRCode(t *testing.T) {
	app := newTestApp(t)
	admin := app.login(adminEmail, adminPassword)

	gambir := app.createOutlet(admin, "Gambir", 106.8306, -6.1766)
	app.createOutlet(admin, "Bandung", 107.6191, -6.9175)

	rec, env := app.do(http.MethodGet, "/api/admin/outlets", admin, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var summaries []map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &summaries))
	require.Len(t, summaries, 2)
	assert.ElementsMatch(t, []string{"id", "name", "type", "isActive"}, keys(summaries[0]))

	rec, env = app.do(http.MethodGet, "/api/public/outlets/nearby?lat=-6.1754&lng=106.8272&radiusKm=10", "", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var nearby []struct {
		Outlet struct {
			ID       string `json:"id"`
			Location struct {
				Type        string    `json:"type"`
				Coordinates []float64 `json:"coordinates"`
			} `json:"location"`
		} `json:"outlet"`
		DistanceKm float64 `json:"distanceKm"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &nearby))
	require.Len(t, nearby, 1)
	assert.Equal(t, gambir, nearby[0].Outlet.ID)
	assert.Equal(t, "Point", nearby[0].Outlet.Location.Type)
	assert.Equal(t, []float64{106.8306, -6.1766}, nearby[0].Outlet.Location.Coordinates)

	rec, _ = app.do(http.MethodGet, "/api/public/outlets/nearby?lng=106.8272", "", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	for _, query := range []string{"lat=NaN&lng=106.8&radiusKm=1", "lat=-6.2&lng=106.8&radiusKm=NaN", "lat=-6.2&lng=Inf&radiusKm=1"} {
		rec, env = app.do(http.MethodGet, "/api/public/outlets/nearby?"+query, "", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code, query)
		assert.Equal(t, "INVALID_ARGUMENT", env.Code, query)
	}

	rec, _ = app.do(http.MethodGet, "/api/admin/outlets/"+gambir+"/qr", admin, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("\x89PNG")))
}

func TestAPI_UploadMenuImage(t *testing.T) {
	app := newTestApp(t)
	admin := app.login(adminEmail, adminPassword)

	upload := func(contentType string) (*httptest.ResponseRecorder, envelope) {
		var body bytes.Buffer
		writer := multipart.NewWriter(&body)
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", `form-data; name="image"; filename="nasi.png"`)
		header.Set(echo.HeaderContentType, contentType)
		part, err := writer.CreatePart(header)
		require.NoError(t, err)
		_, err = part.Write([]byte("\x89PNG fake image"))
		require.NoError(t, err)
		require.NoError(t, writer.Close())

		req := httptest.NewRequest(http.MethodPost, "/api/admin/menu/image", &body)
		req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+admin)

		return app.serve(req)
	}

	rec, env := upload("image/png")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var out struct {
		URL string `json:"url"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &out))
	assert.True(t, strings.HasPrefix(out.URL, "http://example.com/images/menu-items/"))
	assert.True(t, strings.HasSuffix(out.URL, ".png"))

	imageURL, err := url.Parse(out.URL)
	require.NoError(t, err)
	rec = httptest.NewRecorder()
	app.echo.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, imageURL.Path, nil))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, "\x89PNG fake image", rec.Body.String())

	rec, _ = app.do(http.MethodPost, "/api/admin/menu", admin, map[string]any{
		"name":      "Nasi Goreng",
		"basePrice": 45000,
		"category":  "Mains",
		"image":     out.URL,
	})
	assert.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec, env = app.do(http.MethodGet, "/images/menu-items/missing.png", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.False(t, env.Success)

	rec, _ = upload("text/plain")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func keys(m map[string]any) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}

	return out
}
