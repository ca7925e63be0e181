package client

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strconv"
	"strings"

	"indocafe/internal/domain/entity"

	"github.com/pkg/errors"
)

// Login exchanges staff credentials for an access token.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	body, err := jsonBody(map[string]string{"email": email, "password": password})
	if err != nil {
		return nil, err
	}

	var out LoginResult
	if err := c.call(ctx, request{
		method:      http.MethodPost,
		path:        "/api/auth/login",
		body:        body,
		contentType: "application/json",
	}, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// Me returns the profile of the credential's owner.
func (c *Client) Me(ctx context.Context, cred Credential) (*User, error) {
	var out User
	if err := c.call(ctx, request{method: http.MethodGet, path: "/api/auth/me", credential: &cred}, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// GetEffectiveMenu returns the menu served by an outlet.
func (c *Client) GetEffectiveMenu(ctx context.Context, outletID string) ([]*entity.EffectiveMenuEntry, error) {
	var out []*entity.EffectiveMenuEntry
	if err := c.call(ctx, request{
		method: http.MethodGet,
		path:   "/api/public/menu/" + url.PathEscape(outletID),
	}, &out); err != nil {
		return nil, err
	}

	return out, nil
}

// ListCatalog returns every catalog item.
func (c *Client) ListCatalog(ctx context.Context, cred Credential) ([]*entity.MenuItem, error) {
	var out []*entity.MenuItem
	if err := c.call(ctx, request{method: http.MethodGet, path: "/api/admin/menu", credential: &cred}, &out); err != nil {
		return nil, err
	}

	return out, nil
}

// CreateMenuItem registers a catalog item.
func (c *Client) CreateMenuItem(ctx context.Context, cred Credential, in *CreateMenuItemRequest) (*entity.MenuItem, error) {
	body, err := jsonBody(in)
	if err != nil {
		return nil, err
	}

	var out entity.MenuItem
	if err := c.call(ctx, request{
		method:      http.MethodPost,
		path:        "/api/admin/menu",
		credential:  &cred,
		body:        body,
		contentType: "application/json",
	}, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// UpdateItemStatus writes the override of one item at an outlet.
func (c *Client) UpdateItemStatus(
	ctx context.Context,
	cred Credential,
	itemID string,
	in *UpdateItemStatusRequest,
) (*entity.OutletItemConfig, error) {
	body, err := jsonBody(in)
	if err != nil {
		return nil, err
	}

	var out entity.OutletItemConfig
	if err := c.call(ctx, request{
		method:      http.MethodPut,
		path:        "/api/manager/menu/" + url.PathEscape(itemID) + "/status",
		credential:  &cred,
		body:        body,
		contentType: "application/json",
	}, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// UploadMenuImage uploads an image and returns its public URL.
func (c *Client) UploadMenuImage(ctx context.Context, cred Credential, fileName, contentType string, r io.Reader) (string, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="image"; filename="`+escapeQuotes(fileName)+`"`)
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	if err != nil {
		return "", errors.WithStack(err)
	}
	if _, err := io.Copy(part, r); err != nil {
		return "", errors.Wrap(err, "failed to read image")
	}
	if err := writer.Close(); err != nil {
		return "", errors.WithStack(err)
	}

	var out struct {
		URL string `json:"url"`
	}
	if err := c.call(ctx, request{
		method:      http.MethodPost,
		path:        "/api/admin/menu/image",
		credential:  &cred,
		body:        &buf,
		contentType: writer.FormDataContentType(),
	}, &out); err != nil {
		return "", err
	}

	return out.URL, nil
}

// ListOutlets returns every outlet as a summary.
func (c *Client) ListOutlets(ctx context.Context, cred Credential) ([]*entity.OutletSummary, error) {
	var out []*entity.OutletSummary
	if err := c.call(ctx, request{method: http.MethodGet, path: "/api/admin/outlets", credential: &cred}, &out); err != nil {
		return nil, err
	}

	return out, nil
}

// CreateOutlet registers an outlet.
func (c *Client) CreateOutlet(ctx context.Context, cred Credential, in *CreateOutletRequest) (*Outlet, error) {
	body, err := jsonBody(in)
	if err != nil {
		return nil, err
	}

	var out Outlet
	if err := c.call(ctx, request{
		method:      http.MethodPost,
		path:        "/api/admin/outlets",
		credential:  &cred,
		body:        body,
		contentType: "application/json",
	}, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// NearbyOutlets returns active outlets within radiusKm of a point, nearest first.
// A radius of zero lets the server pick its default.
func (c *Client) NearbyOutlets(ctx context.Context, latitude, longitude, radiusKm float64) ([]*NearbyOutlet, error) {
	query := url.Values{}
	query.Set("lat", strconv.FormatFloat(latitude, 'f', -1, 64))
	query.Set("lng", strconv.FormatFloat(longitude, 'f', -1, 64))
	if radiusKm > 0 {
		query.Set("radiusKm", strconv.FormatFloat(radiusKm, 'f', -1, 64))
	}

	var out []*NearbyOutlet
	if err := c.call(ctx, request{method: http.MethodGet, path: "/api/public/outlets/nearby", query: query}, &out); err != nil {
		return nil, err
	}

	return out, nil
}

// OutletQRCode returns the PNG QR code pointing at an outlet's menu.
func (c *Client) OutletQRCode(ctx context.Context, cred Credential, outletID string) ([]byte, error) {
	return c.raw(ctx, request{
		method:     http.MethodGet,
		path:       "/api/admin/outlets/" + url.PathEscape(outletID) + "/qr",
		credential: &cred,
	})
}

// CreateUser provisions a staff account.
func (c *Client) CreateUser(ctx context.Context, cred Credential, in *CreateUserRequest) (*User, error) {
	body, err := jsonBody(in)
	if err != nil {
		return nil, err
	}

	var out User
	if err := c.call(ctx, request{
		method:      http.MethodPost,
		path:        "/api/admin/users",
		credential:  &cred,
		body:        body,
		contentType: "application/json",
	}, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func escapeQuotes(s string) string {
	return quoteEscaper.Replace(s)
}
