package auth

import (
	"testing"
	"time"

	"indocafe/config"
	"indocafe/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTService(t *testing.T, ttl time.Duration) *jwtService {
	t.Helper()

	cfg := &config.Config{Auth: &config.AuthConfig{AccessTokenTTL: ttl}}
	cfg.SecretKey.Access = "test-access-secret"

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc.(*jwtService)
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
}

func TestJWTService_RoundTripCarriesOutletScope(t *testing.T) {
	svc := newTestJWTService(t, time.Hour)

	outletID := uuid.New()
	extraOutlet := uuid.New()
	user := &entity.User{
		ID:                uuid.New(),
		Role:              entity.RoleOutletManager,
		DefaultOutletID:   &outletID,
		AssignedOutletIDs: []uuid.UUID{extraOutlet},
	}

	token, expiresAt, err := svc.GenerateAccessToken(user)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, entity.RoleOutletManager, claims.Role)
	require.NotNil(t, claims.OutletID)
	assert.Equal(t, outletID, *claims.OutletID)

	principal := claims.Principal()
	assert.True(t, principal.CanManageOutlet(outletID))
	assert.True(t, principal.CanManageOutlet(extraOutlet))
	assert.False(t, principal.CanManageOutlet(uuid.New()))
}

func TestJWTService_RejectsExpiredToken(t *testing.T) {
	svc := newTestJWTService(t, time.Minute)
	svc.now = func() time.Time { return time.Now().Add(-time.Hour) }

	token, _, err := svc.GenerateAccessToken(&entity.User{ID: uuid.New(), Role: entity.RoleSuperAdmin})
	require.NoError(t, err)

	svc.now = time.Now
	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestJWTService_RejectsForeignSignature(t *testing.T) {
	svc := newTestJWTService(t, time.Hour)
	other := newTestJWTService(t, time.Hour)
	other.accessSecret = []byte("another-secret")

	token, _, err := other.GenerateAccessToken(&entity.User{ID: uuid.New(), Role: entity.RoleSuperAdmin})
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
}

func TestJWTService_RejectsUnknownRole(t *testing.T) {
	svc := newTestJWTService(t, time.Hour)

	token, _, err := svc.GenerateAccessToken(&entity.User{ID: uuid.New(), Role: entity.Role("OWNER")})
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_RejectsGarbage(t *testing.T) {
	svc := newTestJWTService(t, time.Hour)

	_, err := svc.ValidateToken("not-a-token")
	assert.Error(t, err)
}
