package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"healthtrack/config"
	"healthtrack/internal/domain/service"
)

func testConfig() *config.Config {
	cfg := &config.Config{
		Auth: &config.AuthConfig{TokenTTL: time.Hour, Issuer: "healthtrack"},
	}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"

	return cfg
}

func newTestJWTService(t *testing.T, now time.Time) *jwtService {
	t.Helper()

	svc, err := NewJWTService(testConfig())
	require.NoError(t, err)

	s := svc.(*jwtService)
	s.now = func() time.Time { return now }

	return s
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	now := time.Now().Truncate(time.Second)
	svc := newTestJWTService(t, now)

	identity := service.TokenIdentity{
		UserID: uuid.New(),
		Name:   "Ada",
		Email:  "ada@example.com",
		Role:   "admin",
	}

	token, expiresAt, err := svc.Generate(identity)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, now.Add(time.Hour), expiresAt)

	claims, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, identity.UserID, claims.UserID)
	assert.Equal(t, "Ada", claims.Name)
	assert.Equal(t, "ada@example.com", claims.Email)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, "healthtrack", claims.Issuer)
	assert.Equal(t, now.Unix(), claims.IssuedAt.Unix())
}

func TestJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
}

func TestJWTService_DefaultTTL(t *testing.T) {
	cfg := testConfig()
	cfg.Auth = nil

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)
	assert.Equal(t, 24*time.Hour, svc.(*jwtService).ttl)
}

func TestJWTService_RejectsInvalidTokens(t *testing.T) {
	now := time.Now()
	svc := newTestJWTService(t, now)

	valid, _, err := svc.Generate(service.TokenIdentity{UserID: uuid.New(), Role: "user"})
	require.NoError(t, err)

	expired := newTestJWTService(t, now.Add(-2*time.Hour))
	expiredToken, _, err := expired.Generate(service.TokenIdentity{UserID: uuid.New(), Role: "user"})
	require.NoError(t, err)

	other := newTestJWTService(t, now)
	other.secret = []byte("another-secret")
	foreignToken, _, err := other.Generate(service.TokenIdentity{UserID: uuid.New(), Role: "user"})
	require.NoError(t, err)

	wrongIssuer := newTestJWTService(t, now)
	wrongIssuer.issuer = "someone-else"
	wrongIssuerToken, _, err := wrongIssuer.Generate(service.TokenIdentity{UserID: uuid.New(), Role: "user"})
	require.NoError(t, err)

	noneToken, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"sub": uuid.NewString(),
		"exp": now.Add(time.Hour).Unix(),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	badSubject, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "not-a-uuid",
		"iss": "healthtrack",
		"exp": now.Add(time.Hour).Unix(),
	}).SignedString(svc.secret)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "garbage", token: "clearly-not-a-jwt-token-format"},
		{name: "tampered", token: valid + "x"},
		{name: "expired", token: expiredToken},
		{name: "foreign signature", token: foreignToken},
		{name: "wrong issuer", token: wrongIssuerToken},
		{name: "alg none", token: noneToken},
		{name: "non uuid subject", token: badSubject},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := svc.Validate(tt.token)
			assert.Error(t, err)
			assert.Nil(t, claims)
		})
	}
}
