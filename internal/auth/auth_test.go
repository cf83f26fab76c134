package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"faris/internal/config"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:      "test-secret",
		JWTExpiryHours: 1,
	}
}

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", hash)

	assert.True(t, VerifyPassword("s3cret-pass", hash))
	assert.False(t, VerifyPassword("wrong-pass", hash))
	assert.False(t, VerifyPassword("s3cret-pass", "not-a-hash"))
}

func TestCreateAndParseToken(t *testing.T) {
	manager := NewManager(testConfig())

	token, err := manager.CreateToken("user-123", "org-456")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := manager.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.Subject)
	assert.Equal(t, "org-456", claims.OrgID)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, 5*time.Second)
}

func TestParseTokenRejectsTampering(t *testing.T) {
	manager := NewManager(testConfig())
	other := NewManager(&config.Config{JWTSecret: "different-secret", JWTExpiryHours: 1})

	token, err := other.CreateToken("user-123", "org-456")
	require.NoError(t, err)

	_, err = manager.ParseToken(token)
	assert.Error(t, err)

	_, err = manager.ParseToken("not.a.token")
	assert.Error(t, err)
}

func TestParseTokenRejectsExpired(t *testing.T) {
	manager := NewManager(&config.Config{JWTSecret: "test-secret", JWTExpiryHours: -1})

	token, err := manager.CreateToken("user-123", "org-456")
	require.NoError(t, err)

	_, err = manager.ParseToken(token)
	assert.Error(t, err)
}

func TestMiddleware(t *testing.T) {
	manager := NewManager(testConfig())
	validToken, err := manager.CreateToken("user-123", "org-456")
	require.NoError(t, err)

	tests := []struct {
		name           string
		authHeader     string
		expectedStatus int
	}{
		{
			name:           "valid bearer token passes",
			authHeader:     "Bearer " + validToken,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "missing header is rejected",
			authHeader:     "",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "token without bearer prefix is rejected",
			authHeader:     validToken,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "garbage token is rejected",
			authHeader:     "Bearer garbage",
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/api/leads", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			next := func(c echo.Context) error {
				// Claims must be available to downstream handlers
				assert.Equal(t, "user-123", UserID(c))
				assert.Equal(t, "org-456", OrgID(c))
				return c.NoContent(http.StatusOK)
			}

			err := Middleware(manager)(next)(c)
			require.NoError(t, err)
			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}
