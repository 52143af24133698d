package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/linskybing/project-review/internal/config"
	"github.com/linskybing/project-review/pkg/types"
	"github.com/linskybing/project-review/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupKey(t *testing.T) {
	t.Helper()
	prev := config.JwtSecret
	config.JwtSecret = "middleware-test"
	Init()
	t.Cleanup(func() {
		config.JwtSecret = prev
		Init()
	})
}

func TestParseToken(t *testing.T) {
	setupKey(t)

	token, err := GenerateToken("u-1", config.UserRole, time.Hour)
	require.NoError(t, err)
	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "u-1", claims.UserID)
	assert.Equal(t, config.UserRole, claims.Role)

	expired, err := GenerateToken("u-1", config.UserRole, -time.Minute)
	require.NoError(t, err)
	_, err = ParseToken(expired)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)

	anonymous, err := GenerateToken("", config.UserRole, time.Hour)
	require.NoError(t, err)
	_, err = ParseToken(anonymous)
	assert.Error(t, err)

	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, &types.Claims{UserID: "u-1"}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = ParseToken(none)
	assert.Error(t, err)

	config.JwtSecret = "rotated"
	Init()
	_, err = ParseToken(token)
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
}

func newEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/me", JWTAuthMiddleware(), func(c *gin.Context) {
		claims, err := utils.GetClaimsFromContext(c)
		if err != nil {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.String(http.StatusOK, claims.UserID)
	})
	r.GET("/admin", JWTAuthMiddleware(), Admin(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func TestJWTAuthMiddleware(t *testing.T) {
	setupKey(t)
	r := newEngine()
	token, err := GenerateToken("u-7", config.UserRole, time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name   string
		setup  func(req *http.Request)
		path   string
		status int
	}{
		{"no token", func(*http.Request) {}, "/me", http.StatusUnauthorized},
		{"bad scheme", func(req *http.Request) { req.Header.Set("Authorization", "Token "+token) }, "/me", http.StatusUnauthorized},
		{"header", func(req *http.Request) { req.Header.Set("Authorization", "Bearer "+token) }, "/me", http.StatusOK},
		{"cookie", func(req *http.Request) { req.AddCookie(&http.Cookie{Name: "token", Value: token}) }, "/me", http.StatusOK},
		{"query", func(*http.Request) {}, "/me?token=" + token, http.StatusOK},
		{"garbage", func(req *http.Request) { req.Header.Set("Authorization", "Bearer abc") }, "/me", http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			tt.setup(req)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, tt.status, w.Code)
			if tt.status == http.StatusOK {
				assert.Equal(t, "u-7", w.Body.String())
			}
		})
	}
}

func TestAdmin(t *testing.T) {
	setupKey(t)
	r := newEngine()

	for role, status := range map[string]int{
		config.AdminRole: http.StatusOK,
		config.UserRole:  http.StatusForbidden,
	} {
		token, err := GenerateToken("u-1", role, time.Hour)
		require.NoError(t, err)
		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, status, w.Code, role)
	}
}

func TestOriginAllowed(t *testing.T) {
	prev := config.AllowedOrigins
	t.Cleanup(func() { config.AllowedOrigins = prev })

	config.AllowedOrigins = []string{"http://localhost:", "https://review.example.edu"}
	assert.True(t, OriginAllowed("http://localhost:3000"))
	assert.True(t, OriginAllowed("https://review.example.edu"))
	assert.False(t, OriginAllowed("https://evil.example.com"))

	config.AllowedOrigins = []string{"*"}
	assert.True(t, OriginAllowed("https://evil.example.com"))
}
