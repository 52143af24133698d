package testutils

import (
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/project-review/internal/api/handlers"
	"github.com/linskybing/project-review/internal/api/middleware"
	"github.com/linskybing/project-review/internal/api/routes"
	"github.com/linskybing/project-review/internal/application"
	"github.com/linskybing/project-review/internal/config"
)

func SetupRouter(svc *application.Services) (*gin.Engine, *handlers.Handlers) {
	gin.SetMode(gin.TestMode)
	if config.JwtSecret == "" {
		config.JwtSecret = "test-secret"
	}
	middleware.Init()

	h := handlers.New(svc, nil)
	r := gin.New()
	routes.RegisterRoutes(r, h)
	return r, h
}

// Token signs a short-lived token for userUUID.
func Token(t *testing.T, userUUID string, admin bool) string {
	t.Helper()
	role := config.UserRole
	if admin {
		role = config.AdminRole
	}
	token, err := middleware.GenerateToken(userUUID, role, time.Hour)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}
