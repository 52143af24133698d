package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/linskybing/project-review/internal/config"
	"github.com/linskybing/project-review/pkg/response"
	"github.com/linskybing/project-review/pkg/utils"
)

// Admin lets only callers with the admin role through.
func Admin() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := utils.GetClaimsFromContext(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Invalid token claims"})
			return
		}
		if claims.Role != config.AdminRole {
			c.AbortWithStatusJSON(http.StatusForbidden, response.ErrorResponse{Error: "admin only", Kind: "Forbidden"})
			return
		}
		c.Next()
	}
}

// OriginAllowed matches origin against the configured prefixes.
func OriginAllowed(origin string) bool {
	for _, allowed := range config.AllowedOrigins {
		if allowed == "*" || strings.HasPrefix(origin, allowed) {
			return true
		}
	}
	return false
}

// CORSMiddleware allows the configured origins. Websocket upgrades skip it.
func CORSMiddleware() gin.HandlerFunc {
	cfg := cors.Config{
		AllowOriginFunc:  OriginAllowed,
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	corsHandler := cors.New(cfg)
	return func(c *gin.Context) {
		if strings.EqualFold(c.GetHeader("Upgrade"), "websocket") {
			c.Next()
			return
		}
		corsHandler(c)
	}
}
