package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// AuthStatusHandler reports whether the caller's token is valid.
func AuthStatusHandler(c *gin.Context) {
	caller, ok := callerFromContext(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "valid", "user_uuid": caller.UserID, "admin": caller.IsAdmin()})
}
