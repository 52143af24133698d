package utils

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/linskybing/project-review/pkg/types"
)

var (
	ErrEmptyParameter = errors.New("empty parameter")
	ErrInvalidUUID    = errors.New("invalid uuid")
	ErrNoClaims       = errors.New("user claims not found in context")
)

// ParseUUIDParam reads a path parameter and checks it is a UUID.
func ParseUUIDParam(c *gin.Context, param string) (string, error) {
	v := c.Param(param)
	if v == "" {
		return "", ErrEmptyParameter
	}
	if _, err := uuid.Parse(v); err != nil {
		return "", ErrInvalidUUID
	}
	return v, nil
}

var GetClaimsFromContext = func(c *gin.Context) (*types.Claims, error) {
	claimsVal, exists := c.Get("claims")
	if !exists {
		return nil, ErrNoClaims
	}

	claims, ok := claimsVal.(*types.Claims)
	if !ok {
		return nil, errors.New("invalid user claims type")
	}

	return claims, nil
}
