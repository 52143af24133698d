package types

import "github.com/golang-jwt/jwt/v5"

// Claims carries the resolved caller identity. The subject is the user UUID.
type Claims struct {
	UserID string `json:"sub"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}
