package auth

import (
	"github.com/deepaksuresh242006-wq/snekers-store/pkg/enums"
	"github.com/golang-jwt/jwt/v5"
)

// SessionTokenPayload captures the data available when minting a session token.
type SessionTokenPayload struct {
	UserID string
	Name   string
	Role   enums.Role
	JTI    string
}

// SessionTokenClaims represents the typed token issued to storefront clients.
type SessionTokenClaims struct {
	UserID string     `json:"user_id"`
	Name   string     `json:"name"`
	Role   enums.Role `json:"role"`
	jwt.RegisteredClaims
}
