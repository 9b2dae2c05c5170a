package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the custom claims carried by a session token.
type Claims struct {
	UserID   string `json:"uid"`
	UserName string `json:"name"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and verifying session
// tokens. A token is either fully valid (correct signature, not expired)
// or entirely rejected; there is no partial trust or refresh mechanism.
type TokenService interface {
	// GenerateToken creates a new signed session token for a user.
	GenerateToken(userID, userName string) (string, error)

	// ValidateToken checks signature and expiry, returning the claims.
	ValidateToken(tokenString string) (*Claims, error)

	// TokenDuration returns the configured token lifetime.
	TokenDuration() time.Duration
}
