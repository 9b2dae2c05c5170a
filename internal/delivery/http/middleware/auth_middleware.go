package middleware

import (
	"apothecary/config"
	domainerrors "apothecary/internal/domain/errors"
	"apothecary/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// Context keys under which the authenticated identity is stored.
const (
	ContextKeyUserID   = "userID"
	ContextKeyUserName = "userName"
)

// AuthMiddleware gates mutating routes on a valid session cookie.
type AuthMiddleware struct {
	tokenSvc   service.TokenService
	cookieName string
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, cfg *config.Config) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, cookieName: cfg.Auth.CookieName}
}

// Authenticate validates the session cookie before the handler runs; the
// store is never touched for a request that fails here. The token is
// either fully valid or the request is rejected outright.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		cookie, err := c.Cookie(m.cookieName)
		if err != nil || cookie.Value == "" {
			return domainerrors.ErrUnauthorized.WithDetails("session cookie missing")
		}

		claims, err := m.tokenSvc.ValidateToken(cookie.Value)
		if err != nil {
			return domainerrors.ErrUnauthorized.WithDetails("invalid or expired session token")
		}

		// Expose the verified identity to handlers.
		c.Set(ContextKeyUserID, claims.UserID)
		c.Set(ContextKeyUserName, claims.UserName)

		return next(c)
	}
}
