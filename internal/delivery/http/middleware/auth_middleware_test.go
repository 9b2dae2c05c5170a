package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"apothecary/config"
	domainerrors "apothecary/internal/domain/errors"
	"apothecary/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubTokenService struct {
	claims      *service.Claims
	validateErr error
	validated   string
}

func (s *stubTokenService) GenerateToken(_, _ string) (string, error) {
	return "", errors.New("not used")
}

func (s *stubTokenService) ValidateToken(tokenString string) (*service.Claims, error) {
	s.validated = tokenString
	if s.validateErr != nil {
		return nil, s.validateErr
	}
	return s.claims, nil
}

func (s *stubTokenService) TokenDuration() time.Duration {
	return 24 * time.Hour
}

func authTestConfig() *config.Config {
	return &config.Config{Auth: &config.AuthConfig{CookieName: "apothecary_token"}}
}

func runAuthenticated(t *testing.T, tokens *stubTokenService, cookie *http.Cookie) (echo.Context, bool, error) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/potions", nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handlerCalled := false
	next := func(c echo.Context) error {
		handlerCalled = true
		return c.NoContent(http.StatusOK)
	}

	m := NewAuthMiddleware(tokens, authTestConfig())
	err := m.Authenticate(next)(c)

	return c, handlerCalled, err
}

func TestAuthMiddleware_MissingCookie(t *testing.T) {
	tokens := &stubTokenService{}

	_, handlerCalled, err := runAuthenticated(t, tokens, nil)

	require.ErrorIs(t, err, domainerrors.ErrUnauthorized)
	assert.False(t, handlerCalled)
	assert.Empty(t, tokens.validated, "token service must not be consulted")
}

func TestAuthMiddleware_EmptyCookieValue(t *testing.T) {
	tokens := &stubTokenService{}

	_, handlerCalled, err := runAuthenticated(t, tokens, &http.Cookie{Name: "apothecary_token", Value: ""})

	require.ErrorIs(t, err, domainerrors.ErrUnauthorized)
	assert.False(t, handlerCalled)
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	tokens := &stubTokenService{validateErr: errors.New("token has invalid claims: token is expired")}

	_, handlerCalled, err := runAuthenticated(t, tokens, &http.Cookie{Name: "apothecary_token", Value: "stale.jwt"})

	require.ErrorIs(t, err, domainerrors.ErrUnauthorized)
	assert.False(t, handlerCalled)
	assert.Equal(t, "stale.jwt", tokens.validated)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusUnauthorized, appErr.HTTPCode())
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	tokens := &stubTokenService{claims: &service.Claims{UserID: "user-1", UserName: "merlin"}}

	c, handlerCalled, err := runAuthenticated(t, tokens, &http.Cookie{Name: "apothecary_token", Value: "good.jwt"})

	require.NoError(t, err)
	assert.True(t, handlerCalled)
	assert.Equal(t, "user-1", c.Get(ContextKeyUserID))
	assert.Equal(t, "merlin", c.Get(ContextKeyUserName))
}
