package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"apothecary/config"
	httpvalidator "apothecary/internal/delivery/http/validator"
	"apothecary/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAccountUsecase struct {
	registerOut *usecase.RegisterOutput
	registerErr error
	loginOut    *usecase.LoginOutput
	loginErr    error
}

func (s *stubAccountUsecase) Register(_ context.Context, _ *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	return s.registerOut, s.registerErr
}

func (s *stubAccountUsecase) Login(_ context.Context, _ *usecase.LoginInput) (*usecase.LoginOutput, error) {
	return s.loginOut, s.loginErr
}

func newAuthHandlerTest(uc usecase.AccountUsecase) *AuthHandler {
	cfg := &config.Config{Auth: &config.AuthConfig{CookieName: "apothecary_token", TokenTTL: 24 * time.Hour}}

	return NewAuthHandler(uc, cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func newAuthContext(body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = httpvalidator.New()
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Register(t *testing.T) {
	h := newAuthHandlerTest(&stubAccountUsecase{registerOut: &usecase.RegisterOutput{UserID: "user-1"}})
	c, rec := newAuthContext(`{"name":"merlin","password":"s3cret!"}`)

	require.NoError(t, h.Register(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"message":"user created"}`, rec.Body.String())
}

func TestAuthHandler_Register_MissingFields(t *testing.T) {
	h := newAuthHandlerTest(&stubAccountUsecase{})
	c, _ := newAuthContext(`{"name":"merlin"}`)

	err := h.Register(c)

	require.Error(t, err)
}

func TestAuthHandler_Login_SetsSessionCookie(t *testing.T) {
	h := newAuthHandlerTest(&stubAccountUsecase{loginOut: &usecase.LoginOutput{
		Token:    "signed.jwt.token",
		TokenTTL: 24 * time.Hour,
		UserName: "merlin",
	}})
	c, rec := newAuthContext(`{"name":"merlin","password":"s3cret!"}`)

	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	cookie := cookies[0]
	assert.Equal(t, "apothecary_token", cookie.Name)
	assert.Equal(t, "signed.jwt.token", cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, http.SameSiteStrictMode, cookie.SameSite)
	assert.Equal(t, int((24 * time.Hour).Seconds()), cookie.MaxAge)
	assert.Equal(t, "/", cookie.Path)
}

func TestAuthHandler_Logout_ExpiresCookie(t *testing.T) {
	h := newAuthHandlerTest(&stubAccountUsecase{})
	c, rec := newAuthContext(``)

	require.NoError(t, h.Logout(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"logged out"}`, rec.Body.String())

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Empty(t, cookies[0].Value)
	assert.Negative(t, cookies[0].MaxAge)
}
