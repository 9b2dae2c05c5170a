package usecase

import (
	"context"
	"time"
)

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Name     string `json:"name" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// RegisterOutput returns the newly created account's identifier.
type RegisterOutput struct {
	UserID string
}

// LoginInput defines the data required to log in.
type LoginInput struct {
	Name     string `json:"name" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginOutput returns the signed session token after a successful login,
// along with its lifetime for the transport cookie.
type LoginOutput struct {
	Token    string
	TokenTTL time.Duration
	UserName string
}

// AccountUsecase defines the interface for account registration and
// session issuance. Token verification lives on service.TokenService and
// is exercised by the authentication middleware.
type AccountUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
}
