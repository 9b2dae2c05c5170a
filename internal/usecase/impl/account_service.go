// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	deliverycontext "apothecary/internal/delivery/context"
	"apothecary/internal/domain/entity"
	domainerrors "apothecary/internal/domain/errors"
	"apothecary/internal/domain/repository"
	"apothecary/internal/domain/service"
	"apothecary/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	minNameLength     = 3
	maxNameLength     = 30
	minPasswordLength = 6
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AccountServiceParams holds dependencies for accountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAccountService is the constructor for accountService.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back
// to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register validates and sanitizes the supplied credentials, hashes the
// password and persists the new account. Name uniqueness is left to the
// store's index; a conflict there is reported as a duplicate user.
func (srv *accountService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	name := strings.TrimSpace(input.Name)
	password := strings.TrimSpace(input.Password)

	if count := utf8.RuneCountInString(name); count < minNameLength || count > maxNameLength {
		return nil, domainerrors.ErrValidationFailed.WithDetails(
			fmt.Sprintf("name must be between %d and %d characters", minNameLength, maxNameLength))
	}
	if utf8.RuneCountInString(password) < minPasswordLength {
		return nil, domainerrors.ErrValidationFailed.WithDetails(
			fmt.Sprintf("password must be at least %d characters", minPasswordLength))
	}

	name = sanitizeInput(name)

	hashed, err := srv.hasher.Hash(password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash password")
	}

	user := &entity.User{Name: name, PasswordHash: hashed}
	if err := srv.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrUserExists) {
			srv.log(ctx).Warn("Registration conflict", slog.String("name", name))

			return nil, domainerrors.ErrDuplicateUser
		}

		return nil, errors.Wrap(err, "failed to create user")
	}

	srv.log(ctx).Info("Account registered", slog.String("userID", user.ID))

	return &usecase.RegisterOutput{UserID: user.ID}, nil
}

// Login verifies credentials and issues a signed session token. Unknown
// names and wrong passwords are indistinguishable to the caller.
func (srv *accountService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	name := sanitizeInput(input.Name)

	user, err := srv.userRepo.FindByName(ctx, name)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrInvalidCredentials
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	token, err := srv.tokenService.GenerateToken(user.ID, user.Name)
	if err != nil {
		srv.log(ctx).Error("Failed to sign session token", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to sign session token")
	}

	srv.log(ctx).Info("Session issued", slog.String("userID", user.ID))

	return &usecase.LoginOutput{
		Token:    token,
		TokenTTL: srv.tokenService.TokenDuration(),
		UserName: user.Name,
	}, nil
}
