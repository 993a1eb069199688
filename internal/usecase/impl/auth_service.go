// Package impl contains the concrete implementations of the usecase interfaces.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "planner/internal/delivery/context"
	"planner/internal/domain/entity"
	domainerrors "planner/internal/domain/errors"
	"planner/internal/domain/repository"
	"planner/internal/domain/service"
	"planner/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a new student account with a freshly hashed password.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.String("email", input.Email))

	if _, err := srv.userRepo.FindByEmail(ctx, input.Email); err == nil {
		srv.log(ctx).Warn("Registration rejected, email already in use", slog.String("email", input.Email))

		return nil, domainerrors.ErrEmailAlreadyRegistered
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to check existing account")
	}

	hashed, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash password during registration")
	}

	newUser := &entity.User{
		Email:        input.Email,
		FullName:     input.FullName,
		PasswordHash: hashed,
	}

	if err := srv.userRepo.Create(ctx, newUser); err != nil {
		// A concurrent registration can still win the unique index race.
		if errors.Is(err, repository.ErrDuplicateEmail) {
			srv.log(ctx).Warn("Registration lost a duplicate-email race", slog.String("email", input.Email))

			return nil, domainerrors.ErrEmailAlreadyRegistered
		}

		srv.log(ctx).Error("Failed to create user during registration", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create user during registration")
	}

	srv.log(ctx).Debug("Registration completed", slog.String("userID", newUser.ID))

	return &usecase.RegisterOutput{User: newUser}, nil
}

// Login verifies the presented credentials and mints a token pair. Unknown
// emails and wrong passwords both produce the same invalid-credentials error
// so the response does not reveal which accounts exist.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Login attempt for unknown email", slog.String("email", input.Email))

			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to load account for login")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login attempt with wrong password", slog.String("email", input.Email))

		return nil, domainerrors.ErrInvalidCredentials
	}

	tokens, err := srv.tokenService.GenerateTokenPair(user.ID, user.Email)
	if err != nil {
		srv.log(ctx).Error("Failed to mint token pair", slog.String("userID", user.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate token pair")
	}

	srv.log(ctx).Info("Login succeeded", slog.String("userID", user.ID))

	return &usecase.LoginOutput{Tokens: tokens}, nil
}

// CurrentUser loads the account behind a resolved session identity. A valid
// token for a deleted account yields a not-found error, never a stale user.
func (srv *authService) CurrentUser(ctx context.Context, identity *service.Identity) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, identity.UserID)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to load current user")
	}

	// Older tokens may predate an ID change; the email claim is the fallback.
	user, err = srv.userRepo.FindByEmail(ctx, identity.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Session resolved for a missing account", slog.String("userID", identity.UserID))

			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to load current user by email")
	}

	return user, nil
}
