// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"planner/internal/domain/entity"
	"planner/internal/domain/service"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new student account.
type RegisterInput struct {
	Email    string
	Password string
	FullName string
}

// LoginInput defines the credentials presented at login.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// RegisterOutput returns the newly created account's basic information.
type RegisterOutput struct {
	User *entity.User
}

// LoginOutput returns the minted token pair after a successful login.
type LoginOutput struct {
	Tokens *service.TokenPair
}

// AuthUsecase defines the interface for account and session operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// CurrentUser loads the full account behind a resolved session identity.
	CurrentUser(ctx context.Context, identity *service.Identity) (*entity.User, error)
}
