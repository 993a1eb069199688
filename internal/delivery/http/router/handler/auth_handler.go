// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"time"

	deliverycontext "planner/internal/delivery/context"
	"planner/internal/delivery/http/response"
	"planner/internal/domain/entity"
	domainerrors "planner/internal/domain/errors"
	"planner/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// registerRequest is the wire shape of the registration payload.
type registerRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	FullName string `json:"full_name"`
}

// loginRequest accepts both the JSON body and the classic form login. The
// username field carries the email address.
type loginRequest struct {
	Username string `json:"username" form:"username" validate:"required"`
	Password string `json:"password" form:"password" validate:"required"`
}

// userResponse is the public view of an account.
type userResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// tokenResponse is the wire shape of a minted token pair.
type tokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
}

func newUserResponse(user *entity.User) userResponse {
	return userResponse{
		ID:        user.ID,
		Email:     user.Email,
		FullName:  user.FullName,
		CreatedAt: user.CreatedAt,
	}
}

// AuthHandler holds dependencies for account and session handlers.
type AuthHandler struct {
	uc     usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{uc: uc, logger: logger}
}

// Register handles the account registration request.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Register(c.Request().Context(), &usecase.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
		FullName: req.FullName,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newUserResponse(output.User), "User registered successfully")
}

// Login handles the credentials login request.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    req.Username,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, tokenResponse{
		AccessToken:  output.Tokens.AccessToken,
		RefreshToken: output.Tokens.RefreshToken,
		TokenType:    output.Tokens.TokenType,
	}, "Login successful")
}

// Me returns the account behind the current session.
func (h *AuthHandler) Me(c echo.Context) error {
	identity, ok := deliverycontext.GetIdentity(c)
	if !ok {
		return domainerrors.ErrCouldNotValidateCredentials
	}

	user, err := h.uc.CurrentUser(c.Request().Context(), identity)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newUserResponse(user), "")
}
