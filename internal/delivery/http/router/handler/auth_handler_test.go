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

	deliverycontext "planner/internal/delivery/context"
	"planner/internal/delivery/http/middleware"
	"planner/internal/delivery/http/validator"
	"planner/internal/domain/entity"
	domainerrors "planner/internal/domain/errors"
	"planner/internal/domain/service"
	"planner/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubAuthUsecase scripts the facade's answers for handler tests.
type stubAuthUsecase struct {
	registerOut *usecase.RegisterOutput
	registerErr error
	loginOut    *usecase.LoginOutput
	loginErr    error
	currentOut  *entity.User
	currentErr  error
}

func (s *stubAuthUsecase) Register(context.Context, *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	return s.registerOut, s.registerErr
}

func (s *stubAuthUsecase) Login(context.Context, *usecase.LoginInput) (*usecase.LoginOutput, error) {
	return s.loginOut, s.loginErr
}

func (s *stubAuthUsecase) CurrentUser(context.Context, *service.Identity) (*entity.User, error) {
	return s.currentOut, s.currentErr
}

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(newDiscardLogger()).HandleHTTPError

	return e
}

func postJSON(e *echo.Echo, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestAuthHandler_Register(t *testing.T) {
	t.Parallel()

	t.Run("created account omits the password hash", func(t *testing.T) {
		t.Parallel()

		stub := &stubAuthUsecase{
			registerOut: &usecase.RegisterOutput{User: &entity.User{
				ID:           "user-1",
				Email:        "alice@example.com",
				FullName:     "Alice",
				PasswordHash: "$2a$10$secret",
				CreatedAt:    time.Now(),
			}},
		}
		e := newTestEcho()
		e.POST("/api/auth/register", NewAuthHandler(stub, newDiscardLogger()).Register)

		rec := postJSON(e, "/api/auth/register", `{"email":"alice@example.com","password":"s3cret-pass","full_name":"Alice"}`)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), "alice@example.com")
		assert.NotContains(t, rec.Body.String(), "$2a$10$secret")
	})

	t.Run("duplicate email maps to 400", func(t *testing.T) {
		t.Parallel()

		stub := &stubAuthUsecase{registerErr: domainerrors.ErrEmailAlreadyRegistered}
		e := newTestEcho()
		e.POST("/api/auth/register", NewAuthHandler(stub, newDiscardLogger()).Register)

		rec := postJSON(e, "/api/auth/register", `{"email":"alice@example.com","password":"s3cret-pass"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "Email already registered")
	})

	t.Run("invalid email rejected before the usecase", func(t *testing.T) {
		t.Parallel()

		stub := &stubAuthUsecase{}
		e := newTestEcho()
		e.POST("/api/auth/register", NewAuthHandler(stub, newDiscardLogger()).Register)

		rec := postJSON(e, "/api/auth/register", `{"email":"not-an-email","password":"s3cret-pass"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestAuthHandler_Login(t *testing.T) {
	t.Parallel()

	t.Run("returns the bearer token pair", func(t *testing.T) {
		t.Parallel()

		stub := &stubAuthUsecase{
			loginOut: &usecase.LoginOutput{Tokens: &service.TokenPair{
				AccessToken:  "access.jwt",
				RefreshToken: "refresh.jwt",
				TokenType:    "bearer",
			}},
		}
		e := newTestEcho()
		e.POST("/api/auth/login", NewAuthHandler(stub, newDiscardLogger()).Login)

		rec := postJSON(e, "/api/auth/login", `{"username":"alice@example.com","password":"s3cret-pass"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"access_token":"access.jwt"`)
		assert.Contains(t, rec.Body.String(), `"refresh_token":"refresh.jwt"`)
		assert.Contains(t, rec.Body.String(), `"token_type":"bearer"`)
	})

	t.Run("accepts classic form credentials", func(t *testing.T) {
		t.Parallel()

		stub := &stubAuthUsecase{
			loginOut: &usecase.LoginOutput{Tokens: &service.TokenPair{
				AccessToken:  "access.jwt",
				RefreshToken: "refresh.jwt",
				TokenType:    "bearer",
			}},
		}
		e := newTestEcho()
		e.POST("/api/auth/login", NewAuthHandler(stub, newDiscardLogger()).Login)

		req := httptest.NewRequest(http.MethodPost, "/api/auth/login",
			strings.NewReader("username=alice%40example.com&password=s3cret-pass"))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"token_type":"bearer"`)
	})

	t.Run("bad credentials map to 401", func(t *testing.T) {
		t.Parallel()

		stub := &stubAuthUsecase{loginErr: domainerrors.ErrInvalidCredentials}
		e := newTestEcho()
		e.POST("/api/auth/login", NewAuthHandler(stub, newDiscardLogger()).Login)

		rec := postJSON(e, "/api/auth/login", `{"username":"alice@example.com","password":"wrong"}`)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Bearer", rec.Header().Get(echo.HeaderWWWAuthenticate))
		assert.Contains(t, rec.Body.String(), "Incorrect email or password")
	})
}

func TestAuthHandler_Me(t *testing.T) {
	t.Parallel()

	t.Run("returns the current account", func(t *testing.T) {
		t.Parallel()

		stub := &stubAuthUsecase{currentOut: &entity.User{
			ID:       "user-1",
			Email:    "alice@example.com",
			FullName: "Alice",
		}}
		h := NewAuthHandler(stub, newDiscardLogger())

		e := newTestEcho()
		req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		deliverycontext.SetIdentity(c, &service.Identity{UserID: "user-1", Email: "alice@example.com"})

		require.NoError(t, h.Me(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "alice@example.com")
	})

	t.Run("deleted account maps to 404", func(t *testing.T) {
		t.Parallel()

		stub := &stubAuthUsecase{currentErr: domainerrors.ErrUserNotFound}
		e := newTestEcho()
		h := NewAuthHandler(stub, newDiscardLogger())
		e.GET("/api/auth/me", func(c echo.Context) error {
			deliverycontext.SetIdentity(c, &service.Identity{UserID: "gone", Email: "gone@example.com"})

			return h.Me(c)
		})

		req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "User not found")
	})

	t.Run("missing identity maps to 401", func(t *testing.T) {
		t.Parallel()

		stub := &stubAuthUsecase{}
		e := newTestEcho()
		e.GET("/api/auth/me", NewAuthHandler(stub, newDiscardLogger()).Me)

		req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Bearer", rec.Header().Get(echo.HeaderWWWAuthenticate))
		assert.Contains(t, rec.Body.String(), "Could not validate credentials")
	})
}
