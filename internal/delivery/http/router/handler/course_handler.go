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

type courseRequest struct {
	Name       string `json:"name" validate:"required"`
	Code       string `json:"code"`
	Instructor string `json:"instructor"`
	Location   string `json:"location"`
	Credits    int    `json:"credits" validate:"gte=0"`
}

type courseResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Code       string    `json:"code,omitempty"`
	Instructor string    `json:"instructor,omitempty"`
	Location   string    `json:"location,omitempty"`
	Credits    int       `json:"credits"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func newCourseResponse(course *entity.Course) courseResponse {
	return courseResponse{
		ID:         course.ID,
		Name:       course.Name,
		Code:       course.Code,
		Instructor: course.Instructor,
		Location:   course.Location,
		Credits:    course.Credits,
		CreatedAt:  course.CreatedAt,
		UpdatedAt:  course.UpdatedAt,
	}
}

// requireIdentity pulls the identity set by the auth middleware. Handlers on
// protected routes can assume it is present; a miss means a wiring bug, and
// the uniform credentials error is still the right answer.
func requireIdentity(c echo.Context) (string, error) {
	identity, ok := deliverycontext.GetIdentity(c)
	if !ok {
		return "", domainerrors.ErrCouldNotValidateCredentials
	}

	return identity.UserID, nil
}

// CourseHandler holds dependencies for course handlers.
type CourseHandler struct {
	uc     usecase.CourseUsecase
	logger *slog.Logger
}

// NewCourseHandler is the constructor for CourseHandler, injected by Fx.
func NewCourseHandler(uc usecase.CourseUsecase, logger *slog.Logger) *CourseHandler {
	return &CourseHandler{uc: uc, logger: logger}
}

func (h *CourseHandler) Create(c echo.Context) error {
	userID, err := requireIdentity(c)
	if err != nil {
		return err
	}

	var req courseRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid course input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	course, err := h.uc.Create(c.Request().Context(), userID, &usecase.CreateCourseInput{
		Name:       req.Name,
		Code:       req.Code,
		Instructor: req.Instructor,
		Location:   req.Location,
		Credits:    req.Credits,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newCourseResponse(course), "Course created")
}

func (h *CourseHandler) Get(c echo.Context) error {
	userID, err := requireIdentity(c)
	if err != nil {
		return err
	}

	course, err := h.uc.Get(c.Request().Context(), userID, c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newCourseResponse(course), "")
}

func (h *CourseHandler) List(c echo.Context) error {
	userID, err := requireIdentity(c)
	if err != nil {
		return err
	}

	courses, err := h.uc.List(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	out := make([]courseResponse, 0, len(courses))
	for _, course := range courses {
		out = append(out, newCourseResponse(course))
	}

	return response.Success(c, http.StatusOK, out, "")
}

func (h *CourseHandler) Update(c echo.Context) error {
	userID, err := requireIdentity(c)
	if err != nil {
		return err
	}

	var req courseRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid course input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	course, err := h.uc.Update(c.Request().Context(), userID, c.Param("id"), &usecase.UpdateCourseInput{
		Name:       req.Name,
		Code:       req.Code,
		Instructor: req.Instructor,
		Location:   req.Location,
		Credits:    req.Credits,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newCourseResponse(course), "Course updated")
}

func (h *CourseHandler) Delete(c echo.Context) error {
	userID, err := requireIdentity(c)
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), userID, c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Course deleted")
}
