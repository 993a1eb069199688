package handler

import (
	"log/slog"
	"net/http"
	"time"

	"planner/internal/delivery/http/response"
	"planner/internal/domain/entity"
	"planner/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type assignmentRequest struct {
	CourseID    string    `json:"course_id"`
	Title       string    `json:"title" validate:"required"`
	Description string    `json:"description"`
	DueDate     time.Time `json:"due_date" validate:"required"`
	Status      string    `json:"status"`
}

type assignmentResponse struct {
	ID          string    `json:"id"`
	CourseID    string    `json:"course_id,omitempty"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	DueDate     time.Time `json:"due_date"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func newAssignmentResponse(a *entity.Assignment) assignmentResponse {
	return assignmentResponse{
		ID:          a.ID,
		CourseID:    a.CourseID,
		Title:       a.Title,
		Description: a.Description,
		DueDate:     a.DueDate,
		Status:      string(a.Status),
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

// AssignmentHandler holds dependencies for assignment handlers.
type AssignmentHandler struct {
	uc     usecase.AssignmentUsecase
	logger *slog.Logger
}

// NewAssignmentHandler is the constructor for AssignmentHandler, injected by Fx.
func NewAssignmentHandler(uc usecase.AssignmentUsecase, logger *slog.Logger) *AssignmentHandler {
	return &AssignmentHandler{uc: uc, logger: logger}
}

func (h *AssignmentHandler) Create(c echo.Context) error {
	userID, err := requireIdentity(c)
	if err != nil {
		return err
	}

	var req assignmentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid assignment input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	assignment, err := h.uc.Create(c.Request().Context(), userID, &usecase.CreateAssignmentInput{
		CourseID:    req.CourseID,
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newAssignmentResponse(assignment), "Assignment created")
}

func (h *AssignmentHandler) Get(c echo.Context) error {
	userID, err := requireIdentity(c)
	if err != nil {
		return err
	}

	assignment, err := h.uc.Get(c.Request().Context(), userID, c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newAssignmentResponse(assignment), "")
}

// List returns the user's assignments, optionally filtered with ?status=.
func (h *AssignmentHandler) List(c echo.Context) error {
	userID, err := requireIdentity(c)
	if err != nil {
		return err
	}

	status := entity.AssignmentStatus(c.QueryParam("status"))

	assignments, err := h.uc.List(c.Request().Context(), userID, status)
	if err != nil {
		return errors.WithStack(err)
	}

	out := make([]assignmentResponse, 0, len(assignments))
	for _, a := range assignments {
		out = append(out, newAssignmentResponse(a))
	}

	return response.Success(c, http.StatusOK, out, "")
}

func (h *AssignmentHandler) Update(c echo.Context) error {
	userID, err := requireIdentity(c)
	if err != nil {
		return err
	}

	var req assignmentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid assignment input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	assignment, err := h.uc.Update(c.Request().Context(), userID, c.Param("id"), &usecase.UpdateAssignmentInput{
		CourseID:    req.CourseID,
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
		Status:      entity.AssignmentStatus(req.Status),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newAssignmentResponse(assignment), "Assignment updated")
}

func (h *AssignmentHandler) Delete(c echo.Context) error {
	userID, err := requireIdentity(c)
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), userID, c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Assignment deleted")
}
