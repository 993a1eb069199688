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

type scheduleRequest struct {
	CourseID  string `json:"course_id"`
	Title     string `json:"title" validate:"required"`
	DayOfWeek int    `json:"day_of_week" validate:"gte=0,lte=6"`
	StartTime string `json:"start_time" validate:"required"`
	EndTime   string `json:"end_time" validate:"required"`
	Location  string `json:"location"`
}

type scheduleResponse struct {
	ID        string    `json:"id"`
	CourseID  string    `json:"course_id,omitempty"`
	Title     string    `json:"title"`
	DayOfWeek int       `json:"day_of_week"`
	StartTime string    `json:"start_time"`
	EndTime   string    `json:"end_time"`
	Location  string    `json:"location,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func newScheduleResponse(e *entity.ScheduleEntry) scheduleResponse {
	return scheduleResponse{
		ID:        e.ID,
		CourseID:  e.CourseID,
		Title:     e.Title,
		DayOfWeek: int(e.DayOfWeek),
		StartTime: e.StartTime,
		EndTime:   e.EndTime,
		Location:  e.Location,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

// ScheduleHandler holds dependencies for timetable handlers.
type ScheduleHandler struct {
	uc     usecase.ScheduleUsecase
	logger *slog.Logger
}

// NewScheduleHandler is the constructor for ScheduleHandler, injected by Fx.
func NewScheduleHandler(uc usecase.ScheduleUsecase, logger *slog.Logger) *ScheduleHandler {
	return &ScheduleHandler{uc: uc, logger: logger}
}

func (h *ScheduleHandler) Create(c echo.Context) error {
	userID, err := requireIdentity(c)
	if err != nil {
		return err
	}

	var req scheduleRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid schedule input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	entry, err := h.uc.Create(c.Request().Context(), userID, &usecase.CreateScheduleInput{
		CourseID:  req.CourseID,
		Title:     req.Title,
		DayOfWeek: time.Weekday(req.DayOfWeek),
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Location:  req.Location,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newScheduleResponse(entry), "Schedule entry created")
}

func (h *ScheduleHandler) Get(c echo.Context) error {
	userID, err := requireIdentity(c)
	if err != nil {
		return err
	}

	entry, err := h.uc.Get(c.Request().Context(), userID, c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newScheduleResponse(entry), "")
}

func (h *ScheduleHandler) List(c echo.Context) error {
	userID, err := requireIdentity(c)
	if err != nil {
		return err
	}

	entries, err := h.uc.List(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	out := make([]scheduleResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, newScheduleResponse(e))
	}

	return response.Success(c, http.StatusOK, out, "")
}

func (h *ScheduleHandler) Update(c echo.Context) error {
	userID, err := requireIdentity(c)
	if err != nil {
		return err
	}

	var req scheduleRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid schedule input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	entry, err := h.uc.Update(c.Request().Context(), userID, c.Param("id"), &usecase.UpdateScheduleInput{
		CourseID:  req.CourseID,
		Title:     req.Title,
		DayOfWeek: time.Weekday(req.DayOfWeek),
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Location:  req.Location,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newScheduleResponse(entry), "Schedule entry updated")
}

func (h *ScheduleHandler) Delete(c echo.Context) error {
	userID, err := requireIdentity(c)
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), userID, c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Schedule entry deleted")
}
