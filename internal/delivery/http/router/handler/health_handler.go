package handler

import (
	"net/http"

	"planner/internal/delivery/http/response"

	"github.com/labstack/echo/v4"
)

// HealthCheck reports process liveness.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// Root greets API browsers poking the bare origin.
func Root(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{
		"service": "student-planner",
	}, "Student planner API")
}
