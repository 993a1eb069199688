// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"planner/internal/delivery/http/middleware"
	"planner/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler       *handler.AuthHandler
	CourseHandler     *handler.CourseHandler
	AssignmentHandler *handler.AssignmentHandler
	ScheduleHandler   *handler.ScheduleHandler
	ChatHandler       *handler.ChatHandler
	AuthMiddleware    *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler       *handler.AuthHandler
	courseHandler     *handler.CourseHandler
	assignmentHandler *handler.AssignmentHandler
	scheduleHandler   *handler.ScheduleHandler
	chatHandler       *handler.ChatHandler
	authMiddleware    *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:       params.AuthHandler,
		courseHandler:     params.CourseHandler,
		assignmentHandler: params.AssignmentHandler,
		scheduleHandler:   params.ScheduleHandler,
		chatHandler:       params.ChatHandler,
		authMiddleware:    params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/", handler.Root)
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	// Auth routes; me requires a live session, the rest are public.
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.GET("/me", r.authHandler.Me, r.authMiddleware.Authenticate)
	}

	courseGroup := api.Group("/courses")
	courseGroup.Use(r.authMiddleware.Authenticate)
	{
		courseGroup.POST("", r.courseHandler.Create)
		courseGroup.GET("", r.courseHandler.List)
		courseGroup.GET("/:id", r.courseHandler.Get)
		courseGroup.PUT("/:id", r.courseHandler.Update)
		courseGroup.DELETE("/:id", r.courseHandler.Delete)
	}

	assignmentGroup := api.Group("/assignments")
	assignmentGroup.Use(r.authMiddleware.Authenticate)
	{
		assignmentGroup.POST("", r.assignmentHandler.Create)
		assignmentGroup.GET("", r.assignmentHandler.List)
		assignmentGroup.GET("/:id", r.assignmentHandler.Get)
		assignmentGroup.PUT("/:id", r.assignmentHandler.Update)
		assignmentGroup.DELETE("/:id", r.assignmentHandler.Delete)
	}

	scheduleGroup := api.Group("/schedules")
	scheduleGroup.Use(r.authMiddleware.Authenticate)
	{
		scheduleGroup.POST("", r.scheduleHandler.Create)
		scheduleGroup.GET("", r.scheduleHandler.List)
		scheduleGroup.GET("/:id", r.scheduleHandler.Get)
		scheduleGroup.PUT("/:id", r.scheduleHandler.Update)
		scheduleGroup.DELETE("/:id", r.scheduleHandler.Delete)
	}

	chatGroup := api.Group("/chat")
	chatGroup.Use(r.authMiddleware.Authenticate)
	{
		chatGroup.POST("/messages", r.chatHandler.Send)
		chatGroup.GET("/messages", r.chatHandler.History)
	}
}
