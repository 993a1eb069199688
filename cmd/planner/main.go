package main

import (
	"context"
	"log/slog"
	"os"

	"planner/config"
	"planner/internal/delivery"
	"planner/internal/delivery/http"
	"planner/internal/delivery/http/middleware"
	"planner/internal/delivery/http/router/handler"
	"planner/internal/delivery/worker"
	"planner/internal/infra/auth"
	logs "planner/internal/infra/log"
	"planner/internal/infra/persistence/mongo"
	"planner/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		mongo.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			mongo.NewUserRepository,
			mongo.NewCourseRepository,
			mongo.NewAssignmentRepository,
			mongo.NewScheduleRepository,
			mongo.NewChatRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			auth.NewSessionResolver,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewCourseService,
			impl.NewAssignmentService,
			impl.NewScheduleService,
			impl.NewChatService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewCourseHandler,
			handler.NewAssignmentHandler,
			handler.NewScheduleHandler,
			handler.NewChatHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				worker.NewReminder,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
