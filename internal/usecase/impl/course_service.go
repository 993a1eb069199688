package impl

import (
	"context"
	"log/slog"

	deliverycontext "planner/internal/delivery/context"
	"planner/internal/domain/entity"
	domainerrors "planner/internal/domain/errors"
	"planner/internal/domain/repository"
	"planner/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// courseService implements the CourseUsecase interface.
type courseService struct {
	courseRepo repository.CourseRepository
	logger     *slog.Logger
}

// CourseServiceParams holds dependencies for courseService, injected by Fx.
type CourseServiceParams struct {
	fx.In

	CourseRepo repository.CourseRepository
	Logger     *slog.Logger
}

// NewCourseService is the constructor for courseService.
func NewCourseService(params CourseServiceParams) usecase.CourseUsecase {
	return &courseService{
		courseRepo: params.CourseRepo,
		logger:     params.Logger,
	}
}

func (srv *courseService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *courseService) Create(ctx context.Context, userID string, input *usecase.CreateCourseInput) (*entity.Course, error) {
	course := &entity.Course{
		UserID:     userID,
		Name:       input.Name,
		Code:       input.Code,
		Instructor: input.Instructor,
		Location:   input.Location,
		Credits:    input.Credits,
	}

	if err := srv.courseRepo.Create(ctx, course); err != nil {
		srv.log(ctx).Error("Failed to create course", slog.String("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create course")
	}

	srv.log(ctx).Debug("Course created", slog.String("courseID", course.ID))

	return course, nil
}

func (srv *courseService) Get(ctx context.Context, userID, id string) (*entity.Course, error) {
	course, err := srv.courseRepo.FindByID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, repository.ErrCourseNotFound) {
			return nil, domainerrors.ErrCourseNotFound
		}

		return nil, errors.Wrap(err, "failed to load course")
	}

	return course, nil
}

func (srv *courseService) List(ctx context.Context, userID string) ([]*entity.Course, error) {
	courses, err := srv.courseRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list courses")
	}

	return courses, nil
}

func (srv *courseService) Update(ctx context.Context, userID, id string, input *usecase.UpdateCourseInput) (*entity.Course, error) {
	course, err := srv.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	course.Name = input.Name
	course.Code = input.Code
	course.Instructor = input.Instructor
	course.Location = input.Location
	course.Credits = input.Credits

	if err := srv.courseRepo.Update(ctx, course); err != nil {
		if errors.Is(err, repository.ErrCourseNotFound) {
			return nil, domainerrors.ErrCourseNotFound
		}

		srv.log(ctx).Error("Failed to update course", slog.String("courseID", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update course")
	}

	return course, nil
}

func (srv *courseService) Delete(ctx context.Context, userID, id string) error {
	if err := srv.courseRepo.Delete(ctx, userID, id); err != nil {
		if errors.Is(err, repository.ErrCourseNotFound) {
			return domainerrors.ErrCourseNotFound
		}

		return errors.Wrap(err, "failed to delete course")
	}

	srv.log(ctx).Debug("Course deleted", slog.String("courseID", id))

	return nil
}
