package usecase

import (
	"context"

	"planner/internal/domain/entity"
)

// CreateCourseInput defines the data required to add a course.
type CreateCourseInput struct {
	Name       string
	Code       string
	Instructor string
	Location   string
	Credits    int
}

// UpdateCourseInput carries the mutable fields of a course.
type UpdateCourseInput struct {
	Name       string
	Code       string
	Instructor string
	Location   string
	Credits    int
}

// CourseUsecase defines course management operations scoped to one student.
type CourseUsecase interface {
	Create(ctx context.Context, userID string, input *CreateCourseInput) (*entity.Course, error)
	Get(ctx context.Context, userID, id string) (*entity.Course, error)
	List(ctx context.Context, userID string) ([]*entity.Course, error)
	Update(ctx context.Context, userID, id string, input *UpdateCourseInput) (*entity.Course, error)
	Delete(ctx context.Context, userID, id string) error
}
