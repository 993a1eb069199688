package repository

import (
	"context"
	"errors"

	"planner/internal/domain/entity"
)

// ErrCourseNotFound is returned when a course does not exist or belongs to
// another user.
var ErrCourseNotFound = errors.New("course not found")

// CourseRepository defines persistence operations for courses. All lookups
// are scoped to the owning user.
type CourseRepository interface {
	Create(ctx context.Context, course *entity.Course) error
	FindByID(ctx context.Context, userID, id string) (*entity.Course, error)
	ListByUser(ctx context.Context, userID string) ([]*entity.Course, error)
	Update(ctx context.Context, course *entity.Course) error
	Delete(ctx context.Context, userID, id string) error
}
