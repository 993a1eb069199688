package usecase

import (
	"context"
	"time"

	"planner/internal/domain/entity"
)

// CreateScheduleInput defines the data required to add a timetable slot.
type CreateScheduleInput struct {
	CourseID  string
	Title     string
	DayOfWeek time.Weekday
	StartTime string
	EndTime   string
	Location  string
}

// UpdateScheduleInput carries the mutable fields of a timetable slot.
type UpdateScheduleInput struct {
	CourseID  string
	Title     string
	DayOfWeek time.Weekday
	StartTime string
	EndTime   string
	Location  string
}

// ScheduleUsecase defines timetable operations scoped to one student.
type ScheduleUsecase interface {
	Create(ctx context.Context, userID string, input *CreateScheduleInput) (*entity.ScheduleEntry, error)
	Get(ctx context.Context, userID, id string) (*entity.ScheduleEntry, error)
	List(ctx context.Context, userID string) ([]*entity.ScheduleEntry, error)
	Update(ctx context.Context, userID, id string, input *UpdateScheduleInput) (*entity.ScheduleEntry, error)
	Delete(ctx context.Context, userID, id string) error
}
