package repository

import (
	"context"
	"errors"

	"planner/internal/domain/entity"
)

// ErrScheduleNotFound is returned when a schedule entry does not exist or
// belongs to another user.
var ErrScheduleNotFound = errors.New("schedule entry not found")

// ScheduleRepository defines persistence operations for weekly schedule entries.
type ScheduleRepository interface {
	Create(ctx context.Context, entry *entity.ScheduleEntry) error
	FindByID(ctx context.Context, userID, id string) (*entity.ScheduleEntry, error)
	ListByUser(ctx context.Context, userID string) ([]*entity.ScheduleEntry, error)
	Update(ctx context.Context, entry *entity.ScheduleEntry) error
	Delete(ctx context.Context, userID, id string) error
}
