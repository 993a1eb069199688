package repository

import (
	"context"
	"errors"
	"time"

	"planner/internal/domain/entity"
)

// ErrAssignmentNotFound is returned when an assignment does not exist or
// belongs to another user.
var ErrAssignmentNotFound = errors.New("assignment not found")

// AssignmentRepository defines persistence operations for assignments.
type AssignmentRepository interface {
	Create(ctx context.Context, assignment *entity.Assignment) error
	FindByID(ctx context.Context, userID, id string) (*entity.Assignment, error)

	// ListByUser returns the user's assignments, optionally filtered by status
	// (empty status means all).
	ListByUser(ctx context.Context, userID string, status entity.AssignmentStatus) ([]*entity.Assignment, error)

	Update(ctx context.Context, assignment *entity.Assignment) error
	Delete(ctx context.Context, userID, id string) error

	// ListDueBetween returns pending assignments across all users with a due
	// date in [from, to). Used by the reminder worker.
	ListDueBetween(ctx context.Context, from, to time.Time) ([]*entity.Assignment, error)
}
