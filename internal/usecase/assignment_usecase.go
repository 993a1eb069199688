package usecase

import (
	"context"
	"time"

	"planner/internal/domain/entity"
)

// CreateAssignmentInput defines the data required to add an assignment.
type CreateAssignmentInput struct {
	CourseID    string
	Title       string
	Description string
	DueDate     time.Time
}

// UpdateAssignmentInput carries the mutable fields of an assignment.
type UpdateAssignmentInput struct {
	CourseID    string
	Title       string
	Description string
	DueDate     time.Time
	Status      entity.AssignmentStatus
}

// AssignmentUsecase defines assignment management operations scoped to one student.
type AssignmentUsecase interface {
	Create(ctx context.Context, userID string, input *CreateAssignmentInput) (*entity.Assignment, error)
	Get(ctx context.Context, userID, id string) (*entity.Assignment, error)

	// List returns the student's assignments, optionally filtered by status.
	List(ctx context.Context, userID string, status entity.AssignmentStatus) ([]*entity.Assignment, error)

	Update(ctx context.Context, userID, id string, input *UpdateAssignmentInput) (*entity.Assignment, error)
	Delete(ctx context.Context, userID, id string) error
}
