package entity

import "time"

// AssignmentStatus enumerates the lifecycle states of an assignment.
type AssignmentStatus string

const (
	AssignmentPending   AssignmentStatus = "pending"
	AssignmentCompleted AssignmentStatus = "completed"
)

// Valid reports whether the status is one of the known states.
func (s AssignmentStatus) Valid() bool {
	return s == AssignmentPending || s == AssignmentCompleted
}

// Assignment is a piece of coursework with a deadline.
type Assignment struct {
	ID          string
	UserID      string // Owning student.
	CourseID    string // Optional reference to a Course.
	Title       string
	Description string
	DueDate     time.Time
	Status      AssignmentStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
