package entity

import "time"

// Course is a class the student is enrolled in.
type Course struct {
	ID         string
	UserID     string // Owning student.
	Name       string
	Code       string // e.g. "CS2040".
	Instructor string
	Location   string
	Credits    int
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
