package entity

import "time"

// ScheduleEntry is a recurring weekly slot in the student's timetable.
type ScheduleEntry struct {
	ID        string
	UserID    string // Owning student.
	CourseID  string // Optional reference to a Course.
	Title     string
	DayOfWeek time.Weekday
	StartTime string // "15:04" wall-clock time.
	EndTime   string
	Location  string
	CreatedAt time.Time
	UpdatedAt time.Time
}
