package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"planner/internal/domain/entity"
)

// ScheduleModel is the stored form of entity.ScheduleEntry.
type ScheduleModel struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	UserID    primitive.ObjectID `bson:"user_id"`
	CourseID  string             `bson:"course_id,omitempty"`
	Title     string             `bson:"title"`
	DayOfWeek int                `bson:"day_of_week"`
	StartTime string             `bson:"start_time"`
	EndTime   string             `bson:"end_time"`
	Location  string             `bson:"location"`
	CreatedAt time.Time          `bson:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at"`
}

func (m *ScheduleModel) ToDomain() *entity.ScheduleEntry {
	return &entity.ScheduleEntry{
		ID:        m.ID.Hex(),
		UserID:    m.UserID.Hex(),
		CourseID:  m.CourseID,
		Title:     m.Title,
		DayOfWeek: time.Weekday(m.DayOfWeek),
		StartTime: m.StartTime,
		EndTime:   m.EndTime,
		Location:  m.Location,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func FromScheduleDomain(entry *entity.ScheduleEntry) *ScheduleModel {
	return &ScheduleModel{
		ID:        objectIDOrZero(entry.ID),
		UserID:    objectIDOrZero(entry.UserID),
		CourseID:  entry.CourseID,
		Title:     entry.Title,
		DayOfWeek: int(entry.DayOfWeek),
		StartTime: entry.StartTime,
		EndTime:   entry.EndTime,
		Location:  entry.Location,
		CreatedAt: entry.CreatedAt,
		UpdatedAt: entry.UpdatedAt,
	}
}
