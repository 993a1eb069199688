package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"planner/internal/domain/entity"
)

// AssignmentModel is the stored form of entity.Assignment. CourseID stays a
// plain string: assignments may reference no course at all.
type AssignmentModel struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	UserID      primitive.ObjectID `bson:"user_id"`
	CourseID    string             `bson:"course_id,omitempty"`
	Title       string             `bson:"title"`
	Description string             `bson:"description"`
	DueDate     time.Time          `bson:"due_date"`
	Status      string             `bson:"status"`
	CreatedAt   time.Time          `bson:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at"`
}

func (m *AssignmentModel) ToDomain() *entity.Assignment {
	return &entity.Assignment{
		ID:          m.ID.Hex(),
		UserID:      m.UserID.Hex(),
		CourseID:    m.CourseID,
		Title:       m.Title,
		Description: m.Description,
		DueDate:     m.DueDate,
		Status:      entity.AssignmentStatus(m.Status),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func FromAssignmentDomain(assignment *entity.Assignment) *AssignmentModel {
	return &AssignmentModel{
		ID:          objectIDOrZero(assignment.ID),
		UserID:      objectIDOrZero(assignment.UserID),
		CourseID:    assignment.CourseID,
		Title:       assignment.Title,
		Description: assignment.Description,
		DueDate:     assignment.DueDate,
		Status:      string(assignment.Status),
		CreatedAt:   assignment.CreatedAt,
		UpdatedAt:   assignment.UpdatedAt,
	}
}
